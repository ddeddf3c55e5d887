package values

import "math"

// Equal is structural. Lists and vectors with equal elements are equal to each other, maps are
// equal when they have the same keys with equal values, and functions and atoms are only equal to
// themselves.
func Equal(a, b Value) bool {
	if IsSequential(a) && IsSequential(b) {
		if Len(a) != Len(b) {
			return false
		}
		as, bs := Items(a), Items(b)
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if a.T != b.T {
		return false
	}
	switch a.T {
	case NULL:
		return true
	case BOOL:
		return a.V.(bool) == b.V.(bool)
	case NUMBER:
		return a.V.(float64) == b.V.(float64)
	case STRING, KEYWORD, SYMBOL:
		return a.V.(string) == b.V.(string)
	case MAP:
		return mapsEqual(a.V.(*Map), b.V.(*Map))
	case FUNC:
		return a.V.(*Function) == b.V.(*Function)
	case ATOM:
		return a.V.(*Atom) == b.V.(*Atom)
	case ERROR:
		return Equal(a.V.(Value), b.V.(Value))
	}
	return false
}

func mapsEqual(m, n *Map) bool {
	if m.Len() != n.Len() {
		return false
	}
	for _, k := range m.keys {
		w, ok := n.vals[k]
		if !ok || !Equal(m.vals[k], w) {
			return false
		}
	}
	return true
}

// IsTruthy is the truthiness of 'if': only nil and false are falsy.
func IsTruthy(v Value) bool {
	switch v.T {
	case NULL:
		return false
	case BOOL:
		return v.V.(bool)
	}
	return true
}

// IsHostTruthy is the looser truthiness used by 'and' and 'or', where 0, "" and NaN are falsy too.
func IsHostTruthy(v Value) bool {
	switch v.T {
	case NUMBER:
		f := v.V.(float64)
		return f != 0 && !math.IsNaN(f)
	case STRING:
		return v.V.(string) != ""
	}
	return IsTruthy(v)
}

// WithMeta returns a shallow copy of a function or map carrying the new metadata. Anything else
// can't have metadata and we return false.
func WithMeta(v, meta Value) (Value, bool) {
	switch v.T {
	case FUNC:
		f := *v.V.(*Function)
		f.Meta = meta
		return Value{FUNC, &f}, true
	case MAP:
		m := v.V.(*Map).Copy()
		m.Meta = meta
		return Value{MAP, m}, true
	}
	return NIL, false
}

// Meta returns the metadata of a function or map, or nil.
func Meta(v Value) Value {
	switch v.T {
	case FUNC:
		return v.V.(*Function).Meta
	case MAP:
		return v.V.(*Map).Meta
	}
	return NIL
}
