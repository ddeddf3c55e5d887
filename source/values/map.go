package values

// Map keys are strings, keywords and symbols. Each is encoded as a Go string with a prefix saying
// which kind it was, so that "a", :a and 'a are three different keys.
const (
	STRING_KEY  = '"'
	KEYWORD_KEY = ':'
	SYMBOL_KEY  = '\''
)

// MapKey encodes a value for use as a key. It fails for any kind other than string, keyword and symbol.
func MapKey(v Value) (string, bool) {
	switch v.T {
	case STRING:
		return string(STRING_KEY) + v.V.(string), true
	case KEYWORD:
		return string(KEYWORD_KEY) + v.V.(string), true
	case SYMBOL:
		return string(SYMBOL_KEY) + v.V.(string), true
	}
	return "", false
}

// KeyValue decodes a key produced by MapKey.
func KeyValue(key string) Value {
	if key == "" {
		return NIL
	}
	switch key[0] {
	case STRING_KEY:
		return MakeString(key[1:])
	case KEYWORD_KEY:
		return MakeKeyword(key[1:])
	case SYMBOL_KEY:
		return MakeSymbol(key[1:])
	}
	return NIL
}

// A Map keeps its keys in insertion order. Setting a key that is already present replaces its value
// and leaves it where it was.
type Map struct {
	keys []string
	vals map[string]Value
	Meta Value
}

func NewMap() *Map {
	return &Map{vals: map[string]Value{}, Meta: NIL}
}

func MakeMap() Value {
	return Value{MAP, NewMap()}
}

// Set stores a value under an encoded key.
func (m *Map) Set(key string, val Value) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

// Assoc is Set for a key which is a Value. It fails if the value can't be a key.
func (m *Map) Assoc(key, val Value) bool {
	k, ok := MapKey(key)
	if !ok {
		return false
	}
	m.Set(k, val)
	return true
}

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Lookup is Get for a key which is a Value.
func (m *Map) Lookup(key Value) (Value, bool) {
	k, ok := MapKey(key)
	if !ok {
		return NIL, false
	}
	return m.Get(k)
}

func (m *Map) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the encoded keys in order.
func (m *Map) Keys() []string {
	result := make([]string, len(m.keys))
	copy(result, m.keys)
	return result
}

// Range calls f in insertion order for all entries in the map, with the keys decoded.
func (m *Map) Range(f func(key, value Value)) {
	for _, k := range m.keys {
		f(KeyValue(k), m.vals[k])
	}
}

// Copy is shallow: the values themselves are shared.
func (m *Map) Copy() *Map {
	result := &Map{keys: make([]string, len(m.keys)), vals: make(map[string]Value, len(m.vals)), Meta: m.Meta}
	copy(result.keys, m.keys)
	for k, v := range m.vals {
		result.vals[k] = v
	}
	return result
}
