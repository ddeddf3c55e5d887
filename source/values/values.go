package values

import (
	"src.elv.sh/pkg/persistent/vector"
)

// Values are used both as the syntax tree the reader produces and as the data the evaluator
// computes with. The kinds are closed: a new kind means new cases in the printer, in Equal and in
// the evaluator.
type ValueType uint32

const ( // Cross-reference with typeNames below.
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	NULL
	BOOL
	NUMBER
	STRING
	KEYWORD // The name without its sigil.
	SYMBOL
	LIST   // vector.Vector of Value.
	VECTOR // vector.Vector of Value.
	MAP    // *Map
	FUNC   // *Function
	ATOM   // *Atom
	ERROR  // The wrapped payload, a Value.
)

var typeNames = []string{"undefined", "nil", "bool", "number", "string", "keyword", "symbol",
	"list", "vector", "map", "function", "atom", "error"}

func (t ValueType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

type Value struct {
	T ValueType
	V any
}

var (
	NIL   = Value{T: NULL}
	FALSE = Value{T: BOOL, V: false}
	TRUE  = Value{T: BOOL, V: true}

	EMPTY_LIST   = Value{T: LIST, V: vector.Empty}
	EMPTY_VECTOR = Value{T: VECTOR, V: vector.Empty}
)

func MakeBool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func MakeNumber(f float64) Value {
	return Value{NUMBER, f}
}

func MakeString(s string) Value {
	return Value{STRING, s}
}

func MakeKeyword(name string) Value {
	return Value{KEYWORD, name}
}

func MakeSymbol(name string) Value {
	return Value{SYMBOL, name}
}

func MakeList(items ...Value) Value {
	return Value{LIST, fromSlice(items)}
}

func MakeVector(items ...Value) Value {
	return Value{VECTOR, fromSlice(items)}
}

func ListFrom(vec vector.Vector) Value {
	return Value{LIST, vec}
}

func VectorFrom(vec vector.Vector) Value {
	return Value{VECTOR, vec}
}

func MakeAtom(v Value) Value {
	return Value{ATOM, &Atom{Value: v}}
}

func MakeError(payload Value) Value {
	return Value{ERROR, payload}
}

func fromSlice(items []Value) vector.Vector {
	vec := vector.Empty
	for _, item := range items {
		vec = vec.Conj(item)
	}
	return vec
}

func (v Value) IsNil() bool {
	return v.T == NULL
}

// IsSequential is true of lists and vectors.
func IsSequential(v Value) bool {
	return v.T == LIST || v.T == VECTOR
}

// Items returns the elements of a list or vector, and nil for anything else.
func Items(v Value) []Value {
	if !IsSequential(v) {
		return nil
	}
	vec := v.V.(vector.Vector)
	result := make([]Value, 0, vec.Len())
	for it := vec.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(Value))
	}
	return result
}

// Len is the number of elements in a list or vector, and 0 for anything else.
func Len(v Value) int {
	if !IsSequential(v) {
		return 0
	}
	return v.V.(vector.Vector).Len()
}

// Nth returns the ith element of a list or vector.
func Nth(v Value, i int) (Value, bool) {
	if !IsSequential(v) {
		return NIL, false
	}
	el, ok := v.V.(vector.Vector).Index(i)
	if !ok {
		return NIL, false
	}
	return el.(Value), true
}

// Rest returns everything after the first element of a list or vector, as a list.
func Rest(v Value) Value {
	if Len(v) < 2 {
		return EMPTY_LIST
	}
	vec := v.V.(vector.Vector)
	return ListFrom(vec.SubVector(1, vec.Len()))
}

func IsSymbol(v Value, name string) bool {
	return v.T == SYMBOL && v.V.(string) == name
}

// StartsWithSymbol says whether v is a non-empty list whose head is the given symbol.
func StartsWithSymbol(v Value, name string) bool {
	if v.T != LIST {
		return false
	}
	head, ok := Nth(v, 0)
	return ok && IsSymbol(head, name)
}
