package values

import (
	"src.elv.sh/pkg/persistent/vector"
)

// Iterators walk anything that the sequence built-ins can take apart: lists, vectors, strings
// (one character at a time), maps (one [key value] vector at a time) and nil (nothing at all).
type Iterator interface {
	Unfinished() bool
	NextValue() Value
}

// NewIterator fails for kinds which can't be iterated over.
func NewIterator(v Value) (Iterator, bool) {
	switch v.T {
	case NULL:
		return &ListIterator{VecIt: vector.Empty.Iterator()}, true
	case LIST, VECTOR:
		return &ListIterator{VecIt: v.V.(vector.Vector).Iterator()}, true
	case STRING:
		return &StringIterator{Str: []rune(v.V.(string))}, true
	case MAP:
		return &MapIterator{Map: v.V.(*Map), keys: v.V.(*Map).Keys()}, true
	}
	return nil, false
}

// Collect drains an iterator into a slice.
func Collect(it Iterator) []Value {
	result := []Value{}
	for it.Unfinished() {
		result = append(result, it.NextValue())
	}
	return result
}

type ListIterator struct {
	VecIt vector.Iterator
}

func (it *ListIterator) Unfinished() bool {
	return it.VecIt.HasElem()
}

func (it *ListIterator) NextValue() Value {
	valResult := it.VecIt.Elem().(Value)
	it.VecIt.Next()
	return valResult
}

type StringIterator struct {
	Str []rune
	pos int
}

func (it *StringIterator) Unfinished() bool {
	return it.pos < len(it.Str)
}

func (it *StringIterator) NextValue() Value {
	valResult := MakeString(string(it.Str[it.pos]))
	it.pos++
	return valResult
}

type MapIterator struct {
	Map  *Map
	keys []string
	pos  int
}

func (it *MapIterator) Unfinished() bool {
	return it.pos < len(it.keys)
}

func (it *MapIterator) NextValue() Value {
	k := it.keys[it.pos]
	v, _ := it.Map.Get(k)
	it.pos++
	return MakeVector(KeyValue(k), v)
}
