package values

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	one, two := MakeNumber(1), MakeNumber(2)
	m1 := NewMap()
	m1.Assoc(MakeKeyword("a"), one)
	m1.Assoc(MakeString("b"), two)
	m2 := NewMap()
	m2.Assoc(MakeString("b"), two)
	m2.Assoc(MakeKeyword("a"), one)
	m3 := NewMap()
	m3.Assoc(MakeSymbol("a"), one)
	m3.Assoc(MakeString("b"), two)
	f := MakeNative(func(args ...Value) (Value, error) { return NIL, nil })
	g := MakeNative(func(args ...Value) (Value, error) { return NIL, nil })
	a := MakeAtom(one)
	tests := []struct {
		a, b Value
		want bool
	}{
		{NIL, NIL, true},
		{NIL, FALSE, false},
		{one, MakeNumber(1), true},
		{one, two, false},
		{MakeNumber(math.NaN()), MakeNumber(math.NaN()), false},
		{MakeString("a"), MakeKeyword("a"), false},
		{MakeSymbol("a"), MakeSymbol("a"), true},
		{MakeList(one, two), MakeVector(one, two), true},
		{MakeVector(one, MakeList(two)), MakeList(one, MakeVector(two)), true},
		{MakeList(one, two), MakeList(one), false},
		{EMPTY_LIST, EMPTY_VECTOR, true},
		{Value{MAP, m1}, Value{MAP, m2}, true},
		{Value{MAP, m1}, Value{MAP, m3}, false},
		{f, f, true},
		{f, g, false},
		{a, a, true},
		{a, MakeAtom(one), false},
		{MakeError(one), MakeError(MakeNumber(1)), true},
	}
	for i, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Fatalf("tests[%d] - Equal wrong. expected=%v, got=%v", i, tt.want, got)
		}
	}
}

func TestNilKind(t *testing.T) {
	if NIL.T != NULL || !NIL.IsNil() || NIL.T.String() != "nil" {
		t.Fatalf("nil has the wrong kind: %v", NIL.T)
	}
	if FALSE.IsNil() || MakeString("").IsNil() || EMPTY_LIST.IsNil() {
		t.Fatalf("only nil is nil")
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		v        Value
		language bool
		host     bool
	}{
		{NIL, false, false},
		{FALSE, false, false},
		{TRUE, true, true},
		{MakeNumber(0), true, false},
		{MakeNumber(math.NaN()), true, false},
		{MakeNumber(-1), true, true},
		{MakeString(""), true, false},
		{MakeString("x"), true, true},
		{EMPTY_LIST, true, true},
	}
	for i, tt := range tests {
		if got := IsTruthy(tt.v); got != tt.language {
			t.Fatalf("tests[%d] - IsTruthy wrong. expected=%v, got=%v", i, tt.language, got)
		}
		if got := IsHostTruthy(tt.v); got != tt.host {
			t.Fatalf("tests[%d] - IsHostTruthy wrong. expected=%v, got=%v", i, tt.host, got)
		}
	}
}

func TestWithMetaCopies(t *testing.T) {
	f := MakeNative(func(args ...Value) (Value, error) { return TRUE, nil })
	g, ok := WithMeta(f, MakeString("doc"))
	if !ok {
		t.Fatalf("functions should take metadata")
	}
	if !Meta(f).IsNil() {
		t.Fatalf("original function was changed")
	}
	if !Equal(Meta(g), MakeString("doc")) {
		t.Fatalf("copy has no metadata")
	}
	m := MakeMap()
	m.V.(*Map).Assoc(MakeKeyword("k"), TRUE)
	n, _ := WithMeta(m, MakeNumber(3))
	if !Meta(m).IsNil() || !Equal(Meta(n), MakeNumber(3)) {
		t.Fatalf("map metadata wrong")
	}
	if !Equal(m, n) {
		t.Fatalf("metadata should not affect equality")
	}
	if _, ok := WithMeta(MakeNumber(1), NIL); ok {
		t.Fatalf("numbers should not take metadata")
	}
}

func TestMapOrderAndKeys(t *testing.T) {
	m := NewMap()
	m.Assoc(MakeKeyword("z"), MakeNumber(1))
	m.Assoc(MakeString("a"), MakeNumber(2))
	m.Assoc(MakeSymbol("m"), MakeNumber(3))
	m.Assoc(MakeKeyword("z"), MakeNumber(4))
	if m.Len() != 3 {
		t.Fatalf("expected 3 keys, got %d", m.Len())
	}
	want := []Value{MakeKeyword("z"), MakeString("a"), MakeSymbol("m")}
	i := 0
	m.Range(func(k, v Value) {
		if !Equal(k, want[i]) || k.T != want[i].T {
			t.Fatalf("key %d wrong", i)
		}
		i++
	})
	if v, _ := m.Lookup(MakeKeyword("z")); !Equal(v, MakeNumber(4)) {
		t.Fatalf("re-inserting should replace the value")
	}
	if _, ok := m.Lookup(MakeString("z")); ok {
		t.Fatalf("string and keyword keys should differ")
	}
	if m.Assoc(MakeNumber(1), NIL) {
		t.Fatalf("numbers should not be keys")
	}
	m.Delete(":z")
	if m.Len() != 2 || m.Keys()[0] != `"a` {
		t.Fatalf("delete went wrong: %v", m.Keys())
	}
}

func TestEnvironment(t *testing.T) {
	outer := NewEnvironment(nil, nil, nil)
	outer.Set("x", MakeNumber(1))
	inner := NewEnvironment(outer, nil, nil)
	inner.Set("x", MakeNumber(2))
	if v, _ := inner.Get("x"); !Equal(v, MakeNumber(2)) {
		t.Fatalf("inner binding should shadow outer")
	}
	if v, _ := outer.Get("x"); !Equal(v, MakeNumber(1)) {
		t.Fatalf("set in the inner frame changed the outer one")
	}
	if inner.Find("x") != inner || outer.Find("x") != outer || inner.Find("y") != nil {
		t.Fatalf("find went wrong")
	}
	if _, ok := inner.Get("y"); ok {
		t.Fatalf("y should not be found")
	}
}

func TestVariadicBinding(t *testing.T) {
	env := NewEnvironment(nil, []string{"a", "&", "more"}, []Value{MakeNumber(1), MakeNumber(2), MakeNumber(3)})
	if v, _ := env.Get("more"); !Equal(v, MakeList(MakeNumber(2), MakeNumber(3))) || v.T != LIST {
		t.Fatalf("rest arguments wrong")
	}
	env = NewEnvironment(nil, []string{"a", "&", "more"}, []Value{MakeNumber(1)})
	if v, _ := env.Get("more"); v.T != LIST || Len(v) != 0 {
		t.Fatalf("empty rest arguments should be an empty list")
	}
	cl := &Closure{Params: []string{"a", "&", "more"}}
	if !cl.Accepts(1) || !cl.Accepts(5) || cl.Accepts(0) {
		t.Fatalf("variadic arity wrong")
	}
	cl = &Closure{Params: []string{"a", "b"}}
	if !cl.Accepts(2) || cl.Accepts(3) || cl.Accepts(1) {
		t.Fatalf("fixed arity wrong")
	}
	cl = &Closure{Params: []string{"&", "xs"}}
	if n, rest := cl.Arity(); n != 0 || rest != "xs" || !cl.Accepts(0) {
		t.Fatalf("all-variadic arity wrong")
	}
}

func TestIterators(t *testing.T) {
	it, _ := NewIterator(MakeString("héllo"))
	if got := Collect(it); len(got) != 5 || !Equal(got[1], MakeString("é")) {
		t.Fatalf("string iteration wrong")
	}
	m := MakeMap()
	m.V.(*Map).Assoc(MakeKeyword("a"), MakeNumber(1))
	it, _ = NewIterator(m)
	if got := Collect(it); len(got) != 1 || !Equal(got[0], MakeVector(MakeKeyword("a"), MakeNumber(1))) {
		t.Fatalf("map iteration wrong")
	}
	it, _ = NewIterator(NIL)
	if it.Unfinished() {
		t.Fatalf("nil should be empty")
	}
	if _, ok := NewIterator(MakeNumber(1)); ok {
		t.Fatalf("numbers should not be iterable")
	}
}
