package printer

import (
	"math"
	"testing"

	"github.com/ensemble-lang/ensemble/source/values"
)

func TestPrint(t *testing.T) {
	m := values.NewMap()
	m.Assoc(values.MakeKeyword("a"), values.MakeNumber(1))
	m.Assoc(values.MakeString("b"), values.MakeString("x\"y"))
	m.Assoc(values.MakeSymbol("c"), values.NIL)
	fn := values.MakeNative(func(args ...values.Value) (values.Value, error) { return values.NIL, nil })
	macro := values.MakeNative(func(args ...values.Value) (values.Value, error) { return values.NIL, nil })
	macro.V.(*values.Function).IsMacro = true
	tests := []struct {
		v        values.Value
		readable string
		display  string
	}{
		{values.NIL, "nil", "nil"},
		{values.TRUE, "true", "true"},
		{values.MakeNumber(7), "7", "7"},
		{values.MakeNumber(-3.5), "-3.5", "-3.5"},
		{values.MakeNumber(0.1), "0.1", "0.1"},
		{values.MakeNumber(1e21), "1e+21", "1e+21"},
		{values.MakeNumber(math.Inf(-1)), "-Infinity", "-Infinity"},
		{values.MakeString("a\nb\\c\"d"), `"a\nb\\c\"d"`, "a\nb\\c\"d"},
		{values.MakeKeyword("kw"), ":kw", ":kw"},
		{values.MakeSymbol("sym"), "sym", "sym"},
		{values.MakeList(values.MakeNumber(1), values.MakeString("s")), `(1 "s")`, "(1 s)"},
		{values.MakeVector(), "[]", "[]"},
		{values.Value{T: values.MAP, V: m}, `{:a 1 "b" "x\"y" c nil}`, `{:a 1 b x"y c nil}`},
		{fn, "#<fn>", "#<fn>"},
		{macro, "#<macro>", "#<macro>"},
		{values.MakeAtom(values.MakeString("x")), `(atom "x")`, "(atom x)"},
		{values.MakeError(values.MakeString("oops")), `#<error "oops">`, "#<error oops>"},
	}
	for i, tt := range tests {
		if got := Print(tt.v, true); got != tt.readable {
			t.Fatalf("tests[%d] - readable wrong. expected=%s, got=%s", i, tt.readable, got)
		}
		if got := Print(tt.v, false); got != tt.display {
			t.Fatalf("tests[%d] - display wrong. expected=%s, got=%s", i, tt.display, got)
		}
	}
}

func TestPrintList(t *testing.T) {
	got := PrintList([]values.Value{values.MakeString("a"), values.MakeNumber(2)}, true, " ")
	if got != `"a" 2` {
		t.Fatalf("PrintList wrong, got %s", got)
	}
}
