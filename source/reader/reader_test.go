package reader

import (
	"testing"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/values"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"7", "-7", "3.25", "-0.5", "nil", "true", "false",
		`"abc"`, `""`, `"a\nb"`, `"say \"hi\""`, `"back\\slash"`,
		":kw", ":a-b", "sym", "+", "swap!", "->>", "a@b",
		"(1 2 (3 4) [5 6])", "[]", "()", "{:a 1 \"b\" [2] c nil}",
	}
	for _, input := range tests {
		v, e := Read(input)
		if e != nil {
			t.Fatalf("error reading %s: %v", input, e)
		}
		if got := printer.Print(v, true); got != input {
			t.Fatalf("Test failed with input %s | Wanted : %s | Got : %s.", input, input, got)
		}
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  7  ", "7"},
		{"1 ; comment", "1"},
		{"( + 1,2 )", "(+ 1 2)"},
		{"'x", "(quote x)"},
		{"`(a ~b ~@c)", "(quasiquote (a (unquote b) (splice-unquote c)))"},
		{"@a", "(deref a)"},
		{"^{:doc 1} [1 2]", "(with-meta [1 2] {:doc 1})"},
		{"null", "nil"},
		{"name:", ":name"},
		{"{:a}", "{:a nil}"},
		{`"a\qb"`, `"aqb"`},
		{"1.5.5", "1.5.5"},
		{"", "nil"},
		{"; only a comment", "nil"},
		{"(1 2) (3 4)", "(1 2)"},
	}
	for _, tt := range tests {
		v, e := Read(tt.input)
		if e != nil {
			t.Fatalf("error reading %s: %v", tt.input, e)
		}
		if got := printer.Print(v, true); got != tt.want {
			t.Fatalf("Test failed with input %s | Wanted : %s | Got : %s.", tt.input, tt.want, got)
		}
	}
}

func TestReadKinds(t *testing.T) {
	tests := []struct {
		input string
		want  values.ValueType
	}{
		{"1.5.5", values.SYMBOL},
		{"-", values.SYMBOL},
		{"-12", values.NUMBER},
		{":k", values.KEYWORD},
		{`"s"`, values.STRING},
		{"[1]", values.VECTOR},
		{"(1)", values.LIST},
		{"{}", values.MAP},
	}
	for _, tt := range tests {
		v, _ := Read(tt.input)
		if v.T != tt.want {
			t.Fatalf("reading %s gave a %v, wanted a %v", tt.input, v.T, tt.want)
		}
	}
}

func TestCommentsDontMatter(t *testing.T) {
	a, _ := Read("1 ; comment")
	b, _ := Read("1")
	if !values.Equal(a, b) {
		t.Fatalf("comment changed the value read")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		input string
		id    string
		msg   string
	}{
		{"(1 2", "read/eof/seq", "expected ')', got EOF"},
		{"[1 (2]", "read/unexpected", "unexpected ']'"},
		{")", "read/unexpected", "unexpected ')'"},
		{`"abc`, "read/eof/string", `expected '"', got EOF`},
		{`"abc\"`, "read/eof/string", `expected '"', got EOF`},
		{"'", "read/eof/macro", "expected a form after ''', got EOF"},
		{"^{}", "read/eof/macro", "expected a form after '^', got EOF"},
		{"{1 2}", "read/key", "can't use '1' as key of map"},
	}
	for _, tt := range tests {
		_, e := Read(tt.input)
		if e == nil {
			t.Fatalf("expected an error reading %s", tt.input)
		}
		ee := e.(*err.Error)
		if ee.ErrorId != tt.id || ee.Message != tt.msg {
			t.Fatalf("Test failed with input %s | Wanted : [%s] %s | Got : [%s] %s.", tt.input, tt.id, tt.msg, ee.ErrorId, ee.Message)
		}
		if ee.Catchable() {
			t.Fatalf("read errors should not be catchable")
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, e := ReadAll("test", "(def! x 1)\n  (foo ]")
	ee := e.(*err.Error)
	if ee.Token == nil || ee.Token.Line != 2 || ee.Token.ChStart != 7 {
		t.Fatalf("wrong position for error: %+v", ee.Token)
	}
}

func TestReadAll(t *testing.T) {
	forms, e := ReadAll("", "(def! a 1) ; one\n(def! b 2)\n\n b")
	if e != nil {
		t.Fatalf("unexpected error %v", e)
	}
	if len(forms) != 3 || printer.Print(forms[2], true) != "b" {
		t.Fatalf("ReadAll read the wrong forms")
	}
}
