package hub_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/hub"
	"github.com/ensemble-lang/ensemble/source/text"
)

func TestDo(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`(+ 1 2)`, "3\n"},
		{`(def! x 5) (* x 2)`, "10\n"},
		{`"foo"`, "\"foo\"\n"},
		{`   `, ""},
		{`; just a comment`, ""},
	}
	for _, test := range tests {
		var out bytes.Buffer
		hb := hub.New(&out)
		if hb.Do(test.input) {
			t.Fatalf("Test failed with input %s | quit unexpectedly.", test.input)
		}
		if out.String() != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %q | Got : %q.`, test.input, test.want, out.String())
		}
	}
}

func TestSessionKeepsBindings(t *testing.T) {
	var out bytes.Buffer
	hb := hub.New(&out)
	hb.Do(`(def! inc (fn* (x) (+ x 1)))`)
	out.Reset()
	hb.Do(`(inc 41)`)
	if out.String() != "42\n" {
		t.Fatalf(`Test failed | Wanted : "42\n" | Got : %q.`, out.String())
	}
}

func TestErrorsAndWhy(t *testing.T) {
	var out bytes.Buffer
	hb := hub.New(&out)
	hb.Do(`(nosuch 1)`)
	want := text.Red("[eval/symbol] 'nosuch' not found") + "\n"
	if out.String() != want {
		t.Fatalf(`Test failed | Wanted : %q | Got : %q.`, want, out.String())
	}
	e, ok := hb.LastError().(*err.Error)
	if !ok || e.ErrorId != "eval/symbol" {
		t.Fatalf(`Test failed | Wanted : eval/symbol | Got : %v.`, hb.LastError())
	}
	out.Reset()
	hb.Do(":why")
	if !strings.Contains(out.String(), e.Explain()) {
		t.Fatalf(`Test failed | ':why' didn't explain the error | Got : %q.`, out.String())
	}
	hb.Do(`1`)
	if hb.LastError() != nil {
		t.Fatalf(`Test failed | error wasn't cleared | Got : %v.`, hb.LastError())
	}
}

func TestHubCommands(t *testing.T) {
	var out bytes.Buffer
	hb := hub.New(&out)
	hb.Do(":help")
	if out.String() != text.HELP {
		t.Fatalf(`Test failed with input :help | Got : %q.`, out.String())
	}
	out.Reset()
	hb.Do(":env")
	if !strings.Contains(out.String(), text.BULLET+"cons\n") {
		t.Fatalf(`Test failed with input :env | Got : %q.`, out.String())
	}
	out.Reset()
	hb.Do(":frob")
	if !strings.Contains(out.String(), ":frob") {
		t.Fatalf(`Test failed with input :frob | Got : %q.`, out.String())
	}
	if !hb.Do(":quit") {
		t.Fatalf(`Test failed with input :quit | didn't quit.`)
	}
}

func TestPrintedOutputGoesToHub(t *testing.T) {
	var out bytes.Buffer
	hb := hub.New(&out)
	hb.Do(`(println "hello")`)
	if out.String() != "hello\nnil\n" {
		t.Fatalf(`Test failed | Wanted : %q | Got : %q.`, "hello\nnil\n", out.String())
	}
}
