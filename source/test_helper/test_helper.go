package test_helper

import (
	"io"
	"os"
	"testing"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/evaluator"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/values"
)

// Auxiliary types and functions for testing the reader and evaluator.

type TestItem struct {
	Input string
	Want  string
}

// RunTest evaluates each input in a fresh base environment, into which the named file in the
// package's test-files directory has first been loaded. An empty filename loads nothing.
func RunTest(t *testing.T, filename string, tests []TestItem, F func(env *values.Environment, s string) (string, error)) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		env := evaluator.NewEnvironment(io.Discard)
		if filename != "" {
			code, e := os.ReadFile(wd + "/test-files/" + filename)
			if e != nil {
				t.Fatalf("Can't read test file %s: %v", filename, e)
			}
			if _, e := evaluator.EvalString(filename, string(code), env); e != nil {
				t.Fatalf("There were errors loading %s: \n%v", filename, describe(e))
			}
		}
		got, e := F(env, test.Input)
		if e != nil {
			println(text.Red(test.Input))
			println("There were errors evaluating the line: \n" + describe(e) + "\n")
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// TestValues evaluates the input and prints the value readably.
func TestValues(env *values.Environment, s string) (string, error) {
	v, e := evaluator.EvalString("test", s, env)
	if e != nil {
		return "", e
	}
	return printer.Print(v, true), nil
}

// TestErrors evaluates input which ought to fail, and returns the id of the error.
func TestErrors(env *values.Environment, s string) (string, error) {
	_, e := evaluator.EvalString("test", s, env)
	if e == nil {
		return "", nil
	}
	if ee, ok := e.(*err.Error); ok {
		return ee.ErrorId, nil
	}
	return e.Error(), nil
}

func describe(e error) string {
	if ee, ok := e.(*err.Error); ok {
		return ee.Describe()
	}
	return e.Error()
}
