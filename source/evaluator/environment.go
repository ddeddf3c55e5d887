package evaluator

import (
	"io"

	"github.com/ensemble-lang/ensemble/source/core"
	"github.com/ensemble-lang/ensemble/source/database"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/reader"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/values"
)

// The parts of the base environment that are written in the language itself.
const PRELUDE = `
(def! not (fn* (a) (if a false true)))

(defmacro! cond
  (fn* (& xs)
    (if (> (count xs) 0)
      (list 'if (first xs)
        (if (> (count xs) 1)
          (nth xs 1)
          (throw "odd number of forms to cond"))
        (cons 'cond (rest (rest xs)))))))
`

// NewEnvironment makes a base environment with all the built-ins in it. Whatever the built-ins
// print goes to out.
func NewEnvironment(out io.Writer) *values.Environment {
	env := values.NewEnvironment(nil, nil, nil)
	Register(env, core.Namespace(out))
	Register(env, database.Namespace())
	env.Set("eval", values.MakeNative(func(args ...values.Value) (values.Value, error) {
		if e := core.CheckArity("eval", args, 1); e != nil {
			return values.NIL, e
		}
		return Eval(args[0], env)
	}))
	if settings.LOAD_PRELUDE {
		if _, e := Rep(PRELUDE, env); e != nil {
			settings.Log.WithError(e).Error("failed to load prelude")
		}
	}
	return env
}

// Register binds native functions in an environment. This is how anything outside the core
// adds functions to the language.
func Register(env *values.Environment, fns map[string]values.NativeFn) {
	for name, fn := range fns {
		env.Set(name, values.MakeNative(fn))
	}
}

// EvalString reads and evaluates every form in the input, returning the value of the last.
func EvalString(source, input string, env *values.Environment) (values.Value, error) {
	forms, e := reader.ReadAll(source, input)
	if e != nil {
		return values.NIL, e
	}
	result := values.NIL
	for _, form := range forms {
		result, e = Eval(form, env)
		if e != nil {
			return values.NIL, e
		}
	}
	return result, nil
}

// Rep is read, eval and print.
func Rep(input string, env *values.Environment) (string, error) {
	result, e := EvalString("", input, env)
	if e != nil {
		return "", e
	}
	return printer.Print(result, true), nil
}
