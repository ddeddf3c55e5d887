package evaluator

import (
	"strings"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/values"
)

// MakeClosure builds a function value from fn* parameters and body. The Native field is filled in
// so that built-ins such as 'map' and 'swap!' can call closures without knowing about the evaluator.
func MakeClosure(params []string, body values.Value, env *values.Environment) values.Value {
	cl := &values.Closure{Params: params, Body: body, Env: env}
	return values.MakeClosure(cl, func(args ...values.Value) (values.Value, error) {
		return applyClosure(cl, args)
	})
}

// Apply calls a function value with arguments that have already been evaluated.
func Apply(fn *values.Function, args []values.Value) (values.Value, error) {
	if fn.IsClosure() {
		return applyClosure(fn.Closure, args)
	}
	return callNative(fn, args)
}

func applyClosure(cl *values.Closure, args []values.Value) (values.Value, error) {
	env, e := bindArgs(cl, args)
	if e != nil {
		return values.NIL, e
	}
	return Eval(cl.Body, env)
}

func bindArgs(cl *values.Closure, args []values.Value) (*values.Environment, error) {
	if !cl.Accepts(len(args)) {
		return nil, err.CreateErr("eval/apply/arity", nil, "("+strings.Join(cl.Params, " ")+")", len(args))
	}
	return values.NewEnvironment(cl.Env, cl.Params, args), nil
}

// Errors from the host are turned into catchable errors of our own.
func callNative(fn *values.Function, args []values.Value) (values.Value, error) {
	result, e := fn.Native(args...)
	if e == nil {
		return result, nil
	}
	if _, ok := e.(*err.Error); ok {
		return values.NIL, e
	}
	return values.NIL, err.CreateErr("eval/native", nil, e.Error())
}

func paramNames(params values.Value) ([]string, error) {
	if !values.IsSequential(params) {
		return nil, err.CreateErr("eval/params", nil)
	}
	items := values.Items(params)
	result := make([]string, 0, len(items))
	for i, p := range items {
		if p.T != values.SYMBOL {
			return nil, err.CreateErr("eval/params", nil)
		}
		name := p.V.(string)
		if name == values.VARIADIC_MARKER && i != len(items)-2 {
			return nil, err.CreateErr("eval/params", nil)
		}
		result = append(result, name)
	}
	return result, nil
}

// If the head of a list is a symbol bound to a macro, we return the macro.
func macroFor(ast values.Value, env *values.Environment) (*values.Function, bool) {
	head, ok := values.Nth(ast, 0)
	if !ok || ast.T != values.LIST || head.T != values.SYMBOL {
		return nil, false
	}
	v, ok := env.Get(head.V.(string))
	if !ok || v.T != values.FUNC || !v.V.(*values.Function).IsMacro {
		return nil, false
	}
	return v.V.(*values.Function), true
}

// Macroexpand applies macros to the unevaluated rest of the list until the head of what we have
// isn't a macro any more.
func Macroexpand(ast values.Value, env *values.Environment) (values.Value, error) {
	for {
		macro, ok := macroFor(ast, env)
		if !ok {
			return ast, nil
		}
		expanded, e := Apply(macro, values.Items(ast)[1:])
		if e != nil {
			return values.NIL, e
		}
		ast = expanded
	}
}

// Quasiquote rewrites a quasiquoted form into the calls to 'cons', 'concat' and 'vec' that build it.
func Quasiquote(ast values.Value) values.Value {
	switch ast.T {
	case values.LIST:
		if values.StartsWithSymbol(ast, "unquote") {
			arg, _ := values.Nth(ast, 1)
			return arg
		}
		return quasiquoteItems(values.Items(ast))
	case values.VECTOR:
		return values.MakeList(values.MakeSymbol("vec"), quasiquoteItems(values.Items(ast)))
	case values.MAP, values.SYMBOL:
		return values.MakeList(values.MakeSymbol("quote"), ast)
	}
	return ast
}

func quasiquoteItems(items []values.Value) values.Value {
	result := values.EMPTY_LIST
	for i := len(items) - 1; i >= 0; i-- {
		if values.StartsWithSymbol(items[i], "splice-unquote") {
			arg, _ := values.Nth(items[i], 1)
			result = values.MakeList(values.MakeSymbol("concat"), arg, result)
		} else {
			result = values.MakeList(values.MakeSymbol("cons"), Quasiquote(items[i]), result)
		}
	}
	return result
}
