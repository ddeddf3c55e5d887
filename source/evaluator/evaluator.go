package evaluator

// This is your standard trampolined evaluator. Anything in tail position (the branches of 'if', the
// last form of 'do' and 'let*', the body of a closure, the handler of 'try*') is evaluated by going
// round the loop again with new values of ast and env rather than by recursing, so tail recursion
// through closures runs in constant stack.

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/printer"
	"github.com/ensemble-lang/ensemble/source/settings"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/values"
)

type specialForm int

const (
	NOT_SPECIAL specialForm = iota
	QUOTE
	QUASIQUOTE
	QUASIQUOTE_EXPAND
	DEF
	LET
	DO
	IF
	FN
	DEFMACRO
	MACROEXPAND
	TRY
)

// The special forms, by the text of the symbol at the head of the list. The aliases are for
// people who think in JavaScript.
var specialForms = map[string]specialForm{
	"quote":            QUOTE,
	"quasiquote":       QUASIQUOTE,
	"quasiquoteexpand": QUASIQUOTE_EXPAND,
	"def!":             DEF,
	"var":              DEF,
	"let*":             LET,
	"let":              LET,
	"const":            LET,
	"do":               DO,
	"if":               IF,
	"fn*":              FN,
	"function":         FN,
	"=>":               FN,
	"defmacro!":        DEFMACRO,
	"macroexpand":      MACROEXPAND,
	"try*":             TRY,
	"try":              TRY,
}

func lookupSpecialForm(head values.Value) specialForm {
	if head.T != values.SYMBOL {
		return NOT_SPECIAL
	}
	return specialForms[head.V.(string)]
}

// How deeply calls to Eval are nested. Evaluation is single-threaded.
var depth int

// Eval evaluates a form. Nesting deeper than settings.MAX_EVAL_DEPTH is a catchable error rather
// than a crash of the host stack.
func Eval(ast values.Value, env *values.Environment) (values.Value, error) {
	if depth >= settings.MAX_EVAL_DEPTH {
		return values.NIL, err.CreateErr("eval/depth", nil, settings.MAX_EVAL_DEPTH)
	}
	depth++
	defer func() { depth-- }()
	return eval(ast, env)
}

func eval(ast values.Value, env *values.Environment) (values.Value, error) {
	for {
		if settings.SHOW_EVAL {
			settings.Log.WithFields(logrus.Fields{"kind": ast.T.String()}).Trace("eval " + printer.Print(ast, true))
		}
		if ast.T != values.LIST {
			return evalAst(ast, env)
		}
		expanded, e := Macroexpand(ast, env)
		if e != nil {
			return values.NIL, e
		}
		ast = expanded
		if ast.T != values.LIST {
			return evalAst(ast, env)
		}
		items := values.Items(ast)
		if len(items) == 0 {
			return ast, nil
		}
		switch lookupSpecialForm(items[0]) {
		case QUOTE:
			if e := checkLength(items, 2, 2, "quote"); e != nil {
				return values.NIL, e
			}
			return items[1], nil
		case QUASIQUOTE_EXPAND:
			if e := checkLength(items, 2, 2, "quasiquoteexpand"); e != nil {
				return values.NIL, e
			}
			return Quasiquote(items[1]), nil
		case QUASIQUOTE:
			if e := checkLength(items, 2, 2, "quasiquote"); e != nil {
				return values.NIL, e
			}
			ast = Quasiquote(items[1])
			continue
		case DEF:
			return evalDef(items, env, false)
		case DEFMACRO:
			return evalDef(items, env, true)
		case MACROEXPAND:
			if e := checkLength(items, 2, 2, "macroexpand"); e != nil {
				return values.NIL, e
			}
			form, e := Eval(items[1], env)
			if e != nil {
				return values.NIL, e
			}
			return Macroexpand(form, env)
		case LET:
			if e := checkLength(items, 2, -1, "let*"); e != nil {
				return values.NIL, e
			}
			newEnv, e := bindLet(items[1], env)
			if e != nil {
				return values.NIL, e
			}
			env = newEnv
			if len(items) == 2 {
				return values.NIL, nil
			}
			last, e := evalForEffect(items[2:], env)
			if e != nil {
				return values.NIL, e
			}
			ast = last
			continue
		case DO:
			if len(items) == 1 {
				return values.NIL, nil
			}
			last, e := evalForEffect(items[1:], env)
			if e != nil {
				return values.NIL, e
			}
			ast = last
			continue
		case IF:
			if e := checkLength(items, 3, 4, "if"); e != nil {
				return values.NIL, e
			}
			cond, e := Eval(items[1], env)
			if e != nil {
				return values.NIL, e
			}
			switch {
			case values.IsTruthy(cond):
				ast = items[2]
			case len(items) == 4:
				ast = items[3]
			default:
				return values.NIL, nil
			}
			continue
		case FN:
			if e := checkLength(items, 3, -1, "fn*"); e != nil {
				return values.NIL, e
			}
			params, e := paramNames(items[1])
			if e != nil {
				return values.NIL, e
			}
			return MakeClosure(params, body(items[2:]), env), nil
		case TRY:
			if e := checkLength(items, 2, 3, "try*"); e != nil {
				return values.NIL, e
			}
			if len(items) == 2 {
				ast = items[1]
				continue
			}
			name, handler, e := catchClause(items[2])
			if e != nil {
				return values.NIL, e
			}
			result, e := Eval(items[1], env)
			if e == nil {
				return result, nil
			}
			thrown, ok := e.(*err.Error)
			if !ok || !thrown.Catchable() {
				return values.NIL, e
			}
			settings.Log.WithField("id", thrown.ErrorId).Debug("caught " + thrown.Message)
			env = values.NewEnvironment(env, []string{name}, []values.Value{thrown.Value()})
			ast = handler
			continue
		}
		// So it's a function call.
		evaluated, e := evalItems(items, env)
		if e != nil {
			return values.NIL, e
		}
		f := evaluated[0]
		args := evaluated[1:]
		if f.T != values.FUNC {
			return values.NIL, err.CreateErr("eval/apply/func", nil, printer.Print(items[0], true))
		}
		fn := f.V.(*values.Function)
		if !fn.IsClosure() {
			return callNative(fn, args)
		}
		newEnv, e := bindArgs(fn.Closure, args)
		if e != nil {
			return values.NIL, e
		}
		env = newEnv
		ast = fn.Closure.Body
	}
}

// Symbols are looked up, vectors and maps have their elements evaluated, and everything else
// evaluates to itself.
func evalAst(ast values.Value, env *values.Environment) (values.Value, error) {
	switch ast.T {
	case values.SYMBOL:
		v, ok := env.Get(ast.V.(string))
		if !ok {
			return values.NIL, err.CreateErr("eval/symbol", nil, ast.V.(string))
		}
		return v, nil
	case values.VECTOR:
		items, e := evalItems(values.Items(ast), env)
		if e != nil {
			return values.NIL, e
		}
		return values.MakeVector(items...), nil
	case values.MAP:
		result := values.NewMap()
		var e error
		ast.V.(*values.Map).Range(func(key, val values.Value) {
			if e != nil {
				return
			}
			var v values.Value
			v, e = Eval(val, env)
			result.Assoc(key, v)
		})
		if e != nil {
			return values.NIL, e
		}
		return values.Value{T: values.MAP, V: result}, nil
	}
	return ast, nil
}

func evalItems(items []values.Value, env *values.Environment) ([]values.Value, error) {
	result := make([]values.Value, 0, len(items))
	for _, item := range items {
		v, e := Eval(item, env)
		if e != nil {
			return nil, e
		}
		result = append(result, v)
	}
	return result, nil
}

// Evaluates all but the last form and returns the last, unevaluated, for the trampoline.
func evalForEffect(forms []values.Value, env *values.Environment) (values.Value, error) {
	for _, form := range forms[:len(forms)-1] {
		if _, e := Eval(form, env); e != nil {
			return values.NIL, e
		}
	}
	return forms[len(forms)-1], nil
}

func evalDef(items []values.Value, env *values.Environment, macro bool) (values.Value, error) {
	name := "def!"
	if macro {
		name = "defmacro!"
	}
	if e := checkLength(items, 3, 3, name); e != nil {
		return values.NIL, e
	}
	if items[1].T != values.SYMBOL {
		return values.NIL, err.CreateErr("eval/form/symbol", nil, name, printer.Print(items[1], true))
	}
	val, e := Eval(items[2], env)
	if e != nil {
		return values.NIL, e
	}
	if macro {
		if val.T != values.FUNC {
			return values.NIL, err.CreateErr("built/type", nil, name, "a function", 2, val.T.String())
		}
		f := *val.V.(*values.Function)
		f.IsMacro = true
		val = values.Value{T: values.FUNC, V: &f}
	}
	return env.Set(items[1].V.(string), val), nil
}

func bindLet(bindings values.Value, env *values.Environment) (*values.Environment, error) {
	if !values.IsSequential(bindings) || values.Len(bindings)%2 != 0 {
		return nil, err.CreateErr("eval/bindings", nil, "let*")
	}
	newEnv := values.NewEnvironment(env, nil, nil)
	pairs := values.Items(bindings)
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i].T != values.SYMBOL {
			return nil, err.CreateErr("eval/form/symbol", nil, "let*", printer.Print(pairs[i], true))
		}
		val, e := Eval(pairs[i+1], newEnv)
		if e != nil {
			return nil, e
		}
		newEnv.Set(pairs[i].V.(string), val)
	}
	return newEnv, nil
}

func catchClause(clause values.Value) (string, values.Value, error) {
	items := values.Items(clause)
	if clause.T != values.LIST || len(items) < 3 ||
		!(values.IsSymbol(items[0], "catch*") || values.IsSymbol(items[0], "catch")) ||
		items[1].T != values.SYMBOL {
		return "", values.NIL, err.CreateErr("eval/catch", nil)
	}
	return items[1].V.(string), body(items[2:]), nil
}

// Several body forms are evaluated as though wrapped in 'do'.
func body(forms []values.Value) values.Value {
	if len(forms) == 1 {
		return forms[0]
	}
	return values.MakeList(append([]values.Value{values.MakeSymbol("do")}, forms...)...)
}

// checkLength checks the number of elements of a special form including its head. A max of -1
// means there is no maximum.
func checkLength(items []values.Value, min, max int, name string) error {
	n := len(items)
	if n >= min && (max == -1 || n <= max) {
		return nil
	}
	return err.CreateErr("eval/form/args", nil, name, describeCount(min-1, max-1), n-1)
}

func describeCount(min, max int) string {
	switch {
	case max < 0:
		return "at least " + text.Plural(min, "argument")
	case min == max:
		return text.Plural(min, "argument")
	}
	return "between " + strconv.Itoa(min) + " and " + text.Plural(max, "argument")
}
