// Package core supplies the built-in functions of the base environment. Every one of them has the
// calling convention of values.NativeFn and reports failure by returning an *err.Error.
package core

import (
	"io"

	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/text"
	"github.com/ensemble-lang/ensemble/source/values"
)

// The built-ins which print things need somewhere to print them.
type builtins struct {
	out io.Writer
}

func Namespace(out io.Writer) map[string]values.NativeFn {
	b := &builtins{out: out}
	return map[string]values.NativeFn{
		"*":           btMultiply,
		"+":           btAdd,
		"-":           btSubtract,
		"/":           btDivide,
		"<":           btLt,
		"<=":          btLte,
		"=":           btEquals,
		">":           btGt,
		">=":          btGte,
		"and":         btAnd,
		"apply":       btApply,
		"assoc":       btAssoc,
		"atom":        btAtom,
		"atom?":       isKind("atom?", values.ATOM),
		"concat":      btConcat,
		"conj":        btConj,
		"cons":        btCons,
		"contains?":   btContains,
		"count":       btCount,
		"deref":       btDeref,
		"dissoc":      btDissoc,
		"empty?":      btEmpty,
		"error":       btError,
		"error?":      isKind("error?", values.ERROR),
		"false?":      btIsFalse,
		"first":       btFirst,
		"fn?":         btIsFn,
		"get":         btGet,
		"hash-map":    btHashMap,
		"join":        btJoin,
		"keys":        btKeys,
		"keyword":     btKeyword,
		"keyword?":    isKind("keyword?", values.KEYWORD),
		"last":        btLast,
		"list":        btList,
		"list?":       isKind("list?", values.LIST),
		"macro?":      btIsMacro,
		"map":         btMap,
		"map?":        isKind("map?", values.MAP),
		"meta":        btMeta,
		"mod":         btMod,
		"nil?":        isKind("nil?", values.NULL),
		"nth":         btNth,
		"number?":     isKind("number?", values.NUMBER),
		"or":          btOr,
		"pr-str":      btPrStr,
		"println":     b.btPrintln,
		"prn":         b.btPrn,
		"read-string": btReadString,
		"reset!":      btReset,
		"rest":        btRest,
		"seq":         btSeq,
		"sequential?": btIsSequential,
		"str":         btStr,
		"string?":     isKind("string?", values.STRING),
		"swap!":       btSwap,
		"symbol":      btSymbol,
		"symbol?":     isKind("symbol?", values.SYMBOL),
		"throw":       btThrow,
		"time-ms":     btTimeMs,
		"trim":        btTrim,
		"true?":       btIsTrue,
		"unwrap":      btUnwrap,
		"vals":        btVals,
		"vec":         btVec,
		"vector":      btVector,
		"vector?":     isKind("vector?", values.VECTOR),
		"with-meta":   btWithMeta,
	}
}

// CheckArity checks for exactly n arguments.
func CheckArity(name string, args []values.Value, n int) error {
	if len(args) != n {
		return err.CreateErr("built/arity", nil, name, text.Plural(n, "argument"), len(args))
	}
	return nil
}

func checkArityAtLeast(name string, args []values.Value, n int) error {
	if len(args) < n {
		return err.CreateErr("built/arity", nil, name, "at least "+text.Plural(n, "argument"), len(args))
	}
	return nil
}

func checkArityBetween(name string, args []values.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		return err.CreateErr("built/arity", nil, name, "between "+text.Plural(min, "argument")+" and "+text.Plural(max, "argument"), len(args))
	}
	return nil
}

// Arguments are counted from 1 in error messages.
func typeError(name, want string, i int, got values.Value) error {
	return err.CreateErr("built/type", nil, name, want, i+1, got.T.String())
}

func numberArg(name string, args []values.Value, i int) (float64, error) {
	if args[i].T != values.NUMBER {
		return 0, typeError(name, "a number", i, args[i])
	}
	return args[i].V.(float64), nil
}

func stringArg(name string, args []values.Value, i int) (string, error) {
	if args[i].T != values.STRING {
		return "", typeError(name, "a string", i, args[i])
	}
	return args[i].V.(string), nil
}

func seqArg(name string, args []values.Value, i int) ([]values.Value, error) {
	if !values.IsSequential(args[i]) {
		return nil, typeError(name, "a list or vector", i, args[i])
	}
	return values.Items(args[i]), nil
}

func mapArg(name string, args []values.Value, i int) (*values.Map, error) {
	if args[i].T != values.MAP {
		return nil, typeError(name, "a map", i, args[i])
	}
	return args[i].V.(*values.Map), nil
}

func fnArg(name string, args []values.Value, i int) (*values.Function, error) {
	if args[i].T != values.FUNC {
		return nil, typeError(name, "a function", i, args[i])
	}
	return args[i].V.(*values.Function), nil
}

func atomArg(name string, args []values.Value, i int) (*values.Atom, error) {
	if args[i].T != values.ATOM {
		return nil, typeError(name, "an atom", i, args[i])
	}
	return args[i].V.(*values.Atom), nil
}
