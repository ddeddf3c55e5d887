package core

import (
	"github.com/ensemble-lang/ensemble/source/values"
)

// Most of the predicates just ask what kind of value they've got.
func isKind(name string, t values.ValueType) values.NativeFn {
	return func(args ...values.Value) (values.Value, error) {
		if e := CheckArity(name, args, 1); e != nil {
			return values.NIL, e
		}
		return values.MakeBool(args[0].T == t), nil
	}
}

func btEquals(args ...values.Value) (values.Value, error) {
	if e := CheckArity("=", args, 2); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(values.Equal(args[0], args[1])), nil
}

func btIsTrue(args ...values.Value) (values.Value, error) {
	if e := CheckArity("true?", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(args[0].T == values.BOOL && args[0].V.(bool)), nil
}

func btIsFalse(args ...values.Value) (values.Value, error) {
	if e := CheckArity("false?", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(args[0].T == values.BOOL && !args[0].V.(bool)), nil
}

func btIsFn(args ...values.Value) (values.Value, error) {
	if e := CheckArity("fn?", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(args[0].T == values.FUNC && !args[0].V.(*values.Function).IsMacro), nil
}

func btIsMacro(args ...values.Value) (values.Value, error) {
	if e := CheckArity("macro?", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(args[0].T == values.FUNC && args[0].V.(*values.Function).IsMacro), nil
}

func btIsSequential(args ...values.Value) (values.Value, error) {
	if e := CheckArity("sequential?", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeBool(values.IsSequential(args[0])), nil
}

// 'and' and 'or' use the looser truthiness of the host, so (and 1 0) is false. Unlike 'if' they
// evaluate all their arguments, being functions.
func btAnd(args ...values.Value) (values.Value, error) {
	for _, arg := range args {
		if !values.IsHostTruthy(arg) {
			return values.FALSE, nil
		}
	}
	return values.TRUE, nil
}

func btOr(args ...values.Value) (values.Value, error) {
	for _, arg := range args {
		if values.IsHostTruthy(arg) {
			return values.TRUE, nil
		}
	}
	return values.FALSE, nil
}
