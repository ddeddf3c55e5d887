package core

import (
	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/values"
)

func btAtom(args ...values.Value) (values.Value, error) {
	if e := CheckArity("atom", args, 1); e != nil {
		return values.NIL, e
	}
	return values.MakeAtom(args[0]), nil
}

func btDeref(args ...values.Value) (values.Value, error) {
	if e := CheckArity("deref", args, 1); e != nil {
		return values.NIL, e
	}
	a, e := atomArg("deref", args, 0)
	if e != nil {
		return values.NIL, e
	}
	return a.Value, nil
}

func btReset(args ...values.Value) (values.Value, error) {
	if e := CheckArity("reset!", args, 2); e != nil {
		return values.NIL, e
	}
	a, e := atomArg("reset!", args, 0)
	if e != nil {
		return values.NIL, e
	}
	return a.Reset(args[1]), nil
}

// (swap! a f x y) sets a to (f @a x y). If f fails the atom is left as it was.
func btSwap(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("swap!", args, 2); e != nil {
		return values.NIL, e
	}
	a, e := atomArg("swap!", args, 0)
	if e != nil {
		return values.NIL, e
	}
	fn, e := fnArg("swap!", args, 1)
	if e != nil {
		return values.NIL, e
	}
	v, e := fn.Call(append([]values.Value{a.Value}, args[2:]...)...)
	if e != nil {
		return values.NIL, e
	}
	return a.Reset(v), nil
}

func btMeta(args ...values.Value) (values.Value, error) {
	if e := CheckArity("meta", args, 1); e != nil {
		return values.NIL, e
	}
	return values.Meta(args[0]), nil
}

func btWithMeta(args ...values.Value) (values.Value, error) {
	if e := CheckArity("with-meta", args, 2); e != nil {
		return values.NIL, e
	}
	v, ok := values.WithMeta(args[0], args[1])
	if !ok {
		return values.NIL, typeError("with-meta", "a function or map", 0, args[0])
	}
	return v, nil
}

func btThrow(args ...values.Value) (values.Value, error) {
	if e := CheckArity("throw", args, 1); e != nil {
		return values.NIL, e
	}
	return values.NIL, err.Throw(args[0])
}

// (error x) makes an error value without throwing it.
func btError(args ...values.Value) (values.Value, error) {
	if e := CheckArity("error", args, 1); e != nil {
		return values.NIL, e
	}
	if args[0].T == values.ERROR {
		return args[0], nil
	}
	return values.MakeError(args[0]), nil
}

func btUnwrap(args ...values.Value) (values.Value, error) {
	if e := CheckArity("unwrap", args, 1); e != nil {
		return values.NIL, e
	}
	if args[0].T != values.ERROR {
		return values.NIL, typeError("unwrap", "an error", 0, args[0])
	}
	return args[0].V.(values.Value), nil
}
