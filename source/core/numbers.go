package core

import (
	"math"
	"time"

	"github.com/ensemble-lang/ensemble/source/values"
)

// The arithmetic operators fold over any number of arguments. Division by zero follows the
// floating point rules and gives an infinity or NaN.
func fold(name string, unit float64, op func(float64, float64) float64, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.MakeNumber(unit), nil
	}
	acc, e := numberArg(name, args, 0)
	if e != nil {
		return values.NIL, e
	}
	if len(args) == 1 {
		return values.MakeNumber(op(unit, acc)), nil
	}
	for i := 1; i < len(args); i++ {
		n, e := numberArg(name, args, i)
		if e != nil {
			return values.NIL, e
		}
		acc = op(acc, n)
	}
	return values.MakeNumber(acc), nil
}

func btAdd(args ...values.Value) (values.Value, error) {
	return fold("+", 0, func(a, b float64) float64 { return a + b }, args)
}

func btSubtract(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("-", args, 1); e != nil {
		return values.NIL, e
	}
	return fold("-", 0, func(a, b float64) float64 { return a - b }, args)
}

func btMultiply(args ...values.Value) (values.Value, error) {
	return fold("*", 1, func(a, b float64) float64 { return a * b }, args)
}

func btDivide(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("/", args, 1); e != nil {
		return values.NIL, e
	}
	return fold("/", 1, func(a, b float64) float64 { return a / b }, args)
}

func btMod(args ...values.Value) (values.Value, error) {
	if e := CheckArity("mod", args, 2); e != nil {
		return values.NIL, e
	}
	a, e := numberArg("mod", args, 0)
	if e != nil {
		return values.NIL, e
	}
	b, e := numberArg("mod", args, 1)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeNumber(math.Mod(a, b)), nil
}

func compare(name string, op func(float64, float64) bool, args []values.Value) (values.Value, error) {
	if e := CheckArity(name, args, 2); e != nil {
		return values.NIL, e
	}
	a, e := numberArg(name, args, 0)
	if e != nil {
		return values.NIL, e
	}
	b, e := numberArg(name, args, 1)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeBool(op(a, b)), nil
}

func btLt(args ...values.Value) (values.Value, error) {
	return compare("<", func(a, b float64) bool { return a < b }, args)
}

func btLte(args ...values.Value) (values.Value, error) {
	return compare("<=", func(a, b float64) bool { return a <= b }, args)
}

func btGt(args ...values.Value) (values.Value, error) {
	return compare(">", func(a, b float64) bool { return a > b }, args)
}

func btGte(args ...values.Value) (values.Value, error) {
	return compare(">=", func(a, b float64) bool { return a >= b }, args)
}

func btTimeMs(args ...values.Value) (values.Value, error) {
	if e := CheckArity("time-ms", args, 0); e != nil {
		return values.NIL, e
	}
	return values.MakeNumber(float64(time.Now().UnixMilli())), nil
}
