package core

import (
	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/values"
)

func btList(args ...values.Value) (values.Value, error) {
	return values.MakeList(args...), nil
}

func btVector(args ...values.Value) (values.Value, error) {
	return values.MakeVector(args...), nil
}

// (vec nil) is [], and a map becomes a vector of [key value] pairs.
func btVec(args ...values.Value) (values.Value, error) {
	if e := CheckArity("vec", args, 1); e != nil {
		return values.NIL, e
	}
	if args[0].T == values.VECTOR {
		return args[0], nil
	}
	if args[0].T == values.STRING {
		return values.NIL, typeError("vec", "a list, vector, map or nil", 0, args[0])
	}
	it, ok := values.NewIterator(args[0])
	if !ok {
		return values.NIL, typeError("vec", "a list, vector, map or nil", 0, args[0])
	}
	return values.MakeVector(values.Collect(it)...), nil
}

// seq gives nil for anything empty, and otherwise a list: of the elements of a sequence, of the
// characters of a string, or of the [key value] pairs of a map.
func btSeq(args ...values.Value) (values.Value, error) {
	if e := CheckArity("seq", args, 1); e != nil {
		return values.NIL, e
	}
	it, ok := values.NewIterator(args[0])
	if !ok {
		return values.NIL, typeError("seq", "a list, vector, string, map or nil", 0, args[0])
	}
	items := values.Collect(it)
	if len(items) == 0 {
		return values.NIL, nil
	}
	if args[0].T == values.LIST {
		return args[0], nil
	}
	return values.MakeList(items...), nil
}

func btCons(args ...values.Value) (values.Value, error) {
	if e := CheckArity("cons", args, 2); e != nil {
		return values.NIL, e
	}
	if args[1].IsNil() {
		return values.MakeList(args[0]), nil
	}
	items, e := seqArg("cons", args, 1)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeList(append([]values.Value{args[0]}, items...)...), nil
}

func btConcat(args ...values.Value) (values.Value, error) {
	result := []values.Value{}
	for i, arg := range args {
		if arg.IsNil() {
			continue
		}
		items, e := seqArg("concat", args, i)
		if e != nil {
			return values.NIL, e
		}
		result = append(result, items...)
	}
	return values.MakeList(result...), nil
}

// Lists grow at the front and vectors at the back.
func btConj(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("conj", args, 1); e != nil {
		return values.NIL, e
	}
	items, e := seqArg("conj", args, 0)
	if e != nil {
		return values.NIL, e
	}
	if args[0].T == values.VECTOR {
		return values.MakeVector(append(items, args[1:]...)...), nil
	}
	result := make([]values.Value, 0, len(items)+len(args)-1)
	for i := len(args) - 1; i > 0; i-- {
		result = append(result, args[i])
	}
	return values.MakeList(append(result, items...)...), nil
}

func btCount(args ...values.Value) (values.Value, error) {
	if e := CheckArity("count", args, 1); e != nil {
		return values.NIL, e
	}
	switch args[0].T {
	case values.NULL:
		return values.MakeNumber(0), nil
	case values.LIST, values.VECTOR:
		return values.MakeNumber(float64(values.Len(args[0]))), nil
	case values.MAP:
		return values.MakeNumber(float64(args[0].V.(*values.Map).Len())), nil
	case values.STRING:
		return values.MakeNumber(float64(len([]rune(args[0].V.(string))))), nil
	}
	return values.NIL, typeError("count", "a list, vector, map, string or nil", 0, args[0])
}

func btEmpty(args ...values.Value) (values.Value, error) {
	n, e := btCount(args...)
	if e != nil {
		return values.NIL, e
	}
	return values.MakeBool(n.V.(float64) == 0), nil
}

func btFirst(args ...values.Value) (values.Value, error) {
	if e := CheckArity("first", args, 1); e != nil {
		return values.NIL, e
	}
	if first, ok := values.Nth(args[0], 0); ok {
		return first, nil
	}
	return values.NIL, nil
}

func btLast(args ...values.Value) (values.Value, error) {
	if e := CheckArity("last", args, 1); e != nil {
		return values.NIL, e
	}
	if last, ok := values.Nth(args[0], values.Len(args[0])-1); ok {
		return last, nil
	}
	return values.NIL, nil
}

func btRest(args ...values.Value) (values.Value, error) {
	if e := CheckArity("rest", args, 1); e != nil {
		return values.NIL, e
	}
	return values.Rest(args[0]), nil
}

func btNth(args ...values.Value) (values.Value, error) {
	if e := CheckArity("nth", args, 2); e != nil {
		return values.NIL, e
	}
	if _, e := seqArg("nth", args, 0); e != nil {
		return values.NIL, e
	}
	f, e := numberArg("nth", args, 1)
	if e != nil {
		return values.NIL, e
	}
	i := int(f)
	if float64(i) != f || i < 0 || i >= values.Len(args[0]) {
		return values.NIL, err.CreateErr("built/index", nil, args[1].V.(float64), values.Len(args[0]))
	}
	v, _ := values.Nth(args[0], i)
	return v, nil
}

// (apply f a b [c d]) is (f a b c d).
func btApply(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("apply", args, 2); e != nil {
		return values.NIL, e
	}
	fn, e := fnArg("apply", args, 0)
	if e != nil {
		return values.NIL, e
	}
	last, e := seqArg("apply", args, len(args)-1)
	if e != nil {
		return values.NIL, e
	}
	callArgs := append(append([]values.Value{}, args[1:len(args)-1]...), last...)
	return fn.Call(callArgs...)
}

func btMap(args ...values.Value) (values.Value, error) {
	if e := CheckArity("map", args, 2); e != nil {
		return values.NIL, e
	}
	fn, e := fnArg("map", args, 0)
	if e != nil {
		return values.NIL, e
	}
	items, e := seqArg("map", args, 1)
	if e != nil {
		return values.NIL, e
	}
	result := make([]values.Value, 0, len(items))
	for _, item := range items {
		v, e := fn.Call(item)
		if e != nil {
			return values.NIL, e
		}
		result = append(result, v)
	}
	return values.MakeList(result...), nil
}
