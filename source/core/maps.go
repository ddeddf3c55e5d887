package core

import (
	"github.com/ensemble-lang/ensemble/source/err"
	"github.com/ensemble-lang/ensemble/source/values"
)

// Adds alternating keys and values to a map, which is modified.
func addPairs(name string, m *values.Map, pairs []values.Value) error {
	if len(pairs)%2 != 0 {
		return err.CreateErr("built/odd", nil, name)
	}
	for i := 0; i < len(pairs); i += 2 {
		if !m.Assoc(pairs[i], pairs[i+1]) {
			return err.CreateErr("built/key", nil, pairs[i].T.String())
		}
	}
	return nil
}

func btHashMap(args ...values.Value) (values.Value, error) {
	m := values.NewMap()
	if e := addPairs("hash-map", m, args); e != nil {
		return values.NIL, e
	}
	return values.Value{T: values.MAP, V: m}, nil
}

// assoc and dissoc leave their argument alone and return a new map.
func btAssoc(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("assoc", args, 1); e != nil {
		return values.NIL, e
	}
	m, e := mapArg("assoc", args, 0)
	if e != nil {
		return values.NIL, e
	}
	result := m.Copy()
	if e := addPairs("assoc", result, args[1:]); e != nil {
		return values.NIL, e
	}
	return values.Value{T: values.MAP, V: result}, nil
}

func btDissoc(args ...values.Value) (values.Value, error) {
	if e := checkArityAtLeast("dissoc", args, 1); e != nil {
		return values.NIL, e
	}
	m, e := mapArg("dissoc", args, 0)
	if e != nil {
		return values.NIL, e
	}
	result := m.Copy()
	for _, key := range args[1:] {
		k, ok := values.MapKey(key)
		if !ok {
			return values.NIL, err.CreateErr("built/key", nil, key.T.String())
		}
		result.Delete(k)
	}
	return values.Value{T: values.MAP, V: result}, nil
}

// Getting anything from something that isn't a map gives nil.
func btGet(args ...values.Value) (values.Value, error) {
	if e := CheckArity("get", args, 2); e != nil {
		return values.NIL, e
	}
	if args[0].T != values.MAP {
		return values.NIL, nil
	}
	k, ok := values.MapKey(args[1])
	if !ok {
		return values.NIL, err.CreateErr("built/key", nil, args[1].T.String())
	}
	if v, ok := args[0].V.(*values.Map).Get(k); ok {
		return v, nil
	}
	return values.NIL, nil
}

func btContains(args ...values.Value) (values.Value, error) {
	if e := CheckArity("contains?", args, 2); e != nil {
		return values.NIL, e
	}
	m, e := mapArg("contains?", args, 0)
	if e != nil {
		return values.NIL, e
	}
	k, ok := values.MapKey(args[1])
	if !ok {
		return values.NIL, err.CreateErr("built/key", nil, args[1].T.String())
	}
	return values.MakeBool(m.Has(k)), nil
}

func btKeys(args ...values.Value) (values.Value, error) {
	if e := CheckArity("keys", args, 1); e != nil {
		return values.NIL, e
	}
	m, e := mapArg("keys", args, 0)
	if e != nil {
		return values.NIL, e
	}
	result := []values.Value{}
	m.Range(func(k, _ values.Value) {
		result = append(result, k)
	})
	return values.MakeList(result...), nil
}

func btVals(args ...values.Value) (values.Value, error) {
	if e := CheckArity("vals", args, 1); e != nil {
		return values.NIL, e
	}
	m, e := mapArg("vals", args, 0)
	if e != nil {
		return values.NIL, e
	}
	result := []values.Value{}
	m.Range(func(_, v values.Value) {
		result = append(result, v)
	})
	return values.MakeList(result...), nil
}
