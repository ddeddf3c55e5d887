package values

// The calling convention for everything callable from the language: a list of values in, one value
// out, and failure by returning an error.
type NativeFn func(args ...Value) (Value, error)

// A Function is either native, in which case Closure is nil, or a closure, in which case the
// evaluator fills in Native with something that evaluates the body.
type Function struct {
	Native  NativeFn
	Closure *Closure
	IsMacro bool
	Meta    Value
}

type Closure struct {
	Params []string // May contain the variadic marker "&" followed by one more name.
	Body   Value
	Env    *Environment
}

const VARIADIC_MARKER = "&"

func MakeNative(fn NativeFn) Value {
	return Value{FUNC, &Function{Native: fn, Meta: NIL}}
}

func MakeClosure(cl *Closure, fn NativeFn) Value {
	return Value{FUNC, &Function{Native: fn, Closure: cl, Meta: NIL}}
}

func (f *Function) Call(args ...Value) (Value, error) {
	return f.Native(args...)
}

func (f *Function) IsClosure() bool {
	return f.Closure != nil
}

// Arity returns the number of fixed parameters of a closure, and the name bound to the remaining
// arguments if there is one. Natives check their own arguments and report (0, "").
func (cl *Closure) Arity() (int, string) {
	for i, p := range cl.Params {
		if p == VARIADIC_MARKER {
			if i+1 < len(cl.Params) {
				return i, cl.Params[i+1]
			}
			return i, ""
		}
	}
	return len(cl.Params), ""
}

// Accepts says whether a closure can be called with n arguments.
func (cl *Closure) Accepts(n int) bool {
	fixed, rest := cl.Arity()
	if rest != "" {
		return n >= fixed
	}
	return n == fixed
}

// An Atom is the one mutable thing in the language. Values holding the same *Atom see each other's
// changes.
type Atom struct {
	Value Value
}

func (a *Atom) Reset(v Value) Value {
	a.Value = v
	return v
}
