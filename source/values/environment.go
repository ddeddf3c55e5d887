package values

import "sort"

// An Environment is one frame of the scope chain. Frames are shared by pointer between closures and
// child frames, and live as long as any of them does.
type Environment struct {
	Store map[string]Value
	Ext   *Environment
}

// NewEnvironment makes a frame over outer (which may be nil) binding each name in binds to the
// corresponding value in exprs. The name after the variadic marker gets a list of whatever is left.
func NewEnvironment(outer *Environment, binds []string, exprs []Value) *Environment {
	env := &Environment{Store: map[string]Value{}, Ext: outer}
	for i := 0; i < len(binds); i++ {
		if binds[i] == VARIADIC_MARKER {
			if i+1 < len(binds) {
				rest := []Value{}
				if i < len(exprs) {
					rest = exprs[i:]
				}
				env.Store[binds[i+1]] = MakeList(rest...)
			}
			break
		}
		if i < len(exprs) {
			env.Store[binds[i]] = exprs[i]
		} else {
			env.Store[binds[i]] = NIL
		}
	}
	return env
}

func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.Ext {
		if v, ok := env.Store[name]; ok {
			return v, true
		}
	}
	return NIL, false
}

// Set binds a name in this frame only, shadowing any outer binding.
func (e *Environment) Set(name string, val Value) Value {
	e.Store[name] = val
	return val
}

// Find returns the innermost frame binding the name, or nil.
func (e *Environment) Find(name string) *Environment {
	for env := e; env != nil; env = env.Ext {
		if _, ok := env.Store[name]; ok {
			return env
		}
	}
	return nil
}

// Names lists the names bound in this frame, sorted.
func (e *Environment) Names() []string {
	result := make([]string, 0, len(e.Store))
	for k := range e.Store {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
