package lisp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// LEnv is a lisp environment.
//
// Symbol lookup searches Scope, then the lexical Parent chain.  When that
// fails the lookup is restarted at Caller, the environment a function was
// applied from.  The global environment has neither a Parent nor a Caller.
type LEnv struct {
	Scope   map[string]LVal
	Parent  *LEnv
	Caller  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  The returned LEnv shares
// the Runtime of parent.  If parent is nil a StandardRuntime is used.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = StandardRuntime()
	}
	env := newScope(runtime)
	env.Parent = parent
	return env
}

func newScope(runtime *Runtime) *LEnv {
	return &LEnv{
		Scope:   make(map[string]LVal),
		Runtime: runtime,
	}
}

// Copy returns a new LEnv with a deep copy of env.Scope.  The Parent, Caller,
// and Runtime of the copy are shared with env.
func (env *LEnv) Copy() *LEnv {
	if env == nil {
		return nil
	}
	cp := &LEnv{}
	*cp = *env
	cp.Scope = make(map[string]LVal, len(env.Scope))
	for k, v := range env.Scope {
		cp.Scope[k] = v.Copy()
	}
	return cp
}

// Get returns a copy of the value bound to symbol k.  When k is unbound Get
// returns an error value.
func (env *LEnv) Get(k string) LVal {
	v, ok := env.lookup(k)
	if !ok {
		return Errorf("Unbound symbol '%s'", k)
	}
	return v.Copy()
}

func (env *LEnv) lookup(k string) (LVal, bool) {
	if env == nil {
		return nil, false
	}
	if v, ok := env.Scope[k]; ok {
		return v, true
	}
	if v, ok := env.Parent.lookup(k); ok {
		return v, true
	}
	return env.Caller.lookup(k)
}

// Put binds a copy of v to symbol k in env.
func (env *LEnv) Put(k string, v LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[k] = v.Copy()
}

// PutGlobal binds a copy of v to symbol k in the root environment (global
// scope).
func (env *LEnv) PutGlobal(k string, v LVal) {
	env.root().Put(k, v)
}

// Root returns the global environment env is evaluated within.
func (env *LEnv) Root() *LEnv {
	return env.root()
}

func (env *LEnv) root() *LEnv {
	for {
		switch {
		case env.Caller != nil:
			env = env.Caller
		case env.Parent != nil:
			env = env.Parent
		default:
			return env
		}
	}
}

// Symbols returns the sorted names bound in the local scope of env.
func (env *LEnv) Symbols() []string {
	names := make([]string, 0, len(env.Scope))
	for k := range env.Scope {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AddBuiltins binds every builtin in the runtime's table to its name in env.
// AddBuiltins panics if a name is already bound in env.
func (env *LEnv) AddBuiltins() {
	for _, name := range env.Runtime.Builtins.Names() {
		if _, ok := env.Scope[name]; ok {
			panic("symbol already defined: " + name)
		}
		env.Put(name, Fun(name))
	}
}

// LoadFile attempts to load the named file with env.Runtime.Reader.  Each
// expression is evaluated in env.
func (env *LEnv) LoadFile(path string) LVal {
	f, err := os.Open(path)
	if err != nil {
		return env.Errorf("could not load %s: %v", path, err)
	}
	defer f.Close()
	return env.Load(path, f)
}

// LoadString parses exprs and evaluates each expression in env.
func (env *LEnv) LoadString(name, exprs string) LVal {
	return env.Load(name, strings.NewReader(exprs))
}

// Load reads LVals from r and evaluates them as if in a progn.  The first
// error value produced is returned and aborts the load.
func (env *LEnv) Load(name string, r io.Reader) LVal {
	env.Runtime.logger().Debug("load", slog.String("path", name))
	if env.Runtime.Reader == nil {
		return env.Errorf("could not load %s: no reader", name)
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return env.Errorf("could not load %s: %v", name, err)
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if IsError(v) {
			return v
		}
	}
	return Nil()
}

// Print writes the printed form of each value to the runtime's standard
// output, each followed by a space, and terminates the line.
func (env *LEnv) Print(vals ...LVal) error {
	w := env.Runtime.stdout()
	for _, v := range vals {
		if _, err := fmt.Fprint(w, v.String(), " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
