package lisp

import "sort"

// BuiltinFunc is the implementation of a builtin operation.  The arguments of
// a builtin have been evaluated before it is invoked.
type BuiltinFunc func(env *LEnv, args []LVal) LVal

// BuiltinDef is a native operation that can be referenced by name.
type BuiltinDef interface {
	Name() string
	Eval(env *LEnv, args []LVal) LVal
}

type langBuiltin struct {
	name string
	fun  BuiltinFunc
}

// NewBuiltin returns a BuiltinDef that invokes fun.
func NewBuiltin(name string, fun BuiltinFunc) BuiltinDef {
	return &langBuiltin{name: name, fun: fun}
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args []LVal) LVal {
	return fun.fun(env, args)
}

// BuiltinTable maps names to builtin operations.  A BuiltinTable is never
// modified after it is constructed and may be shared between runtimes.
type BuiltinTable struct {
	defs  map[string]BuiltinDef
	names []string
}

// NewBuiltinTable returns a table containing defs.  NewBuiltinTable panics if
// two definitions share a name.
func NewBuiltinTable(defs ...BuiltinDef) *BuiltinTable {
	t := &BuiltinTable{defs: make(map[string]BuiltinDef, len(defs))}
	for _, def := range defs {
		if _, ok := t.defs[def.Name()]; ok {
			panic("builtin already defined: " + def.Name())
		}
		t.defs[def.Name()] = def
		t.names = append(t.names, def.Name())
	}
	sort.Strings(t.names)
	return t
}

// Lookup returns the builtin with the given name.
func (t *BuiltinTable) Lookup(name string) (BuiltinDef, bool) {
	if t == nil {
		return nil, false
	}
	def, ok := t.defs[name]
	return def, ok
}

// Names returns the sorted names of all builtins in t.
func (t *BuiltinTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len returns the number of builtins in t.
func (t *BuiltinTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// With returns a new table containing the builtins of t and defs.  A
// definition in defs replaces any builtin in t with the same name.
func (t *BuiltinTable) With(defs ...BuiltinDef) *BuiltinTable {
	merged := make(map[string]BuiltinDef, t.Len()+len(defs))
	if t != nil {
		for name, def := range t.defs {
			merged[name] = def
		}
	}
	for _, def := range defs {
		merged[def.Name()] = def
	}
	all := make([]BuiltinDef, 0, len(merged))
	for _, def := range merged {
		all = append(all, def)
	}
	return NewBuiltinTable(all...)
}
