package lisp

import (
	"log/slog"
)

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval does not modify v.
func (env *LEnv) Eval(v LVal) LVal {
	switch v := v.(type) {
	case *Sym:
		return env.Get(v.Name)
	case *SExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates s and returns the resulting LVal.  The cells of s are
// evaluated left to right before any error among their values is returned.
func (env *LEnv) EvalSExpr(s *SExpr) LVal {
	if len(s.Cells) == 0 {
		return Nil()
	}
	cells := make([]LVal, len(s.Cells))
	for i := range s.Cells {
		cells[i] = env.Eval(s.Cells[i])
	}
	for i := range cells {
		if IsError(cells[i]) {
			return cells[i]
		}
	}
	if len(cells) == 1 {
		return cells[0]
	}

	f := cells[0]
	switch f.(type) {
	case *Builtin, *Closure:
	default:
		return env.Errorf("S-expression starts with incorrect type: expected %s, got %s",
			LFun, f.Type())
	}
	return env.call(funName(s.Cells[0], f), f, cells[1:])
}

// Call invokes fun with the list args.  Fun must be a builtin or a closure.
func (env *LEnv) Call(fun LVal, args []LVal) LVal {
	return env.call(funName(nil, fun), fun, args)
}

func (env *LEnv) call(name string, fun LVal, args []LVal) LVal {
	switch f := fun.(type) {
	case *Builtin:
		def, ok := env.Runtime.Builtins.Lookup(f.Name)
		if !ok {
			return env.Errorf("unknown builtin '%s'", f.Name)
		}
		return def.Eval(env, args)
	case *Closure:
		return env.callClosure(name, f, args)
	default:
		return env.Errorf("cannot call value of type %s", fun.Type())
	}
}

// callClosure binds args to the formals of f.  When formals remain after all
// arguments are bound a new closure over the remaining formals is returned.
// Otherwise the body of f is evaluated in a new environment whose lexical
// parent is f.Env and whose caller is env.  Neither f nor f.Env is modified.
func (env *LEnv) callClosure(name string, f *Closure, args []LVal) LVal {
	scope := make(map[string]LVal, len(args))
	formals := f.Formals
	i := 0
	for len(formals) > 0 {
		if formals[0] == VarArgSymbol {
			if len(formals) != 2 {
				return env.Errorf("function format invalid: symbol '%s' not followed by single symbol",
					VarArgSymbol)
			}
			scope[formals[1]] = List(copyCells(args[i:])...)
			formals = nil
			i = len(args)
			break
		}
		if i >= len(args) {
			break
		}
		scope[formals[0]] = args[i].Copy()
		formals = formals[1:]
		i++
	}
	if i < len(args) {
		return env.Errorf("too many arguments, got %d, expected %d", len(args), len(f.Formals))
	}
	if len(formals) > 0 {
		captured := f.Env.Copy()
		if captured == nil {
			captured = newScope(nil)
		}
		for k, v := range scope {
			captured.Scope[k] = v
		}
		rest := make([]string, len(formals))
		copy(rest, formals)
		return &Closure{
			Formals: rest,
			Body:    f.Body.copyQExpr(),
			Env:     captured,
		}
	}

	stack := env.Runtime.Stack
	if err := stack.CheckHeight(); err != nil {
		return env.Errorf("%v", err)
	}
	log := env.Runtime.logger()
	stack.Push(name, len(args))
	log.Debug("push stack frame",
		slog.String("function", name),
		slog.Int("stack-height", stack.Height()))
	defer func() {
		stack.Pop()
		log.Debug("pop stack frame",
			slog.String("function", name),
			slog.Int("stack-height", stack.Height()))
	}()

	callEnv := &LEnv{
		Scope:   scope,
		Parent:  f.Env,
		Caller:  env,
		Runtime: env.Runtime,
	}
	var body []LVal
	if f.Body != nil {
		body = f.Body.Cells
	}
	return callEnv.EvalSExpr(&SExpr{Cells: body})
}

// funName returns the name used for fun in stack frames.  When fun was
// produced by evaluating a symbol the symbol's name is used.
func funName(head LVal, fun LVal) string {
	if sym, ok := head.(*Sym); ok {
		return sym.Name
	}
	if b, ok := fun.(*Builtin); ok {
		return b.Name
	}
	return "lambda"
}
