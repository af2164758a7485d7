package lisp

import (
	"math"
)

// DefaultBuiltins returns the builtin operations available in a user
// environment.
func DefaultBuiltins() []BuiltinDef {
	return []BuiltinDef{
		// list operations
		NewBuiltin("list", builtinList),
		NewBuiltin("head", builtinHead),
		NewBuiltin("tail", builtinTail),
		NewBuiltin("eval", builtinEval),
		NewBuiltin("join", builtinJoin),

		// arithmetic
		NewBuiltin("+", builtinArith("+")),
		NewBuiltin("-", builtinArith("-")),
		NewBuiltin("*", builtinArith("*")),
		NewBuiltin("/", builtinArith("/")),

		// variables and functions
		NewBuiltin("def", builtinDef),
		NewBuiltin("let", builtinLet("let")),
		NewBuiltin("=", builtinLet("=")),
		NewBuiltin("fn", builtinLambda("fn")),
		NewBuiltin(`\`, builtinLambda(`\`)),

		// conditionals
		NewBuiltin("if", builtinIf),
		NewBuiltin("==", builtinEq("==", true)),
		NewBuiltin("!=", builtinEq("!=", false)),
		NewBuiltin(">", builtinCmp(">", func(c int) bool { return c > 0 })),
		NewBuiltin("<", builtinCmp("<", func(c int) bool { return c < 0 })),
		NewBuiltin(">=", builtinCmp(">=", func(c int) bool { return c >= 0 })),
		NewBuiltin("<=", builtinCmp("<=", func(c int) bool { return c <= 0 })),

		// strings and io
		NewBuiltin("load", builtinLoad),
		NewBuiltin("print", builtinPrint),
		NewBuiltin("error", builtinError),
		NewBuiltin("type", builtinType),
	}
}

// DefaultBuiltinTable returns a table containing DefaultBuiltins.
func DefaultBuiltinTable() *BuiltinTable {
	return NewBuiltinTable(DefaultBuiltins()...)
}

func checkArgCount(env *LEnv, name string, args []LVal, n int) LVal {
	if len(args) != n {
		return env.Errorf("function '%s' passed incorrect number of arguments: got %d, expected %d",
			name, len(args), n)
	}
	return nil
}

func checkMinArgCount(env *LEnv, name string, args []LVal, n int) LVal {
	if len(args) < n {
		return env.Errorf("function '%s' passed incorrect number of arguments: got %d, expected at least %d",
			name, len(args), n)
	}
	return nil
}

func checkArgType(env *LEnv, name string, args []LVal, i int, t LType) LVal {
	if args[i].Type() != t {
		return env.Errorf("function '%s' passed incorrect type for argument %d: got %s, expected %s",
			name, i, args[i].Type(), t)
	}
	return nil
}

func checkArgTypes(env *LEnv, name string, args []LVal, t LType) LVal {
	for i := range args {
		if lerr := checkArgType(env, name, args, i, t); lerr != nil {
			return lerr
		}
	}
	return nil
}

func checkNonEmpty(env *LEnv, name string, q *QExpr) LVal {
	if len(q.Cells) == 0 {
		return env.Errorf("function '%s' passed {}", name)
	}
	return nil
}

func builtinList(env *LEnv, args []LVal) LVal {
	return List(args...)
}

func builtinHead(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "head", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "head", args, 0, LQExpr); lerr != nil {
		return lerr
	}
	q := args[0].(*QExpr)
	if lerr := checkNonEmpty(env, "head", q); lerr != nil {
		return lerr
	}
	return List(q.Cells[0])
}

func builtinTail(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "tail", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "tail", args, 0, LQExpr); lerr != nil {
		return lerr
	}
	q := args[0].(*QExpr)
	if lerr := checkNonEmpty(env, "tail", q); lerr != nil {
		return lerr
	}
	return List(q.Cells[1:]...)
}

func builtinEval(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "eval", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "eval", args, 0, LQExpr); lerr != nil {
		return lerr
	}
	return env.EvalSExpr(&SExpr{Cells: args[0].(*QExpr).Cells})
}

func builtinJoin(env *LEnv, args []LVal) LVal {
	if lerr := checkMinArgCount(env, "join", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgTypes(env, "join", args, LQExpr); lerr != nil {
		return lerr
	}
	var cells []LVal
	for _, q := range args {
		cells = append(cells, q.(*QExpr).Cells...)
	}
	return List(cells...)
}

func builtinArith(op string) BuiltinFunc {
	return func(env *LEnv, args []LVal) LVal {
		if lerr := checkMinArgCount(env, op, args, 1); lerr != nil {
			return lerr
		}
		if lerr := checkArgTypes(env, op, args, LNumber); lerr != nil {
			return lerr
		}
		acc := args[0].(*Num)
		if op == "-" && len(args) == 1 {
			if acc.Decimal {
				return Float(-acc.Float)
			}
			if acc.Int == math.MinInt {
				return env.Errorf("integer overflow")
			}
			return Int(-acc.Int)
		}
		for _, arg := range args[1:] {
			var lerr LVal
			acc, lerr = arith(env, op, acc, arg.(*Num))
			if lerr != nil {
				return lerr
			}
		}
		return acc.Copy()
	}
}

// arith applies op to x and y.  The result is a decimal if either operand is
// a decimal.
func arith(env *LEnv, op string, x, y *Num) (*Num, LVal) {
	if x.Decimal || y.Decimal {
		a, b := x.Float64(), y.Float64()
		switch op {
		case "+":
			return Float(a + b), nil
		case "-":
			return Float(a - b), nil
		case "*":
			return Float(a * b), nil
		case "/":
			if b == 0 {
				return nil, env.Errorf("division by zero")
			}
			return Float(a / b), nil
		}
		return nil, env.Errorf("unknown operator '%s'", op)
	}
	var (
		c  int
		ok bool
	)
	switch op {
	case "+":
		c, ok = addInt(x.Int, y.Int)
	case "-":
		c, ok = subInt(x.Int, y.Int)
	case "*":
		c, ok = mulInt(x.Int, y.Int)
	case "/":
		if y.Int == 0 {
			return nil, env.Errorf("division by zero")
		}
		c, ok = divInt(x.Int, y.Int)
	default:
		return nil, env.Errorf("unknown operator '%s'", op)
	}
	if !ok {
		return nil, env.Errorf("integer overflow")
	}
	return Int(c), nil
}

func addInt(a, b int) (int, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func subInt(a, b int) (int, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func divInt(a, b int) (int, bool) {
	if a == math.MinInt && b == -1 {
		return 0, false
	}
	return a / b, true
}

func builtinDef(env *LEnv, args []LVal) LVal {
	return bindVars(env, "def", args, env.PutGlobal)
}

func builtinLet(name string) BuiltinFunc {
	return func(env *LEnv, args []LVal) LVal {
		return bindVars(env, name, args, env.Put)
	}
}

func bindVars(env *LEnv, name string, args []LVal, put func(string, LVal)) LVal {
	if lerr := checkMinArgCount(env, name, args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, name, args, 0, LQExpr); lerr != nil {
		return lerr
	}
	syms := args[0].(*QExpr).Cells
	for _, sym := range syms {
		if sym.Type() != LSymbol {
			return env.Errorf("function '%s' cannot define non-symbol: got %s, expected %s",
				name, sym.Type(), LSymbol)
		}
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return env.Errorf("function '%s' passed wrong number of values for symbols: got %d, expected %d",
			name, len(vals), len(syms))
	}
	for i, sym := range syms {
		put(sym.(*Sym).Name, vals[i])
	}
	return Nil()
}

func builtinLambda(name string) BuiltinFunc {
	return func(env *LEnv, args []LVal) LVal {
		if lerr := checkArgCount(env, name, args, 2); lerr != nil {
			return lerr
		}
		if lerr := checkArgTypes(env, name, args, LQExpr); lerr != nil {
			return lerr
		}
		params := args[0].(*QExpr).Cells
		formals := make([]string, len(params))
		for i, p := range params {
			sym, ok := p.(*Sym)
			if !ok {
				return env.Errorf("function '%s' cannot define non-symbol: got %s, expected %s",
					name, p.Type(), LSymbol)
			}
			formals[i] = sym.Name
		}
		return Lambda(formals, args[1].Copy().(*QExpr))
	}
}

func builtinIf(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "if", args, 3); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "if", args, 0, LNumber); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "if", args, 1, LQExpr); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "if", args, 2, LQExpr); lerr != nil {
		return lerr
	}
	branch := args[2].(*QExpr)
	if !args[0].(*Num).IsZero() {
		branch = args[1].(*QExpr)
	}
	return env.EvalSExpr(&SExpr{Cells: branch.Cells})
}

func builtinEq(name string, want bool) BuiltinFunc {
	return func(env *LEnv, args []LVal) LVal {
		if lerr := checkArgCount(env, name, args, 2); lerr != nil {
			return lerr
		}
		return Bool(Equal(args[0], args[1]) == want)
	}
}

func builtinCmp(name string, test func(int) bool) BuiltinFunc {
	return func(env *LEnv, args []LVal) LVal {
		if lerr := checkArgCount(env, name, args, 2); lerr != nil {
			return lerr
		}
		if lerr := checkArgTypes(env, name, args, LNumber); lerr != nil {
			return lerr
		}
		return Bool(test(compareNum(args[0].(*Num), args[1].(*Num))))
	}
}

func builtinLoad(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "load", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "load", args, 0, LString); lerr != nil {
		return lerr
	}
	return env.LoadFile(args[0].(*Str).Str)
}

func builtinPrint(env *LEnv, args []LVal) LVal {
	if err := env.Print(args...); err != nil {
		return env.Errorf("function 'print' failed to write: %v", err)
	}
	return Nil()
}

func builtinError(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "error", args, 1); lerr != nil {
		return lerr
	}
	if lerr := checkArgType(env, "error", args, 0, LString); lerr != nil {
		return lerr
	}
	return env.Errorf("%s", args[0].(*Str).Str)
}

func builtinType(env *LEnv, args []LVal) LVal {
	if lerr := checkArgCount(env, "type", args, 1); lerr != nil {
		return lerr
	}
	return String(args[0].Type().String())
}
