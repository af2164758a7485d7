package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNumber
	LString
	LSymbol
	LError
	LBuiltin
	LFun
	LSExpr
	LQExpr
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LString:  "string",
	LSymbol:  "symbol",
	LError:   "error",
	LBuiltin: "builtin",
	LFun:     "function",
	LSExpr:   "s-expr",
	LQExpr:   "q-expr",
}

func (t LType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value.  The set of types implementing LVal is closed: a
// value is always one of *Num, *Str, *Sym, *Err, *Builtin, *Closure, *SExpr,
// or *QExpr.  Callers access the payload of a value with a type switch.
type LVal interface {
	// Type returns the tag of the variant.
	Type() LType
	// Copy returns a deep copy of the value.  A copy never shares mutable
	// state with the original.
	Copy() LVal
	// String returns the printed representation of the value.
	String() string

	lval()
}

// Num is a number.  A number holds an integer unless it was read from (or
// computed using) a decimal literal.
type Num struct {
	Int     int
	Float   float64
	Decimal bool
}

// Str is an immutable string.
type Str struct {
	Str string
}

// Sym is a symbol.
type Sym struct {
	Name string
}

// Builtin references a native operation by name.  The operation itself lives
// in the BuiltinTable of the environment's Runtime.
type Builtin struct {
	Name string
}

// Closure is a user defined function.  Env holds the arguments bound by
// previous partial applications and is never modified once the closure has
// been constructed.
type Closure struct {
	Formals []string
	Body    *QExpr
	Env     *LEnv
}

// SExpr is a symbolic expression, a list which reduces when evaluated.
type SExpr struct {
	Cells []LVal
}

// QExpr is a quoted expression, a list which is never evaluated implicitly.
type QExpr struct {
	Cells []LVal
}

// Int returns an LVal representing the integer x.
func Int(x int) *Num {
	return &Num{Int: x}
}

// Float returns an LVal representing the decimal x.
func Float(x float64) *Num {
	return &Num{Float: x, Decimal: true}
}

// String returns an LVal representing the string s.
func String(s string) *Str {
	return &Str{Str: s}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *Sym {
	return &Sym{Name: s}
}

// Fun returns an LVal referencing the builtin operation with the given name.
func Fun(name string) *Builtin {
	return &Builtin{Name: name}
}

// Expr returns an S-expression containing cells.
func Expr(cells ...LVal) *SExpr {
	return &SExpr{Cells: cells}
}

// List returns a Q-expression containing cells.
func List(cells ...LVal) *QExpr {
	return &QExpr{Cells: cells}
}

// Nil returns the empty S-expression, the value of expressions evaluated
// only for their side effects.
func Nil() *SExpr {
	return &SExpr{}
}

// Lambda returns anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The new function has not bound any arguments.
func Lambda(formals []string, body *QExpr) *Closure {
	return &Closure{
		Formals: formals,
		Body:    body,
		Env:     newScope(nil),
	}
}

// Copy returns a deep copy of v.  Copy(nil) is nil.
func Copy(v LVal) LVal {
	if v == nil {
		return nil
	}
	return v.Copy()
}

func (*Num) lval()     {}
func (*Str) lval()     {}
func (*Sym) lval()     {}
func (*Err) lval()     {}
func (*Builtin) lval() {}
func (*Closure) lval() {}
func (*SExpr) lval()   {}
func (*QExpr) lval()   {}

func (*Num) Type() LType     { return LNumber }
func (*Str) Type() LType     { return LString }
func (*Sym) Type() LType     { return LSymbol }
func (*Err) Type() LType     { return LError }
func (*Builtin) Type() LType { return LBuiltin }
func (*Closure) Type() LType { return LFun }
func (*SExpr) Type() LType   { return LSExpr }
func (*QExpr) Type() LType   { return LQExpr }

func (v *Num) Copy() LVal {
	cp := *v
	return &cp
}

func (v *Str) Copy() LVal {
	return &Str{Str: v.Str}
}

func (v *Sym) Copy() LVal {
	return &Sym{Name: v.Name}
}

func (v *Err) Copy() LVal {
	cp := *v
	return &cp
}

func (v *Builtin) Copy() LVal {
	return &Builtin{Name: v.Name}
}

// Copy returns a copy of v including a deep copy of its captured environment.
func (v *Closure) Copy() LVal {
	formals := make([]string, len(v.Formals))
	copy(formals, v.Formals)
	return &Closure{
		Formals: formals,
		Body:    v.Body.copyQExpr(),
		Env:     v.Env.Copy(),
	}
}

func (v *SExpr) Copy() LVal {
	return &SExpr{Cells: copyCells(v.Cells)}
}

func (v *QExpr) Copy() LVal {
	return v.copyQExpr()
}

func (v *QExpr) copyQExpr() *QExpr {
	if v == nil {
		return nil
	}
	return &QExpr{Cells: copyCells(v.Cells)}
}

func copyCells(cells []LVal) []LVal {
	if len(cells) == 0 {
		return nil
	}
	cp := make([]LVal, len(cells))
	for i := range cells {
		cp[i] = cells[i].Copy()
	}
	return cp
}

// Len returns the number of cells in v.
func (v *SExpr) Len() int {
	return len(v.Cells)
}

// Len returns the number of cells in v.
func (v *QExpr) Len() int {
	return len(v.Cells)
}

// IsNil returns true if v is the empty S-expression.
func IsNil(v LVal) bool {
	s, ok := v.(*SExpr)
	return ok && len(s.Cells) == 0
}

// Float64 returns the value of x as a float64 regardless of its payload.
func (v *Num) Float64() float64 {
	if v.Decimal {
		return v.Float
	}
	return float64(v.Int)
}

// IsZero returns true if v is numerically zero.
func (v *Num) IsZero() bool {
	if v.Decimal {
		return v.Float == 0
	}
	return v.Int == 0
}

func (v *Num) String() string {
	if v.Decimal {
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return strconv.Itoa(v.Int)
}

func (v *Str) String() string {
	return strconv.Quote(v.Str)
}

func (v *Sym) String() string {
	return v.Name
}

func (v *Builtin) String() string {
	return "<builtin>"
}

func (v *Closure) String() string {
	return fmt.Sprintf("(fn %v %v)", formalsList(v.Formals), v.Body)
}

func (v *SExpr) String() string {
	return exprString(v.Cells, "(", ")")
}

func (v *QExpr) String() string {
	return exprString(v.Cells, "'(", ")")
}

func formalsList(formals []string) *QExpr {
	q := &QExpr{Cells: make([]LVal, len(formals))}
	for i := range formals {
		q.Cells[i] = Symbol(formals[i])
	}
	return q
}

func exprString(cells []LVal, left string, right string) string {
	if len(cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
