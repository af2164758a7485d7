package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		v      LVal
		result string
	}{
		{Int(3), "3"},
		{Int(-12), "-12"},
		{Float(2.5), "2.5"},
		{Float(2), "2"},
		{String("a\"b\n"), `"a\"b\n"`},
		{Symbol("x"), "x"},
		{Errorf("bad %d", 1), "Error: bad 1"},
		{Fun("+"), "<builtin>"},
		{Nil(), "()"},
		{List(), "'()"},
		{Expr(Symbol("+"), Int(1), Int(2)), "(+ 1 2)"},
		{List(Int(1), List(Symbol("a"))), "'(1 '(a))"},
		{Lambda([]string{"a", "b"}, List(Symbol("+"), Symbol("a"), Symbol("b"))), "(fn '(a b) '(+ a b))"},
	}
	for i, test := range tests {
		assert.Equal(t, test.result, test.v.String(), "test %d", i)
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		v    LVal
		name string
	}{
		{Int(1), "number"},
		{Float(1), "number"},
		{String(""), "string"},
		{Symbol("x"), "symbol"},
		{Errorf("x"), "error"},
		{Fun("+"), "builtin"},
		{Lambda(nil, List()), "function"},
		{Nil(), "s-expr"},
		{List(), "q-expr"},
	}
	for _, test := range tests {
		assert.Equal(t, test.name, test.v.Type().String())
	}
	assert.Equal(t, "INVALID", LType(100).String())
}

func TestCopy(t *testing.T) {
	orig := List(Int(1), List(Int(2), Int(3)))
	cp := orig.Copy().(*QExpr)
	assert.True(t, Equal(orig, cp))

	cp.Cells[0].(*Num).Int = 10
	cp.Cells[1].(*QExpr).Cells = nil
	assert.Equal(t, "'(1 '(2 3))", orig.String())
	assert.Equal(t, "'(10 '())", cp.String())

	assert.Nil(t, Copy(nil))

	fun := Lambda([]string{"x"}, List(Symbol("x")))
	fun.Env.Put("y", Int(1))
	fcp := fun.Copy().(*Closure)
	fcp.Env.Put("y", Int(2))
	fcp.Formals[0] = "z"
	assert.Equal(t, "1", fun.Env.Scope["y"].String())
	assert.Equal(t, "x", fun.Formals[0])
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(1), Float(1)))
	assert.True(t, Equal(Float(2.5), Float(2.5)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.False(t, Equal(Int(1), String("1")))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Symbol("a"), Symbol("a")))
	assert.False(t, Equal(Symbol("a"), String("a")))
	assert.True(t, Equal(Errorf("e"), Errorf("e")))
	assert.True(t, Equal(Fun("+"), Fun("+")))
	assert.False(t, Equal(Fun("+"), Fun("-")))
	assert.True(t, Equal(List(Int(1), Int(2)), List(Int(1), Int(2))))
	assert.False(t, Equal(List(Int(1)), List(Int(1), Int(2))))
	assert.False(t, Equal(List(Int(1)), Expr(Int(1))))
	assert.True(t, Equal(Nil(), Expr()))

	f := Lambda([]string{"a"}, List(Symbol("a")))
	g := Lambda([]string{"a"}, List(Symbol("a")))
	assert.True(t, Equal(f, g))
	g.Env.Put("b", Int(1))
	assert.False(t, Equal(f, g))
	f.Env.Put("b", Float(1))
	assert.True(t, Equal(f, g))
	assert.False(t, Equal(f, Lambda([]string{"b"}, List(Symbol("a")))))
}

func TestNum(t *testing.T) {
	assert.Equal(t, 2.0, Int(2).Float64())
	assert.Equal(t, 0.5, Float(0.5).Float64())
	assert.True(t, Int(0).IsZero())
	assert.True(t, Float(0).IsZero())
	assert.False(t, Float(0.1).IsZero())
	assert.Equal(t, -1, compareNum(Int(1), Float(1.5)))
	assert.Equal(t, 1, compareNum(Int(math.MaxInt), Int(math.MinInt)))
	assert.Equal(t, 0, compareNum(Float(3), Int(3)))
}

func TestIntOverflow(t *testing.T) {
	_, ok := addInt(math.MaxInt, 1)
	assert.False(t, ok)
	_, ok = addInt(math.MinInt, -1)
	assert.False(t, ok)
	c, ok := addInt(math.MaxInt, -1)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt-1, c)
	_, ok = subInt(math.MinInt, 1)
	assert.False(t, ok)
	_, ok = subInt(math.MaxInt, -1)
	assert.False(t, ok)
	c, ok = subInt(0, math.MaxInt)
	assert.True(t, ok)
	assert.Equal(t, -math.MaxInt, c)
	_, ok = mulInt(math.MaxInt/2+1, 2)
	assert.False(t, ok)
	_, ok = mulInt(-1, math.MinInt)
	assert.False(t, ok)
	c, ok = mulInt(-3, 7)
	assert.True(t, ok)
	assert.Equal(t, -21, c)
	_, ok = divInt(math.MinInt, -1)
	assert.False(t, ok)
	c, ok = divInt(-7, 2)
	assert.True(t, ok)
	assert.Equal(t, -3, c)
}
