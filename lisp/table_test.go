package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinTable(t *testing.T) {
	nop := func(env *LEnv, args []LVal) LVal { return Nil() }
	one := func(env *LEnv, args []LVal) LVal { return Int(1) }

	table := NewBuiltinTable(NewBuiltin("b", nop), NewBuiltin("a", nop))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"a", "b"}, table.Names())

	def, ok := table.Lookup("a")
	if assert.True(t, ok) {
		assert.Equal(t, "a", def.Name())
		assert.Equal(t, "()", def.Eval(nil, nil).String())
	}
	_, ok = table.Lookup("c")
	assert.False(t, ok)

	assert.Panics(t, func() {
		NewBuiltinTable(NewBuiltin("a", nop), NewBuiltin("a", nop))
	})

	ext := table.With(NewBuiltin("a", one), NewBuiltin("c", nop))
	assert.Equal(t, []string{"a", "b", "c"}, ext.Names())
	def, _ = ext.Lookup("a")
	assert.Equal(t, "1", def.Eval(nil, nil).String())
	def, _ = table.Lookup("a")
	assert.Equal(t, "()", def.Eval(nil, nil).String())
	assert.Equal(t, 2, table.Len())

	var empty *BuiltinTable
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Names())
	assert.Equal(t, 1, empty.With(NewBuiltin("x", nop)).Len())
}

func TestDefaultBuiltins(t *testing.T) {
	names := []string{
		"list", "head", "tail", "eval", "join",
		"+", "-", "*", "/",
		"def", "let", "=", "fn", `\`,
		"if", "==", "!=", ">", "<", ">=", "<=",
		"load", "print", "error", "type",
	}
	table := DefaultBuiltinTable()
	assert.ElementsMatch(t, names, table.Names())

	// each call produces an independent table
	assert.True(t, table != DefaultBuiltinTable())
}
