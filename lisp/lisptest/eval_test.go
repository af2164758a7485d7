package lisptest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both parsers must produce expressions which evaluate identically.
func TestEval_parsers(t *testing.T) {
	type testexpr []struct {
		expr   string
		result string
	}
	tests := []struct {
		name string
		testexpr
	}{
		{"quotes", testexpr{
			{"'3", "'(3)"},
			{"''3", "'('(3))"},
			{"'(+ 1 2)", "'(+ 1 2)"},
			{"(eval '(+ 1 2))", "3"},
		}},
		{"symbols", testexpr{
			{"()", "()"},
			{"{}", "'()"},
			{"a", "Error: Unbound symbol 'a'"},
			{"(def {a} 1)", "()"},
			{"a", "1"},
		}},
		{"numbers", testexpr{
			{"-0", "0"},
			{"-1.25", "-1.25"},
			{"007", "7"},
			{"(+ 0.1 0.2)", "0.30000000000000004"},
		}},
		{"strings", testexpr{
			{`"a\"b"`, `"a\"b"`},
			{`"line\nbreak"`, `"line\nbreak"`},
			{`(type "")`, `"string"`},
		}},
		{"comments", testexpr{
			{"; nothing here\n(+ 1 2) ; three", "3"},
		}},
		{"functions", testexpr{
			{"(def {add} (fn {x y} {+ x y}))", "()"},
			{"(add 1 2)", "3"},
			{"((add 1) 2)", "3"},
			{"(def {fact} (fn {n} {if (== n 0) {1} {* n (fact (- n 1))}}))", "()"},
			{"(fact 5)", "120"},
			{"(add 1 2 3)", "Error: too many arguments, got 3, expected 2"},
		}},
	}

	for _, test := range tests {
		envs := map[string]*lisp.LEnv{
			"rdparser": newEnv(t),
			"parsec":   newEnv(t),
		}
		for i, expr := range test.testexpr {
			exprs, err := parser.NewReader().Read(test.name, strings.NewReader(expr.expr))
			require.NoError(t, err, "%s %d: %q", test.name, i, expr.expr)
			assert.Equal(t, expr.result, evalLast(envs["rdparser"], exprs), "rdparser: %s %d: %q", test.name, i, expr.expr)

			exprs, _, err = parser.ParseLVal([]byte(expr.expr))
			require.NoError(t, err, "%s %d: %q", test.name, i, expr.expr)
			assert.Equal(t, expr.result, evalLast(envs["parsec"], exprs), "parsec: %s %d: %q", test.name, i, expr.expr)
		}
	}
}

func TestEval_load(t *testing.T) {
	env := newEnv(t)
	out := env.Runtime.Stdout.(*bytes.Buffer)

	src := `
(def {greet} (fn {name} {print "hello" name}))
(greet "solo")
(def {done} 1)
`
	v := env.LoadString("greet.solo", src)
	assert.Equal(t, "()", v.String())
	assert.Equal(t, "\"hello\" \"solo\" \n", out.String())
	assert.Equal(t, "1", env.Get("done").String())

	v = env.LoadString("bad.solo", "(def {x} 1) (")
	require.True(t, lisp.IsError(v))
	assert.Equal(t, "Error: could not load bad.solo: bad.solo:1:13: unmatched (", v.String())
	assert.True(t, lisp.IsError(env.Get("x")))

	_, err := parser.Parse(env, false, []byte("(def {y} 2) (+ y 1)"))
	require.NoError(t, err)
	v, err = parser.Parse(env, true, []byte("(+ y 1)"))
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
	assert.Equal(t, "\"hello\" \"solo\" \n3\n", out.String())
}

func newEnv(t *testing.T) *lisp.LEnv {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&bytes.Buffer{}))
	require.False(t, lisp.IsError(lerr), "%v", lerr)
	return env
}

func evalLast(env *lisp.LEnv, exprs []lisp.LVal) string {
	var v lisp.LVal = lisp.Nil()
	for _, expr := range exprs {
		v = env.Eval(expr)
		if lisp.IsError(v) {
			break
		}
	}
	return v.String()
}
