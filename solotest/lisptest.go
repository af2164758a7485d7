// Package solotest runs table driven tests of lisp source against a fresh
// user environment.
package solotest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser"
)

// NewEnv returns a user environment which reads source with the default
// parser and writes program output to stdout.
func NewEnv(stdout *bytes.Buffer, config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
	}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lisp.IsError(lerr) {
		return nil, fmt.Errorf("failed to initialize lisp environment: %v", lerr)
	}
	return env, nil
}

// RunTestFile loads the file at path into a fresh environment and fails the
// test if loading produces an error.  The environment is returned so that
// the caller may inspect definitions made by the file.
func RunTestFile(t *testing.T, path string, config ...lisp.Config) *lisp.LEnv {
	var stdout bytes.Buffer
	env, err := NewEnv(&stdout, config...)
	if err != nil {
		t.Fatal(err)
	}
	lerr := env.LoadFile(path)
	if e, ok := lerr.(*lisp.Err); ok {
		t.Error(e.String())
		if e.Stack != nil {
			var buf bytes.Buffer
			e.Stack.DebugPrint(&buf)
			t.Error(buf.String())
		}
	}
	return env
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // output written while evaluating Expr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	for i, test := range tests {
		var stdout bytes.Buffer
		env, err := NewEnv(&stdout, config...)
		if err != nil {
			t.Fatalf("test %d %q: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			v, _, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			stdout.Reset()
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
			if env.Runtime.Stack.Height() != 0 {
				t.Errorf("test %d %q: expr %d: stack not empty after evaluation (height %d)", i, test.Name, j, env.Runtime.Stack.Height())
			}
		}
	}
}
