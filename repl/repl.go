// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser"
)

// DefaultPrompt is the prompt displayed when Run is given an empty prompt.
const DefaultPrompt = "λ: "

// Session accumulates lines of input until they form complete expressions
// and evaluates them in an environment.
type Session struct {
	env *lisp.LEnv
	out io.Writer
	buf []byte
}

// NewSession returns a Session that evaluates input in env and prints
// results to out.
func NewSession(env *lisp.LEnv, out io.Writer) *Session {
	return &Session{env: env, out: out}
}

// Pending returns true if the session holds an incomplete expression.
func (s *Session) Pending() bool {
	return len(s.buf) != 0
}

// Reset discards any incomplete input.
func (s *Session) Reset() {
	s.buf = nil
}

// Feed appends line to any pending input.  When the input forms complete
// expressions they are evaluated as a single s-expression and the result is
// printed.  Feed returns false if more input is needed to complete an
// expression.  A syntax error discards the pending input.
func (s *Session) Feed(line []byte) (bool, error) {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	v, err := EvalLine(s.env, s.buf)
	if err == parser.ErrIncomplete {
		return false, nil
	}
	s.buf = nil
	if err != nil {
		return true, err
	}
	if v != nil {
		fmt.Fprintln(s.out, v)
	}
	return true, nil
}

// EvalLine parses text and evaluates it in env as one s-expression, so that
// `+ 1 2` evaluates to 3 just as `(+ 1 2)` does.  A nil LVal is returned if
// text contains no expressions.
func EvalLine(env *lisp.LEnv, text []byte) (lisp.LVal, error) {
	exprs, _, err := parser.ParseLVal(text)
	if err != nil {
		return nil, err
	}
	switch len(exprs) {
	case 0:
		return nil, nil
	case 1:
		return env.Eval(exprs[0]), nil
	default:
		return env.Eval(lisp.Expr(exprs...)), nil
	}
}

// Run runs a repl on the terminal until input is exhausted.  An interrupt
// discards the current input.
func Run(prompt string, config ...lisp.Config) error {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
	}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lisp.IsError(lerr) {
		return lisp.GoError(lerr)
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len([]rune(prompt)))

	session := NewSession(env, env.Runtime.Stdout)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			session.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		complete, err := session.Feed([]byte(line))
		if err != nil {
			fmt.Fprintln(env.Runtime.Stderr, err)
		}
		if complete {
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(contPrompt)
		}
	}
}
