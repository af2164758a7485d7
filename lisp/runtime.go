package lisp

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Runtime is the state shared by every LEnv of one interpreter.
type Runtime struct {
	Builtins *BuiltinTable
	Reader   Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Stack    *CallStack
}

// StandardRuntime returns a new Runtime with the default builtins, an empty
// call stack, output directed at os.Stdout and os.Stderr, and a logger that
// discards all records.  The returned Runtime has no Reader.
func StandardRuntime() *Runtime {
	return &Runtime{
		Builtins: DefaultBuiltinTable(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   slog.New(discardHandler{}),
		Stack:    &CallStack{},
	}
}

func (r *Runtime) logger() *slog.Logger {
	if r == nil || r.Logger == nil {
		return slog.New(discardHandler{})
	}
	return r.Logger
}

func (r *Runtime) stdout() io.Writer {
	if r == nil || r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
