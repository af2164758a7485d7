package lisp

import (
	"errors"
	"fmt"
)

// Err is an error value.  Errors are first class lisp objects which
// short-circuit evaluation of any expression containing them.  When an error
// is created through LEnv.Errorf the call stack at the time of creation is
// stored along with the message.
type Err struct {
	Msg   string
	Stack *CallStack
}

// Errorf returns an error value with a formatted message.
func Errorf(format string, v ...interface{}) *Err {
	return &Err{Msg: fmt.Sprintf(format, v...)}
}

// Error returns an error value holding the message of err.
func Error(err error) *Err {
	var lerr *Err
	if errors.As(err, &lerr) {
		return lerr.Copy().(*Err)
	}
	return &Err{Msg: err.Error()}
}

// Error implements the error interface.
func (e *Err) Error() string {
	return e.Msg
}

func (e *Err) String() string {
	return "Error: " + e.Msg
}

// GoError returns a Go error for v if v is an error value.  GoError returns
// nil for any other value.
func GoError(v LVal) error {
	if e, ok := v.(*Err); ok {
		return e
	}
	return nil
}

// IsError returns true if v is an error value.
func IsError(v LVal) bool {
	_, ok := v.(*Err)
	return ok
}

// Errorf returns an error value with a formatted message that captures the
// current state of env's call stack.
func (env *LEnv) Errorf(format string, v ...interface{}) *Err {
	e := Errorf(format, v...)
	if env != nil && env.Runtime != nil && env.Runtime.Stack.Height() > 0 {
		e.Stack = env.Runtime.Stack.Copy()
	}
	return e
}
