package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) LVal

// Loader is a function that loads source code into an environment.
type Loader func(env *LEnv) LVal

// InitializeUserEnv binds the builtins of env's runtime and applies configs to
// env in order.  The first error value returned by a Config is returned and
// aborts initialization.
func InitializeUserEnv(env *LEnv, config ...Config) LVal {
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if IsError(lerr) {
			return lerr
		}
	}
	return Nil()
}

// WithLoader returns a Config that executes fn.  Configs are applied in
// order so fn must follow any Config it depends on, like WithReader.
func WithLoader(fn Loader) Config {
	return func(env *LEnv) LVal {
		return fn(env)
	}
}

// WithLibrary returns a Config that loads the file at path.
func WithLibrary(path string) Config {
	return WithLoader(func(env *LEnv) LVal {
		return env.LoadFile(path)
	})
}

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the stack height to exceed n.  A value of zero
// removes any limit.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) LVal {
		if n < 0 {
			return Errorf("invalid maximum stack height: %d", n)
		}
		env.Runtime.Stack.MaxHeight = n
		return Nil()
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) LVal {
		env.Runtime.Reader = r
		return Nil()
	}
}

// WithStdout returns a Config that makes environments write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) LVal {
		env.Runtime.Stdout = w
		return Nil()
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) LVal {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithLogger returns a Config that makes the runtime emit trace records to
// logger.
func WithLogger(logger *slog.Logger) Config {
	return func(env *LEnv) LVal {
		env.Runtime.Logger = logger
		return Nil()
	}
}

// WithBuiltins returns a Config that adds defs to the runtime's builtin
// table and binds them in the environment.  A def replaces any default
// builtin with the same name.
func WithBuiltins(defs ...BuiltinDef) Config {
	return func(env *LEnv) LVal {
		env.Runtime.Builtins = env.Runtime.Builtins.With(defs...)
		for _, def := range defs {
			env.Put(def.Name(), Fun(def.Name()))
		}
		return Nil()
	}
}
