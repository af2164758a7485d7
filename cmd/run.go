package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE ...",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or a file.  All sources are
evaluated in order within a single global environment.  Evaluation stops at
the first error.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, err := newEnv(os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runSources(env, args, runExpression, runPrint)
		if err != nil {
			printError(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// runSources evaluates each of args in env.  When expr is true args are
// source text, otherwise they are file paths.
func runSources(env *lisp.LEnv, args []string, expr bool, print bool) error {
	for _, arg := range args {
		var err error
		if expr {
			err = runExpr(env, arg, print)
		} else {
			err = runFile(env, arg, print)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func runExpr(env *lisp.LEnv, text string, print bool) error {
	v, err := parser.Parse(env, print, []byte(text))
	if err != nil {
		return fmt.Errorf("syntax error: %w", err)
	}
	return lisp.GoError(v)
}

func runFile(env *lisp.LEnv, path string, print bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return runSource(env, path, f, print)
}

// runSource evaluates expressions read from r in env.  If print is true
// the value of each expression is written to the runtime's standard output.
func runSource(env *lisp.LEnv, name string, r io.Reader, print bool) error {
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return fmt.Errorf("syntax error: %w", err)
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if lisp.IsError(v) {
			return lisp.GoError(v)
		}
		if print {
			fmt.Fprintln(env.Runtime.Stdout, v)
		}
	}
	return nil
}

// printError writes err to w.  Lisp errors are printed along with the call
// stack present when they were created, if any.
func printError(w io.Writer, err error) {
	e, ok := err.(*lisp.Err)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, e.String())
	if e.Stack != nil {
		e.Stack.DebugPrint(w)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
