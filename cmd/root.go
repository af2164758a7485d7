package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kiasaki/solo-lisp/lisp"
	"github.com/kiasaki/solo-lisp/parser"
	"github.com/spf13/cobra"
)

var (
	maxStackHeight int
	debug          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solo",
	Short: "A small lisp",
	Long: `Solo is a small lisp with curried functions, q-expressions and errors
as values.  Without a subcommand solo starts an interactive repl.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxStackHeight, "max-stack-height", 0,
		"Maximum function call depth (0 means unlimited)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Trace function calls and file loads to stderr")
}

// envConfig returns the environment configuration selected by global flags.
func envConfig(stdout, stderr io.Writer) []lisp.Config {
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithStderr(stderr),
		lisp.WithMaximumStackHeight(maxStackHeight),
	}
	if debug {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		config = append(config, lisp.WithLogger(slog.New(handler)))
	}
	return config
}

// newEnv returns an initialized root environment.
func newEnv(stdout, stderr io.Writer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env, envConfig(stdout, stderr)...)
	if lisp.IsError(lerr) {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", lisp.GoError(lerr))
	}
	return env, nil
}
