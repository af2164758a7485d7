package cmd

import (
	"fmt"
	"os"

	"github.com/kiasaki/solo-lisp/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive repl",
	Long: `Start an interactive repl.  Each line of input is evaluated as a single
s-expression, so "+ 1 2" is equivalent to "(+ 1 2)".  Expressions may span
multiple lines.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func runRepl() {
	err := repl.Run(replPrompt, envConfig(os.Stdout, os.Stderr)...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"The prompt displayed while waiting for input")
}
