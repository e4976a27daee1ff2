// Package cmd implements parsec's demonstration CLI: a handful of
// subcommands exercising the example grammars (examples/calculator,
// examples/jsonv, examples/dot) built on top of the core pkg/lexer and
// pkg/parser packages.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "parser-combinator demo CLI",
	Long: `parsec is a library for building recursive-descent LL(*) parsers
from small, composable combinators (pkg/parser) and a priority-ordered
lexer generator (pkg/lexer).

This command is a thin demonstration shell around three example grammars
(calculator, jsonv, dot) — the library itself has no CLI surface.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
