package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/parsec/examples/calculator"
	"github.com/cwbudde/parsec/examples/dot"
	"github.com/cwbudde/parsec/examples/jsonv"
	"github.com/cwbudde/parsec/pkg/token"
)

var tokenizeGrammar string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize input with one of the example grammars' lexer rules",
	Long: `Tokenize source text and print the resulting token stream with
positions, one line per token.

If no file is provided, reads from stdin. Use --grammar to select which
example grammar's lexer rules to tokenize with (calc, json, dot).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeGrammar, "grammar", "g", "calc", "grammar to tokenize with: calc, json, dot")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var toks []token.Token
	switch tokenizeGrammar {
	case "calc":
		toks, err = calculator.Lex(input)
	case "json":
		toks, err = jsonv.Lex(input)
	case "dot":
		toks, err = dot.Lex(input)
	default:
		return fmt.Errorf("unknown grammar %q (want calc, json, or dot)", tokenizeGrammar)
	}
	if err != nil {
		return fmt.Errorf("tokenizing failed: %w", err)
	}

	for _, tok := range toks {
		fmt.Printf("%-10s %-20q @%s\n", tok.Type, tok.Value, tok.Start)
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
