package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/parsec/examples/calculator"
	"github.com/cwbudde/parsec/examples/dot"
	"github.com/cwbudde/parsec/examples/jsonv"
	"github.com/cwbudde/parsec/pkg/prettytree"
)

var parseGrammar string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse input with one of the example grammars and print the tree",
	Long: `Parse source text with one of the example grammars (calc, json, dot)
and print the resulting parse tree as Unicode box-drawing art via
pkg/prettytree.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseGrammar, "grammar", "g", "calc", "grammar to parse with: calc, json, dot")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var tree string
	switch parseGrammar {
	case "calc":
		n, err := calculator.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		tree = prettytree.Sprint(n, calculator.Children, calculator.Show)
	case "json":
		v, err := jsonv.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		tree = prettytree.Sprint(v, jsonv.Children, jsonv.Show)
	case "dot":
		g, err := dot.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		tree = prettytree.Sprint(g, dot.Children, dot.Show)
	default:
		return fmt.Errorf("unknown grammar %q (want calc, json, or dot)", parseGrammar)
	}

	fmt.Print(tree)
	return nil
}
