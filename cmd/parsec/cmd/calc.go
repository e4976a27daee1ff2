package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/parsec/examples/calculator"
)

var calcCmd = &cobra.Command{
	Use:   "calc <expression>",
	Short: "Evaluate an arithmetic expression",
	Long: `Parse and evaluate an arithmetic expression with standard precedence,
printing both its parse tree and its numeric result.

Example:
  parsec calc "3 + 2 * 4"`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	n, err := calculator.Parse(args[0])
	if err != nil {
		exitWithError("%v", err)
	}
	fmt.Printf("%s = %g\n", n.String(), n.Eval())
	return nil
}
