package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cyfko/filterql/pkg/fql"
)

var fmtFlags struct {
	expr string
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Print the canonical form of an expression",
	Long: `Parse an expression and print its canonical, fully-grouped form.

The canonical form makes precedence explicit; re-parsing it yields the
same tree:

  $ filterql fmt --expr "A|B&C"
  (A | (B & C))`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := fql.Parse(fmtFlags.expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tree)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().StringVar(&fmtFlags.expr, "expr", "", "expression to format")
	_ = fmtCmd.MarkFlagRequired("expr")
}
