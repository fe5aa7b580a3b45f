package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cyfko/filterql/pkg/fql"
)

var lintFlags struct {
	expr   string
	file   string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check filter expressions",
	Long: `Check filter expressions for lexical, grammar, and bracket errors.

The lint command parses expressions without evaluating them, so it needs
no knowledge of which filter names the application registers. Errors are
reported with the offending text and a caret marking its offset.

A filter-set file is a YAML document mapping names to expressions:

  filters:
    eu_adults: "(region_eu | region_uk) & adult"
    recent:    "active & !archived"

Examples:
  # Check one expression
  filterql lint --expr "(A | B) & C"

  # Check a filter-set file
  filterql lint --file filters.yaml

  # Machine-readable report
  filterql lint --file filters.yaml --format json`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintFlags.expr, "expr", "", "expression to check")
	lintCmd.Flags().StringVar(&lintFlags.file, "file", "", "YAML filter-set file to check")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// filterSet is the YAML document accepted by --file.
type filterSet struct {
	Filters map[string]string `yaml:"filters"`
}

// lintResult is the outcome of checking one expression.
type lintResult struct {
	Name        string   `json:"name,omitempty"`
	Expression  string   `json:"expression"`
	Valid       bool     `json:"valid"`
	Canonical   string   `json:"canonical,omitempty"`
	Identifiers []string `json:"identifiers,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func runLint(cmd *cobra.Command, args []string) error {
	if (lintFlags.expr == "") == (lintFlags.file == "") {
		return fmt.Errorf("exactly one of --expr or --file is required")
	}

	var results []lintResult

	if lintFlags.expr != "" {
		results = append(results, lintOne("", lintFlags.expr))
	} else {
		data, err := os.ReadFile(lintFlags.file)
		if err != nil {
			return fmt.Errorf("reading filter set: %w", err)
		}
		var set filterSet
		if err := yaml.Unmarshal(data, &set); err != nil {
			return fmt.Errorf("decoding filter set: %w", err)
		}
		if len(set.Filters) == 0 {
			return fmt.Errorf("%s defines no filters", lintFlags.file)
		}

		names := make([]string, 0, len(set.Filters))
		for name := range set.Filters {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			results = append(results, lintOne(name, set.Filters[name]))
		}
	}

	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}

	switch lintFlags.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	case "text":
		printResults(cmd, results, failed)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", lintFlags.format)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expression(s) failed", failed, len(results))
	}
	return nil
}

// lintOne parses a single expression and records the outcome.
func lintOne(name, expr string) lintResult {
	result := lintResult{Name: name, Expression: expr}

	tree, err := fql.Parse(expr)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	result.Canonical = tree.String()
	result.Identifiers = tree.Identifiers()
	return result
}

func printResults(cmd *cobra.Command, results []lintResult, failed int) {
	out := cmd.OutOrStdout()

	for _, r := range results {
		label := r.Name
		if label == "" {
			label = r.Expression
		}
		if r.Valid {
			fmt.Fprintf(out, "ok   %s\n", label)
			continue
		}
		fmt.Fprintf(out, "FAIL %s\n%s\n", label, r.Error)
	}

	fmt.Fprintf(out, "\n%d expression(s) checked, %d failed\n", len(results), failed)
}
