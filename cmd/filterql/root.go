package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filterql",
	Short: "Filterql - filter expression language tooling",
	Long: `Filterql is a developer tool for the FQL filter expression language.

FQL combines named filters with boolean operators:
  &    AND (binds tighter than |)
  |    OR
  !    NOT (binds tightest)
  ( )  grouping

Identifiers start with a letter or underscore and contain only letters,
digits, and underscores. Which names exist is an application concern;
filterql checks expressions, it does not evaluate them.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
