// Package main provides the seqscore CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "seqscore",
		Short: "Scoring models for pairwise sequence alignment",
		Long: `Seqscore builds and validates the scoring models an alignment engine
consumes: affine-gap score models and edit-distance cost models, defined
inline or loaded from YAML scheme files.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newShowCmd(),
		newCheckCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
