package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqscore/seqscore/pkg/config"
)

func newCheckCmd() *cobra.Command {
	var schemePath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a scheme file without displaying it",
		Long: `Loads a YAML scheme file and builds the model it describes, reporting
the first configuration problem found. Exits non-zero when the scheme is
invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(schemePath)
		},
	}

	cmd.Flags().StringVar(&schemePath, "scheme", "", "Path to the scheme file (required)")
	_ = cmd.MarkFlagRequired("scheme")

	return cmd
}

func runCheck(schemePath string) error {
	if _, err := os.Stat(schemePath); err != nil {
		return fmt.Errorf("scheme file %s: %w", schemePath, err)
	}

	scheme, err := config.Load(schemePath)
	if err != nil {
		return err
	}
	if _, err := scheme.Build(); err != nil {
		return fmt.Errorf("invalid scheme %s: %w", schemePath, err)
	}

	fmt.Fprintf(os.Stderr, "%s: ok\n", schemePath)
	return nil
}
