package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqscore/seqscore/pkg/config"
	"github.com/seqscore/seqscore/pkg/surface"
)

func newShowCmd() *cobra.Command {
	var (
		schemePath string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build a scoring model from a scheme file and display it",
		Long: `Loads a YAML scheme file, builds the model it describes (validating
all parameters), and renders the model summary. Without --scheme (or when
the file is absent) the default nucleotide scoring scheme is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(schemePath, outputFmt)
		},
	}

	cmd.Flags().StringVar(&schemePath, "scheme", "scheme.yaml", "Path to the scheme file")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runShow(schemePath, outputFmt string) error {
	scheme, err := config.Load(schemePath)
	if err != nil {
		return err
	}

	model, err := scheme.Build()
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	var renderer surface.Renderer
	switch outputFmt {
	case "text":
		renderer = &surface.TerminalRenderer{}
	case "json":
		renderer = &surface.JSONRenderer{}
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", outputFmt)
	}

	return renderer.Render(os.Stdout, model.Summary())
}
