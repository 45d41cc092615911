package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamlog/contactlog/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the HTML page from the contact log and profile",
	Long: `Loads the contact log and operator profile, renders the page and atomically
replaces the output file. On any error the previous page is left untouched.

Examples:
  # Use the defaults: data.csv, config.json -> index.html
  contactlog generate

  # Explicit locations, reject malformed rows instead of padding them
  contactlog generate --csv log/qso.csv --profile profile.yaml --output public/index.html --row-policy skip`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p := pipeline.New(cfg, appFS)
	result, err := p.Run(ctx, pipeline.SourcesFromConfig(cfg.Sources))
	if err != nil {
		return err
	}

	if n := len(result.Rejected); n > 0 {
		zap.L().Warn("generate: rows rejected",
			zap.Int("rejected", n),
			zap.String("row_policy", cfg.Loader.RowPolicy),
		)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s\n", result.Output)
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
