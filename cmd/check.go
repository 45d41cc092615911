package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamlog/contactlog/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the published page matches the current log",
	Long: `Loads the contact log and profile, reads the existing page and compares
its table headers, row count and footer callsign. Exits with status 6 when
the page is missing or out of date.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := pipeline.New(cfg, appFS)
		result, err := p.Check(cmd.Context(), pipeline.SourcesFromConfig(cfg.Sources))
		if result != nil {
			out := cmd.OutOrStdout()
			if result.Current {
				fmt.Fprintf(out, "%s is up to date\n", result.Output)
			}
			for _, d := range result.Differences {
				fmt.Fprintf(out, "%s: %s\n", result.Output, d)
			}
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
