package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/hamlog/contactlog/internal/model"
	"github.com/hamlog/contactlog/internal/pipeline"
)

type inspectReport struct {
	Sources  pipeline.Sources     `json:"sources"`
	Schema   model.ColumnSchema   `json:"schema"`
	Records  int                  `json:"records"`
	Rejected []model.RejectedRow  `json:"rejected"`
	Profile  []model.ProfileEntry `json:"profile"`
	Rows     [][]string           `json:"rows,omitempty"`
}

var inspectRows bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Parse the log and profile and print them as JSON",
	Long: `Dry run: loads both sources with the active row policy and prints what
would be rendered. Nothing is written.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		src := pipeline.SourcesFromConfig(cfg.Sources)
		contacts, profile, err := pipeline.New(cfg, appFS).Load(src)
		if err != nil {
			return err
		}
		return printInspectJSON(cmd.OutOrStdout(), buildInspectReport(src, contacts, profile, inspectRows))
	},
}

func buildInspectReport(src pipeline.Sources, contacts *model.ContactLog, profile model.Profile, withRows bool) inspectReport {
	report := inspectReport{
		Sources:  src,
		Schema:   contacts.Schema,
		Records:  len(contacts.Records),
		Rejected: contacts.Rejected,
		Profile:  profile.Entries,
	}
	if report.Rejected == nil {
		report.Rejected = []model.RejectedRow{}
	}
	if report.Profile == nil {
		report.Profile = []model.ProfileEntry{}
	}
	if withRows {
		for _, rec := range contacts.Records {
			report.Rows = append(report.Rows, rec.Values)
		}
	}
	return report
}

func printInspectJSON(w io.Writer, report inspectReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectRows, "rows", false, "include every record in schema order")
	rootCmd.AddCommand(inspectCmd)
}
