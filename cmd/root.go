package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamlog/contactlog/internal/config"
	"github.com/hamlog/contactlog/internal/failure"
)

var (
	cfg   *config.Config
	appFS = afero.NewOsFs()

	flagCSV       string
	flagProfile   string
	flagOutput    string
	flagRowPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "contactlog",
	Short: "Generate a static amateur-radio contact log page",
	Long: `Reads a QSO log (CSV) and an operator profile (JSON or YAML) and writes a
single self-contained HTML page. Running without a subcommand is the same as
"contactlog generate".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFlagOverrides(cmd, c)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runGenerate,
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("csv") {
		c.Sources.CSV = flagCSV
	}
	if flags.Changed("profile") {
		c.Sources.Profile = flagProfile
	}
	if flags.Changed("output") {
		c.Sources.Output = flagOutput
	}
	if flags.Changed("row-policy") {
		c.Loader.RowPolicy = flagRowPolicy
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCSV, "csv", "data.csv", "path to the contact log CSV")
	pf.StringVar(&flagProfile, "profile", "config.json", "path to the operator profile (JSON or YAML)")
	pf.StringVar(&flagOutput, "output", "index.html", "path of the generated page")
	pf.StringVar(&flagRowPolicy, "row-policy", config.RowPolicyPad, "rows with the wrong field count: pad, skip or fail")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(failure.ExitCode(err))
	}
}
