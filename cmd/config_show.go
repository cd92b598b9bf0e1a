package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"timecards/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the effective configuration (file values over defaults) and the config file it came from.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  timecards config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		printConfig(cmd.OutOrStdout(), *cfg, viper.ConfigFileUsed())
		return nil
	},
}

func printConfig(out io.Writer, cfg config.Config, source string) {
	if source == "" {
		source = "(none, using defaults)"
	}
	fmt.Fprintln(out, "Config file loaded from:", source)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnName, cfg.Columns.Name)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnDate, cfg.Columns.Date)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnHours, cfg.Columns.Hours)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnContractor, cfg.Columns.Contractor)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnJob, cfg.Columns.Job)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnAddress, cfg.Columns.Address)
	fmt.Fprintf(out, "%s: %s\n", config.KeyColumnWageType, cfg.Columns.WageType)
	fmt.Fprintf(out, "%s: %s\n", config.KeyReportOutput, cfg.Report.Output)
	fmt.Fprintf(out, "%s: %s\n", config.KeyReportLocale, cfg.Report.Locale)
	fmt.Fprintf(out, "%s: %s\n", config.KeyReportDateLayout, cfg.Report.DateLayout)
	fmt.Fprintf(out, "%s: %s\n", config.KeyReportTimestampLayout, cfg.Report.TimestampLayout)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
