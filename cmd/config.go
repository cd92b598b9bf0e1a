package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage timecards configuration file values.",
	Long: `Create, edit, display, and delete the timecards configuration file.

The configuration stores input column names and report settings:
- columns.name / date / hours / contractor / job / address / wage_type
- report.output / locale / date_layout / timestamp_layout`,
	Example: `
  # Create default config in $HOME/.timecards.yaml
  timecards config create

  # Show active config and source file
  timecards config show

  # Open active config in editor (creates example if missing)
  timecards config edit

  # Delete active config file
  timecards config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
