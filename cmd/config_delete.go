package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently loaded by timecards.

Generation keeps working afterwards with built-in defaults.`,
	Example: `
  # Delete active config
  timecards config delete

  # Delete config at a custom path
  timecards --configFile ./timecards.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			return fmt.Errorf("no configuration file found")
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("error deleting configuration file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file successfully deleted: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
