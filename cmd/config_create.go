package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Write the example configuration (default column names, timecards.pdf output,
en-US locale and date layouts) to the active config path.

An existing file is never overwritten.`,
	Example: `
  # Create default config at $HOME/.timecards.yaml
  timecards config create

  # Create config at a custom path
  timecards --configFile ./timecards.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createConfigFile(cmd.OutOrStdout(), cfgFile, viper.ConfigFileUsed())
	},
}

func createConfigFile(out io.Writer, configFileFlag, configFileUsed string) error {
	path, err := resolveConfigPath(configFileFlag, configFileUsed)
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		return err
	}

	style := newStyler(out)
	if created {
		fmt.Fprintf(out, "New config file created at: %s\n", style.render(Primary, path))
		return nil
	}
	fmt.Fprintf(out, "Config file already exists at: %s\n", style.render(Primary, path))
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
