package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"timecards/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active timecards config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, the example template is written first.
After the editor exits, the file is validated.`,
	Example: `
  # Edit active config
  timecards config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := ensureConfigFileWithTemplate(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "No config file found. Created example config at: %s\n", path)
		}

		editor, err := editorCommand(resolveEditor(os.Getenv("VISUAL"), os.Getenv("EDITOR")), path)
		if err != nil {
			return err
		}
		if err := editor.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading edited config failed: %w", err)
		}
		if _, err := config.ValidateYAMLContent(content); err != nil {
			return fmt.Errorf("config validation failed in %s: %w", path, err)
		}

		fmt.Fprintf(out, "Configuration saved and validated: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
