/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"timecards/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timecards",
	Short: "Turn a timecard table into a two-week PDF summary per employee.",
	Long: `
**********************************************
*              TIMECARDS                     *
**********************************************

This CLI reads employee timecard submissions from a CSV or Excel table, groups them
by employee into two reporting weeks starting on the Sunday before the earliest date,
and renders a landscape PDF with one section and per-wage-type totals per employee.

Required input columns: Name, Date, Hours Worked
Optional input columns: Contractor, Job #, Address, Wage Type

Supported input formats:
- CSV: .csv
- Excel: .xlsx, .xlsm
`,
	Example: `
  # Create configuration file
  timecards config create

  # Generate timecards.pdf from a CSV export
  timecards generate -i submissions.csv

  # Generate into a custom file
  timecards generate -i submissions.xlsx -o ./out/week-10.pdf

  # Print weekly totals without writing a PDF
  timecards generate -i submissions.csv --dry-run
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(out io.Writer, err error) {
	fmt.Fprintln(out, newStyler(out).render(Error, "Error: "+err.Error()))
}

func printWarning(out io.Writer, message string) {
	fmt.Fprintln(out, newStyler(out).render(Warning, message))
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.timecards.yaml, then ./.timecards.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".timecards" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".timecards")
	}

	viper.SetEnvPrefix("timecards")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover a missing config file; only an explicit or broken one is reported.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			printWarning(os.Stderr, fmt.Sprintf("Could not read config file: %v", err))
		}
	}
}
