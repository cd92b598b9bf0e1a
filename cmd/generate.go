package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"timecards/config"
	"timecards/importer"
	"timecards/output"
	"timecards/report"
)

var errNoInput = errors.New("please select an input file first (--input)")

var (
	generateInput  string
	generateFormat string
	generateOutput string
	generateDryRun bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the timecards PDF from a CSV/Excel table",
	Long: `Read a timecard table, group rows by employee into two reporting weeks, and write a PDF.

Week 1 starts on the Sunday on or before the earliest valid date in the table; week 2 follows
directly. Rows outside these 14 days are left out. Rows without a name or a readable date are
skipped, and hours that are not numbers count as zero. Employees without entries in a week get
a zero-hour "Shop" row for it.

When --format is omitted, the format is inferred from the input file extension.
When --output is omitted, report.output from the configuration is used (default timecards.pdf).`,
	Example: `
  # Generate timecards.pdf
  timecards generate -i submissions.csv

  # Excel input, custom output file
  timecards generate -i submissions.xlsx -o ./week-10.pdf

  # Force CSV parsing independent of extension
  timecards generate -i export.txt --format csv

  # Show weekly totals per employee without writing a file
  timecards generate -i submissions.csv --dry-run
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		options := generateOptions{
			Input:  generateInput,
			Format: generateFormat,
			Output: generateOutput,
			DryRun: generateDryRun,
		}
		if strings.TrimSpace(options.Output) == "" {
			options.Output = cfg.Report.Output
		}

		rep, err := runGenerate(*cfg, options)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if options.DryRun {
			printWeeklyTotals(out, rep, cfg.Report.DateLayout)
			return nil
		}
		printGenerateSummary(out, rep, options.Output, cfg.Report.DateLayout)
		return nil
	},
}

type generateOptions struct {
	Input  string
	Format string
	Output string
	DryRun bool
	Now    func() time.Time
}

// runGenerate loads the input table, builds the report and, unless DryRun is
// set, writes the PDF. Nothing is written when an earlier step fails.
func runGenerate(cfg config.Config, options generateOptions) (*report.Report, error) {
	if strings.TrimSpace(options.Input) == "" {
		return nil, errNoInput
	}

	records, err := importer.Load(options.Input, options.Format)
	if err != nil {
		return nil, err
	}

	rep, err := report.Build(records, report.Options{
		Columns: cfg.ImporterColumns(),
		Locale:  cfg.LocaleTag(),
	})
	if err != nil {
		return nil, err
	}
	if options.DryRun {
		return rep, nil
	}

	now := options.Now
	if now == nil {
		now = time.Now
	}

	layout := output.DefaultLayoutOptions()
	layout.DateLayout = cfg.Report.DateLayout
	writer := output.NewPDFWriter(layout, cfg.Report.TimestampLayout)
	if err := writer.Write(options.Output, rep, now()); err != nil {
		return nil, err
	}
	return rep, nil
}

func printGenerateSummary(out io.Writer, rep *report.Report, path, dateLayout string) {
	style := newStyler(out)
	fmt.Fprintln(out, style.render(Info, fmt.Sprintf("Timecards generated. Employees: %d, Rows read: %d, Entries placed: %d, Rows skipped: %d, Rows outside weeks: %d",
		len(rep.Employees),
		rep.RowsRead,
		rep.EntriesPlaced,
		rep.RowsSkipped,
		rep.RowsOutsideWindow,
	)))
	for week, window := range rep.Windows {
		fmt.Fprintln(out, style.render(Silent, output.WeekHeading(week, window, dateLayout)))
	}
	fmt.Fprintf(out, "File: %s\n", style.render(Primary, path))
}

func printWeeklyTotals(out io.Writer, rep *report.Report, dateLayout string) {
	style := newStyler(out)
	for _, employee := range rep.Employees {
		fmt.Fprintln(out, style.bold("Employee: "+employee.Name))
		for week, window := range rep.Windows {
			fmt.Fprintf(out, "  %s\n", style.render(Silent, output.WeekHeading(week, window, dateLayout)))
			for _, line := range output.SummaryLines(week, employee.Totals(week)) {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Input table path (.csv, .xlsx, .xlsm)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output PDF path (default from config report.output)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print weekly totals per employee without writing a PDF")
}
