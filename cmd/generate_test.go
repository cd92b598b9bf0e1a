package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"timecards/config"
	"timecards/report"
)

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.ValidateYAMLContent([]byte(config.ExampleYAML()))
	if err != nil {
		t.Fatalf("example config: %v", err)
	}
	return *cfg
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timecards.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
}

const sampleInput = `Name,Date,Hours Worked,Contractor,Job #,Address,Wage Type
Bob Zeta,2026-03-03,8,Acme,1042,12 Main St,Hourly
Jane Doe,2026-03-04,7.9,Acme,1042,12 Main St,Hourly
Jane Doe,2026-03-05,abc,Acme,1042,12 Main St,Overtime
Amy Alpha,2026-03-10,2.13,Globex,2001,1 Side Rd,Vacation
,2026-03-05,8,Acme,1042,12 Main St,Hourly
Jane Doe,whenever,8,Acme,1042,12 Main St,Hourly
`

func TestRunGenerate_WritesPDF(t *testing.T) {
	input := writeInput(t, sampleInput)
	outPath := filepath.Join(t.TempDir(), "timecards.pdf")

	rep, err := runGenerate(defaultConfig(t), generateOptions{Input: input, Output: outPath, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected pdf to exist: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("expected pdf content")
	}

	gotNames := make([]string, 0, len(rep.Employees))
	for _, employee := range rep.Employees {
		gotNames = append(gotNames, employee.Name)
	}
	if strings.Join(gotNames, ",") != "Amy Alpha,Jane Doe,Bob Zeta" {
		t.Fatalf("unexpected employee order: %v", gotNames)
	}
	if rep.RowsRead != 6 || rep.RowsSkipped != 2 || rep.EntriesPlaced != 4 {
		t.Fatalf("unexpected counters: read=%d skipped=%d placed=%d", rep.RowsRead, rep.RowsSkipped, rep.EntriesPlaced)
	}

	jane := rep.Employees[1]
	totals := jane.Totals(report.Week1)
	if totals.ByType["Hourly"] != 8 || totals.ByType["Overtime"] != 0 || totals.Total != 8 {
		t.Fatalf("unexpected week 1 totals for Jane: %+v", totals)
	}
	if len(jane.Weeks[report.Week2]) != 1 || !jane.Weeks[report.Week2][0].Placeholder {
		t.Fatalf("expected one placeholder in week 2 for Jane, got %+v", jane.Weeks[report.Week2])
	}
}

func TestRunGenerate_NoInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "timecards.pdf")

	_, err := runGenerate(defaultConfig(t), generateOptions{Output: outPath})
	if !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput, got %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file")
	}
}

func TestRunGenerate_NoValidDatesWritesNothing(t *testing.T) {
	input := writeInput(t, "Name,Date,Hours Worked\nJane Doe,soon,8\nBob Zeta,,8\n")
	outPath := filepath.Join(t.TempDir(), "timecards.pdf")

	_, err := runGenerate(defaultConfig(t), generateOptions{Input: input, Output: outPath, Now: fixedNow})
	if !errors.Is(err, report.ErrNoValidDates) {
		t.Fatalf("expected ErrNoValidDates, got %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file")
	}
}

func TestRunGenerate_MalformedTable(t *testing.T) {
	input := writeInput(t, "Name,Date\n\"Jane Doe,2026-03-02\n")

	if _, err := runGenerate(defaultConfig(t), generateOptions{Input: input, DryRun: true}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRunGenerate_DryRunWritesNothing(t *testing.T) {
	input := writeInput(t, sampleInput)
	outPath := filepath.Join(t.TempDir(), "timecards.pdf")

	rep, err := runGenerate(defaultConfig(t), generateOptions{Input: input, Output: outPath, DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file on dry run")
	}

	var out bytes.Buffer
	printWeeklyTotals(&out, rep, "1/2/2006")
	text := out.String()
	for _, want := range []string{
		"Employee: Amy Alpha",
		"Week 1: 3/1/2026 – 3/7/2026",
		"Week 2: 3/8/2026 – 3/14/2026",
		"Vacation: 2.25 hrs",
		"Total: 0.00 hrs",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestPrintGenerateSummary(t *testing.T) {
	input := writeInput(t, sampleInput)
	rep, err := runGenerate(defaultConfig(t), generateOptions{Input: input, DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	printGenerateSummary(&out, rep, "timecards.pdf", "2006-01-02")
	text := out.String()
	if !strings.Contains(text, "Employees: 3, Rows read: 6, Entries placed: 4, Rows skipped: 2, Rows outside weeks: 0") {
		t.Fatalf("unexpected summary:\n%s", text)
	}
	if !strings.Contains(text, "Week 1: 2026-03-01 – 2026-03-07") || !strings.Contains(text, "File: timecards.pdf") {
		t.Fatalf("unexpected summary:\n%s", text)
	}
}
