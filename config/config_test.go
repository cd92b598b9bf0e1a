package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_DefaultsApply(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("report:\n  output: \"out.pdf\"\n"))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Report.Output != "out.pdf" {
		t.Fatalf("unexpected output: %q", cfg.Report.Output)
	}
	columns := cfg.ImporterColumns()
	if columns.Name != "Name" || columns.Hours != "Hours Worked" || columns.JobNumber != "Job #" {
		t.Fatalf("unexpected default columns: %+v", columns)
	}
	if cfg.LocaleTag().String() != "en-US" {
		t.Fatalf("unexpected locale: %v", cfg.LocaleTag())
	}
}

func TestValidateYAMLContent_ExampleIsValid(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "non pdf output", content: "report:\n  output: \"out.xlsx\"\n", wantErr: "validation failed"},
		{name: "bad locale", content: "report:\n  locale: \"not a locale!\"\n", wantErr: "validation failed"},
		{name: "empty name column", content: "columns:\n  name: \"\"\n", wantErr: "validation failed"},
		{name: "literal date layout", content: "report:\n  date_layout: \"today\"\n", wantErr: "contains no date or time fields"},
		{name: "malformed yaml", content: "report: [\n", wantErr: "read config content"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
