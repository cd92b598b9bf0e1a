package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"timecards/importer"
)

const (
	KeyColumnName       = "columns.name"
	KeyColumnDate       = "columns.date"
	KeyColumnHours      = "columns.hours"
	KeyColumnContractor = "columns.contractor"
	KeyColumnJob        = "columns.job"
	KeyColumnAddress    = "columns.address"
	KeyColumnWageType   = "columns.wage_type"

	KeyReportOutput          = "report.output"
	KeyReportLocale          = "report.locale"
	KeyReportDateLayout      = "report.date_layout"
	KeyReportTimestampLayout = "report.timestamp_layout"
)

type Config struct {
	Columns ColumnsConfig `mapstructure:"columns"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
}

// ColumnsConfig names the input table headers. Matching ignores case, spaces,
// underscores and dashes.
type ColumnsConfig struct {
	Name       string `mapstructure:"name" validate:"required"`
	Date       string `mapstructure:"date" validate:"required"`
	Hours      string `mapstructure:"hours" validate:"required"`
	Contractor string `mapstructure:"contractor"`
	Job        string `mapstructure:"job"`
	Address    string `mapstructure:"address"`
	WageType   string `mapstructure:"wage_type"`
}

type ReportConfig struct {
	Output          string `mapstructure:"output" validate:"required,endswith=.pdf"`
	Locale          string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	DateLayout      string `mapstructure:"date_layout" validate:"required"`
	TimestampLayout string `mapstructure:"timestamp_layout" validate:"required"`
}

// ImporterColumns converts the configured headers for the importer.
func (c Config) ImporterColumns() importer.Columns {
	return importer.Columns{
		Name:       c.Columns.Name,
		Date:       c.Columns.Date,
		Hours:      c.Columns.Hours,
		Contractor: c.Columns.Contractor,
		JobNumber:  c.Columns.Job,
		Address:    c.Columns.Address,
		WageType:   c.Columns.WageType,
	}
}

// LocaleTag returns the parsed report locale.
func (c Config) LocaleTag() language.Tag {
	return language.Make(c.Report.Locale)
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# timecards configuration
columns:
  name: "Name"
  date: "Date"
  hours: "Hours Worked"
  contractor: "Contractor"
  job: "Job #"
  address: "Address"
  wage_type: "Wage Type"

report:
  output: "timecards.pdf"
  locale: "en-US"
  date_layout: "1/2/2006"
  timestamp_layout: "1/2/2006, 3:04:05 PM"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateLayouts(cfg.Report); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := importer.DefaultColumns()
	v.SetDefault(KeyColumnName, defaults.Name)
	v.SetDefault(KeyColumnDate, defaults.Date)
	v.SetDefault(KeyColumnHours, defaults.Hours)
	v.SetDefault(KeyColumnContractor, defaults.Contractor)
	v.SetDefault(KeyColumnJob, defaults.JobNumber)
	v.SetDefault(KeyColumnAddress, defaults.Address)
	v.SetDefault(KeyColumnWageType, defaults.WageType)

	v.SetDefault(KeyReportOutput, "timecards.pdf")
	v.SetDefault(KeyReportLocale, "en-US")
	v.SetDefault(KeyReportDateLayout, "1/2/2006")
	v.SetDefault(KeyReportTimestampLayout, "1/2/2006, 3:04:05 PM")
}

// validateLayouts rejects layouts without any Go reference-time element, which
// would print the same literal text for every date.
func validateLayouts(report ReportConfig) error {
	reference := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	other := time.Date(2011, time.November, 23, 9, 41, 17, 0, time.UTC)

	layouts := map[string]string{
		"report.date_layout":      report.DateLayout,
		"report.timestamp_layout": report.TimestampLayout,
	}
	for key, layout := range layouts {
		if strings.TrimSpace(layout) == "" {
			continue
		}
		if reference.Format(layout) == other.Format(layout) {
			return fmt.Errorf("validation failed: %s %q contains no date or time fields", key, layout)
		}
	}
	return nil
}
