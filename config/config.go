// Package config loads the run configuration for the master list converter.
//
// Values come from, in increasing priority: built-in defaults, a config file
// (YAML, TOML or JSON), MASTERLIST_* environment variables, and command-line
// flags bound by the caller. The result is a plain Config value that is passed
// explicitly to whatever needs it; nothing reads configuration globally.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MASTERLIST_SCHEDULE_START_DATE.
const EnvPrefix = "MASTERLIST"

// Config is the complete, immutable run configuration.
type Config struct {
	// InputFile is the WBS export to read
	InputFile string `mapstructure:"input_file"`
	// OutputFile is the master list CSV to write
	OutputFile string `mapstructure:"output_file"`
	// XLSXFile optionally writes the same master list as a workbook ("" = off)
	XLSXFile string `mapstructure:"xlsx_file"`
	// RulesFile optionally replaces the built-in team/notes rules ("" = built-in)
	RulesFile string `mapstructure:"rules_file"`
	// HeaderRow is the sheet row holding the master list header; data starts below it
	HeaderRow int `mapstructure:"header_row"`

	Defaults DefaultsConfig `mapstructure:"defaults"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultsConfig holds the constant cell values written on every row.
type DefaultsConfig struct {
	Tag      string `mapstructure:"tag"`
	Status   string `mapstructure:"status"`
	Priority string `mapstructure:"priority"`
	// Person is used when no team rule matches
	Person string `mapstructure:"person"`
	// Notes is used when no note rule matches
	Notes string `mapstructure:"notes"`
}

// ScheduleConfig controls schedule generation.
type ScheduleConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// StartDate and EndDate are YYYY-MM-DD, both inclusive
	StartDate    string `mapstructure:"start_date"`
	EndDate      string `mapstructure:"end_date"`
	MinGroupDays int    `mapstructure:"min_group_days"`
}

// LayoutConfig describes the output columns.
type LayoutConfig struct {
	Columns []ColumnConfig `mapstructure:"columns"`
	// DoneStatus is the status value that blanks the Days Left formula
	DoneStatus string `mapstructure:"done_status"`
	// SheetName names the worksheet when XLSXFile is set
	SheetName string `mapstructure:"sheet_name"`
}

// ColumnConfig is one output column and the spacer columns that follow it.
// Spacers stand in for cells merged into the column in the target sheet.
type ColumnConfig struct {
	Name    string `mapstructure:"name"`
	Spacers int    `mapstructure:"spacers"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	// Mode is "development" (console) or "production" (JSON)
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		InputFile:  "WBS_FEATURES_TABLE.csv",
		OutputFile: "WBS_MASTER_LIST.csv",
		HeaderRow:  28,
		Defaults: DefaultsConfig{
			Tag:      "Vakav Website",
			Status:   "To Do",
			Priority: "2. Medium",
		},
		Schedule: ScheduleConfig{
			Enabled:      true,
			StartDate:    "2025-07-20",
			EndDate:      "2025-11-10",
			MinGroupDays: 3,
		},
		Layout: LayoutConfig{
			Columns: []ColumnConfig{
				{Name: "Checkbox"},
				{Name: "Task", Spacers: 2},
				{Name: "Tag"},
				{Name: "WBS Group", Spacers: 1},
				{Name: "Start Date"},
				{Name: "Deadline"},
				{Name: "Days Left"},
				{Name: "Priority"},
				{Name: "Status"},
				{Name: "Person In Charge"},
				{Name: "Notes"},
			},
			DoneStatus: "Done",
			SheetName:  "Master List",
		},
		Logging: LoggingConfig{
			Mode:  "development",
			Level: "info",
		},
	}
}

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers bind flags and set a config file before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// e.g. MASTERLIST_SCHEDULE_START_DATE for schedule.start_date
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("input_file", d.InputFile)
	v.SetDefault("output_file", d.OutputFile)
	v.SetDefault("xlsx_file", d.XLSXFile)
	v.SetDefault("rules_file", d.RulesFile)
	v.SetDefault("header_row", d.HeaderRow)

	v.SetDefault("defaults.tag", d.Defaults.Tag)
	v.SetDefault("defaults.status", d.Defaults.Status)
	v.SetDefault("defaults.priority", d.Defaults.Priority)
	v.SetDefault("defaults.person", d.Defaults.Person)
	v.SetDefault("defaults.notes", d.Defaults.Notes)

	v.SetDefault("schedule.enabled", d.Schedule.Enabled)
	v.SetDefault("schedule.start_date", d.Schedule.StartDate)
	v.SetDefault("schedule.end_date", d.Schedule.EndDate)
	v.SetDefault("schedule.min_group_days", d.Schedule.MinGroupDays)

	columns := make([]map[string]any, len(d.Layout.Columns))
	for i, c := range d.Layout.Columns {
		columns[i] = map[string]any{"name": c.Name, "spacers": c.Spacers}
	}
	v.SetDefault("layout.columns", columns)
	v.SetDefault("layout.done_status", d.Layout.DoneStatus)
	v.SetDefault("layout.sheet_name", d.Layout.SheetName)

	v.SetDefault("logging.mode", d.Logging.Mode)
	v.SetDefault("logging.level", d.Logging.Level)
}

// ReadFile merges the config file at path into v. A missing path is an error;
// an empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return Config{}, errs
	}
	return cfg, nil
}

// ErrInvalidConfig is matched by ValidationErrors via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")
