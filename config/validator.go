package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "schedule.min_group_days")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Is lets errors.Is(err, ErrInvalidConfig) match.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogModes returns the list of valid logger modes
func ValidLogModes() []string {
	return []string{"development", "dev", "production", "prod"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found. Schedule dates are not checked here; the schedule package
// reports them as InvalidDateError.
func (c Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.InputFile) == "" {
		errs = append(errs, ValidationError{Field: "input_file", Value: c.InputFile, Message: "must not be empty"})
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		errs = append(errs, ValidationError{Field: "output_file", Value: c.OutputFile, Message: "must not be empty"})
	}
	if c.XLSXFile != "" && c.XLSXFile == c.OutputFile {
		errs = append(errs, ValidationError{Field: "xlsx_file", Value: c.XLSXFile, Message: "must differ from output_file"})
	}
	if c.HeaderRow < 1 {
		errs = append(errs, ValidationError{Field: "header_row", Value: c.HeaderRow, Message: "must be at least 1"})
	}
	if c.Schedule.MinGroupDays < 1 {
		errs = append(errs, ValidationError{Field: "schedule.min_group_days", Value: c.Schedule.MinGroupDays, Message: "must be at least 1"})
	}

	if len(c.Layout.Columns) == 0 {
		errs = append(errs, ValidationError{Field: "layout.columns", Value: c.Layout.Columns, Message: "must list at least one column"})
	}
	seen := make(map[string]bool)
	for i, col := range c.Layout.Columns {
		field := fmt.Sprintf("layout.columns[%d]", i)
		if strings.TrimSpace(col.Name) == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Value: col.Name, Message: "must not be empty"})
		}
		if seen[col.Name] {
			errs = append(errs, ValidationError{Field: field + ".name", Value: col.Name, Message: "duplicate column"})
		}
		seen[col.Name] = true
		if col.Spacers < 0 {
			errs = append(errs, ValidationError{Field: field + ".spacers", Value: col.Spacers, Message: "must not be negative"})
		}
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogModes(), strings.ToLower(c.Logging.Mode)) {
		errs = append(errs, ValidationError{
			Field:   "logging.mode",
			Value:   c.Logging.Mode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogModes(), ", ")),
		})
	}

	return errs
}
