package config

import (
	"fmt"
	"strings"
)

// MaxLineLength bounds the rule width.
const MaxLineLength = 1000

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the configuration for errors.
func Validate(c *Config) error {
	var errs ValidationErrors

	if c.Version != CurrentVersion {
		errs = append(errs, ValidationError{"version", fmt.Sprintf("unsupported version '%s' (expected '%s')", c.Version, CurrentVersion)})
	}

	if err := ValidateLineLength("line_length", c.LineLength); err != nil {
		errs = append(errs, *err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{"log.level", "must be 'debug', 'info', 'warn', or 'error'"})
	}

	if err := ValidateLogFormat("log.format", c.Log.Format); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateLineLength checks a rule width given under field.
func ValidateLineLength(field string, n int) *ValidationError {
	if n < 1 || n > MaxLineLength {
		return &ValidationError{field, fmt.Sprintf("must be between 1 and %d", MaxLineLength)}
	}
	return nil
}

// ValidateLogFormat checks a log format given under field.
func ValidateLogFormat(field, format string) *ValidationError {
	switch strings.ToLower(format) {
	case "text", "pretty", "json":
		return nil
	}
	return &ValidationError{field, "must be 'text' or 'json'"}
}
