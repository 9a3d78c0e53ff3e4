package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/errors"
)

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"text", "json", "yaml", "table"}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// Err folds the errors into one config error, or returns nil.
func (vr *ValidationResult) Err() error {
	if !vr.HasErrors() {
		return nil
	}
	fields := make([]string, 0, len(vr.Errors))
	for _, ve := range vr.Errors {
		fields = append(fields, ve.Field)
	}
	return errors.NewConfigError(errors.ErrCodeConfigInvalid, vr.Errors[0].Message).
		WithContext("fields", strings.Join(fields, ","))
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(title string, items []ValidationError) {
		if len(items) == 0 {
			return
		}
		builder.WriteString(title + ":\n")
		for _, item := range items {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", item.Field, item.Message))
			for _, suggestion := range item.Suggestions {
				builder.WriteString(fmt.Sprintf("    - %s\n", suggestion))
			}
		}
	}
	write("Validation Errors", vr.Errors)
	write("Validation Warnings", vr.Warnings)

	return builder.String()
}

// Validate checks every section of config.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateInputs(&config.Inputs, result)
	validateBench(&config.Bench, result)
	validateWatch(&config.Watch, result)
	validateOneOf(result, "output.format", config.Output.Format, OutputFormats)
	validateOneOf(result, "log.level", strings.ToLower(config.Log.Level), logLevels)
	validateOneOf(result, "log.format", config.Log.Format, logFormats)

	result.Valid = !result.HasErrors()
	return result
}

func validateInputs(config *InputsConfig, result *ValidationResult) {
	if strings.TrimSpace(config.Dir) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "inputs.dir",
			Value:       config.Dir,
			Message:     "input directory must not be empty",
			Suggestions: []string{"Set inputs.dir to a directory such as " + DefaultInputDir},
		})
	} else if strings.Contains(config.Dir, "\x00") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "inputs.dir",
			Value:   config.Dir,
			Message: "input directory contains a NUL byte",
		})
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "inputs.base_url",
			Value:       config.BaseURL,
			Message:     fmt.Sprintf("%q is not an http(s) URL", config.BaseURL),
			Suggestions: []string{"Use " + DefaultBaseURL},
		})
	}

	if config.Session == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "inputs.session",
			Message: "no session cookie configured, fetch will not work",
			Suggestions: []string{
				"Export AOC_SESSION with the value of the session cookie from adventofcode.com",
			},
		})
	}
}

func validateBench(config *BenchConfig, result *ValidationResult) {
	if config.Iterations < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "bench.iterations",
			Value:       config.Iterations,
			Message:     fmt.Sprintf("iterations must be positive, got %d", config.Iterations),
			Suggestions: []string{fmt.Sprintf("The default is %d", DefaultIterations)},
		})
	}
	if config.Warmup < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "bench.warmup",
			Value:   config.Warmup,
			Message: fmt.Sprintf("warmup must not be negative, got %d", config.Warmup),
		})
	}
}

func validateWatch(config *WatchConfig, result *ValidationResult) {
	if config.Debounce < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "watch.debounce",
			Value:   config.Debounce,
			Message: "debounce must not be negative",
		})
	}
}

func validateOneOf(result *ValidationResult, field, value string, allowed []string) {
	if slices.Contains(allowed, value) {
		return
	}
	result.Errors = append(result.Errors, ValidationError{
		Field:       field,
		Value:       value,
		Message:     fmt.Sprintf("unsupported value %q", value),
		Suggestions: []string{"Use one of: " + strings.Join(allowed, ", ")},
	})
}
