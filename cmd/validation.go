package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/conneroisu/adventofcode/internal/config"
	"github.com/conneroisu/adventofcode/internal/registry"
)

// ValidateFormat accepts the output formats and suggests the closest one
// otherwise.
func ValidateFormat(format string) error {
	if slices.Contains(config.OutputFormats, format) {
		return nil
	}
	for _, candidate := range config.OutputFormats {
		if format != "" && strings.HasPrefix(candidate, strings.ToLower(format)) {
			return fmt.Errorf("invalid output format %q, did you mean %q?", format, candidate)
		}
	}
	return fmt.Errorf("invalid output format %q, must be one of: %s",
		format, strings.Join(config.OutputFormats, ", "))
}

// validateYear checks that at least one solution is registered for year.
func validateYear(reg *registry.Registry, year int) error {
	years := reg.Years()
	if year == 0 {
		return fmt.Errorf("--year is required")
	}
	if !slices.Contains(years, year) {
		return fmt.Errorf("no solutions for %d, available years: %s", year, joinInts(years))
	}
	return nil
}

// validatePuzzle checks the year and that day is a puzzle day.
func validatePuzzle(reg *registry.Registry, year, day int) error {
	if err := validateYear(reg, year); err != nil {
		return err
	}
	if day < 1 || day > 25 {
		return fmt.Errorf("--day must be between 1 and 25, got %d", day)
	}
	return nil
}

// validateInputPath rejects directories and missing files up front so the
// error names the flag rather than the solver.
func validateInputPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s (run `aoc fetch` or pass a path)", path)
		}
		return fmt.Errorf("cannot read input %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory: %s", path)
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
