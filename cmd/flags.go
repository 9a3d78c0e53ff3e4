package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Puzzle flags
	Year int `flag:"year,y" desc:"Puzzle year"`
	Day  int `flag:"day,d" desc:"Puzzle day (1-25)"`

	// Output flags
	Format string `flag:"format,f" desc:"Output format (text|json|yaml|table)" default:""`
}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "year":
			cmd.Flags().IntVarP(&flags.Year, "year", "y", 0, "Puzzle year")
		case "puzzle":
			cmd.Flags().IntVarP(&flags.Year, "year", "y", 0, "Puzzle year")
			cmd.Flags().IntVarP(&flags.Day, "day", "d", 0, "Puzzle day (1-25)")
		case "output":
			addOutputFlags(cmd, flags)
		}
	}

	return flags
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format (text|json|yaml|table), defaults to output.format")
	AddFlagValidation(cmd, "format", ValidateFormat)
}

// OutputFormat returns the --format value, falling back to fallback when the
// flag was not given.
func (f *StandardFlags) OutputFormat(fallback string) string {
	if f.Format == "" {
		return fallback
	}
	return f.Format
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	originalSet := flag.Value.Set

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}
