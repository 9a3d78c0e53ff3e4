package cmd

import (
	"fmt"

	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all registered puzzles",
	Long: `List every registered puzzle with its year, day and title.

Examples:
  aoc list                    # Every year, grouped
  aoc list -y 2024            # One year
  aoc list -f table           # As a table
  aoc list -y 2023 -f json    # As JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "year", "output")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	var solutions []puzzle.Solution
	if listFlags.Year != 0 {
		if err := validateYear(registry.Default, listFlags.Year); err != nil {
			return err
		}
		solutions = registry.Default.ListYear(listFlags.Year)
	} else {
		solutions = registry.Default.List()
	}

	if len(solutions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No puzzles registered.")
		return nil
	}
	return renderSolutions(cmd.OutOrStdout(), solutions, listFlags.OutputFormat(cfg.Output.Format))
}
