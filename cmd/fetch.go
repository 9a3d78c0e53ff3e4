package cmd

import (
	"fmt"

	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fetchCmd = &cobra.Command{
	Use:     "fetch",
	Aliases: []string{"f"},
	Short:   "Download and cache a puzzle input",
	Long: `Download a puzzle input from adventofcode.com into the input cache.
An input that is already cached is never downloaded again.

The session cookie comes from AOC_SESSION, inputs.session in .aoc.yml or
--session.

Examples:
  aoc fetch -y 2024 -d 1
  AOC_SESSION=... aoc fetch -y 2024 -d 1`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

var fetchFlags *StandardFlags

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchFlags = AddStandardFlags(fetchCmd, "puzzle")
	fetchCmd.Flags().String("session", "", "adventofcode.com session cookie")
	_ = viper.BindPFlag("inputs.session", fetchCmd.Flags().Lookup("session"))
	_ = fetchCmd.MarkFlagRequired("year")
	_ = fetchCmd.MarkFlagRequired("day")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if err := validatePuzzle(registry.Default, fetchFlags.Year, fetchFlags.Day); err != nil {
		return err
	}

	fetcher, err := inputs.NewFetcher(cfg.Inputs.BaseURL, cfg.Inputs.Session, logger)
	if err != nil {
		return err
	}
	path, err := fetcher.Ensure(cmd.Context(), cfg.Inputs.Dir, fetchFlags.Year, fetchFlags.Day)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
