package cmd

import (
	"fmt"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/conneroisu/adventofcode/internal/runner"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:     "solve [input-file]",
	Aliases: []string{"s"},
	Short:   "Solve a puzzle and print both parts",
	Long: `Solve one puzzle, or every puzzle of a year, and print the answers.

The input defaults to the cached file <inputs>/<year>/dayNN.txt.

Examples:
  aoc solve --year 2023 --day 7             # Solve from the cache
  aoc solve -y 2023 -d 7 my-input.txt       # Solve a specific file
  aoc solve -y 2023 --all -f table          # Solve every cached day`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

var (
	solveFlags       *StandardFlags
	solveAll         bool
	solveParallelism int
)

func init() {
	rootCmd.AddCommand(solveCmd)

	solveFlags = AddStandardFlags(solveCmd, "puzzle", "output")
	solveCmd.Flags().BoolVarP(&solveAll, "all", "a", false, "Solve every registered day of the year that has a cached input")
	solveCmd.Flags().IntVarP(&solveParallelism, "parallel", "p", 0, "Maximum concurrent solves with --all (0 uses GOMAXPROCS)")
	_ = solveCmd.MarkFlagRequired("year")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	format := solveFlags.OutputFormat(cfg.Output.Format)
	r := runner.New(registry.Default, logger)
	ctx := cmd.Context()

	if solveAll {
		if len(args) > 0 || solveFlags.Day != 0 {
			return fmt.Errorf("--all solves from the input cache and takes no --day or input file")
		}
		if err := validateYear(registry.Default, solveFlags.Year); err != nil {
			return err
		}
		results, err := r.RunAll(ctx, solveFlags.Year, runner.CacheResolver(cfg.Inputs.Dir), solveParallelism)
		if err != nil {
			return err
		}
		if err := renderResults(cmd.OutOrStdout(), results, format); err != nil {
			return err
		}
		failures := errors.NewErrorCollector()
		for _, result := range results {
			failures.Add(result.Err)
		}
		if failures.HasErrors() {
			fmt.Fprint(cmd.ErrOrStderr(), failures.Summary())
		}
		return failures.Err()
	}

	if err := validatePuzzle(registry.Default, solveFlags.Year, solveFlags.Day); err != nil {
		return err
	}
	path := inputs.Path(cfg.Inputs.Dir, solveFlags.Year, solveFlags.Day)
	if len(args) == 1 {
		path = args[0]
	}
	if err := validateInputPath(path); err != nil {
		return err
	}

	result, err := r.SolveFile(ctx, solveFlags.Year, solveFlags.Day, path)
	if err != nil {
		errors.NewErrorHandler(logger.With("input", path)).Handle(ctx, err)
		return err
	}
	return renderAnswer(cmd.OutOrStdout(), result, format)
}
