package cmd

import (
	"fmt"

	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/conneroisu/adventofcode/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var benchCmd = &cobra.Command{
	Use:     "bench [input-file]",
	Aliases: []string{"b"},
	Short:   "Time a solver over many runs",
	Long: `Run one solver repeatedly and report min, average, standard deviation and
percentiles of the elapsed time.

Examples:
  aoc bench -y 2022 -d 1                # bench.iterations runs (default 10000)
  aoc bench -y 2022 -d 1 -n 100         # 100 runs
  aoc bench -y 2022 -d 1 -f table       # Report as a table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

var benchFlags *StandardFlags

func init() {
	rootCmd.AddCommand(benchCmd)

	benchFlags = AddStandardFlags(benchCmd, "puzzle", "output")
	benchCmd.Flags().IntP("iterations", "n", 0, "Number of timed runs (defaults to bench.iterations)")
	benchCmd.Flags().Int("warmup", 0, "Untimed runs before timing (defaults to bench.warmup)")
	_ = viper.BindPFlag("bench.iterations", benchCmd.Flags().Lookup("iterations"))
	_ = viper.BindPFlag("bench.warmup", benchCmd.Flags().Lookup("warmup"))
	_ = benchCmd.MarkFlagRequired("year")
	_ = benchCmd.MarkFlagRequired("day")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if err := validatePuzzle(registry.Default, benchFlags.Year, benchFlags.Day); err != nil {
		return err
	}

	path := inputs.Path(cfg.Inputs.Dir, benchFlags.Year, benchFlags.Day)
	if len(args) == 1 {
		path = args[0]
	}
	if err := validateInputPath(path); err != nil {
		return err
	}
	input, err := inputs.Read(path)
	if err != nil {
		return err
	}

	r := runner.New(registry.Default, logger)
	result, err := r.Bench(cmd.Context(), benchFlags.Year, benchFlags.Day, input, cfg.Bench.Iterations, cfg.Bench.Warmup)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	return renderBench(cmd.OutOrStdout(), result, benchFlags.OutputFormat(cfg.Output.Format))
}
