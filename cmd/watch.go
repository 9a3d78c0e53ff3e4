package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/conneroisu/adventofcode/internal/runner"
	"github.com/conneroisu/adventofcode/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch [input-file]",
	Aliases: []string{"w"},
	Short:   "Re-solve a puzzle whenever its input changes",
	Long: `Solve a puzzle, then watch its input file and solve it again after every
change. Useful while pasting an example into a scratch file.

Examples:
  aoc watch -y 2024 -d 6                 # Watch the cached input
  aoc watch -y 2024 -d 6 scratch.txt     # Watch another file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var watchFlags *StandardFlags

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddStandardFlags(watchCmd, "puzzle", "output")
	_ = watchCmd.MarkFlagRequired("year")
	_ = watchCmd.MarkFlagRequired("day")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if err := validatePuzzle(registry.Default, watchFlags.Year, watchFlags.Day); err != nil {
		return err
	}
	path := inputs.Path(cfg.Inputs.Dir, watchFlags.Year, watchFlags.Day)
	if len(args) == 1 {
		path = args[0]
	}
	if err := validateInputPath(path); err != nil {
		return err
	}

	format := watchFlags.OutputFormat(cfg.Output.Format)
	out := cmd.OutOrStdout()
	r := runner.New(registry.Default, logger)
	solve := func(ctx context.Context) {
		result, err := r.SolveFile(ctx, watchFlags.Year, watchFlags.Day, path)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("error: "+err.Error()))
			return
		}
		if err := renderAnswer(out, result, format); err != nil {
			logger.Error(ctx, err, "Cannot render answer")
		}
	}

	fileWatcher, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	if err := fileWatcher.WatchFile(path); err != nil {
		return err
	}
	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		// Editors that save by rename report a delete before the new file.
		if _, err := os.Stat(path); err != nil {
			logger.Warn(ctx, nil, "Input removed, waiting for it to come back", "path", path)
			return nil
		}
		fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("--- %s (%d events)", path, len(events))))
		solve(ctx)
		return nil
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solve(ctx)
	logger.Info(ctx, "Watching input", "path", path, "debounce", cfg.Watch.Debounce)
	return fileWatcher.Run(ctx)
}
