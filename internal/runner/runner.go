// Package runner executes registered solutions against their inputs. It
// times each solve, runs a whole year concurrently and benchmarks a single
// day.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/conneroisu/adventofcode/internal/logging"
	"github.com/conneroisu/adventofcode/internal/performance"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one solve.
type Result struct {
	Key      puzzle.Key    `json:"key" yaml:"key"`
	Title    string        `json:"title" yaml:"title"`
	Answer   puzzle.Answer `json:"answer" yaml:"answer"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Skipped  bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Err      error         `json:"-" yaml:"-"`
}

// Error is the message of Err, or empty.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// BenchResult is the outcome of a benchmark.
type BenchResult struct {
	Key    puzzle.Key        `json:"key" yaml:"key"`
	Title  string            `json:"title" yaml:"title"`
	Answer puzzle.Answer     `json:"answer" yaml:"answer"`
	Stats  performance.Stats `json:"stats" yaml:"stats"`
}

// Resolver maps a puzzle to the path of its input file.
type Resolver func(year, day int) string

// CacheResolver resolves inputs inside a cache directory.
func CacheResolver(dir string) Resolver {
	return func(year, day int) string { return inputs.Path(dir, year, day) }
}

type Runner struct {
	registry *registry.Registry
	logger   logging.Logger
}

// New returns a Runner over reg. A nil registry means registry.Default and a
// nil logger discards output.
func New(reg *registry.Registry, logger logging.Logger) *Runner {
	if reg == nil {
		reg = registry.Default
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{registry: reg, logger: logger.WithComponent("runner")}
}

// Solve runs one puzzle on input.
func (r *Runner) Solve(ctx context.Context, year, day int, input string) (Result, error) {
	solution, err := r.registry.Get(year, day)
	if err != nil {
		return Result{Key: puzzle.Key{Year: year, Day: day}}, err
	}
	return r.run(ctx, solution, input)
}

// SolveFile runs one puzzle on the contents of path.
func (r *Runner) SolveFile(ctx context.Context, year, day int, path string) (Result, error) {
	solution, err := r.registry.Get(year, day)
	if err != nil {
		return Result{Key: puzzle.Key{Year: year, Day: day}}, err
	}
	input, err := inputs.Read(path)
	if err != nil {
		return Result{Key: solution.Key(), Title: solution.Title}, err
	}
	return r.run(ctx, solution, input)
}

func (r *Runner) run(ctx context.Context, solution puzzle.Solution, input string) (Result, error) {
	result := Result{Key: solution.Key(), Title: solution.Title}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger := r.logger.With("puzzle", solution.Key().String())
	perf := logging.StartOperation(logger, "solve")

	answer, err := safeSolve(ctx, solution, input)
	if err != nil {
		result.Duration = perf.EndWithError(ctx, err)
		var pe *errors.PuzzleError
		if errors.As(err, &pe) && pe.Puzzle == "" {
			pe.WithPuzzle(solution.Key().String())
		}
		result.Err = err
		return result, err
	}
	result.Duration = perf.End(ctx)
	result.Answer = answer
	return result, nil
}

// safeSolve turns a solver panic into an internal error.
func safeSolve(ctx context.Context, solution puzzle.Solution, input string) (answer puzzle.Answer, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.NewInternalError(errors.ErrCodeInternalError,
				fmt.Sprintf("solver panicked: %v", rec), nil).
				WithPuzzle(solution.Key().String())
		}
	}()
	return solution.Solve(ctx, input)
}

// RunAll solves every registered day of year whose input resolve finds,
// running at most parallelism solves at once (GOMAXPROCS when <= 0).
// Per-day failures are reported in the results; only cancellation of ctx
// fails the whole run. Results are ordered by day.
func (r *Runner) RunAll(ctx context.Context, year int, resolve Resolver, parallelism int) ([]Result, error) {
	solutions := r.registry.ListYear(year)
	if len(solutions) == 0 {
		return nil, errors.NewNotFoundError(errors.ErrCodePuzzleNotFound,
			fmt.Sprintf("no solutions registered for %d", year))
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(solutions))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)

	for i, solution := range solutions {
		path := resolve(solution.Year, solution.Day)
		if _, err := os.Stat(path); err != nil {
			results[i] = Result{Key: solution.Key(), Title: solution.Title, Skipped: true}
			r.logger.Debug(ctx, "Skipping puzzle without input", "puzzle", solution.Key().String(), "path", path)
			continue
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result, err := r.SolveFile(egCtx, solution.Year, solution.Day, path)
			if err != nil {
				if ctxErr := egCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				r.logger.Warn(egCtx, err, "Puzzle failed", "puzzle", solution.Key().String())
				result.Err = err
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Bench solves one puzzle warmup times untimed and then iterations times
// timed.
func (r *Runner) Bench(ctx context.Context, year, day int, input string, iterations, warmup int) (BenchResult, error) {
	solution, err := r.registry.Get(year, day)
	if err != nil {
		return BenchResult{}, err
	}
	result := BenchResult{Key: solution.Key(), Title: solution.Title}

	for range warmup {
		if _, err := safeSolve(ctx, solution, input); err != nil {
			return result, err
		}
	}

	stats, err := performance.Timer(iterations, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, err := safeSolve(ctx, solution, input)
		result.Answer = answer
		return err
	})
	result.Stats = stats
	if err != nil {
		return result, err
	}

	r.logger.Info(ctx, "Benchmark finished",
		"puzzle", solution.Key().String(),
		"iterations", stats.Samples,
		"mean", stats.Mean,
	)
	return result, nil
}
