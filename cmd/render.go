package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/runner"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// numbers groups digits in benchmark reports.
var numbers = message.NewPrinter(language.English)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// writePart prints "part1: X". Multi-line answers such as rendered letters
// start on their own line.
func writePart(w io.Writer, label, value string) {
	if strings.Contains(value, "\n") {
		fmt.Fprintf(w, "%s\n%s\n", labelStyle.Render(label+":"), strings.TrimRight(value, "\n"))
		return
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), answerStyle.Render(value))
}

func renderAnswer(w io.Writer, result runner.Result, format string) error {
	switch format {
	case "json":
		return renderJSON(w, result)
	case "yaml":
		return renderYAML(w, result)
	case "table":
		return renderResults(w, []runner.Result{result}, format)
	}
	writePart(w, "part1", result.Answer.Part1)
	writePart(w, "part2", result.Answer.Part2)
	return nil
}

// resultRecord is the serialised form of a solve in a batch, with the error
// as text.
type resultRecord struct {
	runner.Result `yaml:",inline"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

func renderResults(w io.Writer, results []runner.Result, format string) error {
	switch format {
	case "json", "yaml":
		records := make([]resultRecord, len(results))
		for i, r := range results {
			records[i] = resultRecord{Result: r, Error: r.Error()}
		}
		if format == "json" {
			return renderJSON(w, records)
		}
		return renderYAML(w, records)
	case "table":
		t := newTable(w)
		t.AppendHeader(table.Row{"Puzzle", "Title", "Part 1", "Part 2", "Time"})
		var total time.Duration
		for _, r := range results {
			switch {
			case r.Skipped:
				t.AppendRow(table.Row{r.Key, r.Title, "", "", "no input"})
			case r.Err != nil:
				t.AppendRow(table.Row{r.Key, r.Title, r.Error(), "", "failed"})
			default:
				t.AppendRow(table.Row{r.Key, r.Title, r.Answer.Part1, r.Answer.Part2, r.Duration.Round(time.Microsecond)})
				total += r.Duration
			}
		}
		t.AppendFooter(table.Row{"", "", "", "Total", total.Round(time.Microsecond)})
		t.Render()
		return nil
	}

	for _, r := range results {
		if r.Skipped {
			continue
		}
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %s", r.Key, r.Title)))
		if r.Err != nil {
			fmt.Fprintln(w, errorStyle.Render("error: "+r.Error()))
			continue
		}
		writePart(w, "part1", r.Answer.Part1)
		writePart(w, "part2", r.Answer.Part2)
	}
	return nil
}

// solutionRecord is one row of `aoc list`.
type solutionRecord struct {
	Year  int    `json:"year" yaml:"year"`
	Day   int    `json:"day" yaml:"day"`
	Title string `json:"title" yaml:"title"`
}

func renderSolutions(w io.Writer, solutions []puzzle.Solution, format string) error {
	records := make([]solutionRecord, len(solutions))
	for i, s := range solutions {
		records[i] = solutionRecord{Year: s.Year, Day: s.Day, Title: s.Title}
	}

	switch format {
	case "json":
		return renderJSON(w, records)
	case "yaml":
		return renderYAML(w, records)
	case "table":
		t := newTable(w)
		t.AppendHeader(table.Row{"Year", "Day", "Title"})
		for _, r := range records {
			t.AppendRow(table.Row{r.Year, r.Day, r.Title})
		}
		t.AppendFooter(table.Row{"", "Total", len(records)})
		t.Render()
		return nil
	}

	year := 0
	for _, r := range records {
		if r.Year != year {
			year = r.Year
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprint(year)))
		}
		fmt.Fprintf(w, "  %02d %s\n", r.Day, r.Title)
	}
	return nil
}

func renderBench(w io.Writer, bench runner.BenchResult, format string) error {
	switch format {
	case "json":
		return renderJSON(w, bench)
	case "yaml":
		return renderYAML(w, bench)
	case "table":
		s := bench.Stats
		t := newTable(w)
		t.SetTitle(fmt.Sprintf("%s %s", bench.Key, bench.Title))
		t.AppendHeader(table.Row{"Metric", "ns"})
		for _, row := range []struct {
			name string
			d    time.Duration
		}{
			{"min", s.Min}, {"avg", s.Mean}, {"stddev", s.StdDev},
			{"p50", s.P50}, {"p90", s.P90}, {"p99", s.P99}, {"max", s.Max},
		} {
			t.AppendRow(table.Row{row.name, numbers.Sprintf("%d", row.d.Nanoseconds())})
		}
		if s.CI.Level > 0 {
			t.AppendRow(table.Row{fmt.Sprintf("%.0f%% CI", s.CI.Level*100),
				numbers.Sprintf("%d - %d", s.CI.Lower.Nanoseconds(), s.CI.Upper.Nanoseconds())})
		}
		t.AppendFooter(table.Row{"samples", numbers.Sprintf("%d", s.Samples)})
		t.Render()
		return nil
	}

	s := bench.Stats
	writePart(w, "part1", bench.Answer.Part1)
	writePart(w, "part2", bench.Answer.Part2)
	fmt.Fprintln(w, s.String())
	numbers.Fprintf(w, "p50: %d ns, p90: %d ns, p99: %d ns, max: %d ns (%d samples)\n",
		s.P50.Nanoseconds(), s.P90.Nanoseconds(), s.P99.Nanoseconds(), s.Max.Nanoseconds(), s.Samples)
	if s.CI.Level > 0 {
		numbers.Fprintf(w, "mean %.0f%% CI: %d - %d ns\n", s.CI.Level*100, s.CI.Lower.Nanoseconds(), s.CI.Upper.Nanoseconds())
	}
	return nil
}
