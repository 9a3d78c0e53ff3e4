package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/adventofcode/internal/inputs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const calorieExample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

// executeCommand runs the root command with args inside a scratch input
// cache and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	*solveFlags = StandardFlags{}
	*listFlags = StandardFlags{}
	*benchFlags = StandardFlags{}
	*versionFlags = StandardFlags{}
	solveAll = false
	solveParallelism = 0
	versionShort = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// withInputCache points the input cache at a temp dir holding the 2022 day 1
// example.
func withInputCache(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("AOC_INPUTS_DIR", dir)
	t.Setenv("AOC_LOG_LEVEL", "error")

	path := inputs.Path(dir, 2022, 1)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(calorieExample), 0o644))
	return dir
}

func TestSolveCommand(t *testing.T) {
	withInputCache(t)

	out, err := executeCommand(t, "solve", "--year", "2022", "--day", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "part1:")
	assert.Contains(t, out, "24000")
	assert.Contains(t, out, "part2:")
	assert.Contains(t, out, "45000")
}

func TestSolveCommandExplicitFile(t *testing.T) {
	dir := withInputCache(t)
	path := filepath.Join(dir, "scratch.txt")
	require.NoError(t, os.WriteFile(path, []byte("100\n\n200\n"), 0o644))

	out, err := executeCommand(t, "solve", "-y", "2022", "-d", "1", "-f", "json", path)
	require.NoError(t, err)

	var result struct {
		Key    struct{ Year, Day int } `json:"key"`
		Answer struct {
			Part1 string `json:"part1"`
			Part2 string `json:"part2"`
		} `json:"answer"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2022, result.Key.Year)
	assert.Equal(t, "200", result.Answer.Part1)
	assert.Equal(t, "300", result.Answer.Part2)
}

func TestSolveAllCommand(t *testing.T) {
	withInputCache(t)

	out, err := executeCommand(t, "solve", "-y", "2022", "--all", "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Calorie Counting")
	assert.Contains(t, out, "24000")
	assert.Contains(t, out, "no input")
}

func TestSolveCommandErrors(t *testing.T) {
	withInputCache(t)

	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{"unknown year", []string{"solve", "-y", "1999", "-d", "1"}, "no solutions for 1999"},
		{"day out of range", []string{"solve", "-y", "2022", "-d", "26"}, "between 1 and 25"},
		{"missing input", []string{"solve", "-y", "2022", "-d", "2"}, "does not exist"},
		{"unknown format", []string{"solve", "-y", "2022", "-d", "1", "-f", "xml"}, "must be one of"},
		{"format suggestion", []string{"solve", "-y", "2022", "-d", "1", "-f", "ya"}, `did you mean "yaml"`},
		{"all with day", []string{"solve", "-y", "2022", "-d", "1", "--all"}, "takes no --day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSolveCommandBadInput(t *testing.T) {
	dir := withInputCache(t)
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("12\nabc\n"), 0o644))

	_, err := executeCommand(t, "solve", "-y", "2022", "-d", "1", path)
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	withInputCache(t)

	out, err := executeCommand(t, "list", "-y", "2025", "-f", "yaml")
	require.NoError(t, err)

	var records []solutionRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 10)
	assert.Equal(t, solutionRecord{Year: 2025, Day: 1, Title: "Secret Entrance"}, records[0])

	out, err = executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2022")
	assert.Contains(t, out, "2025")
}

func TestBenchCommand(t *testing.T) {
	withInputCache(t)

	out, err := executeCommand(t, "bench", "-y", "2022", "-d", "1", "-n", "5", "--warmup", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Elapsed time - min:")
	assert.Contains(t, out, "(5 samples)")
	assert.Contains(t, out, "mean 95% CI:")
}

func TestVersionCommand(t *testing.T) {
	withInputCache(t)

	out, err := executeCommand(t, "version", "-f", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.EqualValues(t, 70, info["solutions"])
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "table"} {
		assert.NoError(t, ValidateFormat(format))
	}
	assert.ErrorContains(t, ValidateFormat("tab"), `did you mean "table"`)
	assert.ErrorContains(t, ValidateFormat(""), "must be one of")
	assert.ErrorContains(t, ValidateFormat("csv"), "must be one of")
}

func TestValidateInputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("1\n"), 0o644))

	assert.NoError(t, validateInputPath(file))
	assert.ErrorContains(t, validateInputPath(dir), "is a directory")
	assert.ErrorContains(t, validateInputPath(filepath.Join(dir, "missing.txt")), "does not exist")
}
