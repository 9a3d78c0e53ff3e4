// Package aoc holds the small helpers the daily solvers share: input
// splitting, integer parsing, points, grids, intervals, number theory and
// graph search.
package aoc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/conneroisu/adventofcode/internal/errors"
)

// Lines splits input into lines, normalising CRLF and dropping the final
// newline. Interior blank lines are kept.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// NonEmptyLines returns the lines of input that contain something other than
// whitespace, with trailing whitespace removed.
func NonEmptyLines(input string) []string {
	var result []string
	for _, line := range Lines(input) {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}

// Blocks splits input on blank lines. Each block is a slice of its lines.
// Leading and trailing blank lines never produce empty blocks.
func Blocks(input string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

var intPattern = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in s, in order. A '-' directly before a digit
// run is treated as a sign.
func Ints(s string) []int {
	matches := intPattern.FindAllString(s, -1)
	result := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

// Uints is Ints without sign handling, for inputs that use '-' as a separator.
func Uints(s string) []int {
	return Ints(strings.ReplaceAll(s, "-", " "))
}

// Atoi parses a base-10 integer, reporting a parse error on failure.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.ErrBadNumber(s, err)
	}
	return n, nil
}

// Atoi64 parses a base-10 int64, reporting a parse error on failure.
func Atoi64(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.ErrBadNumber(s, err)
	}
	return n, nil
}

// Fields parses whitespace-separated integers, failing on any other token.
func Fields(s string) ([]int, error) {
	tokens := strings.Fields(s)
	result := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := Atoi(tok)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

// SplitInts parses integers separated by sep, failing on any bad token.
func SplitInts(s, sep string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := Atoi(p)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

// Cut splits s around the first sep and fails with a line error when sep is missing.
func Cut(s, sep string, line int) (before, after string, err error) {
	before, after, found := strings.Cut(s, sep)
	if !found {
		return "", "", errors.ErrBadLine(line, s, nil).WithContext("expected", sep)
	}
	return before, after, nil
}
