// Package all registers every year of solutions with registry.Default.
// Import it for its side effects.
package all

import (
	_ "github.com/conneroisu/adventofcode/internal/puzzles/y2022"
	_ "github.com/conneroisu/adventofcode/internal/puzzles/y2023"
	_ "github.com/conneroisu/adventofcode/internal/puzzles/y2024"
	_ "github.com/conneroisu/adventofcode/internal/puzzles/y2025"
)
