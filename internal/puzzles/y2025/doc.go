// Package y2025 registers the Advent of Code 2025 solutions.
//
// 2025 ran for twelve days. Parts without an implementation report
// puzzle.Unsolved.
package y2025
