// Package y2024 registers the Advent of Code 2024 solutions.
//
// Grid-size, step-count and threshold parameters that differ between the
// puzzle examples and the real inputs are function arguments; the registered
// solvers pass the real values.
package y2024
