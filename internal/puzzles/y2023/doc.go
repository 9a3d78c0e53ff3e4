// Package y2023 registers the Advent of Code 2023 solutions.
package y2023
