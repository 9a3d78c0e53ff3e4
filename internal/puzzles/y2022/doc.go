// Package y2022 registers the Advent of Code 2022 solutions.
package y2022
