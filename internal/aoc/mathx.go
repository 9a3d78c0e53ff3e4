package aoc

import (
	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMAll folds LCM over xs; the LCM of nothing is 1.
func LCMAll[T constraints.Integer](xs ...T) T {
	var result T = 1
	for _, x := range xs {
		result = LCM(result, x)
	}
	return result
}

// Sum adds up xs.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product multiplies xs; the product of nothing is 1.
func Product[T Number](xs []T) T {
	var total T = 1
	for _, x := range xs {
		total *= x
	}
	return total
}

// Mod returns the non-negative remainder of a / m for m > 0.
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Pow returns base**exp for exp >= 0.
func Pow[T constraints.Integer](base T, exp int) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Digits returns the number of base-10 digits of n (1 for 0).
func Digits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Counter counts occurrences of comparable values.
type Counter[K comparable] map[K]int

// CountAll builds a Counter from xs.
func CountAll[K comparable](xs []K) Counter[K] {
	c := make(Counter[K], len(xs))
	for _, x := range xs {
		c[x]++
	}
	return c
}
