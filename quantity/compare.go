// File: compare.go
// Title: Quantity Comparison Operations
// Description: Implements ordering, three-way comparison, tolerance-based
//              equality and pairwise min/max for quantities that share a
//              numeric kind and unit tag, plus the NaN and infinity
//              predicates and constructors for approximate quantities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial comparison implementation

package quantity

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// LessThan reports whether a < b.
func LessThan[N Number, U any](a, b Quantity[N, U]) bool {
	return a.value < b.value
}

// GreaterThan reports whether a > b.
func GreaterThan[N Number, U any](a, b Quantity[N, U]) bool {
	return a.value > b.value
}

// LessThanOrEqual reports whether a <= b.
func LessThanOrEqual[N Number, U any](a, b Quantity[N, U]) bool {
	return a.value <= b.value
}

// GreaterThanOrEqual reports whether a >= b.
func GreaterThanOrEqual[N Number, U any](a, b Quantity[N, U]) bool {
	return a.value >= b.value
}

// Compare returns -1 if a < b, 0 if a == b and +1 if a > b.
// For floating-point kinds a NaN is ordered before any other value,
// following the stdlib cmp package.
func Compare[N Number, U any](a, b Quantity[N, U]) int {
	return cmp.Compare(a.value, b.value)
}

// EqualWithin reports whether a and b differ by at most tolerance, i.e.
// |a-b| <= tolerance. A negative tolerance never compares equal, and a NaN
// operand is never within any tolerance.
func EqualWithin[F constraints.Float, U any](tolerance, a, b Quantity[F, U]) bool {
	diff := a.value - b.value
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance.value
}

// Min returns the smaller of a and b. If the two are equal, a is returned.
func Min[N Number, U any](a, b Quantity[N, U]) Quantity[N, U] {
	if b.value < a.value {
		return b
	}
	return a
}

// Max returns the larger of a and b. If the two are equal, a is returned.
func Max[N Number, U any](a, b Quantity[N, U]) Quantity[N, U] {
	if b.value > a.value {
		return b
	}
	return a
}

// IsNaN reports whether q wraps a floating-point NaN.
func IsNaN[F constraints.Float, U any](q Quantity[F, U]) bool {
	return math.IsNaN(float64(q.value))
}

// IsInfinite reports whether q wraps positive or negative infinity.
func IsInfinite[F constraints.Float, U any](q Quantity[F, U]) bool {
	return math.IsInf(float64(q.value), 0)
}

// PositiveInfinity returns the quantity wrapping +Inf for the unit U.
func PositiveInfinity[U any]() Quantity[float64, U] {
	return Quantity[float64, U]{value: math.Inf(1)}
}

// NegativeInfinity returns the quantity wrapping -Inf for the unit U.
func NegativeInfinity[U any]() Quantity[float64, U] {
	return Quantity[float64, U]{value: math.Inf(-1)}
}
