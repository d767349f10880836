// File: rounding.go
// Title: Quantity Rounding Operations
// Description: Implements the conversions from the approximate numeric kind
//              to the exact kind: Round (ties away from zero), Floor,
//              Ceiling and Truncate. The unit tag is preserved.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial rounding implementation

package quantity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Round rounds q to the nearest integer quantity, with ties at .5 rounded
// away from zero: Round of 2.5 is 3 and Round of -2.5 is -3. math.Round
// has exactly these tie semantics, so it is used directly.
func Round[F constraints.Float, U any](q Quantity[F, U]) Quantity[int, U] {
	return Quantity[int, U]{value: int(math.Round(float64(q.value)))}
}

// Floor rounds q down to the nearest integer quantity.
func Floor[F constraints.Float, U any](q Quantity[F, U]) Quantity[int, U] {
	return Quantity[int, U]{value: int(math.Floor(float64(q.value)))}
}

// Ceiling rounds q up to the nearest integer quantity.
func Ceiling[F constraints.Float, U any](q Quantity[F, U]) Quantity[int, U] {
	return Quantity[int, U]{value: int(math.Ceil(float64(q.value)))}
}

// Truncate rounds q toward zero to the nearest integer quantity.
func Truncate[F constraints.Float, U any](q Quantity[F, U]) Quantity[int, U] {
	return Quantity[int, U]{value: int(math.Trunc(float64(q.value)))}
}
