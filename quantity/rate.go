// File: rate.go
// Title: Rate Construction and Application
// Description: Implements the quotient-unit operations: Per builds a rate
//              from an independent and a dependent quantity, Times and At
//              apply a rate forward under either argument order, For
//              applies it backward, and Invert swaps its sides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial rate implementation

package quantity

import (
	"golang.org/x/exp/constraints"
)

// Per divides dependent by independent and returns the quotient tagged
// Rate[Dependent, Independent]. A zero independent quantity yields an
// infinite or NaN rate per floating-point semantics.
func Per[F constraints.Float, Dependent, Independent any](
	independent Quantity[F, Independent],
	dependent Quantity[F, Dependent],
) Quantity[F, Rate[Dependent, Independent]] {
	return Quantity[F, Rate[Dependent, Independent]]{value: dependent.value / independent.value}
}

// Times applies a rate to an independent quantity, yielding the dependent
// quantity: rate * independent. It is At with the arguments flipped and
// works for both numeric kinds, since it only multiplies.
func Times[N Number, Dependent, Independent any](
	independent Quantity[N, Independent],
	rate Quantity[N, Rate[Dependent, Independent]],
) Quantity[N, Dependent] {
	return Quantity[N, Dependent]{value: rate.value * independent.value}
}

// At applies a rate to an independent quantity, yielding the dependent
// quantity: rate * independent. It works for both numeric kinds.
func At[N Number, Dependent, Independent any](
	rate Quantity[N, Rate[Dependent, Independent]],
	independent Quantity[N, Independent],
) Quantity[N, Dependent] {
	return Quantity[N, Dependent]{value: rate.value * independent.value}
}

// For applies a rate backward: it divides a dependent quantity by the rate
// and yields the independent quantity for it (e.g. the duration for a
// distance at a given speed). Restricted to the approximate kind because it
// performs true division.
func For[F constraints.Float, Dependent, Independent any](
	rate Quantity[F, Rate[Dependent, Independent]],
	dependent Quantity[F, Dependent],
) Quantity[F, Independent] {
	return Quantity[F, Independent]{value: dependent.value / rate.value}
}

// Invert returns the reciprocal rate with the dependent and independent
// sides swapped.
func Invert[F constraints.Float, Dependent, Independent any](
	rate Quantity[F, Rate[Dependent, Independent]],
) Quantity[F, Rate[Independent, Dependent]] {
	return Quantity[F, Rate[Independent, Dependent]]{value: 1 / rate.value}
}
