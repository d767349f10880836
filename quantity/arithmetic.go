// File: arithmetic.go
// Title: Quantity Arithmetic Operations
// Description: Implements negation, addition, subtraction, scaling,
//              absolute value, clamping and interpolation within one unit
//              tag, together with the tag-deriving operations: Product and
//              Square yield a Squared tag, Cube a Cubed tag, Ratio cancels
//              units, and Sqrt/Cbrt consume the derived tags again.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial arithmetic implementation

package quantity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Negate returns -q.
func Negate[N Number, U any](q Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: -q.value}
}

// Plus returns a + b.
func Plus[N Number, U any](a, b Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: a.value + b.value}
}

// Minus returns a - b.
func Minus[N Number, U any](a, b Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: a.value - b.value}
}

// ScaleBy multiplies q by a bare factor of the same numeric kind. The unit
// tag is unchanged.
func ScaleBy[N Number, U any](factor N, q Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: q.value * factor}
}

// DivideBy divides q by a bare divisor. The unit tag is unchanged; division
// by zero follows floating-point semantics and yields an infinity or NaN.
func DivideBy[F constraints.Float, U any](divisor F, q Quantity[F, U]) Quantity[F, U] {
	return Quantity[F, U]{value: q.value / divisor}
}

// Twice returns 2 * q.
func Twice[N Number, U any](q Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: q.value + q.value}
}

// Half returns q / 2.
func Half[F constraints.Float, U any](q Quantity[F, U]) Quantity[F, U] {
	return Quantity[F, U]{value: q.value * 0.5}
}

// Abs returns the absolute value of q.
func Abs[N Number, U any](q Quantity[N, U]) Quantity[N, U] {
	if q.value < 0 {
		return Quantity[N, U]{value: -q.value}
	}
	return q
}

// Clamp restricts value to the interval [lower, upper], computed as
// min(max(value, lower), upper). When lower > upper that expression always
// yields upper; callers are expected to pass a well-ordered interval.
func Clamp[N Number, U any](lower, upper, value Quantity[N, U]) Quantity[N, U] {
	return Quantity[N, U]{value: min(max(value.value, lower.value), upper.value)}
}

// Product multiplies two quantities sharing the unit tag U and returns the
// result tagged Squared[U].
func Product[N Number, U any](a, b Quantity[N, U]) Quantity[N, Squared[U]] {
	return Quantity[N, Squared[U]]{value: a.value * b.value}
}

// Square returns the product of q with itself, tagged Squared[U].
func Square[N Number, U any](q Quantity[N, U]) Quantity[N, Squared[U]] {
	return Product(q, q)
}

// Cube multiplies q by itself twice and returns the result tagged Cubed[U].
func Cube[N Number, U any](q Quantity[N, U]) Quantity[N, Cubed[U]] {
	return Quantity[N, Cubed[U]]{value: q.value * q.value * q.value}
}

// Ratio divides two quantities of the same unit tag; the units cancel and
// the result is a bare number. Division by zero yields an infinity or NaN
// per floating-point semantics.
func Ratio[F constraints.Float, U any](a, b Quantity[F, U]) F {
	return a.value / b.value
}

// Sqrt takes the square root of a quantity tagged Squared[U] and returns a
// quantity tagged U. A negative input yields NaN, as math.Sqrt does.
func Sqrt[F constraints.Float, U any](q Quantity[F, Squared[U]]) Quantity[F, U] {
	return Quantity[F, U]{value: F(math.Sqrt(float64(q.value)))}
}

// Cbrt takes the cube root of a quantity tagged Cubed[U] and returns a
// quantity tagged U.
func Cbrt[F constraints.Float, U any](q Quantity[F, Cubed[U]]) Quantity[F, U] {
	return Quantity[F, U]{value: F(math.Cbrt(float64(q.value)))}
}

// Midpoint returns the quantity halfway between a and b.
func Midpoint[F constraints.Float, U any](a, b Quantity[F, U]) Quantity[F, U] {
	return Quantity[F, U]{value: a.value + (b.value-a.value)*0.5}
}

// InterpolateFrom returns the quantity at the given parameter between start
// and end, where parameter 0 is exactly start and parameter 1 is exactly
// end. Parameters outside [0, 1] extrapolate. The evaluation is split at
// the midpoint so that both endpoints are reproduced without rounding
// error.
func InterpolateFrom[F constraints.Float, U any](start, end Quantity[F, U], parameter F) Quantity[F, U] {
	if parameter <= 0.5 {
		return Quantity[F, U]{value: start.value + parameter*(end.value-start.value)}
	}
	return Quantity[F, U]{value: end.value + (1-parameter)*(start.value-end.value)}
}
