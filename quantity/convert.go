// File: convert.go
// Title: Mapping and Unitless Conversions
// Description: Implements Map, the sanctioned way to transform the wrapped
//              number while keeping the unit tag, the exact-to-approximate
//              convenience ToFloatQuantity, and the Unitless bridges
//              between tagged quantities and bare numbers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial conversion implementation

package quantity

import (
	"golang.org/x/exp/constraints"
)

// Map applies f to the wrapped number, keeping the unit tag. The function
// may change the numeric kind, which makes Map the way to convert an
// approximate quantity to an exact one with a custom rounding rule, or to
// apply any other numeric transform within a unit.
func Map[N, R Number, U any](f func(N) R, q Quantity[N, U]) Quantity[R, U] {
	return Quantity[R, U]{value: f(q.value)}
}

// ToFloatQuantity converts an exact-kind quantity to its approximate-kind
// equivalent, keeping the unit tag.
func ToFloatQuantity[I constraints.Integer, U any](q Quantity[I, U]) Quantity[float64, U] {
	return Quantity[float64, U]{value: float64(q.value)}
}

// Int wraps a bare int as a Unitless quantity. The representation is
// unchanged; this compiles to the identity.
func Int(value int) Quantity[int, Unitless] {
	return Quantity[int, Unitless]{value: value}
}

// ToInt unwraps a Unitless quantity of the exact kind.
func ToInt(q Quantity[int, Unitless]) int {
	return q.value
}

// Float wraps a bare float64 as a Unitless quantity. The representation is
// unchanged; this compiles to the identity.
func Float(value float64) Quantity[float64, Unitless] {
	return Quantity[float64, Unitless]{value: value}
}

// ToFloat unwraps a Unitless quantity of the approximate kind.
func ToFloat(q Quantity[float64, Unitless]) float64 {
	return q.value
}
