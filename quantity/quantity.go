// File: quantity.go
// Title: Core Quantity Type and Unit Markers
// Description: Implements the generic Quantity wrapper that tags a numeric
//              value with a compile-time-only unit type. Defines the numeric
//              constraint, the derived unit markers (Squared, Cubed, Rate)
//              and the Unitless marker, plus the low-level wrap/unwrap
//              operations reserved for unit definition packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation of the core type and markers

package quantity

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the numeric kinds a Quantity can wrap: any integer
// type (the exact kind) or any floating-point type (the approximate kind).
type Number interface {
	constraints.Integer | constraints.Float
}

// Quantity is a number of kind N tagged with the unit type U.
//
// The tag is a pure phantom type parameter: it occupies no storage, and a
// Quantity compiles to exactly its wrapped number. Two quantities with
// different unit tags are distinct types and cannot be mixed; all
// interaction between units goes through the operations of this package.
//
// The zero value is the zero quantity of its unit and is ready to use.
type Quantity[N Number, U any] struct {
	value N
}

// Unitless is the unit tag of dimensionless quantities. A Quantity tagged
// Unitless converts to and from a bare number via Int, ToInt, Float and
// ToFloat.
type Unitless struct{}

// Squared is the unit tag produced by multiplying two quantities that share
// the unit tag U. It is consumed by Sqrt, which recovers U.
type Squared[U any] struct{}

// Cubed is the unit tag produced by Cube. It is consumed by Cbrt, which
// recovers U.
type Cubed[U any] struct{}

// Rate is the unit tag of a quotient: Dependent units per Independent unit.
// Rates are built with Per and consumed by Times, At, For and Invert.
type Rate[Dependent, Independent any] struct{}

// Zero returns the zero quantity for any numeric kind and unit. It is
// identical to the zero value of the instantiated Quantity type.
func Zero[N Number, U any]() Quantity[N, U] {
	return Quantity[N, U]{}
}

// Unsafe wraps a raw number with the unit tag U without any conversion.
//
// It exists for unit definition packages, which apply their conversion
// factor and then wrap; application code should construct quantities
// through those packages instead.
func Unsafe[N Number, U any](value N) Quantity[N, U] {
	return Quantity[N, U]{value: value}
}

// Unwrap returns the raw wrapped number.
//
// Like Unsafe this is the escape hatch for unit definition packages, which
// divide by their conversion factor after unwrapping.
func Unwrap[N Number, U any](q Quantity[N, U]) N {
	return q.value
}
