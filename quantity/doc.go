// File: doc.go
// Title: Package Documentation for quantity
// Description: Package quantity provides a generic numeric wrapper that
//              tags values with compile-time-only unit types, so that
//              incompatible measurements cannot be mixed by accident while
//              the tags vanish entirely from the compiled program.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial package documentation

// Package quantity provides unit-tagged numbers with zero runtime cost.
//
// # Overview
//
// A Quantity[N, U] wraps a single number of kind N and tags it with the
// unit type U. The tag exists only in the type system: it occupies no
// storage, and with optimization enabled every operation in this package
// compiles to the same code as operating on the raw number. What the tag
// buys is that a length cannot be added to a duration, a tolerance in one
// unit cannot be compared against a difference in another, and a rate can
// only be applied to the quantity it is a rate over — all rejected at
// compile time rather than discovered in production.
//
// Two numeric kinds are supported, expressed through the Number
// constraint: the exact kind (any integer type) and the approximate kind
// (any floating-point type). Operations that divide or take roots are
// restricted to the approximate kind; the rounding operations convert from
// the approximate kind to the exact one.
//
// # Unit tags
//
// A unit tag is any data-free type. Concrete tags are declared by unit
// definition packages (see units/length, units/duration and units/speed in
// this module), which pair each tag with constructors that apply a fixed
// conversion factor and extractors that undo it. Three tag forms are
// special to this package:
//
//   - Unitless, the designated "no unit" tag, bridged to bare numbers by
//     Int, ToInt, Float and ToFloat.
//   - Squared[U] and Cubed[U], produced by Product, Square and Cube and
//     consumed by Sqrt and Cbrt.
//   - Rate[Dependent, Independent], a quotient tag produced by Per and
//     consumed by Times, At, For and Invert.
//
// # Operations
//
// The package is a flat set of pure functions grouped by concern:
//
//   - Comparison: LessThan, GreaterThan, LessThanOrEqual,
//     GreaterThanOrEqual, Compare, EqualWithin, Min, Max
//   - Arithmetic: Negate, Plus, Minus, ScaleBy, DivideBy, Twice, Half,
//     Abs, Clamp, Product, Square, Cube, Ratio, Sqrt, Cbrt, Midpoint,
//     InterpolateFrom
//   - Rounding: Round, Floor, Ceiling, Truncate
//   - Aggregates: Sum, Minimum, Maximum, Sort, SortBy, MinimumBy,
//     MaximumBy, Range
//   - Rates: Per, Times, At, For, Invert
//   - Mapping: Map, ToFloatQuantity and the Unitless bridges
//
// Every operation is total. Division by zero and roots of negative values
// follow IEEE semantics and propagate infinities or NaN instead of
// failing; the only explicit absence in the API is the comma-ok result of
// Minimum, Maximum and their keyed variants on empty input.
//
// # Usage
//
// Application code normally goes through a unit definition package:
//
//	distance := length.FromKilometers(42.195)
//	elapsed := duration.FromHours(2.25)
//	pace := quantity.Per(elapsed, distance)
//
//	// Compile error: cannot add meters to seconds.
//	// _ = quantity.Plus(distance, elapsed)
//
//	half := quantity.Half(distance)
//	covered := quantity.At(pace, duration.FromMinutes(30))
//
// Aggregates work over slices of same-unit quantities:
//
//	legs := []length.Length{
//		length.FromMeters(400),
//		length.FromMeters(800),
//		length.FromMeters(200),
//	}
//	total := quantity.Sum(legs)
//	longest, ok := quantity.Maximum(legs)
//
// # Performance
//
// Go instantiates generics over distinct primitive payload types with
// specialized code, so Quantity[float64, U] has the size, alignment and
// arithmetic cost of a plain float64. The benchmarks in this package pin
// that parity against raw numeric equivalents.
//
// # Concurrency
//
// Quantities are immutable values; every operation returns a new value and
// none mutates its input (Sort and SortBy clone before sorting). Values
// may be shared freely across goroutines without synchronization.
package quantity
