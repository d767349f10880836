// File: speed.go
// Title: Speed Unit Definitions
// Description: Declares the MetersPerSecond rate tag and the Speed quantity
//              alias, with constructors and extractors for common speed
//              units and helpers composing speeds with lengths and
//              durations through the quantity rate operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial speed unit definitions

// Package speed defines speeds as rates of length over duration.
//
// A Speed is a Quantity[float64, Rate[length.Meters, duration.Seconds]],
// which is what quantity.Per produces when dividing a Length by a
// Duration. Because the tag is the ordinary Rate marker, speeds work with
// Times, At, For and Invert directly; Of, DistanceIn and TimeToCover are
// named shorthands for the common compositions.
package speed

import (
	"github.com/msto63/unitx/quantity"
	"github.com/msto63/unitx/units/duration"
	"github.com/msto63/unitx/units/length"
)

// MetersPerSecond is the unit tag for speeds: meters per second, expressed
// as the rate of the length and duration tags.
type MetersPerSecond = quantity.Rate[length.Meters, duration.Seconds]

// Speed is a rate of travel, stored canonically in meters per second.
type Speed = quantity.Quantity[float64, MetersPerSecond]

// Conversion factors into meters per second.
const (
	mpsPerKilometerPerHour = 1000.0 / 3600.0
	mpsPerMilePerHour      = 1609.344 / 3600.0
	mpsPerKnot             = 1852.0 / 3600.0
)

// FromMetersPerSecond constructs a Speed from a number of meters per
// second.
func FromMetersPerSecond(metersPerSecond float64) Speed {
	return quantity.Unsafe[float64, MetersPerSecond](metersPerSecond)
}

// InMetersPerSecond returns the speed as a number of meters per second.
func InMetersPerSecond(s Speed) float64 {
	return quantity.Unwrap(s)
}

// FromKilometersPerHour constructs a Speed from a number of kilometers per
// hour.
func FromKilometersPerHour(kilometersPerHour float64) Speed {
	return FromMetersPerSecond(kilometersPerHour * mpsPerKilometerPerHour)
}

// InKilometersPerHour returns the speed as a number of kilometers per
// hour.
func InKilometersPerHour(s Speed) float64 {
	return InMetersPerSecond(s) / mpsPerKilometerPerHour
}

// FromMilesPerHour constructs a Speed from a number of statute miles per
// hour.
func FromMilesPerHour(milesPerHour float64) Speed {
	return FromMetersPerSecond(milesPerHour * mpsPerMilePerHour)
}

// InMilesPerHour returns the speed as a number of statute miles per hour.
func InMilesPerHour(s Speed) float64 {
	return InMetersPerSecond(s) / mpsPerMilePerHour
}

// FromKnots constructs a Speed from a number of knots (nautical miles per
// hour).
func FromKnots(knots float64) Speed {
	return FromMetersPerSecond(knots * mpsPerKnot)
}

// InKnots returns the speed as a number of knots.
func InKnots(s Speed) float64 {
	return InMetersPerSecond(s) / mpsPerKnot
}

// Of returns the average speed covering distance in elapsed time.
func Of(distance length.Length, elapsed duration.Duration) Speed {
	return quantity.Per(elapsed, distance)
}

// DistanceIn returns the distance covered at speed s over the elapsed
// time.
func DistanceIn(s Speed, elapsed duration.Duration) length.Length {
	return quantity.At(s, elapsed)
}

// TimeToCover returns the time needed to cover distance at speed s.
func TimeToCover(s Speed, distance length.Length) duration.Duration {
	return quantity.For(s, distance)
}
