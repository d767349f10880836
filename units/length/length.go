// File: length.go
// Title: Length Unit Definitions
// Description: Declares the Meters unit tag and the Length quantity alias,
//              with constructors and extractors for the common metric,
//              imperial and nautical length units. All lengths are stored
//              canonically in meters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial length unit definitions

// Package length defines the Meters unit tag and conversions for lengths.
//
// A Length is a Quantity[float64, Meters]; every constructor converts its
// argument into meters with a fixed factor, and every extractor converts
// back. Lengths combine with the quantity package operations like any
// other tagged quantity.
package length

import (
	"github.com/msto63/unitx/quantity"
)

// Meters is the unit tag for lengths. Length values are stored in meters.
type Meters struct{}

// Length is a distance, stored canonically in meters.
type Length = quantity.Quantity[float64, Meters]

// Conversion factors into meters.
const (
	metersPerKilometer    = 1000.0
	metersPerCentimeter   = 0.01
	metersPerMillimeter   = 0.001
	metersPerMile         = 1609.344
	metersPerYard         = 0.9144
	metersPerFoot         = 0.3048
	metersPerInch         = 0.0254
	metersPerNauticalMile = 1852.0
)

// FromMeters constructs a Length from a number of meters.
func FromMeters(meters float64) Length {
	return quantity.Unsafe[float64, Meters](meters)
}

// InMeters returns the length as a number of meters.
func InMeters(l Length) float64 {
	return quantity.Unwrap(l)
}

// FromKilometers constructs a Length from a number of kilometers.
func FromKilometers(kilometers float64) Length {
	return FromMeters(kilometers * metersPerKilometer)
}

// InKilometers returns the length as a number of kilometers.
func InKilometers(l Length) float64 {
	return InMeters(l) / metersPerKilometer
}

// FromCentimeters constructs a Length from a number of centimeters.
func FromCentimeters(centimeters float64) Length {
	return FromMeters(centimeters * metersPerCentimeter)
}

// InCentimeters returns the length as a number of centimeters.
func InCentimeters(l Length) float64 {
	return InMeters(l) / metersPerCentimeter
}

// FromMillimeters constructs a Length from a number of millimeters.
func FromMillimeters(millimeters float64) Length {
	return FromMeters(millimeters * metersPerMillimeter)
}

// InMillimeters returns the length as a number of millimeters.
func InMillimeters(l Length) float64 {
	return InMeters(l) / metersPerMillimeter
}

// FromMiles constructs a Length from a number of statute miles.
func FromMiles(miles float64) Length {
	return FromMeters(miles * metersPerMile)
}

// InMiles returns the length as a number of statute miles.
func InMiles(l Length) float64 {
	return InMeters(l) / metersPerMile
}

// FromYards constructs a Length from a number of yards.
func FromYards(yards float64) Length {
	return FromMeters(yards * metersPerYard)
}

// InYards returns the length as a number of yards.
func InYards(l Length) float64 {
	return InMeters(l) / metersPerYard
}

// FromFeet constructs a Length from a number of feet.
func FromFeet(feet float64) Length {
	return FromMeters(feet * metersPerFoot)
}

// InFeet returns the length as a number of feet.
func InFeet(l Length) float64 {
	return InMeters(l) / metersPerFoot
}

// FromInches constructs a Length from a number of inches.
func FromInches(inches float64) Length {
	return FromMeters(inches * metersPerInch)
}

// InInches returns the length as a number of inches.
func InInches(l Length) float64 {
	return InMeters(l) / metersPerInch
}

// FromNauticalMiles constructs a Length from a number of nautical miles.
func FromNauticalMiles(nauticalMiles float64) Length {
	return FromMeters(nauticalMiles * metersPerNauticalMile)
}

// InNauticalMiles returns the length as a number of nautical miles.
func InNauticalMiles(l Length) float64 {
	return InMeters(l) / metersPerNauticalMile
}
