// File: duration.go
// Title: Duration Unit Definitions
// Description: Declares the Seconds unit tag and the Duration quantity
//              alias, with constructors and extractors for common time
//              units and a bridge to the standard library time.Duration.
//              All durations are stored canonically in seconds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial duration unit definitions

// Package duration defines the Seconds unit tag and conversions for spans
// of time.
//
// A Duration is a Quantity[float64, Seconds]. It deliberately differs from
// time.Duration: it is a float over seconds rather than an integer count
// of nanoseconds, so it composes with the quantity rate operations (e.g.
// meters per second). FromStd and InStd convert between the two.
package duration

import (
	"time"

	"github.com/msto63/unitx/quantity"
)

// Seconds is the unit tag for durations. Duration values are stored in
// seconds.
type Seconds struct{}

// Duration is a span of time, stored canonically in seconds.
type Duration = quantity.Quantity[float64, Seconds]

// Conversion factors into seconds.
const (
	secondsPerMillisecond = 0.001
	secondsPerMinute      = 60.0
	secondsPerHour        = 3600.0
	secondsPerDay         = 86400.0
)

// FromSeconds constructs a Duration from a number of seconds.
func FromSeconds(seconds float64) Duration {
	return quantity.Unsafe[float64, Seconds](seconds)
}

// InSeconds returns the duration as a number of seconds.
func InSeconds(d Duration) float64 {
	return quantity.Unwrap(d)
}

// FromMilliseconds constructs a Duration from a number of milliseconds.
func FromMilliseconds(milliseconds float64) Duration {
	return FromSeconds(milliseconds * secondsPerMillisecond)
}

// InMilliseconds returns the duration as a number of milliseconds.
func InMilliseconds(d Duration) float64 {
	return InSeconds(d) / secondsPerMillisecond
}

// FromMinutes constructs a Duration from a number of minutes.
func FromMinutes(minutes float64) Duration {
	return FromSeconds(minutes * secondsPerMinute)
}

// InMinutes returns the duration as a number of minutes.
func InMinutes(d Duration) float64 {
	return InSeconds(d) / secondsPerMinute
}

// FromHours constructs a Duration from a number of hours.
func FromHours(hours float64) Duration {
	return FromSeconds(hours * secondsPerHour)
}

// InHours returns the duration as a number of hours.
func InHours(d Duration) float64 {
	return InSeconds(d) / secondsPerHour
}

// FromDays constructs a Duration from a number of 24-hour days.
func FromDays(days float64) Duration {
	return FromSeconds(days * secondsPerDay)
}

// InDays returns the duration as a number of 24-hour days.
func InDays(d Duration) float64 {
	return InSeconds(d) / secondsPerDay
}

// FromStd converts a standard library time.Duration.
func FromStd(d time.Duration) Duration {
	return FromSeconds(d.Seconds())
}

// InStd returns the duration as a time.Duration, truncated to nanosecond
// resolution. Durations beyond the time.Duration range overflow as the
// conversion to int64 does.
func InStd(d Duration) time.Duration {
	return time.Duration(InSeconds(d) * float64(time.Second))
}
