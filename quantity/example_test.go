// File: example_test.go
// Title: Example Tests for Quantity Package Documentation
// Description: Executable examples that serve as both documentation and
//              tests, demonstrating the core operations through the
//              concrete unit packages of this module.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial example implementation

package quantity_test

import (
	"fmt"

	"github.com/msto63/unitx/quantity"
	"github.com/msto63/unitx/units/duration"
	"github.com/msto63/unitx/units/length"
	"github.com/msto63/unitx/units/speed"
)

func ExamplePlus() {
	a := length.FromMeters(3.0)
	b := length.FromMeters(4.5)

	total := quantity.Plus(a, b)
	fmt.Printf("%.1f m\n", length.InMeters(total))
	// Output:
	// 7.5 m
}

func ExampleEqualWithin() {
	tolerance := length.FromMillimeters(10)

	fmt.Println(quantity.EqualWithin(tolerance, length.FromMeters(1.0), length.FromMeters(1.005)))
	fmt.Println(quantity.EqualWithin(tolerance, length.FromMeters(1.0), length.FromMeters(1.02)))
	// Output:
	// true
	// false
}

func ExamplePer() {
	elapsed := duration.FromSeconds(2.0)
	distance := length.FromMeters(10.0)

	pace := quantity.Per(elapsed, distance)
	covered := quantity.At(pace, duration.FromSeconds(3.0))
	needed := quantity.For(pace, length.FromMeters(15.0))

	fmt.Printf("%.1f m/s\n", speed.InMetersPerSecond(pace))
	fmt.Printf("%.1f m\n", length.InMeters(covered))
	fmt.Printf("%.1f s\n", duration.InSeconds(needed))
	// Output:
	// 5.0 m/s
	// 15.0 m
	// 3.0 s
}

func ExampleSort() {
	distances := []length.Length{
		length.FromMeters(5.0),
		length.FromMeters(1.0),
		length.FromMeters(3.0),
	}

	for _, d := range quantity.Sort(distances) {
		fmt.Printf("%.1f\n", length.InMeters(d))
	}
	// Output:
	// 1.0
	// 3.0
	// 5.0
}

func ExampleMaximum() {
	var none []length.Length
	if _, ok := quantity.Maximum(none); !ok {
		fmt.Println("no distances")
	}

	longest, _ := quantity.Maximum([]length.Length{
		length.FromKilometers(1.2),
		length.FromKilometers(3.4),
	})
	fmt.Printf("%.1f km\n", length.InKilometers(longest))
	// Output:
	// no distances
	// 3.4 km
}

func ExampleRound() {
	wholeSeconds := quantity.Round(duration.FromSeconds(2.5))
	fmt.Println(quantity.Unwrap(wholeSeconds))
	// Output:
	// 3
}

func ExampleSqrt() {
	side := length.FromMeters(4.0)
	area := quantity.Square(side)

	recovered := quantity.Sqrt(area)
	fmt.Printf("%.1f m\n", length.InMeters(recovered))
	// Output:
	// 4.0 m
}

func ExampleFloat() {
	scale := quantity.Float(2.5)
	fmt.Println(quantity.ToFloat(scale))
	// Output:
	// 2.5
}
