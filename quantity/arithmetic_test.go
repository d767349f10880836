// File: arithmetic_test.go
// Title: Unit Tests for Quantity Arithmetic Operations
// Description: Tests for the algebraic properties of addition, negation
//              and scaling, for clamping, for the tag-deriving operations
//              (Product, Square, Cube, Ratio, Sqrt, Cbrt) and for the
//              interpolation helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test implementation

package quantity

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func TestPlusProperties(t *testing.T) {
	// Exactly representable values, so the properties hold without
	// tolerance.
	a := Unsafe[float64, meters](1.5)
	b := Unsafe[float64, meters](2.25)
	c := Unsafe[float64, meters](4.0)

	if got := Plus(a, Zero[float64, meters]()); got != a {
		t.Errorf("Plus(a, zero) = %v, want %v", Unwrap(got), Unwrap(a))
	}
	if Plus(a, b) != Plus(b, a) {
		t.Error("Plus is not commutative")
	}
	if Plus(Plus(a, b), c) != Plus(a, Plus(b, c)) {
		t.Error("Plus is not associative")
	}
}

func TestPlusMinus(t *testing.T) {
	a := Unsafe[float64, meters](3.0)
	b := Unsafe[float64, meters](4.5)

	if got := Unwrap(Plus(a, b)); got != 7.5 {
		t.Errorf("Plus(3.0, 4.5) = %v, want 7.5", got)
	}
	if got := Unwrap(Minus(b, a)); got != 1.5 {
		t.Errorf("Minus(4.5, 3.0) = %v, want 1.5", got)
	}
	if got := Minus(Plus(a, b), b); got != a {
		t.Errorf("Minus(Plus(a, b), b) = %v, want %v", Unwrap(got), Unwrap(a))
	}
}

func TestNegate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"positive", 2.5, -2.5},
		{"negative", -1.25, 1.25},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Unsafe[float64, meters](tt.value)
			if got := Unwrap(Negate(q)); got != tt.want {
				t.Errorf("Negate(%v) = %v, want %v", tt.value, got, tt.want)
			}
			if got := Negate(Negate(q)); got != q {
				t.Errorf("Negate(Negate(%v)) = %v, want %v", tt.value, Unwrap(got), tt.value)
			}
		})
	}
}

func TestScaleBy(t *testing.T) {
	q := Unsafe[float64, meters](6.5)

	if got := ScaleBy(1, q); got != q {
		t.Errorf("ScaleBy(1, q) = %v, want %v", Unwrap(got), Unwrap(q))
	}
	if got := ScaleBy(0, q); got != Zero[float64, meters]() {
		t.Errorf("ScaleBy(0, q) = %v, want 0", Unwrap(got))
	}
	if got := Unwrap(ScaleBy(2.0, q)); got != 13.0 {
		t.Errorf("ScaleBy(2, 6.5) = %v, want 13", got)
	}
	if got := Unwrap(ScaleBy(3, Unsafe[int, seconds](4))); got != 12 {
		t.Errorf("ScaleBy(3, 4) = %d, want 12", got)
	}
}

func TestDivideByTwiceHalf(t *testing.T) {
	q := Unsafe[float64, meters](5.0)

	if got := Unwrap(DivideBy(2.0, q)); got != 2.5 {
		t.Errorf("DivideBy(2, 5) = %v, want 2.5", got)
	}
	if got := Unwrap(Twice(q)); got != 10.0 {
		t.Errorf("Twice(5) = %v, want 10", got)
	}
	if got := Unwrap(Half(q)); got != 2.5 {
		t.Errorf("Half(5) = %v, want 2.5", got)
	}
	if got := Half(Twice(q)); got != q {
		t.Errorf("Half(Twice(5)) = %v, want 5", Unwrap(got))
	}
	if !IsInfinite(DivideBy(0, q)) {
		t.Error("DivideBy(0, 5) should be infinite")
	}
}

func TestAbs(t *testing.T) {
	if got := Unwrap(Abs(Unsafe[float64, meters](-3.5))); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v, want 3.5", got)
	}
	if got := Unwrap(Abs(Unsafe[float64, meters](3.5))); got != 3.5 {
		t.Errorf("Abs(3.5) = %v, want 3.5", got)
	}
	if got := Unwrap(Abs(Unsafe[int, seconds](-9))); got != 9 {
		t.Errorf("Abs(-9) = %d, want 9", got)
	}
}

func TestClamp(t *testing.T) {
	lower := Unsafe[float64, meters](1.0)
	upper := Unsafe[float64, meters](5.0)

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"inside", 3.0, 3.0},
		{"below", 0.5, 1.0},
		{"above", 7.0, 5.0},
		{"at lower", 1.0, 1.0},
		{"at upper", 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(lower, upper, Unsafe[float64, meters](tt.value))
			if Unwrap(got) != tt.want {
				t.Errorf("Clamp(1, 5, %v) = %v, want %v", tt.value, Unwrap(got), tt.want)
			}
		})
	}

	// Inverted interval: min(max(v, lower), upper) always yields upper.
	got := Clamp(upper, lower, Unsafe[float64, meters](3.0))
	if Unwrap(got) != 1.0 {
		t.Errorf("Clamp(5, 1, 3) = %v, want 1 (the upper argument)", Unwrap(got))
	}
}

func TestProductSquare(t *testing.T) {
	a := Unsafe[int, meters](2)
	b := Unsafe[int, meters](3)

	// The result carries the Squared tag; Unwrap is the only way back out.
	var squaredArea Quantity[int, Squared[meters]] = Product(a, b)
	if got := Unwrap(squaredArea); got != 6 {
		t.Errorf("Product(2, 3) = %d, want 6", got)
	}

	if got := Square(b); got != Product(b, b) {
		t.Errorf("Square(3) = %d, want Product(3, 3)", Unwrap(got))
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	values := []float64{0, 1.5, 4, 9.75, -3.25}
	for _, v := range values {
		q := Unsafe[float64, meters](v)
		got := Sqrt(Square(q))
		want := Abs(q)
		if !closeTo(Unwrap(got), Unwrap(want)) {
			t.Errorf("Sqrt(Square(%v)) = %v, want %v", v, Unwrap(got), Unwrap(want))
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	q := Unsafe[float64, Squared[meters]](-4.0)
	if got := Sqrt(q); !IsNaN(got) {
		t.Errorf("Sqrt(-4) = %v, want NaN", Unwrap(got))
	}
}

func TestCubeCbrt(t *testing.T) {
	q := Unsafe[float64, meters](3.0)

	var volume Quantity[float64, Cubed[meters]] = Cube(q)
	if got := Unwrap(volume); got != 27.0 {
		t.Errorf("Cube(3) = %v, want 27", got)
	}
	if got := Cbrt(volume); !closeTo(Unwrap(got), 3.0) {
		t.Errorf("Cbrt(27) = %v, want 3", Unwrap(got))
	}
	// Unlike Sqrt, Cbrt is defined for negative input.
	if got := Cbrt(Unsafe[float64, Cubed[meters]](-8.0)); !closeTo(Unwrap(got), -2.0) {
		t.Errorf("Cbrt(-8) = %v, want -2", Unwrap(got))
	}
}

func TestRatio(t *testing.T) {
	a := Unsafe[float64, meters](15.0)
	b := Unsafe[float64, meters](5.0)

	if got := Ratio(a, b); got != 3.0 {
		t.Errorf("Ratio(15, 5) = %v, want 3", got)
	}
	if got := Ratio(a, Zero[float64, meters]()); !math.IsInf(got, 1) {
		t.Errorf("Ratio(15, 0) = %v, want +Inf", got)
	}
}

func TestMidpoint(t *testing.T) {
	a := Unsafe[float64, meters](2.0)
	b := Unsafe[float64, meters](7.0)

	if got := Unwrap(Midpoint(a, b)); got != 4.5 {
		t.Errorf("Midpoint(2, 7) = %v, want 4.5", got)
	}
	if Midpoint(a, b) != Midpoint(b, a) {
		t.Error("Midpoint is not symmetric")
	}
}

func TestInterpolateFrom(t *testing.T) {
	start := Unsafe[float64, meters](10.0)
	end := Unsafe[float64, meters](20.0)

	tests := []struct {
		name      string
		parameter float64
		want      float64
	}{
		{"at start", 0, 10},
		{"at end", 1, 20},
		{"midway", 0.5, 15},
		{"quarter", 0.25, 12.5},
		{"extrapolate beyond", 2, 30},
		{"extrapolate before", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateFrom(start, end, tt.parameter)
			if Unwrap(got) != tt.want {
				t.Errorf("InterpolateFrom(10, 20, %v) = %v, want %v",
					tt.parameter, Unwrap(got), tt.want)
			}
		})
	}
}
