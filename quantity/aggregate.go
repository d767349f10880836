// File: aggregate.go
// Title: Quantity Aggregate Operations
// Description: Implements folds and orderings over slices of quantities:
//              Sum, Minimum/Maximum with explicit absence for empty input,
//              stable non-mutating Sort, the keyed variants SortBy,
//              MinimumBy and MaximumBy, and Range interpolation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial aggregate implementation

package quantity

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sum returns the sum of all quantities in the slice. An empty or nil
// slice sums to zero.
func Sum[N Number, U any](quantities []Quantity[N, U]) Quantity[N, U] {
	var total N
	for _, q := range quantities {
		total += q.value
	}
	return Quantity[N, U]{value: total}
}

// Minimum returns the smallest quantity in the slice. The second result is
// false when the slice is empty; a first occurrence wins on ties.
func Minimum[N Number, U any](quantities []Quantity[N, U]) (Quantity[N, U], bool) {
	if len(quantities) == 0 {
		return Quantity[N, U]{}, false
	}
	least := quantities[0]
	for _, q := range quantities[1:] {
		if q.value < least.value {
			least = q
		}
	}
	return least, true
}

// Maximum returns the largest quantity in the slice. The second result is
// false when the slice is empty; a first occurrence wins on ties.
func Maximum[N Number, U any](quantities []Quantity[N, U]) (Quantity[N, U], bool) {
	if len(quantities) == 0 {
		return Quantity[N, U]{}, false
	}
	greatest := quantities[0]
	for _, q := range quantities[1:] {
		if q.value > greatest.value {
			greatest = q
		}
	}
	return greatest, true
}

// Sort returns a new slice with the quantities ordered ascending by their
// wrapped value. The sort is stable and the input slice is not modified.
func Sort[N Number, U any](quantities []Quantity[N, U]) []Quantity[N, U] {
	sorted := slices.Clone(quantities)
	slices.SortStableFunc(sorted, func(a, b Quantity[N, U]) int {
		return cmp.Compare(a.value, b.value)
	})
	return sorted
}

// SortBy returns a new slice with the items ordered ascending by the
// quantity the key function extracts. The sort is stable and the input
// slice is not modified.
func SortBy[T any, N Number, U any](key func(T) Quantity[N, U], items []T) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a).value, key(b).value)
	})
	return sorted
}

// MinimumBy returns the item whose extracted quantity is smallest. The
// second result is false when the slice is empty; the first minimal item
// wins on ties.
func MinimumBy[T any, N Number, U any](key func(T) Quantity[N, U], items []T) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	least := items[0]
	leastKey := key(least)
	for _, item := range items[1:] {
		if k := key(item); k.value < leastKey.value {
			least, leastKey = item, k
		}
	}
	return least, true
}

// MaximumBy returns the item whose extracted quantity is largest. The
// second result is false when the slice is empty; the first maximal item
// wins on ties.
func MaximumBy[T any, N Number, U any](key func(T) Quantity[N, U], items []T) (T, bool) {
	if len(items) == 0 {
		var none T
		return none, false
	}
	greatest := items[0]
	greatestKey := key(greatest)
	for _, item := range items[1:] {
		if k := key(item); k.value > greatestKey.value {
			greatest, greatestKey = item, k
		}
	}
	return greatest, true
}

// Range returns steps+1 quantities evenly spaced from start to end
// inclusive. It returns nil when steps is less than one. Both endpoints
// are reproduced exactly.
func Range[F constraints.Float, U any](start, end Quantity[F, U], steps int) []Quantity[F, U] {
	if steps < 1 {
		return nil
	}
	out := make([]Quantity[F, U], 0, steps+1)
	for i := 0; i <= steps; i++ {
		out = append(out, InterpolateFrom(start, end, F(i)/F(steps)))
	}
	return out
}
