// Package cmp provides the three-way comparator contract every ordered
// container in this module is built against.
package cmp

import "cmp"

// Ordered is a constraint that permits any ordered type: any type
// that supports the operators < <= >= >.
// If future releases of Go add new ordered types,
// this constraint will be modified to include them.
//
// Note that floating-point types may contain NaN ("not-a-number") values.
// An operator such as == or < will always report false when
// comparing a NaN value with any other value, NaN or not.
// See the [Compare] function for a consistent way to compare NaN values.
type Ordered = cmp.Ordered

// Comparator defines a function for comparing two values of type T.
//
// Returns:
//   - -1 if x < y
//   - 0 if x == y
//   - +1 if x > y
type Comparator[T any] func(x, y T) int

// Three-way comparison results, named to match the sign a Comparator returns.
const (
	LES = -1
	EQL = 0
	GRT = 1
)

// Compare returns
//
//	-1 if x is less than y,
//	 0 if x equals y,
//	+1 if x is greater than y.
//
// For floating-point types, a NaN is considered less than any non-NaN,
// a NaN is considered equal to a NaN, and -0.0 is equal to 0.0.
func Compare[T Ordered](x, y T) int {
	return cmp.Compare(x, y)
}
