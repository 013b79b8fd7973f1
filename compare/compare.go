// Package compare provides three-way comparison of ordered values.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types. It returns a negative
// number when a < b, a positive number when a > b, and zero otherwise.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less reports whether a orders before b.
func Less[T constraints.Ordered](a, b T) bool { return Function(a, b) < 0 }
