package common

import "golang.org/x/exp/constraints"

// Less is the default ordering used by the Sort and Merge helpers of every
// container package.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater is the reverse of Less.
func Greater[T constraints.Ordered](a, b T) bool {
	return b < a
}

// Equal is the default equality used by the Unique helpers.
func Equal[T comparable](a, b T) bool {
	return a == b
}
