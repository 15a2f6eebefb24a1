package common

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when an index, position, or range argument falls
// outside the logical sequence of a container. Dereferencing a sentinel,
// indexing past the size, and erasing past the end all report it.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrBadIterator is returned when a position is used against a container other
// than the one that produced it.
var ErrBadIterator = errors.New("iterator belongs to a different container")

// ErrAllocationInvariant is returned by an internal reallocation asked to hold
// fewer slots than there are live elements. It is not reachable through the
// public container API.
var ErrAllocationInvariant = errors.New("buffer smaller than element count")

// ErrOverlap is returned when a container is spliced into itself at a
// destination inside the range being moved.
var ErrOverlap = errors.New("destination inside spliced range")

// OutOfBounds wraps ErrOutOfBounds with a formatted message.
func OutOfBounds(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfBounds, format, args...)
}

// BadIterator wraps ErrBadIterator with a formatted message.
func BadIterator(format string, args ...interface{}) error {
	return errors.Wrapf(ErrBadIterator, format, args...)
}

// Overlap wraps ErrOverlap with a formatted message.
func Overlap(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverlap, format, args...)
}

// AllocationInvariant wraps ErrAllocationInvariant, recording the requested
// capacity and the element count it would have discarded.
func AllocationInvariant(capacity, size int) error {
	return errors.Wrapf(ErrAllocationInvariant, "requested capacity %d, size %d", capacity, size)
}
