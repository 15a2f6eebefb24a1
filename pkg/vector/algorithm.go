package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"hop.computer/seq/common"
)

// SortFunc bubble-sorts the elements in place so that less never reports an
// element as smaller than its predecessor. It is O(n²) and stable.
func (v *Vector[T]) SortFunc(less func(a, b T) bool) {
	for i := 0; i < v.size; i++ {
		for j := 1; j < v.size-i; j++ {
			if less(v.buf[j], v.buf[j-1]) {
				v.buf[j], v.buf[j-1] = v.buf[j-1], v.buf[j]
			}
		}
	}
}

// RSortFunc sorts the elements in the reverse of the order less describes.
func (v *Vector[T]) RSortFunc(less func(a, b T) bool) {
	v.SortFunc(func(a, b T) bool { return less(b, a) })
}

// Sort orders the elements of v ascending.
func Sort[T constraints.Ordered](v *Vector[T]) {
	v.SortFunc(common.Less[T])
}

// RSort orders the elements of v descending.
func RSort[T constraints.Ordered](v *Vector[T]) {
	v.RSortFunc(common.Less[T])
}

// Reverse reverses the order of the elements by copying them into a fresh
// buffer of the same capacity.
func (v *Vector[T]) Reverse() {
	buf := make([]T, len(v.buf))
	for i := 0; i < v.size; i++ {
		buf[i] = v.buf[v.size-1-i]
	}
	v.buf = buf
}

// Index returns the index of the first element equal to x, or -1.
func Index[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.buf[:v.size], x)
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.buf[:v.size], x)
}

// ContainsFunc reports whether any element satisfies pred.
func (v *Vector[T]) ContainsFunc(pred func(T) bool) bool {
	return slices.IndexFunc(v.buf[:v.size], pred) >= 0
}

// Count returns how many elements equal x.
func Count[T comparable](v *Vector[T], x T) int {
	return v.CountFunc(func(e T) bool { return e == x })
}

// CountFunc returns how many elements satisfy pred.
func (v *Vector[T]) CountFunc(pred func(T) bool) int {
	n := 0
	for _, e := range v.buf[:v.size] {
		if pred(e) {
			n++
		}
	}
	return n
}

// SplitFunc partitions v around the first element satisfying pred. The
// element itself is in neither half. If no element matches, left holds a copy
// of every element, right is empty, and found is false. v is not modified.
func (v *Vector[T]) SplitFunc(pred func(T) bool) (left, right *Vector[T], found bool) {
	live := v.buf[:v.size]
	i := slices.IndexFunc(live, pred)
	if i < 0 {
		return Of(live...), New[T](), false
	}
	return Of(live[:i]...), Of(live[i+1:]...), true
}

// Split partitions v around the first occurrence of x.
func Split[T comparable](v *Vector[T], x T) (left, right *Vector[T], found bool) {
	return v.SplitFunc(func(e T) bool { return e == x })
}

// Concat returns a new vector holding the elements of a followed by those of
// b, with capacity for exactly that many.
func Concat[T any](a, b *Vector[T]) *Vector[T] {
	c := New[T]()
	c.buf = make([]T, a.size+b.size)
	n := copy(c.buf, a.buf[:a.size])
	copy(c.buf[n:], b.buf[:b.size])
	c.size = a.size + b.size
	return c
}
