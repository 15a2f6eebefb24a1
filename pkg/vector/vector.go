// Package vector implements a growable array with a separate logical size and
// physical capacity.
//
// Live elements occupy indices [0, Len) of a single backing buffer whose
// length is the capacity. Slots in [Len, Cap) hold zero values. When the
// buffer is full it grows by half its capacity, so appending is amortized
// constant time.
package vector

import (
	"iter"

	"github.com/sirupsen/logrus"

	"hop.computer/seq/common"
)

var log = logrus.WithField("container", "vector")

// Vector is a growable array. The zero value is an empty vector ready to use.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	owner common.Owner
	buf   []T
	size  int
}

func (v *Vector[T]) id() common.Owner {
	if !v.owner.Valid() {
		v.owner = common.NewOwner()
	}
	return v.owner
}

// New returns an empty vector with no capacity.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.id()
	return v
}

// WithSize returns a vector holding n zero values.
func WithSize[T any](n int) *Vector[T] {
	var zero T
	return Repeat(n, zero)
}

// Repeat returns a vector holding n copies of val, with capacity n.
func Repeat[T any](n int, val T) *Vector[T] {
	v := New[T]()
	if n <= 0 {
		return v
	}
	v.buf = make([]T, n)
	for i := range v.buf {
		v.buf[i] = val
	}
	v.size = n
	return v
}

// Of returns a vector holding vals, with capacity len(vals). vals is copied.
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	if len(vals) == 0 {
		return v
	}
	v.buf = make([]T, len(vals))
	v.size = copy(v.buf, vals)
	return v
}

// FromSeq returns a vector holding every value produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// Clone returns a deep copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := New[T]()
	c.buf = make([]T, len(v.buf))
	c.size = copy(c.buf, v.buf[:v.size])
	return c
}

// CopyFrom replaces the contents of v with a copy of other's.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Assign(other.buf[:other.size]...)
}

// Assign replaces the contents of v with vals, growing the buffer only if it
// cannot hold them.
func (v *Vector[T]) Assign(vals ...T) {
	v.Clear()
	v.mustGrow(len(vals))
	v.size = copy(v.buf, vals)
}

// Move returns a new vector owning v's buffer. v is left empty with no
// capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.Take(v)
	return m
}

// Take discards the contents of v and takes ownership of donor's buffer,
// leaving donor empty with no capacity.
func (v *Vector[T]) Take(donor *Vector[T]) {
	if v == donor {
		return
	}
	v.id()
	v.buf, v.size = donor.buf, donor.size
	donor.buf, donor.size = nil, 0
}

// Swap exchanges the buffers of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at index i. The pointer is invalidated
// by any operation that reallocates.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, common.OutOfBounds("index %d, size %d", i, v.size)
	}
	return &v.buf[i], nil
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, x T) error {
	p, err := v.Ref(i)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	return v.At(v.size - 1)
}

// Values returns a copy of the live elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])
	return out
}

// All returns an iterator over the elements of v, front to back.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of v, back to front.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// reallocate moves the live elements into a fresh buffer of exactly capacity
// slots.
func (v *Vector[T]) reallocate(capacity int) error {
	if capacity < v.size {
		return common.AllocationInvariant(capacity, v.size)
	}
	if capacity == len(v.buf) {
		return nil
	}
	log.WithFields(logrus.Fields{
		"from": len(v.buf),
		"to":   capacity,
		"size": v.size,
	}).Trace("reallocating buffer")
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.size])
	v.buf = buf
	return nil
}

// grow makes room for at least needed elements, growing the capacity by at
// least half.
func (v *Vector[T]) grow(needed int) error {
	if needed <= len(v.buf) {
		return nil
	}
	capacity := len(v.buf) + len(v.buf)/2
	if capacity < needed {
		capacity = needed
	}
	return v.reallocate(capacity)
}

// mustGrow is grow for callers that never ask for less than the current size.
// A failure there is a bug in this package.
func (v *Vector[T]) mustGrow(needed int) {
	if err := v.grow(needed); err != nil {
		panic(err)
	}
}

// Reserve grows the capacity to at least n. It never shrinks the buffer.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.buf) {
		if err := v.reallocate(n); err != nil {
			panic(err)
		}
	}
}

// ShrinkToFit reallocates the buffer to exactly Len slots.
func (v *Vector[T]) ShrinkToFit() {
	if err := v.reallocate(v.size); err != nil {
		panic(err)
	}
}

// Clear removes every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Resize truncates v to n elements, or appends copies of val until it holds n.
func (v *Vector[T]) Resize(n int, val T) error {
	if n < 0 {
		return common.OutOfBounds("negative size %d", n)
	}
	if n < v.size {
		clear(v.buf[n:v.size])
		v.size = n
		return nil
	}
	v.mustGrow(n)
	for ; v.size < n; v.size++ {
		v.buf[v.size] = val
	}
	return nil
}

// PushBack appends x. This function is amortized constant time.
func (v *Vector[T]) PushBack(x T) {
	v.mustGrow(v.size + 1)
	v.buf[v.size] = x
	v.size++
}

// PopBack removes the last element and returns it.
func (v *Vector[T]) PopBack() (T, error) {
	x, err := v.Back()
	if err != nil {
		return x, err
	}
	v.size--
	var zero T
	v.buf[v.size] = zero
	return x, nil
}
