package vector

import "hop.computer/seq/common"

// Iterator is a random-access position in a Vector. Arithmetic never fails;
// bounds are checked when the position is dereferenced or handed back to the
// vector. Reallocation does not invalidate an Iterator, since it addresses an
// index rather than a slot of a particular buffer.
type Iterator[T any] struct {
	owner common.Owner
	v     *Vector[T]
	i     int
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{owner: v.id(), v: v}
}

// End returns the position one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{owner: v.id(), v: v, i: v.size}
}

// Pos returns the index it refers to.
func (it Iterator[T]) Pos() int { return it.i }

// Add returns the position n elements after it.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Sub returns the position n elements before it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.i -= n
	return it
}

// Next is Add(1).
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev is Sub(1).
func (it Iterator[T]) Prev() Iterator[T] { return it.Sub(1) }

// Diff returns the distance from other to it.
func (it Iterator[T]) Diff(other Iterator[T]) (int, error) {
	if it.owner != other.owner {
		return 0, common.BadIterator("subtracting positions of different vectors")
	}
	return it.i - other.i, nil
}

// Compare returns -1, 0, or +1 depending on whether it precedes, equals, or
// follows other.
func (it Iterator[T]) Compare(other Iterator[T]) (int, error) {
	d, err := it.Diff(other)
	switch {
	case err != nil:
		return 0, common.BadIterator("comparing positions of different vectors")
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) (bool, error) {
	c, err := it.Compare(other)
	return c < 0, err
}

// Equal reports whether it and other denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) (bool, error) {
	c, err := it.Compare(other)
	return c == 0 && err == nil, err
}

// Value returns the element at it.
func (it Iterator[T]) Value() (T, error) {
	return it.Index(0)
}

// Index returns the element n positions after it.
func (it Iterator[T]) Index(n int) (T, error) {
	if it.v == nil {
		var zero T
		return zero, common.OutOfBounds("dereferencing a detached position")
	}
	return it.v.At(it.i + n)
}

// Ref returns a pointer to the element at it.
func (it Iterator[T]) Ref() (*T, error) {
	if it.v == nil {
		return nil, common.OutOfBounds("dereferencing a detached position")
	}
	return it.v.Ref(it.i)
}

// Set overwrites the element at it.
func (it Iterator[T]) Set(x T) error {
	p, err := it.Ref()
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// index validates pos against v and returns its index, which must lie in
// [0, Len]. Positions at Len are accepted only when end is set.
func (v *Vector[T]) index(pos Iterator[T], end bool) (int, error) {
	if pos.owner != v.id() {
		return 0, common.BadIterator("position does not belong to this vector")
	}
	limit := v.size
	if !end {
		limit--
	}
	if pos.i < 0 || pos.i > limit {
		return 0, common.OutOfBounds("position %d, size %d", pos.i, v.size)
	}
	return pos.i, nil
}
