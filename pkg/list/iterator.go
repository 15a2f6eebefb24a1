package list

import "hop.computer/seq/common"

// Iterator is a bidirectional position in a List. Positions stay valid across
// insertions and across erasure of other elements. A position follows its
// element when the element is spliced, merged or moved into another list.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element at it. Dereferencing End fails with
// common.ErrOutOfBounds.
func (it Iterator[T]) Value() (T, error) {
	return deref(it.n)
}

// Ref returns a pointer to the element at it.
func (it Iterator[T]) Ref() (*T, error) {
	return ref(it.n)
}

// Set overwrites the element at it.
func (it Iterator[T]) Set(v T) error {
	p, err := ref(it.n)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next returns the following position. Advancing End fails.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.n == nil || it.n.next == nil {
		return it, common.OutOfBounds("advancing past the end of the list")
	}
	return Iterator[T]{n: it.n.next}, nil
}

// Prev returns the preceding position. Retreating from Begin fails.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if it.n == nil || it.n.prev == nil || it.n.prev.prev == nil {
		return it, common.OutOfBounds("retreating before the beginning of the list")
	}
	return Iterator[T]{n: it.n.prev}, nil
}

// AtEnd reports whether it is the End position.
func (it Iterator[T]) AtEnd() bool {
	return it.n == nil || it.n.next == nil
}

// Equal reports whether it and other denote the same position. Comparing
// positions of different lists fails with common.ErrBadIterator.
func (it Iterator[T]) Equal(other Iterator[T]) (bool, error) {
	if !sameList(it.n, other.n) {
		return false, common.BadIterator("comparing positions of different lists")
	}
	return it.n == other.n, nil
}

// ReverseIterator walks a List from back to front. Next moves toward the front
// and Prev toward the back.
type ReverseIterator[T any] struct {
	n *node[T]
}

// Value returns the element at it. Dereferencing REnd fails.
func (it ReverseIterator[T]) Value() (T, error) {
	return deref(it.n)
}

// Ref returns a pointer to the element at it.
func (it ReverseIterator[T]) Ref() (*T, error) {
	return ref(it.n)
}

// Set overwrites the element at it.
func (it ReverseIterator[T]) Set(v T) error {
	p, err := ref(it.n)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next moves one element toward the front. Advancing REnd fails.
func (it ReverseIterator[T]) Next() (ReverseIterator[T], error) {
	if it.n == nil || it.n.prev == nil {
		return it, common.OutOfBounds("advancing past the reverse end of the list")
	}
	return ReverseIterator[T]{n: it.n.prev}, nil
}

// Prev moves one element toward the back. Retreating from RBegin fails.
func (it ReverseIterator[T]) Prev() (ReverseIterator[T], error) {
	if it.n == nil || it.n.next == nil || it.n.next.next == nil {
		return it, common.OutOfBounds("retreating before the reverse beginning of the list")
	}
	return ReverseIterator[T]{n: it.n.next}, nil
}

// AtEnd reports whether it is the REnd position.
func (it ReverseIterator[T]) AtEnd() bool {
	return it.n == nil || it.n.prev == nil
}

// Equal reports whether it and other denote the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) (bool, error) {
	if !sameList(it.n, other.n) {
		return false, common.BadIterator("comparing positions of different lists")
	}
	return it.n == other.n, nil
}

// Base returns the forward position following it, so that RBegin().Base() is
// End and REnd().Base() is Begin.
func (it ReverseIterator[T]) Base() Iterator[T] {
	if it.n == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{n: it.n.next}
}

func deref[T any](n *node[T]) (T, error) {
	p, err := ref(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func ref[T any](n *node[T]) (*T, error) {
	if n == nil || n.sentinel {
		return nil, common.OutOfBounds("dereferencing a sentinel position")
	}
	if n.chain == nil {
		return nil, common.OutOfBounds("dereferencing an erased position")
	}
	return &n.value, nil
}

func sameList[T any](a, b *node[T]) bool {
	return a != nil && b != nil && common.Same(a.chain, b.chain)
}

func (l *List[T]) check(pos Iterator[T]) error {
	if pos.n == nil {
		return common.BadIterator("position does not belong to this list")
	}
	if pos.n.chain == nil {
		return common.OutOfBounds("position was erased")
	}
	if pos.n.chain.Root() != l.chain {
		return common.BadIterator("position does not belong to this list")
	}
	return nil
}
