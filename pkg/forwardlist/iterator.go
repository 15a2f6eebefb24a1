package forwardlist

import "hop.computer/seq/common"

// Iterator is a position in a ForwardList. Every node records the chain it
// belongs to, and a list rejects positions whose node is in another chain.
// A position follows its element when the element is spliced, merged or moved
// into another list.
//
// Iterators stay valid across insertions. Positions of erased elements, which
// include every element of a cleared or reversed list, fail with
// common.ErrOutOfBounds.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element at it. Dereferencing BeforeBegin or End fails with
// common.ErrOutOfBounds.
func (it Iterator[T]) Value() (T, error) {
	p, err := it.Ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at it, for in-place mutation.
func (it Iterator[T]) Ref() (*T, error) {
	if it.n == nil || it.n.sentinel {
		return nil, common.OutOfBounds("dereferencing a sentinel position")
	}
	if it.n.chain == nil {
		return nil, common.OutOfBounds("dereferencing an erased position")
	}
	return &it.n.value, nil
}

// Set overwrites the element at it.
func (it Iterator[T]) Set(v T) error {
	p, err := it.Ref()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next returns the following position. Advancing End fails with
// common.ErrOutOfBounds.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.AtEnd() {
		return it, common.OutOfBounds("advancing past the end of the list")
	}
	return Iterator[T]{n: it.n.next}, nil
}

// AtEnd reports whether it is the End position.
func (it Iterator[T]) AtEnd() bool {
	return it.n == nil || it.n.next == nil
}

// Equal reports whether it and other denote the same position. Comparing
// positions of different lists fails with common.ErrBadIterator.
func (it Iterator[T]) Equal(other Iterator[T]) (bool, error) {
	if it.n == nil || other.n == nil || !common.Same(it.n.chain, other.n.chain) {
		return false, common.BadIterator("comparing positions of different lists")
	}
	return it.n == other.n, nil
}

func (l *ForwardList[T]) check(pos Iterator[T]) error {
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
