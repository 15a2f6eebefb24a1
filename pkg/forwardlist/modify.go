package forwardlist

import (
	"iter"

	"hop.computer/seq/common"
)

// InsertAfter links a new element holding v directly after pos and returns its
// position. Inserting after End fails with common.ErrOutOfBounds.
func (l *ForwardList[T]) InsertAfter(pos Iterator[T], v T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	return l.iter(l.linkAfter(pos.n, v)), nil
}

// InsertAfterN inserts n copies of v after pos and returns the position of the
// last one, or pos if n is zero.
func (l *ForwardList[T]) InsertAfterN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	if n < 0 {
		return pos, common.OutOfBounds("negative count %d", n)
	}
	prev := pos.n
	for i := 0; i < n; i++ {
		prev = l.linkAfter(prev, v)
	}
	return l.iter(prev), nil
}

// InsertAfterValues inserts vals after pos, keeping their order, and returns
// the position of the last one, or pos if vals is empty.
func (l *ForwardList[T]) InsertAfterValues(pos Iterator[T], vals ...T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	prev := pos.n
	for _, v := range vals {
		prev = l.linkAfter(prev, v)
	}
	return l.iter(prev), nil
}

// InsertAfterSeq inserts every value of seq after pos, keeping their order, and
// returns the position of the last one, or pos if seq is empty.
func (l *ForwardList[T]) InsertAfterSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	return l.iter(l.appendSeq(pos.n, seq)), nil
}

func (l *ForwardList[T]) insertable(pos Iterator[T]) error {
	l.lazyInit()
	if err := l.check(pos); err != nil {
		return err
	}
	if pos.n.next == nil {
		return common.OutOfBounds("inserting after the end of the list")
	}
	return nil
}

// PushFront inserts v at the front of l.
func (l *ForwardList[T]) PushFront(v T) {
	l.lazyInit()
	l.linkAfter(l.head, v)
}

// PopFront removes the first element.
func (l *ForwardList[T]) PopFront() error {
	_, err := l.EraseAfter(l.BeforeBegin())
	return err
}

// EraseAfter removes the element following pos and returns the position that
// now follows pos. It fails with common.ErrOutOfBounds if there is no such
// element.
func (l *ForwardList[T]) EraseAfter(pos Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.check(pos); err != nil {
		return pos, err
	}
	if pos.n.next == nil || pos.n.next == l.tail {
		return pos, common.OutOfBounds("nothing to erase after position")
	}
	victim := pos.n.next
	pos.n.next = victim.next
	victim.release()
	return l.iter(pos.n.next), nil
}

// EraseAfterRange removes the elements of the open range (first, last) and
// returns last. Adjacent positions erase nothing. The range must not end at
// End; use TruncateAfter to erase a suffix.
func (l *ForwardList[T]) EraseAfterRange(first, last Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.check(first); err != nil {
		return last, err
	}
	if err := l.check(last); err != nil {
		return last, err
	}
	if last.n.next == nil {
		return last, common.OutOfBounds("erase range ends at the end of the list")
	}
	if first.n.next == nil {
		return last, common.OutOfBounds("erase range starts at the end of the list")
	}
	for n := first.n.next; n != last.n; n = n.next {
		if n.next == nil {
			return last, common.OutOfBounds("range end is not reachable from range start")
		}
	}
	for n := first.n.next; n != last.n; {
		next := n.next
		n.release()
		n = next
	}
	first.n.next = last.n
	return last, nil
}

// TruncateAfter removes every element after pos.
func (l *ForwardList[T]) TruncateAfter(pos Iterator[T]) error {
	l.lazyInit()
	if err := l.check(pos); err != nil {
		return err
	}
	if pos.n.next == nil {
		return common.OutOfBounds("truncating after the end of the list")
	}
	for n := pos.n.next; n != l.tail; {
		next := n.next
		n.release()
		n = next
	}
	pos.n.next = l.tail
	return nil
}

// Resize truncates l to n elements, or appends copies of val until it holds n.
func (l *ForwardList[T]) Resize(n int, val T) error {
	l.lazyInit()
	if n < 0 {
		return common.OutOfBounds("negative size %d", n)
	}
	prev := l.head
	count := 0
	for count < n && prev.next != l.tail {
		prev = prev.next
		count++
	}
	if count == n {
		return l.TruncateAfter(l.iter(prev))
	}
	for ; count < n; count++ {
		prev = l.linkAfter(prev, val)
	}
	return nil
}

// SpliceAfter moves every element of other into l after pos, leaving other
// empty. No elements are copied.
func (l *ForwardList[T]) SpliceAfter(pos Iterator[T], other *ForwardList[T]) error {
	if err := l.insertable(pos); err != nil {
		return err
	}
	if l == other {
		return common.Overlap("splicing a list into itself")
	}
	other.lazyInit()
	if other.Empty() {
		return nil
	}
	last := other.head.next
	last.chain = l.chain
	for last.next != other.tail {
		last = last.next
		last.chain = l.chain
	}
	last.next = pos.n.next
	pos.n.next = other.head.next
	other.head.next = other.tail
	return nil
}

// SpliceAfterOne moves the element at from, which must belong to other, into l
// after pos.
func (l *ForwardList[T]) SpliceAfterOne(pos Iterator[T], other *ForwardList[T], from Iterator[T]) error {
	if err := l.insertable(pos); err != nil {
		return err
	}
	other.lazyInit()
	if err := other.check(from); err != nil {
		return err
	}
	if from.n.sentinel {
		return common.OutOfBounds("splicing a sentinel position")
	}
	prev := other.head
	for prev.next != from.n {
		if prev.next == other.tail {
			return common.OutOfBounds("position is not an element of the donor")
		}
		prev = prev.next
	}
	if l == other && (pos.n == from.n || pos.n == prev) {
		return nil
	}
	prev.next = from.n.next
	from.n.next = pos.n.next
	pos.n.next = from.n
	from.n.chain = l.chain
	return nil
}

// SpliceAfterRange moves the elements of the open range (first, last) of other
// into l after pos. last may be other's End. When l and other are the same
// list, pos must not lie inside the range.
func (l *ForwardList[T]) SpliceAfterRange(pos Iterator[T], other *ForwardList[T], first, last Iterator[T]) error {
	if err := l.insertable(pos); err != nil {
		return err
	}
	other.lazyInit()
	if err := other.check(first); err != nil {
		return err
	}
	if err := other.check(last); err != nil {
		return err
	}
	if first.n.next == nil {
		return common.OutOfBounds("splice range starts at the end of the list")
	}
	var end *node[T]
	for n := first.n.next; n != last.n; n = n.next {
		if n.next == nil {
			return common.OutOfBounds("range end is not reachable from range start")
		}
		if l == other && n == pos.n {
			return common.Overlap("splice destination inside the moved range")
		}
		end = n
	}
	if end == nil {
		return nil
	}
	start := first.n.next
	first.n.next = last.n
	end.next = pos.n.next
	pos.n.next = start
	for n := start; n != end.next; n = n.next {
		n.chain = l.chain
	}
	return nil
}
