package list

import (
	"iter"

	"hop.computer/seq/common"
)

// insertable validates a position that new elements will be linked in front
// of. Any element or End qualifies.
func (l *List[T]) insertable(pos Iterator[T]) error {
	l.lazyInit()
	if err := l.check(pos); err != nil {
		return err
	}
	if pos.n.prev == nil {
		return common.OutOfBounds("inserting before the beginning of the list")
	}
	return nil
}

// Insert links a new element holding v in front of pos and returns its
// position.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	return l.iter(l.linkBefore(pos.n, v)), nil
}

// InsertN inserts n copies of v in front of pos and returns the position of the
// first one, or pos if n is zero.
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	if n < 0 {
		return pos, common.OutOfBounds("negative count %d", n)
	}
	first := pos
	for i := 0; i < n; i++ {
		inserted := l.linkBefore(pos.n, v)
		if i == 0 {
			first = l.iter(inserted)
		}
	}
	return first, nil
}

// InsertValues inserts vals in front of pos, keeping their order, and returns
// the position of the first one, or pos if vals is empty.
func (l *List[T]) InsertValues(pos Iterator[T], vals ...T) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	return l.insertSeq(pos, func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}), nil
}

// InsertSeq inserts every value of seq in front of pos and returns the position
// of the first one, or pos if seq is empty.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	if err := l.insertable(pos); err != nil {
		return pos, err
	}
	return l.insertSeq(pos, seq), nil
}

func (l *List[T]) insertSeq(pos Iterator[T], seq iter.Seq[T]) Iterator[T] {
	first := pos
	inserted := false
	for v := range seq {
		n := l.linkBefore(pos.n, v)
		if !inserted {
			first = l.iter(n)
			inserted = true
		}
	}
	return first
}

// PushBack appends v to the list.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.linkBefore(l.tail, v)
}

// PushFront prepends v to the list.
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.linkBefore(l.head.next, v)
}

// PopBack removes the last item from the list and returns it.
func (l *List[T]) PopBack() (T, error) {
	if l.Empty() {
		var zero T
		return zero, common.OutOfBounds("pop from an empty list")
	}
	v := l.tail.prev.value
	l.unlink(l.tail.prev)
	return v, nil
}

// PopFront removes the first item from the list and returns it.
func (l *List[T]) PopFront() (T, error) {
	if l.Empty() {
		var zero T
		return zero, common.OutOfBounds("pop from an empty list")
	}
	v := l.head.next.value
	l.unlink(l.head.next)
	return v, nil
}

// Erase removes the element at pos and returns the position that followed it.
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.check(pos); err != nil {
		return pos, err
	}
	if pos.n.sentinel {
		return pos, common.OutOfBounds("erasing a sentinel position")
	}
	return l.iter(l.unlink(pos.n)), nil
}

// EraseRange removes the elements of [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.check(first); err != nil {
		return last, err
	}
	if err := l.check(last); err != nil {
		return last, err
	}
	count, err := span(first.n, last.n)
	if err != nil {
		return last, err
	}
	if count == 0 {
		return last, nil
	}
	detach(first.n, last.n.prev)
	for n := first.n; n != last.n; {
		next := n.next
		n.release()
		n = next
	}
	l.size -= count
	return last, nil
}

// span counts the elements of [first, last), failing if first is the head
// sentinel or last cannot be reached from first.
func span[T any](first, last *node[T]) (int, error) {
	if first.prev == nil {
		return 0, common.OutOfBounds("range starts before the beginning of the list")
	}
	count := 0
	for n := first; n != last; n = n.next {
		if n.next == nil {
			return 0, common.OutOfBounds("range end is not reachable from range start")
		}
		count++
	}
	return count, nil
}

// Resize truncates l to n elements from the back, or appends copies of val
// until it holds n. Either way the work is proportional to the difference.
func (l *List[T]) Resize(n int, val T) error {
	l.lazyInit()
	if n < 0 {
		return common.OutOfBounds("negative size %d", n)
	}
	for l.size > n {
		l.unlink(l.tail.prev)
	}
	for l.size < n {
		l.linkBefore(l.tail, val)
	}
	return nil
}

// Splice moves every element of other in front of pos, leaving other empty.
// This function is constant time: other's chain identity is forwarded to l and
// other starts a fresh one.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) error {
	if err := l.insertable(pos); err != nil {
		return err
	}
	if l == other {
		return common.Overlap("splicing a list into itself")
	}
	if other.Empty() {
		return nil
	}
	first, last := other.head.next, other.tail.prev
	detach(first, last)
	attach(pos.n, first, last)
	other.chain.Forward(l.chain)
	other.chain = common.NewChain()
	other.head.chain = other.chain
	other.tail.chain = other.chain
	l.size += other.size
	other.size = 0
	return nil
}

// SpliceOne moves the element at it, which must belong to other, in front of
// pos. This function is constant time.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) error {
	if err := l.insertable(pos); err != nil {
		return err
	}
	other.lazyInit()
	if err := other.check(it); err != nil {
		return err
	}
	if it.n.sentinel {
		return common.OutOfBounds("splicing a sentinel position")
	}
	if l == other && (pos.n == it.n || pos.n == it.n.next) {
		return nil
	}
	detach(it.n, it.n)
	attach(pos.n, it.n, it.n)
	it.n.chain = l.chain
	other.size--
	l.size++
	return nil
}

// SpliceRange moves the elements of [first, last) of other in front of pos.
// Counting the moved elements makes it linear in the length of the range.
// When l and other are the same list, pos must not lie inside the range.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) error {
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
	count, err := span(first.n, last.n)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if l == other {
		for n := first.n; n != last.n; n = n.next {
			if n == pos.n {
				return common.Overlap("splice destination inside the moved range")
			}
		}
	}
	end := last.n.prev
	detach(first.n, end)
	attach(pos.n, first.n, end)
	for n := first.n; n != pos.n; n = n.next {
		n.chain = l.chain
	}
	other.size -= count
	l.size += count
	return nil
}
