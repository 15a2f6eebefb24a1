package list

import (
	"golang.org/x/exp/constraints"

	"hop.computer/seq/common"
)

// Reverse reverses the order of the elements in place by swapping the links of
// every node. Positions stay attached to their elements.
func (l *List[T]) Reverse() {
	l.lazyInit()
	if l.size < 2 {
		return
	}
	first, last := l.head.next, l.tail.prev
	for n := first; n != l.tail; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}
	first.next = l.tail
	last.prev = l.head
	l.head.next = last
	l.tail.prev = first
}

// SortFunc bubble-sorts the elements by swapping values, so that less never
// reports an element as smaller than its predecessor. It is O(n²) and stable.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.lazyInit()
	for i := 0; i < l.size; i++ {
		for a, b := l.head.next, l.head.next.next; b != l.tail; a, b = b, b.next {
			if less(b.value, a.value) {
				a.value, b.value = b.value, a.value
			}
		}
	}
}

// Sort orders the elements of l ascending.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(common.Less[T])
}

// MergeFunc sorts l and other with SortFunc and then moves every node of other
// into l in order, leaving other empty. Elements of l precede equal elements of
// other. When l is empty it takes other's chain without sorting.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	if other.Empty() {
		return
	}
	if l.Empty() {
		l.swapChains(other)
		return
	}

	l.SortFunc(less)
	other.SortFunc(less)

	a := l.head.next
	for b := other.head.next; b != other.tail; {
		if a != l.tail && !less(b.value, a.value) {
			a = a.next
			continue
		}
		next := b.next
		detach(b, b)
		attach(a, b, b)
		b.chain = l.chain
		b = next
	}
	l.size += other.size
	other.size = 0
}

// Merge is MergeFunc with ascending order.
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, common.Less[T])
}

// RemoveIf erases every element for which pred returns true and returns how
// many were erased.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	l.lazyInit()
	removed := 0
	for n := l.head.next; n != l.tail; {
		if pred(n.value) {
			n = l.unlink(n)
			removed++
		} else {
			n = n.next
		}
	}
	return removed
}

// Remove erases every element equal to v.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(e T) bool { return e == v })
}

// UniqueFunc erases every element e for which eq(e, kept) is true, where kept
// is the nearest surviving element before e, and returns how many were erased.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	for cur := l.head.next; cur.next != l.tail; {
		if eq(cur.next.value, cur.value) {
			l.unlink(cur.next)
			removed++
		} else {
			cur = cur.next
		}
	}
	return removed
}

// Unique erases consecutive duplicates.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(common.Equal[T])
}
