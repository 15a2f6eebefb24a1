package forwardlist

import (
	"golang.org/x/exp/constraints"

	"hop.computer/seq/common"
)

// Reverse reverses the order of the elements. It builds a new chain by
// prepending every element, so it allocates one node per element and
// invalidates every position into l except BeforeBegin and End.
func (l *ForwardList[T]) Reverse() {
	l.lazyInit()
	first := l.tail
	for n := l.head.next; n != l.tail; {
		first = &node[T]{next: first, chain: l.chain, value: n.value}
		next := n.next
		n.release()
		n = next
	}
	l.head.next = first
}

// SortFunc orders the elements so that less never reports an element as
// smaller than its predecessor. It is a bubble sort swapping values in place:
// O(n²) comparisons, no relinking, and stable.
func (l *ForwardList[T]) SortFunc(less func(a, b T) bool) {
	l.lazyInit()
	for i := l.head.next; i != l.tail; i = i.next {
		for a, b := l.head.next, l.head.next.next; b != l.tail; a, b = b, b.next {
			if less(b.value, a.value) {
				a.value, b.value = b.value, a.value
			}
		}
	}
}

// Sort orders the elements of l ascending.
func Sort[T constraints.Ordered](l *ForwardList[T]) {
	l.SortFunc(common.Less[T])
}

// MergeFunc sorts both l and other with SortFunc, then relinks every node of
// other into l in order, leaving other empty. On ties the element already in l
// comes first. An empty l simply takes other's chain without sorting; an empty
// other leaves l untouched.
func (l *ForwardList[T]) MergeFunc(other *ForwardList[T], less func(a, b T) bool) {
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

	a, b := l.head.next, other.head.next
	last := l.head
	for a != l.tail && b != other.tail {
		if less(b.value, a.value) {
			b.chain = l.chain
			last.next = b
			last, b = b, b.next
		} else {
			last.next = a
			last, a = a, a.next
		}
	}
	if a != l.tail {
		last.next = a
	} else {
		last.next = b
		for last.next != other.tail {
			last = last.next
			last.chain = l.chain
		}
		last.next = l.tail
	}
	other.head.next = other.tail
}

// Merge is MergeFunc with ascending order.
func Merge[T constraints.Ordered](l, other *ForwardList[T]) {
	l.MergeFunc(other, common.Less[T])
}

// RemoveIf erases every element for which pred returns true, keeping the order
// of the rest, and returns how many were erased.
func (l *ForwardList[T]) RemoveIf(pred func(T) bool) int {
	l.lazyInit()
	removed := 0
	for prev := l.head; prev.next != l.tail; {
		if victim := prev.next; pred(victim.value) {
			prev.next = victim.next
			victim.release()
			removed++
		} else {
			prev = victim
		}
	}
	return removed
}

// Remove erases every element equal to v.
func Remove[T comparable](l *ForwardList[T], v T) int {
	return l.RemoveIf(func(e T) bool { return e == v })
}

// UniqueFunc erases every element e for which eq(e, kept) is true, where kept
// is the nearest surviving element before e. It makes a single pass and
// returns how many elements were erased.
func (l *ForwardList[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	for cur := l.head.next; cur.next != l.tail; {
		if victim := cur.next; eq(victim.value, cur.value) {
			cur.next = victim.next
			victim.release()
			removed++
		} else {
			cur = victim
		}
	}
	return removed
}

// Unique erases consecutive duplicates.
func Unique[T comparable](l *ForwardList[T]) int {
	return l.UniqueFunc(common.Equal[T])
}
