// Package forwardlist implements a singly-linked list bounded by two sentinel
// nodes.
//
// The head sentinel sits one position before the first element and the tail
// sentinel one position after the last. Neither is ever part of the logical
// sequence, so insertion and erasure at the boundaries take the same code path
// as anywhere else in the chain. The list does not track its length.
package forwardlist

import (
	"iter"

	"hop.computer/seq/common"
)

type node[T any] struct {
	next     *node[T]
	chain    *common.Chain // nil once erased
	value    T
	sentinel bool
}

// release drops the links and value held by an unlinked node so that stale
// iterators do not keep the rest of the chain reachable.
func (n *node[T]) release() {
	var zero T
	n.next = nil
	n.chain = nil
	n.value = zero
}

// ForwardList is a singly-linked list. The zero value is an empty list ready
// to use. A ForwardList is not safe for concurrent use.
type ForwardList[T any] struct {
	chain *common.Chain
	head  *node[T] // one before the first element
	tail  *node[T] // one after the last element
}

func (l *ForwardList[T]) lazyInit() {
	if l.head != nil {
		return
	}
	l.chain = common.NewChain()
	l.tail = &node[T]{chain: l.chain, sentinel: true}
	l.head = &node[T]{next: l.tail, chain: l.chain, sentinel: true}
}

// New returns an empty list.
func New[T any]() *ForwardList[T] {
	l := &ForwardList[T]{}
	l.lazyInit()
	return l
}

// Of returns a list holding vals in order.
func Of[T any](vals ...T) *ForwardList[T] {
	l := New[T]()
	prev := l.head
	for _, v := range vals {
		prev = l.linkAfter(prev, v)
	}
	return l
}

// Repeat returns a list holding n copies of val. A negative n yields an empty
// list.
func Repeat[T any](n int, val T) *ForwardList[T] {
	l := New[T]()
	prev := l.head
	for i := 0; i < n; i++ {
		prev = l.linkAfter(prev, val)
	}
	return l
}

// FromSeq returns a list holding every value produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := New[T]()
	l.appendSeq(l.head, seq)
	return l
}

func (l *ForwardList[T]) linkAfter(prev *node[T], v T) *node[T] {
	n := &node[T]{next: prev.next, chain: l.chain, value: v}
	prev.next = n
	return n
}

func (l *ForwardList[T]) appendSeq(prev *node[T], seq iter.Seq[T]) *node[T] {
	for v := range seq {
		prev = l.linkAfter(prev, v)
	}
	return prev
}

func (l *ForwardList[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{n: n}
}

// Clone returns a deep copy of l.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	l.lazyInit()
	return FromSeq(l.All())
}

// CopyFrom replaces the contents of l with a copy of other's.
func (l *ForwardList[T]) CopyFrom(other *ForwardList[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.Clear()
	l.appendSeq(l.head, other.All())
}

// Move returns a new list holding l's chain. l is left empty and usable.
func (l *ForwardList[T]) Move() *ForwardList[T] {
	m := New[T]()
	m.Take(l)
	return m
}

// Take discards the contents of l and takes ownership of donor's chain,
// leaving donor empty. No elements are copied.
func (l *ForwardList[T]) Take(donor *ForwardList[T]) {
	if l == donor {
		return
	}
	l.lazyInit()
	donor.lazyInit()
	l.Clear()
	l.swapChains(donor)
}

// Swap exchanges the contents of l and other in constant time.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.swapChains(other)
}

// swapChains exchanges sentinel pairs together with their chain identities.
// Positions follow their nodes, so a position taken before the swap is
// accepted only by the list now holding its node.
func (l *ForwardList[T]) swapChains(other *ForwardList[T]) {
	l.chain, other.chain = other.chain, l.chain
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
}

// Assign replaces the contents of l with vals.
func (l *ForwardList[T]) Assign(vals ...T) {
	l.lazyInit()
	l.Clear()
	prev := l.head
	for _, v := range vals {
		prev = l.linkAfter(prev, v)
	}
}

// AssignN replaces the contents of l with n copies of val.
func (l *ForwardList[T]) AssignN(n int, val T) {
	l.lazyInit()
	l.Clear()
	prev := l.head
	for i := 0; i < n; i++ {
		prev = l.linkAfter(prev, val)
	}
}

// AssignSeq replaces the contents of l with the values produced by seq.
func (l *ForwardList[T]) AssignSeq(seq iter.Seq[T]) {
	l.lazyInit()
	l.Clear()
	l.appendSeq(l.head, seq)
}

// Empty reports whether l holds no elements. This function is constant time.
func (l *ForwardList[T]) Empty() bool {
	l.lazyInit()
	return l.head.next == l.tail
}

// Len counts the elements of l. This function is O(n).
func (l *ForwardList[T]) Len() int {
	l.lazyInit()
	count := 0
	for n := l.head.next; n != l.tail; n = n.next {
		count++
	}
	return count
}

// Front returns the first element.
func (l *ForwardList[T]) Front() (T, error) {
	if l.Empty() {
		var zero T
		return zero, common.OutOfBounds("front of an empty list")
	}
	return l.head.next.value, nil
}

// Clear removes every element. Positions of the removed elements are rejected
// afterwards.
func (l *ForwardList[T]) Clear() {
	l.lazyInit()
	for n := l.head.next; n != l.tail; {
		next := n.next
		n.release()
		n = next
	}
	l.head.next = l.tail
}

// BeforeBegin returns the position one before the first element. It may be
// passed to InsertAfter and EraseAfter but never dereferenced.
func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.head)
}

// Begin returns the position of the first element, or End if l is empty.
func (l *ForwardList[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.head.next)
}

// End returns the position one past the last element.
func (l *ForwardList[T]) End() Iterator[T] {
	l.lazyInit()
	return l.iter(l.tail)
}

// All returns an iterator over the elements of l, front to back.
func (l *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the elements of l.
func (l *ForwardList[T]) Values() []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
