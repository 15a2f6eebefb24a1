// Package list implements a doubly-linked list bounded by two sentinel nodes.
package list

import (
	"iter"

	"hop.computer/seq/common"
)

type node[T any] struct {
	next, prev *node[T]
	chain      *common.Chain // nil once erased
	value      T
	sentinel   bool
}

func (n *node[T]) release() {
	var zero T
	n.next = nil
	n.prev = nil
	n.chain = nil
	n.value = zero
}

// List implements a doubly linked-list. The head sentinel precedes the first
// element and the tail sentinel follows the last; both live as long as the
// list. The size is tracked internally, so Len is constant time. The zero value
// is an empty list ready to use. The list is not thread-safe.
type List[T any] struct {
	chain      *common.Chain
	head, tail *node[T]
	size       int
}

func (l *List[T]) lazyInit() {
	if l.head != nil {
		return
	}
	l.chain = common.NewChain()
	l.head = &node[T]{sentinel: true, chain: l.chain}
	l.tail = &node[T]{sentinel: true, chain: l.chain, prev: l.head}
	l.head.next = l.tail
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// Of returns a list holding vals in order.
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.linkBefore(l.tail, v)
	}
	return l
}

// Repeat returns a list holding n copies of val.
func Repeat[T any](n int, val T) *List[T] {
	l := New[T]()
	for i := 0; i < n; i++ {
		l.linkBefore(l.tail, val)
	}
	return l
}

// FromSeq returns a list holding every value produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.linkBefore(l.tail, v)
	}
	return l
}

func (l *List[T]) linkBefore(at *node[T], v T) *node[T] {
	n := &node[T]{prev: at.prev, next: at, chain: l.chain, value: v}
	at.prev.next = n
	at.prev = n
	l.size++
	return n
}

func (l *List[T]) unlink(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = next
	next.prev = n.prev
	n.release()
	l.size--
	return next
}

// detach cuts the chain first..last (inclusive) out of whatever list holds it.
// Size counters are the caller's business.
func detach[T any](first, last *node[T]) {
	first.prev.next = last.next
	last.next.prev = first.prev
}

// attach links the chain first..last in front of at.
func attach[T any](at, first, last *node[T]) {
	first.prev = at.prev
	last.next = at
	at.prev.next = first
	at.prev = last
}

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{n: n}
}

// Clone returns a deep copy of l.
func (l *List[T]) Clone() *List[T] {
	l.lazyInit()
	return FromSeq(l.All())
}

// CopyFrom replaces the contents of l with a copy of other's.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	for v := range other.All() {
		l.linkBefore(l.tail, v)
	}
}

// Move returns a new list holding l's chain. l is left empty and usable.
func (l *List[T]) Move() *List[T] {
	m := New[T]()
	m.Take(l)
	return m
}

// Take discards the contents of l and takes ownership of donor's chain,
// leaving donor empty.
func (l *List[T]) Take(donor *List[T]) {
	if l == donor {
		return
	}
	donor.lazyInit()
	l.Clear()
	l.swapChains(donor)
}

// Swap exchanges the contents of l and other. This function is constant time.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.swapChains(other)
}

// swapChains exchanges sentinel pairs together with their chain identities, so
// positions follow their nodes into the other list.
func (l *List[T]) swapChains(other *List[T]) {
	l.chain, other.chain = other.chain, l.chain
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// Assign replaces the contents of l with vals.
func (l *List[T]) Assign(vals ...T) {
	l.Clear()
	for _, v := range vals {
		l.linkBefore(l.tail, v)
	}
}

// AssignN replaces the contents of l with n copies of val.
func (l *List[T]) AssignN(n int, val T) {
	l.Clear()
	for i := 0; i < n; i++ {
		l.linkBefore(l.tail, val)
	}
}

// AssignSeq replaces the contents of l with the values produced by seq.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) {
	l.Clear()
	for v := range seq {
		l.linkBefore(l.tail, v)
	}
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first item in the list. This function is constant time.
func (l *List[T]) Front() (T, error) {
	if l.Empty() {
		var zero T
		return zero, common.OutOfBounds("front of an empty list")
	}
	return l.head.next.value, nil
}

// Back returns the last item in the list. This function is constant time.
func (l *List[T]) Back() (T, error) {
	if l.Empty() {
		var zero T
		return zero, common.OutOfBounds("back of an empty list")
	}
	return l.tail.prev.value, nil
}

// Clear removes every element. Positions of the removed elements are rejected
// afterwards.
func (l *List[T]) Clear() {
	l.lazyInit()
	for n := l.head.next; n != l.tail; {
		next := n.next
		n.release()
		n = next
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

// Begin returns the position of the first element, or End if l is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.head.next)
}

// End returns the position one past the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.iter(l.tail)
}

// RBegin returns the reverse position of the last element, or REnd if l is
// empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: l.tail.prev}
}

// REnd returns the reverse position one before the first element.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: l.head}
}

// All returns an iterator over the elements of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of l, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for n := l.tail.prev; n != l.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the elements of l.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
