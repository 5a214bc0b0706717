// Package ring implements an intrusive circular doubly linked list.
//
// A Link is embedded into the value it links. A ring is anchored by a sentinel
// Link that has no owner; every other Link of the ring is bound to the value
// that embeds it. The type parameter keeps unrelated relations apart: a
// Link[A] can never be spliced into a ring of Link[B].
//
// The zero value of a Link is an empty ring.
package ring

import (
	"errors"
	"fmt"
	"iter"
)

// ErrMalformed is returned by Verify when the back links of a ring disagree
// with its forward links.
var ErrMalformed = errors.New("ring: malformed ring")

// Link is a member of at most one ring at a time.
type Link[T any] struct {
	next, prev *Link[T]
	owner      *T
}

// Init turns l into an empty ring. The owner is kept.
func (l *Link[T]) Init() *Link[T] {
	l.next = l
	l.prev = l
	return l
}

// Bind initialises l and records the value that embeds it.
func (l *Link[T]) Bind(owner *T) *Link[T] {
	l.owner = owner
	return l.Init()
}

func (l *Link[T]) lazyInit() {
	if l.next == nil {
		l.Init()
	}
}

// Owner returns the value l is embedded in, or nil for a sentinel.
func (l *Link[T]) Owner() *T {
	return l.owner
}

func (l *Link[T]) Next() *Link[T] {
	l.lazyInit()
	return l.next
}

func (l *Link[T]) Prev() *Link[T] {
	l.lazyInit()
	return l.prev
}

// Empty reports whether l has no other members.
func (l *Link[T]) Empty() bool {
	return l.next == nil || l.next == l
}

// Singular reports whether the ring anchored at l holds exactly one member.
func (l *Link[T]) Singular() bool {
	return !l.Empty() && l.next == l.prev
}

func link[T any](l, prev, next *Link[T]) {
	next.prev = l
	l.next = next
	l.prev = prev
	prev.next = l
}

func detach[T any](l *Link[T]) {
	l.prev.next = l.next
	l.next.prev = l.prev
}

// InsertAfter links l into the ring of at, directly after at. l must not be
// a member of another ring.
func (l *Link[T]) InsertAfter(at *Link[T]) {
	at.lazyInit()
	link(l, at, at.next)
}

// InsertBefore links l into the ring of at, directly before at.
func (l *Link[T]) InsertBefore(at *Link[T]) {
	at.lazyInit()
	link(l, at.prev, at)
}

// Unlink removes l from its ring and leaves it as an empty ring of its own,
// ready to be linked again.
func (l *Link[T]) Unlink() {
	if l.Empty() {
		l.Init()
		return
	}
	detach(l)
	l.Init()
}

// MoveAfter unlinks l and relinks it directly after at.
func (l *Link[T]) MoveAfter(at *Link[T]) {
	if l == at {
		return
	}
	l.Unlink()
	l.InsertAfter(at)
}

// MoveBefore unlinks l and relinks it directly before at.
func (l *Link[T]) MoveBefore(at *Link[T]) {
	if l == at {
		return
	}
	l.Unlink()
	l.InsertBefore(at)
}

func splice[T any](src, prev, next *Link[T]) {
	first := src.next
	last := src.prev

	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last
}

// SpliceAfter moves every member of the ring anchored at src into the ring of
// at, directly after at, keeping their order. src is left empty.
func SpliceAfter[T any](src, at *Link[T]) {
	if src.Empty() {
		return
	}
	at.lazyInit()
	splice(src, at, at.next)
	src.Init()
}

// SpliceBefore is SpliceAfter with the members placed directly before at.
func SpliceBefore[T any](src, at *Link[T]) {
	if src.Empty() {
		return
	}
	at.lazyInit()
	splice(src, at.prev, at)
	src.Init()
}

// CutAfter moves the members from head's first member up to and including last
// into dst, which must be an empty sentinel. When last is head itself the cut
// range is empty.
func CutAfter[T any](dst, head, last *Link[T]) {
	dst.Init()
	if head.Empty() || last == head {
		return
	}
	first := head.next

	head.next = last.next
	last.next.prev = head

	dst.next = first
	first.prev = dst
	dst.prev = last
	last.next = dst
}

// Len counts the members of the ring anchored at head.
func Len[T any](head *Link[T]) int {
	n := 0
	for l := head.Next(); l != head; l = l.next {
		n++
	}
	return n
}

// All yields the owners of the ring anchored at head, front to back. The
// yielded value must stay linked until the loop body returns.
func All[T any](head *Link[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l := head.Next(); l != head; l = l.next {
			if !yield(l.owner) {
				return
			}
		}
	}
}

// AllSafe is All, except that the loop body may unlink the yielded value.
func AllSafe[T any](head *Link[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l, next := head.Next(), head.Next().next; l != head; l, next = next, next.next {
			if !yield(l.owner) {
				return
			}
		}
	}
}

// Verify walks the ring anchored at head and checks that every member's
// neighbours point back at it.
func Verify[T any](head *Link[T]) error {
	l := head.Next()
	for i := 0; ; i++ {
		if l.next == nil || l.prev == nil {
			return fmt.Errorf("%w: nil link at position %d", ErrMalformed, i)
		}
		if l.next.prev != l || l.prev.next != l {
			return fmt.Errorf("%w: inconsistent link at position %d", ErrMalformed, i)
		}
		if l == head {
			return nil
		}
		l = l.next
	}
}
