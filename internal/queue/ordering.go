package queue

import "github.com/timzifer/ringqueue/internal/ring"

// takeRight reports whether the front of right goes before the front of left.
// Equal fronts keep left first when ascending and take right first when
// descending.
func takeRight(left, right *ring.Link[Element], descend bool, c Counter) bool {
	c.Inc()
	return descend != (elementOf(left.Next()).Value > elementOf(right.Next()).Value)
}

// mergeRings merges the sorted ring right into the sorted ring left and
// returns the number of elements in left afterwards. right is left empty.
func mergeRings(left, right *ring.Link[Element], descend bool, c Counter) int {
	if left.Empty() || right.Empty() {
		ring.SpliceAfter(right, left)
		return ring.Len(left)
	}

	var merged ring.Link[Element]
	count := 0
	for {
		count++
		if takeRight(left, right, descend, c) {
			right.Next().MoveBefore(&merged)
			if right.Empty() {
				count += ring.Len(left)
				ring.SpliceAfter(&merged, left)
				return count
			}
		} else {
			left.Next().MoveBefore(&merged)
			if left.Empty() {
				count += ring.Len(right)
				ring.SpliceAfter(right, left)
				ring.SpliceAfter(&merged, left)
				return count
			}
		}
	}
}

// Merge merges the sorted queue other into the sorted queue q and returns the
// resulting length of q. other is left empty. Neither queue is checked for
// sortedness. It returns 0 without changes when either queue is nil.
func (q *Queue) Merge(other *Queue, descend bool) int {
	if q == nil || other == nil {
		return 0
	}
	if q == other {
		return q.Size()
	}

	n := mergeRings(&q.head, &other.head, descend, q.counter())
	q.n = n
	other.n = 0
	return n
}

// Sort sorts the queue, non-decreasing or, with descend, non-increasing.
// Equal values keep their relative order when ascending.
func (q *Queue) Sort(descend bool) {
	if q == nil || q.head.Empty() || q.head.Singular() {
		return
	}
	sortRing(&q.head, descend, q.counter())
}

func sortRing(head *ring.Link[Element], descend bool, c Counter) {
	if head.Empty() || head.Singular() {
		return
	}

	front, back := head, head
	for {
		front = front.Next()
		back = back.Prev()
		if front == back || front.Next() == back {
			break
		}
	}

	var lower ring.Link[Element]
	ring.CutAfter(&lower, head, front)

	sortRing(&lower, descend, c)
	sortRing(head, descend, c)

	mergeRings(&lower, head, descend, c)
	ring.SpliceAfter(&lower, head)
}

// Ascend releases every element that has a strictly smaller value somewhere
// behind it, leaving a non-decreasing queue. It returns the remaining length,
// or 0 for a nil or empty queue.
func (q *Queue) Ascend() int {
	return q.prune(func(kept, cur string) bool { return cur > kept })
}

// Descend releases every element that has a strictly greater value somewhere
// behind it, leaving a non-increasing queue.
func (q *Queue) Descend() int {
	return q.prune(func(kept, cur string) bool { return cur < kept })
}

// prune walks from the back to the front and releases every element that
// drop reports as dominated by the nearest kept element behind it.
func (q *Queue) prune(drop func(kept, cur string) bool) int {
	if q == nil || q.head.Empty() {
		return 0
	}

	kept := elementOf(q.head.Prev())
	count := 1
	for cur := kept.link.Prev(); cur != &q.head; {
		prev := cur.Prev()
		e := elementOf(cur)
		if drop(kept.Value, e.Value) {
			q.release(e)
		} else {
			kept = e
			count++
		}
		cur = prev
	}
	return count
}
