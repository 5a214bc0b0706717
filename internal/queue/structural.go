package queue

import "github.com/timzifer/ringqueue/internal/ring"

// DeleteMid releases the element at index len/2, counted from the front.
// It returns false for a nil or empty queue.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.head.Empty() {
		return false
	}

	// Two runners start at the sentinel and meet in the middle.
	front, back := &q.head, &q.head
	for {
		back = back.Prev()
		front = front.Next()
		if front == back || back.Next() == front {
			break
		}
	}

	q.release(elementOf(front))
	return true
}

// DeleteDup releases every element that belongs to a run of equal adjacent
// values, leaving none of the run behind. Equal values that are not adjacent
// are kept. It returns false only for a nil queue.
func (q *Queue) DeleteDup() bool {
	if q == nil {
		return false
	}

	for cur := q.head.Next(); cur != &q.head; {
		value := elementOf(cur).Value
		dup := false
		for next := cur.Next(); next != &q.head && elementOf(next).Value == value; next = cur.Next() {
			dup = true
			q.release(elementOf(next))
		}

		next := cur.Next()
		if dup {
			q.release(elementOf(cur))
		}
		cur = next
	}
	return true
}

// Reverse reverses the queue in place.
func (q *Queue) Reverse() {
	if q == nil || q.head.Empty() {
		return
	}
	reverseRing(&q.head)
}

func reverseRing(head *ring.Link[Element]) {
	for cur := head.Next(); cur != head; {
		next := cur.Next()
		cur.MoveAfter(head)
		cur = next
	}
}

// ReverseK reverses every consecutive block of k elements, starting at the
// front. A trailing block shorter than k keeps its order, so k > Len and
// k <= 1 leave the queue untouched.
func (q *Queue) ReverseK(k int) {
	if q == nil || q.head.Empty() || k <= 1 {
		return
	}

	var block ring.Link[Element]
	anchor := &q.head
	count := 0
	for cur := q.head.Next(); cur != &q.head; {
		next := cur.Next()
		count++
		if count == k {
			ring.CutAfter(&block, anchor, cur)
			reverseRing(&block)
			ring.SpliceAfter(&block, anchor)
			anchor = next.Prev()
			count = 0
		}
		cur = next
	}
}

// Swap swaps every two adjacent elements.
func (q *Queue) Swap() {
	q.ReverseK(2)
}
