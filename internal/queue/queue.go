package queue

import (
	"errors"
	"iter"

	"github.com/timzifer/ringqueue/internal/ring"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

var (
	// ErrNilQueue is returned when inserting into a nil queue.
	ErrNilQueue = errors.New("ringqueue: nil queue")
	// ErrQueueFull is returned when inserting into a full queue while the
	// overflow policy is OverflowError.
	ErrQueueFull = errors.New("ringqueue: queue is full")
)

// Queue is a string queue on a circular ring anchored by head.
// The zero value is an empty, unbounded queue.
type Queue struct {
	head ring.Link[Element]
	n    int
	opts Options
}

func New(options ...Option) *Queue {
	q := &Queue{opts: defaultOptions()}
	q.head.Init()

	for _, opt := range options {
		opt(&q.opts)
	}

	for _, v := range q.opts.initial {
		q.insert(v, false)
	}
	q.opts.initial = nil

	return q
}

// Free releases every element. The queue stays usable and empty.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for e := range ring.AllSafe(&q.head) {
		e.link.Unlink()
		e.Release()
	}
	q.n = 0
}

// InsertHead copies s into a new element at the front of the queue.
// The returned boolean reports whether the overflow policy dropped an element.
func (q *Queue) InsertHead(s string) (bool, error) {
	if q == nil {
		return false, ErrNilQueue
	}
	return q.insert(s, true)
}

// InsertTail copies s into a new element at the back of the queue.
func (q *Queue) InsertTail(s string) (bool, error) {
	if q == nil {
		return false, ErrNilQueue
	}
	return q.insert(s, false)
}

func (q *Queue) insert(s string, front bool) (bool, error) {
	dropped := false
	if q.opts.MaxLen > 0 && q.n >= q.opts.MaxLen {
		switch q.opts.OverflowPolicy {
		case OverflowDropOldest:
			dropped = q.dropOldest(front)
		case OverflowDropNewest:
			q.logf("ringqueue: queue full (max %d), dropped new %q", q.opts.MaxLen, s)
			return true, nil
		default:
			return false, ErrQueueFull
		}
	}

	e := newElement(s)
	if front {
		e.link.InsertAfter(&q.head)
	} else {
		e.link.InsertBefore(&q.head)
	}
	q.n++
	return dropped, nil
}

// dropOldest evicts from the end opposite to the insertion.
func (q *Queue) dropOldest(front bool) bool {
	if q.head.Empty() {
		return false
	}
	victim := q.head.Next()
	if front {
		victim = q.head.Prev()
	}
	e := elementOf(victim)
	q.logf("ringqueue: queue full (max %d), evicted %q", q.opts.MaxLen, e.Value)
	q.release(e)
	return true
}

// RemoveHead unlinks the front element and hands it to the caller. If buf is
// not empty the value is copied into it as described for Element.CopyTo.
// It returns nil for a nil or empty queue.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is RemoveHead for the back of the queue.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

func (q *Queue) remove(l *ring.Link[Element], buf []byte) *Element {
	e := elementOf(l)
	l.Unlink()
	q.n--
	e.CopyTo(buf)
	return e
}

// release unlinks and releases an element of q.
func (q *Queue) release(e *Element) {
	e.link.Unlink()
	e.Release()
	q.n--
}

// Size counts the elements by walking the ring.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return ring.Len(&q.head)
}

// Len returns the element count maintained by the queue operations. It always
// equals Size.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.n
}

func (q *Queue) Empty() bool {
	return q == nil || q.head.Empty()
}

// Values returns a copy of the queue contents for inspection/testing.
func (q *Queue) Values() []string {
	if q.Empty() {
		return nil
	}
	result := make([]string, 0, q.n)
	for e := range ring.All(&q.head) {
		result = append(result, e.Value)
	}
	return result
}

// All yields the elements front to back. The loop body may not modify q.
func (q *Queue) All() iter.Seq[*Element] {
	if q == nil {
		return func(func(*Element) bool) {}
	}
	return ring.All(&q.head)
}

// Verify checks the ring invariants of q.
func (q *Queue) Verify() error {
	if q == nil {
		return nil
	}
	return ring.Verify(&q.head)
}

func (q *Queue) counter() Counter {
	if q.opts.Counter == nil {
		return telemetry.DefaultCompareMetrics()
	}
	return q.opts.Counter
}

func (q *Queue) logf(format string, args ...any) {
	if q.opts.Logger == nil {
		return
	}
	q.opts.Logger.Printf(format, args...)
}
