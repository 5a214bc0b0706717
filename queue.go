// Package ringqueue provides a string queue on a circular doubly linked ring
// together with in-place transformations of the ring: middle and duplicate
// deletion, full and k-group reversal, merge sort, monotonic pruning and a
// k-way merge across a chain of queues.
package ringqueue

import (
	"github.com/timzifer/ringqueue/internal/core"
	"github.com/timzifer/ringqueue/internal/queue"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

type (
	// Queue is a string queue anchored by a sentinel. The zero value is an
	// empty, unbounded queue.
	Queue = queue.Queue
	// Element owns one string. Elements returned by RemoveHead and RemoveTail
	// belong to the caller.
	Element = queue.Element
	Option  = queue.Option
	Options = queue.Options
	// Counter is notified once per string comparison.
	Counter = queue.Counter
	// OverflowPolicy defines how a bounded queue reacts when it is full.
	OverflowPolicy = queue.OverflowPolicy

	// Chain links several queues for MergeAll.
	Chain = core.Chain
	// Context is the chain entry of one queue together with its cached size.
	Context = core.Context

	// CompareMetrics counts comparisons and k-way merges process-wide.
	CompareMetrics = telemetry.CompareMetrics
)

const (
	OverflowError      = queue.OverflowError
	OverflowDropOldest = queue.OverflowDropOldest
	OverflowDropNewest = queue.OverflowDropNewest
)

var (
	ErrNilQueue  = queue.ErrNilQueue
	ErrQueueFull = queue.ErrQueueFull
)

var (
	WithMaxLen         = queue.WithMaxLen
	WithOverflowPolicy = queue.WithOverflowPolicy
	WithCounter        = queue.WithCounter
	WithLogger         = queue.WithLogger
	WithInitial        = queue.WithInitial
)

// New creates an empty queue.
func New(options ...Option) *Queue {
	return queue.New(options...)
}

// NewChain creates a chain with one context per queue, in order.
func NewChain(queues ...*Queue) (*Chain, error) {
	return core.NewChain(queues...)
}

// MergeAll merges the queues of chain into the queue of its first context and
// returns the total number of elements.
func MergeAll(chain *Chain, descend bool) int {
	return chain.MergeAll(descend)
}

// DefaultCompareMetrics returns the comparison metrics shared by every queue
// created without WithCounter.
func DefaultCompareMetrics() *CompareMetrics {
	return telemetry.DefaultCompareMetrics()
}
