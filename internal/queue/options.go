package queue

import (
	"log"

	"github.com/timzifer/ringqueue/internal/telemetry"
)

// OverflowPolicy defines how a bounded queue reacts when it reaches MaxLen.
type OverflowPolicy int

const (
	// OverflowError makes the insert fail with ErrQueueFull.
	OverflowError OverflowPolicy = iota
	// OverflowDropOldest releases the element at the opposite end of the
	// insertion to make room.
	OverflowDropOldest
	// OverflowDropNewest drops the string that is being inserted.
	OverflowDropNewest
)

// Counter is notified once per string comparison.
type Counter interface {
	Inc()
}

type Options struct {
	MaxLen         int
	OverflowPolicy OverflowPolicy
	Counter        Counter
	Logger         *log.Logger

	initial []string
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		OverflowPolicy: OverflowError,
		Counter:        telemetry.DefaultCompareMetrics(),
	}
}

// WithMaxLen bounds the queue. A non-positive n means no bound.
//
// The bound is enforced on insertion only. Merge and Chain.MergeAll may leave
// a bounded queue above MaxLen; later inserts then evict or reject one element
// at a time according to the overflow policy.
func WithMaxLen(n int) Option {
	return func(opts *Options) {
		opts.MaxLen = n
	}
}

func WithOverflowPolicy(policy OverflowPolicy) Option {
	return func(opts *Options) {
		opts.OverflowPolicy = policy
	}
}

// WithCounter replaces the process-wide comparison metrics as the comparison
// counter of the queue. A nil counter restores the default.
func WithCounter(c Counter) Option {
	return func(opts *Options) {
		opts.Counter = c
	}
}

func WithLogger(l *log.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithInitial fills the new queue with values, front to back. The values go
// through the overflow policy of the queue; with OverflowError the values
// beyond MaxLen are dropped.
func WithInitial(values ...string) Option {
	return func(opts *Options) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
