package core

import (
	"errors"
	"iter"
	"log"

	"github.com/timzifer/ringqueue/internal/queue"
	"github.com/timzifer/ringqueue/internal/ring"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// Context verkettet eine Queue mit weiteren Queues für den k-Wege-Merge.
//
// Size ist die zwischengespeicherte Länge der Queue. Der Chain-Link ist eine
// eigene Relation und unabhängig von den Element-Links der Queue.
type Context struct {
	Queue *queue.Queue
	Size  int
	ID    int

	chain ring.Link[Context]
}

// Chain ist der Anker einer Kette von Contexts. Der Nullwert ist eine leere Kette.
type Chain struct {
	head   ring.Link[Context]
	nextID int
	logger *log.Logger
}

// NewChain erzeugt eine Kette mit je einem Context pro Queue.
func NewChain(queues ...*queue.Queue) (*Chain, error) {
	c := &Chain{}
	c.head.Init()
	for _, q := range queues {
		if _, err := c.Add(q); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetLogger setzt den Logger für Merge-Zusammenfassungen.
func (c *Chain) SetLogger(l *log.Logger) {
	c.logger = l
}

// Add hängt einen Context für q an das Ende der Kette.
func (c *Chain) Add(q *queue.Queue) (*Context, error) {
	if q == nil {
		return nil, errors.New("nil queue")
	}
	ctx := &Context{Queue: q, Size: q.Size(), ID: c.nextID}
	c.nextID++
	ctx.chain.Bind(ctx)
	ctx.chain.InsertBefore(&c.head)
	return ctx, nil
}

// Len zählt die Contexts der Kette.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return ring.Len(&c.head)
}

// First liefert den ersten Context oder nil.
func (c *Chain) First() *Context {
	if c == nil || c.head.Empty() {
		return nil
	}
	return c.head.Next().Owner()
}

// Contexts liefert die Contexts in Kettenreihenfolge.
func (c *Chain) Contexts() iter.Seq[*Context] {
	if c == nil {
		return func(func(*Context) bool) {}
	}
	return ring.All(&c.head)
}

// MergeAll führt alle Queues der Kette in die Queue des ersten Contexts
// zusammen. Die Queues müssen gemäß descend sortiert sein; das wird nicht
// geprüft. Jeder geleerte Context wandert an das Ende der Kette und bleibt
// erhalten. Das Ergebnis ist die Gesamtzahl der Elemente.
func (c *Chain) MergeAll(descend bool) int {
	if c == nil || c.head.Empty() {
		return 0
	}

	first := c.First()
	if c.head.Singular() {
		return first.Size
	}

	finish := telemetry.TraceMerge()

	size := 0
	for n := ring.Len(&c.head) - 1; n > 0; n-- {
		second := first.chain.Next().Owner()
		size = first.Queue.Merge(second.Queue, descend)
		second.Size = 0
		second.chain.MoveBefore(&c.head)
	}
	first.Size = size

	finish(size)
	if c.logger != nil {
		c.logger.Printf("ringqueue: merged chain into context %d, %d elements", first.ID, size)
	}
	return size
}
