package queue

import (
	"strings"

	"github.com/timzifer/ringqueue/internal/ring"
)

// Element owns one string of a queue.
type Element struct {
	Value string

	link ring.Link[Element]
}

func newElement(s string) *Element {
	e := &Element{Value: strings.Clone(s)}
	e.link.Bind(e)
	return e
}

func elementOf(l *ring.Link[Element]) *Element {
	return l.Owner()
}

// Release ends the life of an element that is no longer part of a queue,
// such as one returned by RemoveHead. An element still linked into a queue is
// left alone; use the queue's own operations to drop it. Releasing twice is
// harmless.
func (e *Element) Release() {
	if e == nil || !e.link.Empty() {
		return
	}
	e.Value = ""
}

// CopyTo copies the value of e into buf, truncated to len(buf)-1 bytes and
// followed by a zero byte. The rest of buf is zeroed. It returns the number of
// value bytes copied.
func (e *Element) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], e.Value)
	clear(buf[n:])
	return n
}
