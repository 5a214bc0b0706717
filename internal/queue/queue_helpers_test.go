package queue

import "testing"

type callCounter int

func (c *callCounter) Inc() { *c++ }

func newQueue(values ...string) *Queue {
	return New(WithInitial(values...))
}

func expectValues(t *testing.T, q *Queue, expected ...string) {
	t.Helper()
	if err := q.Verify(); err != nil {
		t.Fatalf("queue verification failed: %v", err)
	}
	got := q.Values()
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
	if q.Len() != q.Size() {
		t.Fatalf("cached length %d disagrees with size %d", q.Len(), q.Size())
	}
}
