package queue

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestInsertAndRemoveBothEnds(t *testing.T) {
	q := New()

	if dropped, err := q.InsertTail("b"); dropped || err != nil {
		t.Fatalf("unexpected insert result dropped=%v err=%v", dropped, err)
	}
	if dropped, err := q.InsertHead("a"); dropped || err != nil {
		t.Fatalf("unexpected insert result dropped=%v err=%v", dropped, err)
	}
	if dropped, err := q.InsertTail("c"); dropped || err != nil {
		t.Fatalf("unexpected insert result dropped=%v err=%v", dropped, err)
	}
	expectValues(t, q, "a", "b", "c")

	if e := q.RemoveHead(nil); e == nil || e.Value != "a" {
		t.Fatalf("expected RemoveHead to return a, got %v", e)
	}
	if e := q.RemoveTail(nil); e == nil || e.Value != "c" {
		t.Fatalf("expected RemoveTail to return c, got %v", e)
	}
	expectValues(t, q, "b")

	if e := q.RemoveTail(nil); e == nil || e.Value != "b" {
		t.Fatalf("expected RemoveTail to return b, got %v", e)
	}
	if e := q.RemoveHead(nil); e != nil {
		t.Fatalf("expected RemoveHead on empty queue to return nil, got %v", e)
	}
	if q.Size() != 0 {
		t.Fatalf("expected empty queue, got size %d", q.Size())
	}
}

func TestSizeTracksInsertAndRemove(t *testing.T) {
	q := New()
	for i := 0; i < 10; i++ {
		before := q.Size()
		q.InsertTail(strings.Repeat("x", i))
		if q.Size() != before+1 {
			t.Fatalf("expected size %d after insert, got %d", before+1, q.Size())
		}
	}
	for i := 0; i < 10; i++ {
		before := q.Size()
		q.RemoveHead(nil)
		if q.Size() != before-1 {
			t.Fatalf("expected size %d after remove, got %d", before-1, q.Size())
		}
	}
	expectValues(t, q)
}

func TestRemoveCopiesTruncatedValue(t *testing.T) {
	q := newQueue("hello", "hi")

	buf := []byte("XXXXXX")
	e := q.RemoveHead(buf[:4])
	if e == nil || e.Value != "hello" {
		t.Fatalf("expected removed element hello, got %v", e)
	}
	if got := string(buf); got != "hel\x00XX" {
		t.Fatalf("expected truncated copy within capacity, got %q", got)
	}

	buf = []byte("XXXXXX")
	q.RemoveHead(buf)
	if got := string(buf); got != "hi\x00\x00\x00\x00" {
		t.Fatalf("expected zero-filled copy, got %q", got)
	}
}

func TestRemoveWithEmptyBuffer(t *testing.T) {
	q := newQueue("a")
	if e := q.RemoveTail([]byte{}); e == nil || e.Value != "a" {
		t.Fatalf("expected element a, got %v", e)
	}
}

func TestInsertCopiesInput(t *testing.T) {
	src := []byte("abc")
	q := New()
	q.InsertTail(string(src))
	src[0] = 'z'

	expectValues(t, q, "abc")
}

func TestRemovedElementBelongsToCaller(t *testing.T) {
	q := newQueue("a", "b")

	e := q.RemoveHead(nil)
	if e == nil {
		t.Fatalf("expected element")
	}
	q.Free()
	if e.Value != "a" {
		t.Fatalf("expected removed element to survive Free, got %q", e.Value)
	}

	e.Release()
	e.Release()
	if e.Value != "" {
		t.Fatalf("expected released element to drop its value")
	}
}

func TestNilQueue(t *testing.T) {
	var q *Queue

	if _, err := q.InsertHead("a"); !errors.Is(err, ErrNilQueue) {
		t.Fatalf("expected ErrNilQueue, got %v", err)
	}
	if _, err := q.InsertTail("a"); !errors.Is(err, ErrNilQueue) {
		t.Fatalf("expected ErrNilQueue, got %v", err)
	}
	if q.RemoveHead(nil) != nil || q.RemoveTail(nil) != nil {
		t.Fatalf("expected nil queue removes to return nil")
	}
	if q.Size() != 0 || q.Len() != 0 || !q.Empty() {
		t.Fatalf("expected nil queue to be empty")
	}
	if q.DeleteMid() || q.DeleteDup() {
		t.Fatalf("expected nil queue deletes to fail")
	}
	if q.Ascend() != 0 || q.Descend() != 0 {
		t.Fatalf("expected nil queue filters to return 0")
	}
	if q.Merge(New(), false) != 0 || New().Merge(q, false) != 0 {
		t.Fatalf("expected merge with nil queue to return 0")
	}
	for range q.All() {
		t.Fatalf("expected nil queue to yield nothing")
	}

	q.Free()
	q.Reverse()
	q.ReverseK(2)
	q.Swap()
	q.Sort(false)
}

func TestZeroValueQueue(t *testing.T) {
	var q Queue

	if !q.Empty() || q.Size() != 0 {
		t.Fatalf("expected zero value queue to be empty")
	}
	q.InsertTail("b")
	q.InsertHead("a")
	q.Sort(true)
	expectValues(t, &q, "b", "a")
}

func TestFreeReleasesElements(t *testing.T) {
	q := newQueue("a", "b", "c")
	q.Free()
	expectValues(t, q)

	q.InsertTail("d")
	expectValues(t, q, "d")
}

func TestOverflowError(t *testing.T) {
	q := New(WithMaxLen(2))
	q.InsertTail("a")
	q.InsertTail("b")

	if _, err := q.InsertTail("c"); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	if _, err := q.InsertHead("c"); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	expectValues(t, q, "a", "b")
}

func TestOverflowDropOldest(t *testing.T) {
	var buf bytes.Buffer
	q := New(
		WithMaxLen(3),
		WithOverflowPolicy(OverflowDropOldest),
		WithLogger(log.New(&buf, "", 0)),
		WithInitial("a", "b", "c"),
	)

	if dropped, err := q.InsertTail("d"); !dropped || err != nil {
		t.Fatalf("expected tail insert to evict, got dropped=%v err=%v", dropped, err)
	}
	expectValues(t, q, "b", "c", "d")

	if dropped, err := q.InsertHead("a"); !dropped || err != nil {
		t.Fatalf("expected head insert to evict, got dropped=%v err=%v", dropped, err)
	}
	expectValues(t, q, "a", "b", "c")

	if !strings.Contains(buf.String(), `evicted "a"`) || !strings.Contains(buf.String(), `evicted "d"`) {
		t.Fatalf("expected evictions to be logged, got %q", buf.String())
	}
}

func TestOverflowDropNewest(t *testing.T) {
	q := New(WithMaxLen(2), WithOverflowPolicy(OverflowDropNewest))
	q.InsertTail("a")
	q.InsertTail("b")

	if dropped, err := q.InsertTail("c"); !dropped || err != nil {
		t.Fatalf("expected push to drop newest element, got dropped=%v err=%v", dropped, err)
	}
	expectValues(t, q, "a", "b")

	q.RemoveHead(nil)
	if dropped, err := q.InsertTail("c"); dropped || err != nil {
		t.Fatalf("expected room after remove, got dropped=%v err=%v", dropped, err)
	}
	expectValues(t, q, "b", "c")
}

func TestAllIteratesInOrder(t *testing.T) {
	q := newQueue("x", "y", "z")

	var got []string
	for e := range q.All() {
		got = append(got, e.Value)
	}
	if strings.Join(got, ",") != "x,y,z" {
		t.Fatalf("unexpected iteration order %v", got)
	}
}

func TestReleaseIgnoresLinkedElement(t *testing.T) {
	q := newQueue("a", "b", "c")

	for e := range q.All() {
		if e.Value == "b" {
			e.Release()
		}
	}
	expectValues(t, q, "a", "b", "c")
	if q.Len() != 3 {
		t.Fatalf("expected length 3, got %d", q.Len())
	}
}

func TestInitialValuesBeyondBound(t *testing.T) {
	q := New(WithMaxLen(2), WithInitial("a", "b", "c"))
	expectValues(t, q, "a", "b")

	q = New(WithMaxLen(2), WithOverflowPolicy(OverflowDropOldest), WithInitial("a", "b", "c"))
	expectValues(t, q, "b", "c")
}
