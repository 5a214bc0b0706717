package queue

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/crypto/sha3"
)

// MarshalJSON encodes the queue as a JSON array of its values, front to back.
func (q *Queue) MarshalJSON() ([]byte, error) {
	values := q.Values()
	if values == nil {
		values = []string{}
	}
	return sonnet.Marshal(values)
}

// UnmarshalJSON replaces the contents of q with the values of a JSON array.
// The values are inserted at the back, so a bounded queue applies its
// overflow policy. With OverflowError an array longer than MaxLen fails with
// ErrQueueFull and q keeps its contents.
func (q *Queue) UnmarshalJSON(data []byte) error {
	if q == nil {
		return ErrNilQueue
	}

	var values []string
	if err := sonnet.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("ringqueue: decode queue: %w", err)
	}

	if q.opts.MaxLen > 0 && len(values) > q.opts.MaxLen && q.opts.OverflowPolicy == OverflowError {
		return ErrQueueFull
	}

	q.Free()
	for _, v := range values {
		if _, err := q.insert(v, false); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint returns a SHA3-256 digest of the values in queue order. Two
// queues have the same fingerprint when they hold the same values in the
// same order.
func (q *Queue) Fingerprint() [32]byte {
	h := sha3.New256()
	for e := range q.All() {
		h.Write([]byte(e.Value))
		h.Write([]byte{0})
	}

	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}
