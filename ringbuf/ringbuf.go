package ringbuf

import "fmt"

// Number is the set of element types a buffer can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RingBuffer is a fixed-capacity circular buffer backed by a store of
// twice its capacity. Every appended value is written to two slots,
// cursor%cap and cursor%cap+cap, so any logical window of up to cap
// elements is also a contiguous physical range and can be handed out
// without copying. The price is 2x memory; the payoff is O(1) append and
// zero-copy reads, which matters when a reduction runs on every sample of
// a stream.
//
// Not safe for unsynchronized concurrent use.
type RingBuffer[T Number] struct {
	data    []T // length 2*capacity
	cap     int
	cursor  uint64
	scratch []float64 // reduction workspace, lazily allocated
}

// New allocates a buffer that retains the last capacity appended values.
func New[T Number](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ringbuf: capacity %d: %w", capacity, ErrCapacity)
	}
	return &RingBuffer[T]{data: make([]T, 2*capacity), cap: capacity}, nil
}

// Append adds v as the newest element. Once the buffer is full each
// append silently evicts the oldest element; that is the intended
// behavior, not a signaled event.
func (r *RingBuffer[T]) Append(v T) {
	s := r.slot()
	r.data[s] = v
	r.data[s+r.cap] = v
	r.cursor++
}

func (r *RingBuffer[T]) slot() int { return int(r.cursor % uint64(r.cap)) }

// Len returns the number of logically visible elements, at most Cap.
func (r *RingBuffer[T]) Len() int {
	if r.cursor >= uint64(r.cap) {
		return r.cap
	}
	return int(r.cursor)
}

// Cap returns the immutable capacity fixed at construction.
func (r *RingBuffer[T]) Cap() int { return r.cap }

// IsFull reports whether appends have started evicting.
func (r *RingBuffer[T]) IsFull() bool { return r.cursor >= uint64(r.cap) }

// Clear forgets all elements by resetting the cursor. The backing store
// is left untouched; the next Append starts a window of length one.
func (r *RingBuffer[T]) Clear() { r.cursor = 0 }

// Elements returns the raw capacity-length span starting at the current
// wrap offset. It aliases the backing store and is always contiguous.
// Until the buffer is full only the last Len() entries of the span are
// live; Window applies that trim and should be preferred.
func (r *RingBuffer[T]) Elements() []T {
	s := r.slot()
	return r.data[s : s+r.cap]
}

// Window returns the live elements, oldest first, as a zero-copy view of
// length Len(). The mirrored half of the store keeps the window at the
// tail of Elements until the buffer fills.
func (r *RingBuffer[T]) Window() []T {
	e := r.Elements()
	return e[r.cap-r.Len():]
}
