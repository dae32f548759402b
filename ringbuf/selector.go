package ringbuf

import (
	"fmt"
	"math"
)

// End marks a Range whose Stop was left open: the range runs through the
// current logical length.
const End = math.MaxInt

// Selector picks elements of the logical window. Exactly three shapes
// exist: Index, Range and Multi. Negative positions are rejected, never
// counted from the end.
type Selector interface{ sealed() }

// Index selects a single logical position, 0 being the oldest element.
type Index int

// Range selects positions [Start, Stop) taken every Step. Step 0 means 1.
// Stop may be End.
type Range struct {
	Start, Stop, Step int
}

// Multi concatenates the results of its members in order. Members may be
// Index or Range; nesting another Multi is not supported.
type Multi []Selector

func (Index) sealed() {}
func (Range) sealed() {}
func (Multi) sealed() {}

// At returns the element at logical position i.
func (r *RingBuffer[T]) At(i int) (T, error) {
	var zero T
	w := r.Window()
	if i < 0 || i >= len(w) {
		return zero, fmt.Errorf("ringbuf: index %d outside window [0,%d): %w", i, len(w), ErrIndex)
	}
	return w[i], nil
}

// Slice returns the window elements selected by rg. With Step 1 the
// result aliases the backing store; a larger step forces a copy.
func (r *RingBuffer[T]) Slice(rg Range) ([]T, error) {
	w := r.Window()
	start, stop, step, err := rg.readBounds(len(w))
	if err != nil {
		return nil, err
	}
	if step == 1 {
		return w[start:stop], nil
	}
	out := make([]T, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		out = append(out, w[i])
	}
	return out, nil
}

// Select resolves sel against the current window and returns a freshly
// allocated result. Each member of a Multi resolves independently against
// the same window; results concatenate in request order. Callers needing
// the zero-copy aliasing view use Slice instead.
func (r *RingBuffer[T]) Select(sel Selector) ([]T, error) {
	switch s := sel.(type) {
	case Index:
		v, err := r.At(int(s))
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	case Range:
		got, err := r.Slice(s)
		if err != nil {
			return nil, err
		}
		out := make([]T, len(got))
		copy(out, got)
		return out, nil
	case Multi:
		var out []T
		for _, m := range s {
			if _, ok := m.(Multi); ok {
				return nil, fmt.Errorf("ringbuf: nested multi selector: %w", ErrIndex)
			}
			got, err := r.Select(m)
			if err != nil {
				return nil, err
			}
			out = append(out, got...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("ringbuf: unsupported selector %T: %w", sel, ErrIndex)
	}
}

// Set writes v through sel. Write positions are cursor relative: logical
// i maps to physical slot (i+cursor)%cap, mirrored at +cap, so an index
// at or past Len() deliberately pre-fills a slot the window has not
// reached yet. Keeping such writes meaningful is the caller's
// responsibility.
func (r *RingBuffer[T]) Set(sel Selector, v T) error {
	switch s := sel.(type) {
	case Index:
		if s < 0 {
			return fmt.Errorf("ringbuf: negative write index %d: %w", s, ErrIndex)
		}
		r.setSlot(int(s), v)
		return nil
	case Range:
		start, stop, step, err := s.writeBounds(r.Len())
		if err != nil {
			return err
		}
		for i := start; i < stop; i += step {
			r.setSlot(i, v)
		}
		return nil
	case Multi:
		for _, m := range s {
			if _, ok := m.(Multi); ok {
				return fmt.Errorf("ringbuf: nested multi selector: %w", ErrIndex)
			}
			if err := r.Set(m, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("ringbuf: unsupported selector %T: %w", sel, ErrIndex)
	}
}

func (r *RingBuffer[T]) setSlot(i int, v T) {
	p := int((uint64(i) + r.cursor) % uint64(r.cap))
	r.data[p] = v
	r.data[p+r.cap] = v
}

// readBounds normalizes rg against a window of length n: Step 0 becomes
// 1, Stop clamps to n (which also resolves End) and Start clamps to Stop.
func (rg Range) readBounds(n int) (start, stop, step int, err error) {
	start, stop, step = rg.Start, rg.Stop, rg.Step
	if step == 0 {
		step = 1
	}
	if start < 0 || stop < 0 || step < 0 {
		return 0, 0, 0, fmt.Errorf("ringbuf: negative range %+v: %w", rg, ErrIndex)
	}
	if stop > n {
		stop = n
	}
	if start > stop {
		start = stop
	}
	return start, stop, step, nil
}

// writeBounds differs from readBounds: writes may run past the window,
// so Stop is substituted with the current length only when left as End
// and is never clamped.
func (rg Range) writeBounds(length int) (start, stop, step int, err error) {
	start, stop, step = rg.Start, rg.Stop, rg.Step
	if step == 0 {
		step = 1
	}
	if start < 0 || stop < 0 || step < 0 {
		return 0, 0, 0, fmt.Errorf("ringbuf: negative range %+v: %w", rg, ErrIndex)
	}
	if stop == End {
		stop = length
	}
	return start, stop, step, nil
}
