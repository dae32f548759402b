package ringbuf

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Op enumerates the reductions the backing store supports. Anything
// outside this set is rejected by Reduce with ErrUnknownOp.
type Op string

const (
	OpMin  Op = "min"
	OpMax  Op = "max"
	OpMean Op = "mean"
	OpStd  Op = "std"
	OpVar  Op = "var"
	OpSum  Op = "sum"
)

// Min returns the smallest element of the current window.
func (r *RingBuffer[T]) Min() (T, error) {
	w := r.Window()
	if len(w) == 0 {
		var zero T
		return zero, fmt.Errorf("ringbuf: min of empty window: %w", ErrEmpty)
	}
	m := w[0]
	for _, v := range w[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element of the current window.
func (r *RingBuffer[T]) Max() (T, error) {
	w := r.Window()
	if len(w) == 0 {
		var zero T
		return zero, fmt.Errorf("ringbuf: max of empty window: %w", ErrEmpty)
	}
	m := w[0]
	for _, v := range w[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Sum returns the total of the current window, 0 when empty. Integer
// element types sum without rounding.
func (r *RingBuffer[T]) Sum() T {
	var s T
	for _, v := range r.Window() {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of the current window, NaN when empty.
func (r *RingBuffer[T]) Mean() float64 { return stat.Mean(r.window64(), nil) }

// Std returns the population standard deviation (ddof 0) of the current
// window, NaN when empty.
func (r *RingBuffer[T]) Std() float64 { return stat.PopStdDev(r.window64(), nil) }

// Var returns the population variance of the current window, NaN when
// empty.
func (r *RingBuffer[T]) Var() float64 { return stat.PopVariance(r.window64(), nil) }

// Reduce runs one of the enumerated ops over the current window and
// returns the result as float64. Min and max fail with ErrEmpty on an
// empty window; mean, std and var report NaN and sum reports 0.
func (r *RingBuffer[T]) Reduce(op Op) (float64, error) {
	w := r.window64()
	switch op {
	case OpMin:
		if len(w) == 0 {
			return 0, fmt.Errorf("ringbuf: %s of empty window: %w", op, ErrEmpty)
		}
		return floats.Min(w), nil
	case OpMax:
		if len(w) == 0 {
			return 0, fmt.Errorf("ringbuf: %s of empty window: %w", op, ErrEmpty)
		}
		return floats.Max(w), nil
	case OpMean:
		return stat.Mean(w, nil), nil
	case OpStd:
		return stat.PopStdDev(w, nil), nil
	case OpVar:
		return stat.PopVariance(w, nil), nil
	case OpSum:
		return floats.Sum(w), nil
	default:
		return 0, fmt.Errorf("ringbuf: op %q: %w", op, ErrUnknownOp)
	}
}

// window64 exposes the window to gonum. A []float64 window passes
// through without copying; other element types go through a reusable
// scratch slice, so the result is only valid until the next reduction.
func (r *RingBuffer[T]) window64() []float64 {
	w := r.Window()
	if f, ok := any(w).([]float64); ok {
		return f
	}
	if r.scratch == nil {
		r.scratch = make([]float64, 0, r.cap)
	}
	s := r.scratch[:0]
	for _, v := range w {
		s = append(s, float64(v))
	}
	r.scratch = s
	return s
}
