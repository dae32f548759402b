package stream

import (
	"sync"

	"github.com/yourname/ringstat/indicator"
	"github.com/yourname/ringstat/ringbuf"
)

// Observer receives an indicator's value after a pushed sample updated it.
type Observer func(name string, value float64)

// Pipeline drives a sample stream into a bounded history window and a set
// of named indicators. The buffer itself is unsynchronized, so the
// pipeline serializes all access; a Pipeline may be shared across
// goroutines.
type Pipeline struct {
	buf        *ringbuf.RingBuffer[float64]
	indicators map[string]indicator.Indicator
	observers  map[string][]Observer
	mu         sync.RWMutex
}

// NewPipeline retains the last capacity samples.
func NewPipeline(capacity int) (*Pipeline, error) {
	buf, err := ringbuf.New[float64](capacity)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		buf:        buf,
		indicators: make(map[string]indicator.Indicator),
		observers:  make(map[string][]Observer),
	}, nil
}

// Attach registers ind under name, replacing any previous indicator with
// that name.
func (p *Pipeline) Attach(name string, ind indicator.Indicator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicators[name] = ind
}

// Observe registers cb for the named indicator. The name "all" receives
// every ready indicator.
func (p *Pipeline) Observe(name string, cb Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers[name] = append(p.observers[name], cb)
}

// Push appends sample to the history window, feeds every attached
// indicator, and notifies observers of indicators that are ready after
// this sample. Observers run inline on the pushing goroutine, outside the
// pipeline lock.
func (p *Pipeline) Push(sample float64) {
	type ready struct {
		name  string
		value float64
	}

	p.mu.Lock()
	p.buf.Append(sample)
	var fired []ready
	for name, ind := range p.indicators {
		ind.Push(sample)
		if v, ok := ind.Value(); ok {
			fired = append(fired, ready{name, v})
		}
	}
	p.mu.Unlock()

	for _, f := range fired {
		p.mu.RLock()
		cbs := make([]Observer, 0, len(p.observers[f.name])+len(p.observers["all"]))
		cbs = append(cbs, p.observers[f.name]...)
		cbs = append(cbs, p.observers["all"]...)
		p.mu.RUnlock()
		for _, cb := range cbs {
			cb(f.name, f.value)
		}
	}
}

// Indicator returns the indicator registered under name.
func (p *Pipeline) Indicator(name string) (indicator.Indicator, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ind, ok := p.indicators[name]
	return ind, ok
}

// Summary is a snapshot of the current window statistics.
type Summary struct {
	Len  int
	Full bool
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Summary reduces the current window. Min and Max are zero while the
// window is empty.
func (p *Pipeline) Summary() Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := Summary{Len: p.buf.Len(), Full: p.buf.IsFull()}
	if s.Len == 0 {
		return s
	}
	min, _ := p.buf.Min()
	max, _ := p.buf.Max()
	s.Min, s.Max = min, max
	s.Mean = p.buf.Mean()
	s.Std = p.buf.Std()
	return s
}

// Window returns a copy of the visible samples, oldest first. Copying
// keeps callers off the shared backing store.
func (p *Pipeline) Window() []float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	w := p.buf.Window()
	out := make([]float64, len(w))
	copy(out, w)
	return out
}
