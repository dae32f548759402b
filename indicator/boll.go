package indicator

import (
	"sync"

	"github.com/yourname/ringstat/ringbuf"
)

// Bollinger derives a mean band with upper and lower envelopes k standard
// deviations away, over the last period samples.
type Bollinger struct {
	period int
	k      float64
	buf    *ringbuf.RingBuffer[float64]
	mu     sync.RWMutex
}

func NewBollinger(period int, k float64) *Bollinger {
	if period <= 0 {
		period = 20
	}
	if k <= 0 {
		k = 2
	}
	buf, _ := ringbuf.New[float64](period)
	return &Bollinger{period: period, k: k, buf: buf}
}

func (b *Bollinger) Push(sample float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Append(sample)
}

// Bands returns mid, upper and lower once the window is full.
func (b *Bollinger) Bands() (mid, upper, lower float64, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.buf.IsFull() {
		return 0, 0, 0, false
	}
	mid = b.buf.Mean()
	dev := b.k * b.buf.Std()
	return mid, mid + dev, mid - dev, true
}

// Value reports the middle band, so a Bollinger can stand wherever an
// Indicator is expected.
func (b *Bollinger) Value() (float64, bool) {
	mid, _, _, ok := b.Bands()
	return mid, ok
}
