package indicator

import (
	"sync"

	"github.com/yourname/ringstat/ringbuf"
)

// SMA computes the simple moving average of the last period samples.
type SMA struct {
	period int
	buf    *ringbuf.RingBuffer[float64]
	mu     sync.RWMutex
}

func NewSMA(period int) *SMA {
	if period <= 0 {
		period = 1
	}
	buf, _ := ringbuf.New[float64](period)
	return &SMA{period: period, buf: buf}
}

func (m *SMA) Push(sample float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Append(sample)
}

// Value reports the average once period samples have arrived.
func (m *SMA) Value() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.buf.IsFull() {
		return 0, false
	}
	return m.buf.Mean(), true
}
