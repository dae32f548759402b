package ringbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/ringstat/ringbuf"
)

func full10(t *testing.T) *ringbuf.RingBuffer[float64] {
	t.Helper()
	r, err := ringbuf.New[float64](10)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		r.Append(float64(i))
	}
	// window is now [15..24]
	return r
}

func TestAt(t *testing.T) {
	r := full10(t)
	v, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)
	v, err = r.At(9)
	require.NoError(t, err)
	assert.Equal(t, 24.0, v)

	_, err = r.At(10)
	assert.ErrorIs(t, err, ringbuf.ErrIndex)
}

func TestNegativePositionsNeverCountFromTheEnd(t *testing.T) {
	r := full10(t)
	_, err := r.At(-1)
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	_, err = r.Slice(ringbuf.Range{Start: -2, Stop: 3})
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	_, err = r.Slice(ringbuf.Range{Start: 0, Stop: -1})
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	_, err = r.Slice(ringbuf.Range{Start: 0, Stop: 5, Step: -1})
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	err = r.Set(ringbuf.Index(-3), 0)
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	err = r.Set(ringbuf.Range{Start: -1, Stop: 2}, 0)
	require.ErrorIs(t, err, ringbuf.ErrIndex)
}

func TestSliceAliasesTheBackingStore(t *testing.T) {
	r := full10(t)
	s, err := r.Slice(ringbuf.Range{Start: 1, Stop: 4})
	require.NoError(t, err)
	require.Equal(t, []float64{16, 17, 18}, s)

	w := r.Window()
	assert.Same(t, &w[1], &s[0], "unit-step slice must be a view, not a copy")
}

func TestSliceWithStepCopies(t *testing.T) {
	r := full10(t)
	s, err := r.Slice(ringbuf.Range{Start: 0, Stop: 7, Step: 3})
	require.NoError(t, err)
	require.Equal(t, []float64{15, 18, 21}, s)

	s[0] = -1
	v, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v, "strided slice must not alias the store")
}

func TestSliceClampsStopToWindow(t *testing.T) {
	r, err := ringbuf.New[int](8)
	require.NoError(t, err)
	r.Append(1)
	r.Append(2)
	r.Append(3)

	s, err := r.Slice(ringbuf.Range{Start: 1, Stop: 100})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, s)

	s, err = r.Slice(ringbuf.Range{Start: 0, Stop: ringbuf.End})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, s)

	s, err = r.Slice(ringbuf.Range{Start: 5, Stop: 7})
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestSelectConcatenatesInRequestOrder(t *testing.T) {
	r := full10(t)
	got, err := r.Select(ringbuf.Multi{
		ringbuf.Index(3),
		ringbuf.Range{Start: 0, Stop: 2},
		ringbuf.Index(1),
	})
	require.NoError(t, err)
	require.Equal(t, []float64{18, 15, 16, 16}, got)

	// multi-selector results are fresh copies, never views
	got[0] = -99
	v, err := r.At(3)
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)
}

func TestSelectRejectsNestedMulti(t *testing.T) {
	r := full10(t)
	_, err := r.Select(ringbuf.Multi{ringbuf.Multi{ringbuf.Index(0)}})
	require.ErrorIs(t, err, ringbuf.ErrIndex)
	err = r.Set(ringbuf.Multi{ringbuf.Multi{ringbuf.Index(0)}}, 0)
	require.ErrorIs(t, err, ringbuf.ErrIndex)
}

func TestSetOverwritesVisibleElementsWhenFull(t *testing.T) {
	r := full10(t)
	require.NoError(t, r.Set(ringbuf.Index(0), 99))
	require.NoError(t, r.Set(ringbuf.Index(9), 77))
	w := r.Window()
	assert.Equal(t, 99.0, w[0])
	assert.Equal(t, 77.0, w[9])
	assert.Equal(t, 16.0, w[1])
}

func TestSetRangeWrapsAroundThePhysicalEnd(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		r.Append(i) // window [3,4,5], oldest at physical slot 2
	}
	require.NoError(t, r.Set(ringbuf.Range{Start: 1, Stop: 3}, 0))
	assert.Equal(t, []int{3, 0, 0}, r.Window())
}

func TestSetRangeOpenStopRunsThroughCurrentLength(t *testing.T) {
	r, err := ringbuf.New[int](4)
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		r.Append(10 * i) // full, so cursor-relative and oldest-relative agree
	}
	require.NoError(t, r.Set(ringbuf.Range{Stop: ringbuf.End}, 7))
	assert.Equal(t, []int{7, 7, 7, 7}, r.Window())
	assert.Equal(t, 4, r.Len(), "writes never grow the window")
}

func TestSetPastLengthIsAPreFill(t *testing.T) {
	r, err := ringbuf.New[int](4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		r.Append(i) // full, cursor == capacity
	}
	// index 5 wraps to visible position 1 through the physical mapping
	require.NoError(t, r.Set(ringbuf.Index(5), 42))
	w := r.Window()
	assert.Equal(t, 42, w[1])
}
