package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"single value", []float64{5}, "█"},
		{"flat series", []float64{3, 3, 3}, "███"},
		{"ramp", []float64{0, 50, 100}, "▁▄█"},
		{"extremes", []float64{0, 100}, "▁█"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sparkline(tt.values))
		})
	}
}

func TestHistoryPushAndSlice(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 3, h.Cap())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float64{1, 2}, h.Slice())
	assert.Equal(t, 2.0, h.Last())

	// Overflow drops the oldest sample.
	h.Push(3)
	h.Push(4)
	assert.Equal(t, []float64{2, 3, 4}, h.Slice())
	assert.Equal(t, 4.0, h.Last())
}

func TestHistoryReset(t *testing.T) {
	t.Parallel()
	h := NewHistory(2)
	h.Push(1)
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Slice())
	assert.Equal(t, 0.0, h.Last())
}

func TestHistoryZeroCapacity(t *testing.T) {
	t.Parallel()
	h := NewHistory(0)
	h.Push(7)
	assert.Equal(t, []float64{7}, h.Slice())
}

func TestHistorySparkline(t *testing.T) {
	t.Parallel()
	h := NewHistory(4)
	for _, v := range []float64{0, 33, 66, 100} {
		h.Push(v)
	}
	got := h.Sparkline()
	assert.Len(t, []rune(got), 4)
}
