package chart

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as one line of Unicode block characters, scaled
// between the minimum and maximum of the series. A flat series (all values
// equal) renders at full height.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	runes := make([]rune, len(values))
	for i, v := range values {
		idx := 7
		if lo != hi {
			idx = int((v - lo) / (hi - lo) * 7.0)
			if idx > 7 {
				idx = 7
			}
			if idx < 0 {
				idx = 0
			}
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// History is a fixed-capacity circular buffer of samples, convenient for
// feeding a rolling window into Sparkline.
type History struct {
	data  []float64
	head  int
	count int
}

// NewHistory creates a sample history with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{data: make([]float64, capacity)}
}

// Push adds a sample, overwriting the oldest if full.
func (h *History) Push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Len returns the number of valid samples.
func (h *History) Len() int { return h.count }

// Cap returns the history capacity.
func (h *History) Cap() int { return len(h.data) }

// Last returns the most recent sample, or 0 if empty.
func (h *History) Last() float64 {
	if h.count == 0 {
		return 0
	}
	idx := h.head - 1
	if idx < 0 {
		idx = len(h.data) - 1
	}
	return h.data[idx]
}

// Slice returns samples in chronological order (oldest first).
func (h *History) Slice() []float64 {
	if h.count == 0 {
		return nil
	}
	result := make([]float64, h.count)
	start := h.head - h.count
	if start < 0 {
		start += len(h.data)
	}
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%len(h.data)]
	}
	return result
}

// Reset clears all samples.
func (h *History) Reset() {
	h.head = 0
	h.count = 0
}

// Sparkline renders the current history window.
func (h *History) Sparkline() string {
	return Sparkline(h.Slice())
}
