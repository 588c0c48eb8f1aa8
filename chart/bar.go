package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpratte/qol/ansi"
)

// labelWidth is the fixed field the label is left-justified into.
const labelWidth = 15

// DefaultMaxHeight is the glyph count of the longest bar.
const DefaultMaxHeight = 10

// Entry is one labeled value. Entries render in insertion order.
type Entry struct {
	Label string
	Value float64
}

// BarChart renders labeled values as rows of solid block glyphs, scaled
// between the dataset's minimum and maximum.
type BarChart struct {
	entries    []Entry
	maxHeight  int
	showValues bool
	color      string
}

// BarOption configures a BarChart during construction.
type BarOption func(*BarChart)

// WithMaxHeight sets the glyph count of the longest bar.
func WithMaxHeight(height int) BarOption {
	return func(c *BarChart) {
		if height > 0 {
			c.maxHeight = height
		}
	}
}

// WithoutValues hides the raw value after each bar.
func WithoutValues() BarOption {
	return func(c *BarChart) { c.showValues = false }
}

// WithBarColor sets the ANSI token applied to the bars.
func WithBarColor(token string) BarOption {
	return func(c *BarChart) { c.color = token }
}

// NewBarChart creates an empty chart. Defaults: max height 10, cyan bars,
// raw values shown.
func NewBarChart(opts ...BarOption) *BarChart {
	c := &BarChart{
		maxHeight:  DefaultMaxHeight,
		showValues: true,
		color:      ansi.Cyan,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends one labeled value. Order is preserved in the output.
func (c *BarChart) Add(label string, value float64) *BarChart {
	c.entries = append(c.entries, Entry{Label: label, Value: value})
	return c
}

// heights normalizes every value into a glyph count. When all values are
// equal there is no range to scale into, so every bar renders at maxHeight
// rather than dividing by zero.
func (c *BarChart) heights() []int {
	lo, hi := c.entries[0].Value, c.entries[0].Value
	for _, e := range c.entries[1:] {
		if e.Value < lo {
			lo = e.Value
		}
		if e.Value > hi {
			hi = e.Value
		}
	}

	out := make([]int, len(c.entries))
	for i, e := range c.entries {
		if lo == hi {
			out[i] = c.maxHeight
			continue
		}
		out[i] = int((e.Value - lo) / (hi - lo) * float64(c.maxHeight))
	}
	return out
}

// Render writes one line per entry: the label left-justified to a fixed
// 15-character field, the scaled bar, and optionally the raw value in
// parentheses.
func (c *BarChart) Render(w io.Writer) {
	if len(c.entries) == 0 {
		return
	}

	heights := c.heights()
	for i, e := range c.entries {
		bar := ansi.Colorize(c.color, strings.Repeat("█", heights[i]))
		line := fmt.Sprintf("%-*s %s", labelWidth, e.Label, bar)
		if c.showValues {
			line += " (" + strconv.FormatFloat(e.Value, 'g', -1, 64) + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// String renders the chart to a string.
func (c *BarChart) String() string {
	var b strings.Builder
	c.Render(&b)
	return b.String()
}
