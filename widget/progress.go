package widget

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultBarLength is the bar width in glyphs when none is configured.
const DefaultBarLength = 50

// ValidationError reports an invalid widget construction argument.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ProgressBar is a pull-based progress indicator: it redraws only when the
// caller reports progress, overwriting a single line with a carriage return.
// Progress never decreases and is clamped to the configured total.
type ProgressBar struct {
	w io.Writer

	total   int
	current int

	description    string
	barLength      int
	fillGlyph      string
	emptyGlyph     string
	showPercentage bool
	showCounter    bool

	startTime time.Time
	now       func() time.Time
}

// ProgressOption configures a ProgressBar during construction.
type ProgressOption func(*ProgressBar)

// WithDescription sets the text shown before the bar.
func WithDescription(description string) ProgressOption {
	return func(p *ProgressBar) { p.description = description }
}

// WithBarLength sets the bar width in glyphs.
func WithBarLength(length int) ProgressOption {
	return func(p *ProgressBar) {
		if length > 0 {
			p.barLength = length
		}
	}
}

// WithGlyphs replaces the fill and empty glyphs (default █ and ░).
func WithGlyphs(fill, empty string) ProgressOption {
	return func(p *ProgressBar) {
		p.fillGlyph = fill
		p.emptyGlyph = empty
	}
}

// WithoutPercentage hides the percentage segment.
func WithoutPercentage() ProgressOption {
	return func(p *ProgressBar) { p.showPercentage = false }
}

// WithoutCounter hides the current/total counter segment.
func WithoutCounter() ProgressOption {
	return func(p *ProgressBar) { p.showCounter = false }
}

// WithProgressWriter redirects output away from stdout. Used by tests.
func WithProgressWriter(w io.Writer) ProgressOption {
	return func(p *ProgressBar) { p.w = w }
}

// WithProgressClock sets the time source for elapsed-time display.
func WithProgressClock(now func() time.Time) ProgressOption {
	return func(p *ProgressBar) { p.now = now }
}

// NewProgressBar creates a progress bar for total steps.
//
// Returns:
//   - *ProgressBar: The bar, in the Idle state; nothing is written until the
//     first update.
//   - error: A *ValidationError when total < 1, since the ratio computation
//     would otherwise divide by zero.
func NewProgressBar(total int, opts ...ProgressOption) (*ProgressBar, error) {
	if total < 1 {
		return nil, &ValidationError{Field: "total", Message: fmt.Sprintf("must be >= 1, got %d", total)}
	}

	p := &ProgressBar{
		w:              os.Stdout,
		total:          total,
		barLength:      DefaultBarLength,
		fillGlyph:      "█",
		emptyGlyph:     "░",
		showPercentage: true,
		showCounter:    true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.startTime = p.now()
	return p, nil
}

// Set advances progress to value and redraws. Progress only moves forward:
// values below the current position are ignored, values above total clamp
// to total.
func (p *ProgressBar) Set(value int) {
	if value > p.current {
		p.current = min(value, p.total)
	}
	p.render()
}

// Increment advances progress by n steps (clamped to total) and redraws.
func (p *ProgressBar) Increment(n int) {
	p.Set(p.current + n)
}

// Current returns the number of completed steps.
func (p *ProgressBar) Current() int { return p.current }

// Ratio returns completion as a fraction in [0, 1].
func (p *ProgressBar) Ratio() float64 {
	return float64(p.current) / float64(p.total)
}

// Finish forces progress to total, renders the final frame, and terminates
// the line with a newline. The bar must not be updated afterwards.
func (p *ProgressBar) Finish() {
	p.current = p.total
	p.render()
	fmt.Fprintln(p.w)
}

// render overwrites the current line with the assembled
// [description] [bar] [percentage] [counter] [time] segments, omitting any
// empty optional segment.
func (p *ProgressBar) render() {
	ratio := p.Ratio()
	filled := int(float64(p.barLength) * ratio)
	bar := strings.Repeat(p.fillGlyph, filled) + strings.Repeat(p.emptyGlyph, p.barLength-filled)

	parts := make([]string, 0, 5)
	if p.description != "" {
		parts = append(parts, p.description)
	}
	parts = append(parts, "["+bar+"]")
	if p.showPercentage {
		parts = append(parts, fmt.Sprintf("%.1f%%", ratio*100))
	}
	if p.showCounter {
		parts = append(parts, fmt.Sprintf("%d/%d", p.current, p.total))
	}
	if segment := p.timeSegment(ratio); segment != "" {
		parts = append(parts, segment)
	}

	fmt.Fprintf(p.w, "\r%s", strings.Join(parts, " "))
}

// timeSegment renders elapsed time, with a linear remaining-time estimate
// while the bar is partially complete.
func (p *ProgressBar) timeSegment(ratio float64) string {
	elapsed := p.now().Sub(p.startTime)
	switch {
	case ratio >= 1:
		return fmt.Sprintf("[%.1fs]", elapsed.Seconds())
	case ratio > 0:
		remaining := float64(elapsed) / ratio * (1 - ratio)
		return fmt.Sprintf("[%.0f<%.0fs]", elapsed.Seconds(), time.Duration(remaining).Seconds())
	default:
		return ""
	}
}

// Run executes fn under a progress-bar scope: the 0% frame renders before fn
// starts, and the bar is finalized with a newline on every exit path. fn
// drives the bar through the passed pointer.
func Run(total int, fn func(p *ProgressBar) error, opts ...ProgressOption) error {
	p, err := NewProgressBar(total, opts...)
	if err != nil {
		return err
	}
	p.render()
	defer p.Finish()
	return fn(p)
}
