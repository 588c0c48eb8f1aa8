//go:generate mockgen -source=spinner.go -destination=mocks/mock_spinner.go -package=mocks

package widget

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// DefaultFrames is the braille frame cycle used when no custom frames are
// configured.
var DefaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DefaultSpinnerDelay is the redraw interval between frames.
const DefaultSpinnerDelay = 100 * time.Millisecond

// Indicator abstracts the behavior of an animated terminal indicator.
// It decouples callers from a specific spinner implementation, which keeps
// orchestration code testable with a mock.
type Indicator interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation and clears the line.
	Stop()
	// UpdateMessage replaces the text displayed after the frame glyph.
	UpdateMessage(message string)
}

// Spinner is an animated one-line indicator backed by a background redraw
// goroutine. Each tick writes a carriage return, the current frame glyph,
// and the message; stopping joins the goroutine before clearing the line so
// no torn final frame is left behind.
//
// UpdateMessage may be called while running; the new text is observed on the
// next tick (relaxed visibility, no ordering guarantee beyond that).
type Spinner struct {
	s *spinner.Spinner
}

type spinnerConfig struct {
	frames  []string
	delay   time.Duration
	message string
	writer  io.Writer
	final   string
}

// SpinnerOption configures a Spinner during construction.
type SpinnerOption func(*spinnerConfig)

// WithFrames replaces the default braille frame cycle.
func WithFrames(frames []string) SpinnerOption {
	return func(c *spinnerConfig) {
		if len(frames) > 0 {
			c.frames = frames
		}
	}
}

// WithDelay sets the redraw interval.
func WithDelay(d time.Duration) SpinnerOption {
	return func(c *spinnerConfig) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithMessage sets the initial message shown after the frame glyph.
func WithMessage(message string) SpinnerOption {
	return func(c *spinnerConfig) { c.message = message }
}

// WithWriter redirects output away from stdout. Used by tests.
func WithWriter(w io.Writer) SpinnerOption {
	return func(c *spinnerConfig) { c.writer = w }
}

// WithFinalMessage prints a message on its own line after the spinner line
// is cleared.
func WithFinalMessage(message string) SpinnerOption {
	return func(c *spinnerConfig) { c.final = message }
}

// NewSpinner creates a spinner in the Idle state. Nothing is written until
// Start is called.
func NewSpinner(opts ...SpinnerOption) *Spinner {
	cfg := spinnerConfig{
		frames: DefaultFrames,
		delay:  DefaultSpinnerDelay,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := spinner.New(cfg.frames, cfg.delay, spinner.WithWriter(cfg.writer))
	if cfg.message != "" {
		s.Suffix = " " + cfg.message
	}
	if cfg.final != "" {
		s.FinalMSG = cfg.final + "\n"
	}
	return &Spinner{s: s}
}

// Start launches the redraw goroutine. Starting an already running spinner
// is a no-op; a spinner never runs more than one redraw goroutine.
func (sp *Spinner) Start() {
	sp.s.Start()
}

// Stop signals the redraw goroutine, waits for it to observe the stop, and
// clears the line. Stopping an idle spinner is a no-op.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// UpdateMessage swaps the message text. The redraw goroutine picks it up on
// its next tick.
func (sp *Spinner) UpdateMessage(message string) {
	sp.s.Suffix = " " + message
}

// Active reports whether the redraw goroutine is running.
func (sp *Spinner) Active() bool {
	return sp.s.Active()
}

// WithSpinner runs fn under a spinner scope: the spinner starts before fn
// and stops on every exit path, including panics and error returns. fn
// receives an update function for swapping the message mid-run.
func WithSpinner(message string, fn func(update func(string)) error, opts ...SpinnerOption) error {
	sp := NewSpinner(append([]SpinnerOption{WithMessage(message)}, opts...)...)
	sp.Start()
	defer sp.Stop()
	return fn(sp.UpdateMessage)
}
