package msg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jpratte/qol/ansi"
)

// Service renders styled messages to a writer. It holds the display
// configuration and the custom-kind registry; construct one per output
// stream rather than relying on hidden process-wide state.
//
// Registration is guarded by a mutex so init-time RegisterStyle calls are
// safe; printing itself assumes a single thread of output.
type Service struct {
	w io.Writer

	// now supplies timestamps; injectable for tests.
	now func() time.Time

	mu     sync.RWMutex
	custom map[Kind]Style

	showIcons       bool
	showTimestamps  bool
	timestampFormat string
}

// Option configures a Service during construction.
type Option func(*Service)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a message service writing to w.
// Icons are enabled and timestamps disabled by default.
func NewService(w io.Writer, opts ...Option) *Service {
	s := &Service{
		w:               w,
		now:             time.Now,
		custom:          make(map[Kind]Style),
		showIcons:       true,
		timestampFormat: "15:04:05",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConfigOption adjusts one display setting; settings not named keep their
// prior value.
type ConfigOption func(*Service)

// ShowIcons toggles the icon segment.
func ShowIcons(enabled bool) ConfigOption {
	return func(s *Service) { s.showIcons = enabled }
}

// ShowTimestamps toggles the timestamp segment.
func ShowTimestamps(enabled bool) ConfigOption {
	return func(s *Service) { s.showTimestamps = enabled }
}

// TimestampFormat sets the time layout (time.Format reference layout).
func TimestampFormat(layout string) ConfigOption {
	return func(s *Service) { s.timestampFormat = layout }
}

// Configure applies the given display settings.
func (s *Service) Configure(opts ...ConfigOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// RegisterStyle registers a custom message kind. Registering an existing
// name replaces the previous style (last registration wins). Styles are
// never removed for the lifetime of the service.
func (s *Service) RegisterStyle(name string, style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom[Kind(name)] = style
}

// resolve looks a kind up in the built-in table first, then the custom
// registry. Unknown kinds fall back to the Info style; resolution never fails.
func (s *Service) resolve(kind Kind) Style {
	if style, ok := builtinStyles[kind]; ok {
		return style
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if style, ok := s.custom[kind]; ok {
		return style
	}
	return builtinStyles[KindInfo]
}

// PrintOption adjusts a single Print call.
type PrintOption func(*printOptions)

type printOptions struct {
	end    string
	indent int
	flush  bool
}

// WithEnd overrides the line terminator (default "\n").
func WithEnd(end string) PrintOption {
	return func(o *printOptions) { o.end = end }
}

// WithIndent adds extra indentation on top of the style's own indent.
func WithIndent(spaces int) PrintOption {
	return func(o *printOptions) { o.indent = spaces }
}

// WithFlush flushes the writer after printing, when it supports flushing.
func WithFlush() PrintOption {
	return func(o *printOptions) { o.flush = true }
}

// Print renders one message of the given kind. The line is composed, left
// to right, of an optional timestamp, an optional icon, and the prefix,
// each wrapped in its own color and reset, then a space and the colored
// body.
func (s *Service) Print(kind Kind, text string, opts ...PrintOption) {
	options := printOptions{end: "\n"}
	for _, opt := range opts {
		opt(&options)
	}

	style := s.resolve(kind)

	var segments []string
	if s.showTimestamps {
		stamp := s.now().Format(s.timestampFormat)
		segments = append(segments, ansi.Colorize(ansi.Dim, stamp))
	}
	if s.showIcons && style.Icon != "" {
		segments = append(segments, ansi.Colorize(style.Color+style.Attr, style.Icon))
	}
	segments = append(segments, ansi.Colorize(style.Color+style.Attr, style.Prefix))

	indent := strings.Repeat(" ", style.Indent+options.indent)
	fmt.Fprintf(s.w, "%s%s %s%s", indent, strings.Join(segments, " "),
		ansi.Colorize(style.Color, text), options.end)

	if options.flush {
		if f, ok := s.w.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}
}

// Quick methods, one per built-in kind.

// Info prints an informational message.
func (s *Service) Info(text string, opts ...PrintOption) { s.Print(KindInfo, text, opts...) }

// Info2 prints a secondary informational message.
func (s *Service) Info2(text string, opts ...PrintOption) { s.Print(KindInfo2, text, opts...) }

// Pending prints an in-progress message.
func (s *Service) Pending(text string, opts ...PrintOption) { s.Print(KindPending, text, opts...) }

// Success prints a success message.
func (s *Service) Success(text string, opts ...PrintOption) { s.Print(KindSuccess, text, opts...) }

// Success2 prints a secondary success message.
func (s *Service) Success2(text string, opts ...PrintOption) { s.Print(KindSuccess2, text, opts...) }

// Error prints an error message.
func (s *Service) Error(text string, opts ...PrintOption) { s.Print(KindError, text, opts...) }

// Warning prints a warning message.
func (s *Service) Warning(text string, opts ...PrintOption) { s.Print(KindWarning, text, opts...) }

// Question prints a question message.
func (s *Service) Question(text string, opts ...PrintOption) { s.Print(KindQuestion, text, opts...) }

// Debug prints a debug message.
func (s *Service) Debug(text string, opts ...PrintOption) { s.Print(KindDebug, text, opts...) }

// Custom prints a message using a registered custom kind.
func (s *Service) Custom(name, text string, opts ...PrintOption) {
	s.Print(Kind(name), text, opts...)
}

// Default is the package-level service writing to standard output.
var Default = NewService(os.Stdout)

// Package-level convenience functions delegating to Default.

// Print renders one message of the given kind via the default service.
func Print(kind Kind, text string, opts ...PrintOption) { Default.Print(kind, text, opts...) }

// Info prints an informational message via the default service.
func Info(text string, opts ...PrintOption) { Default.Info(text, opts...) }

// Success prints a success message via the default service.
func Success(text string, opts ...PrintOption) { Default.Success(text, opts...) }

// Warning prints a warning message via the default service.
func Warning(text string, opts ...PrintOption) { Default.Warning(text, opts...) }

// Error prints an error message via the default service.
func Error(text string, opts ...PrintOption) { Default.Error(text, opts...) }
