package art

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"
)

// sleep is swapped out in tests to keep them fast.
var sleep = time.Sleep

// DefaultGlitchDelay is the per-character reveal delay.
const DefaultGlitchDelay = 30 * time.Millisecond

const defaultGlitchChars = "!@#$%^&*()_+-=[]{}|;:,.<>?/\\~`"

// Glitcher animates text onto a writer by revealing it one character at
// a time while the unrevealed tail cycles through random symbols.
type Glitcher struct {
	w          io.Writer
	chars      []rune
	delay      time.Duration
	iterations int
	rng        *rand.Rand
}

// GlitchOption customizes a Glitcher.
type GlitchOption func(*Glitcher)

// WithGlitchWriter redirects output, mainly for tests.
func WithGlitchWriter(w io.Writer) GlitchOption {
	return func(g *Glitcher) { g.w = w }
}

// WithGlitchChars sets the symbol pool for unrevealed positions.
func WithGlitchChars(chars string) GlitchOption {
	return func(g *Glitcher) { g.chars = []rune(chars) }
}

// WithGlitchDelay sets the per-character reveal delay.
func WithGlitchDelay(d time.Duration) GlitchOption {
	return func(g *Glitcher) { g.delay = d }
}

// WithGlitchIterations sets how many scramble frames each reveal step
// draws.
func WithGlitchIterations(n int) GlitchOption {
	return func(g *Glitcher) { g.iterations = n }
}

// WithGlitchRand injects a seeded source so tests are deterministic.
func WithGlitchRand(rng *rand.Rand) GlitchOption {
	return func(g *Glitcher) { g.rng = rng }
}

// NewGlitcher creates a Glitcher writing to stdout by default.
func NewGlitcher(opts ...GlitchOption) *Glitcher {
	g := &Glitcher{
		w:          os.Stdout,
		chars:      []rune(defaultGlitchChars),
		delay:      DefaultGlitchDelay,
		iterations: 3,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.iterations < 1 {
		g.iterations = 1
	}
	return g
}

// Print animates text onto the writer and ends on the plain text plus a
// newline. Spaces are never scrambled, preserving word shape during the
// effect.
func (g *Glitcher) Print(text string) {
	runes := []rune(text)
	frame := make([]rune, len(runes))
	for i := 0; i <= len(runes); i++ {
		for k := 0; k < g.iterations; k++ {
			for j, r := range runes {
				switch {
				case j < i, r == ' ':
					frame[j] = r
				default:
					frame[j] = g.chars[g.rng.Intn(len(g.chars))]
				}
			}
			fmt.Fprintf(g.w, "\r%s", string(frame))
			sleep(g.delay / time.Duration(g.iterations))
		}
	}
	fmt.Fprintf(g.w, "\r%s\n", text)
}

// ClearLine overwrites the current line with spaces and returns the
// cursor to column one.
func (g *Glitcher) ClearLine(length int) {
	fmt.Fprintf(g.w, "\r%s\r", strings.Repeat(" ", length))
}
