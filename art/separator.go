package art

import (
	"strings"

	"github.com/jpratte/qol/ansi"
)

// DefaultSeparatorLength is the rule width used when none is given.
const DefaultSeparatorLength = 60

// SeparatorOption customizes separator rendering.
type SeparatorOption func(*separatorConfig)

type separatorConfig struct {
	length int
	glyph  rune
	color  string
}

// WithLength sets the number of glyphs in the rule.
func WithLength(n int) SeparatorOption {
	return func(c *separatorConfig) { c.length = n }
}

// WithGlyph sets the rune repeated across the rule.
func WithGlyph(r rune) SeparatorOption {
	return func(c *separatorConfig) { c.glyph = r }
}

// WithSeparatorColor sets the style token wrapping the rule.
func WithSeparatorColor(token string) SeparatorOption {
	return func(c *separatorConfig) { c.color = token }
}

// Separator renders a horizontal rule line.
func Separator(opts ...SeparatorOption) string {
	cfg := separatorConfig{
		length: DefaultSeparatorLength,
		glyph:  '═',
		color:  ansi.Gray,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.length < 0 {
		cfg.length = 0
	}
	return ansi.Colorize(cfg.color, strings.Repeat(string(cfg.glyph), cfg.length))
}
