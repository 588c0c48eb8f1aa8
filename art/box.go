package art

import (
	"strings"

	"github.com/jpratte/qol/ansi"
)

// BoxOption customizes box rendering.
type BoxOption func(*boxConfig)

type boxConfig struct {
	title       string
	padding     int
	borderColor string
	titleColor  string
}

// WithTitle splices a title into the top border.
func WithTitle(title string) BoxOption {
	return func(c *boxConfig) { c.title = title }
}

// WithBoxPadding sets the horizontal padding between border and text.
func WithBoxPadding(n int) BoxOption {
	return func(c *boxConfig) { c.padding = n }
}

// WithBorderColor sets the style token for the border glyphs.
func WithBorderColor(token string) BoxOption {
	return func(c *boxConfig) { c.borderColor = token }
}

// WithTitleColor sets the style token for the spliced title.
func WithTitleColor(token string) BoxOption {
	return func(c *boxConfig) { c.titleColor = token }
}

// Box surrounds multi-line text with a rounded border. Line widths are
// measured on visible length, so pre-styled content still aligns with
// the right border.
func Box(text string, opts ...BoxOption) string {
	cfg := boxConfig{
		padding:     1,
		borderColor: ansi.Cyan,
		titleColor:  ansi.Cyan + ansi.Bold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.padding < 0 {
		cfg.padding = 0
	}

	lines := strings.Split(text, "\n")
	maxLen := 0
	for _, line := range lines {
		if n := ansi.VisibleLen(line); n > maxLen {
			maxLen = n
		}
	}
	interior := maxLen + cfg.padding*2

	var b strings.Builder
	b.WriteString(topBorder(cfg, interior))
	b.WriteByte('\n')
	for _, line := range lines {
		rightPad := cfg.padding + maxLen - ansi.VisibleLen(line)
		b.WriteString(ansi.Colorize(cfg.borderColor, "│"))
		b.WriteString(strings.Repeat(" ", cfg.padding))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", rightPad))
		b.WriteString(ansi.Colorize(cfg.borderColor, "│"))
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Colorize(cfg.borderColor, "╰"+strings.Repeat("─", interior)+"╯"))
	return b.String()
}

// topBorder renders the top rule, splicing the title in after the
// corner when one is set.
func topBorder(cfg boxConfig, interior int) string {
	if cfg.title == "" {
		return ansi.Colorize(cfg.borderColor, "╭"+strings.Repeat("─", interior)+"╮")
	}
	run := interior - ansi.VisibleLen(cfg.title) - 3
	if run < 0 {
		run = 0
	}
	var b strings.Builder
	b.WriteString(ansi.Colorize(cfg.borderColor, "╭─ "))
	b.WriteString(ansi.Colorize(cfg.titleColor, cfg.title))
	b.WriteString(ansi.Colorize(cfg.borderColor, " "+strings.Repeat("─", run)+"╮"))
	return b.String()
}
