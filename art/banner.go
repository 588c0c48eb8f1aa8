package art

import (
	"strings"

	"github.com/jpratte/qol/ansi"
)

// bannerHeight is the number of rows the built-in block font occupies.
const bannerHeight = 3

// blockFont maps characters to one row of block glyphs. The same row is
// repeated bannerHeight times, giving each character a solid column of
// uniform width.
var blockFont = map[rune]string{
	'A': " █████╗ ", 'B': "██████╗ ", 'C': " ██████╗", 'D': "██████╗ ",
	'E': "███████╗", 'F': "███████╗", 'G': " ██████╗ ", 'H': "██╗  ██╗",
	'I': "██╗", 'J': "     ██╗", 'K': "██╗  ██╗", 'L': "██╗     ",
	'M': "███╗   ███╗", 'N': "███╗   ██╗", 'O': " ██████╗ ", 'P': "██████╗ ",
	'Q': " ██████╗ ", 'R': "██████╗ ", 'S': " ███████╗", 'T': "████████╗",
	'U': "██╗   ██╗", 'V': "██╗   ██╗", 'W': "██╗    ██╗██╗", 'X': "██╗  ██╗",
	'Y': "██╗   ██╗", 'Z': "███████╗",
	' ': "   ", '0': " ██████╗ ", '1': " ██╗", '2': "██████╗ ",
	'3': "██████╗ ", '4': "██╗  ██╗", '5': "███████╗", '6': " ██████╗ ",
	'7': "███████╗", '8': " █████╗ ", '9': " ██████╗ ",
	'!': "██╗", '?': " ██████╗", '.': "    ", ',': "    ",
	':': "    ", ';': "    ", '-': "       ", '_': "       ",
}

// BannerOption customizes banner rendering.
type BannerOption func(*bannerConfig)

type bannerConfig struct {
	color string
}

// WithBannerColor sets the style token applied to every banner row.
func WithBannerColor(token string) BannerOption {
	return func(c *bannerConfig) { c.color = token }
}

// Banner renders text as a multi-row block-glyph headline. Characters
// without a glyph render as blank space. Each row carries its own style
// token and reset.
func Banner(text string, opts ...BannerOption) string {
	cfg := bannerConfig{color: ansi.Cyan}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([]strings.Builder, bannerHeight)
	for _, ch := range strings.ToUpper(text) {
		glyph, ok := blockFont[ch]
		if !ok {
			glyph = blockFont[' ']
		}
		for i := range rows {
			rows[i].WriteString(glyph)
		}
	}

	out := make([]string, bannerHeight)
	for i := range rows {
		out[i] = ansi.Colorize(cfg.color, rows[i].String())
	}
	return strings.Join(out, "\n")
}
