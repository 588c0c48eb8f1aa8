package ansi

import "regexp"

// sgrPattern matches a single SGR token: ESC [ params m, with params being
// digits and semicolons. This is the full escape grammar the toolkit emits.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes every style token from text, leaving only visible characters.
// All width-aware layout (tables, boxes, charts) measures through Strip so
// that pre-colored content still aligns correctly.
func Strip(text string) string {
	return sgrPattern.ReplaceAllString(text, "")
}

// VisibleLen returns the number of visible characters in text, counting
// runes after all style tokens are removed.
func VisibleLen(text string) int {
	return len([]rune(Strip(text)))
}

// Gradient colors text by walking its characters across the palette in
// discrete steps. Character i receives palette[floor(i/step)] where
// step = len(text)/(len(palette)-1) for palettes larger than one entry;
// a single-entry palette colors every character with that entry. Spaces are
// emitted unstyled. A single trailing Reset is appended.
//
// An empty palette returns the input unchanged, with no reset appended.
func Gradient(text string, palette []string) string {
	if len(palette) == 0 {
		return text
	}

	runes := []rune(text)
	step := 1.0
	if len(palette) > 1 {
		step = float64(len(runes)) / float64(len(palette)-1)
	}

	var out []byte
	for i, r := range runes {
		if r == ' ' {
			out = append(out, ' ')
			continue
		}
		idx := int(float64(i) / step)
		if idx > len(palette)-1 {
			idx = len(palette) - 1
		}
		out = append(out, palette[idx]...)
		out = append(out, string(r)...)
	}
	return string(out) + Reset
}
