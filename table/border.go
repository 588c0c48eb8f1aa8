package table

// BorderStyle names a set of box-drawing glyphs.
type BorderStyle string

// Available border styles. Plain renders no rule lines at all: every glyph
// is empty except the vertical separator, which is a single space, so the
// table collapses to space-separated columns.
const (
	Simple  BorderStyle = "simple"
	Rounded BorderStyle = "rounded"
	Double  BorderStyle = "double"
	Plain   BorderStyle = "plain"
)

// borderGlyphs is the full glyph set for one border style: four corners,
// the two rules, and the five junction pieces.
type borderGlyphs struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
	cross       string
	topCross    string
	bottomCross string
	leftCross   string
	rightCross  string
}

var borderStyles = map[BorderStyle]borderGlyphs{
	Simple: {
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│", cross: "┼",
		topCross: "┬", bottomCross: "┴", leftCross: "├", rightCross: "┤",
	},
	Rounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│", cross: "┼",
		topCross: "┬", bottomCross: "┴", leftCross: "├", rightCross: "┤",
	},
	Double: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║", cross: "╬",
		topCross: "╦", bottomCross: "╩", leftCross: "╠", rightCross: "╣",
	},
	Plain: {
		vertical: " ",
	},
}

// glyphsFor resolves a style name, defaulting to Simple for unknown names.
func glyphsFor(style BorderStyle) borderGlyphs {
	if g, ok := borderStyles[style]; ok {
		return g
	}
	return borderStyles[Simple]
}
