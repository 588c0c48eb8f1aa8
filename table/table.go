package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpratte/qol/ansi"
)

// Align positions cell content within its column.
type Align int

// Column alignments.
const (
	Left Align = iota
	Center
	Right
)

// Table accumulates headers and rows and renders them with a box-drawing
// border. Rendering is a pure read of the current state and may be repeated;
// rows appended between renders appear in subsequent output.
type Table struct {
	headers []string
	rows    [][]string

	aligns      []Align
	padding     int
	border      BorderStyle
	headerStyle string
	zebra       bool
	zebraStyle  string
}

// Option configures a Table during construction.
type Option func(*Table)

// WithAlignments sets per-column alignment. Missing trailing entries default
// to Left; extra entries are ignored.
func WithAlignments(aligns ...Align) Option {
	return func(t *Table) {
		for i := range t.aligns {
			if i < len(aligns) {
				t.aligns[i] = aligns[i]
			}
		}
	}
}

// WithPadding sets the number of spaces on each side of cell content.
// Negative values are treated as zero.
func WithPadding(padding int) Option {
	return func(t *Table) {
		if padding >= 0 {
			t.padding = padding
		}
	}
}

// WithBorder selects the border glyph set.
func WithBorder(style BorderStyle) Option {
	return func(t *Table) { t.border = style }
}

// WithHeaderStyle sets the ANSI token applied to header cells.
func WithHeaderStyle(token string) Option {
	return func(t *Table) { t.headerStyle = token }
}

// WithZebra enables alternating-row striping with the given ANSI token.
func WithZebra(token string) Option {
	return func(t *Table) {
		t.zebra = true
		t.zebraStyle = token
	}
}

// New creates a table with the given headers. Defaults: left alignment,
// padding 1, rounded border, bold cyan headers, no striping.
func New(headers []string, opts ...Option) *Table {
	t := &Table{
		headers:     headers,
		aligns:      make([]Align, len(headers)),
		padding:     1,
		border:      Rounded,
		headerStyle: ansi.Cyan + ansi.Bold,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddRow appends one row. Rows shorter than the header count render with
// empty trailing cells; extra cells are ignored at render time.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AddRows appends multiple rows in order.
func (t *Table) AddRows(rows [][]string) *Table {
	t.rows = append(t.rows, rows...)
	return t
}

// columnWidths returns each column's total width: the widest visible
// content (header or any cell) plus padding on both sides.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widest := ansi.VisibleLen(h)
		for _, row := range t.rows {
			if i < len(row) {
				if l := ansi.VisibleLen(row[i]); l > widest {
					widest = l
				}
			}
		}
		widths[i] = widest + t.padding*2
	}
	return widths
}

// alignCell pads text to width spaces based on its visible length, so
// embedded style tokens do not skew the layout.
func alignCell(text string, width int, align Align) string {
	gap := width - ansi.VisibleLen(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case Right:
		return strings.Repeat(" ", gap) + text
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// rule assembles a horizontal rule line from left, joint, and right glyphs.
func rule(widths []int, g borderGlyphs, left, joint, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat(g.horizontal, w))
		if i < len(widths)-1 {
			b.WriteString(joint)
		}
	}
	b.WriteString(right)
	return b.String()
}

// line assembles one content line (header or data row), wrapping each cell's
// text in the given style token while keeping the vertical glyphs unstyled.
func (t *Table) line(cells []string, widths []int, g borderGlyphs, style string) string {
	pad := strings.Repeat(" ", t.padding)
	var b strings.Builder
	b.WriteString(g.vertical)
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		formatted := alignCell(cell, w-t.padding*2, t.aligns[i])
		b.WriteString(pad)
		b.WriteString(ansi.Colorize(style, formatted))
		b.WriteString(pad)
		b.WriteString(g.vertical)
	}
	return b.String()
}

// Render writes the table to w. The top rule, header separator, and bottom
// rule are each emitted only when the border style defines their glyphs, so
// the Plain style produces content lines alone.
func (t *Table) Render(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := t.columnWidths()
	g := glyphsFor(t.border)

	if g.topLeft != "" {
		fmt.Fprintln(w, rule(widths, g, g.topLeft, g.topCross, g.topRight))
	}

	fmt.Fprintln(w, t.line(t.headers, widths, g, t.headerStyle))

	if g.leftCross != "" {
		fmt.Fprintln(w, rule(widths, g, g.leftCross, g.cross, g.rightCross))
	}

	for idx, row := range t.rows {
		style := ""
		if t.zebra && idx%2 == 1 {
			style = t.zebraStyle
		}
		fmt.Fprintln(w, t.line(row, widths, g, style))
	}

	if g.bottomLeft != "" {
		fmt.Fprintln(w, rule(widths, g, g.bottomLeft, g.bottomCross, g.bottomRight))
	}
}

// String renders the table to a string.
func (t *Table) String() string {
	var b strings.Builder
	t.Render(&b)
	return b.String()
}
