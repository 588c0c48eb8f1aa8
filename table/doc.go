// Package table renders aligned, box-drawn tables to a terminal. Column
// widths are computed from color-stripped content, so pre-styled cells still
// line up; border glyph sets are selectable by name, and rows can be zebra
// striped.
package table
