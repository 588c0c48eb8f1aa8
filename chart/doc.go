// Package chart renders simple data visualizations as text: horizontal bar
// charts with block glyphs, and single-line sparklines over a sample history.
package chart
