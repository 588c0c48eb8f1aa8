// Package ansi provides the escape-sequence primitives for terminal styling.
// It builds SGR color tokens (named, 256-index, truecolor, hex), composes text
// attributes, strips sequences for visible-width measurement, and applies
// gradients across a palette.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between rendering logic and presentation.
// Every layout computation in the table, chart, and art packages relies on
// [Strip] returning the exact visible text.
package ansi
