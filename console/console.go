// Package console provides thin cursor and screen control helpers built
// on VT100 escape sequences, plus a terminal size query.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions reported when the terminal size cannot be
// determined (output redirected, no tty).
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// out is the destination for control sequences, replaceable in tests.
var out io.Writer = os.Stdout

// SetOutput redirects control sequences to w. It returns the previous
// writer so tests can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Clear erases the screen and homes the cursor.
func Clear() {
	fmt.Fprint(out, "\033[2J\033[H")
}

// HideCursor makes the cursor invisible until ShowCursor is called.
func HideCursor() {
	fmt.Fprint(out, "\033[?25l")
}

// ShowCursor restores cursor visibility.
func ShowCursor() {
	fmt.Fprint(out, "\033[?25h")
}

// MoveCursor positions the cursor at column x, row y (1-based).
func MoveCursor(x, y int) {
	fmt.Fprintf(out, "\033[%d;%dH", y, x)
}

// SavePosition records the current cursor position on the terminal.
func SavePosition() {
	fmt.Fprint(out, "\033[s")
}

// RestorePosition moves the cursor back to the saved position.
func RestorePosition() {
	fmt.Fprint(out, "\033[u")
}

// Size reports the terminal dimensions in columns and rows. When stdout
// is not a terminal it falls back to 80x24.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
