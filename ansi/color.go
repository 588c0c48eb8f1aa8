package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidColorFormatError reports a hex color string that is not 3 or 6 hex
// digits after stripping an optional leading '#'.
type InvalidColorFormatError struct {
	// Input is the offending color string as passed by the caller.
	Input string
}

// Error returns a formatted message describing the malformed color string.
func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color format %q: want #RGB or #RRGGBB", e.Input)
}

// FG256 returns the foreground token for a 256-palette color index.
// The code is not range-validated; out-of-range values produce a
// syntactically valid but visually undefined escape.
func FG256(code int) string {
	return fmt.Sprintf("\033[38;5;%dm", code)
}

// BG256 returns the background token for a 256-palette color index.
func BG256(code int) string {
	return fmt.Sprintf("\033[48;5;%dm", code)
}

// FGRGB returns the truecolor foreground token for the given channels.
// Channels are not range-validated, matching FG256.
func FGRGB(r, g, b int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// BGRGB returns the truecolor background token for the given channels.
func BGRGB(r, g, b int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// HexToRGB parses a hex color string into its channel values.
// It accepts "#RRGGBB" or "#RGB" (with or without the leading '#'); the
// 3-digit shorthand expands each digit by duplication, so "F06" parses the
// same as "FF0066" (CSS shorthand expansion).
//
// Returns:
//   - r, g, b: The channel values (0-255).
//   - error: An *InvalidColorFormatError if the string is not 3 or 6 hex digits.
func HexToRGB(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		var expanded strings.Builder
		for _, c := range s {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		s = expanded.String()
	}
	if len(s) != 6 {
		return 0, 0, 0, &InvalidColorFormatError{Input: hex}
	}
	channels := [3]int{}
	for i := range channels {
		v, perr := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, &InvalidColorFormatError{Input: hex}
		}
		channels[i] = int(v)
	}
	return channels[0], channels[1], channels[2], nil
}

// FGHex returns the truecolor foreground token for a hex color string.
// The error is raised synchronously at parse time, never deferred to render.
func FGHex(hex string) (string, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return FGRGB(r, g, b), nil
}

// BGHex returns the truecolor background token for a hex color string.
func BGHex(hex string) (string, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return BGRGB(r, g, b), nil
}
