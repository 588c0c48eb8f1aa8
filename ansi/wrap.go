package ansi

// Colorize wraps text in the given style token followed by a reset, so that
// styling never leaks into subsequent output. An empty token returns the
// text unchanged.
func Colorize(token, text string) string {
	if token == "" {
		return text
	}
	return token + text + Reset
}

// Quick wrappers for the most common one-off colorizations.

// InRed returns text wrapped in red.
func InRed(text string) string { return Colorize(Red, text) }

// InGreen returns text wrapped in green.
func InGreen(text string) string { return Colorize(Green, text) }

// InBlue returns text wrapped in blue.
func InBlue(text string) string { return Colorize(Blue, text) }

// InYellow returns text wrapped in yellow.
func InYellow(text string) string { return Colorize(Yellow, text) }

// InCyan returns text wrapped in cyan.
func InCyan(text string) string { return Colorize(Cyan, text) }

// InMagenta returns text wrapped in magenta.
func InMagenta(text string) string { return Colorize(Magenta, text) }

// InBold returns text wrapped in the bold attribute.
func InBold(text string) string { return Colorize(Bold, text) }

// Underlined returns text wrapped in the underline attribute.
func Underlined(text string) string { return Colorize(Underline, text) }
