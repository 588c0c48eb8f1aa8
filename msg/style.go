package msg

import "github.com/jpratte/qol/ansi"

// Kind identifies a built-in message style.
type Kind string

// Built-in message kinds. Their styles are immutable; custom kinds are
// registered per service via [Service.RegisterStyle].
const (
	KindInfo     Kind = "info"
	KindInfo2    Kind = "info2"
	KindPending  Kind = "pending"
	KindSuccess  Kind = "success"
	KindSuccess2 Kind = "success2"
	KindError    Kind = "error"
	KindWarning  Kind = "warning"
	KindQuestion Kind = "question"
	KindDebug    Kind = "debug"
)

// Style bundles the presentation of one message kind.
type Style struct {
	// Prefix is the short bracketed tag printed before the message.
	Prefix string
	// Color is the ANSI token applied to the prefix, icon, and body.
	Color string
	// Attr is an optional additional attribute token (bold, dim, ...).
	Attr string
	// Icon is an optional glyph printed before the prefix when icons are enabled.
	Icon string
	// Indent is the base indentation width in spaces.
	Indent int
}

// builtinStyles maps the closed set of built-in kinds to their styles.
// Custom kinds live in the per-service registry and are consulted second.
var builtinStyles = map[Kind]Style{
	KindInfo:     {Prefix: "[+]", Color: ansi.White, Icon: "ℹ"},
	KindInfo2:    {Prefix: "[#]", Color: ansi.BrightBlue, Icon: "🛈"},
	KindPending:  {Prefix: "[...]", Color: ansi.Gray, Icon: "⌛"},
	KindSuccess:  {Prefix: "[✓]", Color: ansi.BrightGreen, Attr: ansi.Bold, Icon: "✅"},
	KindSuccess2: {Prefix: "[✓]", Color: ansi.BrightBlue, Icon: "✅"},
	KindError:    {Prefix: "[-]", Color: ansi.BrightRed, Attr: ansi.Bold, Icon: "❌"},
	KindWarning:  {Prefix: "[!]", Color: ansi.BrightYellow, Attr: ansi.Bold, Icon: "⚠"},
	KindQuestion: {Prefix: "[?]", Color: ansi.BrightMagenta, Icon: "❓"},
	KindDebug:    {Prefix: "[DEBUG]", Color: ansi.BrightCyan, Icon: "🐛"},
}
