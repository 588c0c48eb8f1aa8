package ansi

// Reset and text attribute sequences.
const (
	Reset         = "\033[0m"
	Bold          = "\033[1m"
	Dim           = "\033[2m"
	Italic        = "\033[3m"
	Underline     = "\033[4m"
	Blink         = "\033[5m"
	Reverse       = "\033[7m"
	Hidden        = "\033[8m"
	Strikethrough = "\033[9m"
)

// Standard foreground colors.
const (
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Default = "\033[39m"
)

// Bright foreground colors. Gray is the conventional name for bright black.
const (
	Gray          = "\033[90m"
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

// Background colors.
const (
	BGBlack   = "\033[40m"
	BGRed     = "\033[41m"
	BGGreen   = "\033[42m"
	BGYellow  = "\033[43m"
	BGBlue    = "\033[44m"
	BGMagenta = "\033[45m"
	BGCyan    = "\033[46m"
	BGWhite   = "\033[47m"
	BGDefault = "\033[49m"
)

// Bright background colors.
const (
	BGBrightBlack   = "\033[100m"
	BGBrightRed     = "\033[101m"
	BGBrightGreen   = "\033[102m"
	BGBrightYellow  = "\033[103m"
	BGBrightBlue    = "\033[104m"
	BGBrightMagenta = "\033[105m"
	BGBrightCyan    = "\033[106m"
	BGBrightWhite   = "\033[107m"
)
