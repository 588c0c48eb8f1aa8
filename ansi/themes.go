package ansi

import (
	"os"
	"sync"
)

// Theme defines a color scheme for console output.
// Each field contains an ANSI escape token for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape token for bold text.
	Bold string
	// Underline is the escape token for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   FG256(39),  // Bright blue
		Secondary: FG256(245), // Grey
		Success:   FG256(82),  // Bright green
		Warning:   FG256(220), // Yellow
		Error:     FG256(196), // Red
		Info:      FG256(141), // Purple
		Bold:      Bold,
		Underline: Underline,
		Reset:     Reset,
	}

	// LightTheme is optimized for light terminal backgrounds.
	// Uses darker colors for better readability.
	LightTheme = Theme{
		Name:      "light",
		Primary:   FG256(27),  // Dark blue
		Secondary: FG256(240), // Dark grey
		Success:   FG256(28),  // Dark green
		Warning:   FG256(130), // Orange
		Error:     FG256(124), // Dark red
		Info:      FG256(54),  // Dark purple
		Bold:      Bold,
		Underline: Underline,
		Reset:     Reset,
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or color is disabled by the caller.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used by package-level consumers.
	// Defaults to DarkTheme but can be changed via SetTheme or InitTheme.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// CurrentTheme returns the currently active theme in a thread-safe manner.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "dark":
		currentTheme = DarkTheme
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty value disables colors (per no-color.org spec)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}
