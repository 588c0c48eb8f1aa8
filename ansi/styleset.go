package ansi

import "github.com/charmbracelet/lipgloss"

// StyleSet exposes the active theme as lipgloss styles for callers that
// embed toolkit output in a charmbracelet-based interface. Each field is
// ready to use with Render().
type StyleSet struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Header    lipgloss.Style
}

// themeColors maps a theme name to its lipgloss color palette. The raw
// escape tokens in Theme cannot be handed to lipgloss directly, so the two
// views are kept in parallel.
var themeColors = map[string]struct {
	primary, secondary, success, warning, err, info string
}{
	"dark":  {"39", "245", "82", "220", "196", "141"},
	"light": {"27", "240", "28", "130", "124", "54"},
}

// Styles returns the StyleSet matching the currently active theme.
// When NoColorTheme is active, every style renders text unstyled.
func Styles() StyleSet {
	name := CurrentTheme().Name
	c, ok := themeColors[name]
	if !ok {
		// "none" and unknown themes render without color.
		plain := lipgloss.NewStyle()
		return StyleSet{
			Primary:   plain,
			Secondary: plain,
			Success:   plain,
			Warning:   plain,
			Error:     plain,
			Info:      plain,
			Header:    lipgloss.NewStyle().Bold(true),
		}
	}

	return StyleSet{
		Primary:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.primary)),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(c.secondary)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.success)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.warning)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.err)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.info)),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.primary)),
	}
}
