package ansi

import "testing"

func TestSetTheme(t *testing.T) {
	original := CurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown-theme", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := CurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitThemeNoColor(t *testing.T) {
	original := CurrentTheme()
	defer SetCurrentTheme(original)

	InitTheme(true)
	theme := CurrentTheme()
	if theme.Name != "none" {
		t.Fatalf("InitTheme(true): theme = %q, want %q", theme.Name, "none")
	}
	if theme.Primary != "" || theme.Error != "" || theme.Reset != "" {
		t.Error("NoColorTheme must carry empty escape tokens")
	}
}

func TestInitThemeEnvOverride(t *testing.T) {
	original := CurrentTheme()
	defer SetCurrentTheme(original)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if got := CurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme with NO_COLOR set: theme = %q, want %q", got, "none")
	}
}

func TestStylesFollowTheme(t *testing.T) {
	original := CurrentTheme()
	defer SetCurrentTheme(original)

	SetTheme("dark")
	if s := Styles(); s.Header.GetBold() != true {
		t.Error("dark StyleSet header should be bold")
	}

	SetTheme("none")
	s := Styles()
	if s.Primary.GetForeground() != s.Secondary.GetForeground() {
		t.Error("no-color StyleSet should not set foreground colors")
	}
}
