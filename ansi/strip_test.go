package ansi

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"empty", "", ""},
		{"single token", Red + "hello" + Reset, "hello"},
		{"nested tokens", Bold + Red + "hi" + Reset, "hi"},
		{"token only", FGRGB(1, 2, 3), ""},
		{"multi-param token", "\033[1;31mx\033[0m", "x"},
		{"bare reset", "\033[m", ""},
		{"token mid-string", "a" + Cyan + "b" + Reset + "c", "abc"},
		{"unicode content", Green + "héllo ✓" + Reset, "héllo ✓"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLen(t *testing.T) {
	t.Parallel()
	if got := VisibleLen(Cyan + "héllo" + Reset); got != 5 {
		t.Errorf("VisibleLen = %d, want 5", got)
	}
	if got := VisibleLen(""); got != 0 {
		t.Errorf("VisibleLen(empty) = %d, want 0", got)
	}
}

func TestGradientEmptyPalette(t *testing.T) {
	t.Parallel()
	if got := Gradient("hello", nil); got != "hello" {
		t.Errorf("Gradient with empty palette = %q, want input unchanged", got)
	}
	if strings.Contains(Gradient("hello", nil), Reset) {
		t.Error("Gradient with empty palette must not append a reset")
	}
}

func TestGradientSinglePalette(t *testing.T) {
	t.Parallel()
	got := Gradient("ab c", []string{Red})

	want := Red + "a" + Red + "b" + " " + Red + "c" + Reset
	if got != want {
		t.Errorf("Gradient = %q, want %q", got, want)
	}
}

func TestGradientMultiPalette(t *testing.T) {
	t.Parallel()
	got := Gradient("abcd", []string{Red, Blue})

	// step = 4/1 = 4, so every index maps to palette[0] except none reach 4.
	if !strings.HasPrefix(got, Red) {
		t.Errorf("Gradient should start with the first palette entry, got %q", got)
	}
	if !strings.HasSuffix(got, Reset) {
		t.Errorf("Gradient should end with a single reset, got %q", got)
	}
	if Strip(got) != "abcd" {
		t.Errorf("Gradient visible text = %q, want %q", Strip(got), "abcd")
	}
}

func TestGradientSpacesUnstyled(t *testing.T) {
	t.Parallel()
	got := Gradient("a b", []string{Red, Blue})

	// The space must be emitted bare, with no token in front of it.
	if strings.Contains(got, Red+" ") || strings.Contains(got, Blue+" ") {
		t.Errorf("spaces must pass through unstyled, got %q", got)
	}
	if Strip(got) != "a b" {
		t.Errorf("Gradient visible text = %q, want %q", Strip(got), "a b")
	}
}
