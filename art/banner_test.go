package art

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpratte/qol/ansi"
)

func TestBannerHasThreeRows(t *testing.T) {
	t.Parallel()
	lines := strings.Split(Banner("GO"), "\n")
	assert.Len(t, lines, 3)
}

func TestBannerRepeatsGlyphPerRow(t *testing.T) {
	t.Parallel()
	lines := strings.Split(Banner("HI"), "\n")
	want := blockFont['H'] + blockFont['I']
	for _, line := range lines {
		assert.Equal(t, want, ansi.Strip(line))
	}
}

func TestBannerUppercasesInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Banner("go"), Banner("GO"))
}

func TestBannerUnknownCharacterRendersBlank(t *testing.T) {
	t.Parallel()
	lines := strings.Split(Banner("€"), "\n")
	for _, line := range lines {
		assert.Equal(t, blockFont[' '], ansi.Strip(line))
	}
}

func TestBannerColor(t *testing.T) {
	t.Parallel()
	banner := Banner("A", WithBannerColor(ansi.Magenta))
	for _, line := range strings.Split(banner, "\n") {
		assert.True(t, strings.HasPrefix(line, ansi.Magenta))
		assert.True(t, strings.HasSuffix(line, ansi.Reset))
	}
}
