package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		pos  float64
		want string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{0.5, "#7f7f7f"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InterpolateColor("#000000", "#ffffff", tt.pos))
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	assert.Equal(t, []uint8{0xcb, 0xa6, 0xf7}, []uint8{r, g, b})

	r, g, b = ParseHexColor("bad")
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestApplyGradient(t *testing.T) {
	th := NewCatppuccinMocha()
	out := ApplyGradient("a b", th.Primary, th.Secondary)
	assert.Equal(t, "a b", ansi.Strip(out))
	assert.Empty(t, ApplyGradient("", th.Primary, th.Secondary))
}

func TestStylesAreCached(t *testing.T) {
	th := NewCatppuccinMocha()
	assert.Same(t, th.S(), th.S())
}
