package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"
)

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		active theme.Theme
		want   float64
	}{
		{"no promotion", 20, theme.White, 20},
		{"blue is not promotional", 20, theme.Blue, 20},
		{"rainbow discounts 20%", 20, theme.Rainbow, 16},
		{"rainbow on zero", 0, theme.Rainbow, 0},
		{"gold frees cheap prints", 2, theme.Gold, 0},
		{"gold discounts mid-range 30%", 15, theme.Gold, 10.5},
		{"gold caps expensive prints", 40, theme.Gold, 10},
		{"gold at lower bound", 3, theme.Gold, 2.1},
		{"gold at upper bound", 30, theme.Gold, 21},
		{"black broadcast does not touch price", 20, theme.Black, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DisplayPrice(tt.base, tt.active), 1e-9)
		})
	}
}

func TestFree(t *testing.T) {
	assert.True(t, Free(DisplayPrice(2, theme.Gold)))
	assert.False(t, Free(DisplayPrice(15, theme.Gold)))
	assert.False(t, Free(DisplayPrice(20, theme.White)))
}
