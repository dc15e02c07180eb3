// Package palette holds the named wall colors the room customizer cycles
// through.
package palette

import (
	"image/color"
)

// Swatch is one palette entry. Name may be empty.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette is an ordered, wrapping list of swatches.
type Palette []Swatch

// Default is the built-in wall palette, used when a scene supplies none.
func Default() Palette {
	return Palette{
		{"White", rgb(1, 1, 1)},
		{"Original Light Blue", rgb(0.8, 0.8, 0.95)},
		{"Soft Red", rgb(0.9, 0.7, 0.7)},
		{"Soft Green", rgb(0.7, 0.9, 0.7)},
		{"Soft Blue", rgb(0.7, 0.7, 0.9)},
		{"Soft Yellow", rgb(0.9, 0.9, 0.7)},
	}
}

// Next returns the index after i, wrapping to 0. An empty palette yields 0.
func (p Palette) Next(i int) int {
	if len(p) == 0 {
		return 0
	}
	return (i + 1) % len(p)
}

// Name returns the display name of swatch i, or "Custom" when it has none.
func (p Palette) Name(i int) string {
	if i < 0 || i >= len(p) || p[i].Name == "" {
		return "Custom"
	}
	return p[i].Name
}

// rgb converts unit floats to an opaque color, rounding to nearest.
func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: unit(r), G: unit(g), B: unit(b), A: 255}
}

func unit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
