package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// named mirrors raylib's predefined colors so scene files can say "Beige".
var named = map[string]color.RGBA{
	"lightgray": {200, 200, 200, 255},
	"gray":      {130, 130, 130, 255},
	"darkgray":  {80, 80, 80, 255},
	"yellow":    {253, 249, 0, 255},
	"gold":      {255, 203, 0, 255},
	"orange":    {255, 161, 0, 255},
	"pink":      {255, 109, 194, 255},
	"red":       {230, 41, 55, 255},
	"maroon":    {190, 33, 55, 255},
	"green":     {0, 228, 48, 255},
	"lime":      {0, 158, 47, 255},
	"darkgreen": {0, 117, 44, 255},
	"skyblue":   {102, 191, 255, 255},
	"blue":      {0, 121, 241, 255},
	"darkblue":  {0, 82, 172, 255},
	"purple":    {200, 122, 255, 255},
	"violet":    {135, 60, 190, 255},
	"beige":     {211, 176, 131, 255},
	"brown":     {127, 106, 79, 255},
	"darkbrown": {76, 63, 47, 255},
	"white":     {255, 255, 255, 255},
	"black":     {0, 0, 0, 255},
	"magenta":   {255, 0, 255, 255},
}

// ParseColor accepts a color name ("Beige"), a hex string ("#ccccf2" or
// "#ccccf2ff"), or a JSON array of 3 or 4 numbers. Arrays whose components
// are all <= 1 are read as unit floats, otherwise as 0-255.
func ParseColor(v any) (color.RGBA, error) {
	switch c := v.(type) {
	case string:
		return parseString(c)
	case []any:
		return parseArray(c)
	case []float64:
		vals := make([]any, len(c))
		for i, f := range c {
			vals[i] = f
		}
		return parseArray(vals)
	default:
		return color.RGBA{}, fmt.Errorf("unsupported color value %v", v)
	}
}

func parseString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func parseArray(vals []any) (color.RGBA, error) {
	if len(vals) != 3 && len(vals) != 4 {
		return color.RGBA{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(vals))
	}
	fs := make([]float64, 4)
	fs[3] = -1
	unitScale := true
	for i, v := range vals {
		f, ok := v.(float64)
		if !ok {
			return color.RGBA{}, fmt.Errorf("color component %d is %T, want number", i, v)
		}
		if f > 1 {
			unitScale = false
		}
		fs[i] = f
	}
	if fs[3] < 0 {
		if unitScale {
			fs[3] = 1
		} else {
			fs[3] = 255
		}
	}
	if unitScale {
		return color.RGBA{R: unit(fs[0]), G: unit(fs[1]), B: unit(fs[2]), A: unit(fs[3])}, nil
	}
	return color.RGBA{R: byteOf(fs[0]), G: byteOf(fs[1]), B: byteOf(fs[2]), A: byteOf(fs[3])}, nil
}

func byteOf(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f + 0.5)
	}
}

// Hex formats c as "#rrggbbaa".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromProps builds a palette from a scene prop: a list of objects with
// "name" and "color" keys. Entries with unparsable colors are reported in
// the returned error but the rest of the palette is kept.
func FromProps(v any) (Palette, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	var p Palette
	var bad []string
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			bad = append(bad, strconv.Itoa(i))
			continue
		}
		c, err := ParseColor(m["color"])
		if err != nil {
			bad = append(bad, strconv.Itoa(i))
			continue
		}
		name, _ := m["name"].(string)
		p = append(p, Swatch{Name: name, Color: c})
	}
	if len(bad) > 0 {
		return p, fmt.Errorf("invalid palette entries: %s", strings.Join(bad, ", "))
	}
	return p, nil
}

// Props is the inverse of FromProps.
func (p Palette) Props() []any {
	out := make([]any, 0, len(p))
	for _, s := range p {
		out = append(out, map[string]any{"name": s.Name, "color": Hex(s.Color)})
	}
	return out
}
