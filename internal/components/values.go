package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/palette"
)

// Scene-file value readers. JSON numbers arrive as float64 and arrays as
// []any; malformed values leave the current setting alone.

func colorValue(data map[string]any, key string, def rl.Color) rl.Color {
	v, ok := data[key]
	if !ok {
		return def
	}
	c, err := palette.ParseColor(v)
	if err != nil {
		return def
	}
	return c
}

func floats(v any, n int) ([]float32, bool) {
	list, ok := v.([]any)
	if !ok || len(list) < n {
		return nil, false
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, ok := list[i].(float64)
		if !ok {
			return nil, false
		}
		out[i] = float32(f)
	}
	return out, true
}

func vec2Value(data map[string]any, key string, def rl.Vector2) rl.Vector2 {
	if f, ok := floats(data[key], 2); ok {
		return rl.Vector2{X: f[0], Y: f[1]}
	}
	return def
}

func vec3Value(data map[string]any, key string, def rl.Vector3) rl.Vector3 {
	if f, ok := floats(data[key], 3); ok {
		return rl.Vector3{X: f[0], Y: f[1], Z: f[2]}
	}
	return def
}

func floatValue(data map[string]any, key string, def float32) float32 {
	if v, ok := data[key].(float64); ok {
		return float32(v)
	}
	return def
}

func boolValue(data map[string]any, key string, def bool) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return def
}

func stringValue(data map[string]any, key string, def string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return def
}
