package components

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/palette"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

var alignNames = map[string]TextAlignment{
	"left":   TextAlignLeft,
	"center": TextAlignCenter,
	"right":  TextAlignRight,
}

// UIText displays text on screen. Scripts write status lines into it.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{
		Text:      "Text",
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
	}
}

// SetText replaces the displayed text.
func (t *UIText) SetText(s string) {
	t.Text = s
}

// Draw renders the text within the given rect. Each line is aligned on its own.
func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}

	lines := strings.Split(t.Text, "\n")
	lineHeight := float32(t.FontSize) + 4
	// Vertically center the block in rect
	y := rect.Y + (rect.Height-lineHeight*float32(len(lines)))/2

	for _, line := range lines {
		// Measure text for alignment
		textWidth := float32(rl.MeasureText(line, t.FontSize))

		var x float32
		switch t.Alignment {
		case TextAlignLeft:
			x = rect.X
		case TextAlignCenter:
			x = rect.X + (rect.Width-textWidth)/2
		case TextAlignRight:
			x = rect.X + rect.Width - textWidth
		}

		rl.DrawText(line, int32(x), int32(y), t.FontSize, t.Color)
		y += lineHeight
	}
}

// Serialization
func (t *UIText) TypeName() string { return "UIText" }

func (t *UIText) Serialize() map[string]any {
	data := map[string]any{
		"type":     "UIText",
		"text":     t.Text,
		"fontSize": t.FontSize,
		"color":    palette.Hex(t.Color),
	}
	for name, a := range alignNames {
		if a == t.Alignment {
			data["alignment"] = name
		}
	}
	return data
}

func (t *UIText) Deserialize(data map[string]any) {
	t.Text = stringValue(data, "text", t.Text)
	t.FontSize = int32(floatValue(data, "fontSize", float32(t.FontSize)))
	t.Color = colorValue(data, "color", t.Color)
	if v, ok := data["alignment"].(string); ok {
		if a, ok := alignNames[strings.ToLower(v)]; ok {
			t.Alignment = a
		}
	}
}

func init() {
	engine.RegisterComponent("UIText", func() engine.Serializable {
		return NewUIText()
	})
}
