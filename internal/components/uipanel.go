package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/palette"
)

// UIPanel is a simple background panel/container. Panels are shown and
// hidden by activating their GameObject.
type UIPanel struct {
	engine.BaseComponent

	// Background color
	Color rl.Color

	// Border settings
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // Rounded corners (0 = sharp)
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:        rl.NewColor(30, 30, 40, 220),
		BorderColor:  rl.NewColor(60, 60, 75, 255),
		BorderWidth:  1,
		BorderRadius: 0,
	}
}

// Draw renders the panel background
func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.BorderRadius > 0 {
		// Rounded rectangle
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
	} else {
		// Sharp rectangle
		rl.DrawRectangleRec(rect, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
		}
	}
}

// Visible reports whether the panel's object is shown.
func (p *UIPanel) Visible() bool {
	g := p.GetGameObject()
	return g != nil && g.Active
}

// SetVisible shows or hides the panel's object.
func (p *UIPanel) SetVisible(visible bool) {
	if g := p.GetGameObject(); g != nil {
		g.SetActive(visible)
	}
}

// Serialization
func (p *UIPanel) TypeName() string { return "UIPanel" }

func (p *UIPanel) Serialize() map[string]any {
	return map[string]any{
		"type":         "UIPanel",
		"color":        palette.Hex(p.Color),
		"borderColor":  palette.Hex(p.BorderColor),
		"borderWidth":  p.BorderWidth,
		"borderRadius": p.BorderRadius,
	}
}

func (p *UIPanel) Deserialize(data map[string]any) {
	p.Color = colorValue(data, "color", p.Color)
	p.BorderColor = colorValue(data, "borderColor", p.BorderColor)
	p.BorderWidth = int32(floatValue(data, "borderWidth", float32(p.BorderWidth)))
	p.BorderRadius = floatValue(data, "borderRadius", p.BorderRadius)
}

func init() {
	engine.RegisterComponent("UIPanel", func() engine.Serializable {
		return NewUIPanel()
	})
}
