package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

// Pointer is the mouse state for one frame, in screen pixels.
type Pointer struct {
	Position rl.Vector2
	Pressed  bool
	Down     bool
	Released bool
}

// UICanvas is the root container for UI elements.
// Attach to a GameObject and add UI element children.
// The canvas handles layout calculation and drawing order.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{
		SortOrder: 0,
	}
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw(screen rl.Rectangle) {
	g := c.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	c.drawUIElement(g, screen)
}

// drawUIElement recursively draws a UI element and its children
func (c *UICanvas) drawUIElement(g *engine.GameObject, parentRect rl.Rectangle) {
	if g == nil || !g.Active {
		return
	}

	currentRect := layout(g, parentRect)

	// Backgrounds first, then content
	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(currentRect)
	}
	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.Draw(currentRect)
	}
	if field := engine.GetComponent[*UIInputField](g); field != nil {
		field.Draw(currentRect)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(currentRect)
	}

	// Draw children
	for _, child := range g.Children {
		c.drawUIElement(child, currentRect)
	}
}

// HandlePointer routes mouse input to the buttons under this canvas.
func (c *UICanvas) HandlePointer(screen rl.Rectangle, p Pointer) {
	g := c.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	c.updateUIElement(g, screen, p)
}

// updateUIElement recursively handles input for UI elements
func (c *UICanvas) updateUIElement(g *engine.GameObject, parentRect rl.Rectangle, p Pointer) {
	if g == nil || !g.Active {
		return
	}

	currentRect := layout(g, parentRect)

	// Handle button interactions
	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.HandlePointer(currentRect, p)
	}

	// Update children
	for _, child := range g.Children {
		c.updateUIElement(child, currentRect, p)
	}
}

func layout(g *engine.GameObject, parentRect rl.Rectangle) rl.Rectangle {
	rt := engine.GetComponent[*RectTransform](g)
	if rt == nil {
		return parentRect
	}
	rt.CalculateRect(parentRect)
	return rt.GetScreenRect()
}

// Serialization
func (c *UICanvas) TypeName() string { return "UICanvas" }

func (c *UICanvas) Serialize() map[string]any {
	return map[string]any{
		"type":      "UICanvas",
		"sortOrder": c.SortOrder,
	}
}

func (c *UICanvas) Deserialize(data map[string]any) {
	c.SortOrder = int(floatValue(data, "sortOrder", float32(c.SortOrder)))
}

func init() {
	engine.RegisterComponent("UICanvas", func() engine.Serializable {
		return NewUICanvas()
	})
}
