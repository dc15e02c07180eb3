package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorStretchAll
)

// presetAnchors maps each point preset to its anchor in parent space.
// Y grows downwards, so "top" is 0.
var presetAnchors = map[AnchorPreset]rl.Vector2{
	AnchorTopLeft:      {X: 0, Y: 0},
	AnchorTopCenter:    {X: 0.5, Y: 0},
	AnchorTopRight:     {X: 1, Y: 0},
	AnchorMiddleLeft:   {X: 0, Y: 0.5},
	AnchorMiddleCenter: {X: 0.5, Y: 0.5},
	AnchorMiddleRight:  {X: 1, Y: 0.5},
	AnchorBottomLeft:   {X: 0, Y: 1},
	AnchorBottomCenter: {X: 0.5, Y: 1},
	AnchorBottomRight:  {X: 1, Y: 1},
}

// anchorPresets are the preset names scene files may use under "anchor".
var anchorPresets = map[string]AnchorPreset{
	"topLeft":      AnchorTopLeft,
	"topCenter":    AnchorTopCenter,
	"topRight":     AnchorTopRight,
	"middleLeft":   AnchorMiddleLeft,
	"middleCenter": AnchorMiddleCenter,
	"middleRight":  AnchorMiddleRight,
	"bottomLeft":   AnchorBottomLeft,
	"bottomCenter": AnchorBottomCenter,
	"bottomRight":  AnchorBottomRight,
	"stretchAll":   AnchorStretchAll,
}

// RectTransform lays a panel element out inside its parent's rectangle.
//
// With a point anchor (AnchorMin == AnchorMax) the element is SizeDelta big
// and AnchoredPosition moves its Pivot relative to the anchor. With a
// stretched anchor SizeDelta is added to the anchored span, so negative
// values inset the element.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin        rl.Vector2
	AnchorMax        rl.Vector2
	Pivot            rl.Vector2
	AnchoredPosition rl.Vector2
	SizeDelta        rl.Vector2

	rect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	center := rl.Vector2{X: 0.5, Y: 0.5}
	return &RectTransform{
		AnchorMin: center,
		AnchorMax: center,
		Pivot:     center,
		SizeDelta: rl.Vector2{X: 100, Y: 30},
	}
}

func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	if preset == AnchorStretchAll {
		rt.AnchorMin = rl.Vector2{}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
		return
	}
	if a, ok := presetAnchors[preset]; ok {
		rt.AnchorMin = a
		rt.AnchorMax = a
	}
}

// GetScreenRect returns the rectangle from the last CalculateRect.
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.rect
}

func (rt *RectTransform) CalculateRect(parent rl.Rectangle) {
	lo := rl.Vector2{
		X: parent.X + parent.Width*rt.AnchorMin.X,
		Y: parent.Y + parent.Height*rt.AnchorMin.Y,
	}
	hi := rl.Vector2{
		X: parent.X + parent.Width*rt.AnchorMax.X,
		Y: parent.Y + parent.Height*rt.AnchorMax.Y,
	}

	if rt.AnchorMin == rt.AnchorMax {
		w, h := rt.SizeDelta.X, rt.SizeDelta.Y
		rt.rect = rl.Rectangle{
			X:      lo.X + rt.AnchoredPosition.X - w*rt.Pivot.X,
			Y:      lo.Y + rt.AnchoredPosition.Y - h*rt.Pivot.Y,
			Width:  w,
			Height: h,
		}
		return
	}
	rt.rect = rl.Rectangle{
		X:      lo.X + rt.AnchoredPosition.X,
		Y:      lo.Y + rt.AnchoredPosition.Y,
		Width:  hi.X - lo.X + rt.SizeDelta.X,
		Height: hi.Y - lo.Y + rt.SizeDelta.Y,
	}
}

func (rt *RectTransform) ContainsPoint(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, rt.rect)
}

func (rt *RectTransform) TypeName() string { return "RectTransform" }

func (rt *RectTransform) Serialize() map[string]any {
	return map[string]any{
		"type":             "RectTransform",
		"anchorMin":        []float32{rt.AnchorMin.X, rt.AnchorMin.Y},
		"anchorMax":        []float32{rt.AnchorMax.X, rt.AnchorMax.Y},
		"pivot":            []float32{rt.Pivot.X, rt.Pivot.Y},
		"anchoredPosition": []float32{rt.AnchoredPosition.X, rt.AnchoredPosition.Y},
		"sizeDelta":        []float32{rt.SizeDelta.X, rt.SizeDelta.Y},
	}
}

// Deserialize applies an "anchor" preset first so explicit anchor values
// in the same entry win.
func (rt *RectTransform) Deserialize(data map[string]any) {
	if name, ok := data["anchor"].(string); ok {
		if preset, ok := anchorPresets[name]; ok {
			rt.SetAnchorPreset(preset)
		}
	}
	rt.AnchorMin = vec2Value(data, "anchorMin", rt.AnchorMin)
	rt.AnchorMax = vec2Value(data, "anchorMax", rt.AnchorMax)
	rt.Pivot = vec2Value(data, "pivot", rt.Pivot)
	rt.AnchoredPosition = vec2Value(data, "anchoredPosition", rt.AnchoredPosition)
	rt.SizeDelta = vec2Value(data, "sizeDelta", rt.SizeDelta)
}

func init() {
	engine.RegisterComponent("RectTransform", func() engine.Serializable {
		return NewRectTransform()
	})
}
