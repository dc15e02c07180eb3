package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/palette"
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// UIButton is a clickable panel element. Listeners on OnClick run when the
// pointer is pressed and released over the button, or when Click is
// called directly.
type UIButton struct {
	engine.BaseComponent

	Label     string
	FontSize  int32
	TextColor rl.Color

	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color
	BorderColor   rl.Color
	BorderWidth   int32

	State    ButtonState
	Disabled bool

	OnClick engine.Event

	armed bool
}

func NewUIButton() *UIButton {
	return &UIButton{
		FontSize:      18,
		TextColor:     rl.NewColor(61, 42, 26, 255),
		NormalColor:   rl.NewColor(236, 214, 186, 255),
		HoverColor:    rl.NewColor(245, 226, 200, 255),
		PressedColor:  rl.NewColor(214, 184, 150, 255),
		DisabledColor: rl.NewColor(200, 190, 180, 255),
		BorderColor:   rl.NewColor(185, 139, 94, 255),
		BorderWidth:   1,
	}
}

// Click fires OnClick unless the button is disabled.
func (b *UIButton) Click() bool {
	if b.Disabled {
		return false
	}
	b.OnClick.Invoke()
	return true
}

func (b *UIButton) fill() rl.Color {
	if b.Disabled {
		return b.DisabledColor
	}
	switch b.State {
	case ButtonHovered:
		return b.HoverColor
	case ButtonPressed:
		return b.PressedColor
	}
	return b.NormalColor
}

func (b *UIButton) Draw(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, b.fill())
	if b.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(b.BorderWidth), b.BorderColor)
	}
	if b.Label == "" {
		return
	}
	w := float32(rl.MeasureText(b.Label, b.FontSize))
	x := rect.X + (rect.Width-w)/2
	y := rect.Y + (rect.Height-float32(b.FontSize))/2
	rl.DrawText(b.Label, int32(x), int32(y), b.FontSize, b.TextColor)
}

// HandlePointer updates the visual state and clicks on a release that
// follows a press on this button.
func (b *UIButton) HandlePointer(rect rl.Rectangle, p Pointer) {
	if b.Disabled {
		b.State = ButtonDisabled
		b.armed = false
		return
	}

	if !rl.CheckCollisionPointRec(p.Position, rect) {
		b.State = ButtonNormal
		if p.Released {
			b.armed = false
		}
		return
	}

	switch {
	case p.Pressed, p.Down && b.armed:
		b.State = ButtonPressed
		b.armed = true
	default:
		b.State = ButtonHovered
	}
	if p.Released && b.armed {
		b.armed = false
		b.Click()
	}
}

func (b *UIButton) TypeName() string { return "UIButton" }

func (b *UIButton) Serialize() map[string]any {
	return map[string]any{
		"type":          "UIButton",
		"label":         b.Label,
		"fontSize":      b.FontSize,
		"textColor":     palette.Hex(b.TextColor),
		"normalColor":   palette.Hex(b.NormalColor),
		"hoverColor":    palette.Hex(b.HoverColor),
		"pressedColor":  palette.Hex(b.PressedColor),
		"disabledColor": palette.Hex(b.DisabledColor),
		"borderColor":   palette.Hex(b.BorderColor),
		"borderWidth":   b.BorderWidth,
		"disabled":      b.Disabled,
	}
}

func (b *UIButton) Deserialize(data map[string]any) {
	b.Label = stringValue(data, "label", b.Label)
	b.FontSize = int32(floatValue(data, "fontSize", float32(b.FontSize)))
	b.TextColor = colorValue(data, "textColor", b.TextColor)
	b.NormalColor = colorValue(data, "normalColor", b.NormalColor)
	b.HoverColor = colorValue(data, "hoverColor", b.HoverColor)
	b.PressedColor = colorValue(data, "pressedColor", b.PressedColor)
	b.DisabledColor = colorValue(data, "disabledColor", b.DisabledColor)
	b.BorderColor = colorValue(data, "borderColor", b.BorderColor)
	b.BorderWidth = int32(floatValue(data, "borderWidth", float32(b.BorderWidth)))
	b.Disabled = boolValue(data, "disabled", b.Disabled)
}

func init() {
	engine.RegisterComponent("UIButton", func() engine.Serializable {
		return NewUIButton()
	})
}
