package components

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

// UIInputField is a single-line text box. Clicking it toggles editing.
type UIInputField struct {
	engine.BaseComponent

	Text        string
	Placeholder string
	MaxLength   int

	editing bool
}

func NewUIInputField() *UIInputField {
	return &UIInputField{MaxLength: 64}
}

// SetText replaces the content, truncated to MaxLength bytes.
func (f *UIInputField) SetText(s string) {
	if f.MaxLength > 0 && len(s) > f.MaxLength {
		s = s[:f.MaxLength]
	}
	f.Text = s
}

// Editing reports whether the field has keyboard focus.
func (f *UIInputField) Editing() bool {
	return f.editing
}

// Blur drops keyboard focus, e.g. when the owning panel closes.
func (f *UIInputField) Blur() {
	f.editing = false
}

// Draw renders the text box and, while editing, consumes typed characters.
func (f *UIInputField) Draw(rect rl.Rectangle) {
	if !f.editing && f.Text == "" && f.Placeholder != "" {
		gui.TextBox(rect, &f.Placeholder, f.MaxLength, false)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
			f.editing = true
		}
		return
	}
	if gui.TextBox(rect, &f.Text, f.MaxLength, f.editing) {
		f.editing = !f.editing
	}
}

func (f *UIInputField) TypeName() string { return "UIInputField" }

func (f *UIInputField) Serialize() map[string]any {
	return map[string]any{
		"type":        "UIInputField",
		"text":        f.Text,
		"placeholder": f.Placeholder,
		"maxLength":   f.MaxLength,
	}
}

func (f *UIInputField) Deserialize(data map[string]any) {
	f.Placeholder = stringValue(data, "placeholder", f.Placeholder)
	f.MaxLength = int(floatValue(data, "maxLength", float32(f.MaxLength)))
	f.SetText(stringValue(data, "text", f.Text))
}

func init() {
	engine.RegisterComponent("UIInputField", func() engine.Serializable {
		return NewUIInputField()
	})
}
