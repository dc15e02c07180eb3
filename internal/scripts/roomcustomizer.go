package scripts

import (
	"lounge/internal/components"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
	"lounge/internal/palette"
)

// RoomCustomizer repaints the walls from a palette and owns the small
// customization panel. The panel can be toggled by key near the object
// when Radius > 0.
type RoomCustomizer struct {
	prop

	Walls       []engine.GameObjectRef
	WallTag     string // used when Walls is empty
	Canvas      engine.GameObjectRef
	ColorText   engine.GameObjectRef
	NextButton  engine.GameObjectRef
	CloseButton engine.GameObjectRef

	Palette palette.Palette
	Index   int

	cursor *cursor.Arbiter
	walls  []*components.MeshRenderer
	canvas *engine.GameObject
	text   *components.UIText
}

func (r *RoomCustomizer) Start() {
	var scene *engine.Scene
	if g := r.GetGameObject(); g != nil {
		scene = g.Scene
	}

	refs := r.Walls
	if len(refs) == 0 && r.WallTag != "" && scene != nil {
		for _, g := range scene.FindByTag(r.WallTag) {
			refs = append(refs, engine.Ref(g))
		}
	}
	if len(refs) == 0 {
		r.log.Errorf("Wall Renderers not assigned or empty.")
		r.Disable()
		return
	}

	r.canvas = r.lookup(r.Canvas)
	if r.canvas == nil {
		r.log.Errorf("CustomizationCanvas not assigned.")
		r.Disable()
		return
	}

	r.walls = r.walls[:0]
	for _, ref := range refs {
		// Unresolved walls stay in the list as nil and are skipped when painting.
		r.walls = append(r.walls, engine.GetComponent[*components.MeshRenderer](r.lookup(ref)))
	}
	r.text = engine.GetComponent[*components.UIText](r.lookup(r.ColorText))

	if len(r.Palette) == 0 {
		r.Palette = palette.Default()
	}
	if r.Index < 0 || r.Index >= len(r.Palette) {
		r.Index = 0
	}

	if btn := engine.GetComponent[*components.UIButton](r.lookup(r.NextButton)); btn != nil {
		btn.OnClick.AddListener(func() { r.ChangeWallColor() })
	}
	if btn := engine.GetComponent[*components.UIButton](r.lookup(r.CloseButton)); btn != nil {
		btn.OnClick.AddListener(func() {
			if r.UIVisible() {
				r.ToggleUI()
			}
		})
	}

	r.applyColor()
	r.updateText()
	r.canvas.SetActive(false)
	if r.Radius > 0 {
		r.checkPlayer()
	}
}

func (r *RoomCustomizer) Update(deltaTime float32) {
	if r.Radius > 0 && r.triggered() {
		r.ToggleUI()
	}
}

// ChangeWallColor advances to the next palette entry, wrapping around.
func (r *RoomCustomizer) ChangeWallColor() {
	if len(r.Palette) == 0 {
		return
	}
	r.Index = r.Palette.Next(r.Index)
	r.applyColor()
	r.updateText()
	r.log.Infof("Wall color changed to: %s", r.Palette.Name(r.Index))
}

// CurrentName is the palette name of the wall color.
func (r *RoomCustomizer) CurrentName() string {
	return r.Palette.Name(r.Index)
}

// ToggleUI shows or hides the panel. While shown the panel holds the
// pointer free.
func (r *RoomCustomizer) ToggleUI() {
	if r.canvas == nil {
		return
	}
	visible := !r.canvas.Active
	r.canvas.SetActive(visible)
	if visible {
		r.log.Infof("Customization UI Enabled")
	} else {
		r.log.Infof("Customization UI Disabled")
	}
	if r.cursor == nil {
		return
	}
	if visible {
		r.cursor.Acquire(r.owner("RoomCustomizer"))
	} else {
		r.cursor.Release(r.owner("RoomCustomizer"))
	}
}

// UIVisible reports whether the customization panel is shown.
func (r *RoomCustomizer) UIVisible() bool {
	return r.canvas != nil && r.canvas.Active
}

func (r *RoomCustomizer) applyColor() {
	c := r.Palette[r.Index].Color
	for _, w := range r.walls {
		if w != nil {
			w.SetColor(c)
		}
	}
}

func (r *RoomCustomizer) updateText() {
	if r.text != nil {
		r.text.SetText(locale.T("Color: %s", r.Palette.Name(r.Index)))
	}
}

func (r *RoomCustomizer) Prompt() (string, bool) {
	if r.Radius <= 0 || !r.inRange() {
		return "", false
	}
	return locale.T("[%s] Customize room", r.Key), true
}

func init() {
	engine.RegisterScriptWithApplier("RoomCustomizer", roomCustomizerFactory, roomCustomizerSerializer, roomCustomizerApplier)
}

func roomCustomizerFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	r := &RoomCustomizer{
		prop:        newProp(ctx, "RoomCustomizer", props, 3.0, input.KeyC),
		Walls:       engine.PropRefs(props, "walls"),
		WallTag:     engine.PropString(props, "wallTag", ""),
		Canvas:      engine.PropRef(props, "canvas"),
		ColorText:   engine.PropRef(props, "colorText"),
		NextButton:  engine.PropRef(props, "nextButton"),
		CloseButton: engine.PropRef(props, "closeButton"),
		Index:       int(engine.PropFloat(props, "index", 0)),
		cursor:      ctx.Cursor,
	}
	pal, err := palette.FromProps(props["colors"])
	if err != nil {
		r.log.Warnf("%v", err)
	}
	r.Palette = pal
	return r
}

func roomCustomizerSerializer(c engine.Component) map[string]any {
	r, ok := c.(*RoomCustomizer)
	if !ok {
		return nil
	}
	props := r.zoneProps(map[string]any{
		"walls":       engine.RefUIDs(r.Walls),
		"canvas":      r.Canvas.UID,
		"colorText":   r.ColorText.UID,
		"nextButton":  r.NextButton.UID,
		"closeButton": r.CloseButton.UID,
		"colors":      r.Palette.Props(),
	})
	if r.WallTag != "" {
		props["wallTag"] = r.WallTag
	}
	return props
}

func roomCustomizerApplier(c engine.Component, propName string, value any) bool {
	r, ok := c.(*RoomCustomizer)
	if !ok {
		return false
	}
	return r.applyZone(propName, value)
}
