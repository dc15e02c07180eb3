package world

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/scripts"
)

const (
	promptFontSize = 20
	crosshairSize  = 6
)

// Renderer draws a World each frame: the room in 3D, then screen-space UI.
type Renderer struct {
	Background rl.Color
	FloorSize  float32
	FloorColor rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.NewColor(20, 20, 30, 255),
		FloorSize:  20,
		FloorColor: rl.NewColor(70, 60, 55, 255),
	}
}

// Draw must run between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(w *World, screen rl.Rectangle) {
	rl.ClearBackground(r.Background)

	if cam := w.MainCamera(); cam != nil {
		rl.BeginMode3D(cam.GetRaylibCamera())
		r.drawScene(w.Scene.GameObjects)
		rl.EndMode3D()
	}

	for _, c := range w.Canvases() {
		c.Draw(screen)
	}
	r.drawMixers(w, screen)
	r.drawPrompts(w.Prompts(), screen)
	if w.Cursor.Locked() {
		r.drawCrosshair(screen)
	}
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: r.FloorSize, Y: r.FloorSize}, r.FloorColor)

	for _, g := range gameObjects {
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			mr.Draw()
		}
		if vp := engine.GetComponent[*components.VideoPlayer](g); vp != nil {
			vp.Draw()
		}
	}
}

// drawMixers shows the crossfader of any DJ booth the player stands at.
// With the pointer free the slider can be dragged; the booth picks the new
// value up on its next tick.
func (r *Renderer) drawMixers(w *World, screen rl.Rectangle) {
	for _, g := range w.Scene.GameObjects {
		booth := engine.GetComponent[*scripts.DJBooth](g)
		if booth == nil || !engine.IsEnabled(booth) || !g.ActiveInHierarchy() {
			continue
		}
		if _, near := booth.Prompt(); !near {
			continue
		}
		bounds := rl.Rectangle{
			X:      screen.X + screen.Width/2 - 150,
			Y:      screen.Y + screen.Height - 30,
			Width:  300,
			Height: 20,
		}
		a, b := booth.Gains()
		value := gui.Slider(bounds, fmt.Sprintf("A %.0f%%", a*100), fmt.Sprintf("%.0f%% B", b*100), booth.Fader.Value, 0, 1)
		if !w.Cursor.Locked() {
			booth.Fader.Value = value
		}
	}
}

func (r *Renderer) drawPrompts(prompts []string, screen rl.Rectangle) {
	y := int32(screen.Y + screen.Height - 64)
	for i := len(prompts) - 1; i >= 0; i-- {
		width := rl.MeasureText(prompts[i], promptFontSize)
		x := int32(screen.X+screen.Width/2) - width/2
		rl.DrawRectangle(x-8, y-4, width+16, promptFontSize+8, rl.Fade(rl.Black, 0.5))
		rl.DrawText(prompts[i], x, y, promptFontSize, rl.RayWhite)
		y -= promptFontSize + 12
	}
}

func (r *Renderer) drawCrosshair(screen rl.Rectangle) {
	cx := int32(screen.X + screen.Width/2)
	cy := int32(screen.Y + screen.Height/2)
	rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, rl.RayWhite)
}
