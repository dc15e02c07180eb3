// Package world ties a loaded scene to the per-tick plumbing its scripts
// use: input polling, the cursor arbiter, logging, and the audio mixer.
// Both the raylib window and the headless simulator drive a World.
package world

import (
	"errors"
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/audio"
	"lounge/internal/components"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/interact"
	"lounge/internal/logging"
)

// PlayerName is the object used as the player when a scene file does not
// name one by UID.
const PlayerName = "PlayerAvatar"

var (
	ErrNoPlayer = errors.New("scene has no player")
	ErrNoButton = errors.New("no button")
	ErrNoField  = errors.New("no active input field")
)

type World struct {
	Scene  *engine.Scene
	Player *engine.GameObject
	Input  *input.State
	Device input.Device
	Cursor *cursor.Arbiter
	Log    *logging.Logger

	// Overrides are script props applied right after a scene loads, keyed
	// by script name and then prop name.
	Overrides map[string]map[string]any

	ticks   int
	elapsed float32
}

// New creates an empty world reading dev. A nil logger discards output.
func New(dev input.Device, arb *cursor.Arbiter, log *logging.Logger) *World {
	if arb == nil {
		arb = cursor.New(nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &World{
		Scene:  engine.NewScene("Main"),
		Input:  input.NewState(),
		Device: dev,
		Cursor: arb,
		Log:    log,
	}
}

func (w *World) scriptContext() engine.ScriptContext {
	return engine.ScriptContext{
		Player: w.Player,
		Input:  w.Input,
		Cursor: w.Cursor,
		Log:    w.Log,
		Scene:  w.Scene,
	}
}

// Start runs every component's Start once.
func (w *World) Start() {
	w.Scene.Start()
}

// Update advances one tick: sample input, update every active object in
// scene order, then mix audio.
func (w *World) Update(deltaTime float32) {
	w.Input.Poll(w.Device)
	w.Scene.Update(deltaTime)
	audio.Update()
	w.ticks++
	w.elapsed += deltaTime
}

// Ticks is the number of Update calls so far.
func (w *World) Ticks() int {
	return w.ticks
}

// Elapsed is the simulated time in seconds.
func (w *World) Elapsed() float32 {
	return w.elapsed
}

// Teleport moves the player to pos.
func (w *World) Teleport(pos rl.Vector3) error {
	if w.Player == nil {
		return ErrNoPlayer
	}
	w.Player.Transform.Position = pos
	return nil
}

// Click presses the button on the named object.
func (w *World) Click(name string) error {
	g := w.Scene.FindByName(name)
	btn := engine.GetComponent[*components.UIButton](g)
	if btn == nil {
		return fmt.Errorf("click %q: %w", name, ErrNoButton)
	}
	if !g.ActiveInHierarchy() {
		return fmt.Errorf("click %q: button is hidden", name)
	}
	btn.Click()
	return nil
}

// TypeText replaces the text of the first input field that is currently
// shown.
func (w *World) TypeText(text string) error {
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		if f := engine.GetComponent[*components.UIInputField](g); f != nil {
			f.SetText(text)
			return nil
		}
	}
	return ErrNoField
}

// Prompts returns the hints of every interactable the player can use
// right now, in scene order.
func (w *World) Prompts() []string {
	var out []string
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		for _, c := range g.Components() {
			p, ok := c.(interact.Prompter)
			if !ok || !engine.IsEnabled(c) {
				continue
			}
			if text, ok := p.Prompt(); ok {
				out = append(out, text)
			}
		}
	}
	return out
}

// MainCamera returns the first enabled camera marked main.
func (w *World) MainCamera() *components.Camera {
	for _, g := range w.Scene.GameObjects {
		cam := engine.GetComponent[*components.Camera](g)
		if cam != nil && cam.IsMain && g.ActiveInHierarchy() {
			return cam
		}
	}
	return nil
}

// Canvases returns the root UI canvases ordered back to front.
func (w *World) Canvases() []*components.UICanvas {
	var out []*components.UICanvas
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*components.UICanvas](g); c != nil {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// HandlePointer feeds one frame of mouse state to every visible canvas.
// It is ignored while the pointer is captured for looking around.
func (w *World) HandlePointer(screen rl.Rectangle, p components.Pointer) {
	if w.Cursor.Locked() {
		return
	}
	for _, c := range w.Canvases() {
		c.HandlePointer(screen, p)
	}
}

// Unload releases audio clips held by the scene.
func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if src := engine.GetComponent[*components.AudioSource](g); src != nil {
			src.Unload()
		}
	}
}
