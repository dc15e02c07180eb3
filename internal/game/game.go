// Package game runs the lounge in a raylib window.
package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/audio"
	"lounge/internal/config"
	"lounge/internal/cursor"
	"lounge/internal/input"
	"lounge/internal/logging"
	"lounge/internal/platform"
	"lounge/internal/world"
)

type Game struct {
	Config    *config.Config
	World     *world.World
	Renderer  *world.Renderer
	Log       *logging.Logger
	DebugMode bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, log *logging.Logger) *Game {
	return &Game{
		Config:   cfg,
		Log:      log,
		Renderer: world.NewRenderer(),
	}
}

// Run opens the window, loads the configured scene, and loops until the
// window closes.
func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(win.TargetFPS))
	// Escape closes the browser panel, not the window.
	rl.SetExitKey(rl.KeyNull)

	initRayguiStyle(g.Log)
	defer unloadFont()

	audio.Init()
	defer audio.Close()

	g.World = world.New(platform.Device{}, cursor.New(platform.Cursor{}), g.Log)
	g.World.Overrides = g.Config.Overrides
	if err := g.World.LoadScene(g.Config.Scene.Path); err != nil {
		return err
	}
	g.World.Start()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.World.HandlePointer(platform.Screen(), platform.ReadPointer())
	g.World.Update(deltaTime)

	// Toggle debug mode
	if g.World.Input.Pressed(input.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.Renderer.Draw(g.World, platform.Screen())
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, mouse to look, E to interact", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 to toggle debug view", 10, 35, 20, rl.LightGray)

	if g.DebugMode {
		rl.DrawFPS(10, 60)
		if p := g.World.Player; p != nil {
			pos := p.Transform.Position
			rl.DrawText(fmt.Sprintf("Player: (%.2f, %.2f, %.2f) yaw %.0f", pos.X, pos.Y, pos.Z, p.Transform.Rotation.Y), 10, 85, 16, rl.Yellow)
		}
		rl.DrawText(fmt.Sprintf("Pointer owners: %v", g.World.Cursor.Owners()), 10, 105, 16, rl.Yellow)

		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 130, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 150, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Total:   %.2f ms", g.updateMs+g.drawMs), 10, 170, 16, rl.Lime)
	}
}
