// Package platform connects the input and cursor packages to the raylib
// window.
package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/components"
	"lounge/internal/input"
)

// Device reads the keyboard and mouse of the open window.
type Device struct{}

func (Device) IsKeyDown(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}

func (Device) MouseDelta() (float32, float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}

// Cursor shows, hides, and captures the window's pointer.
type Cursor struct{}

func (Cursor) Lock() {
	rl.DisableCursor()
}

func (Cursor) Unlock() {
	rl.EnableCursor()
}

// ReadPointer samples the left mouse button and pointer position.
func ReadPointer() components.Pointer {
	return components.Pointer{
		Position: rl.GetMousePosition(),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	}
}

// Screen is the drawable area in pixels.
func Screen() rl.Rectangle {
	return rl.Rectangle{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
}
