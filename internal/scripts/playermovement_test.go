package scripts

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/input"
)

func newMovementRig(t *testing.T) (*rig, *PlayerMovement, *engine.GameObject) {
	r := newRig(t)
	r.player.AddComponent(components.NewCharacterController())
	cam := r.object("Camera", 0, 0, components.NewCamera())
	cam.Transform.Position.Y = 1.6
	r.player.AddChild(cam)
	pm := r.script(r.player, "PlayerMovement", nil).(*PlayerMovement)
	r.start()
	return r, pm, cam
}

func TestMovementWalksForward(t *testing.T) {
	r, pm, _ := newMovementRig(t)
	require.True(t, engine.IsEnabled(pm))
	assert.True(t, r.cursor.Locked())

	r.dev.Hold(input.KeyW)
	r.ticks(10)

	pos := r.player.Transform.Position
	assert.InDelta(t, 0, pos.X, 1e-4)
	assert.InDelta(t, 5, pos.Z, 1e-4)
	assert.InDelta(t, 0, pos.Y, 1e-6)
}

func TestMovementStrafesRelativeToYaw(t *testing.T) {
	r, pm, _ := newMovementRig(t)
	pm.Yaw = 90

	r.dev.Hold(input.KeyD)
	r.ticks(2)

	// Facing +X, right is +Z.
	pos := r.player.Transform.Position
	assert.InDelta(t, 0, pos.X, 1e-4)
	assert.InDelta(t, 1, pos.Z, 1e-4)
	assert.Equal(t, float32(90), r.player.Transform.Rotation.Y)
}

func TestMovementLookClampsPitch(t *testing.T) {
	r, pm, cam := newMovementRig(t)

	r.dev.SetMouseDelta(10, 0)
	r.tick()
	assert.InDelta(t, -2, pm.Yaw, 1e-5)
	assert.InDelta(t, -2, r.player.Transform.Rotation.Y, 1e-5)

	r.dev.SetMouseDelta(0, 1000)
	r.tick()
	assert.Equal(t, float32(80), pm.Pitch)
	assert.Equal(t, float32(80), cam.Transform.Rotation.X)

	r.dev.SetMouseDelta(0, -5000)
	r.tick()
	assert.Equal(t, float32(-80), pm.Pitch)
}

func TestMovementHaltsWhilePointerHeld(t *testing.T) {
	r, pm, _ := newMovementRig(t)
	r.cursor.Acquire("panel")

	r.dev.Hold(input.KeyW)
	r.dev.SetMouseDelta(50, 50)
	r.ticks(5)

	assert.Equal(t, rl.Vector3{}, r.player.Transform.Position)
	assert.Zero(t, pm.Yaw)
	assert.Zero(t, pm.Pitch)

	r.cursor.Release("panel")
	r.tick()
	assert.Greater(t, r.player.Transform.Position.Z, float32(0))
}

func TestMovementWithoutCameraDisables(t *testing.T) {
	r := newRig(t)
	r.player.AddComponent(components.NewCharacterController())
	pm := r.script(r.player, "PlayerMovement", nil)
	r.start()

	assert.False(t, engine.IsEnabled(pm))
	assert.Contains(t, r.logs.String(), "No Camera found as a child of PlayerAvatar. Please assign one.")
	assert.False(t, r.cursor.Locked())
}

func TestMovementWithoutControllerDisables(t *testing.T) {
	r := newRig(t)
	pm := r.script(r.player, "PlayerMovement", nil)
	r.start()

	assert.False(t, engine.IsEnabled(pm))
	assert.Contains(t, r.logs.String(), "No CharacterController found on PlayerAvatar.")
}

func TestMoveVelocity(t *testing.T) {
	v := MoveVelocity(0, 1, 1, 5)
	assert.InDelta(t, 5, rl.Vector3Length(v), 1e-4)
	assert.Zero(t, v.Y)

	v = MoveVelocity(0, 0, -0.5, 4)
	assert.InDelta(t, -2, v.Z, 1e-5)

	assert.Equal(t, rl.Vector3{}, MoveVelocity(45, 0, 0, 5))
}

func TestMovementProps(t *testing.T) {
	r := newRig(t)
	pm := r.script(r.player, "PlayerMovement", map[string]any{"movementSpeed": 3.0}).(*PlayerMovement)
	assert.Equal(t, float32(3), pm.MovementSpeed)
	assert.Equal(t, float32(80), pm.VerticalLookLimit)

	assert.True(t, engine.ApplyScriptProperty(pm, "mouseSensitivity", 4.0))
	assert.Equal(t, float32(4), pm.MouseSensitivity)
	assert.False(t, engine.ApplyScriptProperty(pm, "unknown", 1.0))
}
