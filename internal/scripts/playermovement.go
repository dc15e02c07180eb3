package scripts

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/components"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/logging"
)

// mouseScale converts pixel deltas to degrees before sensitivity.
const mouseScale = 0.1

// PlayerMovement is the first-person controller. WASD or the arrows move
// the player through its CharacterController; the mouse turns the player
// (yaw) and tilts the child camera (pitch).
type PlayerMovement struct {
	engine.BaseComponent

	MovementSpeed     float32
	MouseSensitivity  float32
	VerticalLookLimit float32

	Yaw   float32
	Pitch float32 // positive looks down

	keys       input.Reader
	cursor     *cursor.Arbiter
	log        *logging.Logger
	controller *components.CharacterController
	camera     *engine.GameObject
}

func (p *PlayerMovement) Start() {
	g := p.GetGameObject()
	p.controller = engine.GetComponent[*components.CharacterController](g)
	if p.controller == nil {
		p.log.Errorf("No CharacterController found on %s.", g.Name)
		p.Disable()
		return
	}
	cam := engine.GetComponentInChildren[*components.Camera](g)
	if cam == nil {
		p.log.Errorf("No Camera found as a child of %s. Please assign one.", g.Name)
		p.Disable()
		return
	}
	p.camera = cam.GetGameObject()
	p.Yaw = g.Transform.Rotation.Y
	p.Pitch = p.camera.Transform.Rotation.X

	if p.cursor != nil {
		p.cursor.SetCapture(true)
	}
}

func (p *PlayerMovement) Update(deltaTime float32) {
	if p.keys == nil {
		return
	}
	// An open panel holds the pointer; the player stands still meanwhile.
	if p.cursor != nil && !p.cursor.Locked() {
		return
	}

	g := p.GetGameObject()
	h := p.keys.Axis(input.AxisHorizontal)
	v := p.keys.Axis(input.AxisVertical)
	p.controller.SimpleMove(MoveVelocity(p.Yaw, h, v, p.MovementSpeed), deltaTime)

	dx, dy := p.keys.MouseDelta()
	p.Look(dx, dy)
	g.Transform.Rotation.Y = p.Yaw
	p.camera.Transform.Rotation = rl.Vector3{X: p.Pitch}
}

// Look applies a mouse delta in pixels. Moving right turns right and moving
// down looks down; pitch stays within the vertical look limit.
func (p *PlayerMovement) Look(dx, dy float32) {
	p.Yaw -= dx * p.MouseSensitivity * mouseScale
	p.Yaw = float32(math.Mod(float64(p.Yaw), 360))
	p.Pitch += dy * p.MouseSensitivity * mouseScale
	if p.Pitch > p.VerticalLookLimit {
		p.Pitch = p.VerticalLookLimit
	}
	if p.Pitch < -p.VerticalLookLimit {
		p.Pitch = -p.VerticalLookLimit
	}
}

// MoveVelocity turns axis input into a horizontal velocity for a player
// facing yaw degrees. Diagonals are clamped to full speed.
func MoveVelocity(yaw, h, v, speed float32) rl.Vector3 {
	rad := float64(yaw) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	forward := rl.Vector3{X: sin, Z: cos}
	right := rl.Vector3{X: -cos, Z: sin}

	move := rl.Vector3Add(rl.Vector3Scale(forward, v), rl.Vector3Scale(right, h))
	if rl.Vector3Length(move) > 1 {
		move = rl.Vector3Normalize(move)
	}
	return rl.Vector3Scale(move, speed)
}

func init() {
	engine.RegisterScriptWithApplier("PlayerMovement", playerMovementFactory, playerMovementSerializer, playerMovementApplier)
}

func playerMovementFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	return &PlayerMovement{
		MovementSpeed:     engine.PropFloat(props, "movementSpeed", 5),
		MouseSensitivity:  engine.PropFloat(props, "mouseSensitivity", 2),
		VerticalLookLimit: engine.PropFloat(props, "verticalLookLimit", 80),
		keys:              ctx.Input,
		cursor:            ctx.Cursor,
		log:               ctx.Log.Named("PlayerMovement"),
	}
}

func playerMovementSerializer(c engine.Component) map[string]any {
	p, ok := c.(*PlayerMovement)
	if !ok {
		return nil
	}
	return map[string]any{
		"movementSpeed":     p.MovementSpeed,
		"mouseSensitivity":  p.MouseSensitivity,
		"verticalLookLimit": p.VerticalLookLimit,
	}
}

func playerMovementApplier(c engine.Component, propName string, value any) bool {
	p, ok := c.(*PlayerMovement)
	if !ok {
		return false
	}
	v, ok := value.(float64)
	if !ok {
		return false
	}
	switch propName {
	case "movementSpeed":
		p.MovementSpeed = float32(v)
	case "mouseSensitivity":
		p.MouseSensitivity = float32(v)
	case "verticalLookLimit":
		p.VerticalLookLimit = float32(v)
	default:
		return false
	}
	return true
}
