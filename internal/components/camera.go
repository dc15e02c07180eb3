package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     true,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	c.FOV = floatValue(data, "fov", c.FOV)
	c.Near = floatValue(data, "near", c.Near)
	c.Far = floatValue(data, "far", c.Far)
	c.IsMain = boolValue(data, "isMain", c.IsMain)
}

// Forward converts Euler angles in degrees to a view direction. Yaw 0 looks
// down +Z; positive pitch (X) looks down.
func Forward(rot rl.Vector3) rl.Vector3 {
	yaw := float64(rot.Y) * math.Pi / 180
	pitch := float64(rot.X) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(-math.Sin(pitch)),
		Z: float32(math.Cos(yaw) * math.Cos(pitch)),
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	target := rl.Vector3Add(eyePos, Forward(g.WorldRotation()))

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
