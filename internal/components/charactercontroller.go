package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/physics"
)

func init() {
	engine.RegisterComponent("CharacterController", func() engine.Serializable {
		return NewCharacterController()
	})
}

// CharacterController moves a character over a flat floor with gravity,
// kept inside an optional rectangular room and out of BoxColliders in the
// same scene. The object's position is at the character's feet.
type CharacterController struct {
	engine.BaseComponent

	// Configuration
	Height float32 // Total height of the character
	Radius float32 // Kept this far from walls and colliders

	// Gravity
	UseGravity bool
	Gravity    float32 // Gravity strength (positive = down)
	FloorY     float32

	// Room bounds on the XZ plane. Ignored unless HasBounds.
	HasBounds bool
	BoundsMin rl.Vector2
	BoundsMax rl.Vector2

	// Runtime state (not serialized)
	velocityY  float32
	isGrounded bool
}

// TypeName implements engine.Serializable
func (c *CharacterController) TypeName() string {
	return "CharacterController"
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		UseGravity: true,
		Gravity:    9.81,
	}
}

// Serialize implements engine.Serializable
func (c *CharacterController) Serialize() map[string]any {
	data := map[string]any{
		"type":       "CharacterController",
		"height":     c.Height,
		"radius":     c.Radius,
		"useGravity": c.UseGravity,
		"gravity":    c.Gravity,
		"floorY":     c.FloorY,
	}
	if c.HasBounds {
		data["boundsMin"] = []float32{c.BoundsMin.X, c.BoundsMin.Y}
		data["boundsMax"] = []float32{c.BoundsMax.X, c.BoundsMax.Y}
	}
	return data
}

// Deserialize implements engine.Serializable
func (c *CharacterController) Deserialize(data map[string]any) {
	c.Height = floatValue(data, "height", c.Height)
	c.Radius = floatValue(data, "radius", c.Radius)
	c.UseGravity = boolValue(data, "useGravity", c.UseGravity)
	c.Gravity = floatValue(data, "gravity", c.Gravity)
	c.FloorY = floatValue(data, "floorY", c.FloorY)
	if _, ok := data["boundsMin"]; ok {
		c.BoundsMin = vec2Value(data, "boundsMin", c.BoundsMin)
		c.BoundsMax = vec2Value(data, "boundsMax", c.BoundsMax)
		c.HasBounds = c.BoundsMax.X > c.BoundsMin.X && c.BoundsMax.Y > c.BoundsMin.Y
	}
}

// IsGrounded reports whether the last move ended on the floor.
func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

// SimpleMove moves by velocity (units/second) on the horizontal plane,
// applies gravity, and returns the displacement actually made. The Y
// component of velocity is ignored.
func (c *CharacterController) SimpleMove(velocity rl.Vector3, deltaTime float32) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	original := g.Transform.Position
	pos := original
	pos.X += velocity.X * deltaTime
	pos.Z += velocity.Z * deltaTime

	if c.UseGravity {
		c.velocityY -= c.Gravity * deltaTime
		pos.Y += c.velocityY * deltaTime
	}
	if pos.Y <= c.FloorY {
		pos.Y = c.FloorY
		c.velocityY = 0
		c.isGrounded = true
	} else {
		c.isGrounded = false
	}

	if c.HasBounds {
		pos.X = clampf(pos.X, c.BoundsMin.X+c.Radius, c.BoundsMax.X-c.Radius)
		pos.Z = clampf(pos.Z, c.BoundsMin.Y+c.Radius, c.BoundsMax.Y-c.Radius)
	}
	pos = rl.Vector3Add(pos, c.pushOut(g, pos))

	g.Transform.Position = pos
	return rl.Vector3Subtract(pos, original)
}

// pushOut collects the horizontal correction that keeps a character
// standing at pos clear of every active collider.
func (c *CharacterController) pushOut(self *engine.GameObject, pos rl.Vector3) rl.Vector3 {
	if self.Scene == nil {
		return rl.Vector3{}
	}
	body := physics.NewAABBFromCenter(
		rl.Vector3{X: pos.X, Y: pos.Y + c.Height/2, Z: pos.Z},
		rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2},
	)
	var total rl.Vector3
	for _, g := range self.Scene.GameObjects {
		if g == self || !g.ActiveInHierarchy() {
			continue
		}
		col := engine.GetComponent[*BoxCollider](g)
		if col == nil || !engine.IsEnabled(col) {
			continue
		}
		push := body.ResolveXZ(col.Bounds())
		body = body.Translate(push)
		total = rl.Vector3Add(total, push)
	}
	return total
}

func clampf(v, lo, hi float32) float32 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
