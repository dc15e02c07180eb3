package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/physics"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

// BoxCollider is a solid axis-aligned box that character controllers
// cannot walk into. Rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// Bounds returns the box in world space.
func (b *BoxCollider) Bounds() physics.AABB {
	g := b.GetGameObject()
	if g == nil {
		return physics.NewAABBFromCenter(b.Offset, b.Size)
	}
	scale := g.WorldScale()
	size := rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
	return physics.NewAABBFromCenter(rl.Vector3Add(g.WorldPosition(), b.Offset), size)
}

func (b *BoxCollider) TypeName() string { return "BoxCollider" }

func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":   "BoxCollider",
		"size":   []float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset": []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
	}
}

func (b *BoxCollider) Deserialize(data map[string]any) {
	b.Size = vec3Value(data, "size", b.Size)
	b.Offset = vec3Value(data, "offset", b.Offset)
}
