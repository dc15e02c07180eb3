package components

import (
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/palette"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	return meshNames[m]
}

func parseMeshType(s string) (MeshType, bool) {
	for t, name := range meshNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}
	return MeshCube, false
}

// MeshRenderer draws a primitive. Its Color is the material color the room
// customizer repaints on walls.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// SetColor changes the material color.
func (m *MeshRenderer) SetColor(c color.RGBA) {
	m.Color = c
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.15))
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}

func (m *MeshRenderer) TypeName() string { return "MeshRenderer" }

func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":  "MeshRenderer",
		"mesh":  m.MeshType.String(),
		"color": palette.Hex(m.Color),
		"size":  []float32{m.Size.X, m.Size.Y, m.Size.Z},
	}
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	if v, ok := data["mesh"].(string); ok {
		if t, ok := parseMeshType(v); ok {
			m.MeshType = t
		}
	}
	m.Color = colorValue(data, "color", m.Color)
	m.Size = vec3Value(data, "size", m.Size)
}
