// Package physics has the box overlap math the character controller uses
// to keep the player out of furniture.
package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Intersects is strict: boxes that only touch do not intersect, so a
// character pushed flush against a wall can slide along it.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// ResolveXZ returns the smallest horizontal translation that pushes a out
// of b, or the zero vector when they do not overlap. Vertical overlap only
// decides whether they collide at all.
func (a AABB) ResolveXZ(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	px := b.Max.X - a.Min.X // push a in +X
	nx := a.Max.X - b.Min.X // push a in -X
	pz := b.Max.Z - a.Min.Z // push a in +Z
	nz := a.Max.Z - b.Min.Z // push a in -Z

	depth := px
	result := rl.Vector3{X: px}
	if nx < depth {
		depth = nx
		result = rl.Vector3{X: -nx}
	}
	if pz < depth {
		depth = pz
		result = rl.Vector3{Z: pz}
	}
	if nz < depth {
		result = rl.Vector3{Z: -nz}
	}
	return result
}

// Translate returns the box moved by d.
func (a AABB) Translate(d rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, d), Max: rl.Vector3Add(a.Max, d)}
}
