// Package interact implements the proximity rule shared by every
// interactive prop: the player must be within a radius of the object, and
// the action fires on the tick the bound key goes down.
package interact

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
	"lounge/internal/input"
)

// InRange reports whether player is within radius of object. The boundary
// counts as in range.
func InRange(player, object rl.Vector3, radius float32) bool {
	return rl.Vector3Distance(player, object) <= radius
}

// Zone is the per-object interaction configuration.
type Zone struct {
	Radius float32
	Key    input.Key
}

// CanInteract is false when either object is missing, so an unresolved
// player makes every prop inert instead of failing.
func (z Zone) CanInteract(player, self *engine.GameObject) bool {
	if player == nil || self == nil {
		return false
	}
	return InRange(player.WorldPosition(), self.WorldPosition(), z.Radius)
}

// Triggered is true on the single tick the key goes down while in range.
func (z Zone) Triggered(player, self *engine.GameObject, keys input.Reader) bool {
	if keys == nil || !z.CanInteract(player, self) {
		return false
	}
	return keys.Pressed(z.Key)
}

// Prompter is implemented by scripts that want an on-screen hint while the
// player stands in their zone.
type Prompter interface {
	Prompt() (text string, ok bool)
}
