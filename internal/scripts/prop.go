// Package scripts holds the interactive props of the lounge: radio, TV, DJ
// booth, computer terminal, room customizer, and the player's movement
// controller. Each registers itself with the engine under its scene-file
// name.
package scripts

import (
	"fmt"

	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/interact"
	"lounge/internal/logging"
)

// prop is the state every proximity-triggered script shares.
type prop struct {
	engine.BaseComponent
	interact.Zone

	player *engine.GameObject
	keys   input.Reader
	log    *logging.Logger
}

func newProp(ctx engine.ScriptContext, name string, props map[string]any, radius float32, key input.Key) prop {
	return prop{
		Zone: interact.Zone{
			Radius: engine.PropFloat(props, "radius", radius),
			Key:    engine.PropKey(props, "key", key),
		},
		player: ctx.Player,
		keys:   ctx.Input,
		log:    ctx.Log.Named(name),
	}
}

// checkPlayer warns once at start when no player was injected.
func (p *prop) checkPlayer() {
	if p.player == nil {
		p.log.Warnf("PlayerAvatar not found. Interaction might not work.")
	}
}

func (p *prop) inRange() bool {
	return p.CanInteract(p.player, p.GetGameObject())
}

func (p *prop) triggered() bool {
	return p.Triggered(p.player, p.GetGameObject(), p.keys)
}

func (p *prop) pressed(k input.Key) bool {
	return p.keys != nil && p.keys.Pressed(k)
}

func (p *prop) down(k input.Key) bool {
	return p.keys != nil && p.keys.Down(k)
}

// resolve returns the object ref points at, or the script's own object when
// ref is empty.
func (p *prop) resolve(ref engine.GameObjectRef) *engine.GameObject {
	self := p.GetGameObject()
	if !ref.IsValid() {
		return self
	}
	if self == nil {
		return nil
	}
	return ref.Get(self.Scene)
}

// lookup resolves a ref that has no fallback.
func (p *prop) lookup(ref engine.GameObjectRef) *engine.GameObject {
	self := p.GetGameObject()
	if self == nil {
		return nil
	}
	return ref.Get(self.Scene)
}

// owner names this script instance to the cursor arbiter.
func (p *prop) owner(kind string) string {
	if g := p.GetGameObject(); g != nil {
		return fmt.Sprintf("%s/%s#%d", kind, g.Name, g.UID)
	}
	return kind
}

func (p *prop) zoneProps(props map[string]any) map[string]any {
	props["radius"] = p.Radius
	props["key"] = p.Key.String()
	return props
}

// applyZone handles the props every proximity script accepts.
func (p *prop) applyZone(propName string, value any) bool {
	switch propName {
	case "radius":
		if v, ok := value.(float64); ok {
			p.Radius = float32(v)
			return true
		}
	case "key":
		if k, ok := engine.KeyValue(value); ok {
			p.Key = k
			return true
		}
	}
	return false
}
