package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

// --- JSON types ---

type SceneFile struct {
	Player  uint64      `json:"player,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64           `json:"uid,omitempty"`
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Parent     uint64           `json:"parent,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components"`
}

const scriptType = "Script"

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.LoadSceneData(data); err != nil {
		return fmt.Errorf("load scene %s: %w", path, err)
	}
	return nil
}

// LoadSceneData adds the objects of a scene file to the world. Built-in
// components are created first; scripts are created once every object
// exists so their references resolve, and each receives the world's
// script context.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	seen := make(map[uint64]bool, len(sf.Objects))
	for i, def := range sf.Objects {
		if def.UID == 0 {
			continue
		}
		if seen[def.UID] || w.Scene.FindByUID(def.UID) != nil {
			return fmt.Errorf("object %d (%s): duplicate uid %d", i, def.Name, def.UID)
		}
		seen[def.UID] = true
		engine.ReserveUID(def.UID)
	}

	objects := make([]*engine.GameObject, len(sf.Objects))
	for i, def := range sf.Objects {
		g := engine.NewGameObject(def.Name)
		if def.UID != 0 {
			g.UID = def.UID
		}
		g.Tags = def.Tags
		g.Transform.Position = vec3(def.Position)
		g.Transform.Rotation = vec3(def.Rotation)

		// Default scale to 1 if zero
		if def.Scale != [3]float32{} {
			g.Transform.Scale = vec3(def.Scale)
		}
		if def.Active != nil {
			g.Active = *def.Active
		}

		for _, data := range def.Components {
			typeName, _ := data["type"].(string)
			if typeName == scriptType {
				continue
			}
			c, ok := engine.CreateComponent(typeName, data)
			if !ok {
				w.Log.Warnf("%s: unknown component type %q", def.Name, typeName)
				continue
			}
			g.AddComponent(c)
		}

		w.Scene.AddGameObject(g)
		objects[i] = g
	}

	for i, def := range sf.Objects {
		if def.Parent == 0 {
			continue
		}
		parent := w.Scene.FindByUID(def.Parent)
		if parent == nil {
			return fmt.Errorf("object %s: parent %d not found", def.Name, def.Parent)
		}
		if parent == objects[i] {
			return fmt.Errorf("object %s: parent is itself", def.Name)
		}
		parent.AddChild(objects[i])
	}

	w.Player = w.findPlayer(sf.Player)
	if w.Player == nil {
		w.Log.Warnf("%s not found. Interaction might not work.", PlayerName)
	}

	ctx := w.scriptContext()
	for i, def := range sf.Objects {
		for _, data := range def.Components {
			if data["type"] != scriptType {
				continue
			}
			name, _ := data["name"].(string)
			props, _ := data["props"].(map[string]any)
			c := engine.CreateScript(name, ctx, props)
			if c == nil {
				w.Log.Warnf("%s: unknown script %q", def.Name, name)
				continue
			}
			w.applyOverrides(name, c)
			objects[i].AddComponent(c)
		}
	}
	return nil
}

func (w *World) findPlayer(uid uint64) *engine.GameObject {
	if uid != 0 {
		if g := w.Scene.FindByUID(uid); g != nil {
			return g
		}
		w.Log.Warnf("player uid %d not in scene", uid)
	}
	return w.Scene.FindByName(PlayerName)
}

func (w *World) applyOverrides(name string, c engine.Component) {
	for prop, value := range w.Overrides[name] {
		if !engine.ApplyScriptProperty(c, prop, normalize(value)) {
			w.Log.Warnf("%s: cannot override %q with %v", name, prop, value)
		}
	}
}

// normalize converts YAML scalars to the types JSON decoding produces, so
// script appliers only ever see float64 numbers.
func normalize(v any) any {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	}
	return v
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// MarshalScene encodes the scene in the format LoadSceneData reads.
func (w *World) MarshalScene() ([]byte, error) {
	var sf SceneFile
	if w.Player != nil {
		sf.Player = w.Player.UID
	}

	for _, g := range w.Scene.GameObjects {
		def := ObjectDef{
			UID:      g.UID,
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		if g.Parent != nil {
			def.Parent = g.Parent.UID
		}
		if !g.Active {
			inactive := false
			def.Active = &inactive
		}

		for _, c := range g.Components() {
			if data := serializeComponent(c); data != nil {
				def.Components = append(def.Components, data)
			}
		}
		sf.Objects = append(sf.Objects, def)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func serializeComponent(c engine.Component) map[string]any {
	if s, ok := c.(engine.Serializable); ok {
		return s.Serialize()
	}
	if name, props, ok := engine.SerializeScript(c); ok {
		return map[string]any{"type": scriptType, "name": name, "props": props}
	}
	return nil
}
