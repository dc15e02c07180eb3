package scripts

import (
	"bytes"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"lounge/internal/audio"
	"lounge/internal/components"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/logging"
)

const dt = float32(0.1)

// rig is a tiny scene driven the same way the world drives one: poll
// input, then update every object.
type rig struct {
	t      *testing.T
	scene  *engine.Scene
	player *engine.GameObject
	dev    *input.Scripted
	state  *input.State
	cursor *cursor.Arbiter
	logs   *bytes.Buffer
	ctx    engine.ScriptContext
}

func newRig(t *testing.T) *rig {
	t.Helper()
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	r := &rig{
		t:      t,
		scene:  engine.NewScene("test"),
		dev:    input.NewScripted(),
		state:  input.NewState(),
		cursor: cursor.New(nil),
		logs:   &bytes.Buffer{},
	}
	r.player = r.object("PlayerAvatar", 0, 0)
	r.ctx = engine.ScriptContext{
		Player: r.player,
		Input:  r.state,
		Cursor: r.cursor,
		Log:    logging.New(r.logs, logging.LevelDebug, false),
		Scene:  r.scene,
	}
	return r
}

func (r *rig) object(name string, x, z float32, comps ...engine.Component) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = rl.Vector3{X: x, Z: z}
	for _, c := range comps {
		g.AddComponent(c)
	}
	r.scene.AddGameObject(g)
	return g
}

func (r *rig) script(g *engine.GameObject, name string, props map[string]any) engine.Component {
	r.t.Helper()
	c := engine.CreateScript(name, r.ctx, props)
	require.NotNil(r.t, c, "script %s not registered", name)
	g.AddComponent(c)
	return c
}

func (r *rig) start() {
	r.scene.Start()
}

func (r *rig) tick() {
	r.state.Poll(r.dev)
	r.scene.Update(dt)
}

func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

// press holds k for one tick and releases it on the next.
func (r *rig) press(k input.Key) {
	r.dev.Hold(k)
	r.tick()
	r.dev.Release(k)
	r.tick()
}

func (r *rig) movePlayer(x, z float32) {
	r.player.Transform.Position = rl.Vector3{X: x, Z: z}
}

func (r *rig) audioSource(path string) *components.AudioSource {
	src := components.NewAudioSource()
	src.AudioPath = path
	src.Loop = true
	return src
}

func uid(g *engine.GameObject) float64 {
	return float64(g.UID)
}
