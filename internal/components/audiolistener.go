package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/audio"
	"lounge/internal/engine"
)

func init() {
	engine.RegisterComponent("AudioListener", func() engine.Serializable {
		return NewAudioListener()
	})
}

// AudioListener feeds its object's position and view direction to the
// audio mixer. It usually sits on the player's camera.
type AudioListener struct {
	engine.BaseComponent
}

func NewAudioListener() *AudioListener {
	return &AudioListener{}
}

func (a *AudioListener) TypeName() string {
	return "AudioListener"
}

func (a *AudioListener) Serialize() map[string]any {
	return map[string]any{
		"type": "AudioListener",
	}
}

func (a *AudioListener) Deserialize(data map[string]any) {}

func (a *AudioListener) Update(deltaTime float32) {
	g := a.GetGameObject()
	if g == nil {
		return
	}
	up := rl.Vector3{X: 0, Y: 1, Z: 0}
	audio.SetListener(g.WorldPosition(), Forward(g.WorldRotation()), up)
}
