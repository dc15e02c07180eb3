package scripts

import (
	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
	"lounge/internal/media"
)

// Radio toggles an audio source when the player presses its key nearby.
type Radio struct {
	prop

	// Source holds the AudioSource. Empty means this object.
	Source engine.GameObjectRef

	source *components.AudioSource
}

func (r *Radio) Start() {
	r.checkPlayer()

	r.source = engine.GetComponent[*components.AudioSource](r.resolve(r.Source))
	if r.source == nil {
		r.log.Errorf("AudioSource not found or assigned.")
		r.Disable()
		return
	}
	if !r.source.HasClip() {
		r.log.Warnf("No AudioClip assigned to the AudioSource. Radio will not play sound.")
	}
	// The radio starts silent even when its source is set to play on awake.
	r.source.Start()
	if r.source.PlayOnAwake {
		r.source.PlayOnAwake = false
		r.source.Stop()
	}
}

func (r *Radio) Update(deltaTime float32) {
	if r.triggered() {
		r.Toggle()
	}
}

// Toggle pauses or resumes playback.
func (r *Radio) Toggle() media.Outcome {
	if r.source == nil {
		return media.Ignored
	}
	return media.Toggle(r.source, "Radio", r.log)
}

func (r *Radio) IsPlaying() bool {
	return r.source != nil && r.source.IsPlaying()
}

func (r *Radio) Prompt() (string, bool) {
	if !r.inRange() {
		return "", false
	}
	return locale.T("[%s] Toggle radio", r.Key), true
}

func init() {
	engine.RegisterScriptWithApplier("Radio", radioFactory, radioSerializer, radioApplier)
}

func radioFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	return &Radio{
		prop:   newProp(ctx, "Radio", props, 2.0, input.KeyE),
		Source: engine.PropRef(props, "source"),
	}
}

func radioSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Radio)
	if !ok {
		return nil
	}
	props := r.zoneProps(map[string]any{})
	if r.Source.IsValid() {
		props["source"] = r.Source.UID
	}
	return props
}

func radioApplier(c engine.Component, propName string, value any) bool {
	r, ok := c.(*Radio)
	if !ok {
		return false
	}
	return r.applyZone(propName, value)
}
