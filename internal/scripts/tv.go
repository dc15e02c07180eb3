package scripts

import (
	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
	"lounge/internal/media"
)

// TV toggles video playback on its screen.
type TV struct {
	prop

	// Screen holds the VideoPlayer. Empty means this object.
	Screen engine.GameObjectRef

	video *components.VideoPlayer
}

func (t *TV) Start() {
	t.checkPlayer()

	t.video = engine.GetComponent[*components.VideoPlayer](t.resolve(t.Screen))
	if t.video == nil {
		t.log.Errorf("VideoPlayer component not found or assigned.")
		t.Disable()
		return
	}
	t.video.Start()
	if t.video.PlayOnAwake {
		t.video.PlayOnAwake = false
		t.video.Stop()
	}
}

func (t *TV) Update(deltaTime float32) {
	if t.triggered() {
		t.Toggle()
	}
}

// Toggle pauses a playing video. A stopped one only starts when the player
// is prepared or has a URL.
func (t *TV) Toggle() media.Outcome {
	if t.video == nil {
		return media.Ignored
	}
	if !t.video.IsPlaying() && !t.video.HasMedia() {
		t.log.Warnf("%s", locale.T("VideoPlayer not prepared or no URL set."))
		return media.Ignored
	}
	return media.Toggle(t.video, "TV", t.log)
}

func (t *TV) IsPlaying() bool {
	return t.video != nil && t.video.IsPlaying()
}

func (t *TV) Prompt() (string, bool) {
	if !t.inRange() {
		return "", false
	}
	return locale.T("[%s] Toggle TV", t.Key), true
}

func init() {
	engine.RegisterScriptWithApplier("TV", tvFactory, tvSerializer, tvApplier)
}

func tvFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	return &TV{
		prop:   newProp(ctx, "TV", props, 3.0, input.KeyE),
		Screen: engine.PropRef(props, "screen"),
	}
}

func tvSerializer(c engine.Component) map[string]any {
	t, ok := c.(*TV)
	if !ok {
		return nil
	}
	props := t.zoneProps(map[string]any{})
	if t.Screen.IsValid() {
		props["screen"] = t.Screen.UID
	}
	return props
}

func tvApplier(c engine.Component, propName string, value any) bool {
	t, ok := c.(*TV)
	if !ok {
		return false
	}
	return t.applyZone(propName, value)
}
