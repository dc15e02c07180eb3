package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/engine"
)

func init() {
	engine.RegisterComponent("VideoPlayer", func() engine.Serializable {
		return NewVideoPlayer()
	})
}

// VideoPlayer models playback state for a screen. Frames are not decoded;
// while playing the screen shows animated color bars and the clock advances.
type VideoPlayer struct {
	engine.BaseComponent

	URL         string
	Prepared    bool
	PlayOnAwake bool
	Loop        bool
	Length      float32 // seconds, 0 = unknown (never ends)
	ScreenSize  rl.Vector2
	ScreenColor rl.Color // color while stopped or paused

	playing bool
	time    float32
	started bool
}

func NewVideoPlayer() *VideoPlayer {
	return &VideoPlayer{
		Loop:        true,
		ScreenSize:  rl.Vector2{X: 1.6, Y: 0.9},
		ScreenColor: rl.NewColor(15, 15, 20, 255),
	}
}

func (v *VideoPlayer) TypeName() string { return "VideoPlayer" }

func (v *VideoPlayer) Serialize() map[string]any {
	return map[string]any{
		"type":        "VideoPlayer",
		"url":         v.URL,
		"prepared":    v.Prepared,
		"playOnAwake": v.PlayOnAwake,
		"loop":        v.Loop,
		"length":      v.Length,
		"screenSize":  []float32{v.ScreenSize.X, v.ScreenSize.Y},
	}
}

func (v *VideoPlayer) Deserialize(data map[string]any) {
	v.URL = stringValue(data, "url", v.URL)
	v.Prepared = boolValue(data, "prepared", v.Prepared)
	v.PlayOnAwake = boolValue(data, "playOnAwake", v.PlayOnAwake)
	v.Loop = boolValue(data, "loop", v.Loop)
	v.Length = floatValue(data, "length", v.Length)
	v.ScreenSize = vec2Value(data, "screenSize", v.ScreenSize)
	v.ScreenColor = colorValue(data, "screenColor", v.ScreenColor)
}

func (v *VideoPlayer) Start() {
	if v.started {
		return
	}
	v.started = true
	if v.PlayOnAwake {
		v.Play()
	}
}

func (v *VideoPlayer) Update(deltaTime float32) {
	if !v.playing {
		return
	}
	v.time += deltaTime
	if v.Length > 0 && v.time >= v.Length {
		if v.Loop {
			v.time = float32(math.Mod(float64(v.time), float64(v.Length)))
		} else {
			v.Stop()
		}
	}
}

// HasMedia is true when the player is prepared or has a URL to open.
func (v *VideoPlayer) HasMedia() bool {
	return v.Prepared || v.URL != ""
}

func (v *VideoPlayer) IsPlaying() bool { return v.playing }

// Play is refused while there is nothing to play.
func (v *VideoPlayer) Play() {
	if !v.HasMedia() {
		return
	}
	v.playing = true
}

func (v *VideoPlayer) Pause() { v.playing = false }

// Stop halts playback and rewinds.
func (v *VideoPlayer) Stop() {
	v.playing = false
	v.time = 0
}

// Time is the playback position in seconds.
func (v *VideoPlayer) Time() float32 { return v.time }

// Draw renders the screen facing +Z from the object's position.
func (v *VideoPlayer) Draw() {
	g := v.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	pos := g.WorldPosition()
	size := rl.Vector3{X: v.ScreenSize.X, Y: v.ScreenSize.Y, Z: 0.02}

	if !v.playing {
		rl.DrawCubeV(pos, size, v.ScreenColor)
		return
	}

	// Seven scrolling bars.
	const bars = 7
	w := v.ScreenSize.X / bars
	for i := 0; i < bars; i++ {
		hue := float32(math.Mod(float64(float32(i)*360/bars+v.time*60), 360))
		c := rl.ColorFromHSV(hue, 0.6, 0.9)
		x := pos.X - v.ScreenSize.X/2 + w*(float32(i)+0.5)
		rl.DrawCubeV(rl.Vector3{X: x, Y: pos.Y, Z: pos.Z}, rl.Vector3{X: w, Y: size.Y, Z: size.Z}, c)
	}
}
