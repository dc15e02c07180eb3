package components

import (
	"lounge/internal/audio"
	"lounge/internal/engine"
)

func init() {
	engine.RegisterComponent("AudioSource", func() engine.Serializable {
		return NewAudioSource()
	})
}

// AudioSource plays a clip from AudioPath. It satisfies media.Channel, so
// the radio toggles it and the DJ booth mixes it.
type AudioSource struct {
	engine.BaseComponent

	// Serialized fields
	AudioPath   string  `json:"audioPath"`
	Volume      float32 `json:"volume"`
	MaxDistance float32 `json:"maxDistance"`
	Loop        bool    `json:"loop"`
	PlayOnAwake bool    `json:"playOnAwake"`
	Spatial     bool    `json:"spatial"` // 3D spatialization

	// Runtime state
	sourceID uint64
	loaded   bool
	started  bool
}

func NewAudioSource() *AudioSource {
	return &AudioSource{
		Volume:      1.0,
		MaxDistance: 50.0,
		Loop:        false,
		PlayOnAwake: false,
		Spatial:     true,
	}
}

func (a *AudioSource) TypeName() string {
	return "AudioSource"
}

func (a *AudioSource) Serialize() map[string]any {
	return map[string]any{
		"type":        "AudioSource",
		"audioPath":   a.AudioPath,
		"volume":      a.Volume,
		"maxDistance": a.MaxDistance,
		"loop":        a.Loop,
		"playOnAwake": a.PlayOnAwake,
		"spatial":     a.Spatial,
	}
}

func (a *AudioSource) Deserialize(data map[string]any) {
	a.AudioPath = stringValue(data, "audioPath", a.AudioPath)
	a.Volume = floatValue(data, "volume", a.Volume)
	a.MaxDistance = floatValue(data, "maxDistance", a.MaxDistance)
	a.Loop = boolValue(data, "loop", a.Loop)
	a.PlayOnAwake = boolValue(data, "playOnAwake", a.PlayOnAwake)
	a.Spatial = boolValue(data, "spatial", a.Spatial)
}

// Start loads the clip. It runs at most once even when a script that
// depends on the source starts it early.
func (a *AudioSource) Start() {
	if a.started {
		return
	}
	a.started = true
	if a.AudioPath != "" && a.Load(a.AudioPath) && a.PlayOnAwake {
		a.Play()
	}
}

func (a *AudioSource) Update(deltaTime float32) {
	if !a.loaded {
		return
	}

	// Update source position for spatial audio
	if g := a.GetGameObject(); g != nil {
		audio.SetSourcePosition(a.sourceID, g.WorldPosition())
	}
}

// Load loads an audio file
func (a *AudioSource) Load(path string) bool {
	if a.loaded {
		a.Unload()
	}

	id, ok := audio.LoadSound(path)
	if !ok {
		return false
	}

	a.sourceID = id
	a.loaded = true
	a.AudioPath = path
	audio.Configure(a.sourceID, a.Volume, a.MaxDistance, a.Loop, a.Spatial)
	return true
}

// Unload releases the audio resource
func (a *AudioSource) Unload() {
	if a.loaded {
		audio.UnloadSource(a.sourceID)
		a.loaded = false
	}
}

// HasClip reports whether a clip is assigned, loaded or not.
func (a *AudioSource) HasClip() bool {
	return a.AudioPath != ""
}

// HasMedia is true once the clip loaded.
func (a *AudioSource) HasMedia() bool {
	return a.loaded
}

// Play starts playback, resuming from the pause point if paused.
func (a *AudioSource) Play() {
	if a.loaded {
		audio.Play(a.sourceID)
	}
}

// Pause holds playback at the current position.
func (a *AudioSource) Pause() {
	if a.loaded {
		audio.Pause(a.sourceID)
	}
}

// Stop stops playback
func (a *AudioSource) Stop() {
	if a.loaded {
		audio.Stop(a.sourceID)
	}
}

// IsPlaying returns whether the source is currently playing
func (a *AudioSource) IsPlaying() bool {
	if !a.loaded {
		return false
	}
	return audio.IsPlaying(a.sourceID)
}

// SetVolume updates the volume
func (a *AudioSource) SetVolume(vol float32) {
	a.Volume = vol
	if a.loaded {
		audio.SetSourceVolume(a.sourceID, vol)
	}
}

func (a *AudioSource) GetVolume() float32 {
	return a.Volume
}
