// Package audio mixes the scene's sound sources. Sources are addressed by
// ID; the sound itself lives on a Device, which is raylib's audio device in
// the game and a silent in-memory device in tests and headless runs.
package audio

import (
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Handle identifies a loaded sound on a Device.
type Handle uint64

// Device plays loaded sounds. Volume is 0..1 and pan 0 (left) .. 1 (right).
type Device interface {
	Load(path string) (Handle, bool)
	Unload(h Handle)
	Play(h Handle)
	Stop(h Handle)
	Pause(h Handle)
	Resume(h Handle)
	IsPlaying(h Handle) bool
	SetVolume(h Handle, volume float32)
	SetPan(h Handle, pan float32)
	Close()
}

// Source represents an audio source in the world
type Source struct {
	ID          uint64
	Path        string
	Position    rl.Vector3
	Volume      float32
	MaxDistance float32
	Loop        bool
	Spatial     bool
	handle      Handle
	playing     bool
	paused      bool
}

// Manager handles audio playback
type Manager struct {
	mu       sync.Mutex
	device   Device
	listener Listener
	sources  map[uint64]*Source
	nextID   uint64
}

// NewManager wraps a device.
func NewManager(device Device) *Manager {
	return &Manager{
		device:  device,
		sources: make(map[uint64]*Source),
		nextID:  1,
		listener: Listener{
			Forward: rl.Vector3{X: 0, Y: 0, Z: -1},
			Right:   rl.Vector3{X: 1, Y: 0, Z: 0},
		},
	}
}

var globalManager *Manager

// Init opens the raylib audio device and makes it the global manager.
func Init() {
	rl.InitAudioDevice()
	globalManager = NewManager(newRaylibDevice())
}

// InitHeadless installs a silent device and returns it for inspection.
func InitHeadless() *Headless {
	dev := NewHeadless()
	globalManager = NewManager(dev)
	return dev
}

// Close shuts down the audio system
func Close() {
	if globalManager == nil {
		return
	}
	globalManager.Close()
	globalManager = nil
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, src := range m.sources {
		m.device.Unload(src.handle)
	}
	m.sources = map[uint64]*Source{}
	m.device.Close()
}

// SetListener updates the listener position and orientation
func SetListener(pos, forward, up rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.SetListener(pos, forward, up)
}

func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listener.Position = pos

	// Normalize forward, default to -Z if zero
	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		m.listener.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		m.listener.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	// Calculate right vector (up × forward)
	right := rl.Vector3CrossProduct(up, m.listener.Forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		m.listener.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		m.listener.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
}

// LoadSound loads audio from a file and returns a source ID
func LoadSound(path string) (uint64, bool) {
	if globalManager == nil {
		return 0, false
	}
	return globalManager.LoadSound(path)
}

func (m *Manager) LoadSound(path string) (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.device.Load(path)
	if !ok {
		return 0, false
	}

	id := m.nextID
	m.nextID++

	m.sources[id] = &Source{
		ID:          id,
		Path:        path,
		handle:      h,
		Volume:      1.0,
		MaxDistance: 50.0,
		Spatial:     true,
	}
	return id, true
}

// Play starts a source from the beginning, or resumes it when paused.
func Play(id uint64) {
	if globalManager == nil {
		return
	}
	globalManager.Play(id)
}

func (m *Manager) Play(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	src, ok := m.sources[id]
	if !ok {
		return
	}
	if src.paused {
		m.device.Resume(src.handle)
	} else if !src.playing {
		m.device.Play(src.handle)
	}
	src.playing = true
	src.paused = false
}

// Pause holds a playing source at its current position.
func Pause(id uint64) {
	if globalManager == nil {
		return
	}
	globalManager.Pause(id)
}

func (m *Manager) Pause(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if src, ok := m.sources[id]; ok && src.playing && !src.paused {
		m.device.Pause(src.handle)
		src.paused = true
	}
}

// Stop stops a source
func Stop(id uint64) {
	if globalManager == nil {
		return
	}
	globalManager.Stop(id)
}

func (m *Manager) Stop(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if src, ok := m.sources[id]; ok {
		m.device.Stop(src.handle)
		src.playing = false
		src.paused = false
	}
}

// Configure copies the playback settings onto a loaded source.
func Configure(id uint64, volume, maxDistance float32, loop, spatial bool) {
	if globalManager == nil {
		return
	}
	globalManager.Configure(id, volume, maxDistance, loop, spatial)
}

func (m *Manager) Configure(id uint64, volume, maxDistance float32, loop, spatial bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if src, ok := m.sources[id]; ok {
		src.Volume = volume
		src.MaxDistance = maxDistance
		src.Loop = loop
		src.Spatial = spatial
	}
}

// SetSourcePosition updates a source's position
func SetSourcePosition(id uint64, pos rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		src.Position = pos
	}
}

// SetSourceVolume sets the volume for a source
func SetSourceVolume(id uint64, volume float32) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		src.Volume = volume
	}
}

// UnloadSource removes a source
func UnloadSource(id uint64) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		globalManager.device.Unload(src.handle)
		delete(globalManager.sources, id)
	}
}

// Update updates spatial audio parameters for all sources
func Update() {
	if globalManager == nil {
		return
	}
	globalManager.Update()
}

func (m *Manager) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()

	listener := m.listener

	for _, src := range m.sources {
		if !src.playing || src.paused {
			continue
		}

		// Handle looping
		if !m.device.IsPlaying(src.handle) {
			if !src.Loop {
				src.playing = false
				continue
			}
			m.device.Play(src.handle)
		}

		volume, pan := src.mix(listener)
		m.device.SetVolume(src.handle, volume)
		m.device.SetPan(src.handle, pan)
	}
}

// mix computes the volume and pan a source is heard with.
func (src *Source) mix(listener Listener) (volume, pan float32) {
	if !src.Spatial {
		// 2D audio - center pan, full volume
		return src.Volume, 0.5
	}

	// Calculate spatial audio
	toSource := rl.Vector3Subtract(src.Position, listener.Position)
	distance := rl.Vector3Length(toSource)

	// Distance attenuation
	if distance < src.MaxDistance {
		// Linear falloff
		volume = src.Volume * (1.0 - distance/src.MaxDistance)
	}

	// Pan based on angle to listener's right vector
	pan = 0.5 // center
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		rightDot := rl.Vector3DotProduct(direction, listener.Right)
		// rightDot: -1 = full left, +1 = full right
		// pan: 0 = full left, 0.5 = center, 1 = full right
		pan = 0.5 + rightDot*0.5

		// Clamp pan to valid range
		if pan < 0.0 {
			pan = 0.0
		} else if pan > 1.0 {
			pan = 1.0
		}

		// Also factor in front/back - sounds behind are slightly quieter
		frontDot := rl.Vector3DotProduct(direction, listener.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return volume, pan
}

// IsPlaying is true while a source is playing and not paused.
func IsPlaying(id uint64) bool {
	if globalManager == nil {
		return false
	}
	return globalManager.IsPlaying(id)
}

func (m *Manager) IsPlaying(id uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if src, ok := m.sources[id]; ok {
		return src.playing && !src.paused
	}
	return false
}

// IsPaused is true for a source that was paused and not stopped since.
func IsPaused(id uint64) bool {
	if globalManager == nil {
		return false
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	if src, ok := globalManager.sources[id]; ok {
		return src.paused
	}
	return false
}
