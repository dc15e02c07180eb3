package audio

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibDevice plays sounds through raylib. It is only touched with the
// manager's mutex held.
type raylibDevice struct {
	sounds map[Handle]rl.Sound
	next   Handle
}

func newRaylibDevice() *raylibDevice {
	return &raylibDevice{sounds: make(map[Handle]rl.Sound)}
}

func (d *raylibDevice) Load(path string) (Handle, bool) {
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return 0, false
	}
	d.next++
	d.sounds[d.next] = sound
	return d.next, true
}

func (d *raylibDevice) Unload(h Handle) {
	if s, ok := d.sounds[h]; ok {
		rl.UnloadSound(s)
		delete(d.sounds, h)
	}
}

func (d *raylibDevice) Play(h Handle) {
	if s, ok := d.sounds[h]; ok {
		rl.PlaySound(s)
	}
}

func (d *raylibDevice) Stop(h Handle) {
	if s, ok := d.sounds[h]; ok {
		rl.StopSound(s)
	}
}

func (d *raylibDevice) Pause(h Handle) {
	if s, ok := d.sounds[h]; ok {
		rl.PauseSound(s)
	}
}

func (d *raylibDevice) Resume(h Handle) {
	if s, ok := d.sounds[h]; ok {
		rl.ResumeSound(s)
	}
}

func (d *raylibDevice) IsPlaying(h Handle) bool {
	if s, ok := d.sounds[h]; ok {
		return rl.IsSoundPlaying(s)
	}
	return false
}

func (d *raylibDevice) SetVolume(h Handle, volume float32) {
	if s, ok := d.sounds[h]; ok {
		rl.SetSoundVolume(s, volume)
	}
}

func (d *raylibDevice) SetPan(h Handle, pan float32) {
	if s, ok := d.sounds[h]; ok {
		rl.SetSoundPan(s, pan)
	}
}

func (d *raylibDevice) Close() {
	for h := range d.sounds {
		d.Unload(h)
	}
	rl.CloseAudioDevice()
}
