package audio

import "sync"

// Headless is a silent Device. Every non-empty path loads, and a playing
// sound never ends on its own, so it behaves like a looping clip.
type Headless struct {
	mu     sync.Mutex
	sounds map[Handle]*headlessSound
	next   Handle
}

type headlessSound struct {
	path    string
	playing bool
	volume  float32
	pan     float32
}

func NewHeadless() *Headless {
	return &Headless{sounds: make(map[Handle]*headlessSound)}
}

func (d *Headless) Load(path string) (Handle, bool) {
	if path == "" {
		return 0, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.sounds[d.next] = &headlessSound{path: path, volume: 1, pan: 0.5}
	return d.next, true
}

func (d *Headless) Unload(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sounds, h)
}

func (d *Headless) set(h Handle, fn func(s *headlessSound)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.sounds[h]; ok {
		fn(s)
	}
}

func (d *Headless) Play(h Handle)   { d.set(h, func(s *headlessSound) { s.playing = true }) }
func (d *Headless) Stop(h Handle)   { d.set(h, func(s *headlessSound) { s.playing = false }) }
func (d *Headless) Pause(h Handle)  { d.set(h, func(s *headlessSound) { s.playing = false }) }
func (d *Headless) Resume(h Handle) { d.set(h, func(s *headlessSound) { s.playing = true }) }

func (d *Headless) SetVolume(h Handle, volume float32) {
	d.set(h, func(s *headlessSound) { s.volume = volume })
}

func (d *Headless) SetPan(h Handle, pan float32) {
	d.set(h, func(s *headlessSound) { s.pan = pan })
}

func (d *Headless) IsPlaying(h Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sounds[h]
	return ok && s.playing
}

func (d *Headless) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sounds = map[Handle]*headlessSound{}
}

// Mixed reports the last volume and pan pushed for the sound loaded from path.
func (d *Headless) Mixed(path string) (volume, pan float32, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range d.sounds {
		if s.path == path {
			return s.volume, s.pan, true
		}
	}
	return 0, 0, false
}

// Playing lists the paths of sounds currently playing.
func (d *Headless) Playing() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, s := range d.sounds {
		if s.playing {
			out = append(out, s.path)
		}
	}
	return out
}
