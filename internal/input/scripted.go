package input

import "github.com/zyedidia/generic/mapset"

// Scripted is a Device whose state is set by code: the headless simulator
// and tests drive scenes with it.
type Scripted struct {
	held   mapset.Set[Key]
	dx, dy float32
}

func NewScripted() *Scripted {
	return &Scripted{held: mapset.New[Key]()}
}

func (s *Scripted) Hold(keys ...Key) {
	for _, k := range keys {
		s.held.Put(k)
	}
}

func (s *Scripted) Release(keys ...Key) {
	for _, k := range keys {
		s.held.Remove(k)
	}
}

func (s *Scripted) ReleaseAll() {
	s.held = mapset.New[Key]()
}

// SetMouseDelta sets the delta reported on every following poll until
// changed.
func (s *Scripted) SetMouseDelta(dx, dy float32) {
	s.dx, s.dy = dx, dy
}

func (s *Scripted) IsKeyDown(k Key) bool {
	return s.held.Has(k)
}

func (s *Scripted) MouseDelta() (float32, float32) {
	return s.dx, s.dy
}
