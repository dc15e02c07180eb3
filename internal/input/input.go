// Package input turns per-tick keyboard and mouse state into the queries
// scripts need: is a key held, did it go down on this tick, and the
// movement axes.
package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Device is a physical (or scripted) source of key and mouse state.
type Device interface {
	IsKeyDown(k Key) bool
	MouseDelta() (dx, dy float32)
}

// Axis is a virtual analog input built from two opposing key groups.
type Axis int

const (
	AxisHorizontal Axis = iota // D/Right positive, A/Left negative
	AxisVertical               // W/Up positive, S/Down negative
)

// Reader is what scripts read input through. Pressed and Released are edge
// queries: they are true only on the tick the transition was observed.
type Reader interface {
	Down(k Key) bool
	Pressed(k Key) bool
	Released(k Key) bool
	Axis(a Axis) float32
	MouseDelta() (dx, dy float32)
}

// State is a Reader fed once per tick by Poll.
type State struct {
	prev mapset.Set[Key]
	cur  mapset.Set[Key]

	mouseX, mouseY float32
}

func NewState() *State {
	return &State{
		prev: mapset.New[Key](),
		cur:  mapset.New[Key](),
	}
}

// Poll samples dev. Call it exactly once per tick, before scripts update.
func (s *State) Poll(dev Device) {
	s.prev = s.cur
	s.cur = mapset.New[Key]()
	s.mouseX, s.mouseY = 0, 0
	if dev == nil {
		return
	}
	for _, k := range all {
		if dev.IsKeyDown(k) {
			s.cur.Put(k)
		}
	}
	s.mouseX, s.mouseY = dev.MouseDelta()
}

func (s *State) Down(k Key) bool {
	return s.cur.Has(k)
}

func (s *State) Pressed(k Key) bool {
	return s.cur.Has(k) && !s.prev.Has(k)
}

func (s *State) Released(k Key) bool {
	return !s.cur.Has(k) && s.prev.Has(k)
}

func (s *State) Axis(a Axis) float32 {
	var pos, neg bool
	switch a {
	case AxisHorizontal:
		pos = s.Down(KeyD) || s.Down(KeyRight)
		neg = s.Down(KeyA) || s.Down(KeyLeft)
	case AxisVertical:
		pos = s.Down(KeyW) || s.Down(KeyUp)
		neg = s.Down(KeyS) || s.Down(KeyDown)
	}
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

func (s *State) MouseDelta() (dx, dy float32) {
	return s.mouseX, s.mouseY
}

// HeldKeys returns the keys held on the current tick, in key order.
func (s *State) HeldKeys() []Key {
	var held []Key
	for _, k := range all {
		if s.cur.Has(k) {
			held = append(held, k)
		}
	}
	return held
}
