// Package mixer implements the two-channel linear crossfader used by the DJ
// booth.
package mixer

const (
	DefaultValue = 0.5
	DefaultRate  = 0.5
)

// Crossfade is a position in [0,1]: 0 is all channel A, 1 is all channel B.
// Rate is how far the position moves per second while a direction is held.
type Crossfade struct {
	Value float32
	Rate  float32
}

func New(value, rate float32) *Crossfade {
	return &Crossfade{Value: Clamp01(value), Rate: rate}
}

// Step moves the fader for one tick of length dt. Holding both directions
// applies both, decrease first.
func (c *Crossfade) Step(dt float32, decrease, increase bool) {
	if decrease {
		c.Value = Clamp01(c.Value - c.Rate*dt)
	}
	if increase {
		c.Value = Clamp01(c.Value + c.Rate*dt)
	}
}

// Gains returns the channel volumes for the current position. They always
// sum to 1.
func (c *Crossfade) Gains() (a, b float32) {
	x := Clamp01(c.Value)
	return 1 - x, x
}

func Clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
