package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressedOnlyOnTransitionTick(t *testing.T) {
	dev := NewScripted()
	st := NewState()

	st.Poll(dev)
	assert.False(t, st.Pressed(KeyE))

	dev.Hold(KeyE)
	st.Poll(dev)
	assert.True(t, st.Pressed(KeyE))
	assert.True(t, st.Down(KeyE))

	for i := 0; i < 10; i++ {
		st.Poll(dev)
		assert.False(t, st.Pressed(KeyE), "tick %d", i)
		assert.True(t, st.Down(KeyE))
	}

	dev.Release(KeyE)
	st.Poll(dev)
	assert.True(t, st.Released(KeyE))
	assert.False(t, st.Down(KeyE))

	dev.Hold(KeyE)
	st.Poll(dev)
	assert.True(t, st.Pressed(KeyE), "second press is a new edge")
}

func TestAxes(t *testing.T) {
	dev := NewScripted()
	st := NewState()

	dev.Hold(KeyW, KeyD)
	st.Poll(dev)
	assert.Equal(t, float32(1), st.Axis(AxisVertical))
	assert.Equal(t, float32(1), st.Axis(AxisHorizontal))

	dev.ReleaseAll()
	dev.Hold(KeyDown, KeyLeft)
	st.Poll(dev)
	assert.Equal(t, float32(-1), st.Axis(AxisVertical))
	assert.Equal(t, float32(-1), st.Axis(AxisHorizontal))

	dev.Hold(KeyUp)
	st.Poll(dev)
	assert.Equal(t, float32(0), st.Axis(AxisVertical), "opposing keys cancel")
}

func TestMouseDeltaAndNilDevice(t *testing.T) {
	dev := NewScripted()
	dev.SetMouseDelta(3, -2)
	st := NewState()
	st.Poll(dev)
	dx, dy := st.MouseDelta()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)

	dev.Hold(KeyE)
	st.Poll(dev)
	st.Poll(nil)
	assert.False(t, st.Down(KeyE))
	assert.True(t, st.Released(KeyE))
	dx, _ = st.MouseDelta()
	assert.Zero(t, dx)
}

func TestHeldKeys(t *testing.T) {
	dev := NewScripted()
	dev.Hold(KeyPeriod, KeyOne)
	st := NewState()
	st.Poll(dev)
	assert.Equal(t, []Key{KeyPeriod, KeyOne}, st.HeldKeys())
}

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"E":      KeyE,
		"escape": KeyEscape,
		"Esc":    KeyEscape,
		",":      KeyComma,
		"comma":  KeyComma,
		">":      KeyPeriod,
		"alpha1": KeyOne,
		"2":      KeyTwo,
		" up ":   KeyUp,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "E", KeyE.String())
	assert.Equal(t, "1", KeyOne.String())
	assert.Equal(t, "COMMA", KeyComma.String())
	assert.Equal(t, "ESCAPE", KeyEscape.String())
	assert.Equal(t, "Key(999)", Key(999).String())
}
