package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokeInOrder(t *testing.T) {
	var e Event
	var calls []string

	e.AddListener(func() { calls = append(calls, "a") })
	e.AddListener(func() { calls = append(calls, "b") })
	assert.Zero(t, e.AddListener(nil))

	e.Invoke()

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, 2, e.GetListenerCount())
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	count := 0

	id := e.AddListener(func() { count++ })
	e.AddListener(func() { count += 10 })

	assert.True(t, e.RemoveListener(id))
	assert.False(t, e.RemoveListener(id))

	e.Invoke()
	assert.Equal(t, 10, count)

	e.RemoveAllListeners()
	e.Invoke()
	assert.Equal(t, 10, count)
}

func TestEventListenerAddedDuringInvoke(t *testing.T) {
	var e Event
	late := 0
	e.AddListener(func() {
		e.AddListener(func() { late++ })
	})

	e.Invoke()
	assert.Equal(t, 0, late)

	e.Invoke()
	assert.Equal(t, 1, late)
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got []string

	id := e.AddListener(func(s string) { got = append(got, s) })
	e.Invoke("hello")
	e.RemoveListener(id)
	e.Invoke("ignored")

	assert.Equal(t, []string{"hello"}, got)
	assert.Zero(t, e.GetListenerCount())
}
