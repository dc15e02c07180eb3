package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	assert.Same(t, obj, GameObjectRef{UID: obj.UID}.Get(scene))
	assert.Same(t, obj, Ref(obj).Get(scene))
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")

	assert.Nil(t, GameObjectRef{}.Get(scene))
	assert.Nil(t, GameObjectRef{UID: 99999999}.Get(scene))
	assert.Nil(t, GameObjectRef{UID: 123}.Get(nil))
}

func TestGameObjectRefSetAndClear(t *testing.T) {
	obj := NewGameObject("Target")
	var ref GameObjectRef

	assert.False(t, ref.IsValid())
	ref.Set(obj)
	assert.True(t, ref.IsValid())
	assert.Equal(t, obj.UID, ref.UID)

	ref.Set(nil)
	assert.False(t, ref.IsValid())

	ref.Set(obj)
	ref.Clear()
	assert.Zero(t, ref.UID)
	assert.False(t, Ref(nil).IsValid())
}
