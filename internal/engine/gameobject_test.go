package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingComponent struct {
	BaseComponent
	updates int
	starts  int
}

func (c *countingComponent) Start()             { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	assert.Equal(t, "TestObject", obj.Name)
	assert.NotZero(t, obj.UID)
	assert.True(t, obj.Active)
	assert.NotNil(t, obj.components)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, obj.Transform.Scale)
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	assert.NotEqual(t, obj1.UID, obj2.UID)
	assert.NotEqual(t, obj2.UID, obj3.UID)
	assert.NotEqual(t, obj1.UID, obj3.UID)
}

func TestReserveUID(t *testing.T) {
	high := NewGameObject("Probe").UID + 1000
	ReserveUID(high)

	assert.Greater(t, NewGameObject("After").UID, high)

	// Reserving a lower UID never moves the counter back.
	ReserveUID(1)
	assert.Greater(t, NewGameObject("Again").UID, high)
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"wall", "interactive"}

	assert.True(t, obj.HasTag("wall"))
	assert.True(t, obj.HasTag("interactive"))
	assert.False(t, obj.HasTag("player"))
	assert.False(t, NewGameObject("Test2").HasTag("anything"))
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	assert.Same(t, parent, child.Parent)
	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
}

func TestGameObjectReparent(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	child := NewGameObject("Child")

	a.AddChild(child)
	b.AddChild(child)

	assert.Empty(t, a.Children)
	assert.Same(t, b, child.Parent)
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	require.Len(t, parent.Children, 1)
	assert.Same(t, child2, parent.Children[0])
	assert.Nil(t, child1.Parent)
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	assert.Len(t, obj.Components(), 1)
	assert.Same(t, obj, comp.GetGameObject())
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(comp)

	assert.Same(t, comp, GetComponent[*countingComponent](obj))
	assert.Nil(t, GetComponent[*countingComponent](NewGameObject("Empty")))
	assert.Nil(t, GetComponent[*countingComponent](nil))
}

func TestGetComponentInChildren(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	comp := &countingComponent{}
	leaf.AddComponent(comp)

	assert.Same(t, comp, GetComponentInChildren[*countingComponent](root))
	assert.Nil(t, GetComponentInChildren[*countingComponent](NewGameObject("Lonely")))
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	assert.True(t, obj.started)
	assert.Equal(t, 1, comp.starts)
}

func TestGameObjectUpdateSkipsDisabled(t *testing.T) {
	obj := NewGameObject("Test")
	on := &countingComponent{}
	off := &countingComponent{}
	obj.AddComponent(on)
	obj.AddComponent(off)

	off.Disable()
	obj.Update(0.1)

	assert.Equal(t, 1, on.updates)
	assert.Equal(t, 0, off.updates)
	assert.False(t, IsEnabled(off))

	off.SetEnabled(true)
	obj.Update(0.1)
	assert.Equal(t, 1, off.updates)
}

func TestGameObjectUpdateSkipsInactiveHierarchy(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	comp := &countingComponent{}
	child.AddComponent(comp)

	parent.SetActive(false)
	child.Update(0.1)
	assert.False(t, child.ActiveInHierarchy())
	assert.Equal(t, 0, comp.updates)

	parent.SetActive(true)
	child.Update(0.1)
	assert.Equal(t, 1, comp.updates)
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 2, Y: 0, Z: 3}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 0, Y: 1.6, Z: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	assert.InDelta(t, 2, pos.X, 1e-5)
	assert.InDelta(t, 1.6, pos.Y, 1e-5)
	assert.InDelta(t, 3, pos.Z, 1e-5)
}
