package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by built-in components that scene files can
// describe. Serialize output includes the "type" key.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

var componentRegistry = map[string]func() Serializable{}

// RegisterComponent makes a built-in component type loadable by name.
func RegisterComponent(name string, factory func() Serializable) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a component from its scene-file data. ok is false
// for unknown type names.
func CreateComponent(name string, data map[string]any) (Serializable, bool) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, false
	}
	c := factory()
	c.Deserialize(data)
	return c, true
}

// GetRegisteredComponents returns the sorted built-in component type names.
func GetRegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
