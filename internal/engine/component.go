package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Toggleable is implemented by components that can be switched off. A
// disabled component is skipped by GameObject.Update. BaseComponent
// implements it, so every component embedding BaseComponent can be disabled.
type Toggleable interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	disabled   bool
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

func (b *BaseComponent) Enabled() bool {
	return !b.disabled
}

func (b *BaseComponent) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Disable switches the component off. Scripts call it from Start when a
// required reference is missing.
func (b *BaseComponent) Disable() {
	b.disabled = true
}

// IsEnabled reports whether c should receive updates.
func IsEnabled(c Component) bool {
	if t, ok := c.(Toggleable); ok {
		return t.Enabled()
	}
	return true
}
