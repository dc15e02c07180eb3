package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
// Scripts hold refs to the props they drive (walls, panels, speakers) and
// resolve them in Start, once every object in the scene exists.
//
// Example:
//
//	type Radio struct {
//	    engine.BaseComponent
//	    Speaker engine.GameObjectRef
//	}
//
//	func (r *Radio) Start() {
//	    if speaker := r.Speaker.Get(r.GetGameObject().Scene); speaker != nil {
//	        // Use the speaker...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Ref returns a reference to g, or an empty reference for nil.
func Ref(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *GameObjectRef) Clear() {
	r.UID = 0
}
