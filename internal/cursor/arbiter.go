// Package cursor owns the pointer-lock state. Components that need a free
// pointer (open panels) acquire it by name and release it when done; the
// pointer is captured again only once nobody holds it.
package cursor

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Applier pushes lock state to the platform.
type Applier interface {
	Lock()   // hide and capture the pointer
	Unlock() // show and release the pointer
}

// Arbiter is not safe for concurrent use; it lives on the frame loop.
type Arbiter struct {
	applier Applier
	owners  mapset.Set[string]
	capture bool
	locked  bool
	changes int
}

// New returns an arbiter with capture disabled and the pointer free.
// A nil applier only tracks state.
func New(applier Applier) *Arbiter {
	return &Arbiter{
		applier: applier,
		owners:  mapset.New[string](),
	}
}

// SetCapture turns pointer capture on for gameplay (the movement controller
// does this at start) or off entirely.
func (a *Arbiter) SetCapture(on bool) {
	a.capture = on
	a.apply()
}

// Acquire frees the pointer on behalf of owner. Acquiring twice is harmless.
func (a *Arbiter) Acquire(owner string) {
	a.owners.Put(owner)
	a.apply()
}

// Release drops owner's hold. The pointer is captured again when no owner
// remains and capture is on.
func (a *Arbiter) Release(owner string) {
	a.owners.Remove(owner)
	a.apply()
}

func (a *Arbiter) Holds(owner string) bool {
	return a.owners.Has(owner)
}

func (a *Arbiter) Locked() bool {
	return a.locked
}

// Owners returns the current holders, sorted.
func (a *Arbiter) Owners() []string {
	var out []string
	a.owners.Each(func(o string) {
		out = append(out, o)
	})
	sort.Strings(out)
	return out
}

// Transitions counts lock/unlock calls pushed to the applier.
func (a *Arbiter) Transitions() int {
	return a.changes
}

func (a *Arbiter) apply() {
	want := a.capture && a.owners.Size() == 0
	if want == a.locked {
		return
	}
	a.locked = want
	a.changes++
	if a.applier == nil {
		return
	}
	if want {
		a.applier.Lock()
	} else {
		a.applier.Unlock()
	}
}
