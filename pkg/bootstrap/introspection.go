package bootstrap

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/performer/pkg/helper"
)

// WiringState is the observable snapshot of a Wiring.
type WiringState struct {
	State      string               `json:"state"`
	Performers []Binding            `json:"performers,omitempty"`
	Registry   helper.RegistryState `json:"registry"`
}

// Snapshot captures the current wiring.
func (w *Wiring) Snapshot() WiringState {
	return WiringState{
		State:      w.State().String(),
		Performers: w.Performers(),
		Registry:   w.Registry().State().(helper.RegistryState),
	}
}

// Inspect adapts a Wiring to introspection.Introspectable. Wiring.State is
// already the lifecycle accessor, so the adapter carries the snapshot.
func Inspect(w *Wiring) introspection.Introspectable {
	return inspector{w: w}
}

type inspector struct{ w *Wiring }

func (i inspector) State() any { return i.w.Snapshot() }

func (i inspector) ComponentType() string { return "wiring" }

var _ introspection.Introspectable = inspector{}
var _ introspection.Component = inspector{}
