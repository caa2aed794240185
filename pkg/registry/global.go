package registry

import (
	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

var defaultRegistry *Registry

func init() {
	defaultRegistry = New()
}

// Default returns the process-wide registry filled from init functions
func Default() *Registry {
	return defaultRegistry
}

// RegisterSimple submits a simple record for T to the default registry
func RegisterSimple[T transition.SimpleTransition]() {
	defaultRegistry.Submit(SimpleRecord[T]())
}

// Install submits a full record for T to the default registry
func Install[T transition.Transition[X, F, N], X, F, N any]() {
	defaultRegistry.Submit(FullRecord[T, X, F, N]())
}

// Materialize builds the dispatch table from the default registry
func Materialize(opts ...Option) (*dispatch.Table, error) {
	return defaultRegistry.Materialize(opts...)
}
