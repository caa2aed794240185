package triggers

import (
	"github.com/arthur-debert/gearbox/pkg/registry"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// Honk fires a transition without any phase payloads
type Honk struct {
	transition.Simple
}

// Tick is emitted by the host clock
type Tick struct {
	transition.Simple
	Seq uint64
}

func init() {
	registry.RegisterSimple[Honk]()
	registry.RegisterSimple[Tick]()
}
