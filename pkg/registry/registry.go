package registry

import (
	"sync"

	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// Record pairs a trigger type with the installer that adds its dispatch entry
// to a table. Records are values and never change once built.
type Record struct {
	Identity transition.Identity
	Kind     transition.Kind
	Install  func(*dispatch.Table)
}

// Registry is an append-only collection of records. It is frozen by its first
// materialization; submitting to a frozen registry panics.
type Registry struct {
	mu      sync.Mutex
	records []Record
	frozen  bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Submit appends a record. Duplicates are kept; materialization resolves them.
func (r *Registry) Submit(rec Record) {
	if rec.Install == nil {
		panic(errors.Newf(errors.ErrInvalidInput, "record for %s has no installer", rec.Identity.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		panic(errors.Newf(errors.ErrRegistryFrozen,
			"cannot register %s: registry was already materialized", rec.Identity.Name).
			WithDetail("type", rec.Identity.Name))
	}

	r.records = append(r.records, rec)
}

// Records returns a copy of the submitted records in submission order
func (r *Registry) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of submitted records, duplicates included
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// Frozen reports whether the registry has been materialized
func (r *Registry) Frozen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.frozen
}

// Materialize freezes the registry and builds a sealed table from every
// record submitted so far. It may be called again; each call returns a new
// table holding the same identities.
func (r *Registry) Materialize(opts ...Option) (*dispatch.Table, error) {
	r.mu.Lock()
	r.frozen = true
	records := make([]Record, len(r.records))
	copy(records, r.records)
	r.mu.Unlock()

	return Build(records, opts...)
}
