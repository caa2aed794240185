// Package dispatch holds the runtime table the phase pipeline queries for each
// incoming trigger event.
//
// A Table is filled by installers during materialization and then sealed.
// Sealed tables never change and can be shared by any number of goroutines
// without locking.
package dispatch

import (
	"reflect"
	"sort"

	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// Converter turns a trigger value into its phase sub-events. The value passed
// in always has the dynamic type the converter was registered for.
type Converter func(ev any) transition.Phases

// Entry is the dispatch behaviour of a single trigger type
type Entry struct {
	Identity transition.Identity
	Kind     transition.Kind
	Convert  Converter
}

// Table maps trigger type identities to their conversion behaviour
type Table struct {
	entries    map[reflect.Type]Entry
	byName     map[string]reflect.Type
	collisions []string
	sealed     bool
}

// New creates an empty, unsealed table
func New() *Table {
	return &Table{
		entries: make(map[reflect.Type]Entry),
		byName:  make(map[string]reflect.Type),
	}
}

// Insert adds or replaces the entry for e.Identity. It reports whether an
// entry for the same identity was already present; the newer entry wins.
// Distinct types sharing a qualified name (types declared inside functions)
// both stay dispatchable, but the name index keeps the newer one and the
// clash is recorded as a collision. Inserting into a sealed table panics.
func (t *Table) Insert(e Entry) bool {
	if t.sealed {
		panic(errors.Newf(errors.ErrTableSealed,
			"cannot insert %s: dispatch table is sealed", e.Identity.Name))
	}
	if e.Identity.Type == nil || e.Convert == nil {
		panic(errors.Newf(errors.ErrInvalidInput,
			"dispatch entry %q needs a type and a converter", e.Identity.Name))
	}

	_, replaced := t.entries[e.Identity.Type]
	prev, named := t.byName[e.Identity.Name]
	if replaced || (named && prev != e.Identity.Type) {
		t.collisions = append(t.collisions, e.Identity.Name)
	}

	t.entries[e.Identity.Type] = e
	t.byName[e.Identity.Name] = e.Identity.Type
	return replaced
}

// Seal makes the table read-only
func (t *Table) Seal() {
	t.sealed = true
}

// Sealed reports whether Seal has been called
func (t *Table) Sealed() bool {
	return t.sealed
}

// Lookup returns the entry registered for typ
func (t *Table) Lookup(typ reflect.Type) (Entry, bool) {
	e, ok := t.entries[typ]
	return e, ok
}

// LookupName returns the entry registered under a package-qualified type name
func (t *Table) LookupName(name string) (Entry, bool) {
	typ, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.Lookup(typ)
}

// Has reports whether typ is registered
func (t *Table) Has(typ reflect.Type) bool {
	_, ok := t.entries[typ]
	return ok
}

// Dispatch derives the phase sub-events of ev using the entry registered for
// its dynamic type. Unregistered types yield a TRANSITION_NOT_REGISTERED error.
func (t *Table) Dispatch(ev any) (transition.Phases, error) {
	if ev == nil {
		return transition.Phases{}, errors.New(errors.ErrInvalidInput, "cannot dispatch a nil event")
	}

	typ := reflect.TypeOf(ev)
	e, ok := t.entries[typ]
	if !ok {
		return transition.Phases{}, errors.Newf(errors.ErrTransitionNotRegistered,
			"no transition registered for %s", transition.NameOf(typ)).
			WithDetail("type", transition.NameOf(typ))
	}

	return e.Convert(ev), nil
}

// Len returns the number of registered trigger types
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns the registered type names in sorted order, one per entry
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Identity.Name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every entry sorted by type name
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Identity.Name < entries[j].Identity.Name
	})
	return entries
}

// Collisions returns the names inserted more than once, either for the same
// type or for distinct types sharing a name, once per clash in insertion order
func (t *Table) Collisions() []string {
	out := make([]string, len(t.collisions))
	copy(out, t.collisions)
	return out
}
