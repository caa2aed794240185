package transition

import (
	"reflect"

	"github.com/arthur-debert/gearbox/pkg/errors"
)

// Kind tells how a trigger type was registered.
type Kind int

const (
	// KindSimple entries always yield no sub-events.
	KindSimple Kind = iota
	// KindFull entries delegate to the trigger's own phase methods.
	KindFull
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindFull:
		return "full"
	default:
		return "unknown"
	}
}

// Identity is the lookup key of a trigger type.
type Identity struct {
	Type reflect.Type
	// Name is the package-qualified type name, e.g.
	// "github.com/arthur-debert/gearbox/pkg/triggers.Honk".
	Name string
}

func (id Identity) String() string {
	return id.Name
}

// IdentityOf returns the identity of T, or a TRANSITION_INVALID error when T
// cannot be used as a trigger type.
func IdentityOf[T any]() (Identity, error) {
	return Identify(reflect.TypeFor[T]())
}

// Identify validates t and returns its identity. Only named, package-level
// declared struct types and named scalar types (enums) qualify.
func Identify(t reflect.Type) (Identity, error) {
	if t == nil {
		return Identity{}, errors.New(errors.ErrTransitionInvalid, "trigger type is nil")
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return Identity{}, errors.Newf(errors.ErrTransitionInvalid,
			"trigger type %s must be a named type", t).
			WithDetail("type", t.String()).
			WithDetail("kind", t.Kind().String())
	}

	if !allowedKind(t.Kind()) {
		return Identity{}, errors.Newf(errors.ErrTransitionInvalid,
			"trigger type %s has kind %s, only structs and enums are supported", NameOf(t), t.Kind()).
			WithDetail("type", NameOf(t)).
			WithDetail("kind", t.Kind().String())
	}

	return Identity{Type: t, Name: NameOf(t)}, nil
}

// NameOf returns the package-qualified name of t.
func NameOf(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func allowedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Struct, reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// CheckSubEvents validates the sub-event kinds a full trigger declares.
// Interface kinds are rejected: a nil interface reported as present would be
// indistinguishable from an absent phase once erased into Phases.
func CheckSubEvents[X, F, N any](trigger Identity) error {
	kinds := [...]reflect.Type{reflect.TypeFor[X](), reflect.TypeFor[F](), reflect.TypeFor[N]()}
	for i, t := range kinds {
		if t.Kind() != reflect.Interface {
			continue
		}
		phase := AllPhases[i]
		return errors.Newf(errors.ErrTransitionInvalid,
			"trigger type %s declares interface %s as its %s sub-event, use a concrete type",
			trigger.Name, t, phase).
			WithDetail("type", trigger.Name).
			WithDetail("phase", phase.String()).
			WithDetail("sub_event", t.String())
	}
	return nil
}
