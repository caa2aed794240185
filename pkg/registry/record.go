package registry

import (
	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// SimpleRecord builds a record whose entry yields no sub-events for T.
// It panics if T is not a named struct or enum type.
func SimpleRecord[T transition.SimpleTransition]() Record {
	id := mustIdentity[T]()
	return Record{
		Identity: id,
		Kind:     transition.KindSimple,
		Install: func(t *dispatch.Table) {
			t.Insert(dispatch.Entry{
				Identity: id,
				Kind:     transition.KindSimple,
				Convert:  func(any) transition.Phases { return transition.Phases{} },
			})
		},
	}
}

// FullRecord builds a record whose entry delegates to T's own phase methods.
// It panics if T is not a named struct or enum type, or if any of X, F and N
// is an interface type.
func FullRecord[T transition.Transition[X, F, N], X, F, N any]() Record {
	id := mustIdentity[T]()
	if err := transition.CheckSubEvents[X, F, N](id); err != nil {
		panic(err)
	}
	return Record{
		Identity: id,
		Kind:     transition.KindFull,
		Install: func(t *dispatch.Table) {
			t.Insert(dispatch.Entry{
				Identity: id,
				Kind:     transition.KindFull,
				Convert: func(ev any) transition.Phases {
					return transition.Convert[T, X, F, N](ev.(T))
				},
			})
		},
	}
}

func mustIdentity[T any]() transition.Identity {
	id, err := transition.IdentityOf[T]()
	if err != nil {
		panic(err)
	}
	return id
}
