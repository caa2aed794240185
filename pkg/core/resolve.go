package core

import (
	"reflect"
	"strings"

	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// Resolve finds a registered entry by its package-qualified name or, when
// that is unambiguous, by pkg.Type (last import path element) or by its bare
// type name.
func (r *Runtime) Resolve(name string) (dispatch.Entry, error) {
	if e, ok := r.Table.LookupName(name); ok {
		return e, nil
	}

	var matches []dispatch.Entry
	for _, e := range r.Table.Entries() {
		if e.Identity.Type.Name() == name || shortName(e.Identity.Name) == name {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return dispatch.Entry{}, errors.Newf(errors.ErrTransitionNotRegistered,
			"no transition registered for %s", name).WithDetail("name", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Identity.Name)
		}
		return dispatch.Entry{}, errors.Newf(errors.ErrInvalidInput,
			"%s is ambiguous: %s", name, strings.Join(names, ", ")).WithDetail("candidates", names)
	}
}

// shortName drops the import path up to the last slash, so
// "example.com/app/triggers.Honk" becomes "triggers.Honk" and "main.Honk"
// stays as it is
func shortName(qualified string) string {
	return qualified[strings.LastIndex(qualified, "/")+1:]
}

// DispatchZero dispatches the zero value of the type registered under name
func (r *Runtime) DispatchZero(name string) (dispatch.Entry, transition.Phases, error) {
	e, err := r.Resolve(name)
	if err != nil {
		return dispatch.Entry{}, transition.Phases{}, err
	}

	ev := reflect.New(e.Identity.Type).Elem().Interface()
	phases, err := r.Table.Dispatch(ev)
	if err != nil {
		return dispatch.Entry{}, transition.Phases{}, err
	}
	return e, phases, nil
}
