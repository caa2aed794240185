package transition

// Phase names one of the three stages of a transition.
type Phase int

const (
	PhaseExit Phase = iota
	PhaseEffect
	PhaseEntry
)

// AllPhases lists the phases in the order the pipeline runs them.
var AllPhases = []Phase{PhaseExit, PhaseEffect, PhaseEntry}

func (p Phase) String() string {
	switch p {
	case PhaseExit:
		return "exit"
	case PhaseEffect:
		return "effect"
	case PhaseEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Phases holds the type-erased sub-events derived from one trigger. A nil
// field means the trigger produced nothing for that phase.
type Phases struct {
	Exit   any
	Effect any
	Entry  any
}

// Get returns the sub-event for a phase and whether one is present.
func (p Phases) Get(phase Phase) (any, bool) {
	var v any
	switch phase {
	case PhaseExit:
		v = p.Exit
	case PhaseEffect:
		v = p.Effect
	case PhaseEntry:
		v = p.Entry
	}
	return v, v != nil
}

// Empty reports whether no phase carries a sub-event.
func (p Phases) Empty() bool {
	return p.Exit == nil && p.Effect == nil && p.Entry == nil
}

// Each calls fn for every present sub-event in exit, effect, entry order.
func (p Phases) Each(fn func(Phase, any)) {
	for _, phase := range AllPhases {
		if v, ok := p.Get(phase); ok {
			fn(phase, v)
		}
	}
}

// ExitAs returns the exit sub-event if it is present and of type X.
func ExitAs[X any](p Phases) (X, bool) {
	return as[X](p.Exit)
}

// EffectAs returns the effect sub-event if it is present and of type F.
func EffectAs[F any](p Phases) (F, bool) {
	return as[F](p.Effect)
}

// EntryAs returns the entry sub-event if it is present and of type N.
func EntryAs[N any](p Phases) (N, bool) {
	return as[N](p.Entry)
}

func as[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}
