package transition

// Transition is implemented by trigger event types. Exit, Effect and Entry are
// the sub-event kinds the trigger can produce for each phase.
//
// Implementations must be pure: the same trigger value always yields the same
// sub-events and calling them has no side effects.
type Transition[Exit, Effect, Entry any] interface {
	ExitEvent() (Exit, bool)
	EffectEvent() (Effect, bool)
	EntryEvent() (Entry, bool)
}

// NoEvent is the sub-event kind of a phase that never produces anything.
type NoEvent struct{}

// Simple implements Transition with NoEvent for every phase. Embed it in
// triggers that only exist to fire transitions.
type Simple struct{}

func (Simple) ExitEvent() (NoEvent, bool) { return NoEvent{}, false }
func (Simple) EffectEvent() (NoEvent, bool) { return NoEvent{}, false }
func (Simple) EntryEvent() (NoEvent, bool) { return NoEvent{}, false }

// SimpleTransition is the constraint satisfied by triggers without payloads.
type SimpleTransition = Transition[NoEvent, NoEvent, NoEvent]

// Convert calls the trigger's own phase methods and erases the results.
func Convert[T Transition[X, F, N], X, F, N any](ev T) Phases {
	var p Phases
	if x, ok := ev.ExitEvent(); ok {
		p.Exit = x
	}
	if f, ok := ev.EffectEvent(); ok {
		p.Effect = f
	}
	if n, ok := ev.EntryEvent(); ok {
		p.Entry = n
	}
	return p
}
