// Package transition defines the contract every trigger event type implements
// to feed the phase pipeline of a state machine.
//
// A trigger event is any named Go type that can derive up to three sub-events
// from itself, one per transition phase:
//
//   - exit: delivered while the source states are left
//   - effect: delivered between exit and entry
//   - entry: delivered while the target states are entered
//
// Each phase reports its sub-event as a (value, ok) pair, ok=false meaning the
// trigger produces nothing for that phase. NoEvent is the kind used for phases
// a trigger never fills.
//
// # Simple triggers
//
// Triggers that carry no phase payloads embed Simple:
//
//	type Honk struct {
//	    transition.Simple
//	}
//
// # Full triggers
//
// Triggers with phase payloads implement Transition directly:
//
//	type DoorOpened struct{ Side Side }
//
//	func (DoorOpened) ExitEvent() (transition.NoEvent, bool) { return transition.NoEvent{}, false }
//	func (DoorOpened) EffectEvent() (PlaySound, bool)        { return PlaySound("door"), true }
//	func (DoorOpened) EntryEvent() (transition.NoEvent, bool) { return transition.NoEvent{}, false }
//
// Registration of these types lives in package registry.
package transition
