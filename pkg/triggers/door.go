package triggers

import (
	"github.com/arthur-debert/gearbox/pkg/registry"
	"github.com/arthur-debert/gearbox/pkg/transition"
)

// Side of a door
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// DoorOpened plays the door sound during the effect phase
type DoorOpened struct {
	Side Side
}

func (DoorOpened) ExitEvent() (transition.NoEvent, bool) {
	return transition.NoEvent{}, false
}

func (DoorOpened) EffectEvent() (PlaySound, bool) {
	return PlaySound("door"), true
}

func (DoorOpened) EntryEvent() (transition.NoEvent, bool) {
	return transition.NoEvent{}, false
}

func init() {
	registry.Install[DoorOpened, transition.NoEvent, PlaySound, transition.NoEvent]()
}
