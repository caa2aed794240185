package triggers

import "github.com/arthur-debert/gearbox/pkg/registry"

// AlarmTripped uses all three phases. An empty Zone is a test trip: it plays
// the alarm but neither silences ambient audio nor locks anything down.
type AlarmTripped struct {
	Zone string
}

func (a AlarmTripped) ExitEvent() (StopAmbient, bool) {
	return StopAmbient{}, a.Zone != ""
}

func (AlarmTripped) EffectEvent() (PlaySound, bool) {
	return PlaySound("alarm"), true
}

func (a AlarmTripped) EntryEvent() (EnterLockdown, bool) {
	if a.Zone == "" {
		return EnterLockdown{}, false
	}
	return EnterLockdown{Zone: a.Zone}, true
}

func init() {
	registry.Install[AlarmTripped, StopAmbient, PlaySound, EnterLockdown]()
}
