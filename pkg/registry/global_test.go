package registry_test

import (
	"reflect"
	"testing"

	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/registry"
	"github.com/arthur-debert/gearbox/pkg/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Honk struct {
	transition.Simple
}

type Side int

const (
	Left Side = iota
	Right
)

type PlaySound string

type DoorOpened struct {
	Side Side
}

func (DoorOpened) ExitEvent() (transition.NoEvent, bool) { return transition.NoEvent{}, false }
func (DoorOpened) EffectEvent() (PlaySound, bool) { return PlaySound("door"), true }
func (DoorOpened) EntryEvent() (transition.NoEvent, bool) { return transition.NoEvent{}, false }

type Unknown struct{}

func init() {
	registry.RegisterSimple[Honk]()
	registry.Install[DoorOpened, transition.NoEvent, PlaySound, transition.NoEvent]()
}

func TestDefaultRegistry_CollectsInitRegistrations(t *testing.T) {
	records := registry.Default().Records()

	types := make([]reflect.Type, 0, len(records))
	for _, rec := range records {
		types = append(types, rec.Identity.Type)
	}
	assert.Contains(t, types, reflect.TypeFor[Honk]())
	assert.Contains(t, types, reflect.TypeFor[DoorOpened]())
}

func TestDefaultRegistry_Scenarios(t *testing.T) {
	table, err := registry.Materialize()
	require.NoError(t, err)
	assert.True(t, registry.Default().Frozen())

	t.Run("simple Honk yields nothing", func(t *testing.T) {
		p, err := table.Dispatch(Honk{})
		require.NoError(t, err)
		assert.Equal(t, transition.Phases{}, p)
	})

	t.Run("DoorOpened plays the door sound", func(t *testing.T) {
		p, err := table.Dispatch(DoorOpened{Side: Left})
		require.NoError(t, err)
		assert.Equal(t, transition.Phases{Effect: PlaySound("door")}, p)

		sound, ok := transition.EffectAs[PlaySound](p)
		require.True(t, ok)
		assert.Equal(t, PlaySound("door"), sound)
	})

	t.Run("Unknown is absent", func(t *testing.T) {
		_, ok := table.Lookup(reflect.TypeFor[Unknown]())
		assert.False(t, ok)

		_, err := table.Dispatch(Unknown{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransitionNotRegistered))
	})
}
