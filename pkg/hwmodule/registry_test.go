package hwmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidaudio/droid-go/pkg/hal"
	"github.com/droidaudio/droid-go/pkg/hal/sim"
	"github.com/droidaudio/droid-go/pkg/log"
)

func TestRegistryRefcount(t *testing.T) {
	f, drv := newSimFixture(t)

	again, err := f.registry.GetOrOpen("primary")
	require.NoError(t, err)
	assert.Same(t, f.module, again)
	assert.Same(t, f.module, f.registry.Lookup("primary"))

	require.NoError(t, again.Release())
	assert.False(t, drv.Closed())
	assert.NotNil(t, f.registry.Lookup("primary"))

	require.NoError(t, f.module.Release())
	assert.True(t, drv.Closed())
	assert.Nil(t, f.registry.Lookup("primary"))

	err = f.module.Release()
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestRegistryReopenGetsNewInstance(t *testing.T) {
	f, _ := newSimFixture(t)
	first := f.module.InstanceID
	require.NoError(t, f.module.Release())

	// The driver registered by the fixture returns the closed simulator,
	// so register a fresh one.
	hal.Register("reopen-"+first.String(), func(string) (hal.Device, error) {
		return sim.New(sim.DefaultCapabilities()), nil
	})
	f.registry.driver = "reopen-" + first.String()

	m, err := f.registry.GetOrOpen("primary")
	require.NoError(t, err)
	assert.NotEqual(t, first, m.InstanceID)
	require.NoError(t, m.Release())
}

func TestRegistryUnknownModule(t *testing.T) {
	f, _ := newSimFixture(t)
	_, err := f.registry.GetOrOpen("usb")
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestRegistryUnknownDriver(t *testing.T) {
	r := NewRegistry(phoneConfig(), RegistryConfig{Driver: "no-such-driver"})
	_, err := r.GetOrOpen("primary")
	assert.ErrorIs(t, err, hal.ErrUnknownDriver)
	assert.Nil(t, r.Lookup("primary"))
}

func TestRegistryReleaseWithOpenStreamPanics(t *testing.T) {
	f, _ := newSimFixture(t)
	f.openOutput(t, "primary output", "Speaker")

	assert.Panics(t, func() { _ = f.module.Release() })
}

func TestModuleConfigIsPrivate(t *testing.T) {
	f, _ := newSimFixture(t)

	shared := f.registry.hw.Module("primary")
	own := f.module.Config()
	require.NotNil(t, own)
	assert.NotSame(t, shared, own)
	assert.Equal(t, shared.Name, own.Name)

	own.FindPort("Speaker").Address = "changed"
	assert.Empty(t, shared.FindPort("Speaker").Address)

	// Ports of the shared description are stale for the module.
	_, err := f.module.OpenOutput(StreamRequest{
		Mix:    shared.FindPort("primary output"),
		Device: shared.FindPort("Speaker"),
		Spec:   stereo48k(),
	})
	assert.ErrorIs(t, err, ErrStalePort)
}

func TestModuleProfiles(t *testing.T) {
	f, _ := newSimFixture(t)

	p := f.module.Profiles().Default()
	require.NotNil(t, p)
	assert.Len(t, p.Outputs(), 2)
	assert.Len(t, p.Inputs(), 3)
	assert.NotNil(t, p.Mapping(f.port(t, "voip_tx").Direction(), "voip_tx"))
}

func TestEventsCarryInstance(t *testing.T) {
	f, _ := newSimFixture(t)
	f.openOutput(t, "primary output", "Speaker")

	events := f.events.byCategory(log.CategoryStream)
	require.Len(t, events, 1)
	assert.Equal(t, f.module.InstanceID.String(), events[0].ModuleID)
	assert.Equal(t, "primary", events[0].Module)
	assert.False(t, events[0].Timestamp.IsZero())
}
