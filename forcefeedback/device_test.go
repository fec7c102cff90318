package forcefeedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgr/xidi/forcefeedback"
)

func TestDeviceRegistration(t *testing.T) {
	var d forcefeedback.Device
	a, b := "controller-a", "controller-b"

	assert.False(t, d.IsRegistered(a))
	assert.Equal(t, 0, d.RegisteredCount())

	d.Register(a)
	d.Register(a)
	assert.True(t, d.IsRegistered(a), "registration is idempotent")
	assert.Equal(t, 1, d.RegisteredCount())

	d.Register(b)
	assert.Equal(t, 2, d.RegisteredCount(), "multiple virtual controllers can share one device")

	d.Unregister(a)
	assert.False(t, d.IsRegistered(a))
	assert.True(t, d.IsRegistered(b))

	d.Unregister(a)
	assert.Equal(t, 1, d.RegisteredCount(), "unregistering twice is a no-op")
}

func TestRegistryHandsOutPerSlotDevices(t *testing.T) {
	r := forcefeedback.NewRegistry()
	handle := "vc"

	assert.Nil(t, r.Device(0), "no device before first registration")

	dev := r.Register(0, handle)
	require.NotNil(t, dev)
	assert.True(t, dev.IsRegistered(handle))
	assert.Same(t, r.Device(0), dev.(*forcefeedback.Device))

	other := r.Register(1, handle)
	assert.NotSame(t, dev, other, "each physical slot gets its own device")

	r.Unregister(0, handle)
	assert.False(t, dev.IsRegistered(handle))

	r.Unregister(5, handle)
}

func TestDefaultActuatorMap(t *testing.T) {
	am := forcefeedback.DefaultActuatorMap()

	assert.True(t, am.LeftMotor.Present)
	assert.True(t, am.RightMotor.Present)
	assert.False(t, am.LeftTrigger.Present)
	assert.False(t, am.RightTrigger.Present)
	assert.Equal(t, forcefeedback.ActuatorModeSingleAxis, am.LeftMotor.Mode)
}
