package mouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samuelgr/xidi/mouse"
)

func TestNameLookups(t *testing.T) {
	b, ok := mouse.ButtonByName("left")
	assert.True(t, ok)
	assert.Equal(t, mouse.ButtonLeft, b)

	_, ok = mouse.ButtonByName("fourth")
	assert.False(t, ok)

	a, ok := mouse.AxisByName("WheelVertical")
	assert.True(t, ok)
	assert.Equal(t, mouse.AxisWheelVertical, a)

	a, ok = mouse.AxisByName("y")
	assert.True(t, ok)
	assert.Equal(t, mouse.AxisY, a)
}

func TestVirtualButtonState(t *testing.T) {
	mouse.Reset()
	t.Cleanup(mouse.Reset)

	mouse.SubmitButtonPressedState(mouse.ButtonRight)
	assert.True(t, mouse.IsButtonPressed(mouse.ButtonRight))
	assert.False(t, mouse.IsButtonPressed(mouse.ButtonLeft))

	mouse.SubmitButtonReleasedState(mouse.ButtonRight)
	assert.False(t, mouse.IsButtonPressed(mouse.ButtonRight))
}

func TestMovementAggregation(t *testing.T) {
	mouse.Reset()
	t.Cleanup(mouse.Reset)

	mouse.SubmitMovement(mouse.AxisX, 100, 0)
	mouse.SubmitMovement(mouse.AxisX, -30, 1)
	assert.Equal(t, int32(70), mouse.AggregateMovement(mouse.AxisX),
		"contributions from distinct sources are additive")

	// A source overwrites its own prior contribution rather than stacking.
	mouse.SubmitMovement(mouse.AxisX, 10, 0)
	assert.Equal(t, int32(-20), mouse.AggregateMovement(mouse.AxisX))

	assert.Equal(t, int32(0), mouse.AggregateMovement(mouse.AxisY))
}
