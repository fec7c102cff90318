package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/mapper"
)

func TestAxisMapperIdentity(t *testing.T) {
	m := mapper.NewAxisMapper(controller.AxisX, controller.AxisDirectionBoth)

	for _, v := range []int16{
		controller.AnalogMin, controller.AnalogMin + 1, -1234, -1,
		controller.AnalogNeutral, 1, 1234, controller.AnalogMax - 1, controller.AnalogMax,
	} {
		var st controller.State
		m.ContributeFromAnalogValue(&st, v, 0)
		assert.Equal(t, int32(v), st.Axes[controller.AxisX], "value %d", v)
	}
}

func TestAxisMapperHalfAxis(t *testing.T) {
	tests := []struct {
		name      string
		direction controller.AxisDirection
		input     int16
		expected  int32
	}{
		{"positive at input min", controller.AxisDirectionPositive, controller.AnalogMin, 0},
		{"positive at input max", controller.AxisDirectionPositive, controller.AnalogMax,
			(int32(controller.AnalogMax) - int32(controller.AnalogMin)) / 2},
		{"negative at input min", controller.AxisDirectionNegative, controller.AnalogMin, 0},
		{"negative at input max", controller.AxisDirectionNegative, controller.AnalogMax,
			-((int32(controller.AnalogMax) - int32(controller.AnalogMin) + 1) / 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mapper.NewAxisMapper(controller.AxisY, tc.direction)
			var st controller.State
			m.ContributeFromAnalogValue(&st, tc.input, 0)
			assert.Equal(t, tc.expected, st.Axes[controller.AxisY])
		})
	}
}

func TestAxisMapperInterference(t *testing.T) {
	const n = 3
	m := mapper.NewAxisMapper(controller.AxisX, controller.AxisDirectionBoth)

	var st controller.State
	for i := 0; i < n; i++ {
		m.ContributeFromAnalogValue(&st, controller.AnalogMax, uint32(i))
	}
	assert.Equal(t, int32(controller.AnalogMax)*n, st.Axes[controller.AxisX],
		"constructive interference is additive")

	st = controller.State{}
	m.ContributeFromAnalogValue(&st, controller.AnalogMax, 0)
	m.ContributeFromAnalogValue(&st, -controller.AnalogMax, 1)
	assert.Equal(t, int32(controller.AnalogNeutral), st.Axes[controller.AxisX],
		"equal opposite contributions cancel exactly")
}

func TestAxisMapperDigitalInputs(t *testing.T) {
	m := mapper.NewAxisMapper(controller.AxisZ, controller.AxisDirectionBoth)

	var st controller.State
	m.ContributeFromButtonValue(&st, true, 0)
	assert.Equal(t, int32(controller.AnalogMax), st.Axes[controller.AxisZ])

	st = controller.State{}
	m.ContributeFromButtonValue(&st, false, 0)
	assert.Equal(t, int32(controller.AnalogNeutral), st.Axes[controller.AxisZ])

	st = controller.State{}
	m.ContributeFromTriggerValue(&st, controller.TriggerMax, 0)
	assert.Equal(t, int32(controller.AnalogMax), st.Axes[controller.AxisZ])

	st = controller.State{}
	m.ContributeFromTriggerValue(&st, controller.TriggerMin, 0)
	assert.Equal(t, int32(controller.AnalogNeutral), st.Axes[controller.AxisZ],
		"released trigger contributes nothing")

	neg := mapper.NewAxisMapper(controller.AxisZ, controller.AxisDirectionNegative)
	st = controller.State{}
	neg.ContributeFromButtonValue(&st, true, 0)
	assert.Equal(t, int32(controller.AnalogMin), st.Axes[controller.AxisZ])
}

func TestDigitalAxisMapper(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected int32
	}{
		{"strong positive snaps to max", controller.AnalogMax, int32(controller.AnalogMax)},
		{"weak positive is neutral", controller.AnalogPressThreshold - 1, 0},
		{"strong negative snaps to min", controller.AnalogMin, int32(controller.AnalogMin)},
		{"weak negative is neutral", controller.AnalogPressThresholdNegative + 1, 0},
		{"neutral stays neutral", 0, 0},
	}

	m := mapper.NewDigitalAxisMapper(controller.AxisX, controller.AxisDirectionBoth)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var st controller.State
			m.ContributeFromAnalogValue(&st, tc.input, 0)
			assert.Equal(t, tc.expected, st.Axes[controller.AxisX])
		})
	}
}

func TestButtonMapperThresholds(t *testing.T) {
	m := mapper.NewButtonMapper(controller.Button(4))

	// The press transition happens exactly once over an upward sweep.
	pressed := false
	transitions := 0
	for v := int32(controller.AnalogMin); v <= int32(controller.AnalogMax); v += 64 {
		var st controller.State
		m.ContributeFromAnalogValue(&st, int16(v), 0)
		if st.Buttons[4] != pressed {
			pressed = st.Buttons[4]
			transitions++
		}
	}
	assert.True(t, pressed, "sweep ends pressed")
	assert.Equal(t, 1, transitions, "single upward crossing")
}

func TestButtonMapperOrAggregation(t *testing.T) {
	m := mapper.NewButtonMapper(controller.Button(0))

	var st controller.State
	m.ContributeFromButtonValue(&st, true, 0)
	m.ContributeFromButtonValue(&st, false, 1)
	assert.True(t, st.Buttons[0], "a released contributor never clears a pressed button")
}

func TestPovMapper(t *testing.T) {
	var st controller.State
	mapper.NewPovMapper(controller.PovUp).ContributeFromButtonValue(&st, true, 0)
	mapper.NewPovMapper(controller.PovLeft).ContributeFromTriggerValue(&st, controller.TriggerMax, 1)
	mapper.NewPovMapper(controller.PovDown).ContributeFromButtonValue(&st, false, 2)

	assert.True(t, st.Pov[controller.PovUp])
	assert.True(t, st.Pov[controller.PovLeft])
	assert.False(t, st.Pov[controller.PovDown])
	assert.False(t, st.Pov[controller.PovRight])
}

func TestInvertMapper(t *testing.T) {
	m := mapper.NewInvertMapper(mapper.NewAxisMapper(controller.AxisX, controller.AxisDirectionBoth))

	var st controller.State
	m.ContributeFromAnalogValue(&st, controller.AnalogMax, 0)
	assert.Equal(t, int32(controller.AnalogMin), st.Axes[controller.AxisX],
		"max inverts to min")

	st = controller.State{}
	m.ContributeFromAnalogValue(&st, controller.AnalogMin, 0)
	assert.Equal(t, int32(controller.AnalogMax), st.Axes[controller.AxisX],
		"min inverts to max")

	btn := mapper.NewInvertMapper(mapper.NewButtonMapper(controller.Button(1)))
	st = controller.State{}
	btn.ContributeFromButtonValue(&st, false, 0)
	assert.True(t, st.Buttons[1], "inverted release is a press")
}

// countingMapper records how each contribution path was exercised.
type countingMapper struct {
	analogCalls  int
	lastAnalog   int16
	buttonCalls  int
	lastButton   bool
	triggerCalls int
	neutralCalls int
}

func (c *countingMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	c.analogCalls++
	c.lastAnalog = v
}

func (c *countingMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	c.buttonCalls++
	c.lastButton = pressed
}

func (c *countingMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	c.triggerCalls++
}

func (c *countingMapper) ContributeNeutral(st *controller.State, source uint32) {
	c.neutralCalls++
}

func (c *countingMapper) Clone() mapper.ElementMapper { return &countingMapper{} }

func (c *countingMapper) TargetElementCount() int { return 0 }

func (c *countingMapper) TargetElementAt(i int) (controller.Element, bool) {
	return controller.Element{}, false
}

func TestSplitMapperRouting(t *testing.T) {
	var st controller.State

	t.Run("positive value goes only to the positive child", func(t *testing.T) {
		pos, neg := &countingMapper{}, &countingMapper{}
		m := mapper.NewSplitMapper(pos, neg)

		m.ContributeFromAnalogValue(&st, controller.AnalogMax, 0)
		assert.Equal(t, 1, pos.analogCalls)
		assert.Equal(t, 0, neg.analogCalls)
		expected := int16(2*int32(controller.AnalogMax) + int32(controller.AnalogMin))
		assert.Equal(t, expected, pos.lastAnalog,
			"positive extreme remaps onto the top of the child's full range")

		m.ContributeFromAnalogValue(&st, controller.AnalogNeutral, 0)
		assert.Equal(t, 2, pos.analogCalls, "neutral input routes positive")
		assert.Equal(t, controller.AnalogMin, pos.lastAnalog,
			"half-range bottom remaps to the child's full-range minimum")
	})

	t.Run("negative value goes only to the negative child", func(t *testing.T) {
		pos, neg := &countingMapper{}, &countingMapper{}
		m := mapper.NewSplitMapper(pos, neg)

		m.ContributeFromAnalogValue(&st, controller.AnalogMin, 0)
		assert.Equal(t, 0, pos.analogCalls)
		assert.Equal(t, 1, neg.analogCalls)
		expected := int16(2*(int32(controller.AnalogMin)+1) + int32(controller.AnalogMax))
		assert.Equal(t, expected, neg.lastAnalog,
			"negative extreme remaps onto the bottom of the child's full range")

		m.ContributeFromAnalogValue(&st, -1, 0)
		assert.Equal(t, 2, neg.analogCalls)
		assert.Equal(t, controller.AnalogMax, neg.lastAnalog,
			"half-range top remaps to the child's full-range maximum")
	})

	t.Run("neutral contribution reaches both children once", func(t *testing.T) {
		pos, neg := &countingMapper{}, &countingMapper{}
		m := mapper.NewSplitMapper(pos, neg)

		m.ContributeNeutral(&st, 0)
		assert.Equal(t, 1, pos.neutralCalls)
		assert.Equal(t, 1, neg.neutralCalls)
	})

	t.Run("button routes by press state", func(t *testing.T) {
		pos, neg := &countingMapper{}, &countingMapper{}
		m := mapper.NewSplitMapper(pos, neg)

		m.ContributeFromButtonValue(&st, true, 0)
		m.ContributeFromButtonValue(&st, false, 0)
		assert.Equal(t, 1, pos.buttonCalls)
		assert.True(t, pos.lastButton)
		assert.Equal(t, 1, neg.buttonCalls)
		assert.False(t, neg.lastButton)
	})
}

func TestCompoundMapperFanOut(t *testing.T) {
	children := []*countingMapper{{}, {}, {}}
	m := mapper.NewCompoundMapper(children[0], children[1], children[2])

	var st controller.State
	m.ContributeFromAnalogValue(&st, 100, 0)
	m.ContributeNeutral(&st, 0)

	for i, c := range children {
		assert.Equal(t, 1, c.analogCalls, "child %d", i)
		assert.Equal(t, 1, c.neutralCalls, "child %d", i)
	}
}

func TestTargetElementEnumeration(t *testing.T) {
	m := mapper.NewCompoundMapper(
		mapper.NewAxisMapper(controller.AxisX, controller.AxisDirectionBoth),
		mapper.NewSplitMapper(
			mapper.NewButtonMapper(controller.Button(2)),
			mapper.NewPovMapper(controller.PovDown),
		),
	)

	assert.Equal(t, 3, m.TargetElementCount())

	e0, ok := m.TargetElementAt(0)
	assert.True(t, ok)
	assert.Equal(t, controller.ElementAxis(controller.AxisX), e0)

	e1, ok := m.TargetElementAt(1)
	assert.True(t, ok)
	assert.Equal(t, controller.ElementButton(controller.Button(2)), e1)

	e2, ok := m.TargetElementAt(2)
	assert.True(t, ok)
	assert.Equal(t, controller.ElementPov(), e2)

	_, ok = m.TargetElementAt(3)
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	inner := &countingMapper{}
	m := mapper.NewSplitMapper(inner, nil)

	clone := m.Clone().(mapper.SplitMapper)
	assert.NotSame(t, inner, clone.PositiveChild(), "clone must not share children")
	assert.Nil(t, clone.NegativeChild())
}

func TestNullMapper(t *testing.T) {
	m := mapper.NewNullMapper()

	var st controller.State
	m.ContributeFromAnalogValue(&st, controller.AnalogMax, 0)
	m.ContributeFromButtonValue(&st, true, 0)
	m.ContributeFromTriggerValue(&st, controller.TriggerMax, 0)
	m.ContributeNeutral(&st, 0)

	assert.Equal(t, controller.State{}, st)
	assert.Equal(t, 0, m.TargetElementCount())
}
