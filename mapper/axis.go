package mapper

import "github.com/samuelgr/xidi/controller"

// AxisMapper writes a transformed input value onto one virtual axis.
// Contributions from multiple mappers targeting the same axis are additive,
// so several physical sources can constructively or destructively interfere
// on one axis.
type AxisMapper struct {
	axis      controller.Axis
	direction controller.AxisDirection
}

// NewAxisMapper creates an axis mapper for the whole axis or one half of it.
func NewAxisMapper(axis controller.Axis, direction controller.AxisDirection) AxisMapper {
	return AxisMapper{axis: axis, direction: direction}
}

// Axis returns the target axis.
func (m AxisMapper) Axis() controller.Axis { return m.axis }

// Direction returns the configured axis direction.
func (m AxisMapper) Direction() controller.AxisDirection { return m.direction }

func (m AxisMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	st.ContributeAxis(m.axis, analogToAxisValue(v, m.direction))
}

func (m AxisMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	if pressed {
		st.ContributeAxis(m.axis, extremeAxisValue(m.direction))
	}
}

func (m AxisMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	if v >= controller.TriggerPressThreshold {
		st.ContributeAxis(m.axis, extremeAxisValue(m.direction))
	}
}

func (m AxisMapper) ContributeNeutral(st *controller.State, source uint32) {}

func (m AxisMapper) Clone() ElementMapper { return m }

func (m AxisMapper) TargetElementCount() int { return 1 }

func (m AxisMapper) TargetElementAt(i int) (controller.Element, bool) {
	if i != 0 {
		return controller.Element{}, false
	}
	return controller.ElementAxis(m.axis), true
}

// DigitalAxisMapper targets an axis like AxisMapper but treats analog input
// as a digital signal first, producing only extreme or neutral axis values.
// It makes an analog stick behave like a d-pad mapped onto an axis.
type DigitalAxisMapper struct {
	AxisMapper
}

// NewDigitalAxisMapper creates a digital axis mapper.
func NewDigitalAxisMapper(axis controller.Axis, direction controller.AxisDirection) DigitalAxisMapper {
	return DigitalAxisMapper{AxisMapper{axis: axis, direction: direction}}
}

func (m DigitalAxisMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	switch m.direction {
	case controller.AxisDirectionBoth:
		if v >= controller.AnalogPressThreshold {
			st.ContributeAxis(m.axis, int32(controller.AnalogMax))
		} else if v <= controller.AnalogPressThresholdNegative {
			st.ContributeAxis(m.axis, int32(controller.AnalogMin))
		}
	case controller.AxisDirectionPositive:
		if v >= controller.AnalogPressThreshold {
			st.ContributeAxis(m.axis, int32(controller.AnalogMax))
		}
	case controller.AxisDirectionNegative:
		if v <= controller.AnalogPressThresholdNegative {
			st.ContributeAxis(m.axis, int32(controller.AnalogMin))
		}
	}
}

func (m DigitalAxisMapper) Clone() ElementMapper { return m }

// analogToAxisValue maps a full-range analog value onto an axis per the
// configured direction. Half-axis modes compress the whole input range into
// one half of the output axis, with input minimum at output neutral.
func analogToAxisValue(v int16, direction controller.AxisDirection) int32 {
	switch direction {
	case controller.AxisDirectionPositive:
		return (int32(v) - int32(controller.AnalogMin)) / 2
	case controller.AxisDirectionNegative:
		return -((int32(v) - int32(controller.AnalogMin) + 1) / 2)
	default:
		return int32(v)
	}
}

// extremeAxisValue is the contribution of an active digital input.
func extremeAxisValue(direction controller.AxisDirection) int32 {
	if direction == controller.AxisDirectionNegative {
		return int32(controller.AnalogMin)
	}
	return int32(controller.AnalogMax)
}
