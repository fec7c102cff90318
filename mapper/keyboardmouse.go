package mapper

import (
	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/keyboard"
	"github.com/samuelgr/xidi/mouse"
)

// KeyboardMapper forwards contributions to a virtual keyboard key instead of
// a virtual controller element. It therefore reports zero target elements;
// its effect lives in the keyboard package's out-of-band state.
type KeyboardMapper struct {
	key keyboard.Key
}

// NewKeyboardMapper creates a mapper that presses one keyboard key.
func NewKeyboardMapper(k keyboard.Key) KeyboardMapper {
	return KeyboardMapper{key: k}
}

// Key returns the target scan code.
func (m KeyboardMapper) Key() keyboard.Key { return m.key }

func (m KeyboardMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	m.submit(analogPressed(v))
}

func (m KeyboardMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	m.submit(pressed)
}

func (m KeyboardMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	m.submit(triggerPressed(v))
}

func (m KeyboardMapper) ContributeNeutral(st *controller.State, source uint32) {
	m.submit(false)
}

func (m KeyboardMapper) submit(pressed bool) {
	if pressed {
		keyboard.SubmitKeyPressedState(m.key)
	} else {
		keyboard.SubmitKeyReleasedState(m.key)
	}
}

func (m KeyboardMapper) Clone() ElementMapper { return m }

func (m KeyboardMapper) TargetElementCount() int { return 0 }

func (m KeyboardMapper) TargetElementAt(i int) (controller.Element, bool) {
	return controller.Element{}, false
}

// MouseAxisMapper forwards contributions as virtual mouse movement. Like
// KeyboardMapper it reports zero target elements.
type MouseAxisMapper struct {
	axis      mouse.Axis
	direction controller.AxisDirection
}

// NewMouseAxisMapper creates a mapper that moves one virtual mouse axis.
func NewMouseAxisMapper(axis mouse.Axis, direction controller.AxisDirection) MouseAxisMapper {
	return MouseAxisMapper{axis: axis, direction: direction}
}

// MouseAxis returns the target mouse axis.
func (m MouseAxisMapper) MouseAxis() mouse.Axis { return m.axis }

// Direction returns the configured axis direction.
func (m MouseAxisMapper) Direction() controller.AxisDirection { return m.direction }

func (m MouseAxisMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	mouse.SubmitMovement(m.axis, analogToAxisValue(v, m.direction), source)
}

func (m MouseAxisMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	if pressed {
		mouse.SubmitMovement(m.axis, extremeAxisValue(m.direction), source)
	} else {
		mouse.SubmitMovement(m.axis, 0, source)
	}
}

func (m MouseAxisMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	if triggerPressed(v) {
		mouse.SubmitMovement(m.axis, extremeAxisValue(m.direction), source)
	} else {
		mouse.SubmitMovement(m.axis, 0, source)
	}
}

func (m MouseAxisMapper) ContributeNeutral(st *controller.State, source uint32) {
	mouse.SubmitMovement(m.axis, 0, source)
}

func (m MouseAxisMapper) Clone() ElementMapper { return m }

func (m MouseAxisMapper) TargetElementCount() int { return 0 }

func (m MouseAxisMapper) TargetElementAt(i int) (controller.Element, bool) {
	return controller.Element{}, false
}

// MouseButtonMapper forwards contributions to a virtual mouse button.
type MouseButtonMapper struct {
	button mouse.Button
}

// NewMouseButtonMapper creates a mapper that presses one mouse button.
func NewMouseButtonMapper(b mouse.Button) MouseButtonMapper {
	return MouseButtonMapper{button: b}
}

// MouseButton returns the target mouse button.
func (m MouseButtonMapper) MouseButton() mouse.Button { return m.button }

func (m MouseButtonMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	m.submit(analogPressed(v))
}

func (m MouseButtonMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	m.submit(pressed)
}

func (m MouseButtonMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	m.submit(triggerPressed(v))
}

func (m MouseButtonMapper) ContributeNeutral(st *controller.State, source uint32) {
	m.submit(false)
}

func (m MouseButtonMapper) submit(pressed bool) {
	if pressed {
		mouse.SubmitButtonPressedState(m.button)
	} else {
		mouse.SubmitButtonReleasedState(m.button)
	}
}

func (m MouseButtonMapper) Clone() ElementMapper { return m }

func (m MouseButtonMapper) TargetElementCount() int { return 0 }

func (m MouseButtonMapper) TargetElementAt(i int) (controller.Element, bool) {
	return controller.Element{}, false
}
