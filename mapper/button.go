package mapper

import "github.com/samuelgr/xidi/controller"

// ButtonMapper writes one virtual button. Multiple mappers targeting the
// same button combine with OR: the button is pressed if any contributor says
// pressed.
type ButtonMapper struct {
	button controller.Button
}

// NewButtonMapper creates a mapper targeting one virtual button.
func NewButtonMapper(b controller.Button) ButtonMapper {
	return ButtonMapper{button: b}
}

// Button returns the target button.
func (m ButtonMapper) Button() controller.Button { return m.button }

func (m ButtonMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	st.ContributeButton(m.button, analogPressed(v))
}

func (m ButtonMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	st.ContributeButton(m.button, pressed)
}

func (m ButtonMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	st.ContributeButton(m.button, triggerPressed(v))
}

func (m ButtonMapper) ContributeNeutral(st *controller.State, source uint32) {}

func (m ButtonMapper) Clone() ElementMapper { return m }

func (m ButtonMapper) TargetElementCount() int { return 1 }

func (m ButtonMapper) TargetElementAt(i int) (controller.Element, bool) {
	if i != 0 {
		return controller.Element{}, false
	}
	return controller.ElementButton(m.button), true
}

// PovMapper writes one of the four POV hat directions, with the same
// thresholding and OR rules as buttons.
type PovMapper struct {
	direction controller.PovDirection
}

// NewPovMapper creates a mapper targeting one POV direction.
func NewPovMapper(d controller.PovDirection) PovMapper {
	return PovMapper{direction: d}
}

// PovDirection returns the target POV direction.
func (m PovMapper) PovDirection() controller.PovDirection { return m.direction }

func (m PovMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	st.ContributePovDirection(m.direction, analogPressed(v))
}

func (m PovMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	st.ContributePovDirection(m.direction, pressed)
}

func (m PovMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	st.ContributePovDirection(m.direction, triggerPressed(v))
}

func (m PovMapper) ContributeNeutral(st *controller.State, source uint32) {}

func (m PovMapper) Clone() ElementMapper { return m }

func (m PovMapper) TargetElementCount() int { return 1 }

func (m PovMapper) TargetElementAt(i int) (controller.Element, bool) {
	if i != 0 {
		return controller.Element{}, false
	}
	return controller.ElementPov(), true
}

// analogPressed is the single upward-crossing press policy for analog
// inputs treated digitally.
func analogPressed(v int16) bool { return v >= controller.AnalogPressThreshold }

// triggerPressed is the press policy for trigger inputs treated digitally.
func triggerPressed(v uint8) bool { return v >= controller.TriggerPressThreshold }
