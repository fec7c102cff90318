package controller

// State is a complete virtual controller state snapshot. Axis values are
// int32 so that multiple additive element-mapper contributions can exceed the
// raw int16 analog domain before the axis properties stage clamps them.
//
// State is a comparable value type; the zero value is the all-neutral state.
type State struct {
	Axes    [AxisCount]int32
	Buttons [ButtonCount]bool
	Pov     [PovDirectionCount]bool
}

// Axis returns the aggregated value of one axis.
func (s *State) Axis(a Axis) int32 { return s.Axes[a] }

// Button returns whether one virtual button is pressed.
func (s *State) Button(b Button) bool { return s.Buttons[b] }

// PovDirection returns whether one POV direction is active.
func (s *State) PovDirection(d PovDirection) bool { return s.Pov[d] }

// ContributeAxis adds a value to an axis. Contributions from multiple element
// mappers targeting the same axis are additive.
func (s *State) ContributeAxis(a Axis, value int32) { s.Axes[a] += value }

// ContributeButton presses a button. Contributions never release a button, so
// multiple element mappers targeting the same button combine with OR.
func (s *State) ContributeButton(b Button, pressed bool) {
	if pressed {
		s.Buttons[b] = true
	}
}

// ContributePovDirection activates a POV direction. Like buttons,
// contributions combine with OR.
func (s *State) ContributePovDirection(d PovDirection, active bool) {
	if active {
		s.Pov[d] = true
	}
}

// ElementValue is the tagged value carried by a state-change event, matching
// the type of the element it describes.
type ElementValue struct {
	Type   ElementType
	Axis   int32
	Button bool
	Pov    [PovDirectionCount]bool
}

// ValueOf extracts the value of a single element from the snapshot.
func (s *State) ValueOf(e Element) ElementValue {
	switch e.Type {
	case ElementTypeAxis:
		return ElementValue{Type: ElementTypeAxis, Axis: s.Axes[e.Axis]}
	case ElementTypeButton:
		return ElementValue{Type: ElementTypeButton, Button: s.Buttons[e.Button]}
	case ElementTypePov:
		return ElementValue{Type: ElementTypePov, Pov: s.Pov}
	default:
		return ElementValue{Type: ElementTypeNone}
	}
}
