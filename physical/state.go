// Package physical models the physical controller side of the mapping
// pipeline: raw state snapshots shaped like XInput gamepad reports and the
// polling source contract the virtual controller layer consumes.
package physical

import "context"

// Button is a bit in the physical button mask, matching the XInput gamepad
// button layout (the dpad is reported as four buttons).
type Button uint16

const (
	ButtonDpadUp Button = 1 << iota
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
	ButtonStart
	ButtonBack
	ButtonLS
	ButtonRS
	ButtonLB
	ButtonRB
	_ // reserved
	_ // guide, never surfaced
	ButtonA
	ButtonB
	ButtonX
	ButtonY
)

// State is one raw physical controller snapshot. The zero value is the
// completely neutral state.
type State struct {
	StickLeftX  int16
	StickLeftY  int16
	StickRightX int16
	StickRightY int16
	TriggerLT   uint8
	TriggerRT   uint8
	Buttons     Button
}

// Pressed reports whether a physical button bit is set.
func (s *State) Pressed(b Button) bool { return s.Buttons&b != 0 }

// Source supplies physical controller state, typically backed by XInput. An
// implementation reports read failures (such as a disconnected controller)
// through the error return; callers translate those into neutral state
// rather than propagating them.
type Source interface {
	// CurrentState returns the latest snapshot for one controller.
	CurrentState(id int) (State, error)

	// WaitForStateChange blocks until the controller's state differs from
	// last, an error occurs, or ctx is cancelled. Cancellation is the only
	// way to guarantee prompt unblocking during teardown.
	WaitForStateChange(ctx context.Context, id int, last State) (State, error)
}
