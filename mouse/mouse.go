// Package mouse maintains the process-wide virtual mouse state that mouse
// element mappers write to, out of band from the virtual controller state
// snapshot.
package mouse

import (
	"strings"
	"sync"
)

// Axis identifies one virtual mouse movement axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisWheelHorizontal
	AxisWheelVertical

	AxisCount = 4
)

// Button identifies one virtual mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2

	ButtonCount = 5
)

var buttonNames = map[string]Button{
	"LEFT":   ButtonLeft,
	"MIDDLE": ButtonMiddle,
	"RIGHT":  ButtonRight,
	"X1":     ButtonX1,
	"X2":     ButtonX2,
}

var axisNames = map[string]Axis{
	"X":               AxisX,
	"Y":               AxisY,
	"WHEELH":          AxisWheelHorizontal,
	"WHEELV":          AxisWheelVertical,
	"WHEEL":           AxisWheelVertical,
	"WHEELHORIZONTAL": AxisWheelHorizontal,
	"WHEELVERTICAL":   AxisWheelVertical,
	"HORIZONTALWHEEL": AxisWheelHorizontal,
	"VERTICALWHEEL":   AxisWheelVertical,
}

// ButtonByName resolves a mouse button name, case-insensitively.
func ButtonByName(name string) (Button, bool) {
	b, ok := buttonNames[strings.ToUpper(name)]
	return b, ok
}

// AxisByName resolves a mouse axis name, case-insensitively.
func AxisByName(name string) (Axis, bool) {
	a, ok := axisNames[strings.ToUpper(name)]
	return a, ok
}

var state struct {
	mu       sync.Mutex
	pressed  [ButtonCount]bool
	movement [AxisCount]map[uint32]int32
}

// SubmitButtonPressedState marks a mouse button pressed.
func SubmitButtonPressedState(b Button) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed[b] = true
}

// SubmitButtonReleasedState marks a mouse button released.
func SubmitButtonReleasedState(b Button) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed[b] = false
}

// IsButtonPressed reports the current virtual state of a mouse button.
func IsButtonPressed(b Button) bool {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.pressed[b]
}

// SubmitMovement records one source's movement contribution on an axis.
// Contributions are keyed by source so several element mappers can drive one
// axis concurrently without clobbering each other.
func SubmitMovement(a Axis, value int32, source uint32) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.movement[a] == nil {
		state.movement[a] = make(map[uint32]int32)
	}
	state.movement[a][source] = value
}

// AggregateMovement sums the current per-source contributions on an axis.
func AggregateMovement(a Axis) int32 {
	state.mu.Lock()
	defer state.mu.Unlock()
	var sum int32
	for _, v := range state.movement[a] {
		sum += v
	}
	return sum
}

// Reset releases all buttons and clears all movement contributions.
// Intended for tests.
func Reset() {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed = [ButtonCount]bool{}
	state.movement = [AxisCount]map[uint32]int32{}
}
