// Package keyboard maintains the process-wide virtual keyboard state that
// keyboard element mappers write to, out of band from the virtual controller
// state snapshot.
package keyboard

import "sync"

var state struct {
	mu      sync.Mutex
	pressed [KeyCount]bool
}

// SubmitKeyPressedState marks a key pressed.
func SubmitKeyPressedState(k Key) {
	if int(k) >= KeyCount {
		return
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed[k] = true
}

// SubmitKeyReleasedState marks a key released.
func SubmitKeyReleasedState(k Key) {
	if int(k) >= KeyCount {
		return
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed[k] = false
}

// IsKeyPressed reports the current virtual state of a key.
func IsKeyPressed(k Key) bool {
	if int(k) >= KeyCount {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.pressed[k]
}

// Reset releases every key. Intended for tests.
func Reset() {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.pressed = [KeyCount]bool{}
}
