// Package testing provides shared test doubles for the physical input layer.
package testing

import (
	"context"
	"sync"

	"github.com/samuelgr/xidi/physical"
)

// MockSource is a scriptable physical.Source. States are pushed with Push
// and handed out in order; WaitForStateChange blocks until a new state is
// available or the context is cancelled.
type MockSource struct {
	mu      sync.Mutex
	cond    *sync.Cond
	current physical.State
	pending []physical.State
	errs    []error
}

// NewMockSource creates a mock source whose current state is all neutral.
func NewMockSource() *MockSource {
	m := &MockSource{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Push queues a state change to be delivered by WaitForStateChange.
func (m *MockSource) Push(s physical.State) {
	m.mu.Lock()
	m.pending = append(m.pending, s)
	m.mu.Unlock()
	m.cond.Broadcast()
}

// PushError queues a read error. Errors are delivered before queued states.
func (m *MockSource) PushError(err error) {
	m.mu.Lock()
	m.errs = append(m.errs, err)
	m.mu.Unlock()
	m.cond.Broadcast()
}

// CurrentState returns the most recently delivered state.
func (m *MockSource) CurrentState(id int) (physical.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return physical.State{}, err
	}
	return m.current, nil
}

// WaitForStateChange blocks until a queued state or error is available.
func (m *MockSource) WaitForStateChange(ctx context.Context, id int, last physical.State) (physical.State, error) {
	// Wake the waiter when the context is cancelled.
	stop := context.AfterFunc(ctx, func() { m.cond.Broadcast() })
	defer stop()

	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		if err := ctx.Err(); err != nil {
			return physical.State{}, err
		}
		if len(m.errs) > 0 {
			err := m.errs[0]
			m.errs = m.errs[1:]
			return physical.State{}, err
		}
		if len(m.pending) > 0 {
			s := m.pending[0]
			m.pending = m.pending[1:]
			m.current = s
			return s, nil
		}
		m.cond.Wait()
	}
}
