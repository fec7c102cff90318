package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samuelgr/xidi/physical"
)

// Monitor drives one virtual controller from a physical source. It runs a
// dedicated goroutine that blocks in the source's cancellable wait, refreshes
// the virtual controller on every observed change, and maps source errors to
// the neutral-refresh recovery path.
type Monitor struct {
	id     int
	src    physical.Source
	vc     *VirtualController
	logger *slog.Logger

	startOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewMonitor creates a monitor for one physical controller slot.
func NewMonitor(id int, src physical.Source, vc *VirtualController, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		id:     id,
		src:    src,
		vc:     vc,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start launches the poll loop. Subsequent calls are no-ops.
func (m *Monitor) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		ctx, m.cancel = context.WithCancel(ctx)
		go m.run(ctx)
	})
}

// Stop cancels the poll loop and waits for it to exit. Teardown relies on
// the source's wait being interruptible via context cancellation.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Done is closed when the poll loop has exited.
func (m *Monitor) Done() <-chan struct{} { return m.done }

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	var last physical.State
	errored := false

	st, err := m.src.CurrentState(m.id)
	if err != nil {
		m.logger.Warn("physical controller read failed, treating as neutral", "controller", m.id, "error", err)
		errored = true
		m.vc.RefreshNeutral()
	} else {
		last = st
		m.vc.Refresh(st)
	}

	for {
		st, err := m.src.WaitForStateChange(ctx, m.id, last)
		if ctx.Err() != nil {
			m.logger.Debug("physical controller monitor stopping", "controller", m.id)
			return
		}
		if err != nil {
			if !errored {
				m.logger.Warn("physical controller read failed, treating as neutral", "controller", m.id, "error", err)
				errored = true
			}
			last = physical.State{}
			m.vc.RefreshNeutral()
			continue
		}
		if errored {
			m.logger.Info("physical controller recovered", "controller", m.id)
			errored = false
		}
		last = st
		m.vc.Refresh(st)
	}
}
