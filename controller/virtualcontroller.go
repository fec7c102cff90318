package controller

import (
	"sync"
	"time"

	"github.com/samuelgr/xidi/physical"
)

// StateMapper translates raw physical snapshots into virtual controller
// state. Implementations are immutable after construction and safe for
// concurrent use; *mapper.Mapper is the production implementation.
type StateMapper interface {
	// MapStatePhysicalToVirtual produces a virtual state snapshot from one
	// physical snapshot.
	MapStatePhysicalToVirtual(p physical.State) State

	// MapNeutralPhysicalToVirtual produces the snapshot that results from a
	// neutral contribution on every mapped input slot.
	MapNeutralPhysicalToVirtual() State

	// Capabilities enumerates the virtual elements the mapper can target.
	Capabilities() Capabilities
}

// ForceFeedbackDevice is a physical controller's force feedback engine. The
// reference a virtual controller holds is non-owning and valid only while
// the controller is registered.
type ForceFeedbackDevice interface {
	IsRegistered(handle any) bool
}

// ForceFeedbackRegistrar hands out force feedback devices per physical
// controller slot. forcefeedback.Registry is the production implementation.
type ForceFeedbackRegistrar interface {
	Register(id int, handle any) ForceFeedbackDevice
	Unregister(id int, handle any)
}

var processStart = time.Now()

func monotonicTimestamp() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}

// VirtualController aggregates a mapper, per-axis properties, the latest raw
// and transformed state snapshots, and a state-change event buffer.
//
// One monitor goroutine writes via the refresh path while application
// threads read; an internal mutex serializes all access, so readers always
// observe a fully applied refresh.
type VirtualController struct {
	mu     sync.Mutex
	id     int
	mapper StateMapper

	props     [AxisCount]AxisProperties
	raw       State
	processed State

	buffer StateChangeEventBuffer
	filter map[Element]struct{} // nil means every element may buffer events

	notify chan<- struct{}

	ffRegistrar ForceFeedbackRegistrar
	ffDevice    ForceFeedbackDevice

	now func() uint32
}

// New creates a virtual controller for one physical controller slot,
// governed by the given mapper.
func New(id int, m StateMapper) *VirtualController {
	c := &VirtualController{
		id:     id,
		mapper: m,
		now:    monotonicTimestamp,
	}
	for a := range c.props {
		c.props[a] = DefaultAxisProperties()
	}
	return c
}

// ID returns the physical controller slot this virtual controller reflects.
func (c *VirtualController) ID() int { return c.id }

// Mapper returns the governing mapper.
func (c *VirtualController) Mapper() StateMapper { return c.mapper }

// State returns the latest transformed state snapshot.
func (c *VirtualController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processed
}

// RawState returns the latest pre-transformation snapshot.
func (c *VirtualController) RawState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// Refresh ingests one physical snapshot: the mapper produces a new raw
// virtual state, changed elements are buffered as events with a shared
// timestamp, axis properties are applied, and the notification channel is
// signaled if the transformed state changed. Reports whether the transformed
// state changed.
func (c *VirtualController) Refresh(p physical.State) bool {
	return c.refreshRaw(c.mapper.MapStatePhysicalToVirtual(p))
}

// RefreshNeutral is the physical-error recovery path: the controller behaves
// as if every physical input were neutral, so applications see a well-formed
// inactive controller instead of an error.
func (c *VirtualController) RefreshNeutral() bool {
	return c.refreshRaw(c.mapper.MapNeutralPhysicalToVirtual())
}

func (c *VirtualController) refreshRaw(newRaw State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buffer.IsEnabled() {
		timestamp := c.now()
		for _, e := range changedElements(&c.raw, &newRaw) {
			if c.eventAllowed(e) {
				c.buffer.AppendEvent(e, newRaw.ValueOf(e), timestamp)
			}
		}
	}

	c.raw = newRaw
	oldProcessed := c.processed
	c.processed = c.applyProperties(&c.raw)

	changed := c.processed != oldProcessed
	if changed && c.notify != nil {
		select {
		case c.notify <- struct{}{}:
		default:
		}
	}
	return changed
}

// changedElements lists the elements whose values differ between two raw
// snapshots, in the fixed axes / buttons / POV order.
func changedElements(old, new *State) []Element {
	var out []Element
	for a := Axis(0); a < AxisCount; a++ {
		if old.Axes[a] != new.Axes[a] {
			out = append(out, ElementAxis(a))
		}
	}
	for b := Button(0); b < ButtonCount; b++ {
		if old.Buttons[b] != new.Buttons[b] {
			out = append(out, ElementButton(b))
		}
	}
	if old.Pov != new.Pov {
		out = append(out, ElementPov())
	}
	return out
}

func (c *VirtualController) eventAllowed(e Element) bool {
	if c.filter == nil {
		return true
	}
	_, ok := c.filter[e]
	return ok
}

func (c *VirtualController) applyProperties(raw *State) State {
	out := *raw
	for a := range out.Axes {
		out.Axes[a] = c.props[a].Transform(raw.Axes[a])
	}
	return out
}

// reapplyProperties re-renders the exposed snapshot after a property change
// without requiring a new physical poll. Caller holds the lock.
func (c *VirtualController) reapplyProperties() {
	c.processed = c.applyProperties(&c.raw)
}

// SetEventFilter restricts which elements may generate buffered events.
// Elements outside the set are still applied to the snapshot state; they
// just never buffer events. A nil set restores the default of allowing
// every element.
func (c *VirtualController) SetEventFilter(allowed []Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if allowed == nil {
		c.filter = nil
		return
	}
	c.filter = make(map[Element]struct{}, len(allowed))
	for _, e := range allowed {
		c.filter[e] = struct{}{}
	}
}

// SetStateChangeNotify installs a channel that receives one non-blocking
// signal per refresh that produces a net transformed-state change. No-op
// refreshes do not signal.
func (c *VirtualController) SetStateChangeNotify(ch chan<- struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = ch
}

// Axis property accessors and setters. Setters validate their inputs,
// leave prior configuration untouched on failure, and on success
// immediately re-render the exposed snapshot.

func (c *VirtualController) AxisDeadzone(a Axis) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props[a].Deadzone()
}

func (c *VirtualController) AxisSaturation(a Axis) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props[a].Saturation()
}

func (c *VirtualController) AxisRange(a Axis) (min, max int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props[a].Range()
}

func (c *VirtualController) SetAxisDeadzone(a Axis, v uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.props[a].SetDeadzone(v) {
		return false
	}
	c.reapplyProperties()
	return true
}

func (c *VirtualController) SetAxisSaturation(a Axis, v uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.props[a].SetSaturation(v) {
		return false
	}
	c.reapplyProperties()
	return true
}

func (c *VirtualController) SetAxisRange(a Axis, min, max int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.props[a].SetRange(min, max) {
		return false
	}
	c.reapplyProperties()
	return true
}

// SetAllAxisDeadzone applies one deadzone to every axis.
func (c *VirtualController) SetAllAxisDeadzone(v uint32) bool {
	if v > PropertyScaleMax {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.props {
		c.props[a].SetDeadzone(v)
	}
	c.reapplyProperties()
	return true
}

// SetAllAxisSaturation applies one saturation to every axis.
func (c *VirtualController) SetAllAxisSaturation(v uint32) bool {
	if v > PropertyScaleMax {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.props {
		c.props[a].SetSaturation(v)
	}
	c.reapplyProperties()
	return true
}

// SetAllAxisRange applies one output range to every axis.
func (c *VirtualController) SetAllAxisRange(min, max int32) bool {
	if min >= max {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for a := range c.props {
		c.props[a].SetRange(min, max)
	}
	c.reapplyProperties()
	return true
}

// Event buffer pass-through. The buffer itself is not concurrency-safe;
// these wrappers provide the required serialization.

func (c *VirtualController) EventBufferEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.IsEnabled()
}

func (c *VirtualController) EventBufferCapacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Capacity()
}

func (c *VirtualController) EventBufferCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Count()
}

func (c *VirtualController) EventBufferOverflowed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Overflowed()
}

func (c *VirtualController) SetEventBufferCapacity(capacity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.SetCapacity(capacity)
}

func (c *VirtualController) EventBufferEvent(i int) StateChangeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Event(i)
}

func (c *VirtualController) PopEventBufferOldestEvents(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.PopOldestEvents(n)
}

// PopEventsAndGetState atomically removes up to n oldest events and returns
// them together with the transformed state snapshot, for callers that need a
// consistent read-then-flush sequence.
func (c *VirtualController) PopEventsAndGetState(n int) ([]StateChangeEvent, State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.buffer.Count() {
		n = c.buffer.Count()
	}
	events := make([]StateChangeEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, c.buffer.Event(i))
	}
	c.buffer.PopOldestEvents(n)
	return events, c.processed
}

// Force feedback registration. Registration is symmetric and idempotent
// from the controller's perspective; the device reference is valid only
// while registered.

// SetForceFeedbackRegistrar installs the registrar used to obtain the
// physical controller's force feedback device.
func (c *VirtualController) SetForceFeedbackRegistrar(r ForceFeedbackRegistrar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ffRegistrar = r
}

// ForceFeedbackRegister registers this controller with its physical slot's
// force feedback device and retains the device reference. Reports success.
func (c *VirtualController) ForceFeedbackRegister() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ffDevice != nil {
		return true
	}
	if c.ffRegistrar == nil {
		return false
	}
	c.ffDevice = c.ffRegistrar.Register(c.id, c)
	return c.ffDevice != nil
}

// ForceFeedbackUnregister releases the registration, if any.
func (c *VirtualController) ForceFeedbackUnregister() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ffDevice == nil {
		return
	}
	if c.ffRegistrar != nil {
		c.ffRegistrar.Unregister(c.id, c)
	}
	c.ffDevice = nil
}

// ForceFeedback returns the registered force feedback device, or nil while
// unregistered.
func (c *VirtualController) ForceFeedback() ForceFeedbackDevice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ffDevice
}
