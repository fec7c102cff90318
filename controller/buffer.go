package controller

import "sync/atomic"

// StateChangeEvent is one buffered per-element state change.
type StateChangeEvent struct {
	Element   Element
	Value     ElementValue
	Timestamp uint32
	Sequence  uint32
}

// stateChangeEventSize is a conservative per-event storage estimate used to
// bound total buffer memory.
const stateChangeEventSize = 64

// MaxEventBufferCapacity caps the event buffer so its storage never exceeds
// roughly 1MiB.
const MaxEventBufferCapacity = (1 << 20) / stateChangeEventSize

// eventSequence is shared by every event buffer in the process. Sequence
// numbers are therefore monotonic process-wide but not contiguous within any
// one buffer.
var eventSequence atomic.Uint32

// nextEventSequence draws the next global sequence number.
func nextEventSequence() uint32 {
	return eventSequence.Add(1) - 1
}

// StateChangeEventBuffer is a bounded ring buffer of state-change events with
// DirectInput buffered-event semantics: one slot below the configured
// capacity is always kept free, so a buffer of capacity N holds at most N-1
// events, and appending beyond that evicts the oldest event and raises the
// overflow flag.
//
// The buffer is not safe for concurrent use; the owning VirtualController
// serializes access to it.
type StateChangeEventBuffer struct {
	events     []StateChangeEvent
	oldest     int
	count      int
	overflowed bool
}

// IsEnabled reports whether the buffer records events at all. A capacity of
// zero disables buffering.
func (b *StateChangeEventBuffer) IsEnabled() bool { return len(b.events) > 0 }

// Capacity returns the configured capacity.
func (b *StateChangeEventBuffer) Capacity() int { return len(b.events) }

// Count returns the number of buffered events.
func (b *StateChangeEventBuffer) Count() int { return b.count }

// Overflowed reports whether an append or shrink has discarded events since
// the last pop.
func (b *StateChangeEventBuffer) Overflowed() bool { return b.overflowed }

// Event returns the i-th buffered event, oldest first.
func (b *StateChangeEventBuffer) Event(i int) StateChangeEvent {
	return b.events[(b.oldest+i)%len(b.events)]
}

// SetCapacity reconfigures the buffer capacity, clamping to
// MaxEventBufferCapacity. Shrinking below the current occupancy silently
// discards the oldest excess events and raises the overflow flag. Setting
// zero disables the buffer and discards everything.
func (b *StateChangeEventBuffer) SetCapacity(capacity int) bool {
	if capacity < 0 {
		return false
	}
	if capacity > MaxEventBufferCapacity {
		capacity = MaxEventBufferCapacity
	}

	if capacity == 0 {
		if b.count > 0 {
			b.overflowed = true
		}
		b.events = nil
		b.oldest = 0
		b.count = 0
		return true
	}

	keep := b.count
	if limit := capacity - 1; keep > limit {
		b.overflowed = true
		keep = limit
	}

	events := make([]StateChangeEvent, capacity)
	for i := 0; i < keep; i++ {
		// Keep the newest events, discarding from the oldest end.
		events[i] = b.Event(b.count - keep + i)
	}
	b.events = events
	b.oldest = 0
	b.count = keep
	return true
}

// AppendEvent records one event, stamping it with the next global sequence
// number. When the buffer is already at its effective limit the oldest event
// is evicted and the overflow flag is raised. Disabled buffers record
// nothing and consume no sequence numbers.
func (b *StateChangeEventBuffer) AppendEvent(element Element, value ElementValue, timestamp uint32) {
	if !b.IsEnabled() {
		return
	}

	if b.count >= len(b.events)-1 {
		// Evict the oldest to preserve the guaranteed free slot.
		b.oldest = (b.oldest + 1) % len(b.events)
		b.count--
		b.overflowed = true
	}

	b.events[(b.oldest+b.count)%len(b.events)] = StateChangeEvent{
		Element:   element,
		Value:     value,
		Timestamp: timestamp,
		Sequence:  nextEventSequence(),
	}
	b.count++
}

// PopOldestEvents removes up to n of the oldest events, returning how many
// were removed. Any pop attempt, including on an empty or disabled buffer,
// clears the overflow flag; this mirrors the DirectInput flush contract.
func (b *StateChangeEventBuffer) PopOldestEvents(n int) int {
	b.overflowed = false
	if n < 0 {
		n = 0
	}
	if n > b.count {
		n = b.count
	}
	if n > 0 {
		b.oldest = (b.oldest + n) % len(b.events)
		b.count -= n
	}
	return n
}
