package forcefeedback

import (
	"sync"

	"github.com/samuelgr/xidi/controller"
)

// Device is the force feedback engine of one physical controller slot. It
// tracks which virtual controllers are registered with it; registration is
// idempotent. The device has its own lock, separate from any virtual
// controller state lock, because multiple virtual controllers can contend
// for one physical slot.
type Device struct {
	mu         sync.Mutex
	registered map[any]struct{}
}

// Register adds a virtual controller handle to the registration set.
func (d *Device) Register(handle any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.registered == nil {
		d.registered = make(map[any]struct{})
	}
	d.registered[handle] = struct{}{}
}

// Unregister removes a handle. Removing an unregistered handle is a no-op.
func (d *Device) Unregister(handle any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.registered, handle)
}

// IsRegistered reports whether a handle is currently registered.
func (d *Device) IsRegistered(handle any) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.registered[handle]
	return ok
}

// RegisteredCount returns the number of registered handles.
func (d *Device) RegisteredCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.registered)
}

// Registry hands out per-physical-slot force feedback devices. It implements
// controller.ForceFeedbackRegistrar.
type Registry struct {
	mu      sync.Mutex
	devices map[int]*Device
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[int]*Device)}
}

// Register registers a handle with the device for one physical slot,
// creating the device on first use, and returns the device.
func (r *Registry) Register(id int, handle any) controller.ForceFeedbackDevice {
	r.mu.Lock()
	dev, ok := r.devices[id]
	if !ok {
		dev = &Device{}
		r.devices[id] = dev
	}
	r.mu.Unlock()

	dev.Register(handle)
	return dev
}

// Unregister removes a handle from one physical slot's device.
func (r *Registry) Unregister(id int, handle any) {
	r.mu.Lock()
	dev := r.devices[id]
	r.mu.Unlock()
	if dev != nil {
		dev.Unregister(handle)
	}
}

// Device returns the device for one physical slot, or nil if nothing has
// registered with it yet.
func (r *Registry) Device(id int) *Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.devices[id]
}
