package mapper

import (
	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/forcefeedback"
	"github.com/samuelgr/xidi/physical"
)

// Physical input slot indices. Each slot holds an optional element mapper
// tree; the index doubles as the contribution source identifier.
const (
	SlotStickLeftX = iota
	SlotStickLeftY
	SlotStickRightX
	SlotStickRightY
	SlotDpadUp
	SlotDpadDown
	SlotDpadLeft
	SlotDpadRight
	SlotTriggerLT
	SlotTriggerRT
	SlotButtonA
	SlotButtonB
	SlotButtonX
	SlotButtonY
	SlotButtonLB
	SlotButtonRB
	SlotButtonBack
	SlotButtonStart
	SlotButtonLS
	SlotButtonRS

	SlotCount = 20
)

// slotNames is the controller element vocabulary used by configuration
// directives. Matching is exact and case-sensitive.
var slotNames = [SlotCount]string{
	"StickLeftX",
	"StickLeftY",
	"StickRightX",
	"StickRightY",
	"DpadUp",
	"DpadDown",
	"DpadLeft",
	"DpadRight",
	"TriggerLT",
	"TriggerRT",
	"ButtonA",
	"ButtonB",
	"ButtonX",
	"ButtonY",
	"ButtonLB",
	"ButtonRB",
	"ButtonBack",
	"ButtonStart",
	"ButtonLS",
	"ButtonRS",
}

// SlotName returns the canonical name of a physical input slot.
func SlotName(slot int) string {
	if slot < 0 || slot >= SlotCount {
		return ""
	}
	return slotNames[slot]
}

// SlotByName resolves a physical input slot name. Matching is exact and
// case-sensitive.
func SlotByName(name string) (int, bool) {
	for i, n := range slotNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// SlotNames returns the full slot vocabulary in slot order.
func SlotNames() []string {
	out := make([]string, SlotCount)
	copy(out, slotNames[:])
	return out
}

// ElementMap assigns an optional element mapper tree to each physical input
// slot.
type ElementMap [SlotCount]ElementMapper

// Clone deep-copies every present mapper tree.
func (em ElementMap) Clone() ElementMap {
	out := ElementMap{}
	for i, m := range em {
		if m != nil {
			out[i] = m.Clone()
		}
	}
	return out
}

// Mapper is an immutable aggregate of one element mapper per physical input
// slot plus a force feedback actuator map. It translates full raw physical
// snapshots into virtual controller state and is safe for unlocked
// concurrent use after construction.
type Mapper struct {
	name      string
	elements  ElementMap
	caps      controller.Capabilities
	actuators forcefeedback.ActuatorMap
}

// NewMapper constructs a mapper, deriving its capabilities from the element
// mappers' target enumerations.
func NewMapper(name string, elements ElementMap, actuators forcefeedback.ActuatorMap) *Mapper {
	m := &Mapper{
		name:      name,
		elements:  elements,
		actuators: actuators,
	}
	for _, em := range elements {
		if em == nil {
			continue
		}
		for i := 0; i < em.TargetElementCount(); i++ {
			if e, ok := em.TargetElementAt(i); ok {
				m.caps.AddElement(e)
			}
		}
	}
	return m
}

// Name returns the registered mapper name.
func (m *Mapper) Name() string { return m.name }

// ElementMap returns the slot-to-mapper assignment. The returned trees are
// shared and must be treated as read-only.
func (m *Mapper) ElementMap() ElementMap { return m.elements }

// Capabilities enumerates the virtual elements this mapper can produce.
func (m *Mapper) Capabilities() controller.Capabilities { return m.caps }

// ActuatorMap returns the force feedback actuator assignment.
func (m *Mapper) ActuatorMap() forcefeedback.ActuatorMap { return m.actuators }

// MapStatePhysicalToVirtual routes every physical input channel through its
// slot's mapper tree, aggregating contributions into one virtual snapshot.
func (m *Mapper) MapStatePhysicalToVirtual(p physical.State) controller.State {
	var st controller.State

	m.analog(&st, SlotStickLeftX, p.StickLeftX)
	m.analog(&st, SlotStickLeftY, p.StickLeftY)
	m.analog(&st, SlotStickRightX, p.StickRightX)
	m.analog(&st, SlotStickRightY, p.StickRightY)

	m.button(&st, SlotDpadUp, p.Pressed(physical.ButtonDpadUp))
	m.button(&st, SlotDpadDown, p.Pressed(physical.ButtonDpadDown))
	m.button(&st, SlotDpadLeft, p.Pressed(physical.ButtonDpadLeft))
	m.button(&st, SlotDpadRight, p.Pressed(physical.ButtonDpadRight))

	m.trigger(&st, SlotTriggerLT, p.TriggerLT)
	m.trigger(&st, SlotTriggerRT, p.TriggerRT)

	m.button(&st, SlotButtonA, p.Pressed(physical.ButtonA))
	m.button(&st, SlotButtonB, p.Pressed(physical.ButtonB))
	m.button(&st, SlotButtonX, p.Pressed(physical.ButtonX))
	m.button(&st, SlotButtonY, p.Pressed(physical.ButtonY))
	m.button(&st, SlotButtonLB, p.Pressed(physical.ButtonLB))
	m.button(&st, SlotButtonRB, p.Pressed(physical.ButtonRB))
	m.button(&st, SlotButtonBack, p.Pressed(physical.ButtonBack))
	m.button(&st, SlotButtonStart, p.Pressed(physical.ButtonStart))
	m.button(&st, SlotButtonLS, p.Pressed(physical.ButtonLS))
	m.button(&st, SlotButtonRS, p.Pressed(physical.ButtonRS))

	return st
}

// MapNeutralPhysicalToVirtual applies every slot's neutral contribution,
// producing the snapshot used when the physical controller is unreadable.
func (m *Mapper) MapNeutralPhysicalToVirtual() controller.State {
	var st controller.State
	for slot, em := range m.elements {
		if em != nil {
			em.ContributeNeutral(&st, uint32(slot))
		}
	}
	return st
}

func (m *Mapper) analog(st *controller.State, slot int, v int16) {
	if em := m.elements[slot]; em != nil {
		em.ContributeFromAnalogValue(st, v, uint32(slot))
	}
}

func (m *Mapper) button(st *controller.State, slot int, pressed bool) {
	if em := m.elements[slot]; em != nil {
		em.ContributeFromButtonValue(st, pressed, uint32(slot))
	}
}

func (m *Mapper) trigger(st *controller.State, slot int, v uint8) {
	if em := m.elements[slot]; em != nil {
		em.ContributeFromTriggerValue(st, v, uint32(slot))
	}
}
