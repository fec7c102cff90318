// Package mapper implements the translation layer between physical
// controller input and virtual controller elements: the composable element
// mapper hierarchy, the textual mapper mini-language, the blueprint builder,
// and the immutable Mapper aggregate.
package mapper

import "github.com/samuelgr/xidi/controller"

// ElementMapper consumes one raw input channel value and contributes it to
// zero or more virtual controller elements. Implementations form a small
// closed set; trees of them are built once, then treated as immutable and
// read concurrently without locking.
//
// Contribution methods cannot fail; malformed configurations are rejected at
// parse or build time.
type ElementMapper interface {
	// ContributeFromAnalogValue applies a stick axis value.
	ContributeFromAnalogValue(st *controller.State, v int16, source uint32)

	// ContributeFromButtonValue applies a digital button state.
	ContributeFromButtonValue(st *controller.State, pressed bool, source uint32)

	// ContributeFromTriggerValue applies a trigger value.
	ContributeFromTriggerValue(st *controller.State, v uint8, source uint32)

	// ContributeNeutral applies the mapper's no-input behavior. Composite
	// mappers propagate this to every child so inactive subtrees are
	// actively cleared rather than left stale.
	ContributeNeutral(st *controller.State, source uint32)

	// Clone returns a deep, independently owned copy of the mapper tree.
	Clone() ElementMapper

	// TargetElementCount returns how many virtual elements this mapper,
	// including all descendants, can write to.
	TargetElementCount() int

	// TargetElementAt enumerates target elements in a fixed deterministic
	// order. ok is false when i is out of range.
	TargetElementAt(i int) (e controller.Element, ok bool)
}
