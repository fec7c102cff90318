package mapper

import "github.com/samuelgr/xidi/controller"

// InvertMapper wraps one child and complements each value's domain before
// forwarding: analog values are mirrored around the axis midpoint, trigger
// values around the trigger midpoint, and button values logically negated.
// Neutral contributions are forwarded unchanged.
type InvertMapper struct {
	child ElementMapper
}

// NewInvertMapper wraps a child mapper. The child must not be nil.
func NewInvertMapper(child ElementMapper) InvertMapper {
	return InvertMapper{child: child}
}

// Child returns the wrapped mapper.
func (m InvertMapper) Child() ElementMapper { return m.child }

func (m InvertMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	// -1 - v flips an even-sized two's complement domain end for end.
	m.child.ContributeFromAnalogValue(st, -1-v, source)
}

func (m InvertMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	m.child.ContributeFromButtonValue(st, !pressed, source)
}

func (m InvertMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	m.child.ContributeFromTriggerValue(st, controller.TriggerMax-v, source)
}

func (m InvertMapper) ContributeNeutral(st *controller.State, source uint32) {
	m.child.ContributeNeutral(st, source)
}

func (m InvertMapper) Clone() ElementMapper {
	return InvertMapper{child: m.child.Clone()}
}

func (m InvertMapper) TargetElementCount() int { return m.child.TargetElementCount() }

func (m InvertMapper) TargetElementAt(i int) (controller.Element, bool) {
	return m.child.TargetElementAt(i)
}

// SplitMapper routes analog input at or above the neutral point to its
// positive child and below it to its negative child, remapping the half
// range onto the child's full input domain. Exactly one side is invoked per
// value contribution; a neutral contribution is propagated to both sides so
// the inactive side is actively cleared. Either child may be absent.
type SplitMapper struct {
	positive ElementMapper
	negative ElementMapper
}

// NewSplitMapper creates a split mapper; either child may be nil.
func NewSplitMapper(positive, negative ElementMapper) SplitMapper {
	return SplitMapper{positive: positive, negative: negative}
}

// PositiveChild returns the child handling values at or above neutral.
func (m SplitMapper) PositiveChild() ElementMapper { return m.positive }

// NegativeChild returns the child handling values below neutral.
func (m SplitMapper) NegativeChild() ElementMapper { return m.negative }

func (m SplitMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	if v >= controller.AnalogNeutral {
		if m.positive != nil {
			m.positive.ContributeFromAnalogValue(st, splitPositiveRemap(v), source)
		}
	} else if m.negative != nil {
		m.negative.ContributeFromAnalogValue(st, splitNegativeRemap(v), source)
	}
}

func (m SplitMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	if pressed {
		if m.positive != nil {
			m.positive.ContributeFromButtonValue(st, true, source)
		}
	} else if m.negative != nil {
		m.negative.ContributeFromButtonValue(st, false, source)
	}
}

func (m SplitMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	if triggerPressed(v) {
		if m.positive != nil {
			m.positive.ContributeFromTriggerValue(st, v, source)
		}
	} else if m.negative != nil {
		m.negative.ContributeFromTriggerValue(st, v, source)
	}
}

func (m SplitMapper) ContributeNeutral(st *controller.State, source uint32) {
	if m.positive != nil {
		m.positive.ContributeNeutral(st, source)
	}
	if m.negative != nil {
		m.negative.ContributeNeutral(st, source)
	}
}

func (m SplitMapper) Clone() ElementMapper {
	out := SplitMapper{}
	if m.positive != nil {
		out.positive = m.positive.Clone()
	}
	if m.negative != nil {
		out.negative = m.negative.Clone()
	}
	return out
}

func (m SplitMapper) TargetElementCount() int {
	n := 0
	if m.positive != nil {
		n += m.positive.TargetElementCount()
	}
	if m.negative != nil {
		n += m.negative.TargetElementCount()
	}
	return n
}

func (m SplitMapper) TargetElementAt(i int) (controller.Element, bool) {
	if m.positive != nil {
		n := m.positive.TargetElementCount()
		if i < n {
			return m.positive.TargetElementAt(i)
		}
		i -= n
	}
	if m.negative != nil {
		return m.negative.TargetElementAt(i)
	}
	return controller.Element{}, false
}

// splitPositiveRemap stretches [0, AnalogMax] onto the full analog domain.
func splitPositiveRemap(v int16) int16 {
	return int16(2*int32(v) + int32(controller.AnalogMin))
}

// splitNegativeRemap stretches [AnalogMin, -1] onto the full analog domain,
// with -1 landing at the domain maximum.
func splitNegativeRemap(v int16) int16 {
	return int16(2*(int32(v)+1) + int32(controller.AnalogMax))
}

// MaxCompoundChildren bounds a compound mapper's fan-out.
const MaxCompoundChildren = 8

// CompoundMapper forwards every contribution, neutral included, identically
// to all of its children and aggregates their target element lists.
type CompoundMapper struct {
	children [MaxCompoundChildren]ElementMapper
}

// NewCompoundMapper creates a compound mapper from up to MaxCompoundChildren
// children; excess children are ignored.
func NewCompoundMapper(children ...ElementMapper) CompoundMapper {
	m := CompoundMapper{}
	for i, c := range children {
		if i >= MaxCompoundChildren {
			break
		}
		m.children[i] = c
	}
	return m
}

// Children returns the present children in order.
func (m CompoundMapper) Children() []ElementMapper {
	out := make([]ElementMapper, 0, MaxCompoundChildren)
	for _, c := range m.children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (m CompoundMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromAnalogValue(st, v, source)
		}
	}
}

func (m CompoundMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromButtonValue(st, pressed, source)
		}
	}
}

func (m CompoundMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeFromTriggerValue(st, v, source)
		}
	}
}

func (m CompoundMapper) ContributeNeutral(st *controller.State, source uint32) {
	for _, c := range m.children {
		if c != nil {
			c.ContributeNeutral(st, source)
		}
	}
}

func (m CompoundMapper) Clone() ElementMapper {
	out := CompoundMapper{}
	for i, c := range m.children {
		if c != nil {
			out.children[i] = c.Clone()
		}
	}
	return out
}

func (m CompoundMapper) TargetElementCount() int {
	n := 0
	for _, c := range m.children {
		if c != nil {
			n += c.TargetElementCount()
		}
	}
	return n
}

func (m CompoundMapper) TargetElementAt(i int) (controller.Element, bool) {
	for _, c := range m.children {
		if c == nil {
			continue
		}
		n := c.TargetElementCount()
		if i < n {
			return c.TargetElementAt(i)
		}
		i -= n
	}
	return controller.Element{}, false
}

// NullMapper consumes and discards every contribution.
type NullMapper struct{}

// NewNullMapper creates a mapper with no effect.
func NewNullMapper() NullMapper { return NullMapper{} }

func (NullMapper) ContributeFromAnalogValue(st *controller.State, v int16, source uint32) {}

func (NullMapper) ContributeFromButtonValue(st *controller.State, pressed bool, source uint32) {}

func (NullMapper) ContributeFromTriggerValue(st *controller.State, v uint8, source uint32) {}

func (NullMapper) ContributeNeutral(st *controller.State, source uint32) {}

func (NullMapper) Clone() ElementMapper { return NullMapper{} }

func (NullMapper) TargetElementCount() int { return 0 }

func (NullMapper) TargetElementAt(i int) (controller.Element, bool) {
	return controller.Element{}, false
}
