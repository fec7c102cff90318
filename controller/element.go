// Package controller defines the virtual controller data model: element
// identifiers, state snapshots, per-axis properties, the buffered event
// queue, and the virtual controller itself.
package controller

import "fmt"

// Axis identifies one of the six virtual controller axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisRotX
	AxisRotY
	AxisRotZ

	AxisCount = 6
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisRotX:
		return "RotX"
	case AxisRotY:
		return "RotY"
	case AxisRotZ:
		return "RotZ"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Button identifies one of the virtual controller buttons, zero-based.
type Button int

// ButtonCount is the number of virtual buttons a controller can expose.
const ButtonCount = 16

// PovDirection identifies one of the four POV hat directions.
type PovDirection int

const (
	PovUp PovDirection = iota
	PovDown
	PovLeft
	PovRight

	PovDirectionCount = 4
)

func (d PovDirection) String() string {
	switch d {
	case PovUp:
		return "Up"
	case PovDown:
		return "Down"
	case PovLeft:
		return "Left"
	case PovRight:
		return "Right"
	default:
		return fmt.Sprintf("PovDirection(%d)", int(d))
	}
}

// ElementType tags an Element identifier.
type ElementType int

const (
	ElementTypeNone ElementType = iota
	ElementTypeAxis
	ElementTypeButton
	ElementTypePov
)

// Element identifies a single virtual controller element. It is an immutable
// value type usable as a map key.
type Element struct {
	Type   ElementType
	Axis   Axis
	Button Button
}

// ElementAxis returns the identifier for a virtual axis.
func ElementAxis(a Axis) Element { return Element{Type: ElementTypeAxis, Axis: a} }

// ElementButton returns the identifier for a virtual button.
func ElementButton(b Button) Element { return Element{Type: ElementTypeButton, Button: b} }

// ElementPov returns the identifier for the POV hat.
func ElementPov() Element { return Element{Type: ElementTypePov} }

func (e Element) String() string {
	switch e.Type {
	case ElementTypeAxis:
		return "Axis" + e.Axis.String()
	case ElementTypeButton:
		return fmt.Sprintf("Button%d", int(e.Button)+1)
	case ElementTypePov:
		return "Pov"
	default:
		return "None"
	}
}

// Boundary values for the raw input domains consumed by element mappers.
const (
	AnalogMin     int16 = -32768
	AnalogNeutral int16 = 0
	AnalogMax     int16 = 32767

	TriggerMin     uint8 = 0
	TriggerNeutral uint8 = 0
	TriggerMax     uint8 = 255
)

// AxisDirection selects how much of a virtual axis an input maps onto: the
// whole axis, or only its positive or negative half.
type AxisDirection int

const (
	AxisDirectionBoth AxisDirection = iota
	AxisDirectionPositive
	AxisDirectionNegative
)

func (d AxisDirection) String() string {
	switch d {
	case AxisDirectionBoth:
		return "Both"
	case AxisDirectionPositive:
		return "Positive"
	case AxisDirectionNegative:
		return "Negative"
	default:
		return fmt.Sprintf("AxisDirection(%d)", int(d))
	}
}

// Press points for treating analog and trigger inputs as digital signals.
// The exact values are internal policy; only the single monotonic transition
// in each sweep direction is contractual.
const (
	AnalogPressThreshold         = int16(int32(AnalogMax) / 3)
	AnalogPressThresholdNegative = int16(int32(AnalogMin) / 3)
	TriggerPressThreshold        = uint8(TriggerMax / 3)
)
