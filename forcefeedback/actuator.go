// Package forcefeedback implements the force feedback side of the mapping
// core: actuator descriptors, the direction vector coordinate engine, and
// the per-physical-controller device registration sets.
package forcefeedback

import "github.com/samuelgr/xidi/controller"

// ActuatorMode selects how an effect's magnitude reaches a physical
// actuator.
type ActuatorMode int

const (
	// ActuatorModeSingleAxis drives the actuator from one virtual axis
	// component, optionally restricted to one direction of that axis.
	ActuatorModeSingleAxis ActuatorMode = iota

	// ActuatorModeMagnitudeProjection drives the actuator from the vector
	// magnitude of two virtual axis components.
	ActuatorModeMagnitudeProjection
)

// Actuator describes one physical force feedback actuator slot.
type Actuator struct {
	Present    bool
	Mode       ActuatorMode
	Axis       controller.Axis
	Direction  controller.AxisDirection
	SecondAxis controller.Axis
}

// ActuatorMap assigns an actuator description to each physical actuator
// slot an XInput-style controller exposes.
type ActuatorMap struct {
	LeftMotor    Actuator
	RightMotor   Actuator
	LeftTrigger  Actuator
	RightTrigger Actuator
}

// DefaultActuatorMap is the actuator map used when neither a blueprint nor
// any of its templates specifies one: both motors present, driven by the X
// and Y axes.
func DefaultActuatorMap() ActuatorMap {
	return ActuatorMap{
		LeftMotor: Actuator{
			Present:   true,
			Mode:      ActuatorModeSingleAxis,
			Axis:      controller.AxisX,
			Direction: controller.AxisDirectionBoth,
		},
		RightMotor: Actuator{
			Present:   true,
			Mode:      ActuatorModeSingleAxis,
			Axis:      controller.AxisY,
			Direction: controller.AxisDirectionBoth,
		},
	}
}
