package mapper

import (
	"fmt"
	"strings"

	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/forcefeedback"
)

// Force feedback actuator slot indices, one per physical actuator an
// XInput-style controller exposes.
const (
	ActuatorSlotLeftMotor = iota
	ActuatorSlotRightMotor
	ActuatorSlotLeftTrigger
	ActuatorSlotRightTrigger

	ActuatorSlotCount = 4
)

// actuatorSlotNames is the actuator vocabulary used by configuration
// directives. Matching is exact and case-sensitive, like element slot names.
var actuatorSlotNames = [ActuatorSlotCount]string{
	"LeftMotor",
	"RightMotor",
	"LeftTrigger",
	"RightTrigger",
}

// ActuatorSlotName returns the canonical name of an actuator slot.
func ActuatorSlotName(slot int) string {
	if slot < 0 || slot >= ActuatorSlotCount {
		return ""
	}
	return actuatorSlotNames[slot]
}

// ActuatorSlotByName resolves an actuator slot name. Matching is exact and
// case-sensitive.
func ActuatorSlotByName(name string) (int, bool) {
	for i, n := range actuatorSlotNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// ActuatorFromString parses a force feedback actuator descriptor. The
// grammar mirrors the element mapper language: `Default`, `Disabled`,
// `SingleAxis(axis[, direction])`, and `MagnitudeProjection(axis1, axis2)`.
func ActuatorFromString(s string) (forcefeedback.Actuator, error) {
	var none forcefeedback.Actuator

	depth, balanced := ComputeRecursionDepth(s)
	if !balanced {
		return none, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	if depth > 1 {
		return none, fmt.Errorf("actuator descriptors do not nest")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return none, fmt.Errorf("empty actuator descriptor string")
	}

	typeName, params, hasParams, rest, err := splitTypeAndParams(s)
	if err != nil {
		return none, err
	}
	if strings.TrimSpace(rest) != "" {
		return none, fmt.Errorf("extraneous trailing content %q", strings.TrimSpace(rest))
	}

	switch strings.ToLower(typeName) {
	case "default":
		if hasParams {
			return none, fmt.Errorf("Default: unexpected parameter list")
		}
		return forcefeedback.DefaultActuatorMap().LeftMotor, nil

	case "disabled", "none", "null", "empty":
		if hasParams {
			return none, fmt.Errorf("Disabled: unexpected parameter list")
		}
		return forcefeedback.Actuator{}, nil

	case "singleaxis":
		return makeSingleAxisActuator(params, hasParams)

	case "magnitudeprojection":
		return makeMagnitudeProjectionActuator(params, hasParams)

	default:
		return none, fmt.Errorf("unrecognized actuator type %q", typeName)
	}
}

func makeSingleAxisActuator(params string, hasParams bool) (forcefeedback.Actuator, error) {
	var none forcefeedback.Actuator

	if !hasParams || strings.TrimSpace(params) == "" {
		return none, fmt.Errorf("SingleAxis: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return none, fmt.Errorf("SingleAxis: %v", err)
	}
	if err := requireParamCount("SingleAxis", parts, 1, 2); err != nil {
		return none, err
	}

	axis, ok := axisByName(parts[0])
	if !ok {
		return none, fmt.Errorf("SingleAxis: Parameter %q must name an axis", parts[0])
	}

	direction := controller.AxisDirectionBoth
	if len(parts) == 2 {
		direction, ok = axisDirectionByName(parts[1])
		if !ok {
			return none, fmt.Errorf("SingleAxis: Parameter %q must be an axis direction", parts[1])
		}
	}

	return forcefeedback.Actuator{
		Present:   true,
		Mode:      forcefeedback.ActuatorModeSingleAxis,
		Axis:      axis,
		Direction: direction,
	}, nil
}

func makeMagnitudeProjectionActuator(params string, hasParams bool) (forcefeedback.Actuator, error) {
	var none forcefeedback.Actuator

	if !hasParams || strings.TrimSpace(params) == "" {
		return none, fmt.Errorf("MagnitudeProjection: missing parameter list")
	}
	parts, err := splitParams(params)
	if err != nil {
		return none, fmt.Errorf("MagnitudeProjection: %v", err)
	}
	if err := requireParamCount("MagnitudeProjection", parts, 2, 2); err != nil {
		return none, err
	}

	first, ok := axisByName(parts[0])
	if !ok {
		return none, fmt.Errorf("MagnitudeProjection: Parameter %q must name an axis", parts[0])
	}
	second, ok := axisByName(parts[1])
	if !ok {
		return none, fmt.Errorf("MagnitudeProjection: Parameter %q must name an axis", parts[1])
	}
	if first == second {
		return none, fmt.Errorf("MagnitudeProjection: axes must differ")
	}

	return forcefeedback.Actuator{
		Present:    true,
		Mode:       forcefeedback.ActuatorModeMagnitudeProjection,
		Axis:       first,
		SecondAxis: second,
	}, nil
}
