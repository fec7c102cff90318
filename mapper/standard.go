package mapper

import (
	"fmt"

	"github.com/samuelgr/xidi/controller"
)

// RegisterStandardMappers builds and registers the canned mapper set into a
// registry. StandardGamepad is the baseline; the other two inherit from it
// as a template and override a few slots.
func RegisterStandardMappers(registry *Registry) error {
	builder := NewBuilder(registry)

	if err := defineStandardGamepad(builder); err != nil {
		return err
	}
	if err := defineDigitalGamepad(builder); err != nil {
		return err
	}
	if err := defineExtendedGamepad(builder); err != nil {
		return err
	}

	for _, name := range []string{"StandardGamepad", "DigitalGamepad", "ExtendedGamepad"} {
		if _, err := builder.Build(name); err != nil {
			return fmt.Errorf("building %s: %w", name, err)
		}
	}
	return nil
}

// defineStandardGamepad is the classic DirectInput layout: left stick on X
// and Y, right stick on Z and RotZ, d-pad on the POV hat, triggers on the
// positive halves of RotX and RotY, and all ten digital buttons in order.
func defineStandardGamepad(b *Builder) error {
	const name = "StandardGamepad"
	if err := b.CreateBlueprint(name); err != nil {
		return err
	}

	assignments := map[string]ElementMapper{
		"StickLeftX":  NewAxisMapper(controller.AxisX, controller.AxisDirectionBoth),
		"StickLeftY":  NewAxisMapper(controller.AxisY, controller.AxisDirectionBoth),
		"StickRightX": NewAxisMapper(controller.AxisZ, controller.AxisDirectionBoth),
		"StickRightY": NewAxisMapper(controller.AxisRotZ, controller.AxisDirectionBoth),
		"DpadUp":      NewPovMapper(controller.PovUp),
		"DpadDown":    NewPovMapper(controller.PovDown),
		"DpadLeft":    NewPovMapper(controller.PovLeft),
		"DpadRight":   NewPovMapper(controller.PovRight),
		"TriggerLT":   NewAxisMapper(controller.AxisRotX, controller.AxisDirectionPositive),
		"TriggerRT":   NewAxisMapper(controller.AxisRotY, controller.AxisDirectionPositive),
		"ButtonA":     NewButtonMapper(controller.Button(0)),
		"ButtonB":     NewButtonMapper(controller.Button(1)),
		"ButtonX":     NewButtonMapper(controller.Button(2)),
		"ButtonY":     NewButtonMapper(controller.Button(3)),
		"ButtonLB":    NewButtonMapper(controller.Button(4)),
		"ButtonRB":    NewButtonMapper(controller.Button(5)),
		"ButtonBack":  NewButtonMapper(controller.Button(6)),
		"ButtonStart": NewButtonMapper(controller.Button(7)),
		"ButtonLS":    NewButtonMapper(controller.Button(8)),
		"ButtonRS":    NewButtonMapper(controller.Button(9)),
	}
	for element, m := range assignments {
		if err := b.SetElementMapper(name, element, m); err != nil {
			return err
		}
	}
	return nil
}

// defineDigitalGamepad replaces the analog sticks with digital axis mappers,
// for titles that expect d-pad-like extremes from the sticks.
func defineDigitalGamepad(b *Builder) error {
	const name = "DigitalGamepad"
	if err := b.CreateBlueprint(name); err != nil {
		return err
	}
	if err := b.SetTemplate(name, "StandardGamepad"); err != nil {
		return err
	}

	overrides := map[string]ElementMapper{
		"StickLeftX":  NewDigitalAxisMapper(controller.AxisX, controller.AxisDirectionBoth),
		"StickLeftY":  NewDigitalAxisMapper(controller.AxisY, controller.AxisDirectionBoth),
		"StickRightX": NewDigitalAxisMapper(controller.AxisZ, controller.AxisDirectionBoth),
		"StickRightY": NewDigitalAxisMapper(controller.AxisRotZ, controller.AxisDirectionBoth),
	}
	for element, m := range overrides {
		if err := b.SetElementMapper(name, element, m); err != nil {
			return err
		}
	}
	return nil
}

// defineExtendedGamepad exposes the triggers as buttons 11 and 12 instead of
// axes, for titles that enumerate buttons rather than reading trigger axes.
func defineExtendedGamepad(b *Builder) error {
	const name = "ExtendedGamepad"
	if err := b.CreateBlueprint(name); err != nil {
		return err
	}
	if err := b.SetTemplate(name, "StandardGamepad"); err != nil {
		return err
	}

	overrides := map[string]ElementMapper{
		"TriggerLT": NewButtonMapper(controller.Button(10)),
		"TriggerRT": NewButtonMapper(controller.Button(11)),
	}
	for element, m := range overrides {
		if err := b.SetElementMapper(name, element, m); err != nil {
			return err
		}
	}
	return nil
}
