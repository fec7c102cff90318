package controller

// Capabilities describes which virtual elements a controller actually
// exposes, as derived from its mapper's target-element enumeration.
type Capabilities struct {
	axisPresent [AxisCount]bool
	buttonCount int
	hasPov      bool
}

// AddElement records one target element. Buttons are counted as the highest
// targeted index plus one, so a mapper targeting only button 15 still yields
// a 16-button controller.
func (c *Capabilities) AddElement(e Element) {
	switch e.Type {
	case ElementTypeAxis:
		c.axisPresent[e.Axis] = true
	case ElementTypeButton:
		if n := int(e.Button) + 1; n > c.buttonCount {
			c.buttonCount = n
		}
	case ElementTypePov:
		c.hasPov = true
	}
}

// HasAxis reports whether the given axis is present.
func (c Capabilities) HasAxis(a Axis) bool { return c.axisPresent[a] }

// AxisCount returns the number of present axes.
func (c Capabilities) AxisCount() int {
	n := 0
	for _, p := range c.axisPresent {
		if p {
			n++
		}
	}
	return n
}

// Axes returns the present axes in the fixed X, Y, Z, RotX, RotY, RotZ order.
func (c Capabilities) Axes() []Axis {
	out := make([]Axis, 0, AxisCount)
	for a := Axis(0); a < AxisCount; a++ {
		if c.axisPresent[a] {
			out = append(out, a)
		}
	}
	return out
}

// ButtonCount returns the number of buttons the controller exposes.
func (c Capabilities) ButtonCount() int { return c.buttonCount }

// HasPov reports whether the controller exposes a POV hat.
func (c Capabilities) HasPov() bool { return c.hasPov }
