package controller

// Deadzone and saturation are expressed as proportions of the raw analog
// half-range, in units of 0.01%, mirroring the DirectInput property scale.
const (
	PropertyScaleMin uint32 = 0
	PropertyScaleMax uint32 = 10000

	DefaultDeadzone   uint32 = 0
	DefaultSaturation uint32 = 10000
)

// Default output range matches the raw analog domain.
const (
	DefaultRangeMin = int32(AnalogMin)
	DefaultRangeMax = int32(AnalogMax)
)

// AxisProperties holds the per-axis transformation parameters: deadzone,
// saturation, and output range. The zero value is not valid; use
// DefaultAxisProperties.
type AxisProperties struct {
	deadzone   uint32
	saturation uint32
	rangeMin   int32
	rangeMax   int32
}

// DefaultAxisProperties returns properties with no deadzone, full saturation,
// and the raw analog output range.
func DefaultAxisProperties() AxisProperties {
	return AxisProperties{
		deadzone:   DefaultDeadzone,
		saturation: DefaultSaturation,
		rangeMin:   DefaultRangeMin,
		rangeMax:   DefaultRangeMax,
	}
}

// Deadzone returns the configured deadzone in 0.01% units.
func (p *AxisProperties) Deadzone() uint32 { return p.deadzone }

// Saturation returns the configured saturation in 0.01% units.
func (p *AxisProperties) Saturation() uint32 { return p.saturation }

// Range returns the configured output range.
func (p *AxisProperties) Range() (min, max int32) { return p.rangeMin, p.rangeMax }

// Neutral returns the midpoint of the configured output range. Truncation is
// toward zero so the default range [-32768, 32767] has neutral exactly 0.
func (p *AxisProperties) Neutral() int32 {
	return int32((int64(p.rangeMin) + int64(p.rangeMax)) / 2)
}

// SetDeadzone validates and applies a new deadzone. Out-of-range requests
// leave the prior configuration untouched and report failure.
func (p *AxisProperties) SetDeadzone(v uint32) bool {
	if v > PropertyScaleMax {
		return false
	}
	p.deadzone = v
	return true
}

// SetSaturation validates and applies a new saturation.
func (p *AxisProperties) SetSaturation(v uint32) bool {
	if v > PropertyScaleMax {
		return false
	}
	p.saturation = v
	return true
}

// SetRange validates and applies a new output range. The minimum must be
// strictly below the maximum.
func (p *AxisProperties) SetRange(min, max int32) bool {
	if min >= max {
		return false
	}
	p.rangeMin = min
	p.rangeMax = max
	return true
}

// Transform maps one aggregated raw axis value through the three-stage
// saturation / deadzone / linear-interpolation pipeline onto the configured
// output range. The result is monotonic non-decreasing in the input and is
// exactly the range minimum, neutral, or maximum at and beyond the region
// boundaries.
func (p *AxisProperties) Transform(v int32) int32 {
	neutral := p.Neutral()
	if v >= int32(AnalogNeutral) {
		return transformHalf(v, int32(AnalogMax), p.deadzone, p.saturation, neutral, p.rangeMax)
	}
	return transformHalf(-v, -int32(AnalogMin), p.deadzone, p.saturation, neutral, p.rangeMin)
}

// transformHalf handles one side of the symmetric transfer function. The
// input magnitude m is non-negative; half is the raw half-range on that side,
// and outExtreme is the output range boundary the saturated region maps to.
func transformHalf(m, half int32, deadzone, saturation uint32, outNeutral, outExtreme int32) int32 {
	dzCut := int32(int64(half) * int64(deadzone) / int64(PropertyScaleMax))
	satCut := int32(int64(half) * int64(saturation) / int64(PropertyScaleMax))

	if m >= satCut {
		return outExtreme
	}
	if m <= dzCut || satCut <= dzCut {
		return outNeutral
	}

	num := int64(m-dzCut) * int64(outExtreme-outNeutral)
	den := int64(satCut - dzCut)
	// Round half away from zero so the ramp is symmetric on both sides.
	if num >= 0 {
		return outNeutral + int32((num+den/2)/den)
	}
	return outNeutral + int32((num-den/2)/den)
}
