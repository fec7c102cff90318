package forcefeedback

import "math"

// CoordinateSystem identifies how a direction was expressed.
type CoordinateSystem int

const (
	CoordinateSystemCartesian CoordinateSystem = iota
	CoordinateSystemPolar
	CoordinateSystemSpherical
)

func (c CoordinateSystem) String() string {
	switch c {
	case CoordinateSystemCartesian:
		return "Cartesian"
	case CoordinateSystemPolar:
		return "Polar"
	case CoordinateSystemSpherical:
		return "Spherical"
	default:
		return "Unknown"
	}
}

// Direction vectors support one to three axes. Angles are expressed in
// hundredths of degrees, in [0, 36000).
const (
	MaxAxes       = 3
	AngleMin      = 0
	AngleMax      = 36000
	anglesPerUnit = float64(AngleMax) / (2 * math.Pi)
)

// DirectionVector stores an effect direction in exactly one coordinate
// system at a time and remembers which system originally set it. An all-zero
// Cartesian direction selects omnidirectional mode, in which magnitude is
// broadcast unsplit to every axis.
//
// Invalid inputs are rejected and leave the prior direction unchanged.
type DirectionVector struct {
	hasDirection bool
	original     CoordinateSystem
	numAxes      int
	omni         bool

	// Unit direction components, zero for omnidirectional.
	components [MaxAxes]float64

	// Coordinates exactly as originally supplied, returned preferentially
	// on read-back in the original system.
	originalCoords [MaxAxes]int32
	originalCount  int
}

// HasDirection reports whether any direction has been set.
func (v *DirectionVector) HasDirection() bool { return v.hasDirection }

// OriginalCoordinateSystem returns the system used by the most recent
// successful set operation.
func (v *DirectionVector) OriginalCoordinateSystem() CoordinateSystem { return v.original }

// NumAxes returns the dimensionality of the stored direction.
func (v *DirectionVector) NumAxes() int { return v.numAxes }

// IsOmnidirectional reports whether the stored direction is the all-zero
// Cartesian "every direction at once" marker.
func (v *DirectionVector) IsOmnidirectional() bool { return v.hasDirection && v.omni }

// SetDirectionUsingCartesian sets the direction from one component per axis.
// An all-zero vector of any dimensionality enters omnidirectional mode.
func (v *DirectionVector) SetDirectionUsingCartesian(coords []int32) bool {
	if len(coords) < 1 || len(coords) > MaxAxes {
		return false
	}

	allZero := true
	for _, c := range coords {
		if c != 0 {
			allZero = false
			break
		}
	}

	v.reset(CoordinateSystemCartesian, len(coords), coords)
	if allZero {
		v.omni = true
		return true
	}

	var mag float64
	for _, c := range coords {
		mag += float64(c) * float64(c)
	}
	mag = math.Sqrt(mag)
	for i, c := range coords {
		v.components[i] = snapZero(float64(c) / mag)
	}
	return true
}

// SetDirectionUsingPolar sets a two-axis direction from one angle, compass
// style: angle 0 points along the negative second axis and angles grow
// clockwise.
func (v *DirectionVector) SetDirectionUsingPolar(coords []int32) bool {
	if len(coords) != 1 || !angleValid(coords[0]) {
		return false
	}

	v.reset(CoordinateSystemPolar, 2, coords)
	rad := float64(coords[0]) / anglesPerUnit
	v.components[0] = snapZero(math.Sin(rad))
	v.components[1] = snapZero(-math.Cos(rad))
	return true
}

// SetDirectionUsingSpherical sets a direction from N-1 angles for an N-axis
// effect: the first angle rotates within the plane of the first two axes and
// the second elevates toward the third axis.
func (v *DirectionVector) SetDirectionUsingSpherical(coords []int32) bool {
	if len(coords) < 1 || len(coords) > MaxAxes-1 {
		return false
	}
	for _, a := range coords {
		if !angleValid(a) {
			return false
		}
	}

	v.reset(CoordinateSystemSpherical, len(coords)+1, coords)
	first := float64(coords[0]) / anglesPerUnit
	if len(coords) == 1 {
		v.components[0] = snapZero(math.Cos(first))
		v.components[1] = snapZero(math.Sin(first))
		return true
	}
	second := float64(coords[1]) / anglesPerUnit
	v.components[0] = snapZero(math.Cos(first) * math.Cos(second))
	v.components[1] = snapZero(math.Sin(first) * math.Cos(second))
	v.components[2] = snapZero(math.Sin(second))
	return true
}

func (v *DirectionVector) reset(system CoordinateSystem, numAxes int, coords []int32) {
	*v = DirectionVector{
		hasDirection: true,
		original:     system,
		numAxes:      numAxes,
	}
	v.originalCount = copy(v.originalCoords[:], coords)
}

// GetCartesianCoordinates returns the direction in Cartesian form. The
// originally supplied coordinates are returned verbatim when Cartesian was
// the original system; otherwise unit components are scaled to ±10000.
func (v *DirectionVector) GetCartesianCoordinates() ([]int32, bool) {
	if !v.hasDirection {
		return nil, false
	}
	if v.original == CoordinateSystemCartesian {
		out := make([]int32, v.originalCount)
		copy(out, v.originalCoords[:v.originalCount])
		return out, true
	}
	out := make([]int32, v.numAxes)
	for i := range out {
		out[i] = int32(math.Round(v.components[i] * 10000))
	}
	return out, true
}

// GetPolarCoordinates returns the direction as one polar angle. Valid only
// for two-axis, non-omnidirectional directions.
func (v *DirectionVector) GetPolarCoordinates() ([]int32, bool) {
	if !v.hasDirection || v.omni || v.numAxes != 2 {
		return nil, false
	}
	if v.original == CoordinateSystemPolar {
		return []int32{v.originalCoords[0]}, true
	}
	angle := math.Atan2(v.components[0], -v.components[1])
	return []int32{normalizeAngle(angle)}, true
}

// GetSphericalCoordinates returns the direction as N-1 spherical angles.
// Not available for omnidirectional directions.
func (v *DirectionVector) GetSphericalCoordinates() ([]int32, bool) {
	if !v.hasDirection || v.omni || v.numAxes < 2 {
		return nil, false
	}
	if v.original == CoordinateSystemSpherical {
		out := make([]int32, v.originalCount)
		copy(out, v.originalCoords[:v.originalCount])
		return out, true
	}
	first := math.Atan2(v.components[1], v.components[0])
	if v.numAxes == 2 {
		return []int32{normalizeAngle(first)}, true
	}
	planar := math.Hypot(v.components[0], v.components[1])
	second := math.Atan2(v.components[2], planar)
	return []int32{normalizeAngle(first), normalizeAngle(second)}, true
}

// ComputeMagnitudeComponents decomposes a scalar magnitude into one
// component per axis. Omnidirectional directions broadcast the magnitude
// unmodified and unsplit to every axis; otherwise each axis receives the
// magnitude scaled by its directional component, sign included.
func (v *DirectionVector) ComputeMagnitudeComponents(magnitude float64) []float64 {
	if !v.hasDirection {
		return nil
	}
	out := make([]float64, v.numAxes)
	if v.omni {
		for i := range out {
			out[i] = magnitude
		}
		return out
	}
	for i := range out {
		out[i] = magnitude * v.components[i]
	}
	return out
}

func angleValid(a int32) bool { return a >= AngleMin && a < AngleMax }

// normalizeAngle converts radians to hundredths of degrees in [0, 36000).
func normalizeAngle(rad float64) int32 {
	a := int32(math.Round(rad * anglesPerUnit))
	for a < AngleMin {
		a += AngleMax
	}
	for a >= AngleMax {
		a -= AngleMax
	}
	return a
}

// snapZero flushes trig round-off to an exact zero so axis-aligned
// directions convert exactly.
func snapZero(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 0
	}
	return x
}
