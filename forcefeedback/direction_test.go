package forcefeedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgr/xidi/forcefeedback"
)

func TestDirectionVectorZeroValue(t *testing.T) {
	var v forcefeedback.DirectionVector

	assert.False(t, v.HasDirection())
	_, ok := v.GetCartesianCoordinates()
	assert.False(t, ok)
	assert.Nil(t, v.ComputeMagnitudeComponents(5000))
}

func TestSetDirectionUsingCartesian(t *testing.T) {
	var v forcefeedback.DirectionVector

	require.True(t, v.SetDirectionUsingCartesian([]int32{1, 0}))
	assert.True(t, v.HasDirection())
	assert.False(t, v.IsOmnidirectional())
	assert.Equal(t, 2, v.NumAxes())
	assert.Equal(t, forcefeedback.CoordinateSystemCartesian, v.OriginalCoordinateSystem())

	coords, ok := v.GetCartesianCoordinates()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 0}, coords, "original coordinates returned verbatim")

	t.Run("invalid inputs leave prior state", func(t *testing.T) {
		assert.False(t, v.SetDirectionUsingCartesian(nil))
		assert.False(t, v.SetDirectionUsingCartesian([]int32{1, 2, 3, 4}))
		coords, ok := v.GetCartesianCoordinates()
		require.True(t, ok)
		assert.Equal(t, []int32{1, 0}, coords)
	})
}

func TestOmnidirectionalMode(t *testing.T) {
	var v forcefeedback.DirectionVector

	require.True(t, v.SetDirectionUsingCartesian([]int32{0, 0, 0}))
	assert.True(t, v.IsOmnidirectional())

	components := v.ComputeMagnitudeComponents(7500)
	assert.Equal(t, []float64{7500, 7500, 7500}, components,
		"omnidirectional broadcasts the magnitude unsplit")

	_, ok := v.GetPolarCoordinates()
	assert.False(t, ok, "no angular form for omnidirectional")
	_, ok = v.GetSphericalCoordinates()
	assert.False(t, ok)

	// Any non-zero direction exits omnidirectional mode.
	require.True(t, v.SetDirectionUsingCartesian([]int32{0, 5}))
	assert.False(t, v.IsOmnidirectional())
}

func TestPolarConversions(t *testing.T) {
	tests := []struct {
		name      string
		angle     int32
		cartesian []int32
	}{
		{"north points along negative Y", 0, []int32{0, -10000}},
		{"east", 9000, []int32{10000, 0}},
		{"south", 18000, []int32{0, 10000}},
		{"west", 27000, []int32{-10000, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v forcefeedback.DirectionVector
			require.True(t, v.SetDirectionUsingPolar([]int32{tc.angle}))
			assert.Equal(t, 2, v.NumAxes())

			coords, ok := v.GetCartesianCoordinates()
			require.True(t, ok)
			assert.Equal(t, tc.cartesian, coords, "axis-aligned conversions are exact")

			// Reading back in the original system returns the exact angle.
			polar, ok := v.GetPolarCoordinates()
			require.True(t, ok)
			assert.Equal(t, []int32{tc.angle}, polar)
		})
	}
}

func TestPolarObliqueRoundTrip(t *testing.T) {
	var v forcefeedback.DirectionVector
	require.True(t, v.SetDirectionUsingPolar([]int32{4500}))

	coords, ok := v.GetCartesianCoordinates()
	require.True(t, ok)
	// sin(45°) ≈ 0.7071: both components near ±7071 within trig tolerance.
	assert.InDelta(t, 7071, coords[0], 75)
	assert.InDelta(t, -7071, coords[1], 75)
}

func TestPolarRejectsInvalidAngles(t *testing.T) {
	var v forcefeedback.DirectionVector

	assert.False(t, v.SetDirectionUsingPolar([]int32{-1}))
	assert.False(t, v.SetDirectionUsingPolar([]int32{36000}))
	assert.False(t, v.SetDirectionUsingPolar([]int32{0, 0}), "polar takes exactly one angle")
	assert.False(t, v.HasDirection())
}

func TestSphericalConversions(t *testing.T) {
	t.Run("two axes one angle", func(t *testing.T) {
		var v forcefeedback.DirectionVector
		require.True(t, v.SetDirectionUsingSpherical([]int32{0}))
		assert.Equal(t, 2, v.NumAxes())

		coords, ok := v.GetCartesianCoordinates()
		require.True(t, ok)
		assert.Equal(t, []int32{10000, 0}, coords, "angle zero points along the first axis")
	})

	t.Run("three axes two angles", func(t *testing.T) {
		var v forcefeedback.DirectionVector
		require.True(t, v.SetDirectionUsingSpherical([]int32{0, 9000}))
		assert.Equal(t, 3, v.NumAxes())

		coords, ok := v.GetCartesianCoordinates()
		require.True(t, ok)
		assert.Equal(t, []int32{0, 0, 10000}, coords, "full elevation points along the third axis")
	})

	t.Run("readback in original system is verbatim", func(t *testing.T) {
		var v forcefeedback.DirectionVector
		require.True(t, v.SetDirectionUsingSpherical([]int32{12345, 2345}))
		angles, ok := v.GetSphericalCoordinates()
		require.True(t, ok)
		assert.Equal(t, []int32{12345, 2345}, angles)
	})

	t.Run("invalid angle count", func(t *testing.T) {
		var v forcefeedback.DirectionVector
		assert.False(t, v.SetDirectionUsingSpherical(nil))
		assert.False(t, v.SetDirectionUsingSpherical([]int32{0, 0, 0}))
	})
}

func TestSphericalFromCartesianApproximate(t *testing.T) {
	var v forcefeedback.DirectionVector
	require.True(t, v.SetDirectionUsingCartesian([]int32{100, 100}))

	angles, ok := v.GetSphericalCoordinates()
	require.True(t, ok)
	require.Len(t, angles, 1)
	assert.InDelta(t, 4500, angles[0], 50, "45 degrees within tolerance")
}

func TestComputeMagnitudeComponents(t *testing.T) {
	var v forcefeedback.DirectionVector
	require.True(t, v.SetDirectionUsingCartesian([]int32{3, -4}))

	components := v.ComputeMagnitudeComponents(10000)
	require.Len(t, components, 2)
	assert.InDelta(t, 6000, components[0], 1e-6, "3/5 of the magnitude")
	assert.InDelta(t, -8000, components[1], 1e-6, "sign follows the directional component")
}

func TestSetDirectionReplacesPriorSystem(t *testing.T) {
	var v forcefeedback.DirectionVector

	require.True(t, v.SetDirectionUsingPolar([]int32{9000}))
	require.Equal(t, forcefeedback.CoordinateSystemPolar, v.OriginalCoordinateSystem())

	require.True(t, v.SetDirectionUsingCartesian([]int32{0, 0, 1}))
	assert.Equal(t, forcefeedback.CoordinateSystemCartesian, v.OriginalCoordinateSystem())
	assert.Equal(t, 3, v.NumAxes())

	_, ok := v.GetPolarCoordinates()
	assert.False(t, ok, "polar form no longer applies to a three-axis direction")
}
