package priestleytaylor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AtmosphericPressure(t *testing.T) {
	assert.Equal(t, 101.3, AtmosphericPressure(0))
	assert.True(t, math.Abs(AtmosphericPressure(500)-96.025) < 1.0e-9)

	// pressure falls with elevation
	assert.True(t, AtmosphericPressure(1000) < AtmosphericPressure(0))
}

func Test_LatentHeatOfVaporization(t *testing.T) {
	assert.True(t, math.Abs(LatentHeatOfVaporization(25)-2.441975) < 1.0e-9)
	assert.Equal(t, 2.501, LatentHeatOfVaporization(0))
}

func Test_PsychrometricConstant(t *testing.T) {
	gamma := PsychrometricConstant(101.3, LatentHeatOfVaporization(25))
	assert.True(t, math.Abs(gamma-0.067617) < 1.0e-6)

	gamma500 := PsychrometricConstant(AtmosphericPressure(500), LatentHeatOfVaporization(10))
	assert.True(t, math.Abs(gamma500-0.063180) < 1.0e-6)

	// lambda = 0 is outside the physical range and propagates as Inf
	assert.True(t, math.IsInf(PsychrometricConstant(101.3, 0), 1))
}
