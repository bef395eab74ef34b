package priestleytaylor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CloudinessFactor(t *testing.T) {
	assert.True(t, math.Abs(CloudinessFactor(20, 30, DefaultAc, DefaultBc)-0.76) < 1.0e-9)

	// Ra == 0 positions must yield exactly bc, not a division fault
	assert.Equal(t, DefaultBc, CloudinessFactor(20, 0, DefaultAc, DefaultBc))
	assert.Equal(t, DefaultBc, CloudinessFactor(0, 0, DefaultAc, DefaultBc))
	assert.Equal(t, 0.35, CloudinessFactor(99, 0, 0.65, 0.35))
}

func Test_CloudinessFactorSeries(t *testing.T) {
	C, err := CloudinessFactorSeries([]float64{20, 20, 15}, []float64{30, 0, 30}, DefaultAc, DefaultBc)
	assert.Nil(t, err)
	assert.True(t, math.Abs(C[0]-0.76) < 1.0e-9)
	assert.Equal(t, DefaultBc, C[1])
	assert.True(t, math.Abs(C[2]-0.64) < 1.0e-9)
}

func Test_CloudinessFactorSeries_ShapeMismatch(t *testing.T) {
	C, err := CloudinessFactorSeries([]float64{20, 20, 15}, []float64{30, 0}, DefaultAc, DefaultBc)
	assert.Nil(t, C)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
	assert.Contains(t, err.Error(), "Ra")
}

func Test_CloudinessFactorMatrix(t *testing.T) {
	// columnar Ra: only the first column is read
	Ra := [][]float64{
		{30, 999},
		{0, 999},
	}
	C, err := CloudinessFactorMatrix([]float64{20, 20}, Ra, DefaultAc, DefaultBc)
	assert.Nil(t, err)
	assert.True(t, math.Abs(C[0]-0.76) < 1.0e-9)
	assert.Equal(t, DefaultBc, C[1])
}

func Test_CloudinessFactorMatrix_ShapeMismatch(t *testing.T) {
	// fewer Ra rows than Rs
	C, err := CloudinessFactorMatrix([]float64{20, 20}, [][]float64{{30}}, DefaultAc, DefaultBc)
	assert.Nil(t, C)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")

	// empty row
	C, err = CloudinessFactorMatrix([]float64{20, 20}, [][]float64{{30}, {}}, DefaultAc, DefaultBc)
	assert.Nil(t, C)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func Test_NetEmissivity(t *testing.T) {
	assert.True(t, math.Abs(NetEmissivity(25)-0.140597) < 1.0e-6)

	// the exponential vanishes for large arguments, leaving the offset
	assert.True(t, math.Abs(NetEmissivity(288.15)-(-0.02)) < 1.0e-9)
}

func Test_NetRadiation(t *testing.T) {
	C := CloudinessFactor(20, 30, DefaultAc, DefaultBc)
	epsilon := NetEmissivity(25)
	Rn := NetRadiation(0.2, 20, C, epsilon, 25-273.15)
	assert.True(t, math.Abs(Rn-14.018682) < 1.0e-6)

	// a perfect reflector has no shortwave gain: only the longwave loss
	// remains, so Rn <= 0 for any positive epsilon and C
	for _, TK := range []float64{-248.15, 250, 288.15, 300} {
		assert.True(t, NetRadiation(1.0, 20, 0.76, 0.14, TK) <= 0)
	}
}
