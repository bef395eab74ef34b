package priestleytaylor

import (
	"fmt"
	"math"
)

//--------------------------------------
// Radiation balance
//--------------------------------------

// Default Ångström-type coefficients of the cloudiness factor.
const (
	DefaultAc = 0.72
	DefaultBc = 0.28
)

// Stefan–Boltzmann-type constant of the longwave term [MJ/m²/day/K⁴].
const sigma = 4.89e-9

// Cloudiness factor from measured and extraterrestrial solar radiation.
//
// Args:
//
//	Rs: solar radiation [MJ/m²/day]
//	Ra: extraterrestrial radiation [MJ/m²/day]
//	ac, bc: cloudiness coefficients (defaults 0.72, 0.28)
//
// Returns:
//
//	cloudiness factor C [dimensionless]
//
// The ratio Rs/Ra is defined as 0 where Ra is exactly 0, so the factor
// degenerates to bc instead of dividing by zero. This is the only guarded
// division in the pipeline; every other singularity propagates Inf/NaN.
func CloudinessFactor(Rs float64, Ra float64, ac float64, bc float64) float64 {
	R := 0.0
	if Ra != 0 {
		R = Rs / Ra
	}
	return ac*R + bc
}

// Elementwise cloudiness factor over matched-length series.
func CloudinessFactorSeries(Rs []float64, Ra []float64, ac float64, bc float64) ([]float64, error) {
	if len(Ra) != len(Rs) {
		return nil, fmt.Errorf("shape mismatch: column Ra has %d rows, want %d", len(Ra), len(Rs))
	}
	C := make([]float64, len(Rs))
	for i := 0; i < len(Rs); i++ {
		C[i] = CloudinessFactor(Rs[i], Ra[i], ac, bc)
	}
	return C, nil
}

// Elementwise cloudiness factor with Ra supplied as a columnar structure;
// only the first column of each row is used.
func CloudinessFactorMatrix(Rs []float64, Ra [][]float64, ac float64, bc float64) ([]float64, error) {
	if len(Ra) != len(Rs) {
		return nil, fmt.Errorf("shape mismatch: column Ra has %d rows, want %d", len(Ra), len(Rs))
	}
	C := make([]float64, len(Rs))
	for i := 0; i < len(Rs); i++ {
		if len(Ra[i]) == 0 {
			return nil, fmt.Errorf("shape mismatch: column Ra row %d is empty", i)
		}
		C[i] = CloudinessFactor(Rs[i], Ra[i][0], ac, bc)
	}
	return C, nil
}

// Net emissivity of the surface-atmosphere exchange.
//
// Args:
//
//	T: temperature [K]
//
// Returns:
//
//	net emissivity epsilon [dimensionless]
//
// Note: the published model evaluates this at the air temperature in °C
// while documenting the argument in Kelvin; the pipeline reproduces that
// behavior unchanged (see PotentialET).
func NetEmissivity(T float64) float64 {
	return 0.261*math.Exp(-7.77e-4*T*T) - 0.02
}

// Net radiation as shortwave gain minus longwave loss.
//
// Args:
//
//	albedo: surface reflectivity [0-1]
//	Rs: solar radiation [MJ/m²/day]
//	C: cloudiness factor [dimensionless]
//	epsilon: net emissivity [dimensionless]
//	TK: temperature of the longwave term [K]
//
// Returns:
//
//	net radiation Rn [MJ/m²/day]
func NetRadiation(albedo float64, Rs float64, C float64, epsilon float64, TK float64) float64 {
	return (1-albedo)*Rs - C*epsilon*sigma*TK*TK*TK*TK
}
