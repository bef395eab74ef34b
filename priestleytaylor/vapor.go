package priestleytaylor

import "math"

//--------------------------------------
// Vapor pressure
//--------------------------------------

// Saturation vapor pressure by the Tetens formula.
//
// Args:
//
//	T: temperature [°C]
//
// Returns:
//
//	saturation vapor pressure e_s [kPa]
//
// The exponent is singular at T = -237.3 °C; temperatures at or below the
// singularity are outside the physical range and are not checked.
func SaturationVaporPressure(T float64) float64 {
	return 0.6108 * math.Exp(17.27*T/(237.3+T))
}

// Actual vapor pressure from temperature and relative humidity.
//
// Args:
//
//	T: temperature [°C]
//	RH: relative humidity [%]
//
// Returns:
//
//	actual vapor pressure e [kPa]
//
// RH is applied as a fraction of 100 without clamping, so values outside
// [0,100] extrapolate.
func ActualVaporPressure(T float64, RH float64) float64 {
	return RH * SaturationVaporPressure(T) / 100
}
