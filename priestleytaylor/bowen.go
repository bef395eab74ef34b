package priestleytaylor

//--------------------------------------
// Bowen's ratio
//--------------------------------------

// Bowen's ratio of sensible to latent heat flux between two levels.
//
// Args:
//
//	gamma: psychrometric constant [kPa/°C]
//	T2, T1: temperature at the upper and lower level [°C]
//	e2, e1: vapor pressure at the upper and lower level [kPa]
//
// Returns:
//
//	Bowen's ratio beta [°C/kPa · kPa/°C = dimensionless]
//
// A zero temperature difference means zero sensible-heat gradient, so beta
// is 0 regardless of the vapor-pressure difference; this keeps the
// equal-level path finite instead of producing 0/0. When T2 != T1 and
// e2 == e1 the division yields ±Inf and propagates.
func Bowen(gamma float64, T2 float64, T1 float64, e2 float64, e1 float64) float64 {
	if T2-T1 == 0 {
		return 0
	}
	return gamma * (T2 - T1) / (e2 - e1)
}
