package priestleytaylor

//--------------------------------------
// Psychrometrics
//--------------------------------------

// Atmospheric pressure from station elevation.
//
// Args:
//
//	elevation: station elevation above sea level [m]
//
// Returns:
//
//	atmospheric pressure P [kPa]
func AtmosphericPressure(elevation float64) float64 {
	return 101.3 - 0.01055*elevation
}

// Latent heat of vaporization of water.
//
// Args:
//
//	airT: air temperature [°C]
//
// Returns:
//
//	latent heat of vaporization lambda [MJ/kg]
func LatentHeatOfVaporization(airT float64) float64 {
	return 2.501 - 0.002361*airT
}

// Psychrometric constant.
//
// Args:
//
//	P: atmospheric pressure [kPa]
//	lambda: latent heat of vaporization [MJ/kg]
//
// Returns:
//
//	psychrometric constant gamma [kPa/°C]
//
// Non-finite when lambda is 0, which does not occur in the physical range.
func PsychrometricConstant(P float64, lambda float64) float64 {
	return 0.00163 * P / lambda
}
