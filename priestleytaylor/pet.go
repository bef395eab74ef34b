package priestleytaylor

//--------------------------------------
// Priestley–Taylor combination
//--------------------------------------

// Priestley–Taylor combination equation.
//
// Args:
//
//	alpha: saturation deficit factor [dimensionless]
//	delta: slope of the saturation vapor-pressure curve [kPa/°C]
//	gamma: psychrometric constant [kPa/°C]
//	Rn: net radiation [MJ/m²/day]
//
// Returns:
//
//	evapotranspiration ET [MJ/m²/day]
//
// Linear in Rn; non-finite when delta+gamma is 0.
func PriestleyTaylor(alpha float64, delta float64, gamma float64, Rn float64) float64 {
	return alpha * (delta / (delta + gamma)) * Rn
}

// Potential evapotranspiration with the default cloudiness coefficients.
//
// Args:
//
//	airT: air temperature [°C]
//	fuelT: fuel/surface temperature [°C]
//	elevation: station elevation [m]
//	RH: relative humidity [%]
//	fuelMoist: fuel/surface moisture [%]
//	Rs: solar radiation [MJ/m²/day]
//	Ra: extraterrestrial radiation [MJ/m²/day]
//	albedo: surface reflectivity [0-1]
//
// Returns:
//
//	potential evapotranspiration ET [MJ/m²/day]
func PotentialET(airT, fuelT, elevation, RH, fuelMoist, Rs, Ra, albedo float64) float64 {
	return PotentialETWithCoefficients(airT, fuelT, elevation, RH, fuelMoist, Rs, Ra, albedo, DefaultAc, DefaultBc)
}

// Potential evapotranspiration with explicit cloudiness coefficients.
//
// Composes the pipeline in dependency order: pressure, latent heat, Delta,
// gamma, the two vapor pressures, Bowen's ratio, alpha, cloudiness, net
// emissivity, net radiation, and the Priestley–Taylor combination.
//
// Note: the longwave temperature is taken as airT - 273.15 and the net
// emissivity is evaluated at airT in °C, exactly as the published model
// does; both are kept unchanged so results stay bit-for-bit comparable to
// the reference formulas.
func PotentialETWithCoefficients(airT, fuelT, elevation, RH, fuelMoist, Rs, Ra, albedo, ac, bc float64) float64 {
	P := AtmosphericPressure(elevation)
	lambda := LatentHeatOfVaporization(airT)
	delta := Delta(airT)
	gamma := PsychrometricConstant(P, lambda)

	airVape := ActualVaporPressure(airT, RH)
	fuelVape := ActualVaporPressure(fuelT, fuelMoist)
	beta := Bowen(gamma, airT, fuelT, airVape, fuelVape)
	alpha := Alpha(delta, gamma, beta)

	C := CloudinessFactor(Rs, Ra, ac, bc)
	TK := airT - 273.15
	epsilon := NetEmissivity(airT)
	Rn := NetRadiation(albedo, Rs, C, epsilon, TK)

	return PriestleyTaylor(alpha, delta, gamma, Rn)
}
