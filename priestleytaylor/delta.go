package priestleytaylor

//--------------------------------------
// Slope of the saturation vapor-pressure curve
//--------------------------------------

// Slope of the saturation vapor-pressure curve at temperature T.
//
// Args:
//
//	T: temperature [°C]
//
// Returns:
//
//	slope Delta [kPa/°C]
//
// Singular at T = -237.3 °C, like the saturation pressure it derives from.
func Delta(T float64) float64 {
	return 4098 * SaturationVaporPressure(T) / ((T + 237.3) * (T + 237.3))
}
