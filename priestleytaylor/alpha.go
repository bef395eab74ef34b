package priestleytaylor

//--------------------------------------
// Saturation deficit factor
//--------------------------------------

// Saturation deficit factor of the Priestley–Taylor model.
//
// Args:
//
//	delta: slope of the saturation vapor-pressure curve [kPa/°C]
//	gamma: psychrometric constant [kPa/°C]
//	beta: Bowen's ratio [dimensionless]
//
// Returns:
//
//	saturation deficit factor alpha [dimensionless]
//
// Non-finite when delta is 0 or beta is -1; both propagate as IEEE
// Inf/NaN rather than being guarded.
func Alpha(delta float64, gamma float64, beta float64) float64 {
	return (delta + gamma) / (delta * (1 + beta))
}
