package priestleytaylor

import (
	"fmt"
	"time"
)

// Forcing time series for a PET run. One row per reference time.
type ForcingData struct {
	Date []time.Time //1. reference time

	AirT      []float64 //2. air temperature [°C]
	FuelT     []float64 //3. fuel/surface temperature [°C]
	RH        []float64 //4. relative humidity [%]
	FuelMoist []float64 //5. fuel/surface moisture [%]
	Rs        []float64 //6. solar radiation [MJ/m²/day]
	Ra        []float64 //7. extraterrestrial radiation [MJ/m²/day]

	PET []float64 // computed potential evapotranspiration [MJ/m²/day]
}

// Checks that every forcing column has one value per reference time.
// Returns the first mismatch as an error; no partial computation happens
// on mismatched shapes.
func (df *ForcingData) Validate() error {
	n := len(df.Date)
	columns := []struct {
		name string
		rows int
	}{
		{"air_T", len(df.AirT)},
		{"fuel_T", len(df.FuelT)},
		{"RH", len(df.RH)},
		{"fuel_moist", len(df.FuelMoist)},
		{"Rs", len(df.Rs)},
		{"Ra", len(df.Ra)},
	}
	for _, c := range columns {
		if c.rows != n {
			return fmt.Errorf("shape mismatch: column %s has %d rows, want %d", c.name, c.rows, n)
		}
	}
	return nil
}

// Computes the PET column for every row of the forcing series.
//
// Args:
//
//	elevation: station elevation [m]
//	albedo: surface reflectivity [0-1]
//	ac, bc: cloudiness coefficients (DefaultAc, DefaultBc unless overridden)
//
// Every row is independent; arithmetic singularities in a row produce a
// non-finite value at that position only.
func (df *ForcingData) CalcPET(elevation float64, albedo float64, ac float64, bc float64) error {
	if err := df.Validate(); err != nil {
		return err
	}

	df.PET = make([]float64, len(df.Date))
	for i := 0; i < len(df.Date); i++ {
		df.PET[i] = PotentialETWithCoefficients(
			df.AirT[i], df.FuelT[i], elevation,
			df.RH[i], df.FuelMoist[i],
			df.Rs[i], df.Ra[i], albedo, ac, bc)
	}

	return nil
}
