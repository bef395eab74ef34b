package priestleytaylor

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Timestamp layout of the forcing file, e.g. "2018-06-01 10:30".
const DateTimeLayout = "2006-01-02 15:04"

// Reads a forcing series from CSV.
//
// Expected columns (header row required):
//
//	date,air_T,fuel_T,RH,fuel_moist,Rs,Ra
//
// Returns:
//
//	*ForcingData: the parsed series, one row per reference time
func ReadForcingCSV(r io.Reader) (*ForcingData, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	// header
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("forcing CSV: %w", err)
	}

	df := &ForcingData{}
	for line := 2; ; line++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("forcing CSV line %d: %w", line, err)
		}
		if len(row) < 7 {
			return nil, fmt.Errorf("forcing CSV line %d: want 7 columns, got %d", line, len(row))
		}

		date, err := time.Parse(DateTimeLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("forcing CSV line %d: %w", line, err)
		}

		values := [6]float64{}
		for j := 0; j < 6; j++ {
			values[j], err = strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("forcing CSV line %d: %w", line, err)
			}
		}

		df.Date = append(df.Date, date)
		df.AirT = append(df.AirT, values[0])
		df.FuelT = append(df.FuelT, values[1])
		df.RH = append(df.RH, values[2])
		df.FuelMoist = append(df.FuelMoist, values[3])
		df.Rs = append(df.Rs, values[4])
		df.Ra = append(df.Ra, values[5])
	}

	return df, nil
}
