package priestleytaylor

import (
	"bytes"
	"strconv"
)

// CSV output of the forcing series plus the computed PET column (present
// only after CalcPET has run).
func (df *ForcingData) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("date")
	buf.WriteString(",air_T")
	buf.WriteString(",fuel_T")
	buf.WriteString(",RH")
	buf.WriteString(",fuel_moist")
	buf.WriteString(",Rs")
	buf.WriteString(",Ra")
	if df.PET != nil {
		buf.WriteString(",PET")
	}
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(df.Date); i++ {
		buf.WriteString(df.Date[i].Format(DateTimeLayout))
		writeFloat(df.AirT[i])
		writeFloat(df.FuelT[i])
		writeFloat(df.RH[i])
		writeFloat(df.FuelMoist[i])
		writeFloat(df.Rs[i])
		writeFloat(df.Ra[i])
		if df.PET != nil {
			writeFloat(df.PET[i])
		}
		buf.WriteString("\n")
	}
}
