package priestleytaylor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const forcingCSV = `date,air_T,fuel_T,RH,fuel_moist,Rs,Ra
2018-06-01 10:00,22.5,19.0,48.0,35.0,18.2,31.4
2018-06-01 11:00,25.0,25.0,50.0,50.0,20.0,30.0
2018-06-02 10:00,17.3,14.1,72.0,61.0,9.6,0.0
`

func Test_ReadForcingCSV(t *testing.T) {
	df, err := ReadForcingCSV(strings.NewReader(forcingCSV))
	assert.Nil(t, err)
	assert.Nil(t, df.Validate())
	assert.Equal(t, 3, len(df.Date))
	assert.Equal(t, time.Date(2018, time.June, 1, 10, 0, 0, 0, time.UTC), df.Date[0])
	assert.Equal(t, 22.5, df.AirT[0])
	assert.Equal(t, 25.0, df.FuelT[1])
	assert.Equal(t, 72.0, df.RH[2])
	assert.Equal(t, 50.0, df.FuelMoist[1])
	assert.Equal(t, 18.2, df.Rs[0])
	assert.Equal(t, 0.0, df.Ra[2])
}

func Test_ReadForcingCSV_BadValue(t *testing.T) {
	bad := "date,air_T,fuel_T,RH,fuel_moist,Rs,Ra\n2018-06-01 10:00,22.5,x,48.0,35.0,18.2,31.4\n"
	_, err := ReadForcingCSV(strings.NewReader(bad))
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func Test_ReadForcingCSV_BadDate(t *testing.T) {
	bad := "date,air_T,fuel_T,RH,fuel_moist,Rs,Ra\n2018/06/01,22.5,19.0,48.0,35.0,18.2,31.4\n"
	_, err := ReadForcingCSV(strings.NewReader(bad))
	assert.NotNil(t, err)
}
