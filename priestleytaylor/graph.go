package priestleytaylor

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"
)

//--------------------------------------
// Result presentation
//--------------------------------------

// Labels of the rendered ET chart.
type GraphOptions struct {
	Title  string
	YLabel string
	XLabel string
}

func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		Title:  "Evapotranspiration",
		YLabel: "mm",
		XLabel: "Date",
	}
}

// Presents a computed ET series.
//
// Args:
//
//	dateTime: timestamps of the series
//	et: ET estimates, one per timestamp
//	opt: chart labels (DefaultGraphOptions unless overridden)
//	verbose: render the chart to w when true; dates are returned either way
//	w: chart destination
//
// Returns:
//
//	[]time.Time: the distinct calendar dates of the series, ascending
//
// Timestamps on the same calendar date collapse to a single date; the
// chart plots the mean ET of each date.
func GraphETResults(dateTime []time.Time, et []float64, opt GraphOptions, verbose bool, w io.Writer) []time.Time {
	sum := map[time.Time]float64{}
	count := map[time.Time]int{}
	for i := 0; i < len(dateTime); i++ {
		d := toDate(dateTime[i])
		if i < len(et) {
			sum[d] += et[i]
			count[d]++
		} else if _, ok := count[d]; !ok {
			// timestamp without a value still contributes its date
			count[d] = 0
		}
	}

	dates := make([]time.Time, 0, len(count))
	for d := range count {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	if verbose && w != nil {
		renderChart(w, dates, sum, count, opt)
	}

	return dates
}

// Calendar date of a timestamp.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const chartWidth = 50

func renderChart(w io.Writer, dates []time.Time, sum map[time.Time]float64, count map[time.Time]int, opt GraphOptions) {
	fmt.Fprintf(w, "%s [%s]\n", opt.Title, opt.YLabel)

	// scale bars to the largest finite daily mean
	max := 0.0
	for _, d := range dates {
		if count[d] == 0 {
			continue
		}
		v := sum[d] / float64(count[d])
		if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) > max {
			max = math.Abs(v)
		}
	}

	for _, d := range dates {
		if count[d] == 0 {
			fmt.Fprintf(w, "%s |\n", d.Format("2006-01-02"))
			continue
		}
		v := sum[d] / float64(count[d])
		bar := 0
		if max > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			bar = int(math.Abs(v) / max * chartWidth)
		}
		fmt.Fprintf(w, "%s |", d.Format("2006-01-02"))
		for i := 0; i < bar; i++ {
			fmt.Fprint(w, "*")
		}
		fmt.Fprintf(w, " %.3f\n", v)
	}

	fmt.Fprintf(w, "%*s\n", 10+len(opt.XLabel)/2, opt.XLabel)
}
