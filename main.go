// Priestley–Taylor potential evapotranspiration
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/collinsemmalise/priestleytaylor-go/priestleytaylor"
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Logging level selected by the --log flag; unknown names fall back to ERROR.
func logLevel(name string) logging.LogLevelType {
	switch name {
	case "DEBUG":
		return logging.LevelDebug
	case "INFO":
		return logging.LevelInfo
	case "WARN":
		return logging.LevelWarn
	case "CRITICAL":
		return logging.LevelCritical
	default:
		return logging.LevelError
	}
}

func main() {
	parser := argparse.NewParser("priestleytaylor", "Estimates potential evapotranspiration from meteorological measurements using the Priestley-Taylor (1972) model")

	input := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "Forcing CSV (date,air_T,fuel_T,RH,fuel_moist,Rs,Ra); when omitted a single value is computed from the scalar flags"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when omitted)"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "Site parameter YAML (elevation, albedo, ac, bc); overrides the flags"})

	elevation := parser.Float("", "elevation", &argparse.Options{
		Default: 0.0,
		Help:    "Station elevation [m]"})

	albedo := parser.Float("", "albedo", &argparse.Options{
		Default: 0.2,
		Help:    "Surface albedo [0-1]"})

	ac := parser.Float("", "ac", &argparse.Options{
		Default: priestleytaylor.DefaultAc,
		Help:    "Cloudiness factor coefficient ac"})

	bc := parser.Float("", "bc", &argparse.Options{
		Default: priestleytaylor.DefaultBc,
		Help:    "Cloudiness factor coefficient bc"})

	airT := parser.Float("", "air_t", &argparse.Options{
		Default: 0.0,
		Help:    "Air temperature [°C] (scalar mode)"})

	fuelT := parser.Float("", "fuel_t", &argparse.Options{
		Default: 0.0,
		Help:    "Fuel/surface temperature [°C] (scalar mode)"})

	rh := parser.Float("", "rh", &argparse.Options{
		Default: 0.0,
		Help:    "Relative humidity [%] (scalar mode)"})

	fuelMoist := parser.Float("", "fuel_moist", &argparse.Options{
		Default: 0.0,
		Help:    "Fuel/surface moisture [%] (scalar mode)"})

	rs := parser.Float("", "rs", &argparse.Options{
		Default: 0.0,
		Help:    "Solar radiation [MJ/m²/day] (scalar mode)"})

	ra := parser.Float("", "ra", &argparse.Options{
		Default: 0.0,
		Help:    "Extraterrestrial radiation [MJ/m²/day] (scalar mode)"})

	verbose := parser.Flag("v", "verbose", &argparse.Options{
		Help: "Render a text chart of the daily mean ET to stderr"})

	level := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Logging level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("priestleytaylor")
	logger.SetLevel(logLevel(*level))

	site := priestleytaylor.SiteConfig{
		Elevation: *elevation,
		Albedo:    *albedo,
		Ac:        *ac,
		Bc:        *bc,
	}
	if *configPath != "" {
		site, err = priestleytaylor.LoadSiteConfig(*configPath, site)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		logger.Infof("site config loaded: %s", *configPath)
	}

	// scalar mode
	if *input == "" {
		et := priestleytaylor.PotentialETWithCoefficients(
			*airT, *fuelT, site.Elevation, *rh, *fuelMoist, *rs, *ra,
			site.Albedo, site.Ac, site.Bc)
		fmt.Printf("%g\n", et)
		return
	}

	// series mode
	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	df, err := priestleytaylor.ReadForcingCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Infof("forcing loaded: %s (%d rows)", *input, len(df.Date))

	if err := df.CalcPET(site.Elevation, site.Albedo, site.Ac, site.Bc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if len(df.PET) > 0 {
		logger.Infof("PET summary: n=%d mean=%.4f sd=%.4f min=%.4f max=%.4f [MJ/m²/day]",
			len(df.PET),
			stat.Mean(df.PET, nil), stat.StdDev(df.PET, nil),
			floats.Min(df.PET), floats.Max(df.PET))
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	df.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV saved: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			panic(err)
		}
	}

	if *verbose {
		priestleytaylor.GraphETResults(df.Date, df.PET, priestleytaylor.DefaultGraphOptions(), true, os.Stderr)
	}
}
