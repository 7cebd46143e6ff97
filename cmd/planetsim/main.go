package main

import (
	"flag"
	"fmt"
	"time"

	planetsim "github.com/bileshg/PlanetSimulation"
)

// NOTE: This tool runs the reference inner solar system scenario headless: no
// window, just status logs and an optional CSV export of every state.

/* === CONFIG === */
var (
	days     int
	timeStep float64
	asCSV    bool
	name     string
)

/* ===  END  === */

func init() {
	flag.IntVar(&days, "days", 365, "number of simulated days to propagate")
	flag.Float64Var(&timeStep, "dt", planetsim.Day, "step size in seconds")
	flag.BoolVar(&asCSV, "csv", false, "export every state to a CSV file")
	flag.StringVar(&name, "name", "innersol", "base name of the export files")
}

func main() {
	flag.Parse()
	system := planetsim.NewInnerSolarSystem()
	conf := planetsim.ExportConfig{Filename: name, AsCSV: asCSV, Timestamp: false}
	system.PropagateFor(time.Duration(days)*24*time.Hour, timeStep, conf)
	for _, planet := range system.Planets {
		fmt.Printf("%s\ttrail=%d points\n", planet, len(planet.Trail()))
	}
}
