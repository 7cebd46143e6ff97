package planetsim

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _simconfig{}
)

// _simconfig is a "hidden" struct, just use `simConfig`
type _simconfig struct {
	pxPerAU   float64 // Display scale used for trail capping.
	timeStep  float64 // Reference step, in seconds.
	outputDir string
}

// simConfig returns the planetsim configuration. Unlike an ephemeris-backed
// propagator, this core only needs literal initial conditions, so a missing
// `PLANETSIM_CONFIG` directory falls back to the reference defaults instead of
// panicking. A set but unreadable configuration still panics.
func simConfig() _simconfig {
	if cfgLoaded {
		return config
	}
	config = _simconfig{pxPerAU: 120, timeStep: Day, outputDir: "."}
	if confPath := os.Getenv("PLANETSIM_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if viper.IsSet("display.pixels_per_au") {
			config.pxPerAU = viper.GetFloat64("display.pixels_per_au")
		}
		if viper.IsSet("sim.time_step_seconds") {
			config.timeStep = viper.GetFloat64("sim.time_step_seconds")
		}
		if outputDir := viper.GetString("general.output_path"); outputDir != "" {
			config.outputDir = outputDir
		}
	}
	cfgLoaded = true
	return config
}

// DefaultScale returns the configured display scale in pixels per meter, the
// one display-derived value the trail capping needs.
func DefaultScale() float64 {
	return simConfig().pxPerAU / AU
}

// DefaultTimeStep returns the configured step in seconds.
func DefaultTimeStep() float64 {
	return simConfig().timeStep
}
