package planetsim

import (
	"os"
	"testing"

	"github.com/gonum/floats"
)

func TestConfigDefaults(t *testing.T) {
	os.Unsetenv("PLANETSIM_CONFIG")
	cfgLoaded = false
	c := simConfig()
	if c.pxPerAU != 120 {
		t.Fatalf("invalid default display scale: %f", c.pxPerAU)
	}
	if c.timeStep != Day {
		t.Fatalf("invalid default time step: %f", c.timeStep)
	}
	if c.outputDir != "." {
		t.Fatalf("invalid default output dir: %s", c.outputDir)
	}
	if !floats.EqualWithinAbs(DefaultScale(), 120/AU, 1e-21) {
		t.Fatalf("invalid default scale: %g", DefaultScale())
	}
	if DefaultTimeStep() != Day {
		t.Fatalf("invalid default step: %f", DefaultTimeStep())
	}
}

func TestConfigOverride(t *testing.T) {
	cfgLoaded = true
	config = _simconfig{pxPerAU: 60, timeStep: Day / 2, outputDir: "/tmp"}
	defer func() { cfgLoaded = false }()
	if !floats.EqualWithinAbs(DefaultScale(), 60/AU, 1e-21) {
		t.Fatalf("invalid overridden scale: %g", DefaultScale())
	}
	if DefaultTimeStep() != Day/2 {
		t.Fatalf("invalid overridden step: %f", DefaultTimeStep())
	}
}
