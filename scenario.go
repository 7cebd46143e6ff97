package planetsim

import "time"

/* Display colors of the reference scenario. */

// ColorSun is yellow.
var ColorSun = Color{255, 255, 0}

// ColorMercury is gray.
var ColorMercury = Color{80, 78, 81}

// ColorVenus is gold.
var ColorVenus = Color{255, 192, 0}

// ColorEarth is cornflower blue.
var ColorEarth = Color{100, 149, 237}

// ColorMars is red.
var ColorMars = Color{188, 39, 50}

// J2000 is the epoch at which the reference scenario starts.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// NewInnerSolarSystem returns the reference scenario: the Sun and the four
// inner planets on the x-axis with alternating signs, each with a purely
// tangential initial velocity. Order-of-magnitude real constants; masses in
// kg, positions in meters, velocities in m/s.
func NewInnerSolarSystem() *System {
	sun := NewCelestialObject("Sun", 16, ColorSun, 1.98892e30, []float64{0, 0}, []float64{0, 0})
	mercury := NewPlanet(sun, "Mercury", 4, ColorMercury, 3.30e23, []float64{0.387 * AU, 0}, []float64{0, 47400})
	venus := NewPlanet(sun, "Venus", 5, ColorVenus, 4.8685e24, []float64{-0.723 * AU, 0}, []float64{0, -35020})
	earth := NewPlanet(sun, "Earth", 5, ColorEarth, 5.9742e24, []float64{1 * AU, 0}, []float64{0, 29783})
	mars := NewPlanet(sun, "Mars", 4, ColorMars, 6.39e23, []float64{-1.524 * AU, 0}, []float64{0, -24077})
	return NewSystem("inner solar system", sun, []*Planet{mercury, venus, earth, mars}, DefaultScale(), J2000)
}
