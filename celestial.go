package planetsim

import (
	"fmt"
	"math"
)

const (
	// AU is one astronomical unit in meters.
	AU = 149.6e9
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G = 6.67428e-11
	// Day is one simulated day in seconds, the reference time step.
	Day = 60 * 60 * 24
)

// Color defines an RGB display category. It is opaque to the physics.
type Color [3]uint8

// CelestialObject defines the mutable state of one point mass.
// Radius and Color are display metadata and never feed into the dynamics.
type CelestialObject struct {
	Name   string
	Radius float64 // Display radius, in pixels
	Color  Color
	mass   float64
	pos    []float64 // R, in meters
	vel    []float64 // V, in m/s
}

// NewCelestialObject returns a new body from its initial position and velocity.
// The mass must be strictly positive and is immutable for the life of the body.
func NewCelestialObject(name string, radius float64, color Color, mass float64, R, V []float64) *CelestialObject {
	if mass <= 0 {
		panic(fmt.Errorf("body %s must have a strictly positive mass (got %f)", name, mass))
	}
	return &CelestialObject{name, radius, color, mass, []float64{R[0], R[1]}, []float64{V[0], V[1]}}
}

// Mass returns the mass (which is unexported because it must not be mutated).
func (c *CelestialObject) Mass() float64 {
	return c.mass
}

// R returns a copy of the current position vector.
func (c *CelestialObject) R() []float64 {
	return []float64{c.pos[0], c.pos[1]}
}

// V returns a copy of the current velocity vector.
func (c *CelestialObject) V() []float64 {
	return []float64{c.vel[0], c.vel[1]}
}

// RV returns copies of the current position and velocity vectors.
func (c *CelestialObject) RV() ([]float64, []float64) {
	return c.R(), c.V()
}

// String implements the Stringer interface.
func (c *CelestialObject) String() string {
	return c.Name + " body"
}

// DistanceTo returns the Euclidean distance to the other body, in meters.
func (c *CelestialObject) DistanceTo(other *CelestialObject) float64 {
	return math.Hypot(other.pos[0]-c.pos[0], other.pos[1]-c.pos[1])
}

// ForceBy returns the gravitational force vector exerted by the other body on
// this one. The distance between the two bodies must be non zero: coincident
// bodies (including self pairing) are an unchecked precondition and yield a
// non-finite result.
func (c *CelestialObject) ForceBy(other *CelestialObject) []float64 {
	dx := other.pos[0] - c.pos[0]
	dy := other.pos[1] - c.pos[1]
	d := math.Hypot(dx, dy)
	f := G * c.mass * other.mass / (d * d)
	sθ, cθ := math.Sincos(math.Atan2(dy, dx))
	return []float64{f * cθ, f * sθ}
}

// TotalForce sums the pairwise forces from every body in the provided list onto
// this one. The body itself is skipped by identity, not by value: two bodies
// with equal numeric state are still distinct entities.
func (c *CelestialObject) TotalForce(bodies []*CelestialObject) []float64 {
	total := []float64{0, 0}
	for _, body := range bodies {
		if body == c {
			continue
		}
		f := c.ForceBy(body)
		total[0] += f[0]
		total[1] += f[1]
	}
	return total
}

// IntegrateStep advances this body by one semi-implicit Euler step: the
// velocity is updated first from the provided net force, then the position is
// updated from the already-updated velocity. This ordering is the contract of
// the propagation and must not change.
func (c *CelestialObject) IntegrateStep(force []float64, dt float64) {
	c.vel[0] += force[0] / c.mass * dt
	c.vel[1] += force[1] / c.mass * dt
	c.pos[0] += c.vel[0] * dt
	c.pos[1] += c.vel[1] * dt
}
