package planetsim

import (
	"fmt"
)

// minTrailPoints is the number of trail entries always retained, matching the
// renderer rule of only drawing a trail once at least three points exist.
const minTrailPoints = 2

// Planet is a CelestialObject orbiting a parent body. It tracks the distance
// to its parent and a bounded trail of past positions for rendering.
type Planet struct {
	*CelestialObject
	parent           *CelestialObject // Non-owning, the parent must outlive the planet.
	distanceToParent float64
	trail            [][]float64 // Past positions, oldest first.
}

// NewPlanet returns a new planet orbiting the provided parent.
func NewPlanet(parent *CelestialObject, name string, radius float64, color Color, mass float64, R, V []float64) *Planet {
	if parent == nil {
		panic(fmt.Errorf("planet %s must have a parent body", name))
	}
	p := &Planet{NewCelestialObject(name, radius, color, mass, R, V), parent, 0, nil}
	p.distanceToParent = p.DistanceTo(parent)
	return p
}

// Parent returns the body this planet orbits.
func (p *Planet) Parent() *CelestialObject {
	return p.parent
}

// DistanceToParent returns the distance to the parent body as of the latest
// step, in meters.
func (p *Planet) DistanceToParent() float64 {
	return p.distanceToParent
}

// Trail returns the past positions of this planet, oldest first. The returned
// slice is a live view for the renderer and must not be mutated.
func (p *Planet) Trail() [][]float64 {
	return p.trail
}

// String implements the Stringer interface.
func (p *Planet) String() string {
	return fmt.Sprintf("%s@%.4fAU", p.Name, p.distanceToParent/AU)
}

// refreshTrail runs the per-step trail protocol: recompute the distance to the
// parent, append the current position, then truncate the trail from the front
// to at most floor(distance*scale) entries. Trails of minTrailPoints or fewer
// entries are never truncated, whatever the scale.
func (p *Planet) refreshTrail(scale float64) {
	p.distanceToParent = p.DistanceTo(p.parent)
	p.trail = append(p.trail, p.R())
	limit := int(p.distanceToParent * scale)
	if limit < minTrailPoints {
		limit = minTrailPoints
	}
	if len(p.trail) > limit {
		p.trail = p.trail[len(p.trail)-limit:]
	}
}
