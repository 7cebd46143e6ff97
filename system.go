package planetsim

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// statusPeriod is the number of steps between two status log lines during a
// blocking propagation (one year at the reference day step).
const statusPeriod = 365

var wg sync.WaitGroup

/* Handles the n-body propagation. */

// System aggregates one central star and its orbiting planets, and owns the
// per-step update protocol.
type System struct {
	Name    string
	Star    *CelestialObject
	Planets []*Planet
	Epoch   time.Time // Simulated UTC date, advanced by dt at each step.
	scale   float64   // Display scale in pixels per meter, used only for trail capping.
	steps   uint64
	logger  kitlog.Logger
}

// NewSystem returns a new system from its star and planets. The star must not
// appear among the planets and no planet may appear twice.
func NewSystem(name string, star *CelestialObject, planets []*Planet, scale float64, epoch time.Time) *System {
	if star == nil {
		panic(fmt.Errorf("system %s must have a central star", name))
	}
	seen := make(map[*CelestialObject]bool)
	for _, p := range planets {
		if p.CelestialObject == star {
			panic(fmt.Errorf("star %s cannot orbit itself in system %s", star.Name, name))
		}
		if seen[p.CelestialObject] {
			panic(fmt.Errorf("duplicate body %s in system %s", p.Name, name))
		}
		seen[p.CelestialObject] = true
	}
	if epoch.Location() != time.UTC {
		epoch = epoch.UTC()
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "system", name)
	return &System{name, star, planets, epoch, scale, 0, klog}
}

// Bodies returns the full body list, star first then the planets in order.
func (s *System) Bodies() []*CelestialObject {
	bodies := make([]*CelestialObject, 0, len(s.Planets)+1)
	bodies = append(bodies, s.Star)
	for _, p := range s.Planets {
		bodies = append(bodies, p.CelestialObject)
	}
	return bodies
}

// Steps returns the number of steps taken since construction.
func (s *System) Steps() uint64 {
	return s.steps
}

// Advance performs one discrete step of dt seconds.
//
// The star is integrated first, against the planets' pre-step state. Each
// planet then sees the already-updated star and the other planets' pre-step
// positions: all planet forces are computed before any planet moves, so the
// planet order never matters. The star-first coupling replicates the reference
// behavior and is kept deliberately, even though it is not a fully
// simultaneous integration.
func (s *System) Advance(dt float64) {
	members := make([]*CelestialObject, len(s.Planets))
	for i, p := range s.Planets {
		members[i] = p.CelestialObject
	}
	s.Star.IntegrateStep(s.Star.TotalForce(members), dt)

	bodies := s.Bodies()
	forces := make([][]float64, len(s.Planets))
	for i, p := range s.Planets {
		forces[i] = p.TotalForce(bodies)
	}
	for i, p := range s.Planets {
		p.IntegrateStep(forces[i], dt)
		p.refreshTrail(s.scale)
	}
	s.Epoch = s.Epoch.Add(time.Duration(dt * float64(time.Second)))
	s.steps++
}

// Energy returns the total mechanical energy of the system in Joules, the sum
// of each body's kinetic energy and of the pairwise gravitational potentials.
func (s *System) Energy() float64 {
	bodies := s.Bodies()
	var e float64
	for _, b := range bodies {
		v := b.V()
		e += 0.5 * b.mass * dot(v, v)
	}
	for i, b := range bodies {
		for _, other := range bodies[i+1:] {
			e -= G * b.mass * other.mass / b.DistanceTo(other)
		}
	}
	return e
}

// LogStatus logs the current epoch, energy and per-planet distances.
func (s *System) LogStatus() {
	s.logger.Log("level", "info", "subsys", "sim", "date", s.Epoch, "jd", julian.TimeToJD(s.Epoch), "steps", s.steps, "energy(J)", s.Energy())
	for _, p := range s.Planets {
		s.logger.Log("level", "info", "subsys", "sim", "planet", p.Name, "r(AU)", p.distanceToParent/AU, "speed(m/s)", norm(p.V()))
	}
}

// PropagateFor advances the system for the provided simulated duration at a
// fixed step of dt seconds, streaming every state to the exporter when the
// export configuration is not useless. Blocking.
func (s *System) PropagateFor(duration time.Duration, dt float64, conf ExportConfig) {
	var histChan chan (SimState)
	if !conf.IsUseless() {
		histChan = make(chan (SimState), 1000) // a 1k entry buffer
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamStates(conf, histChan)
		}()
		// Write the first data point.
		histChan <- s.state()
	}
	s.LogStatus()
	start := time.Now()
	e0 := s.Energy()
	steps := int(duration.Seconds() / dt)
	for i := 0; i < steps; i++ {
		s.Advance(dt)
		if s.steps%statusPeriod == 0 {
			s.LogStatus()
		}
		if histChan != nil {
			histChan <- s.state()
		}
	}
	if histChan != nil {
		close(histChan)
	}
	s.logger.Log("level", "notice", "subsys", "sim", "status", "finished", "steps", steps, "duration", time.Since(start).String(), "ΔE(J)", math.Abs(s.Energy()-e0))
	s.LogStatus()
	wg.Wait() // Don't return until we're done writing all the files.
}

// state snapshots the current epoch and body states for the exporter.
func (s *System) state() SimState {
	bodies := s.Bodies()
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		R, V := b.RV()
		states[i] = BodyState{b.Name, R, V}
	}
	return SimState{s.Epoch, states}
}
