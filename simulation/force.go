package simulation

import (
	"math"

	"github.com/quartercastle/vector"
)

// Integrator selects how positions and velocities are advanced over a step.
type Integrator int

const (
	IntegratorUndefined Integrator = iota
	// IntegratorFourStage is the four stage scheme the simulation has always
	// used. Its position stages differ from textbook RK4:
	//	k2x = (vel+vel)*dt/2, k3x = (vel+k2)*dt/2, k4x = (vel+k3)*dt
	IntegratorFourStage
	// IntegratorRK4 is classical Runge-Kutta for x' = v, v' = a(x).
	IntegratorRK4
)

func (i Integrator) String() string {
	switch i {
	case IntegratorFourStage:
		return "four-stage"
	case IntegratorRK4:
		return "rk4"
	}
	return "undefined"
}

// ParseIntegrator is the inverse of Integrator.String.
func ParseIntegrator(s string) (Integrator, bool) {
	for _, i := range []Integrator{IntegratorFourStage, IntegratorRK4} {
		if i.String() == s {
			return i, true
		}
	}
	return IntegratorUndefined, false
}

// accelerationFrom calculates the acceleration a point at pos experiences
// from mp. The separation is clamped to at least 1 to avoid singular forces
// at close range.
func (s *Simulation) accelerationFrom(pos vector.Vector, mp MassPoint) vector.Vector {
	delta := mp.Pos.Sub(pos)
	dist := delta.Magnitude()
	if dist == 0 {
		return vector.Vector{0, 0}
	}
	separation := clamp(math.Sqrt(dist), 1, math.Inf(+1))
	accel := s.conf.G * mp.Mass / separation
	return delta.Unit().Scale(accel)
}

// acceleration sums the acceleration at pos from all points. A degenerate sum
// is replaced by zero.
func (s *Simulation) acceleration(pos vector.Vector, points []MassPoint) vector.Vector {
	total := vector.Vector{0, 0}
	for _, mp := range points {
		vector.In(total).Add(s.accelerationFrom(pos, mp))
	}
	if !isFinite(total.X()) || !isFinite(total.Y()) {
		return vector.Vector{0, 0}
	}
	return total
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// integrate returns the position and velocity after dt, with the
// acceleration evaluated against the fixed set of points.
func (s *Simulation) integrate(pos, vel vector.Vector, points []MassPoint, dt float64) (vector.Vector, vector.Vector) {
	if s.conf.Integrator == IntegratorRK4 {
		return s.integrateRK4(pos, vel, points, dt)
	}
	return s.integrateFourStage(pos, vel, points, dt)
}

func (s *Simulation) integrateFourStage(pos, vel vector.Vector, points []MassPoint, dt float64) (vector.Vector, vector.Vector) {
	k1 := s.acceleration(pos, points)
	k2 := s.acceleration(pos.Add(vel.Scale(dt/2)), points)
	k2x := vel.Add(vel).Scale(dt / 2)
	k3 := s.acceleration(pos.Add(k2x.Scale(dt/2)), points)
	k3x := vel.Add(k2).Scale(dt / 2)
	k4 := s.acceleration(pos.Add(k3x.Scale(dt)), points)
	k4x := vel.Add(k3).Scale(dt)

	newVel := vel.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(dt / 6))
	newPos := pos.Add(vel.Add(k2x.Scale(2)).Add(k3x.Scale(2)).Add(k4x).Scale(dt / 6))
	return newPos, newVel
}

func (s *Simulation) integrateRK4(pos, vel vector.Vector, points []MassPoint, dt float64) (vector.Vector, vector.Vector) {
	k1v := s.acceleration(pos, points)
	k1x := vel
	k2v := s.acceleration(pos.Add(k1x.Scale(dt/2)), points)
	k2x := vel.Add(k1v.Scale(dt / 2))
	k3v := s.acceleration(pos.Add(k2x.Scale(dt/2)), points)
	k3x := vel.Add(k2v.Scale(dt / 2))
	k4v := s.acceleration(pos.Add(k3x.Scale(dt)), points)
	k4x := vel.Add(k3v.Scale(dt))

	newVel := vel.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt / 6))
	newPos := pos.Add(k1x.Add(k2x.Scale(2)).Add(k3x.Scale(2)).Add(k4x).Scale(dt / 6))
	return newPos, newVel
}
