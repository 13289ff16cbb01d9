package simulation

import (
	"github.com/google/uuid"
	"github.com/quartercastle/vector"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
	"golang.org/x/exp/constraints"
)

// Massive is a positioned object with a mass.
type Massive interface {
	quadtree.Positioned
	Mass() float64
}

// Movable is an object whose state is advanced by the simulation.
type Movable interface {
	Velocity() vector.Vector
	SetPosition(vector.Vector)
	SetVelocity(vector.Vector)
}

// Body is what a Simulation operates on. Bodies are compared by identity to
// exclude self interaction, so implementations should be pointer types.
//
//go:generate mockgen -destination body_mock.go -package simulation . Body
type Body interface {
	Massive
	Movable
}

// Particle is the default Body implementation.
type Particle struct {
	ID  string        `json:"id"`
	Pos vector.Vector `json:"pos"`
	Vel vector.Vector `json:"vel,omitempty"`
	M   float64       `json:"mass"`
}

func NewParticle(pos, vel vector.Vector, mass float64) *Particle {
	return &Particle{ID: uuid.NewString(), Pos: pos, Vel: vel, M: mass}
}

func (p *Particle) Position() vector.Vector {
	return orZero(p.Pos)
}

func (p *Particle) Velocity() vector.Vector {
	return orZero(p.Vel)
}

func (p *Particle) Mass() float64 {
	return p.M
}

func (p *Particle) SetPosition(pos vector.Vector) {
	p.Pos = pos
}

func (p *Particle) SetVelocity(vel vector.Vector) {
	p.Vel = vel
}

// Bodies converts particles into the slice type accepted by Simulation.Step.
func Bodies(particles []*Particle) []Body {
	bodies := make([]Body, len(particles))
	for i := range particles {
		bodies[i] = particles[i]
	}
	return bodies
}

func orZero(v vector.Vector) vector.Vector {
	if len(v) < 2 {
		return vector.Vector{0, 0}
	}
	return v
}

func clamp[T constraints.Float](in, lo, hi T) T {
	if in != in { // NaN
		return in
	}
	if in > hi {
		return hi
	} else if in < lo {
		return lo
	}
	return in
}
