package simulation

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Width and Height of the simulated field, which spans from (0, 0) to
	// (Width, Height). Bodies outside of it are not moved.
	Width, Height float64
	// Theta is the opening angle of the Barnes-Hut approximation: a region is
	// treated as a single mass if its average side length divided by its
	// distance is below Theta. Lower values are more precise and slower.
	Theta float64
	// G is the gravitational constant.
	G float64
	// Parallelization is the number of goroutines updating bodies in
	// parallel. 1 updates all bodies sequentially.
	Parallelization int
	// MaxTreeDepth bounds quadtree splitting, see quadtree.Config.
	MaxTreeDepth int
	Integrator   Integrator
}

var DefaultConfig = Config{
	Theta:           1.2,
	G:               1e-6,
	Parallelization: runtime.NumCPU(),
	MaxTreeDepth:    quadtree.DefaultConfig.MaxDepth,
	Integrator:      IntegratorFourStage,
}

// Simulation advances bodies under their mutual gravity using the Barnes-Hut
// approximation. It holds no state between steps.
type Simulation struct {
	conf Config
}

// NewSimulation applies defaults for all zero values of conf. The field
// dimensions have no default and must be positive.
func NewSimulation(conf Config) (*Simulation, error) {
	s := &Simulation{}
	if err := s.ApplyConfig(conf); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) ApplyConfig(conf Config) error {
	if conf.Width <= 0 || conf.Height <= 0 {
		return errors.Errorf("field dimensions must be positive, got %vx%v", conf.Width, conf.Height)
	}
	if conf.Theta == 0.0 {
		conf.Theta = DefaultConfig.Theta
	}
	if conf.G == 0.0 {
		conf.G = DefaultConfig.G
	}
	if conf.Parallelization <= 0 {
		conf.Parallelization = DefaultConfig.Parallelization
	}
	if conf.MaxTreeDepth <= 0 {
		conf.MaxTreeDepth = DefaultConfig.MaxTreeDepth
	}
	if conf.Integrator == IntegratorUndefined {
		conf.Integrator = DefaultConfig.Integrator
	}
	s.conf = conf
	return nil
}

func (s *Simulation) Config() Config {
	return s.conf
}

type Stats struct {
	Iterations int
	TotalTime  time.Duration
	// OutOfBounds counts the bodies skipped over all iterations.
	OutOfBounds int
}

// Step advances all bodies by dt and returns the regions of the quadtree
// built for it. Bodies outside of the field are left untouched.
func (s *Simulation) Step(bodies []Body, dt float64) map[quadtree.Path]quadtree.Rect {
	regions, _ := s.step(bodies, dt)
	return regions
}

func (s *Simulation) step(bodies []Body, dt float64) (map[quadtree.Path]quadtree.Rect, int) {
	startTime := time.Now()
	qt := quadtree.NewQuadTree[Body](&quadtree.Config{MaxDepth: s.conf.MaxTreeDepth}, s.conf.Width, s.conf.Height)
	inserted := make([]Body, 0, len(bodies))
	for _, b := range bodies {
		if qt.Insert(b) {
			inserted = append(inserted, b)
		}
	}
	outOfBounds := len(bodies) - len(inserted)
	if outOfBounds > 0 {
		log.Debug().Msgf("%d of %d bodies outside of field %vx%v, skipped", outOfBounds, len(bodies), s.conf.Width, s.conf.Height)
	}

	centres := CalculateMasses(qt)
	s.forEachBody(inserted, func(b Body) {
		s.updateBody(qt, centres, b, dt)
	})

	regions := qt.Regions()
	instrumentStep(time.Since(startTime), len(inserted), outOfBounds, len(regions))
	return regions, outOfBounds
}

// Run performs steps iterations of Step, or less if ctx is done before. It
// returns the regions of the last step.
func (s *Simulation) Run(ctx context.Context, bodies []Body, dt float64, steps int) (map[quadtree.Path]quadtree.Rect, Stats) {
	startTime := time.Now()
	stats := Stats{}
	var regions map[quadtree.Path]quadtree.Rect
simulation:
	for stats.Iterations < steps {
		select {
		case <-ctx.Done():
			log.Warn().Msgf("simulation cancelled after %d of %d steps: %v", stats.Iterations, steps, ctx.Err())
			break simulation
		default:
			// continue looping
		}
		var outOfBounds int
		regions, outOfBounds = s.step(bodies, dt)
		stats.OutOfBounds += outOfBounds
		stats.Iterations += 1
	}
	stats.TotalTime = time.Since(startTime)
	return regions, stats
}

// admits returns the opening angle criterion for a body at pos.
func (s *Simulation) admits(pos vector.Vector) func(quadtree.Rect) bool {
	return func(region quadtree.Rect) bool {
		avgWidth := (region.Height + region.Width) / 2
		dist := region.Center().Sub(pos).Magnitude()
		return avgWidth/dist < s.conf.Theta
	}
}

func (s *Simulation) updateBody(qt *quadtree.QuadTree[Body], centres CentresOfMass, b Body, dt float64) {
	pos := b.Position()
	fitting := qt.PathsFitting(s.admits(pos))
	// sorted, so that summation order and thus the result is reproducible
	paths := make([]quadtree.Path, 0, len(fitting))
	for path := range fitting {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	points := make([]MassPoint, 0, len(paths))
	for _, path := range paths {
		mp, ok := centres[path]
		if !ok {
			continue // empty leaf
		}
		points = mp.appendExcluding(points, b)
	}
	newPos, newVel := s.integrate(pos, b.Velocity(), points, dt)
	b.SetPosition(newPos)
	b.SetVelocity(newVel)
}

// forEachBody calls fn for every body, split into s.conf.Parallelization
// chunks running in parallel.
func (s *Simulation) forEachBody(bodies []Body, fn func(Body)) {
	p := s.conf.Parallelization
	if p > len(bodies) {
		p = len(bodies)
	}
	if p <= 1 {
		for _, b := range bodies {
			fn(b)
		}
		return
	}
	total := len(bodies)
	g := errgroup.Group{}
	g.SetLimit(p)
	for i := 0; i < p; i++ {
		chunk := bodies[i*total/p : (i+1)*total/p]
		g.Go(func() error {
			for _, b := range chunk {
				fn(b)
			}
			return nil
		})
	}
	_ = g.Wait()
}
