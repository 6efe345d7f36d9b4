package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// ErrNonFinite is returned by Step when a boid ends a tick with a NaN or Inf coordinate or heading.
// The flock is halted afterwards and every later Step returns the same error.
var ErrNonFinite = errors.New("non-finite boid state")

// palette holds the identity colors given to boids, cycled by id.
var palette = []color.RGBA{
	{R: 20, G: 20, B: 20, A: 255},
	{R: 200, G: 40, B: 40, A: 255},
	{R: 30, G: 90, B: 200, A: 255},
	{R: 20, G: 140, B: 60, A: 255},
	{R: 150, G: 60, B: 170, A: 255},
	{R: 220, G: 130, B: 0, A: 255},
}

// Flock is the whole population of boids living in the same square world.
// It is not safe for concurrent use: the WorldActor owns it.
type Flock struct {
	boids    []*behavior.Boid
	settings behavior.Settings
	workers  int
	tick     uint64
	err      error
}

// NewFlock places cfg.NumberOfBoids boids uniformly at random in the world.
// A zero cfg.Seed seeds the generator from the clock.
func NewFlock(cfg *Config) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	boids := make([]*behavior.Boid, cfg.NumberOfBoids)
	for i := range boids {
		b := behavior.Random(i, cfg.Limits, rng)
		b.SetColor(palette[i%len(palette)])
		b.TrackTrajectory(cfg.TrajectoryLength)
		boids[i] = b
	}
	return NewFlockFrom(boids, cfg.Settings(), cfg.Workers), nil
}

// NewFlockFrom builds a flock around already placed boids.
func NewFlockFrom(boids []*behavior.Boid, settings behavior.Settings, workers int) *Flock {
	return &Flock{
		boids:    boids,
		settings: settings,
		workers:  max(1, workers),
	}
}

// Boids gives access to the population. Callers must not mutate it.
func (f *Flock) Boids() []*behavior.Boid { return f.boids }

func (f *Flock) Settings() behavior.Settings { return f.settings }

// Tick is the number of completed steps.
func (f *Flock) Tick() uint64 { return f.tick }

// Err returns the error that halted the flock, if any.
func (f *Flock) Err() error { return f.err }

// Tune replaces the steering weights and the turn smoothness.
// The world bound and the number of neighbours considered are fixed for the life of the flock.
func (f *Flock) Tune(s behavior.Settings) error {
	s.Bound = f.settings.Bound
	s.NeighboursConsidered = f.settings.NeighboursConsidered
	for _, w := range []float64{s.GroupingWeight, s.AlignmentWeight, s.CollisionParam, s.WallsParam} {
		if !(w >= 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: steering weight %v must be a non-negative number", ErrInvalidConfig, w)
		}
	}
	if !(s.TurnsSmoothness >= 0 && s.TurnsSmoothness < 1) {
		return fmt.Errorf("%w: turnsSmoothness must be within [0, 1[, got %v", ErrInvalidConfig, s.TurnsSmoothness)
	}
	f.settings = s
	return nil
}

// Snapshot freezes positions and headings of every boid.
func (f *Flock) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      f.tick,
		Positions: make([]geometry.Vector2D, len(f.boids)),
		Headings:  make([]float64, len(f.boids)),
	}
	for i, b := range f.boids {
		s.Positions[i] = b.Position()
		s.Headings[i] = b.Heading()
	}
	return s
}

// Step advances the flock by one tick. Every boid decides from the same
// snapshot taken before any of them moved, so the update order does not
// matter and the boids are split between the configured workers.
func (f *Flock) Step() error {
	if f.err != nil {
		return f.err
	}
	snap := f.Snapshot()

	var g errgroup.Group
	chunk := (len(f.boids) + f.workers - 1) / f.workers
	for start := 0; start < len(f.boids); start += chunk {
		end := min(start+chunk, len(f.boids))
		g.Go(func() error {
			for i := start; i < end; i++ {
				b := f.boids[i]
				b.Update(snap.View(i), f.settings)
				if !b.IsFinite() {
					return fmt.Errorf("%w: boid %d at tick %d (position %v, heading %v)",
						ErrNonFinite, b.ID(), snap.Tick+1, b.Position(), b.Heading())
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.err = err
		return err
	}
	f.tick++
	return nil
}

// Snapshot is the read-only state of the flock at the beginning of a tick.
type Snapshot struct {
	Tick      uint64
	Positions []geometry.Vector2D
	Headings  []float64
}

func (s Snapshot) Len() int { return len(s.Positions) }

// View is what boid i perceives: every other boid with its distance, in index order.
func (s Snapshot) View(i int) behavior.View {
	n := len(s.Positions) - 1
	v := behavior.View{
		Distances: make([]float64, 0, n),
		Positions: make([]geometry.Vector2D, 0, n),
		Headings:  make([]float64, 0, n),
	}
	me := s.Positions[i]
	for j, p := range s.Positions {
		if j == i {
			continue
		}
		v.Distances = append(v.Distances, me.DistanceTo(p))
		v.Positions = append(v.Positions, p)
		v.Headings = append(v.Headings, s.Headings[j])
	}
	return v
}
