package behavior

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// This boid does not carry a velocity: it owns a position and a heading, and
// moves exactly one unit per tick in the direction it decided to take.
// Renderers read it through ID, Position, Heading, Color and Trajectory.
type Boid struct {
	id         int
	position   geometry.Vector2D
	heading    float64
	color      color.RGBA
	trajectory *Trajectory
}

// Settings controls the rules followed by every boid.
// It is passed into Decide and Update so that a single value drives the whole flock.
type Settings struct {
	Bound                float64 // side of the square world [0, Bound]²
	NeighboursConsidered int     // K closest boids taken into account
	GroupingWeight       float64 // weight of the pull towards the neighbours centroid
	AlignmentWeight      float64 // weight of the neighbours mean heading
	CollisionParam       float64 // exponent factor of the closest-neighbour repulsion
	WallsParam           float64 // exponent factor of the wall repulsion
	TurnsSmoothness      float64 // weight of the old heading, in [0, 1[
}

// DefaultSettings returns the reference tuning of the flock.
func DefaultSettings() Settings {
	return Settings{
		Bound:                600,
		NeighboursConsidered: 3,
		GroupingWeight:       1,
		AlignmentWeight:      0.2,
		CollisionParam:       0.2,
		WallsParam:           0.1,
		TurnsSmoothness:      0.8,
	}
}

// New creates a boid at position with the given heading.
func New(id int, position geometry.Vector2D, heading float64) *Boid {
	return &Boid{
		id:       id,
		position: position,
		heading:  geometry.NormalizeAngle(heading),
		color:    color.RGBA{A: 255},
	}
}

// Random creates a boid with a uniformly random position inside [0, bound]²
// and a uniformly random heading in ]-Pi, Pi].
func Random(id int, bound float64, rng *rand.Rand) *Boid {
	position := geometry.Vector2D{
		X: rng.Float64() * bound,
		Y: rng.Float64() * bound,
	}
	heading := math.Pi - 2*math.Pi*rng.Float64()
	return New(id, position, heading)
}

// SetColor changes the identity color drawn by renderers.
func (b *Boid) SetColor(c color.RGBA) {
	b.color = c
}

// TrackTrajectory keeps the last capacity positions of the boid. A capacity of 0 disables tracking.
func (b *Boid) TrackTrajectory(capacity int) {
	if capacity <= 0 {
		b.trajectory = nil
		return
	}
	b.trajectory = NewTrajectory(capacity)
}

func (b *Boid) ID() int                     { return b.id }
func (b *Boid) Position() geometry.Vector2D { return b.position }
func (b *Boid) Heading() float64            { return b.heading }
func (b *Boid) Color() color.RGBA           { return b.color }

// Trajectory returns a copy of the recorded positions, oldest first, or nil when tracking is off.
func (b *Boid) Trajectory() []geometry.Vector2D {
	if b.trajectory == nil {
		return nil
	}
	return b.trajectory.Points()
}

// IsFinite reports whether the state of the boid is usable (no NaN nor Inf).
func (b *Boid) IsFinite() bool {
	return b.position.IsFinite() && !math.IsNaN(b.heading) && !math.IsInf(b.heading, 0)
}

// Decide returns the ideal heading of the boid given a view of all the other boids.
// It has no side effect. The view must not be empty.
func (b *Boid) Decide(view View, s Settings) float64 {
	if view.Len() == 0 {
		panic("behavior: Decide called with an empty neighbour view")
	}
	steers := b.estimate(view.Nearest(s.NeighboursConsidered), s)

	// Shrink the weights when they add up above 1, never amplify them
	total := 0.0
	for _, st := range steers {
		total += st.Weight
	}
	total = math.Max(total, 1)

	angles := make([]float64, len(steers))
	weights := make([]float64, len(steers))
	for i, st := range steers {
		angles[i] = st.Angle
		weights[i] = st.Weight / total
	}
	return geometry.WeightedCircularMean(angles, weights)
}

// Update turns the boid towards its ideal heading, moves it one step and keeps it inside the world.
// It is the only method mutating the boid and must be called once per tick.
func (b *Boid) Update(view View, s Settings) {
	ideal := b.Decide(view, s)
	b.heading = smoothTurn(b.heading, ideal, s.TurnsSmoothness)
	b.position = b.position.Step(b.heading, 1).Clamp(0, s.Bound)
	if b.trajectory != nil {
		b.trajectory.Push(b.position)
	}
}

// smoothTurn blends the current heading with the ideal one, smoothness being the weight of the current heading.
func smoothTurn(current, ideal, smoothness float64) float64 {
	return geometry.WeightedCircularMean(
		[]float64{ideal, current},
		[]float64{1 - smoothness, smoothness},
	)
}
