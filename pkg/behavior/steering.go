package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

// Steer is a candidate direction with the importance the boid gives to it.
type Steer struct {
	Angle  float64
	Weight float64
}

// Wall directions, pointing away from the left, right, top and bottom walls.
// Screen convention: y grows downward, so leaving the top wall means heading -Pi/2.
var wallAngles = [4]float64{0, math.Pi, -math.Pi / 2, math.Pi / 2}

// estimate returns the seven candidate directions: grouping, alignment,
// collision avoidance and the four walls. near must hold at least one boid
// and starts with the closest one.
func (b *Boid) estimate(near View, s Settings) [7]Steer {
	walls := b.walls(s)
	return [7]Steer{
		b.grouping(near.Positions, s),
		alignment(near.Headings, s),
		b.collision(near.Positions[0], near.Distances[0], s),
		walls[0], walls[1], walls[2], walls[3],
	}
}

// grouping steers towards the centroid of the neighbours.
// There is no pull when the centroid is already within one unit on both axes.
func (b *Boid) grouping(positions []geometry.Vector2D, s Settings) Steer {
	c := geometry.Centroid(positions)
	dx := c.X - b.position.X
	dy := b.position.Y - c.Y
	if math.Abs(dx) <= 1 && math.Abs(dy) <= 1 {
		return Steer{}
	}
	return Steer{Angle: math.Atan2(dy, dx), Weight: s.GroupingWeight}
}

// alignment follows the circular mean of the neighbours headings.
func alignment(headings []float64, s Settings) Steer {
	return Steer{Angle: geometry.CircularMean(headings), Weight: s.AlignmentWeight}
}

// collision flees the closest neighbour. The weight grows exponentially as it gets closer.
func (b *Boid) collision(closest geometry.Vector2D, distance float64, s Settings) Steer {
	toward := b.position.ScreenAngleTo(closest)
	return Steer{
		Angle:  geometry.Opposite(toward),
		Weight: collisionWeight(distance, s.CollisionParam),
	}
}

func collisionWeight(distance, param float64) float64 {
	return math.Exp((10 - distance) * param)
}

// walls returns one repulsion per wall, each growing exponentially as the boid nears that wall.
func (b *Boid) walls(s Settings) [4]Steer {
	distances := [4]float64{
		math.Abs(b.position.X),
		math.Abs(b.position.X - s.Bound),
		math.Abs(b.position.Y),
		math.Abs(b.position.Y - s.Bound),
	}
	var out [4]Steer
	for i, d := range distances {
		out[i] = Steer{
			Angle:  wallAngles[i],
			Weight: math.Exp((s.Bound/25 - d) * s.WallsParam),
		}
	}
	return out
}
