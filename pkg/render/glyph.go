package render

import (
	"math"

	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

// Boid glyph: an isosceles triangle pointing to the heading, drawn around the boid position.
const (
	apexLength = 2.2506
	wingAngle  = 2.18166 // ±125°
)

// glyph returns the apex and the two base corners of the triangle drawn for a
// boid at center with the given heading, scaled by size.
func glyph(center geometry.Vector2D, heading, size float64) [3]geometry.Vector2D {
	summits := [3]geometry.Vector2D{
		{X: apexLength, Y: 0},
		{X: math.Cos(wingAngle), Y: math.Sin(wingAngle)},
		{X: math.Cos(-wingAngle), Y: math.Sin(-wingAngle)},
	}
	// screen y grows downward: rotating by -heading turns the glyph counterclockwise on screen
	sin, cos := math.Sincos(-heading)
	var out [3]geometry.Vector2D
	for i, s := range summits {
		out[i] = geometry.Vector2D{
			X: center.X + (s.X*cos-s.Y*sin)*size,
			Y: center.Y + (s.X*sin+s.Y*cos)*size,
		}
	}
	return out
}
