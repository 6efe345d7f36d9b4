package behavior

import "github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"

// Trajectory is a fixed-capacity queue of past positions. Pushing into a full
// trajectory drops the oldest point.
type Trajectory struct {
	points []geometry.Vector2D
	start  int
	size   int
}

func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{points: make([]geometry.Vector2D, capacity)}
}

func (t *Trajectory) Push(p geometry.Vector2D) {
	if len(t.points) == 0 {
		return
	}
	if t.size < len(t.points) {
		t.points[(t.start+t.size)%len(t.points)] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

func (t *Trajectory) Len() int { return t.size }
func (t *Trajectory) Cap() int { return len(t.points) }

// Points returns a copy of the stored positions, oldest first.
func (t *Trajectory) Points() []geometry.Vector2D {
	out := make([]geometry.Vector2D, t.size)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}
