package behavior

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

// viewFrom builds the perception of me from the other boids.
func viewFrom(me geometry.Vector2D, positions []geometry.Vector2D, headings []float64) View {
	v := View{
		Distances: make([]float64, len(positions)),
		Positions: positions,
		Headings:  headings,
	}
	for i, p := range positions {
		v.Distances[i] = me.DistanceTo(p)
	}
	return v
}

func TestGrouping_DeadZone(t *testing.T) {
	s := DefaultSettings()
	b := New(0, geometry.Vector2D{X: 100, Y: 100}, 0)

	// centroid is (100.5, 99.5): within one unit on both axes
	got := b.grouping([]geometry.Vector2D{{X: 99, Y: 99}, {X: 102, Y: 100}}, s)
	if got.Angle != 0 || got.Weight != 0 {
		t.Errorf("grouping inside the dead zone = %+v; want {0 0}", got)
	}

	// one axis out of the dead zone is enough to pull
	got = b.grouping([]geometry.Vector2D{{X: 100, Y: 90}}, s)
	if got.Weight != s.GroupingWeight {
		t.Errorf("grouping weight = %v; want %v", got.Weight, s.GroupingWeight)
	}
	if math.Abs(got.Angle-math.Pi/2) > 1e-12 {
		t.Errorf("grouping towards a boid drawn above = %v; want Pi/2", got.Angle)
	}
}

func TestAlignment_UsesCircularMean(t *testing.T) {
	s := DefaultSettings()
	got := alignment([]float64{math.Pi - 0.2, -math.Pi + 0.2}, s)
	if geometry.AngularDistance(got.Angle, math.Pi) > 1e-9 {
		t.Errorf("alignment across the Pi boundary = %v; want Pi", got.Angle)
	}
	if got.Weight != s.AlignmentWeight {
		t.Errorf("alignment weight = %v; want %v", got.Weight, s.AlignmentWeight)
	}
}

func TestCollision_PointsAwayFromClosest(t *testing.T) {
	s := DefaultSettings()
	b := New(0, geometry.Vector2D{X: 50, Y: 50}, 0)

	tests := []struct {
		name    string
		closest geometry.Vector2D
		want    float64
	}{
		{"closest on the right", geometry.Vector2D{X: 60, Y: 50}, math.Pi},
		{"closest on the left", geometry.Vector2D{X: 40, Y: 50}, 0},
		{"closest above", geometry.Vector2D{X: 50, Y: 40}, -math.Pi / 2},
		{"closest below", geometry.Vector2D{X: 50, Y: 60}, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.collision(tt.closest, 10, s)
			if geometry.AngularDistance(got.Angle, tt.want) > 1e-12 {
				t.Errorf("collision angle = %v; want %v", got.Angle, tt.want)
			}
		})
	}
}

func TestCollisionWeight_DecreasesWithDistance(t *testing.T) {
	param := DefaultSettings().CollisionParam
	prev := collisionWeight(0, param)
	for d := 0.5; d <= 200; d += 0.5 {
		w := collisionWeight(d, param)
		if w >= prev {
			t.Fatalf("collisionWeight(%v) = %v is not below collisionWeight(%v) = %v", d, w, d-0.5, prev)
		}
		if w <= 0 {
			t.Fatalf("collisionWeight(%v) = %v; want strictly positive", d, w)
		}
		prev = w
	}
	if got := collisionWeight(10, param); got != 1 {
		t.Errorf("collisionWeight(10) = %v; want 1", got)
	}
}

func TestWalls_SymmetricWhenEquidistant(t *testing.T) {
	s := DefaultSettings()
	b := New(0, geometry.Vector2D{X: s.Bound / 2, Y: s.Bound / 2}, 0)
	w := b.walls(s)
	if w[0].Weight != w[1].Weight {
		t.Errorf("left/right wall weights differ: %v vs %v", w[0].Weight, w[1].Weight)
	}
	if w[2].Weight != w[3].Weight {
		t.Errorf("top/bottom wall weights differ: %v vs %v", w[2].Weight, w[3].Weight)
	}

	near := New(0, geometry.Vector2D{X: 5, Y: s.Bound / 2}, 0).walls(s)
	if near[0].Weight <= near[1].Weight {
		t.Errorf("left wall weight %v should exceed right wall weight %v near the left wall", near[0].Weight, near[1].Weight)
	}
	if near[0].Angle != 0 || near[1].Angle != math.Pi || near[2].Angle != -math.Pi/2 || near[3].Angle != math.Pi/2 {
		t.Errorf("unexpected wall angles %+v", near)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	s := DefaultSettings()
	me := geometry.Vector2D{X: 250, Y: 310}
	positions := []geometry.Vector2D{{X: 240, Y: 300}, {X: 260, Y: 330}, {X: 400, Y: 100}, {X: 251, Y: 309}}
	headings := []float64{0.1, 2.5, -1.2, 3.0}
	view := viewFrom(me, positions, headings)

	a := New(0, me, 1.0)
	b := New(1, me, 1.0)
	first := a.Decide(view, s)
	for i := 0; i < 10; i++ {
		if got := a.Decide(view, s); got != first {
			t.Fatalf("Decide is not deterministic: %v then %v", first, got)
		}
	}
	if got := b.Decide(view, s); got != first {
		t.Errorf("identical boids decided differently: %v vs %v", first, got)
	}
	if a.Position() != me || a.Heading() != 1.0 {
		t.Errorf("Decide mutated the boid: %v %v", a.Position(), a.Heading())
	}
}

func TestDecide_ThreeBoidScenario(t *testing.T) {
	s := DefaultSettings()
	s.Bound = 600
	s.NeighboursConsidered = 2

	me := geometry.Vector2D{X: 0, Y: 0}
	view := viewFrom(me,
		[]geometry.Vector2D{{X: 10, Y: 0}, {X: 400, Y: 400}},
		[]float64{0.7, -2},
	)
	b := New(0, me, -math.Pi/4)

	steers := b.estimate(view.Nearest(s.NeighboursConsidered), s)
	collision := steers[2]
	if collision.Weight <= 0 {
		t.Errorf("collision weight = %v; want > 0", collision.Weight)
	}
	if geometry.AngularDistance(collision.Angle, math.Pi) > 1e-12 {
		t.Errorf("collision angle = %v; want Pi (away from (10, 0))", collision.Angle)
	}
	if steers[3].Weight <= 1 || steers[5].Weight <= 1 {
		t.Errorf("left/top wall weights = %v, %v; want strong repulsion", steers[3].Weight, steers[5].Weight)
	}

	ideal := b.Decide(view, s)
	if math.Cos(ideal) <= 0 || math.Sin(ideal) >= 0 {
		t.Errorf("ideal heading %v should point to positive x and positive screen y", ideal)
	}

	b.Update(view, s)
	if p := b.Position(); p.X <= 0 || p.Y <= 0 {
		t.Errorf("boid should move into the world, got %v", p)
	}
}

func TestUpdate_SmoothingKeepsCloserToOldHeading(t *testing.T) {
	s := DefaultSettings()
	me := geometry.Vector2D{X: 300, Y: 300}
	view := viewFrom(me,
		[]geometry.Vector2D{{X: 320, Y: 310}, {X: 280, Y: 250}, {X: 350, Y: 350}},
		[]float64{0.3, 0.4, 0.5},
	)

	ideal := New(0, me, 0).Decide(view, s)
	old := geometry.NormalizeAngle(ideal + math.Pi)
	b := New(0, me, old)
	b.Update(view, s)

	toOld := geometry.AngularDistance(b.Heading(), old)
	toIdeal := geometry.AngularDistance(b.Heading(), ideal)
	if toOld >= toIdeal {
		t.Errorf("heading %v is closer to the ideal %v than to the old heading %v", b.Heading(), ideal, old)
	}
}

func TestSmoothTurn(t *testing.T) {
	tests := []struct {
		name                      string
		current, ideal, smoothing float64
		want                      float64
	}{
		{"no smoothing snaps", 0, 1, 0, 1},
		{"opposite ideal keeps old", 0, math.Pi, 0.8, 0},
		{"equal blend bisects", 0, math.Pi / 2, 0.5, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothTurn(tt.current, tt.ideal, tt.smoothing)
			if geometry.AngularDistance(got, tt.want) > 1e-9 {
				t.Errorf("smoothTurn(%v, %v, %v) = %v; want %v", tt.current, tt.ideal, tt.smoothing, got, tt.want)
			}
		})
	}
}

func TestUpdate_StaysInsideBounds(t *testing.T) {
	s := DefaultSettings()
	corners := []geometry.Vector2D{{X: 0, Y: 0}, {X: s.Bound, Y: 0}, {X: 0, Y: s.Bound}, {X: s.Bound, Y: s.Bound}}
	for _, c := range corners {
		for _, h := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2, 2.4, -0.7} {
			b := New(0, c, h)
			// a crowd pushing the boid outward
			view := viewFrom(c,
				[]geometry.Vector2D{{X: s.Bound / 2, Y: s.Bound / 2}, {X: s.Bound / 2, Y: s.Bound / 3}, {X: s.Bound / 3, Y: s.Bound / 2}},
				[]float64{h, h, h},
			)
			for i := 0; i < 5; i++ {
				b.Update(view, s)
				p := b.Position()
				if p.X < 0 || p.X > s.Bound || p.Y < 0 || p.Y > s.Bound {
					t.Fatalf("boid left the world: %v (corner %v, heading %v)", p, c, h)
				}
				if !b.IsFinite() || b.Heading() <= -math.Pi || b.Heading() > math.Pi {
					t.Fatalf("invalid heading %v", b.Heading())
				}
			}
		}
	}
}

func TestDecide_PanicsOnEmptyView(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Decide with an empty view should panic")
		}
	}()
	New(0, geometry.Vector2D{}, 0).Decide(View{}, DefaultSettings())
}

func TestRandom_InsideBoundsAndHeadingRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 500; i++ {
		b := Random(i, 600, rng)
		p := b.Position()
		if p.X < 0 || p.X > 600 || p.Y < 0 || p.Y > 600 {
			t.Fatalf("Random boid outside the world: %v", p)
		}
		if h := b.Heading(); h <= -math.Pi || h > math.Pi {
			t.Fatalf("Random heading %v outside ]-Pi, Pi]", h)
		}
		if b.ID() != i {
			t.Fatalf("ID = %d; want %d", b.ID(), i)
		}
	}
}

func BenchmarkDecide(b *testing.B) {
	s := DefaultSettings()
	rng := rand.New(rand.NewPCG(1, 2))
	me := geometry.Vector2D{X: 300, Y: 300}
	positions := make([]geometry.Vector2D, 29)
	headings := make([]float64, 29)
	for i := range positions {
		positions[i] = geometry.Vector2D{X: rng.Float64() * s.Bound, Y: rng.Float64() * s.Bound}
		headings[i] = math.Pi - 2*math.Pi*rng.Float64()
	}
	view := viewFrom(me, positions, headings)
	boid := New(0, me, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		boid.Decide(view, s)
	}
}
