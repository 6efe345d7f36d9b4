package simulation

import (
	"image/color"
	"testing"

	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

func TestPackColor(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if got := PackColor(c); got != 0x12345678 {
		t.Errorf("PackColor(%v) = %#x; want 0x12345678", c, got)
	}
	if got := UnpackColor(0x12345678); got != c {
		t.Errorf("UnpackColor(0x12345678) = %v; want %v", got, c)
	}
}

func TestBoidToProto(t *testing.T) {
	b := behavior.New(7, geometry.Vector2D{X: 10, Y: 20}, 1.5)
	b.SetColor(color.RGBA{R: 255, A: 255})

	s := BoidToProto(b)
	if s.GetId() != 7 || s.GetHeading() != 1.5 || s.GetColor() != 0xff0000ff {
		t.Errorf("BoidToProto() = %v", s)
	}
	if VectorFromProto(s.GetPosition()) != b.Position() {
		t.Errorf("position = %v; want %v", s.GetPosition(), b.Position())
	}
	if s.GetTrajectory() != nil {
		t.Errorf("trajectory should be empty when tracking is off, got %v", s.GetTrajectory())
	}

	b.TrackTrajectory(3)
	view := behavior.View{
		Distances: []float64{50},
		Positions: []geometry.Vector2D{{X: 60, Y: 20}},
		Headings:  []float64{0},
	}
	b.Update(view, behavior.DefaultSettings())
	b.Update(view, behavior.DefaultSettings())
	if got := len(BoidToProto(b).GetTrajectory()); got != 2 {
		t.Errorf("len(trajectory) = %d; want 2", got)
	}
}

func TestFlock_ToProto(t *testing.T) {
	f, err := NewFlock(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	_ = f.Step()
	snap := f.ToProto()
	if snap.GetTick() != 1 || snap.GetBound() != f.Settings().Bound || snap.GetHalted() {
		t.Errorf("unexpected snapshot header: tick %d bound %v halted %v", snap.GetTick(), snap.GetBound(), snap.GetHalted())
	}
	if len(snap.GetBoids()) != len(f.Boids()) {
		t.Fatalf("len(Boids) = %d; want %d", len(snap.GetBoids()), len(f.Boids()))
	}
	for i, s := range snap.GetBoids() {
		if VectorFromProto(s.GetPosition()) != f.Boids()[i].Position() {
			t.Errorf("boid %d position mismatch", i)
		}
	}
}

func TestVectorFromProto_Nil(t *testing.T) {
	if got := VectorFromProto(nil); got != (geometry.Vector2D{}) {
		t.Errorf("VectorFromProto(nil) = %v; want origin", got)
	}
}

func TestSettingsFromProto(t *testing.T) {
	base := behavior.DefaultSettings()
	got := SettingsFromProto(base, &pb.UpdateSettings{
		GroupingParam:         0.5,
		AverageDirectionParam: 0.6,
		CollisionParam:        0.7,
		WallsParam:            0.8,
		TurnsSmoothness:       0.3,
	})
	want := base
	want.GroupingWeight, want.AlignmentWeight, want.CollisionParam, want.WallsParam, want.TurnsSmoothness = 0.5, 0.6, 0.7, 0.8, 0.3
	if got != want {
		t.Errorf("SettingsFromProto() = %+v; want %+v", got, want)
	}
	if back := SettingsFromProto(base, SettingsToProto(base)); back != base {
		t.Errorf("SettingsToProto lost values: %+v vs %+v", back, base)
	}
}
