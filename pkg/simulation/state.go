package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
)

// VectorToProto converts a plane point into its wire form.
func VectorToProto(v geometry.Vector2D) *pb.Vector2 {
	return &pb.Vector2{X: v.X, Y: v.Y}
}

// VectorFromProto converts back a wire point. A nil message is the origin.
func VectorFromProto(p *pb.Vector2) geometry.Vector2D {
	return geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
}

// PackColor packs c as 0xRRGGBBAA.
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func UnpackColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// BoidToProto converts a boid into the read-only envelope handed to renderers.
func BoidToProto(b *behavior.Boid) *pb.BoidState {
	s := &pb.BoidState{
		Id:       int32(b.ID()),
		Position: VectorToProto(b.Position()),
		Heading:  b.Heading(),
		Color:    PackColor(b.Color()),
	}
	if trail := b.Trajectory(); len(trail) > 0 {
		s.Trajectory = make([]*pb.Vector2, len(trail))
		for i, p := range trail {
			s.Trajectory[i] = VectorToProto(p)
		}
	}
	return s
}

// ToProto converts the whole flock. A halted flock carries the reason it stopped.
func (f *Flock) ToProto() *pb.FlockSnapshot {
	snap := &pb.FlockSnapshot{
		Tick:  f.tick,
		Bound: f.settings.Bound,
		Boids: make([]*pb.BoidState, len(f.boids)),
	}
	for i, b := range f.boids {
		snap.Boids[i] = BoidToProto(b)
	}
	if f.err != nil {
		snap.Halted = true
		snap.Reason = f.err.Error()
	}
	return snap
}

// SettingsToProto extracts the tunable part of s.
func SettingsToProto(s behavior.Settings) *pb.UpdateSettings {
	return &pb.UpdateSettings{
		GroupingParam:         s.GroupingWeight,
		AverageDirectionParam: s.AlignmentWeight,
		CollisionParam:        s.CollisionParam,
		WallsParam:            s.WallsParam,
		TurnsSmoothness:       s.TurnsSmoothness,
	}
}

// SettingsFromProto applies the tunable values of m on top of base.
func SettingsFromProto(base behavior.Settings, m *pb.UpdateSettings) behavior.Settings {
	base.GroupingWeight = m.GetGroupingParam()
	base.AlignmentWeight = m.GetAverageDirectionParam()
	base.CollisionParam = m.GetCollisionParam()
	base.WallsParam = m.GetWallsParam()
	base.TurnsSmoothness = m.GetTurnsSmoothness()
	return base
}
