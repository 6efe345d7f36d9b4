package geometry

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi becomes pi", -math.Pi, math.Pi},
		{"full turn", 2 * math.Pi, 0},
		{"three half turns", 3 * math.Pi / 2, -math.Pi / 2},
		{"negative wrap", -3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NormalizeAngle(%v) = %v; want %v", tt.in, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v is outside (-Pi, Pi]", tt.in, got)
			}
		})
	}
}

func TestCircularMean_WrapsAroundPi(t *testing.T) {
	// a linear mean of these two headings would point east (0)
	got := CircularMean([]float64{math.Pi - 0.1, -math.Pi + 0.1})
	if AngularDistance(got, math.Pi) > 1e-9 {
		t.Errorf("CircularMean across the Pi boundary = %v; want Pi", got)
	}
}

func TestCircularMean_OppositeHeadingsStayFinite(t *testing.T) {
	for _, angles := range [][]float64{
		{0, math.Pi},
		{0.5, 0.5 - math.Pi},
		{math.Pi / 2, -math.Pi / 2},
	} {
		got := CircularMean(angles)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("CircularMean(%v) = %v; want a finite angle", angles, got)
		}
	}
	// {0, Pi} with equal weights degenerates onto the +-Pi/2 axis
	got := WeightedCircularMean([]float64{0, math.Pi}, []float64{1, 1})
	if math.IsNaN(got) || math.Abs(math.Abs(got)-math.Pi/2) > 1e-9 {
		t.Errorf("WeightedCircularMean({0, Pi}) = %v; want +-Pi/2", got)
	}
}

func TestWeightedCircularMean(t *testing.T) {
	t.Run("dominant weight wins", func(t *testing.T) {
		got := WeightedCircularMean([]float64{0, math.Pi / 2}, []float64{10, 0})
		if !floatEquals(got, 0) {
			t.Errorf("got %v; want 0", got)
		}
	})

	t.Run("equal weights bisect", func(t *testing.T) {
		got := WeightedCircularMean([]float64{0, math.Pi / 2}, []float64{1, 1})
		if !floatEquals(got, math.Pi/4) {
			t.Errorf("got %v; want Pi/4", got)
		}
	})

	t.Run("scaling weights does not change the direction", func(t *testing.T) {
		angles := []float64{0.3, 2.1, -1.4}
		a := WeightedCircularMean(angles, []float64{0.2, 0.5, 0.3})
		b := WeightedCircularMean(angles, []float64{2, 5, 3})
		if !floatEquals(a, b) {
			t.Errorf("got %v and %v; want equal directions", a, b)
		}
	})

	t.Run("zero total weight", func(t *testing.T) {
		if got := WeightedCircularMean([]float64{1, 2}, []float64{0, 0}); got != 0 {
			t.Errorf("got %v; want 0", got)
		}
	})
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, math.Pi},
		{math.Pi / 2, -math.Pi / 2},
		{-math.Pi / 2, math.Pi / 2},
		{math.Pi, 0},
		{-math.Pi / 4, 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		if got := Opposite(tt.in); !floatEquals(got, tt.want) {
			t.Errorf("Opposite(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngularDistance(t *testing.T) {
	if got := AngularDistance(math.Pi-0.1, -math.Pi+0.1); !floatEquals(got, 0.2) {
		t.Errorf("AngularDistance across Pi = %v; want 0.2", got)
	}
	if got := AngularDistance(0, math.Pi); !floatEquals(got, math.Pi) {
		t.Errorf("AngularDistance(0, Pi) = %v; want Pi", got)
	}
}
