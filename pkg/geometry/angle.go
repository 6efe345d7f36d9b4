package geometry

import "math"

// Circular statistics.
// Angles must never be averaged linearly: the mean of 179° and -179° is 180°, not 0°.
// Every mean below is the direction of the (weighted) sum of unit vectors.

// NormalizeAngle maps any finite angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	n := math.Atan2(math.Sin(a), math.Cos(a))
	if n <= -math.Pi {
		return math.Pi
	}
	return n
}

// CircularMean returns the mean direction of angles, atan2(mean(sin), mean(cos)).
// It returns 0 for an empty slice.
func CircularMean(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	var sinSum, cosSum float64
	for _, a := range angles {
		sinSum += math.Sin(a)
		cosSum += math.Cos(a)
	}
	n := float64(len(angles))
	return NormalizeAngle(math.Atan2(sinSum/n, cosSum/n))
}

// WeightedCircularMean returns atan2(weighted-mean(sin), weighted-mean(cos)).
// angles and weights must have the same length. When the weights sum to zero
// there is no direction to follow and 0 is returned.
func WeightedCircularMean(angles, weights []float64) float64 {
	if len(angles) != len(weights) {
		panic("geometry: angles and weights length mismatch")
	}
	var sinSum, cosSum, total float64
	for i, a := range angles {
		sinSum += weights[i] * math.Sin(a)
		cosSum += weights[i] * math.Cos(a)
		total += weights[i]
	}
	if total == 0 {
		return 0
	}
	return NormalizeAngle(math.Atan2(sinSum/total, cosSum/total))
}

// Opposite returns the direction pointing away from a, in (-Pi, Pi].
func Opposite(a float64) float64 {
	if a <= 0 {
		return a + math.Pi
	}
	return a - math.Pi
}

// AngularDistance returns the absolute difference between two directions, in [0, Pi].
func AngularDistance(a, b float64) float64 {
	return math.Abs(NormalizeAngle(a - b))
}
