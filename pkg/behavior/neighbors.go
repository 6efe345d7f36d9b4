package behavior

import "github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"

// View is what a boid perceives of all the other boids during a tick.
// The three slices are indexed identically and never include the boid itself.
type View struct {
	Distances []float64
	Positions []geometry.Vector2D
	Headings  []float64
}

func (v View) Len() int { return len(v.Distances) }

// Nearest returns the k boids with the smallest distances, closest first.
// Selection is partial (a bounded insertion buffer, no full sort). Equal
// distances keep their view order, so the closest boid on a tie is the one
// with the lowest index.
func (v View) Nearest(k int) View {
	n := v.Len()
	if k > n {
		k = n
	}
	if k <= 0 {
		return View{}
	}

	idx := make([]int, 0, k)
	for i, d := range v.Distances {
		if len(idx) == k && d >= v.Distances[idx[k-1]] {
			continue
		}
		pos := len(idx)
		for pos > 0 && v.Distances[idx[pos-1]] > d {
			pos--
		}
		if len(idx) < k {
			idx = append(idx, 0)
		}
		copy(idx[pos+1:], idx[pos:len(idx)-1])
		idx[pos] = i
	}

	out := View{
		Distances: make([]float64, k),
		Positions: make([]geometry.Vector2D, k),
		Headings:  make([]float64, k),
	}
	for j, i := range idx {
		out.Distances[j] = v.Distances[i]
		out.Positions[j] = v.Positions[i]
		out.Headings[j] = v.Headings[i]
	}
	return out
}
