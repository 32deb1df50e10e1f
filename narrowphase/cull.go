package narrowphase

import (
	"math"

	"go.viam.com/collide/spatial"
)

// CullPoints selects m of the n planar points in p (n in 1..8) that
// span the polygon's centroid fairly, always keeping i0 first. The
// remaining m-1 picks target angles evenly spaced around the centroid
// starting from p[i0]'s angle, choosing at each step whichever
// still-available point lands closest to the target angle, breaking
// ties toward the lower index.
func CullPoints(p []Vec2, n, m, i0 int) []int {
	cx, cy := centroid(p, n)

	angles := make([]float64, n)
	for i := 0; i < n; i++ {
		angles[i] = math.Atan2(p[i][1]-cy, p[i][0]-cx)
	}

	avail := make([]bool, n)
	for i := range avail {
		avail[i] = true
	}
	avail[i0] = false

	iret := make([]int, m)
	iret[0] = i0

	const twoPi = 2 * math.Pi
	for j := 1; j < m; j++ {
		target := float64(j)*(twoPi/float64(m)) + angles[i0]
		if target > math.Pi {
			target -= twoPi
		}
		best := i0
		bestDiff := math.Inf(1)
		for i := 0; i < n; i++ {
			if !avail[i] {
				continue
			}
			diff := math.Abs(angles[i] - target)
			if diff > math.Pi {
				diff = twoPi - diff
			}
			if diff < bestDiff {
				bestDiff = diff
				best = i
			}
		}
		avail[best] = false
		iret[j] = best
	}
	return iret
}

// centroid computes the polygon centroid used to anchor angular
// targets: the point itself for n=1, the midpoint for n=2, and the
// area-weighted centroid for n>=3. A near-zero weighted area (a
// degenerate, near-collinear polygon) falls back to a large fixed
// scale so the computation still terminates with a well-defined,
// if arbitrary, centroid.
func centroid(p []Vec2, n int) (cx, cy float64) {
	switch n {
	case 1:
		return p[0][0], p[0][1]
	case 2:
		return 0.5 * (p[0][0] + p[1][0]), 0.5 * (p[0][1] + p[1][1])
	default:
		var a float64
		for i := 0; i < n-1; i++ {
			q := p[i][0]*p[i+1][1] - p[i+1][0]*p[i][1]
			a += q
			cx += q * (p[i][0] + p[i+1][0])
			cy += q * (p[i][1] + p[i+1][1])
		}
		q := p[n-1][0]*p[0][1] - p[0][0]*p[n-1][1]
		var invA float64
		if math.Abs(a+q) > spatial.Epsilon {
			invA = 1 / (3 * (a + q))
		} else {
			invA = 1e18
		}
		cx = invA * (cx + q*(p[n-1][0]+p[0][0]))
		cy = invA * (cy + q*(p[n-1][1]+p[0][1]))
		return cx, cy
	}
}
