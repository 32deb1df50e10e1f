// Package narrowphase implements the exact contact-determination
// primitives run on a single shape pair: the 2-D polygon clipper, the
// contact-point culler, the line-pair closest-approach solver, and the
// box/box separating-axis solver built on top of them.
package narrowphase

// Vec2 is a point in the reference face's 2-D plane.
type Vec2 [2]float64

// IntersectRectQuad clips the convex quadrilateral p against the
// axis-aligned rectangle centered at the origin with half-extents h,
// via successive Sutherland-Hodgman half-plane clips against x = +-h[0]
// then y = +-h[1]. It returns the intersection polygon, in polygon
// order, and its vertex count (0 to 8).
func IntersectRectQuad(h [2]float64, p [4]Vec2) ([8]Vec2, int) {
	var bufA, bufB [8]Vec2
	// Seed bufA with the input quad; clipping reads from one buffer and
	// writes into the other, swapping after each of the four half-plane
	// passes.
	q := bufA
	copy(q[:4], p[:])
	nq := 4

	r := bufB
	for dir := 0; dir <= 1; dir++ {
		for _, sign := range [2]float64{-1, 1} {
			nr := 0
			for i := 0; i < nq; i++ {
				cur := q[i]
				next := q[(i+1)%nq]
				curIn := sign*cur[dir] < h[dir]
				nextIn := sign*next[dir] < h[dir]
				if curIn {
					r[nr] = cur
					nr++
					if nr == 8 {
						q, r = r, q
						nq = nr
						goto done
					}
				}
				if curIn != nextIn {
					denom := next[dir] - cur[dir]
					var t float64
					if denom != 0 {
						t = (sign*h[dir] - cur[dir]) / denom
					}
					var out Vec2
					out[1-dir] = cur[1-dir] + t*(next[1-dir]-cur[1-dir])
					out[dir] = sign * h[dir]
					r[nr] = out
					nr++
					if nr == 8 {
						q, r = r, q
						nq = nr
						goto done
					}
				}
			}
			q, r = r, q
			nq = nr
			if nq == 0 {
				return q, 0
			}
		}
	}
done:
	return q, nq
}
