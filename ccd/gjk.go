package ccd

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/collide/geometry"
)

// boxSupportShape is the minimal surface the GJK oracle needs from a
// box: its own support-point query in a world-space direction.
type boxSupportShape interface {
	support(d r3.Vector) r3.Vector
}

// boxHandle adapts a *geometry.Box to boxSupportShape by re-deriving
// its world-space vertices from pose and half-extent, the same
// per-axis sign selection the teacher's gjkBoxSupport uses.
type boxHandle struct {
	pose     [3]r3.Vector // world axes (rotation columns)
	center   r3.Vector
	halfSize [3]float64
}

func newBoxHandle(b *geometry.Box) boxHandle {
	rm := b.Pose().Linear()
	sides := b.Sides()
	return boxHandle{
		pose:     [3]r3.Vector{rm.Col(0), rm.Col(1), rm.Col(2)},
		center:   b.Pose().Translation(),
		halfSize: [3]float64{sides.X / 2, sides.Y / 2, sides.Z / 2},
	}
}

func (h boxHandle) support(d r3.Vector) r3.Vector {
	result := h.center
	for i := 0; i < 3; i++ {
		axis := h.pose[i]
		if d.Dot(axis) >= 0 {
			result = result.Add(axis.Mul(h.halfSize[i]))
		} else {
			result = result.Sub(axis.Mul(h.halfSize[i]))
		}
	}
	return result
}

// gjkMinkowskiSupport returns support_A(d) - support_B(-d), a support
// point of the Minkowski difference A - B in direction d.
func gjkMinkowskiSupport(a, b boxSupportShape, d r3.Vector) r3.Vector {
	return a.support(d).Sub(b.support(d.Mul(-1)))
}

// gjkClosestOnSegment returns the closest point on segment [a,b] to
// the origin, along with the reduced simplex.
func gjkClosestOnSegment(a, b r3.Vector) (r3.Vector, []r3.Vector) {
	ab := b.Sub(a)
	denom := ab.Norm2()
	if denom < 1e-30 {
		return a, []r3.Vector{a}
	}
	t := a.Mul(-1).Dot(ab) / denom
	if t <= 0 {
		return a, []r3.Vector{a}
	}
	if t >= 1 {
		return b, []r3.Vector{b}
	}
	return a.Add(ab.Mul(t)), []r3.Vector{a, b}
}

// gjkClosestOnTriangle returns the closest point on triangle [a,b,c] to
// the origin, via Ericson's Voronoi-region method.
func gjkClosestOnTriangle(a, b, c r3.Vector) (r3.Vector, []r3.Vector) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	d1 := ab.Dot(ao)
	d2 := ac.Dot(ao)
	if d1 <= 0 && d2 <= 0 {
		return a, []r3.Vector{a}
	}

	bo := b.Mul(-1)
	d3 := ab.Dot(bo)
	d4 := ac.Dot(bo)
	if d3 >= 0 && d4 <= d3 {
		return b, []r3.Vector{b}
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v)), []r3.Vector{a, b}
	}

	co := c.Mul(-1)
	d5 := ab.Dot(co)
	d6 := ac.Dot(co)
	if d6 >= 0 && d5 <= d6 {
		return c, []r3.Vector{c}
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w)), []r3.Vector{a, c}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w)), []r3.Vector{b, c}
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w)), []r3.Vector{a, b, c}
}

// gjkOriginInTetrahedron reports whether the origin lies inside the
// tetrahedron pts, by checking it is on the interior side of every face.
func gjkOriginInTetrahedron(pts []r3.Vector) bool {
	type face struct{ v0, v1, v2, opp int }
	faces := [4]face{
		{0, 1, 2, 3},
		{0, 1, 3, 2},
		{0, 2, 3, 1},
		{1, 2, 3, 0},
	}
	for _, f := range faces {
		p0, p1, p2 := pts[f.v0], pts[f.v1], pts[f.v2]
		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		dOrigin := normal.Dot(p0.Mul(-1))
		dOpp := normal.Dot(pts[f.opp].Sub(p0))
		if dOrigin*dOpp < 0 {
			return false
		}
	}
	return true
}

// gjkClosestOnTetrahedron returns the closest point on tetrahedron pts
// to the origin, or the zero vector if the origin is inside it.
func gjkClosestOnTetrahedron(pts []r3.Vector) (r3.Vector, []r3.Vector) {
	if gjkOriginInTetrahedron(pts) {
		return r3.Vector{}, pts
	}
	faces := [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	bestDist := math.Inf(1)
	var bestV r3.Vector
	var bestS []r3.Vector
	for _, f := range faces {
		v, s := gjkClosestOnTriangle(pts[f[0]], pts[f[1]], pts[f[2]])
		if d := v.Norm2(); d < bestDist {
			bestDist = d
			bestV = v
			bestS = s
		}
	}
	return bestV, bestS
}

// boxVsBoxGJKDistanceSeeded computes the Euclidean distance between two
// boxes via GJK, seeded with initialDir; returns 0 for overlapping
// boxes. This is the ConservativeAdvancement distance oracle for
// gjk_solver_type Indep and, since no external libccd binding exists in
// this module, for LibCCD as well.
func boxVsBoxGJKDistanceSeeded(a, b *geometry.Box, initialDir r3.Vector) float64 {
	ha, hb := newBoxHandle(a), newBoxHandle(b)
	d := initialDir
	if d.Norm2() < 1e-20 {
		d = r3.Vector{X: 1}
	}

	w := gjkMinkowskiSupport(ha, hb, d)
	simplex := []r3.Vector{w}
	v := w

	const maxIter = 64
	const eps = 1e-10

	for iter := 0; iter < maxIter; iter++ {
		vv := v.Norm2()
		if vv < 1e-20 {
			return 0
		}
		d = v.Mul(-1)
		w = gjkMinkowskiSupport(ha, hb, d)
		if vv-v.Dot(w) <= eps*vv {
			break
		}
		simplex = append(simplex, w)
		switch len(simplex) {
		case 2:
			v, simplex = gjkClosestOnSegment(simplex[0], simplex[1])
		case 3:
			v, simplex = gjkClosestOnTriangle(simplex[0], simplex[1], simplex[2])
		case 4:
			v, simplex = gjkClosestOnTetrahedron(simplex)
		}
	}
	return v.Norm()
}

// boxVsBoxGJKDistance runs the GJK oracle seeded by the naive
// center-to-center direction.
func boxVsBoxGJKDistance(a, b *geometry.Box) float64 {
	return boxVsBoxGJKDistanceSeeded(a, b, b.Pose().Translation().Sub(a.Pose().Translation()))
}

// distanceOracle returns a lower-bound-safe separation distance between
// g1 and g2 for conservative advancement: the box/box pair uses the GJK
// oracle above (selected by gjkSolver, which currently only affects
// which enum value the caller may pass — both resolve to the same
// implementation); every other pair falls back to the Geometry
// facade's own DistanceFrom, since this module doesn't carry a general
// GJK implementation for spheres, points, or meshes.
func distanceOracle(g1, g2 geometry.Geometry, gjkSolver GJKSolverType) (float64, error) {
	if b1, ok := g1.(*geometry.Box); ok {
		if b2, ok := g2.(*geometry.Box); ok {
			return boxVsBoxGJKDistance(b1, b2), nil
		}
	}
	return g1.DistanceFrom(g2)
}
