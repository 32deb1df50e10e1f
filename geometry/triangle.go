package geometry

import "github.com/golang/geo/r3"

// Triangle is a single, immutable planar facet of a Mesh, expressed in
// the mesh's local frame.
type Triangle struct {
	p0, p1, p2 r3.Vector
	normal     r3.Vector
}

// NewTriangle builds a triangle and precomputes its plane normal.
func NewTriangle(p0, p1, p2 r3.Vector) *Triangle {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	if n := normal.Norm(); n > 1e-12 {
		normal = normal.Mul(1 / n)
	}
	return &Triangle{p0: p0, p1: p1, p2: p2, normal: normal}
}

// Points returns the triangle's three vertices.
func (t *Triangle) Points() []r3.Vector { return []r3.Vector{t.p0, t.p1, t.p2} }

// Normal returns the triangle's unit plane normal.
func (t *Triangle) Normal() r3.Vector { return t.normal }

// Translate returns a copy of t shifted by d, used by the polynomial
// CCD path to displace a mesh's triangles by a translation velocity.
func (t *Triangle) Translate(d r3.Vector) *Triangle {
	return &Triangle{p0: t.p0.Add(d), p1: t.p1.Add(d), p2: t.p2.Add(d), normal: t.normal}
}

// ClosestPointToPoint returns the closest point on t to pt.
func (t *Triangle) ClosestPointToPoint(pt r3.Vector) r3.Vector {
	if closest, inside := t.closestInsidePoint(pt); inside {
		return closest
	}
	best := closestPointOnSegment(t.p0, t.p1, pt)
	bestDist := pt.Sub(best).Norm2()
	if c := closestPointOnSegment(t.p1, t.p2, pt); pt.Sub(c).Norm2() < bestDist {
		best, bestDist = c, pt.Sub(c).Norm2()
	}
	if c := closestPointOnSegment(t.p2, t.p0, pt); pt.Sub(c).Norm2() < bestDist {
		best = c
	}
	return best
}

func (t *Triangle) closestInsidePoint(pt r3.Vector) (r3.Vector, bool) {
	const eps = 1e-9
	e0 := t.p1.Sub(t.p0)
	e1 := t.p2.Sub(t.p0)
	a := e0.Norm2()
	b := e0.Dot(e1)
	c := e1.Norm2()
	d := pt.Sub(t.p0)
	det := a*c - b*b
	if det < eps {
		return t.p0, false
	}
	u := (c*e0.Dot(d) - b*e1.Dot(d)) / det
	v := (-b*e0.Dot(d) + a*e1.Dot(d)) / det
	inside := u >= -eps && u <= 1+eps && v >= -eps && v <= 1+eps && u+v <= 1+eps
	return t.p0.Add(e0.Mul(u)).Add(e1.Mul(v)), inside
}

// AABB returns t's axis-aligned bounding box.
func (t *Triangle) AABB() AABB {
	box := NewAABB(t.p0, t.p0)
	box = box.Expand(t.p1)
	box = box.Expand(t.p2)
	return box
}

// intersectsSAT reports whether t and other overlap, via the
// triangle/triangle separating-axis test (11 candidate axes: each
// triangle's plane normal plus the 9 edge-edge cross products).
func (t *Triangle) intersectsSAT(other *Triangle) bool {
	axes := make([]r3.Vector, 0, 11)
	axes = append(axes, t.normal, other.normal)
	tEdges := []r3.Vector{t.p1.Sub(t.p0), t.p2.Sub(t.p1), t.p0.Sub(t.p2)}
	oEdges := []r3.Vector{other.p1.Sub(other.p0), other.p2.Sub(other.p1), other.p0.Sub(other.p2)}
	for _, e1 := range tEdges {
		for _, e2 := range oEdges {
			axes = append(axes, e1.Cross(e2))
		}
	}
	for _, axis := range axes {
		if axis.Norm2() < 1e-18 {
			continue
		}
		min1, max1 := projectTriangle(t, axis)
		min2, max2 := projectTriangle(other, axis)
		if max1 < min2 || max2 < min1 {
			return false
		}
	}
	return true
}

func projectTriangle(t *Triangle, axis r3.Vector) (min, max float64) {
	pts := t.Points()
	min, max = pts[0].Dot(axis), pts[0].Dot(axis)
	for _, p := range pts[1:] {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
