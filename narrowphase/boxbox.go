package narrowphase

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/collide/contact"
	"go.viam.com/collide/logging"
	"go.viam.com/collide/options"
	"go.viam.com/collide/spatial"
)

// Result is the outcome of a box/box separating-axis test: the chosen
// axis's code (0 when separated, 1-15 otherwise), the world-space unit
// normal pointing from body 1 toward body 2, the penetration depth
// along it, and the resulting contact manifold.
type Result struct {
	Code     int
	Normal   r3.Vector
	Depth    float64
	Contacts contact.Manifold
}

// BoxBox runs the full 15-axis separating-axis test between two boxes
// given by their full side lengths and world poses, returning at most
// opts.MaxContacts contacts (clamped to [1,8]). Callers must supply
// strictly positive side lengths. opts.Epsilon and opts.FudgeFactor
// tune the edge-axis degeneracy threshold and tie-break bias; a nil
// logger is replaced with a no-op one.
func BoxBox(side1 r3.Vector, pose1 spatial.Pose, side2 r3.Vector, pose2 spatial.Pose, opts options.Options, logger logging.Logger) Result {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	maxc := opts.MaxContacts
	if maxc > 8 {
		maxc = 8
	}
	if maxc < 1 {
		maxc = 1
	}

	r1, r2 := pose1.Linear(), pose2.Linear()
	t1, t2 := pose1.Translation(), pose2.Translation()

	p := t2.Sub(t1)
	pp := r1.Transpose().Apply(p)

	a := side1.Mul(0.5)
	b := side2.Mul(0.5)

	r := r1.Transpose().MulRotation(r2)
	q := r.Abs()

	best := -math.MaxFloat64
	invert := false
	code := 0
	bestColID := -1
	var normalR *spatial.RotationMatrix
	var normalC r3.Vector

	// Axes 1-3: body-1 face normals.
	for i := 0; i < 3; i++ {
		tmp := componentAt(pp, i)
		s2 := math.Abs(tmp) - (q.Row(i).Dot(b) + componentAt(a, i))
		if s2 > 0 {
			return Result{Code: 0}
		}
		if s2 > best {
			best = s2
			bestColID = i
			normalR = r1
			invert = tmp < 0
			code = i + 1
		}
	}

	// Axes 4-6: body-2 face normals.
	for i := 0; i < 3; i++ {
		tmp := r2.Col(i).Dot(p)
		s2 := math.Abs(tmp) - (q.Col(i).Dot(a) + componentAt(b, i))
		if s2 > 0 {
			return Result{Code: 0}
		}
		if s2 > best {
			best = s2
			bestColID = i
			normalR = r2
			invert = tmp < 0
			code = i + 4
		}
	}

	// Inflate |R| to keep the edge-edge tests from being destabilized
	// by axes that are nearly parallel to a face axis already tested.
	const fudge2 = 1e-6
	var qi [9]float64
	for rIdx := 0; rIdx < 3; rIdx++ {
		for cIdx := 0; cIdx < 3; cIdx++ {
			qi[3*rIdx+cIdx] = q.At(rIdx, cIdx) + fudge2
		}
	}
	qf := spatial.NewRotationMatrix(qi)

	eps := opts.Epsilon
	edgeAxes := [9]struct {
		code    int
		axis    r3.Vector
		tmp     float64
		bound   float64
	}{}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			idx := i*3 + j
			var axis r3.Vector
			var tmp, bound float64
			switch i {
			case 0:
				axis = r3.Vector{X: 0, Y: -r.At(2, j), Z: r.At(1, j)}
				tmp = pp.Z*r.At(1, j) - pp.Y*r.At(2, j)
				bound = componentAt(a, 1)*qf.At(2, j) + componentAt(a, 2)*qf.At(1, j) +
					componentAt(b, other1(j))*qf.At(0, other2(j)) + componentAt(b, other2(j))*qf.At(0, other1(j))
			case 1:
				axis = r3.Vector{X: r.At(2, j), Y: 0, Z: -r.At(0, j)}
				tmp = pp.X*r.At(2, j) - pp.Z*r.At(0, j)
				bound = componentAt(a, 0)*qf.At(2, j) + componentAt(a, 2)*qf.At(0, j) +
					componentAt(b, other1(j))*qf.At(1, other2(j)) + componentAt(b, other2(j))*qf.At(1, other1(j))
			default:
				axis = r3.Vector{X: -r.At(1, j), Y: r.At(0, j), Z: 0}
				tmp = pp.Y*r.At(0, j) - pp.X*r.At(1, j)
				bound = componentAt(a, 0)*qf.At(1, j) + componentAt(a, 1)*qf.At(0, j) +
					componentAt(b, other1(j))*qf.At(2, other2(j)) + componentAt(b, other2(j))*qf.At(2, other1(j))
			}
			edgeAxes[idx] = struct {
				code  int
				axis  r3.Vector
				tmp   float64
				bound float64
			}{code: 7 + idx, axis: axis, tmp: tmp, bound: bound}
		}
	}

	for _, e := range edgeAxes {
		s2 := math.Abs(e.tmp) - e.bound
		if s2 > 0 {
			return Result{Code: 0}
		}
		l := e.axis.Norm()
		if l <= eps {
			continue
		}
		s2 /= l
		if s2*opts.FudgeFactor > best {
			best = s2
			bestColID = -1
			normalC = e.axis.Mul(1 / l)
			invert = e.tmp < 0
			code = e.code
		}
	}

	if code == 0 {
		return Result{Code: 0}
	}

	var normal r3.Vector
	if bestColID != -1 {
		normal = normalR.Col(bestColID)
	} else {
		normal = r1.Apply(normalC)
	}
	if invert {
		normal = normal.Mul(-1)
	}
	depth := -best

	if code > 6 {
		return edgeEdgeContact(a, b, r1, r2, t1, t2, normal, depth, code)
	}
	return faceContact(a, b, r1, r2, t1, t2, normal, depth, code, maxc, logger)
}

func componentAt(v r3.Vector, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func other1(j int) int { return (j + 1) % 3 }
func other2(j int) int { return (j + 2) % 3 }

func edgeEdgeContact(a, b r3.Vector, r1, r2 *spatial.RotationMatrix, t1, t2, normal r3.Vector, depth float64, code int) Result {
	pa := t1
	for j := 0; j < 3; j++ {
		sign := 1.0
		if r1.Col(j).Dot(normal) <= 0 {
			sign = -1
		}
		pa = pa.Add(r1.Col(j).Mul(componentAt(a, j) * sign))
	}
	pb := t2
	for j := 0; j < 3; j++ {
		sign := -1.0
		if r2.Col(j).Dot(normal) <= 0 {
			sign = 1
		}
		pb = pb.Add(r2.Col(j).Mul(componentAt(b, j) * sign))
	}

	ua := r1.Col((code - 7) / 3)
	ub := r2.Col((code - 7) % 3)
	alpha, beta := LineClosestApproach(pa, ua, pb, ub)
	pb = pb.Add(ub.Mul(beta))
	_ = alpha // pa's shift is not needed: only the body-2 point is emitted.

	return Result{
		Code:   code,
		Normal: normal,
		Depth:  depth,
		Contacts: contact.Manifold{{
			Normal:   normal,
			Position: pb,
			Depth:    depth,
		}},
	}
}

func faceContact(a, b r3.Vector, r1, r2 *spatial.RotationMatrix, t1, t2, normal r3.Vector, depth float64, code, maxc int, logger logging.Logger) Result {
	var ra, rb *spatial.RotationMatrix
	var pa, pb r3.Vector
	var sa, sb r3.Vector
	if code <= 3 {
		ra, rb, pa, pb, sa, sb = r1, r2, t1, t2, a, b
	} else {
		ra, rb, pa, pb, sa, sb = r2, r1, t2, t1, b, a
	}

	normal2 := normal
	if code > 3 {
		normal2 = normal.Mul(-1)
	}

	nr := rb.Transpose().Apply(normal2)
	anr := r3.Vector{X: math.Abs(nr.X), Y: math.Abs(nr.Y), Z: math.Abs(nr.Z)}

	var lanr, a1, a2 int
	if componentAt(anr, 1) > componentAt(anr, 0) {
		if componentAt(anr, 1) > componentAt(anr, 2) {
			a1, lanr, a2 = 0, 1, 2
		} else {
			a1, a2, lanr = 0, 1, 2
		}
	} else {
		if componentAt(anr, 0) > componentAt(anr, 2) {
			lanr, a1, a2 = 0, 1, 2
		} else {
			a1, a2, lanr = 0, 1, 2
		}
	}

	var center r3.Vector
	if componentAt(nr, lanr) < 0 {
		center = pb.Sub(pa).Add(rb.Col(lanr).Mul(componentAt(sb, lanr)))
	} else {
		center = pb.Sub(pa).Sub(rb.Col(lanr).Mul(componentAt(sb, lanr)))
	}

	codeN := (code - 1) % 3
	var code1, code2 int
	switch codeN {
	case 0:
		code1, code2 = 1, 2
	case 1:
		code1, code2 = 0, 2
	default:
		code1, code2 = 0, 1
	}

	c1 := ra.Col(code1).Dot(center)
	c2 := ra.Col(code2).Dot(center)
	tempRac := ra.Col(code1)
	m11 := rb.Col(a1).Dot(tempRac)
	m12 := rb.Col(a2).Dot(tempRac)
	tempRac = ra.Col(code2)
	m21 := rb.Col(a1).Dot(tempRac)
	m22 := rb.Col(a2).Dot(tempRac)

	k1 := m11 * componentAt(sb, a1)
	k2 := m21 * componentAt(sb, a1)
	k3 := m12 * componentAt(sb, a2)
	k4 := m22 * componentAt(sb, a2)

	quad := [4]Vec2{
		{c1 - k1 - k3, c2 - k2 - k4},
		{c1 - k1 + k3, c2 - k2 + k4},
		{c1 + k1 + k3, c2 + k2 + k4},
		{c1 + k1 - k3, c2 + k2 - k4},
	}

	rect := [2]float64{componentAt(sa, code1), componentAt(sa, code2)}
	ret, nIntersect := IntersectRectQuad(rect, quad)
	if nIntersect < 1 {
		logger.Warnw("degenerate box/box contact manifold: reference-face clip produced no intersection", "code", code)
		return Result{Code: code}
	}

	det1 := 1 / (m11*m22 - m12*m21)
	m11 *= det1
	m12 *= det1
	m21 *= det1
	m22 *= det1

	var points [8]r3.Vector
	var dep [8]float64
	var kept [8]Vec2
	cnum := 0
	for j := 0; j < nIntersect; j++ {
		pk1 := m22*(ret[j][0]-c1) - m12*(ret[j][1]-c2)
		pk2 := -m21*(ret[j][0]-c1) + m11*(ret[j][1]-c2)
		pt := center.Add(rb.Col(a1).Mul(pk1)).Add(rb.Col(a2).Mul(pk2))
		d := componentAt(sa, codeN) - normal2.Dot(pt)
		if d >= 0 {
			points[cnum] = pt
			dep[cnum] = d
			kept[cnum] = ret[j]
			cnum++
		}
	}
	if cnum < 1 {
		logger.Warnw("degenerate box/box contact manifold: all clipped points fell outside the incident face", "code", code)
		return Result{Code: code}
	}

	if maxc > cnum {
		maxc = cnum
	}

	var manifold contact.Manifold
	if cnum <= maxc {
		for j := 0; j < cnum; j++ {
			manifold = append(manifold, makeFaceContact(points[j], pa, normal, dep[j], code))
		}
	} else {
		i1 := 0
		maxdepth := dep[0]
		for i := 1; i < cnum; i++ {
			if dep[i] > maxdepth {
				maxdepth = dep[i]
				i1 = i
			}
		}
		iret := CullPoints(kept[:cnum], cnum, maxc, i1)
		for _, idx := range iret {
			manifold = append(manifold, makeFaceContact(points[idx], pa, normal, dep[idx], code))
		}
	}

	return Result{Code: code, Normal: normal, Depth: depth, Contacts: manifold}
}

func makeFaceContact(point, pa, normal r3.Vector, depth float64, code int) contact.Point {
	pos := point.Add(pa)
	if code >= 4 {
		pos = pos.Sub(normal.Mul(depth))
	}
	return contact.Point{Normal: normal, Position: pos, Depth: depth}
}
