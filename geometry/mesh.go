package geometry

import (
	"math"
	"sync"

	"github.com/golang/geo/r3"

	"go.viam.com/collide/spatial"
)

// Mesh is a triangle soup placed by a pose, with a BVH built lazily on
// first use by any query that needs bounding-volume acceleration. The
// build is guarded by bvhOnce so concurrent readers (CollidesWith,
// DistanceFrom, BVH) sharing a Mesh never race on the first build.
type Mesh struct {
	pose      spatial.Pose
	triangles []*Triangle
	bvh       *BVH
	bvhOnce   sync.Once
}

// NewMesh builds a mesh from its local-frame triangles and a placing pose.
func NewMesh(pose spatial.Pose, triangles []*Triangle) *Mesh {
	return &Mesh{pose: pose, triangles: triangles}
}

func (m *Mesh) Pose() spatial.Pose    { return m.pose }
func (m *Mesh) Kind() Kind            { return KindMesh }
func (m *Mesh) Triangles() []*Triangle { return m.triangles }

// Transform returns a copy of m placed at toPremultiply composed with m's pose.
func (m *Mesh) Transform(toPremultiply spatial.Pose) Geometry {
	return &Mesh{pose: spatial.Compose(toPremultiply, m.pose), triangles: m.triangles}
}

// Translate returns a new mesh at the identity pose whose triangles are
// m's world-space triangles displaced by d — the representation the
// polynomial-roots continuous-collision path needs to rebuild a BVH
// over a translated copy without mutating the source mesh (unlike the
// in-place vertex-buffer mutation this is grounded against, see
// DESIGN.md's note on that simplification).
func (m *Mesh) Translate(d r3.Vector) *Mesh {
	worldTris := m.WorldTriangles()
	out := make([]*Triangle, len(worldTris))
	for i, t := range worldTris {
		out[i] = t.Translate(d)
	}
	return &Mesh{pose: spatial.NewZeroPose(), triangles: out}
}

// WorldTriangles returns m's triangles transformed into world coordinates.
func (m *Mesh) WorldTriangles() []*Triangle {
	out := make([]*Triangle, len(m.triangles))
	for i, t := range m.triangles {
		pts := t.Points()
		out[i] = NewTriangle(m.pose.Apply(pts[0]), m.pose.Apply(pts[1]), m.pose.Apply(pts[2]))
	}
	return out
}

// BVH returns m's bounding-volume hierarchy over its world-space
// triangles, building it on first call.
func (m *Mesh) BVH() *BVH {
	m.bvhOnce.Do(func() {
		m.bvh = BuildBVH(m.WorldTriangles())
	})
	return m.bvh
}

func (m *Mesh) CollidesWith(g Geometry, collisionBuffer float64) (bool, float64, error) {
	switch other := g.(type) {
	case *Mesh:
		pairs := OverlapPairs(m.BVH(), other.BVH(), collisionBuffer)
		for _, pr := range pairs {
			if m.BVH().Triangle(pr[0]).intersectsSAT(other.BVH().Triangle(pr[1])) {
				return true, -1, nil
			}
		}
		return false, m.approximateDistance(other), nil
	default:
		return true, collisionBuffer, newCollisionTypeUnsupportedError(m, g)
	}
}

func (m *Mesh) DistanceFrom(g Geometry) (float64, error) {
	switch other := g.(type) {
	case *Mesh:
		return m.approximateDistance(other), nil
	default:
		return math.Inf(-1), newCollisionTypeUnsupportedError(m, g)
	}
}

// approximateDistance returns the minimum distance from any vertex of m
// to any triangle of other, checking every triangle pair; other's
// vertices are not checked against m's triangles. It is a cheap
// stand-in for an exact mesh/mesh distance query.
func (m *Mesh) approximateDistance(other *Mesh) float64 {
	best := math.Inf(1)
	for _, t := range m.BVH().tris {
		for _, ot := range other.BVH().tris {
			for _, p := range t.Points() {
				d := ot.ClosestPointToPoint(p).Sub(p).Norm()
				if d < best {
					best = d
				}
			}
		}
	}
	return best
}
