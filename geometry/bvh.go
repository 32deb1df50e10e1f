package geometry

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r3"
)

// AABB is an axis-aligned bounding box, the bounding volume used by
// this package's mesh BVH.
type AABB struct {
	Min, Max r3.Vector
}

// NewAABB returns the AABB spanning a and b.
func NewAABB(a, b r3.Vector) AABB {
	box := AABB{Min: a, Max: a}
	return box.Expand(b)
}

// Expand grows box to include pt.
func (box AABB) Expand(pt r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(box.Min.X, pt.X), Y: math.Min(box.Min.Y, pt.Y), Z: math.Min(box.Min.Z, pt.Z)},
		Max: r3.Vector{X: math.Max(box.Max.X, pt.X), Y: math.Max(box.Max.Y, pt.Y), Z: math.Max(box.Max.Z, pt.Z)},
	}
}

// Union returns the AABB spanning box and other.
func (box AABB) Union(other AABB) AABB {
	return box.Expand(other.Min).Expand(other.Max)
}

// Overlaps reports whether box and other intersect, allowing pairs
// touching within buffer to count as overlapping.
func (box AABB) Overlaps(other AABB, buffer float64) bool {
	return box.Min.X-buffer <= other.Max.X && box.Max.X+buffer >= other.Min.X &&
		box.Min.Y-buffer <= other.Max.Y && box.Max.Y+buffer >= other.Min.Y &&
		box.Min.Z-buffer <= other.Max.Z && box.Max.Z+buffer >= other.Min.Z
}

// grow returns box padded by buffer on every side, used to turn an
// exact AABB into an rtreego query rectangle for a buffered search.
func (box AABB) grow(buffer float64) AABB {
	pad := r3.Vector{X: buffer, Y: buffer, Z: buffer}
	return AABB{Min: box.Min.Sub(pad), Max: box.Max.Add(pad)}
}

// toRect converts box to an rtreego.Rect. rtreego rejects zero-length
// sides, so degenerate axes (a triangle exactly aligned to a plane)
// are floored to a tiny epsilon width.
func (box AABB) toRect() *rtreego.Rect {
	const minSide = 1e-9
	p := rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z}
	lengths := []float64{
		math.Max(box.Max.X-box.Min.X, minSide),
		math.Max(box.Max.Y-box.Min.Y, minSide),
		math.Max(box.Max.Z-box.Min.Z, minSide),
	}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// lengths are always positive by construction above.
		panic(err)
	}
	return rect
}

// triLeaf adapts a mesh triangle's bounding box to rtreego.Spatial so
// it can be indexed by the R-tree.
type triLeaf struct {
	index  int
	bounds AABB
}

func (t *triLeaf) Bounds() *rtreego.Rect { return t.bounds.toRect() }

const (
	rtreeMinBranch = 4
	rtreeMaxBranch = 16
)

// BVH is a bounding-volume hierarchy over a fixed set of triangles,
// backed by an rtreego R-tree, used to accelerate the mesh/mesh
// polynomial-roots continuous collision path.
type BVH struct {
	tree   *rtreego.Rtree
	tris   []*Triangle
	bounds AABB
	empty  bool
}

// BuildBVH indexes tris in a fresh R-tree; empty input yields an empty
// tree that OverlapPairs and Bounds treat as non-overlapping.
func BuildBVH(tris []*Triangle) *BVH {
	if len(tris) == 0 {
		return &BVH{empty: true}
	}
	tree := rtreego.NewTree(3, rtreeMinBranch, rtreeMaxBranch)
	bounds := tris[0].AABB()
	for i, tri := range tris {
		b := tri.AABB()
		bounds = bounds.Union(b)
		tree.Insert(&triLeaf{index: i, bounds: b})
	}
	return &BVH{tree: tree, tris: tris, bounds: bounds}
}

// OverlapPairs queries a's R-tree with each of b's triangle bounds,
// returning every pair of triangle indices (ia into a's triangle
// list, ib into b's) whose AABBs overlap within buffer.
func OverlapPairs(a, b *BVH, buffer float64) [][2]int {
	if a.empty || b.empty {
		return nil
	}
	var pairs [][2]int
	for j, tb := range b.tris {
		query := tb.AABB().grow(buffer)
		for _, hit := range a.tree.SearchIntersect(query.toRect()) {
			leaf := hit.(*triLeaf)
			pairs = append(pairs, [2]int{leaf.index, j})
		}
	}
	return pairs
}

// Triangle returns the triangle backing leaf index i.
func (bvh *BVH) Triangle(i int) *Triangle { return bvh.tris[i] }

// Bounds returns the tree's overall bounding volume, or a degenerate
// zero box when the tree is empty.
func (bvh *BVH) Bounds() AABB {
	if bvh.empty {
		return AABB{}
	}
	return bvh.bounds
}
