package ccd

import (
	"go.viam.com/collide/geometry"
	"go.viam.com/collide/motion"
	"go.viam.com/collide/spatial"
)

// placeAt returns a copy of g repositioned to exactly target, computed
// as the premultiplying delta that carries g's current pose to target
// so Geometry.Transform's compose semantics land on the requested
// absolute pose rather than accumulating it relative to g's pose.
func placeAt(g geometry.Geometry, target spatial.Pose) geometry.Geometry {
	delta := spatial.Compose(target, g.Pose().Invert())
	return g.Transform(delta)
}

// finishCollision runs the post-processing step common to every
// solver: integrate both motions to the winning time and copy their
// current transforms into the result.
func finishCollision(m1, m2 motion.Model, toc float64) Result {
	m1.Integrate(toc)
	m2.Integrate(toc)
	return Result{
		IsCollide:     true,
		TimeOfContact: toc,
		ContactTf1:    m1.CurrentTransform(),
		ContactTf2:    m2.CurrentTransform(),
	}
}
