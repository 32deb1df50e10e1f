// Package motion provides the pose-as-a-function-of-time models the
// continuous-collision dispatcher integrates between a start and end
// configuration.
package motion

import (
	"github.com/golang/geo/r3"

	"go.viam.com/collide/spatial"
)

// Model is a pose parametrized over t in [0,1]. Implementations carry
// per-call mutable state and must not be shared across concurrent queries.
type Model interface {
	// Integrate advances the model's internal parameter to t.
	Integrate(t float64)
	// CurrentTransform returns the pose set by the most recent Integrate call.
	CurrentTransform() spatial.Pose
}

// Velocitier is implemented by motion models whose displacement over
// the full interval is a well-defined constant vector, currently only
// Translation; the polynomial-roots continuous-collision path uses it
// to displace mesh vertices.
type Velocitier interface {
	Velocity() r3.Vector
}

// Translation moves along a straight line from begin to end, keeping
// orientation fixed at begin's.
type Translation struct {
	begin, end spatial.Pose
	current    spatial.Pose
}

// NewTranslation builds a Translation motion between begin and end.
func NewTranslation(begin, end spatial.Pose) *Translation {
	return &Translation{begin: begin, end: end, current: begin}
}

func (m *Translation) Integrate(t float64) {
	p := m.begin.Translation().Add(m.end.Translation().Sub(m.begin.Translation()).Mul(t))
	m.current = spatial.NewPose(m.begin.Linear(), p)
}

func (m *Translation) CurrentTransform() spatial.Pose { return m.current }

// Velocity returns the constant per-unit-t displacement from begin to end.
func (m *Translation) Velocity() r3.Vector {
	return m.end.Translation().Sub(m.begin.Translation())
}

// Linear interpolates position (LERP) and orientation (SLERP) between
// two endpoint poses.
type Linear struct {
	begin, end spatial.Pose
	beginQ     spatial.Quaternion
	endQ       spatial.Quaternion
	current    spatial.Pose
}

// NewLinear builds a Linear motion between begin and end, both
// supplied with their orientation quaternion since Pose is
// matrix-backed.
func NewLinear(begin, end spatial.Pose, beginQ, endQ spatial.Quaternion) *Linear {
	return &Linear{begin: begin, end: end, beginQ: beginQ, endQ: endQ, current: begin}
}

func (m *Linear) Integrate(t float64) {
	p := m.begin.Translation().Add(m.end.Translation().Sub(m.begin.Translation()).Mul(t))
	q := spatial.Slerp(m.beginQ, m.endQ, t)
	m.current = spatial.NewPose(q.RotationMatrix(), p)
}

func (m *Linear) CurrentTransform() spatial.Pose { return m.current }

// Screw rotates at a constant angular rate about a fixed world-space
// axis through center while translating at a constant linear rate
// along the same axis, integrated from t=0 (identity offset from
// begin) to t=1 (angle/displacement fully applied).
type Screw struct {
	begin       spatial.Pose
	axis        r3.Vector
	center      r3.Vector
	totalAngle  float64
	totalPitch  float64
	current     spatial.Pose
}

// NewScrew builds a Screw motion that rotates by totalAngle radians
// about axis (through center) while translating totalPitch along axis,
// applied to begin's orientation and position.
func NewScrew(begin spatial.Pose, axis, center r3.Vector, totalAngle, totalPitch float64) *Screw {
	n := axis.Norm()
	if n > spatial.Epsilon {
		axis = axis.Mul(1 / n)
	}
	return &Screw{begin: begin, axis: axis, center: center, totalAngle: totalAngle, totalPitch: totalPitch, current: begin}
}

func (m *Screw) Integrate(t float64) {
	q := spatial.QuaternionFromAxisAngle(m.axis, m.totalAngle*t)
	rot := q.RotationMatrix().MulRotation(m.begin.Linear())
	offset := m.begin.Translation().Sub(m.center)
	rotatedOffset := q.RotationMatrix().Apply(offset)
	p := m.center.Add(rotatedOffset).Add(m.axis.Mul(m.totalPitch * t))
	m.current = spatial.NewPose(rot, p)
}

func (m *Screw) CurrentTransform() spatial.Pose { return m.current }

// Spline interpolates a Catmull-Rom curve through four control poses.
// NewSpline duplicates its endpoints as the outer control points,
// matching the standard Catmull-Rom degenerate-tangent convention: the
// position then stays on the straight segment between the middle two
// control points (p1, p2) but moves along it with cubic, not linear,
// timing in t (at t=0.25 it is about 20% of the way, not 25%), while
// orientation SLERPs between q1 and q2.
type Spline struct {
	p0, p1, p2, p3 r3.Vector
	q1, q2         spatial.Quaternion
	current        spatial.Pose
}

// NewSpline builds a Spline motion between begin and end using begin's
// and end's own positions as the outer tangent controls.
func NewSpline(begin, end spatial.Pose, beginQ, endQ spatial.Quaternion) *Spline {
	return &Spline{
		p0: begin.Translation(), p1: begin.Translation(), p2: end.Translation(), p3: end.Translation(),
		q1: beginQ, q2: endQ, current: begin,
	}
}

func (m *Spline) Integrate(t float64) {
	t2 := t * t
	t3 := t2 * t
	p := m.p0.Mul(-0.5*t3 + t2 - 0.5*t).
		Add(m.p1.Mul(1.5*t3 - 2.5*t2 + 1)).
		Add(m.p2.Mul(-1.5*t3 + 2*t2 + 0.5*t)).
		Add(m.p3.Mul(0.5*t3 - 0.5*t2))
	q := spatial.Slerp(m.q1, m.q2, t)
	m.current = spatial.NewPose(q.RotationMatrix(), p)
}

func (m *Spline) CurrentTransform() spatial.Pose { return m.current }
