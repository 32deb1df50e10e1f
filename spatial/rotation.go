package spatial

import "github.com/golang/geo/r3"

// RotationMatrix is an orthonormal, right-handed 3x3 rotation, stored
// row-major. Callers are responsible for constructing valid rotations;
// this package never checks the orthonormality invariant.
// Quaternion.RotationMatrix normalizes its quaternion before converting
// it.
type RotationMatrix struct {
	mat [9]float64
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() *RotationMatrix {
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewRotationMatrix builds a RotationMatrix from nine row-major entries.
// The caller must ensure the columns are unit, pairwise orthogonal, and
// right-handed (det = +1); this is not verified.
func NewRotationMatrix(mat [9]float64) *RotationMatrix {
	return &RotationMatrix{mat}
}

// At returns the entry at zero-indexed (row, col).
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the zero-indexed row as a vector.
func (rm *RotationMatrix) Row(i int) r3.Vector {
	return r3.Vector{X: rm.mat[3*i], Y: rm.mat[3*i+1], Z: rm.mat[3*i+2]}
}

// Col returns the zero-indexed column as a vector.
func (rm *RotationMatrix) Col(i int) r3.Vector {
	return r3.Vector{X: rm.mat[i], Y: rm.mat[i+3], Z: rm.mat[i+6]}
}

// Transpose returns the transpose of rm, which for an orthonormal
// matrix equals its inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = rm.mat[3*c+r]
		}
	}
	return &RotationMatrix{out}
}

// MulRotation returns rm * other.
func (rm *RotationMatrix) MulRotation(other *RotationMatrix) *RotationMatrix {
	var out [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += rm.At(r, k) * other.At(k, c)
			}
			out[3*r+c] = sum
		}
	}
	return &RotationMatrix{out}
}

// Apply rotates the point v by rm.
func (rm *RotationMatrix) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// Abs returns the element-wise absolute value of rm.
func (rm *RotationMatrix) Abs() *RotationMatrix {
	var out [9]float64
	for i, v := range rm.mat {
		if v < 0 {
			out[i] = -v
		} else {
			out[i] = v
		}
	}
	return &RotationMatrix{out}
}

// DiagRotation returns a diagonal 3x3 matrix with the given entries,
// reusing the RotationMatrix storage even though the result is only a
// rotation when d is (1,1,1) or a signed permutation thereof; used as a
// scratch scale matrix by callers that need one.
func DiagRotation(d r3.Vector) *RotationMatrix {
	return &RotationMatrix{[9]float64{
		d.X, 0, 0,
		0, d.Y, 0,
		0, 0, d.Z,
	}}
}
