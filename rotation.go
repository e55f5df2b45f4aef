// Package rotation converts 3D attitudes between rotation matrices, unit
// quaternions, ZYX Euler angles, rotation vectors and fused angles, and
// provides the operator matrices used to linearize quaternion kinematics.
//
// Matrices are mgl64 values read as m.At(row, col), quaternions are gonum
// quat.Number values with Real holding the scalar part, and vectors are r3
// vectors. Every function is pure and safe for concurrent use.
package rotation

import "gonum.org/v1/gonum/num/quat"

const (
	// If the (2,0) entry of a rotation matrix has an absolute value of at least this, then
	// the pitch is considered to be at +-90 degrees and the roll/heading split is resolved by
	// a fixed canonical decomposition.
	GimbalLockThreshold = 0.999

	// If a supposedly near-unit quaternion has norm-squared less than this during normalisation,
	// then it is replaced by the identity rotation.
	QuaternionNormToleranceSquared = 1e-12 * 1e-12
)

// Euler holds ZYX Euler angles in radians. The composite rotation is
// Rz(Heading)·Ry(Pitch)·Rx(Roll).
type Euler struct {
	Roll    float64
	Pitch   float64
	Heading float64
}

// Fused holds fused angles in radians together with the hemisphere of the
// body z-axis (true means the positive z hemisphere).
type Fused struct {
	Yaw   float64
	Pitch float64
	Roll  float64
	Hemi  bool
}

// Identity returns the identity quaternion (1, 0, 0, 0).
func Identity() quat.Number {
	return quat.Number{Real: 1}
}
