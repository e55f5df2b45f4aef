package rotation

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// NormalizeQuaternion scales q to unit norm. A quaternion too close to zero
// to be normalised is replaced by the identity.
func NormalizeQuaternion(q quat.Number) quat.Number {
	qscale := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag // calculate the quaternion square norm

	if qscale < QuaternionNormToleranceSquared {
		return Identity()
	}
	return quat.Scale(1/math.Sqrt(qscale), q)
}

// QuaternionRate returns the time derivative of the attitude q for the body
// angular velocity omega (rad/s), dq/dt = 0.5 * q ⊗ (0, omega).
func QuaternionRate(q quat.Number, omega r3.Vector) quat.Number {
	dq := QuaternionLeft(q).Mul4x1(QuaternionVec(quat.Number{Imag: omega.X, Jmag: omega.Y, Kmag: omega.Z}))
	return VecQuaternion(dq.Mul(0.5))
}

// AttitudeError returns the rotation vector taking estimate onto measured in
// body coordinates, i.e. of conj(estimate) ⊗ measured. For close attitudes
// this is the small-angle error state.
func AttitudeError(estimate, measured quat.Number) r3.Vector {
	return QuaternionToRotationVector(quat.Mul(quat.Conj(estimate), measured))
}
