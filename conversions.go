package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// MatrixToQuaternion returns the unit quaternion of a proper rotation matrix.
func MatrixToQuaternion(m mgl64.Mat3) quat.Number {
	trace := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)

	if trace > 0 {
		t := math.Sqrt(trace + 1)
		s := 0.5 / t
		return quat.Number{
			Real: 0.5 * t,
			Imag: (m.At(2, 1) - m.At(1, 2)) * s,
			Jmag: (m.At(0, 2) - m.At(2, 0)) * s,
			Kmag: (m.At(1, 0) - m.At(0, 1)) * s,
		}
	}

	// Build around the largest diagonal entry so the square root stays well away from zero
	i := 0
	if m.At(1, 1) > m.At(0, 0) {
		i = 1
	}
	if m.At(2, 2) > m.At(i, i) {
		i = 2
	}
	j := (i + 1) % 3
	k := (j + 1) % 3

	var v [3]float64
	t := math.Sqrt(m.At(i, i) - m.At(j, j) - m.At(k, k) + 1)
	v[i] = 0.5 * t
	s := 0.5 / t
	v[j] = (m.At(j, i) + m.At(i, j)) * s
	v[k] = (m.At(k, i) + m.At(i, k)) * s

	return quat.Number{
		Real: (m.At(k, j) - m.At(j, k)) * s,
		Imag: v[0],
		Jmag: v[1],
		Kmag: v[2],
	}
}

// QuaternionToMatrix returns the rotation matrix of a unit quaternion.
func QuaternionToMatrix(q quat.Number) mgl64.Mat3 {
	tx := 2 * q.Imag
	ty := 2 * q.Jmag
	tz := 2 * q.Kmag

	var (
		twx = tx * q.Real
		twy = ty * q.Real
		twz = tz * q.Real
		txx = tx * q.Imag
		txy = ty * q.Imag
		txz = tz * q.Imag
		tyy = ty * q.Jmag
		tyz = tz * q.Jmag
		tzz = tz * q.Kmag
	)

	return mgl64.Mat3FromRows(
		mgl64.Vec3{1 - (tyy + tzz), txy - twz, txz + twy},
		mgl64.Vec3{txy + twz, 1 - (txx + tzz), tyz - twx},
		mgl64.Vec3{txz - twy, tyz + twx, 1 - (txx + tyy)},
	)
}

// MatrixToEuler extracts ZYX Euler angles from a rotation matrix.
//
// The output ranges are:
//
//	Roll:    (-pi, pi]
//	Pitch:   [-pi/2, pi/2]
//	Heading: [0, 2*pi)
//
// Near pitch = +-90 degrees only the sum or difference of roll and heading is
// observable, and a canonical split is returned.
func MatrixToEuler(m mgl64.Mat3) Euler {
	var e Euler

	m20 := m.At(2, 0)
	e.Pitch = math.Atan(-m20 / math.Sqrt(m.At(2, 1)*m.At(2, 1)+m.At(2, 2)*m.At(2, 2)))
	e.Roll = math.Atan2(m.At(2, 1), m.At(2, 2))

	switch {
	case m20 <= -GimbalLockThreshold:
		e.Heading = math.Atan2(m.At(1, 2)-m.At(0, 1), m.At(0, 2)+m.At(1, 1))
	case m20 >= GimbalLockThreshold:
		e.Heading = math.Pi + math.Atan2(m.At(1, 2)+m.At(0, 1), m.At(0, 2)-m.At(1, 1))
	default:
		e.Heading = math.Atan2(m.At(1, 0), m.At(0, 0))
	}

	// Fold into [0, 2*pi), a tiny negative atan2 or pi + pi would otherwise round to exactly 2*pi
	if e.Heading < 0 {
		e.Heading += 2 * math.Pi
	}
	if e.Heading >= 2*math.Pi {
		e.Heading -= 2 * math.Pi
	}

	return e
}

// QuaternionToEuler extracts ZYX Euler angles from a unit quaternion. It goes
// through the rotation matrix, so it behaves exactly like MatrixToEuler.
func QuaternionToEuler(q quat.Number) Euler {
	return MatrixToEuler(QuaternionToMatrix(q))
}

// EulerToMatrix returns the rotation matrix Rz(Heading)·Ry(Pitch)·Rx(Roll).
func EulerToMatrix(e Euler) mgl64.Mat3 {
	return mgl64.Rotate3DZ(e.Heading).Mul3(mgl64.Rotate3DY(e.Pitch)).Mul3(mgl64.Rotate3DX(e.Roll))
}

// EulerToQuaternion returns the unit quaternion of the same axis sequence as
// EulerToMatrix.
func EulerToQuaternion(e Euler) quat.Number {
	qz := axisAngle(e.Heading, r3.Vector{Z: 1})
	qy := axisAngle(e.Pitch, r3.Vector{Y: 1})
	qx := axisAngle(e.Roll, r3.Vector{X: 1})
	return quat.Mul(quat.Mul(qz, qy), qx)
}

// RotationVectorToQuaternion converts a rotation vector (unit axis scaled by
// the rotation angle in radians) to a unit quaternion. The zero vector maps to
// the identity.
func RotationVectorToQuaternion(v r3.Vector) quat.Number {
	angle := v.Norm()
	if angle == 0 {
		return Identity()
	}
	return axisAngle(angle, v.Mul(1/angle))
}

// QuaternionToRotationVector converts a unit quaternion to a rotation vector
// with an angle in [0, pi].
func QuaternionToRotationVector(q quat.Number) r3.Vector {
	axis := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := axis.Norm()
	if n == 0 {
		return r3.Vector{}
	}

	angle := 2 * math.Atan2(n, math.Abs(q.Real))
	if q.Real < 0 {
		n = -n
	}
	return axis.Mul(angle / n)
}

// axisAngle builds the quaternion of a rotation by angle about a unit axis.
func axisAngle(angle float64, axis r3.Vector) quat.Number {
	s, c := math.Sincos(0.5 * angle)
	return quat.Number{Real: c, Imag: s * axis.X, Jmag: s * axis.Y, Kmag: s * axis.Z}
}
