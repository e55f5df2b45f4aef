package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// SkewSymmetric returns the cross-product matrix S(v), so that S(v)·x = v × x.
func SkewSymmetric(v r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -v.Z, v.Y},
		mgl64.Vec3{v.Z, 0, -v.X},
		mgl64.Vec3{-v.Y, v.X, 0},
	)
}

// QuaternionLeft returns the matrix L(q) of left multiplication by q:
// L(q)·vec(p) = vec(q ⊗ p).
func QuaternionLeft(q quat.Number) mgl64.Mat4 {
	return quaternionOperator(q, 1)
}

// QuaternionRight returns the matrix R(p) of right multiplication by p:
// R(p)·vec(q) = vec(q ⊗ p).
func QuaternionRight(p quat.Number) mgl64.Mat4 {
	return quaternionOperator(p, -1)
}

// quaternionOperator builds
//
//	| w  -vᵀ                |
//	| v   w·I + sign·S(v)   |
func quaternionOperator(q quat.Number, sign float64) mgl64.Mat4 {
	v := [3]float64{q.Imag, q.Jmag, q.Kmag}
	block := mgl64.Ident3().Mul(q.Real).Add(SkewSymmetric(r3.Vector{X: v[0], Y: v[1], Z: v[2]}).Mul(sign))

	var m mgl64.Mat4
	m.Set(0, 0, q.Real)
	for i := 0; i < 3; i++ {
		m.Set(0, i+1, -v[i])
		m.Set(i+1, 0, v[i])
		for j := 0; j < 3; j++ {
			m.Set(i+1, j+1, block.At(i, j))
		}
	}
	return m
}

// QuaternionVec returns q as the 4-vector (w, x, y, z) that the operator
// matrices act on.
func QuaternionVec(q quat.Number) mgl64.Vec4 {
	return mgl64.Vec4{q.Real, q.Imag, q.Jmag, q.Kmag}
}

// VecQuaternion is the inverse of QuaternionVec.
func VecQuaternion(v mgl64.Vec4) quat.Number {
	return quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]}
}

// Heading wraps an angle into [-pi, pi] by adding or subtracting 2*pi once.
// The input must already lie within (-3*pi, 3*pi]. Exactly -pi is returned
// unchanged rather than mapped to pi.
func Heading(angle float64) float64 {
	if angle < -math.Pi {
		angle += 2 * math.Pi
	} else if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}
