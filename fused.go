package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuaternionToFused returns the fused angles of a unit quaternion.
//
// The output ranges are:
//
//	Fused yaw:   (-pi, pi]
//	Fused pitch: [-pi/2, pi/2]
//	Fused roll:  [-pi/2, pi/2]
//	Hemisphere:  true for the positive z hemisphere
func QuaternionToFused(q quat.Number) Fused {
	var f Fused

	// Calculate and wrap the fused yaw, atan2 gives [-pi,pi] so this starts out in [-2*pi,2*pi]
	f.Yaw = 2 * math.Atan2(q.Kmag, q.Real)
	if f.Yaw > math.Pi {
		f.Yaw -= 2 * math.Pi
	}
	if f.Yaw <= -math.Pi {
		f.Yaw += 2 * math.Pi
	}

	// Calculate the fused pitch and roll, coercing the sines to [-1,1]
	stheta := clamp(2*(q.Jmag*q.Real-q.Imag*q.Kmag), -1, 1)
	sphi := clamp(2*(q.Jmag*q.Kmag+q.Imag*q.Real), -1, 1)
	f.Pitch = math.Asin(stheta)
	f.Roll = math.Asin(sphi)

	f.Hemi = 0.5-(q.Imag*q.Imag+q.Jmag*q.Jmag) >= 0

	return f
}

// FusedToQuaternion returns the unit quaternion of a set of fused angles.
func FusedToQuaternion(f Fused) quat.Number {
	sth := math.Sin(f.Pitch)
	sphi := math.Sin(f.Roll)

	// Calculate the sine sum criterion
	crit := sth*sth + sphi*sphi

	// Calculate the tilt angle alpha
	var alpha float64
	switch {
	case crit >= 1:
		alpha = math.Pi / 2
	case f.Hemi:
		alpha = math.Acos(math.Sqrt(1 - crit))
	default:
		alpha = math.Acos(-math.Sqrt(1 - crit))
	}

	// Calculate the tilt axis gamma
	gamma := math.Atan2(sth, sphi)

	halpha := 0.5 * alpha
	hpsi := 0.5 * f.Yaw
	hgampsi := gamma + hpsi

	shalpha, chalpha := math.Sincos(halpha)
	shpsi, chpsi := math.Sincos(hpsi)
	shgampsi, chgampsi := math.Sincos(hgampsi)

	return NormalizeQuaternion(quat.Number{
		Real: chalpha * chpsi,
		Imag: shalpha * chgampsi,
		Jmag: shalpha * shgampsi,
		Kmag: chalpha * shpsi,
	})
}
