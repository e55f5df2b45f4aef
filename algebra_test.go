package rotation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

func TestSkewSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	randomVector := func() r3.Vector {
		return r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
	}

	tests := []struct {
		name string
		v, x r3.Vector
	}{
		{"Zero vector", r3.Vector{}, randomVector()},
		{"Self", r3.Vector{X: 1, Y: -2, Z: 3}, r3.Vector{X: 1, Y: -2, Z: 3}},
		{"Basis", r3.Vector{X: 1}, r3.Vector{Y: 1}},
		{"Random", randomVector(), randomVector()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SkewSymmetric(tt.v)
			got := s.Mul3x1(mgl64.Vec3{tt.x.X, tt.x.Y, tt.x.Z})
			want := tt.v.Cross(tt.x)
			if !floats.EqualApprox(got[:], []float64{want.X, want.Y, want.Z}, tol) {
				t.Errorf("Expected %v, got %v", want, got)
			}
			if s.Transpose() != s.Mul(-1) {
				t.Errorf("Expected an antisymmetric matrix, got %v", s)
			}
		})
	}
}

func TestSkewSymmetricLayout(t *testing.T) {
	s := SkewSymmetric(r3.Vector{X: 1, Y: 2, Z: 3})
	want := [3][3]float64{
		{0, -3, 2},
		{3, 0, -1},
		{-2, 1, 0},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.At(r, c) != want[r][c] {
				t.Errorf("Expected S(%d,%d) = %v, got %v", r, c, want[r][c], s.At(r, c))
			}
		}
	}
}

func TestQuaternionOperators(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		q := randomQuaternion(rng)
		p := randomQuaternion(rng)
		want := QuaternionVec(quat.Mul(q, p))

		left := QuaternionLeft(q).Mul4x1(QuaternionVec(p))
		if !floats.EqualApprox(left[:], want[:], tol) {
			t.Fatalf("L(q)·p = %v, expected %v", left, want)
		}
		right := QuaternionRight(p).Mul4x1(QuaternionVec(q))
		if !floats.EqualApprox(right[:], want[:], tol) {
			t.Fatalf("R(p)·q = %v, expected %v", right, want)
		}
	}
}

func TestQuaternionOperatorsLayout(t *testing.T) {
	q := quat.Number{Real: 1, Imag: 2, Jmag: 3, Kmag: 4}

	tests := []struct {
		name string
		m    mgl64.Mat4
		want [4][4]float64
	}{
		{"Left", QuaternionLeft(q), [4][4]float64{
			{1, -2, -3, -4},
			{2, 1, -4, 3},
			{3, 4, 1, -2},
			{4, -3, 2, 1},
		}},
		{"Right", QuaternionRight(q), [4][4]float64{
			{1, -2, -3, -4},
			{2, 1, 4, -3},
			{3, -4, 1, 2},
			{4, 3, -2, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					if tt.m.At(r, c) != tt.want[r][c] {
						t.Errorf("Expected (%d,%d) = %v, got %v", r, c, tt.want[r][c], tt.m.At(r, c))
					}
				}
			}
		})
	}
}

func TestQuaternionVec(t *testing.T) {
	q := quat.Number{Real: 0.1, Imag: 0.2, Jmag: 0.3, Kmag: 0.4}
	v := QuaternionVec(q)
	if !floats.Equal(v[:], []float64{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("Expected (w, x, y, z) ordering, got %v", v)
	}
	if got := VecQuaternion(v); got != q {
		t.Errorf("Expected %v, got %v", q, got)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"Above pi", 4.0, 4.0 - 2*math.Pi},
		{"Below minus pi", -4.0, -4.0 + 2*math.Pi},
		{"Zero", 0, 0},
		{"Pi", math.Pi, math.Pi},
		{"Minus pi", -math.Pi, -math.Pi},
		{"Inside", -2.5, -2.5},
		{"Near three pi", 3*math.Pi - 0.1, math.Pi - 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heading(tt.angle); !scalar.EqualWithinAbs(got, tt.want, tol) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := Heading(4.0); !scalar.EqualWithinAbs(got, -2.283, 1e-3) {
		t.Errorf("Expected about -2.283, got %v", got)
	}
}
