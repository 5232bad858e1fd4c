// Elementary rotations and state transformation matrices.
package frames

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// R3R1R3 performs a 3-1-3 Euler rotation, M = R3(θ3)·R1(θ2)·R3(θ1).
// From Schaub and Junkins.
func R3R1R3(θ1, θ2, θ3 float64) *mat.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// dR3 is the derivative of R3 with respect to its angle.
func dR3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{-s, c, 0, -c, -s, 0, 0, 0, 0})
}

// identity3 returns a 3×3 identity matrix.
func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// zero3 returns a 3×3 zero matrix.
func zero3() *mat.Dense {
	return mat.NewDense(3, 3, nil)
}

// stateXform assembles the 6×6 state transformation matrix
//
//	⎡ R   0 ⎤
//	⎣ Ṙ   R ⎦
//
// from a rotation R and its time derivative Ṙ, so that velocities pick up
// the frame's angular rate.
func stateXform(r, rdot *mat.Dense) *mat.Dense {
	s := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.Set(i, j, r.At(i, j))
			s.Set(i+3, j, rdot.At(i, j))
			s.Set(i+3, j+3, r.At(i, j))
		}
	}
	return s
}

// invStateXform inverts a state transformation matrix. For the block form
// above the inverse is the block-wise transpose: ṘᵀR + RᵀṘ = d(RᵀR)/dt = 0.
func invStateXform(s *mat.Dense) *mat.Dense {
	inv := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.Set(i, j, s.At(j, i))
			inv.Set(i+3, j, s.At(j+3, i))
			inv.Set(i+3, j+3, s.At(j+3, i+3))
		}
	}
	return inv
}
