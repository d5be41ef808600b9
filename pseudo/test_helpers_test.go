package pseudo_test

import (
	"math"

	"github.com/sgurevich/pwdft/upf"
)

//----------------------------------------------------------------------------//
// Shared bundle fixtures
//----------------------------------------------------------------------------//

// linearMesh returns the canonical test mesh r = 0.01, 0.02, ..., n·0.01
// with constant weights 0.01.
func linearMesh(n int) (r, rab []float64) {
	r = make([]float64, n)
	rab = make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = 0.01 * float64(i+1)
		rab[i] = 0.01
	}
	return r, rab
}

// coulombBundle builds a projector-free bundle whose local potential is
// exactly -Z/r in Hartree (so -2Z/r in the bundle's Rydberg convention).
// Its tail-corrected Fourier transform has the closed form -4πZ/q².
func coulombBundle(n, z int) *upf.Bundle {
	r, rab := linearMesh(n)
	vloc := make([]float64, n)
	for i := range vloc {
		vloc[i] = -2 * float64(z) / r[i]
	}
	return &upf.Bundle{
		Header: upf.Header{
			Identifier: "coulomb-test",
			PseudoType: upf.TypeNormConserving,
			Zvalence:   float64(z),
			LMax:       0,
		},
		R:      r,
		Rab:    rab,
		VLocal: vloc,
	}
}

// gaussianBundle builds a two-channel bundle with smooth Gaussian
// projectors: two s-channel tables, one p-channel table, a symmetric 3×3
// coupling block, one atomic pseudo-wavefunction and a normalized
// hydrogen-like valence density.
func gaussianBundle() *upf.Bundle {
	const n = 500
	r, rab := linearMesh(n)

	vloc := make([]float64, n)
	for i := range vloc {
		// Smooth short-range potential with a -2/r (Ry) Coulomb tail.
		vloc[i] = -2 * (1 - math.Exp(-r[i])) / r[i]
	}

	table := func(sup int, beta func(float64) float64) []float64 {
		t := make([]float64, sup)
		for i := 0; i < sup; i++ {
			t[i] = r[i] * beta(r[i])
		}
		return t
	}
	gauss := func(x float64) float64 { return math.Exp(-x * x) }
	rgauss := func(x float64) float64 { return x * math.Exp(-x*x) }

	rho := make([]float64, n)
	for i := range rho {
		// 4π·r²·ρ for the hydrogen 1s density; integrates to 1.
		rho[i] = 4 * r[i] * r[i] * math.Exp(-2*r[i])
	}

	return &upf.Bundle{
		Header: upf.Header{
			Identifier:  "gaussian-test",
			Description: "synthetic two-channel NC dataset",
			PseudoType:  upf.TypeNormConserving,
			Zvalence:    4,
			LMax:        1,
		},
		R:      r,
		Rab:    rab,
		VLocal: vloc,
		Projectors: []upf.Projector{
			{L: 0, Values: table(300, gauss)},
			{L: 0, Values: table(300, rgauss)},
			{L: 1, Values: table(250, rgauss)},
		},
		DIJ: []float64{
			1.0, 0.1, 0.0,
			0.1, 2.0, 0.0,
			0.0, 0.0, 3.0,
		},
		PseudoWavefunctions: []upf.Wavefunction{
			{L: 0, Label: "1S", Occupation: 2, Values: table(n, func(x float64) float64 { return math.Exp(-2 * x) })},
		},
		RhoAtom: rho,
	}
}
