package pseudo

import (
	"fmt"
	"math"

	"github.com/sgurevich/pwdft/radial"
)

// fourPi is the solid-angle factor of every radial Fourier transform here.
const fourPi = 4 * math.Pi

// LocalReal evaluates the local potential at radius r via the cached
// piecewise-linear interpolant. The tabulated vloc already contains the
// full short-range behavior, so no correction applies in real space.
// Defined on [Rmin, Rmax]; outside, the interpolant clamps to the
// boundary values. Complexity: O(log n) segment lookup.
func (p *NormConserving) LocalReal(r float64) float64 {
	return p.vlocItp.Predict(r)
}

// LocalFourier evaluates the Fourier transform of the local potential at
// momentum magnitude q > 0:
//
//	4π/q · ( Σ_k sin(q·r_k)·(r_k·vloc_k + Z)·dr_k − Z/q )
//
// The raw vloc decays as -Z/r, which direct quadrature cannot transform;
// the mesh sum carries the tail-subtracted rest while the -Z/q term folds
// back the analytic transform -4πZ/q² of the tail.
//
// Returns ErrDomain for q = 0: the q→0 limit is a removable singularity
// the caller must special-case with its closed form.
// Complexity: O(n).
func (p *NormConserving) LocalFourier(q float64) (float64, error) {
	if q == 0 {
		return 0, fmt.Errorf("%w: local Fourier transform at q=0", ErrDomain)
	}
	var sum float64
	for k, w := range p.locCorr {
		sum += math.Sin(q*p.grid.R(k)) * w
	}
	return fourPi / q * (sum - float64(p.zion)/q), nil
}

// ProjectorReal evaluates projector i of channel l at radius r > 0.
// Tables store r·β(r) (the UPF tabulation convention), so the physical
// projector is interpolant(r)/r. Returns ErrDomain for r ≤ 0 instead of
// silently dividing by zero. Panics on out-of-range l or i (programmer
// error, as with any slice index).
func (p *NormConserving) ProjectorReal(l, i int, r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: projector evaluation at r=%v", ErrDomain, r)
	}
	return p.proj[l][i].itp.Predict(r) / r, nil
}

// ProjectorFourier evaluates the 3D Fourier transform of projector i of
// channel l at momentum magnitude q ≥ 0 via the spherical-harmonic
// expansion of the radial transform:
//
//	4π · Σ_k j_l(q·r_k) · r_k²·β(r_k)·dr_k
//
// summed over the projector's compact support. j_l is evaluated with a
// small-argument series, so q = 0 is exact: a finite value for l = 0 and
// exactly 0 for l > 0. Panics on out-of-range l or i.
// Complexity: O(support · l).
func (p *NormConserving) ProjectorFourier(l, i int, q float64) float64 {
	return fourPi * besselSum(l, q, p.grid, p.proj[l][i].weights)
}

// EnergyCorrection returns the long-range electrostatic correction to the
// total energy from replacing the point-charge -Z/r by the smoothed local
// potential, scaled by the total electron count:
//
//	4π · nElectrons · Σ_k r_k·(r_k·vloc_k + Z)·dr_k
//
// The mesh sum is precomputed at Build; each call is O(1).
func (p *NormConserving) EnergyCorrection(nElectrons float64) float64 {
	return fourPi * nElectrons * p.energyNorm
}

// PseudoWavefunctionReal evaluates atomic pseudo-wavefunction i of
// channel l at radius r > 0 (tables store r·χ(r)). Returns ErrDomain for
// r ≤ 0. Panics on out-of-range l or i.
func (p *NormConserving) PseudoWavefunctionReal(l, i int, r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: pseudo-wavefunction evaluation at r=%v", ErrDomain, r)
	}
	return p.pswfc[l][i].itp.Predict(r) / r, nil
}

// PseudoWavefunctionFourier evaluates the 3D Fourier transform of atomic
// pseudo-wavefunction i of channel l at momentum magnitude q ≥ 0, with
// the same Fourier-Bessel quadrature as ProjectorFourier.
func (p *NormConserving) PseudoWavefunctionFourier(l, i int, q float64) float64 {
	return fourPi * besselSum(l, q, p.grid, p.pswfc[l][i].weights)
}

// ValenceDensityFourier evaluates the Fourier transform of the
// pseudo-atomic valence charge density at momentum magnitude q ≥ 0:
//
//	Σ_k j_0(q·r_k) · rhoAtom_k · dr_k
//
// rhoAtom is tabulated as 4π·r²·ρ(r), so no extra solid-angle factor
// applies and the q = 0 value is the total valence charge of the table.
// Returns 0 when the bundle carried no density table.
func (p *NormConserving) ValenceDensityFourier(q float64) float64 {
	var sum float64
	for k, w := range p.rhoAtom {
		sum += sphericalBesselJ(0, q*p.grid.R(k)) * w * p.grid.DR(k)
	}
	return sum
}

// ValenceDensityReal evaluates the pseudo-atomic valence charge density
// ρ(r) at radius r > 0, undoing the 4π·r² tabulation factor. Returns
// ErrDomain for r ≤ 0, and 0 when the bundle carried no density table.
func (p *NormConserving) ValenceDensityReal(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("%w: valence density evaluation at r=%v", ErrDomain, r)
	}
	if p.rhoAtom == nil {
		return 0, nil
	}
	return p.rhoItp.Predict(r) / (fourPi * r * r), nil
}

// besselSum is the shared Fourier-Bessel quadrature kernel:
// Σ_k j_l(q·r_k)·w_k over the support of w.
func besselSum(l int, q float64, grid *radial.Grid, w []float64) float64 {
	var sum float64
	for k, wk := range w {
		sum += sphericalBesselJ(l, q*grid.R(k)) * wk
	}
	return sum
}
