package pseudo

import (
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"

	"github.com/sgurevich/pwdft/radial"
)

// Potential is the capability set shared by all pseudopotential flavors.
// Hamiltonian assembly and energy computation depend only on this
// interface; NormConserving is the tabulated-UPF implementation, analytic
// flavors (Goedecker-Teter-Hutter and friends) plug in alongside it.
//
// All methods are pure and safe for concurrent use.
type Potential interface {
	// IonicCharge returns the integer valence charge of the ion core.
	IonicCharge() int
	// LMax returns the maximum angular-momentum channel index.
	LMax() int
	// NumProjectors returns the projector count of channel l
	// (0 for channels outside 0..LMax).
	NumProjectors(l int) int
	// Coupling returns the Kleinman-Bylander coupling matrix of channel l
	// in Hartree^-1, as a defensive copy. Nil for an empty channel.
	Coupling(l int) *mat.SymDense

	// LocalReal evaluates the local potential at radius r (Hartree).
	LocalReal(r float64) float64
	// LocalFourier evaluates the tail-corrected Fourier transform of the
	// local potential at momentum q > 0. Returns ErrDomain for q = 0.
	LocalFourier(q float64) (float64, error)
	// ProjectorReal evaluates projector i of channel l at radius r > 0.
	// Returns ErrDomain for r ≤ 0.
	ProjectorReal(l, i int, r float64) (float64, error)
	// ProjectorFourier evaluates the 3D Fourier transform of projector i
	// of channel l at momentum q ≥ 0 (stable at q = 0).
	ProjectorFourier(l, i int, q float64) float64
	// EnergyCorrection returns the long-range electrostatic energy
	// correction scaled by the total electron count.
	EnergyCorrection(nElectrons float64) float64
}

// Compile-time check: NormConserving implements the flavor interface.
var _ Potential = (*NormConserving)(nil)

// wavefunction is one grouped atomic pseudo-wavefunction with its
// interpolant and Fourier-Bessel quadrature factors.
type wavefunction struct {
	label      string
	occupation float64
	table      []float64 // r·χ(r) on a mesh prefix
	itp        interp.PiecewiseLinear
	weights    []float64 // r²·χ·dr over the support
}

// projector is one grouped Kleinman-Bylander projector with its
// interpolant and Fourier-Bessel quadrature factors.
type projector struct {
	table   []float64 // r·β(r) on a mesh prefix
	itp     interp.PiecewiseLinear
	weights []float64 // r²·β·dr over the support
}

// NormConserving is an immutable norm-conserving pseudopotential record:
// validated tables in Hartree atomic units plus every cache the evaluator
// needs. Build is the only constructor; no method mutates the record.
type NormConserving struct {
	identifier  string
	description string

	zion int
	lmax int
	grid *radial.Grid

	vloc     []float64       // local potential on the full mesh, Hartree
	proj     [][]projector   // [l][i], outer length lmax+1
	coupling []*mat.SymDense // per-channel D blocks, Hartree^-1

	pswfc   [][]wavefunction // [l][i], may be empty
	rhoAtom []float64        // 4π·r²·ρ(r), may be nil

	vlocItp interp.PiecewiseLinear
	rhoItp  interp.PiecewiseLinear

	// locCorr[k] = (r[k]·vloc[k] + Z)·dr[k] — the -Z/r tail subtracted on
	// the mesh for the convergent local Fourier transform.
	locCorr []float64
	// energyNorm = Σ r[k]·locCorr[k], fixed factor of EnergyCorrection.
	energyNorm float64
}

// Identifier returns the opaque dataset label carried from the bundle.
func (p *NormConserving) Identifier() string { return p.identifier }

// Description returns the free-form provenance text of the bundle.
func (p *NormConserving) Description() string { return p.description }

// IonicCharge returns the integer valence charge of the ion core.
func (p *NormConserving) IonicCharge() int { return p.zion }

// LMax returns the maximum angular-momentum channel index.
func (p *NormConserving) LMax() int { return p.lmax }

// Grid returns the radial mesh the record samples its tables on.
func (p *NormConserving) Grid() *radial.Grid { return p.grid }

// NumProjectors returns the projector count of channel l, or 0 when l is
// outside 0..LMax.
func (p *NormConserving) NumProjectors(l int) int {
	if l < 0 || l >= len(p.proj) {
		return 0
	}
	return len(p.proj[l])
}

// Coupling returns a defensive copy of the channel-l coupling matrix in
// Hartree^-1, or nil when the channel holds no projectors.
// Panics if l lies outside 0..LMax (programmer error, as slice indexing).
func (p *NormConserving) Coupling(l int) *mat.SymDense {
	d := p.coupling[l]
	if d == nil {
		return nil
	}
	out := mat.NewSymDense(d.SymmetricDim(), nil)
	out.CopySym(d)
	return out
}

// CouplingAt returns the (i, j) coupling coefficient of channel l without
// copying the matrix; intended for the Hamiltonian inner loop.
// Panics on out-of-range indices.
func (p *NormConserving) CouplingAt(l, i, j int) float64 {
	return p.coupling[l].At(i, j)
}

// NumPseudoWavefunctions returns the pseudo-wavefunction count of channel
// l, or 0 when the channel (or the whole table) is absent.
func (p *NormConserving) NumPseudoWavefunctions(l int) int {
	if l < 0 || l >= len(p.pswfc) {
		return 0
	}
	return len(p.pswfc[l])
}

// Occupation returns the atomic occupation of pseudo-wavefunction i in
// channel l. Panics on out-of-range indices.
func (p *NormConserving) Occupation(l, i int) float64 {
	return p.pswfc[l][i].occupation
}

// WavefunctionLabel returns the atomic-state label ("3S", "3P", ...) of
// pseudo-wavefunction i in channel l. Panics on out-of-range indices.
func (p *NormConserving) WavefunctionLabel(l, i int) string {
	return p.pswfc[l][i].label
}

// HasValenceDensity reports whether the bundle carried a pseudo-atomic
// valence charge density table.
func (p *NormConserving) HasValenceDensity() bool { return p.rhoAtom != nil }
