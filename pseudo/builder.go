package pseudo

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sgurevich/pwdft/radial"
	"github.com/sgurevich/pwdft/upf"
)

// symTol is the absolute tolerance for the coupling-block symmetry check.
const symTol = 1e-10

// Build validates a tabulated bundle, converts it to Hartree atomic units
// and assembles an immutable NormConserving record with all evaluation
// caches precomputed.
//
// Failure modes:
//   - ErrUnsupported when the header declares core correction, spin-orbit,
//     GIPAW data, or a semilocal/ultrasoft/PAW/Coulomb pseudo type; the
//     message enumerates every offending feature in one pass.
//   - ErrShape (or a wrapped radial sentinel) on inconsistent geometry.
//
// No partially-built record is ever returned: on error the result is nil.
// Complexity: O(total table length) time and memory, all front-loaded.
func Build(b *upf.Bundle) (*NormConserving, error) {
	if err := checkSupported(&b.Header); err != nil {
		return nil, err
	}

	grid, err := radial.New(b.R, b.Rab)
	if err != nil {
		return nil, fmt.Errorf("pseudo: bad radial mesh: %w", err)
	}
	n := grid.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: mesh needs at least 2 points, got %d", ErrShape, n)
	}
	if len(b.VLocal) != n {
		return nil, fmt.Errorf("%w: vloc has %d points, mesh has %d", ErrShape, len(b.VLocal), n)
	}

	zion := int(math.Round(b.Header.Zvalence))
	if math.Abs(b.Header.Zvalence-float64(zion)) > 1e-8 || zion < 0 {
		return nil, fmt.Errorf("%w: valence charge %v is not a non-negative integer", ErrShape, b.Header.Zvalence)
	}
	lmax := b.Header.LMax
	if lmax < 0 {
		return nil, fmt.Errorf("%w: negative lmax %d", ErrShape, lmax)
	}

	p := &NormConserving{
		identifier:  b.Header.Identifier,
		description: b.Header.Description,
		zion:        zion,
		lmax:        lmax,
		grid:        grid,
	}
	coords := grid.Coords()

	// Local potential: Ry → Ha, then one interpolant over the full mesh.
	p.vloc = make([]float64, n)
	copy(p.vloc, b.VLocal)
	floats.Scale(0.5, p.vloc)
	if err = p.vlocItp.Fit(coords, p.vloc); err != nil {
		return nil, fmt.Errorf("%w: vloc interpolant: %v", ErrShape, err)
	}

	// Non-local projectors: demultiplex per channel preserving file order.
	p.proj = make([][]projector, lmax+1)
	for idx, pr := range b.Projectors {
		if pr.L < 0 || pr.L > lmax {
			return nil, fmt.Errorf("%w: projector %d tagged l=%d outside 0..%d", ErrShape, idx, pr.L, lmax)
		}
		grouped, gerr := newProjector(grid, coords, pr.Values)
		if gerr != nil {
			return nil, fmt.Errorf("projector %d (l=%d): %w", idx, pr.L, gerr)
		}
		p.proj[pr.L] = append(p.proj[pr.L], grouped)
	}

	if err = p.splitCoupling(b.DIJ, len(b.Projectors)); err != nil {
		return nil, err
	}

	// Atomic pseudo-wavefunctions: carried through, same grouping rule.
	if err = p.groupWavefunctions(grid, coords, b.PseudoWavefunctions); err != nil {
		return nil, err
	}

	// Pseudo-atomic valence density, tabulated as 4π·r²·ρ(r).
	if len(b.RhoAtom) > 0 {
		if len(b.RhoAtom) != n {
			return nil, fmt.Errorf("%w: rho_atom has %d points, mesh has %d", ErrShape, len(b.RhoAtom), n)
		}
		p.rhoAtom = make([]float64, n)
		copy(p.rhoAtom, b.RhoAtom)
		if err = p.rhoItp.Fit(coords, p.rhoAtom); err != nil {
			return nil, fmt.Errorf("%w: rho_atom interpolant: %v", ErrShape, err)
		}
	}

	// Quadrature factors for the tail-corrected local Fourier transform
	// and the analytic energy correction.
	p.locCorr = make([]float64, n)
	for k := 0; k < n; k++ {
		p.locCorr[k] = (grid.R(k)*p.vloc[k] + float64(zion)) * grid.DR(k)
	}
	for k := 0; k < n; k++ {
		p.energyNorm += grid.R(k) * p.locCorr[k]
	}

	return p, nil
}

// checkSupported rejects bundle features outside the NCPP scope,
// collecting every offense so multi-feature files diagnose in one pass.
func checkSupported(h *upf.Header) error {
	var feats []string
	if h.CoreCorrection {
		feats = append(feats, "core correction")
	}
	if h.SpinOrbit {
		feats = append(feats, "spin-orbit")
	}
	switch h.PseudoType {
	case upf.TypeSemilocal:
		feats = append(feats, "semilocal")
	case upf.TypeUltrasoft:
		feats = append(feats, "ultrasoft")
	case upf.TypePAW:
		feats = append(feats, "PAW")
	case upf.TypeCoulomb:
		feats = append(feats, "Coulomb")
	}
	if h.HasGIPAW {
		feats = append(feats, "GIPAW data")
	}
	if len(feats) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupported, strings.Join(feats, ", "))
}

// newProjector validates one r·β table against the mesh and precomputes
// its interpolant plus the r²·β·dr Fourier-Bessel factors.
func newProjector(grid *radial.Grid, coords, values []float64) (projector, error) {
	var pr projector
	if len(values) < 2 || len(values) > grid.Len() {
		return pr, fmt.Errorf("%w: table length %d not in 2..%d", ErrShape, len(values), grid.Len())
	}
	pr.table = make([]float64, len(values))
	copy(pr.table, values)
	if err := pr.itp.Fit(coords[:len(pr.table)], pr.table); err != nil {
		return pr, fmt.Errorf("%w: interpolant: %v", ErrShape, err)
	}
	pr.weights = make([]float64, len(pr.table))
	for j := range pr.table {
		// table holds r·β, so r·table·dr = r²·β·dr.
		pr.weights[j] = grid.R(j) * pr.table[j] * grid.DR(j)
	}
	return pr, nil
}

// splitCoupling checks the combined inverse-Rydberg DIJ block and splits
// it into per-channel Hartree^-1 SymDense sub-matrices by walking channel
// boundaries sequentially: channel l occupies the next len(proj[l])
// rows/columns after all channels below it.
func (p *NormConserving) splitCoupling(dij []float64, nTot int) error {
	if len(dij) != nTot*nTot {
		return fmt.Errorf("%w: coupling block has %d entries, want %d", ErrShape, len(dij), nTot*nTot)
	}
	for i := 0; i < nTot; i++ {
		for j := i + 1; j < nTot; j++ {
			if math.Abs(dij[i*nTot+j]-dij[j*nTot+i]) > symTol {
				return fmt.Errorf("%w: coupling block not symmetric at (%d,%d)", ErrShape, i, j)
			}
		}
	}

	p.coupling = make([]*mat.SymDense, p.lmax+1)
	off := 0
	for l := 0; l <= p.lmax; l++ {
		nl := len(p.proj[l])
		if nl == 0 {
			continue
		}
		data := make([]float64, nl*nl)
		for i := 0; i < nl; i++ {
			for j := 0; j < nl; j++ {
				// Ry^-1 → Ha^-1: inverse energies double.
				data[i*nl+j] = 2 * dij[(off+i)*nTot+(off+j)]
			}
		}
		p.coupling[l] = mat.NewSymDense(nl, data)
		off += nl
	}
	return nil
}

// groupWavefunctions demultiplexes the optional atomic pseudo-wavefunction
// tables per channel, preserving file order, with the same per-table
// validation and caches as projectors.
func (p *NormConserving) groupWavefunctions(grid *radial.Grid, coords []float64, wfcs []upf.Wavefunction) error {
	maxL := -1
	for _, w := range wfcs {
		if w.L < 0 {
			return fmt.Errorf("%w: pswfc %q tagged with negative l", ErrShape, w.Label)
		}
		if w.L > maxL {
			maxL = w.L
		}
	}
	p.pswfc = make([][]wavefunction, maxL+1)
	for _, w := range wfcs {
		base, err := newProjector(grid, coords, w.Values)
		if err != nil {
			return fmt.Errorf("pswfc %q (l=%d): %w", w.Label, w.L, err)
		}
		p.pswfc[w.L] = append(p.pswfc[w.L], wavefunction{
			label:      w.Label,
			occupation: w.Occupation,
			table:      base.table,
			itp:        base.itp,
			weights:    base.weights,
		})
	}
	return nil
}
