package upf

// Canonical PseudoType tags used by the UPF schema family.
const (
	// TypeNormConserving tags norm-conserving pseudopotential data.
	TypeNormConserving = "NC"
	// TypeSemilocal tags semilocal pseudopotential data.
	TypeSemilocal = "SL"
	// TypeUltrasoft tags ultrasoft (Vanderbilt) pseudopotential data.
	TypeUltrasoft = "US"
	// TypePAW tags projector-augmented-wave datasets.
	TypePAW = "PAW"
	// TypeCoulomb tags a bare -Z/r Coulomb "pseudopotential".
	TypeCoulomb = "1/r"
)

// Header carries the bundle-wide flags and scalars of a UPF file.
type Header struct {
	// Identifier is an opaque dataset label (typically the file name).
	Identifier string `toml:"identifier"`
	// Description is free-form provenance text carried through unchanged.
	Description string `toml:"description"`
	// PseudoType is one of the Type* tags above.
	PseudoType string `toml:"pseudo_type"`
	// CoreCorrection reports non-linear core-correction data in the file.
	CoreCorrection bool `toml:"core_correction"`
	// SpinOrbit reports relativistic spin-orbit channels in the file.
	SpinOrbit bool `toml:"has_so"`
	// HasGIPAW reports GIPAW reconstruction data in the file.
	HasGIPAW bool `toml:"has_gipaw"`
	// Zvalence is the valence charge of the ion core. UPF stores it as a
	// float but it is integer-valued for every supported dataset.
	Zvalence float64 `toml:"z_valence"`
	// LMax is the maximum angular-momentum channel of the non-local part.
	LMax int `toml:"l_max"`
}

// Projector is one non-local Kleinman-Bylander projector table.
// Values sample r·β(r) on a prefix of the radial mesh; compactly supported
// projectors use fewer points than the full mesh.
type Projector struct {
	// L is the angular-momentum channel tag, 0 ≤ L ≤ Header.LMax.
	L int `toml:"l"`
	// Values holds r·β(r) in the file's Ry·Bohr^(-1/2) convention.
	Values []float64 `toml:"values"`
}

// Wavefunction is one atomic pseudo-wavefunction table (r·χ(r)),
// carried through for initial-guess construction downstream.
type Wavefunction struct {
	// L is the angular-momentum channel tag.
	L int `toml:"l"`
	// Label names the atomic state, e.g. "3S".
	Label string `toml:"label"`
	// Occupation is the atomic occupation of the state.
	Occupation float64 `toml:"occupation"`
	// Values holds r·χ(r) on a prefix of the mesh.
	Values []float64 `toml:"values"`
}

// Bundle is the raw tabulated data a UPF parser hands to pseudo.Build.
// All energies are in Rydberg, all lengths in Bohr; unit conversion to
// Hartree atomic units is the builder's job, not the parser's.
type Bundle struct {
	Header Header `toml:"header"`

	// R and Rab are the radial mesh and its derivative/integration
	// weights (the UPF <PP_R>/<PP_RAB> tables).
	R   []float64 `toml:"r"`
	Rab []float64 `toml:"rab"`

	// VLocal is the local potential sampled on the full mesh, in Ry.
	VLocal []float64 `toml:"v_local"`

	// Projectors lists every non-local projector, any channel order.
	Projectors []Projector `toml:"projectors"`

	// DIJ is the combined coupling-coefficient block for all channels
	// concatenated in channel order, row-major, in Ry^-1. Its dimension
	// equals the total projector count.
	DIJ []float64 `toml:"dij"`

	// PseudoWavefunctions optionally lists atomic pseudo-wavefunctions.
	PseudoWavefunctions []Wavefunction `toml:"pswfc"`

	// RhoAtom optionally holds the pseudo-atomic valence charge density
	// as 4π·r²·ρ(r) on the full mesh.
	RhoAtom []float64 `toml:"rho_atom"`
}

// NumProjectors returns the total projector count across all channels.
func (b *Bundle) NumProjectors() int {
	return len(b.Projectors)
}

// ProjectorsWithL returns the projectors of channel l in file order.
// The returned slice shares the Bundle's tables; treat it as read-only.
func (b *Bundle) ProjectorsWithL(l int) []Projector {
	var out []Projector
	for _, p := range b.Projectors {
		if p.L == l {
			out = append(out, p)
		}
	}
	return out
}
