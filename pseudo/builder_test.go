package pseudo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgurevich/pwdft/pseudo"
	"github.com/sgurevich/pwdft/radial"
	"github.com/sgurevich/pwdft/upf"
)

//----------------------------------------------------------------------------//
// Feature validation
//----------------------------------------------------------------------------//

// TestBuild_RejectsCoreCorrection requires the error to name the feature.
func TestBuild_RejectsCoreCorrection(t *testing.T) {
	b := coulombBundle(10, 1)
	b.Header.CoreCorrection = true

	rec, err := pseudo.Build(b)
	assert.Nil(t, rec, "no partially-built record on failure")
	assert.ErrorIs(t, err, pseudo.ErrUnsupported)
	assert.Contains(t, err.Error(), "core correction")
}

// TestBuild_EnumeratesAllFeatures checks that a bundle declaring several
// incompatible features is diagnosed in a single pass.
func TestBuild_EnumeratesAllFeatures(t *testing.T) {
	b := coulombBundle(10, 1)
	b.Header.SpinOrbit = true
	b.Header.PseudoType = upf.TypeUltrasoft

	_, err := pseudo.Build(b)
	require.ErrorIs(t, err, pseudo.ErrUnsupported)
	assert.Contains(t, err.Error(), "spin-orbit")
	assert.Contains(t, err.Error(), "ultrasoft")
}

// TestBuild_RejectsEachPseudoType walks every incompatible type tag.
func TestBuild_RejectsEachPseudoType(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{upf.TypeSemilocal, "semilocal"},
		{upf.TypeUltrasoft, "ultrasoft"},
		{upf.TypePAW, "PAW"},
		{upf.TypeCoulomb, "Coulomb"},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			b := coulombBundle(10, 1)
			b.Header.PseudoType = tc.tag
			_, err := pseudo.Build(b)
			require.ErrorIs(t, err, pseudo.ErrUnsupported)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestBuild_AcceptsGIPAWFlagOnlyWhenAbsent covers the GIPAW reject path.
func TestBuild_RejectsGIPAW(t *testing.T) {
	b := coulombBundle(10, 1)
	b.Header.HasGIPAW = true
	_, err := pseudo.Build(b)
	require.ErrorIs(t, err, pseudo.ErrUnsupported)
	assert.Contains(t, err.Error(), "GIPAW")
}

//----------------------------------------------------------------------------//
// Shape validation
//----------------------------------------------------------------------------//

// TestBuild_ShapeErrors exercises the geometry guards one by one.
func TestBuild_ShapeErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*upf.Bundle)
	}{
		{"VlocLength", func(b *upf.Bundle) { b.VLocal = b.VLocal[:5] }},
		{"ProjectorChannelTag", func(b *upf.Bundle) { b.Projectors[0].L = 7 }},
		{"ProjectorNegativeTag", func(b *upf.Bundle) { b.Projectors[0].L = -1 }},
		{"ProjectorTooLong", func(b *upf.Bundle) {
			b.Projectors[0].Values = make([]float64, len(b.R)+1)
		}},
		{"ProjectorTooShort", func(b *upf.Bundle) { b.Projectors[0].Values = []float64{1} }},
		{"DIJDimension", func(b *upf.Bundle) { b.DIJ = b.DIJ[:4] }},
		{"DIJAsymmetric", func(b *upf.Bundle) { b.DIJ[1] = 0.2 }},
		{"RhoAtomLength", func(b *upf.Bundle) { b.RhoAtom = b.RhoAtom[:7] }},
		{"NonIntegerValence", func(b *upf.Bundle) { b.Header.Zvalence = 1.5 }},
		{"NegativeLMax", func(b *upf.Bundle) { b.Header.LMax = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := gaussianBundle()
			tc.mutate(b)
			rec, err := pseudo.Build(b)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, pseudo.ErrShape, "mutation %s must fail shape validation", tc.name)
		})
	}
}

// TestBuild_BadMesh verifies radial sentinels surface through Build.
func TestBuild_BadMesh(t *testing.T) {
	b := coulombBundle(10, 1)
	b.R[3] = b.R[2] // not strictly increasing
	_, err := pseudo.Build(b)
	assert.ErrorIs(t, err, radial.ErrNotIncreasing)
}

//----------------------------------------------------------------------------//
// Record assembly
//----------------------------------------------------------------------------//

// TestBuild_RoundTripIonicCharge: bundle Zvalence must come back exactly.
func TestBuild_RoundTripIonicCharge(t *testing.T) {
	for _, z := range []int{0, 1, 4, 12} {
		rec, err := pseudo.Build(coulombBundle(50, z))
		require.NoError(t, err)
		assert.Equal(t, z, rec.IonicCharge())
	}
}

// TestBuild_UnitConversion checks Ry→Ha on vloc and Ry⁻¹→Ha⁻¹ on DIJ.
func TestBuild_UnitConversion(t *testing.T) {
	b := gaussianBundle()
	rec, err := pseudo.Build(b)
	require.NoError(t, err)

	// VLocal was tabulated in Ry; the record must answer in Ha (halved).
	r0 := b.R[0]
	assert.InDelta(t, b.VLocal[0]/2, rec.LocalReal(r0), 1e-14,
		"vloc must be halved at mesh nodes")

	// DIJ was inverse-Rydberg; coupling coefficients must double.
	assert.InDelta(t, 2*b.DIJ[0], rec.CouplingAt(0, 0, 0), 1e-14)
	assert.InDelta(t, 2*b.DIJ[1], rec.CouplingAt(0, 0, 1), 1e-14)
	assert.InDelta(t, 2*b.DIJ[8], rec.CouplingAt(1, 0, 0), 1e-14)
}

// TestBuild_ChannelGrouping verifies per-channel demultiplexing and the
// sequential split of the combined coupling block.
func TestBuild_ChannelGrouping(t *testing.T) {
	rec, err := pseudo.Build(gaussianBundle())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.LMax())
	assert.Equal(t, 2, rec.NumProjectors(0))
	assert.Equal(t, 1, rec.NumProjectors(1))
	assert.Equal(t, 0, rec.NumProjectors(2), "channels beyond LMax are empty")
	assert.Equal(t, 0, rec.NumProjectors(-1))

	d0 := rec.Coupling(0)
	require.NotNil(t, d0)
	assert.Equal(t, 2, d0.SymmetricDim())
	d1 := rec.Coupling(1)
	require.NotNil(t, d1)
	assert.Equal(t, 1, d1.SymmetricDim())

	// Coupling returns a defensive copy: mutating it must not leak back.
	d0.SetSym(0, 0, 999)
	assert.NotEqual(t, 999.0, rec.CouplingAt(0, 0, 0))
}

// TestBuild_EmptyChannel allows a channel with no projectors below LMax.
func TestBuild_EmptyChannel(t *testing.T) {
	b := gaussianBundle()
	// Retag the p projector to l=1 already; drop the s-channel entries and
	// keep lmax=1 so channel 0 stays empty.
	b.Projectors = b.Projectors[2:]
	b.DIJ = []float64{3.0}

	rec, err := pseudo.Build(b)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.NumProjectors(0))
	assert.Equal(t, 1, rec.NumProjectors(1))
	assert.Nil(t, rec.Coupling(0), "empty channel has no coupling block")
}

// TestBuild_AuxiliaryData checks pswfc and valence-density carry-through.
func TestBuild_AuxiliaryData(t *testing.T) {
	rec, err := pseudo.Build(gaussianBundle())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.NumPseudoWavefunctions(0))
	assert.Equal(t, 0, rec.NumPseudoWavefunctions(1))
	assert.Equal(t, "1S", rec.WavefunctionLabel(0, 0))
	assert.Equal(t, 2.0, rec.Occupation(0, 0))
	assert.True(t, rec.HasValenceDensity())

	bare, err := pseudo.Build(coulombBundle(50, 1))
	require.NoError(t, err)
	assert.False(t, bare.HasValenceDensity())
	assert.Equal(t, 0, bare.NumPseudoWavefunctions(0))
}

// TestBuild_Metadata carries identifier and description through opaquely.
func TestBuild_Metadata(t *testing.T) {
	rec, err := pseudo.Build(gaussianBundle())
	require.NoError(t, err)
	assert.Equal(t, "gaussian-test", rec.Identifier())
	assert.Equal(t, "synthetic two-channel NC dataset", rec.Description())
}

// TestBuild_InputAliasing: mutating the bundle after Build must not
// change the record (the builder deep-copies every table).
func TestBuild_InputAliasing(t *testing.T) {
	b := coulombBundle(50, 1)
	rec, err := pseudo.Build(b)
	require.NoError(t, err)

	before := rec.LocalReal(b.R[10])
	b.VLocal[10] = 1e6
	assert.Equal(t, before, rec.LocalReal(b.R[10]), "record must not alias bundle tables")
}
