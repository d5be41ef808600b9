// Package pseudo implements the norm-conserving pseudopotential (NCPP)
// evaluation engine of pwdft: construction of an immutable, unit-converted
// pseudopotential record from a tabulated upf.Bundle, and fast evaluation
// of the local potential and Kleinman-Bylander projectors in real and
// reciprocal space.
//
// 🚀 What does it compute?
//
//	Build validates a bundle, converts Rydberg data to Hartree atomic
//	units, groups projectors per angular-momentum channel and front-loads
//	everything the hot path needs:
//	  • piecewise-linear interpolants of vloc and every projector table
//	  • quadrature factors (r·vloc(r)+Z)·dr and r²·β(r)·dr
//
//	A NormConserving record then answers, per plane wave and projector:
//
//	  LocalReal(r)            = vloc(r)                       (interpolated)
//	  LocalFourier(q)         = 4π/q·(Σ sin(q·rₖ)·wₖ − Z/q)   (tail-corrected)
//	  ProjectorReal(l,i,r)    = βᵢˡ(r)                        (table is r·β)
//	  ProjectorFourier(l,i,q) = 4π·Σ jₗ(q·rₖ)·wₖ             (Fourier-Bessel)
//	  EnergyCorrection(n)     = 4π·n·Σ rₖ·wₖ                  (analytic tail)
//
// The -Z/r tail of the local potential is not Fourier-transformable by
// direct quadrature; subtracting it on the mesh and adding back its known
// analytic transform keeps the sum convergent. jₗ is the spherical Bessel
// function of the first kind, evaluated with a small-argument series so
// q → 0 never divides by zero.
//
// ✨ Guarantees:
//
//   - Immutable after Build — every query is pure and race-free; share one
//     record across as many goroutines as you have k-points.
//   - Explicit failure — incompatible bundle features (core correction,
//     spin-orbit, semilocal/ultrasoft/PAW/Coulomb types, GIPAW data) are
//     reported all at once as ErrUnsupported; r=0 and q=0 precondition
//     violations return ErrDomain instead of silent NaN/Inf.
//   - Bounded work — every query is an O(mesh) sum or an O(1) lookup plus
//     interpolation; nothing allocates proportionally to call count.
//
// Unit convention (documented design assumption, not a UPF guarantee):
// projector tables are taken as Bohr^(-1/2)-normalized and coupling
// coefficients as inverse-Rydberg, matching Hartwigsen-Goedecker-Hutter
// style files; the physically relevant product β·D·β is invariant under
// the convention choice.
package pseudo
