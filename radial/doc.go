// Package radial provides the one-dimensional mesh every other pwdft
// component samples its data on: an ordered sequence of increasing positive
// coordinates r[0..n-1] paired with per-point integration weights dr[0..n-1].
//
// For a linear mesh dr is simply the constant spacing; for a logarithmic
// mesh dr[i] encodes the local scale factor, so that in either case
//
//	Σ f(r[i])·dr[i] ≈ ∫ f(r) dr
//
// holds over the mesh range. That single quadrature rule is all the
// downstream Fourier-Bessel transforms need.
//
// A Grid is immutable once constructed: New deep-copies its inputs, and no
// method mutates the mesh. All operations are O(1) or O(n) with no hidden
// allocation beyond the constructor's copies.
package radial
