// Package pwdft is a plane-wave density-functional-theory toolkit for
// periodic Kohn-Sham-like eigenproblems — from radial-grid primitives to
// fast pseudopotential evaluation in real and reciprocal space.
//
// 🚀 What is pwdft?
//
//	A pure-Go numerical library that brings together:
//		• Radial grids: linear & logarithmic meshes with quadrature weights
//		• UPF bundles: the logical shape of tabulated pseudopotential data
//		• Norm-conserving pseudopotentials: validated, unit-converted records
//		• Evaluation: local potential & Kleinman-Bylander projectors, in
//		  real space and Fourier space, plus the analytic energy correction
//
// ✨ Why choose pwdft?
//
//   - Front-loaded cost – interpolants & quadrature factors built once,
//     every query afterwards is a bounded, allocation-light sum
//   - Race-free by construction – records are immutable after Build;
//     hammer one record from as many goroutines as you like
//   - Explicit failure – unsupported pseudopotential features and numeric
//     domain violations surface as sentinel errors, never as silent NaNs
//
// Everything is organized under three subpackages:
//
//	radial/ — radial mesh type, validation & quadrature
//	upf/    — tabulated-bundle contract handed over by a UPF parser
//	pseudo/ — record builder, caches and the evaluation engine
//
// Quick sketch of the data flow:
//
//	upf.Bundle ──Build──▶ pseudo.NormConserving ──▶ LocalFourier(q)
//	                      (immutable record)        ProjectorFourier(l,i,q)
//	                                                EnergyCorrection(n)
//
// Dive into the per-package doc.go files for formulas, conventions and
// complexity notes.
//
//	go get github.com/sgurevich/pwdft/pseudo
package pwdft
