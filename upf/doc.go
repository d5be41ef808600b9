// Package upf defines the logical shape of a tabulated pseudopotential
// bundle in the Unified Pseudopotential Format (UPF) family of schemas.
//
// This package is the hand-over point between an external file parser and
// the pseudo package: a parser fills a Bundle, pseudo.Build consumes it.
// The byte-level UPF schema (XML attributes, mesh encodings, version quirks)
// is deliberately out of scope here — a Bundle only fixes *what* a parser
// must deliver, in the units the file family uses:
//
//   - local potential in Rydberg
//   - projector tables as r·β(r), tagged by angular momentum
//   - coupling coefficients as one combined inverse-Rydberg block
//   - optional pseudo-wavefunctions as r·χ(r) and a 4π·r²·ρ(r) density
//
// DecodeTOML reads a Bundle from a small TOML document. It exists for test
// fixtures and programmatic interchange; it is not a UPF parser.
package upf
