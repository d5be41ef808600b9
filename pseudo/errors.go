package pseudo

import "errors"

// Sentinel errors for record construction and evaluation.
var (
	// ErrUnsupported indicates the bundle declares pseudopotential features
	// this engine does not implement. The wrapped message enumerates every
	// offending feature found, not just the first.
	ErrUnsupported = errors.New("pseudo: unsupported pseudopotential feature")

	// ErrShape indicates malformed bundle geometry: table lengths that do
	// not match the mesh, channel tags out of range, or a coupling block
	// whose dimension disagrees with the projector count.
	ErrShape = errors.New("pseudo: bundle tables have inconsistent shape")

	// ErrDomain indicates a numerical precondition violation: real-space
	// projector evaluation at r = 0 or Fourier-space local-potential
	// evaluation at q = 0.
	ErrDomain = errors.New("pseudo: argument outside the valid domain")
)
