package radial

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrEmptyGrid indicates the coordinate slice has no points.
	ErrEmptyGrid = errors.New("radial: mesh must contain at least one point")
	// ErrLengthMismatch indicates coordinates and weights differ in length.
	ErrLengthMismatch = errors.New("radial: coordinate and weight slices must have equal length")
	// ErrNotIncreasing indicates coordinates are not strictly increasing.
	ErrNotIncreasing = errors.New("radial: coordinates must be strictly increasing")
	// ErrNonPositive indicates a coordinate at or below zero.
	ErrNonPositive = errors.New("radial: coordinates must be strictly positive")
)

// Grid is an ordered radial mesh with per-point integration weights.
// It is immutable once built; R and DR are private copies of the
// constructor's inputs.
type Grid struct {
	r  []float64
	dr []float64
}

// New constructs a Grid from coordinates r and integration weights dr.
// It deep-copies both slices to guarantee immutability.
// Returns ErrEmptyGrid, ErrLengthMismatch, ErrNonPositive or
// ErrNotIncreasing on malformed input.
// Complexity: O(n) time and memory.
func New(r, dr []float64) (*Grid, error) {
	if len(r) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(r) != len(dr) {
		return nil, ErrLengthMismatch
	}
	if r[0] <= 0 {
		return nil, ErrNonPositive
	}
	for i := 1; i < len(r); i++ {
		if r[i] <= r[i-1] {
			return nil, ErrNotIncreasing
		}
	}
	g := &Grid{
		r:  make([]float64, len(r)),
		dr: make([]float64, len(dr)),
	}
	copy(g.r, r)
	copy(g.dr, dr)

	return g, nil
}

// Linear constructs a uniformly spaced mesh of n points covering
// [rmin, rmin+(n-1)·step] with constant weight step.
// The first point must be positive and step must be positive.
// Complexity: O(n).
func Linear(rmin, step float64, n int) (*Grid, error) {
	if n <= 0 {
		return nil, ErrEmptyGrid
	}
	if rmin <= 0 || step <= 0 {
		return nil, ErrNonPositive
	}
	r := make([]float64, n)
	dr := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = rmin + float64(i)*step
		dr[i] = step
	}
	return &Grid{r: r, dr: dr}, nil
}

// Len returns the number of mesh points. Complexity: O(1).
func (g *Grid) Len() int { return len(g.r) }

// R returns the coordinate of point i. Complexity: O(1).
func (g *Grid) R(i int) float64 { return g.r[i] }

// DR returns the integration weight of point i. Complexity: O(1).
func (g *Grid) DR(i int) float64 { return g.dr[i] }

// Rmin returns the first (smallest) coordinate. Complexity: O(1).
func (g *Grid) Rmin() float64 { return g.r[0] }

// Rmax returns the last (largest) coordinate. Complexity: O(1).
func (g *Grid) Rmax() float64 { return g.r[len(g.r)-1] }

// Coords returns a copy of the coordinate slice. Complexity: O(n).
func (g *Grid) Coords() []float64 {
	out := make([]float64, len(g.r))
	copy(out, g.r)
	return out
}

// Weights returns a copy of the integration-weight slice. Complexity: O(n).
func (g *Grid) Weights() []float64 {
	out := make([]float64, len(g.dr))
	copy(out, g.dr)
	return out
}

// Integrate evaluates the mesh quadrature Σ f[i]·dr[i] over the first
// len(f) points. f may sample a prefix of the mesh (compactly supported
// tables use fewer points than the full grid).
// Returns ErrLengthMismatch if f is longer than the mesh.
// Complexity: O(len(f)).
func (g *Grid) Integrate(f []float64) (float64, error) {
	if len(f) > len(g.r) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i, v := range f {
		sum += v * g.dr[i]
	}
	return sum, nil
}
