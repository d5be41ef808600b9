package pseudo

// Test-bridge exposing the private spherical Bessel kernel to the
// external pseudo_test package, without widening the production API.

// SphericalBesselJ_TestOnly forwards to the private sphericalBesselJ.
func SphericalBesselJ_TestOnly(l int, x float64) float64 {
	return sphericalBesselJ(l, x)
}
