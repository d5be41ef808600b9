package pseudo

import "math"

// seriesWindow widens the small-argument branch with growing order:
// upward recurrence is only stable for x ≳ l, the Taylor series is
// accurate exactly where recurrence is not.
const seriesWindow = 1.0

// sphericalBesselJ evaluates the spherical Bessel function of the first
// kind j_l(x) for l ≥ 0, x ≥ 0.
//
// Branches:
//   - x == 0: exact limit (1 for l=0, 0 otherwise).
//   - x below l+seriesWindow: Taylor series around 0, free of the
//     sin/cos cancellation that plagues the closed forms at small x.
//   - otherwise: upward recurrence j_{k+1} = (2k+1)/x·j_k − j_{k-1}
//     seeded with the closed forms for j_0, j_1.
//
// Complexity: O(l) per call.
func sphericalBesselJ(l int, x float64) float64 {
	if x == 0 {
		if l == 0 {
			return 1
		}
		return 0
	}
	if x < float64(l)+seriesWindow {
		return sphericalBesselSeries(l, x)
	}
	j0 := math.Sin(x) / x
	if l == 0 {
		return j0
	}
	j1 := math.Sin(x)/(x*x) - math.Cos(x)/x
	jm, j := j0, j1
	for k := 1; k < l; k++ {
		jm, j = j, float64(2*k+1)/x*j-jm
	}
	return j
}

// sphericalBesselSeries sums the ascending series
//
//	j_l(x) = x^l/(2l+1)!! · Σ_k (−x²/2)^k / (k!·(2l+3)(2l+5)⋯(2l+2k+1))
//
// which converges for all x and is numerically benign for x ≲ l.
func sphericalBesselSeries(l int, x float64) float64 {
	pref := 1.0
	for k := 1; k <= l; k++ {
		pref *= x / float64(2*k+1)
	}
	x2 := x * x
	term, sum := 1.0, 1.0
	for k := 1; k <= 64; k++ {
		term *= -x2 / float64(2*k*(2*(l+k)+1))
		sum += term
		if math.Abs(term) <= 1e-17*math.Abs(sum) {
			break
		}
	}
	return pref * sum
}
