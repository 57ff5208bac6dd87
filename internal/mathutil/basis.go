// Package mathutil provides the scalar math shared by the interpolation and
// spline packages: clamping, linear blends and polynomial basis functions.
package mathutil

import (
	"math"
)

// binomials holds C(n, k) for n <= maxBernsteinDegree.
var binomials = [maxBernsteinDegree + 1][maxBernsteinDegree + 1]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp blends a and b linearly. t is not clamped, so values outside [0, 1]
// extrapolate along the same line.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Binomial returns the binomial coefficient C(n, k) for n up to a cubic.
// It returns 0 for k outside [0, n] and for n above maxBernsteinDegree.
func Binomial(n, k int) float64 {
	if n < 0 || n > maxBernsteinDegree || k < 0 || k > n {
		return 0
	}
	return binomials[n][k]
}

// Bernstein evaluates the Bernstein basis polynomial b(i, n) at t:
//
//	b(i, n)(t) = C(n, i) * t^i * (1-t)^(n-i)
//
// A Bezier curve of degree n is the sum of its control points weighted by
// b(0..n, n).
func Bernstein(n, i int, t float64) float64 {
	if i < 0 || i > n {
		return 0
	}
	return Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// BernsteinWeights fills dst with b(0..n, n)(t) and returns it.
// dst is grown when it holds fewer than n+1 entries.
func BernsteinWeights(dst []float64, n int, t float64) []float64 {
	if cap(dst) < n+1 {
		dst = make([]float64, n+1)
	}
	dst = dst[:n+1]
	for i := range dst {
		dst[i] = Bernstein(n, i, t)
	}
	return dst
}

// HermiteBasis returns the four cubic Hermite basis weights at u:
// h00 and h01 weight the segment endpoints, h10 and h11 their tangents.
func HermiteBasis(u float64) (h00, h10, h01, h11 float64) {
	u2 := u * u
	u3 := u2 * u

	h00 = hermiteCubic2*u3 - hermiteSquare3*u2 + 1
	h10 = u3 - hermiteCubic2*u2 + u
	h01 = -hermiteCubic2*u3 + hermiteSquare3*u2
	h11 = u3 - u2
	return h00, h10, h01, h11
}

// CentralDifference returns the Catmull-Rom style tangent scale for a
// neighbour difference: (1 - tension) / 2.
func CentralDifference(tension float64) float64 {
	return (1 - tension) / halfDivisor
}

// NearlyEqual reports whether a and b differ by less than eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
