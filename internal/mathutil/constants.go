package mathutil

// Cubic Hermite basis coefficients.
// h00(u) = 2u³ - 3u² + 1, h10(u) = u³ - 2u² + u, h01(u) = -2u³ + 3u², h11(u) = u³ - u²
const (
	hermiteCubic2  = 2.0
	hermiteSquare3 = 3.0
)

// Bernstein polynomials are only tabulated up to this degree (cubic Bezier).
const maxBernsteinDegree = 3

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
