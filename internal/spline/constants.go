package spline

// Bezier order limits. The order fixes the total control point count at
// order+1.
const (
	minBezierOrder = 1
	maxBezierOrder = 3
)

// Catmull-Rom needs at least this many points in total, endpoints included.
// Below it the path degrades to a straight line between the endpoints.
const minCatmullRomPoints = 4

// Explicit endpoints need at least a start and an end point.
const minExplicitPoints = 2

// DefaultTension is the conventional Catmull-Rom tension.
const DefaultTension = 0.5
