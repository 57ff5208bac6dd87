package animation

import (
	"github.com/tphakala/go-animated-value/internal/spline"
)

// Relative selects how path control points are placed.
type Relative = spline.Relative

// Relative placement modes.
const (
	// RelativeNone uses control points as absolute coordinates.
	RelativeNone = spline.RelativeNone

	// RelativeStart offsets control points by the start value.
	RelativeStart = spline.RelativeStart

	// RelativeStartEnd maps control points, given in [0, 1] per axis,
	// into the box spanned by the start and end values.
	RelativeStartEnd = spline.RelativeStartEnd
)

// DefaultTension is the conventional Catmull-Rom tension.
const DefaultTension = spline.DefaultTension

// PathOptions configures BezierPath and CatmullRomPath.
type PathOptions = spline.Options

// ParseRelative parses "none", "start" or "start-end".
func ParseRelative(s string) (Relative, error) {
	return spline.ParseRelative(s)
}

// BezierPath returns an interpolator following a Bezier curve of the given
// order (1 linear, 2 quadratic, 3 cubic).
//
// Without explicit endpoints the curve starts and ends at the values being
// interpolated and points holds exactly order-1 inner control points. With
// explicit endpoints points holds all order+1 points. Points must be Vec2 or
// Vec3.
func BezierPath(order int, points []Value, opts PathOptions) (Interpolator, error) {
	b, err := spline.NewBezier(order, points, opts)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CatmullRomPath returns an interpolator following a Catmull-Rom spline
// through points. Tension 0 is the classic spline and 1 flattens the
// tangents. With fewer than four points in total the path is a straight line.
func CatmullRomPath(points []Value, tension float64, opts PathOptions) (Interpolator, error) {
	c, err := spline.NewCatmullRom(points, tension, opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}
