package spline

import (
	"fmt"
	"math"

	"github.com/tphakala/go-animated-value/internal/mathutil"
	"github.com/tphakala/go-animated-value/internal/value"
)

// CatmullRom is a piecewise cubic Hermite path through every control point.
type CatmullRom struct {
	path
	tension float64
}

// NewCatmullRom creates a Catmull-Rom path.
//
// Tension in [0, 1] scales the interior tangents by (1 - tension); 0 is the
// classic Catmull-Rom spline and 1 gives zero tangents. With fewer than four
// points in total the path is a straight line between its endpoints.
func NewCatmullRom(points []value.Value, tension float64, opts Options) (*CatmullRom, error) {
	if tension < 0 || tension > 1 || math.IsNaN(tension) {
		return nil, fmt.Errorf("%w: %v (must be in [0, 1])", ErrInvalidTension, tension)
	}
	if opts.ExplicitEndpoints && len(points) < minExplicitPoints {
		return nil, fmt.Errorf("%w: explicit endpoints need at least %d points, got %d",
			ErrPointCount, minExplicitPoints, len(points))
	}

	p, err := newPath(points, opts)
	if err != nil {
		return nil, err
	}
	return &CatmullRom{path: p, tension: tension}, nil
}

// Tension returns the configured tension.
func (c *CatmullRom) Tension() float64 {
	return c.tension
}

// Interpolate evaluates the spline at global parameter t.
// It panics when from or to is not a vector of the path's shape.
func (c *CatmullRom) Interpolate(from, to value.Value, t float64) value.Value {
	pts := c.control(from, to)
	if len(pts) < minCatmullRomPoints {
		return value.Lerp(pts[0], pts[len(pts)-1], t)
	}

	segments := len(pts) - 1
	scaled := t * float64(segments)
	seg := int(math.Floor(scaled))
	seg = min(max(seg, 0), segments-1)
	u := scaled - float64(seg)

	h00, h10, h01, h11 := mathutil.HermiteBasis(u)
	return value.Combine(
		[]float64{h00, h10, h01, h11},
		[]value.Value{pts[seg], c.tangent(pts, seg), pts[seg+1], c.tangent(pts, seg+1)},
	)
}

// tangent returns the scaled tangent at point i. The end tangents mirror
// the neighbouring point across the endpoint, which reduces to the one-sided
// difference (1 - tension) * (p[1] - p[0]).
func (c *CatmullRom) tangent(pts []value.Value, i int) value.Value {
	scale := mathutil.CentralDifference(c.tension)
	last := len(pts) - 1

	switch i {
	case 0:
		return value.Combine([]float64{2 * scale, -2 * scale}, []value.Value{pts[1], pts[0]})
	case last:
		return value.Combine([]float64{2 * scale, -2 * scale}, []value.Value{pts[last], pts[last-1]})
	default:
		return value.Combine([]float64{scale, -scale}, []value.Value{pts[i+1], pts[i-1]})
	}
}
