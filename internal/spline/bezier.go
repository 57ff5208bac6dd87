package spline

import (
	"fmt"

	"github.com/tphakala/go-animated-value/internal/mathutil"
	"github.com/tphakala/go-animated-value/internal/value"
)

// Bezier is a linear, quadratic or cubic Bezier path.
type Bezier struct {
	path
	order int
}

// NewBezier creates a Bezier path of the given order (1-3).
//
// With endpoints drawn from the interpolated values, points holds exactly
// order-1 interior control points. With explicit endpoints it holds all
// order+1 points.
func NewBezier(order int, points []value.Value, opts Options) (*Bezier, error) {
	if order < minBezierOrder || order > maxBezierOrder {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidOrder, order, minBezierOrder, maxBezierOrder)
	}

	want := order - 1
	if opts.ExplicitEndpoints {
		want = order + 1
	}
	if len(points) != want {
		return nil, fmt.Errorf("%w: order %d needs %d points, got %d", ErrPointCount, order, want, len(points))
	}

	p, err := newPath(points, opts)
	if err != nil {
		return nil, err
	}
	return &Bezier{path: p, order: order}, nil
}

// Order returns the curve order.
func (b *Bezier) Order() int {
	return b.order
}

// Interpolate evaluates the curve at t with the Bernstein basis.
// It panics when from or to is not a vector of the path's shape.
func (b *Bezier) Interpolate(from, to value.Value, t float64) value.Value {
	ctrl := b.control(from, to)
	weights := mathutil.BernsteinWeights(nil, b.order, t)
	return value.Combine(weights, ctrl)
}
