// Package spline builds parametric path interpolators (Bezier and
// Catmull-Rom) for 2D and 3D vector values.
//
// A path either draws its endpoints from the values it is asked to
// interpolate between, or carries every point itself. In the first case the
// endpoints are read on each call, so a path follows whatever from and to the
// caller passes at that moment.
package spline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-animated-value/internal/interp"
	"github.com/tphakala/go-animated-value/internal/value"
)

// Errors returned by path constructors.
var (
	// ErrPointCount indicates the wrong number of control points for the path.
	ErrPointCount = errors.New("wrong control point count")

	// ErrInvalidOrder indicates a Bezier order outside 1-3.
	ErrInvalidOrder = errors.New("invalid bezier order")

	// ErrInvalidTension indicates a Catmull-Rom tension outside [0, 1].
	ErrInvalidTension = errors.New("invalid tension")

	// ErrInvalidRelative indicates an unknown relative mode name.
	ErrInvalidRelative = errors.New("invalid relative mode")
)

// Relative selects how supplied control points are placed.
type Relative int

const (
	// RelativeNone uses points as absolute coordinates.
	RelativeNone Relative = iota

	// RelativeStart offsets points by the start value.
	RelativeStart

	// RelativeStartEnd treats points as normalized [0, 1] coordinates
	// mapped per axis into the box between start and end.
	RelativeStartEnd
)

// String returns the configuration name of the mode.
func (r Relative) String() string {
	switch r {
	case RelativeStart:
		return "start"
	case RelativeStartEnd:
		return "start-end"
	default:
		return "none"
	}
}

// ParseRelative parses a relative mode name. The empty string, "none" and
// "absolute" all select RelativeNone.
func ParseRelative(s string) (Relative, error) {
	switch s {
	case "", "none", "absolute":
		return RelativeNone, nil
	case "start":
		return RelativeStart, nil
	case "start-end":
		return RelativeStartEnd, nil
	default:
		return RelativeNone, fmt.Errorf("%w: %q", ErrInvalidRelative, s)
	}
}

// Options is shared by both path types.
type Options struct {
	// ExplicitEndpoints makes the supplied points include the start and
	// end points. When false, endpoints come from the interpolated values.
	ExplicitEndpoints bool

	// Relative transforms the supplied points before evaluation.
	Relative Relative
}

// path holds what Bezier and Catmull-Rom have in common.
type path struct {
	points []value.Value
	kind   value.Kind
	opts   Options
}

func newPath(points []value.Value, opts Options) (path, error) {
	p := path{
		points: append([]value.Value(nil), points...),
		opts:   opts,
	}
	if len(points) == 0 {
		return p, nil
	}

	kind, err := value.SameKind(points...)
	if err != nil {
		return p, err
	}
	if !isVector(kind) {
		return p, fmt.Errorf("%w: paths need vec2 or vec3 points, got %s", interp.ErrUnsupportedKind, kind)
	}
	p.kind = kind
	return p, nil
}

func isVector(k value.Kind) bool {
	return k == value.KindVec2 || k == value.KindVec3
}

// CheckKind implements interp.KindChecker.
func (p *path) CheckKind(k value.Kind) error {
	if !isVector(k) {
		return fmt.Errorf("%w: paths need vec2 or vec3 values, got %s", interp.ErrUnsupportedKind, k)
	}
	if p.kind != value.KindInvalid && k != p.kind {
		return fmt.Errorf("%w: path points are %s, values are %s", value.ErrKindMismatch, p.kind, k)
	}
	return nil
}

// control returns the full point list for one evaluation.
func (p *path) control(from, to value.Value) []value.Value {
	if err := p.CheckKind(value.KindOf(from)); err != nil {
		panic(err)
	}
	if err := p.CheckKind(value.KindOf(to)); err != nil {
		panic(err)
	}

	out := make([]value.Value, 0, len(p.points)+2)
	if !p.opts.ExplicitEndpoints {
		out = append(out, from)
	}
	for _, pt := range p.points {
		out = append(out, p.place(pt, from, to))
	}
	if !p.opts.ExplicitEndpoints {
		out = append(out, to)
	}
	return out
}

// place applies the relative transform to one supplied point.
func (p *path) place(pt, from, to value.Value) value.Value {
	switch p.opts.Relative {
	case RelativeStart:
		return value.Add(pt, from)
	case RelativeStartEnd:
		return value.MapRange(pt, from, to)
	default:
		return pt
	}
}
