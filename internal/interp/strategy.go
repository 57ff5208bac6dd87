// Package interp implements the interpolation pipeline: strategy resolution,
// keyframe stop bracketing, exponential smoothing and rounding.
package interp

import (
	"errors"

	"github.com/tphakala/go-animated-value/internal/easing"
	"github.com/tphakala/go-animated-value/internal/value"
)

// ErrUnsupportedKind indicates an interpolator cannot handle a value shape.
var ErrUnsupportedKind = errors.New("unsupported value kind")

// Interpolator computes the value at local parameter t between from and to.
// The pipeline only calls it with t in [0, 1]: progress outside the edge
// stops resolves to the edge value without interpolating.
type Interpolator interface {
	Interpolate(from, to value.Value, t float64) value.Value
}

// InterpolatorFunc adapts a plain function to Interpolator.
type InterpolatorFunc func(from, to value.Value, t float64) value.Value

// Interpolate implements Interpolator.
func (f InterpolatorFunc) Interpolate(from, to value.Value, t float64) value.Value {
	return f(from, to, t)
}

// KindChecker is an optional interface for interpolators restricted to some
// value shapes. The pipeline consults it once at construction.
type KindChecker interface {
	CheckKind(k value.Kind) error
}

// easedInterpolator applies an easing to t and blends componentwise.
type easedInterpolator struct {
	name   string
	ease   easing.Func
	params []float64
}

// Interpolate implements Interpolator.
func (e *easedInterpolator) Interpolate(from, to value.Value, t float64) value.Value {
	return value.Lerp(from, to, e.ease(t, e.params...))
}

// String returns the easing name.
func (e *easedInterpolator) String() string {
	return e.name
}

// Eased wraps the named easing into a shape-generic interpolator.
// Unknown names fall back to linear.
func Eased(name string, params ...float64) Interpolator {
	if _, ok := easing.Lookup(name); !ok {
		name = easing.DefaultName
	}
	return &easedInterpolator{
		name:   name,
		ease:   easing.Get(name),
		params: append([]float64(nil), params...),
	}
}

// Resolve collapses the configured strategy into one interpolator.
// A custom interpolator wins; otherwise the named easing is used, with an
// empty name meaning linear.
func Resolve(custom Interpolator, name string, params []float64) Interpolator {
	if custom != nil {
		return custom
	}
	if name == "" {
		name = easing.DefaultName
	}
	return Eased(name, params...)
}
