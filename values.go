package animation

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tphakala/go-animated-value/internal/easing"
	"github.com/tphakala/go-animated-value/internal/interp"
	"github.com/tphakala/go-animated-value/internal/value"
)

// Value types. See the value kinds below for the closed set of shapes.
type (
	// Value is one of Scalar, Vec2, Vec3 or Color.
	Value = value.Value

	// Kind identifies the shape of a Value.
	Kind = value.Kind

	// Scalar is a single number.
	Scalar = value.Scalar

	// Vec2 is a 2D vector backed by gonum's r2.Vec.
	Vec2 = value.Vec2

	// Vec3 is a 3D vector backed by gonum's r3.Vec.
	Vec3 = value.Vec3

	// Color is an RGB colour with optional alpha.
	Color = value.Color

	// Stop is a keyframe: the value the output passes through at a progress.
	Stop = interp.Stop

	// Interpolator computes the value between two stops.
	Interpolator = interp.Interpolator

	// InterpolatorFunc adapts a function to Interpolator.
	InterpolatorFunc = interp.InterpolatorFunc

	// KindChecker may be implemented by an Interpolator to reject value
	// kinds when the animation is built.
	KindChecker = interp.KindChecker
)

// Value kinds.
const (
	KindScalar = value.KindScalar
	KindVec2   = value.KindVec2
	KindVec3   = value.KindVec3
	KindColor  = value.KindColor
)

// NewVec2 returns the 2D vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return value.NewVec2(x, y)
}

// NewVec3 returns the 3D vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return value.NewVec3(x, y, z)
}

// RGB returns an opaque colour without an explicit alpha channel.
func RGB(r, g, b float64) Color {
	return value.RGB(r, g, b)
}

// RGBA returns a colour carrying alpha.
func RGBA(r, g, b, a float64) Color {
	return value.RGBA(r, g, b, a)
}

// Hex parses "#rrggbb" or "#rgb" into a colour without alpha.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %w", value.ErrInvalidValue, err)
	}
	return Color{Color: c}, nil
}

// Lerp blends two values of the same kind componentwise. It panics with
// ErrKindMismatch on different kinds.
func Lerp(a, b Value, t float64) Value {
	return value.Lerp(a, b, t)
}

// RoundValue rounds every component half away from zero. It is the
// rounding applied by Config.Round.
func RoundValue(v Value) Value {
	return value.Round(v)
}

// Eased returns an interpolator applying the named easing. Unknown names
// fall back to linear.
func Eased(name string, params ...float64) Interpolator {
	return interp.Eased(name, params...)
}

// Ease evaluates the named easing at t. ok is false for unknown names.
func Ease(name string, t float64, params ...float64) (v float64, ok bool) {
	f, ok := easing.Lookup(name)
	if !ok {
		return 0, false
	}
	return f(t, params...), true
}

// EasingNames lists every easing name in sorted order.
func EasingNames() []string {
	return easing.Names()
}

// HasEasing reports whether name is a known easing.
func HasEasing(name string) bool {
	_, ok := easing.Lookup(name)
	return ok
}

// Components returns the numeric components of v: one for Scalar, two for
// Vec2, three for Vec3 and four (alpha last) for Color.
func Components(v Value) []float64 {
	return value.Components(v)
}
