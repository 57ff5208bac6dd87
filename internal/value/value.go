// Package value implements the closed set of animatable value shapes and the
// arithmetic the interpolation pipeline needs on them.
//
// A Value is exactly one of Scalar, Vec2, Vec3 or Color. Every operation in
// this package switches exhaustively over those four shapes. Mixing shapes is
// a programmer error: callers validate shapes once with SameKind and the
// arithmetic helpers panic with ErrKindMismatch when that contract is broken.
package value

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	// KindInvalid is reported for nil values.
	KindInvalid Kind = iota
	// KindScalar is a single float64.
	KindScalar
	// KindVec2 is a 2D vector.
	KindVec2
	// KindVec3 is a 3D vector.
	KindVec3
	// KindColor is an RGB colour with optional alpha.
	KindColor
)

// String returns the lower-case shape name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindColor:
		return "color"
	default:
		return "invalid"
	}
}

// Errors reported by shape validation.
var (
	// ErrKindMismatch indicates two values of different shapes were combined.
	ErrKindMismatch = errors.New("value kind mismatch")

	// ErrInvalidValue indicates a nil value.
	ErrInvalidValue = errors.New("invalid value")
)

// Value is an animatable value. The interface is sealed.
type Value interface {
	Kind() Kind
	isValue()
}

// Scalar is a plain number.
type Scalar float64

// Vec2 is a 2D vector backed by gonum's r2.Vec.
type Vec2 struct {
	r2.Vec
}

// Vec3 is a 3D vector backed by gonum's r3.Vec.
type Vec3 struct {
	r3.Vec
}

// Color is an RGB colour with an optional alpha channel. Channels use
// go-colorful's range of [0, 1], the range Hex parses into.
// When HasAlpha is false the alpha is treated as 1 in arithmetic.
type Color struct {
	colorful.Color
	A        float64
	HasAlpha bool
}

// Kind implements Value.
func (Scalar) Kind() Kind { return KindScalar }

// Kind implements Value.
func (Vec2) Kind() Kind { return KindVec2 }

// Kind implements Value.
func (Vec3) Kind() Kind { return KindVec3 }

// Kind implements Value.
func (Color) Kind() Kind { return KindColor }

func (Scalar) isValue() {}
func (Vec2) isValue()   {}
func (Vec3) isValue()   {}
func (Color) isValue()  {}

// NewVec2 creates a Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{r2.Vec{X: x, Y: y}}
}

// NewVec3 creates a Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{r3.Vec{X: x, Y: y, Z: z}}
}

// RGB creates an opaque colour without an explicit alpha channel.
func RGB(r, g, b float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}}
}

// RGBA creates a colour with an explicit alpha channel.
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a, HasAlpha: true}
}

// Alpha returns the alpha channel, defaulting to 1 when absent.
func (c Color) Alpha() float64 {
	if !c.HasAlpha {
		return 1
	}
	return c.A
}

// String formats the scalar.
func (s Scalar) String() string { return fmt.Sprintf("%g", float64(s)) }

// String formats the vector as (x, y).
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// String formats the vector as (x, y, z).
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// String formats the colour as rgb(r, g, b) or rgba(r, g, b, a).
func (c Color) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// KindOf returns the kind of v, or KindInvalid for nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}

// SameKind checks that every value is non-nil and shares one shape.
// It returns that shape.
func SameKind(values ...Value) (Kind, error) {
	kind := KindInvalid
	for i, v := range values {
		k := KindOf(v)
		if k == KindInvalid {
			return KindInvalid, fmt.Errorf("%w: value %d is nil", ErrInvalidValue, i)
		}
		if kind == KindInvalid {
			kind = k
			continue
		}
		if k != kind {
			return KindInvalid, fmt.Errorf("%w: value %d is %s, expected %s", ErrKindMismatch, i, k, kind)
		}
	}
	return kind, nil
}

// Components returns the numeric components of v in declaration order.
// Colours always report four components, alpha included.
func Components(v Value) []float64 {
	switch x := v.(type) {
	case Scalar:
		return []float64{float64(x)}
	case Vec2:
		return []float64{x.X, x.Y}
	case Vec3:
		return []float64{x.X, x.Y, x.Z}
	case Color:
		return []float64{x.R, x.G, x.B, x.Alpha()}
	default:
		return nil
	}
}

func mismatch(a, b Value) error {
	return fmt.Errorf("%w: %s and %s", ErrKindMismatch, KindOf(a), KindOf(b))
}
