package value

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-animated-value/internal/mathutil"
)

// Lerp blends a and b componentwise: a + (b-a)*t. t is not clamped.
// Colour alpha defaults to 1 on either side; the result carries alpha when
// either endpoint does.
func Lerp(a, b Value, t float64) Value {
	switch x := a.(type) {
	case Scalar:
		y, ok := b.(Scalar)
		if !ok {
			panic(mismatch(a, b))
		}
		return Scalar(mathutil.Lerp(float64(x), float64(y), t))
	case Vec2:
		y, ok := b.(Vec2)
		if !ok {
			panic(mismatch(a, b))
		}
		return Vec2{r2.Add(x.Vec, r2.Scale(t, r2.Sub(y.Vec, x.Vec)))}
	case Vec3:
		y, ok := b.(Vec3)
		if !ok {
			panic(mismatch(a, b))
		}
		return Vec3{r3.Add(x.Vec, r3.Scale(t, r3.Sub(y.Vec, x.Vec)))}
	case Color:
		y, ok := b.(Color)
		if !ok {
			panic(mismatch(a, b))
		}
		out := Color{Color: x.BlendRgb(y.Color, t)}
		if x.HasAlpha || y.HasAlpha {
			out.A = mathutil.Lerp(x.Alpha(), y.Alpha(), t)
			out.HasAlpha = true
		}
		return out
	default:
		panic(mismatch(a, b))
	}
}

// Add returns a + b componentwise.
func Add(a, b Value) Value {
	return Combine([]float64{1, 1}, []Value{a, b})
}

// Combine returns the weighted sum Σ weights[i]*values[i].
// All values must share a shape and the slices must have equal, non-zero
// length. Colour alpha takes part in the sum when any input carries it.
func Combine(weights []float64, values []Value) Value {
	if len(weights) != len(values) || len(values) == 0 {
		panic(fmt.Sprintf("value: combine needs equal non-empty slices, got %d weights and %d values",
			len(weights), len(values)))
	}

	switch values[0].(type) {
	case Scalar:
		var sum Scalar
		for i, v := range values {
			s, ok := v.(Scalar)
			if !ok {
				panic(mismatch(values[0], v))
			}
			sum += Scalar(weights[i]) * s
		}
		return sum
	case Vec2:
		var sum r2.Vec
		for i, v := range values {
			p, ok := v.(Vec2)
			if !ok {
				panic(mismatch(values[0], v))
			}
			sum = r2.Add(sum, r2.Scale(weights[i], p.Vec))
		}
		return Vec2{sum}
	case Vec3:
		var sum r3.Vec
		for i, v := range values {
			p, ok := v.(Vec3)
			if !ok {
				panic(mismatch(values[0], v))
			}
			sum = r3.Add(sum, r3.Scale(weights[i], p.Vec))
		}
		return Vec3{sum}
	case Color:
		var out Color
		for i, v := range values {
			c, ok := v.(Color)
			if !ok {
				panic(mismatch(values[0], v))
			}
			w := weights[i]
			out.R += w * c.R
			out.G += w * c.G
			out.B += w * c.B
			out.A += w * c.Alpha()
			out.HasAlpha = out.HasAlpha || c.HasAlpha
		}
		if !out.HasAlpha {
			out.A = 0
		}
		return out
	default:
		panic(mismatch(values[0], values[0]))
	}
}

// MapRange maps normalized coordinates p into the box spanned by from and
// to, per axis: from + p*(to-from).
func MapRange(p, from, to Value) Value {
	switch x := p.(type) {
	case Scalar:
		f, okF := from.(Scalar)
		t, okT := to.(Scalar)
		if !okF || !okT {
			panic(mismatch(p, from))
		}
		return Scalar(mathutil.Lerp(float64(f), float64(t), float64(x)))
	case Vec2:
		f, okF := from.(Vec2)
		t, okT := to.(Vec2)
		if !okF || !okT {
			panic(mismatch(p, from))
		}
		return NewVec2(mathutil.Lerp(f.X, t.X, x.X), mathutil.Lerp(f.Y, t.Y, x.Y))
	case Vec3:
		f, okF := from.(Vec3)
		t, okT := to.(Vec3)
		if !okF || !okT {
			panic(mismatch(p, from))
		}
		return NewVec3(mathutil.Lerp(f.X, t.X, x.X), mathutil.Lerp(f.Y, t.Y, x.Y), mathutil.Lerp(f.Z, t.Z, x.Z))
	case Color:
		f, okF := from.(Color)
		t, okT := to.(Color)
		if !okF || !okT {
			panic(mismatch(p, from))
		}
		out := Color{Color: colorful.Color{
			R: mathutil.Lerp(f.R, t.R, x.R),
			G: mathutil.Lerp(f.G, t.G, x.G),
			B: mathutil.Lerp(f.B, t.B, x.B),
		}}
		if x.HasAlpha || f.HasAlpha || t.HasAlpha {
			out.A = mathutil.Lerp(f.Alpha(), t.Alpha(), x.Alpha())
			out.HasAlpha = true
		}
		return out
	default:
		panic(mismatch(p, from))
	}
}

// colorLevels is the number of steps above zero in an 8-bit channel.
const colorLevels = 255

// Round rounds every numeric component half away from zero. Colour
// channels, alpha included, are in [0, 1] and are rounded to the nearest
// 8-bit level instead. An absent colour alpha stays absent.
func Round(v Value) Value {
	switch x := v.(type) {
	case Scalar:
		return Scalar(math.Round(float64(x)))
	case Vec2:
		return NewVec2(math.Round(x.X), math.Round(x.Y))
	case Vec3:
		return NewVec3(math.Round(x.X), math.Round(x.Y), math.Round(x.Z))
	case Color:
		out := Color{Color: colorful.Color{R: roundLevel(x.R), G: roundLevel(x.G), B: roundLevel(x.B)}}
		if x.HasAlpha {
			out.A = roundLevel(x.A)
			out.HasAlpha = true
		}
		return out
	default:
		panic(mismatch(v, v))
	}
}

func roundLevel(c float64) float64 {
	return math.Round(c*colorLevels) / colorLevels
}
