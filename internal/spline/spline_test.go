package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-animated-value/internal/interp"
	"github.com/tphakala/go-animated-value/internal/value"
)

// TestNewBezier_PointCounts tests order-dependent point count validation.
func TestNewBezier_PointCounts(t *testing.T) {
	p := value.NewVec2(0, 0)
	tests := []struct {
		name     string
		order    int
		points   int
		explicit bool
		err      error
	}{
		{"Linear from animation", 1, 0, false, nil},
		{"Quadratic from animation", 2, 1, false, nil},
		{"Cubic from animation", 3, 2, false, nil},
		{"Cubic explicit", 3, 4, true, nil},
		{"Linear explicit", 1, 2, true, nil},
		{"Cubic too few", 3, 1, false, ErrPointCount},
		{"Cubic explicit too few", 3, 2, true, ErrPointCount},
		{"Order zero", 0, 0, false, ErrInvalidOrder},
		{"Order four", 4, 3, false, ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]value.Value, tt.points)
			for i := range points {
				points[i] = p
			}
			b, err := NewBezier(tt.order, points, Options{ExplicitEndpoints: tt.explicit})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.order, b.Order())
		})
	}
}

// TestNewBezier_RejectsNonVectors tests that scalar and colour points fail.
func TestNewBezier_RejectsNonVectors(t *testing.T) {
	_, err := NewBezier(2, []value.Value{value.Scalar(1)}, Options{})
	require.ErrorIs(t, err, interp.ErrUnsupportedKind)

	_, err = NewBezier(2, []value.Value{value.RGB(1, 0, 0)}, Options{})
	require.ErrorIs(t, err, interp.ErrUnsupportedKind)

	_, err = NewBezier(3, []value.Value{value.NewVec2(0, 0), value.NewVec3(0, 0, 0)}, Options{})
	require.ErrorIs(t, err, value.ErrKindMismatch)
}

// TestBezier_CheckKind tests endpoint shape validation.
func TestBezier_CheckKind(t *testing.T) {
	linear, err := NewBezier(1, nil, Options{})
	require.NoError(t, err)
	require.NoError(t, linear.CheckKind(value.KindVec2))
	require.NoError(t, linear.CheckKind(value.KindVec3))
	require.ErrorIs(t, linear.CheckKind(value.KindScalar), interp.ErrUnsupportedKind)

	quad, err := NewBezier(2, []value.Value{value.NewVec3(0, 0, 0)}, Options{})
	require.NoError(t, err)
	require.ErrorIs(t, quad.CheckKind(value.KindVec2), value.ErrKindMismatch)

	assert.Panics(t, func() { linear.Interpolate(value.Scalar(0), value.Scalar(1), 0.5) })
}

// TestBezier_Quadratic tests the Bernstein evaluation against a hand-computed point.
func TestBezier_Quadratic(t *testing.T) {
	b, err := NewBezier(2, []value.Value{value.NewVec2(5, 10)}, Options{})
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(10, 0)
	// (1-t)²P0 + 2t(1-t)P1 + t²P2 at t=0.5: 0.25*0 + 0.5*(5,10) + 0.25*(10,0)
	assert.Equal(t, value.NewVec2(5, 5), b.Interpolate(from, to, 0.5))
	assert.Equal(t, from, b.Interpolate(from, to, 0))
	assert.Equal(t, to, b.Interpolate(from, to, 1))
}

// TestBezier_UsesCurrentEndpoints tests that endpoints are read per call.
func TestBezier_UsesCurrentEndpoints(t *testing.T) {
	b, err := NewBezier(1, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, value.NewVec2(1, 1), b.Interpolate(value.NewVec2(0, 0), value.NewVec2(2, 2), 0.5))
	assert.Equal(t, value.NewVec2(3, 3), b.Interpolate(value.NewVec2(2, 2), value.NewVec2(4, 4), 0.5))
}

// TestBezier_RelativeStartEnd tests normalized control points.
func TestBezier_RelativeStartEnd(t *testing.T) {
	b, err := NewBezier(3, []value.Value{value.NewVec2(0, 1), value.NewVec2(1, 0)}, Options{Relative: RelativeStartEnd})
	require.NoError(t, err)

	from, to := value.NewVec2(10, 20), value.NewVec2(30, 60)
	assert.Equal(t, from, b.Interpolate(from, to, 0))
	assert.Equal(t, to, b.Interpolate(from, to, 1))

	// Control points map to (10, 60) and (30, 20); the midpoint is
	// 0.125*(10,20) + 0.375*(10,60) + 0.375*(30,20) + 0.125*(30,60).
	mid := b.Interpolate(from, to, 0.5).(value.Vec2)
	assert.InDelta(t, 20.0, mid.X, 1e-12)
	assert.InDelta(t, 40.0, mid.Y, 1e-12)
}

// TestBezier_RelativeStart tests offset control points.
func TestBezier_RelativeStart(t *testing.T) {
	b, err := NewBezier(2, []value.Value{value.NewVec3(0, 4, 0)}, Options{Relative: RelativeStart})
	require.NoError(t, err)

	from, to := value.NewVec3(1, 1, 1), value.NewVec3(1, 1, 1)
	// Control point lands at (1, 5, 1); the midpoint picks up half of it.
	mid := b.Interpolate(from, to, 0.5).(value.Vec3)
	assert.InDelta(t, 1.0, mid.X, 1e-12)
	assert.InDelta(t, 3.0, mid.Y, 1e-12)
	assert.InDelta(t, 1.0, mid.Z, 1e-12)
}

// TestBezier_ExplicitEndpoints tests a path that ignores the interpolated values.
func TestBezier_ExplicitEndpoints(t *testing.T) {
	b, err := NewBezier(1, []value.Value{value.NewVec2(0, 0), value.NewVec2(4, 8)}, Options{ExplicitEndpoints: true})
	require.NoError(t, err)

	got := b.Interpolate(value.NewVec2(100, 100), value.NewVec2(200, 200), 0.25)
	assert.Equal(t, value.NewVec2(1, 2), got)
}

// TestNewCatmullRom_Validation tests constructor errors.
func TestNewCatmullRom_Validation(t *testing.T) {
	_, err := NewCatmullRom(nil, 1.5, Options{})
	require.ErrorIs(t, err, ErrInvalidTension)

	_, err = NewCatmullRom([]value.Value{value.NewVec2(0, 0)}, DefaultTension, Options{ExplicitEndpoints: true})
	require.ErrorIs(t, err, ErrPointCount)

	_, err = NewCatmullRom([]value.Value{value.Scalar(0), value.Scalar(1)}, DefaultTension, Options{})
	require.ErrorIs(t, err, interp.ErrUnsupportedKind)

	c, err := NewCatmullRom(nil, DefaultTension, Options{})
	require.NoError(t, err)
	assert.InDelta(t, DefaultTension, c.Tension(), 0)
	require.ErrorIs(t, c.CheckKind(value.KindScalar), interp.ErrUnsupportedKind)
}

// TestCatmullRom_LinearFallback tests degradation below the minimum point count.
func TestCatmullRom_LinearFallback(t *testing.T) {
	c, err := NewCatmullRom([]value.Value{value.NewVec2(50, -50)}, DefaultTension, Options{})
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(10, 20)
	for _, x := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		assert.Equal(t, value.Lerp(from, to, x), c.Interpolate(from, to, x), "t=%v", x)
	}
}

// TestCatmullRom_PassesThroughPoints tests interpolation of every knot.
func TestCatmullRom_PassesThroughPoints(t *testing.T) {
	interior := []value.Value{value.NewVec2(1, 3), value.NewVec2(2, -1)}
	c, err := NewCatmullRom(interior, 0, Options{})
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(3, 0)
	knots := []value.Value{from, interior[0], interior[1], to}
	for i, knot := range knots {
		got := c.Interpolate(from, to, float64(i)/3).(value.Vec2)
		want := knot.(value.Vec2)
		assert.InDelta(t, want.X, got.X, 1e-12, "knot %d", i)
		assert.InDelta(t, want.Y, got.Y, 1e-12, "knot %d", i)
	}
}

// TestCatmullRom_CollinearIsStraight tests that evenly spaced collinear points give a line.
func TestCatmullRom_CollinearIsStraight(t *testing.T) {
	interior := []value.Value{value.NewVec3(1, 1, 1), value.NewVec3(2, 2, 2)}
	c, err := NewCatmullRom(interior, 0, Options{})
	require.NoError(t, err)

	from, to := value.NewVec3(0, 0, 0), value.NewVec3(3, 3, 3)
	for x := 0.0; x <= 1.0; x += 0.05 {
		got := c.Interpolate(from, to, x).(value.Vec3)
		assert.InDelta(t, 3*x, got.X, 1e-9)
		assert.InDelta(t, got.X, got.Y, 1e-12)
		assert.InDelta(t, got.X, got.Z, 1e-12)
	}
}

// TestCatmullRom_FullTensionFlattensTangents tests that tension 1 stops at each knot.
func TestCatmullRom_FullTensionFlattensTangents(t *testing.T) {
	c, err := NewCatmullRom([]value.Value{value.NewVec2(0, 10), value.NewVec2(0, 20)}, 1, Options{})
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(0, 30)
	// With zero tangents each segment is a smoothstep between its knots.
	got := c.Interpolate(from, to, 0.5).(value.Vec2)
	assert.InDelta(t, 15.0, got.Y, 1e-12)
	sixth := c.Interpolate(from, to, 1.0/6).(value.Vec2)
	assert.InDelta(t, 5.0, sixth.Y, 1e-12)
}

// TestCatmullRom_SegmentClamping tests parameters outside [0, 1].
func TestCatmullRom_SegmentClamping(t *testing.T) {
	c, err := NewCatmullRom([]value.Value{value.NewVec2(1, 0), value.NewVec2(2, 0)}, 0, Options{})
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(3, 0)
	// Overshoot extrapolates the first and last segments instead of indexing out of range.
	assert.NotPanics(t, func() {
		c.Interpolate(from, to, -0.2)
		c.Interpolate(from, to, 1.2)
	})
	got := c.Interpolate(from, to, 1.2).(value.Vec2)
	assert.Greater(t, got.X, 3.0)
}

// TestCatmullRom_RelativeStartEnd tests the shared relative transform.
func TestCatmullRom_RelativeStartEnd(t *testing.T) {
	c, err := NewCatmullRom(
		[]value.Value{value.NewVec2(0.5, 0.5), value.NewVec2(0.75, 0.75)},
		DefaultTension,
		Options{Relative: RelativeStartEnd},
	)
	require.NoError(t, err)

	from, to := value.NewVec2(0, 0), value.NewVec2(8, 4)
	got := c.Interpolate(from, to, 1.0/3).(value.Vec2)
	assert.InDelta(t, 4.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)
}

// TestParseRelative tests relative mode names.
func TestParseRelative(t *testing.T) {
	for in, want := range map[string]Relative{
		"":          RelativeNone,
		"none":      RelativeNone,
		"absolute":  RelativeNone,
		"start":     RelativeStart,
		"start-end": RelativeStartEnd,
	} {
		got, err := ParseRelative(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRelative("end")
	require.ErrorIs(t, err, ErrInvalidRelative)

	assert.Equal(t, "start-end", RelativeStartEnd.String())
}

// BenchmarkCatmullRom benchmarks a five-segment spline evaluation.
func BenchmarkCatmullRom(b *testing.B) {
	points := []value.Value{
		value.NewVec3(1, 2, 0), value.NewVec3(2, 0, 1), value.NewVec3(3, 1, 1), value.NewVec3(4, 2, 0),
	}
	c, err := NewCatmullRom(points, DefaultTension, Options{})
	if err != nil {
		b.Fatal(err)
	}
	from, to := value.NewVec3(0, 0, 0), value.NewVec3(5, 0, 0)
	for b.Loop() {
		_ = c.Interpolate(from, to, 0.61)
	}
}
