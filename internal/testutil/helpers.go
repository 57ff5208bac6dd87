// Package testutil provides reusable test helper functions for animated value tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-animated-value/internal/value"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	ProgressTolerance = 1e-9
	EasingTolerance   = 1e-6
)

// AssertValueInDelta verifies that two values share a kind and that every
// component differs by at most delta. Colours compare alpha as well.
func AssertValueInDelta(t *testing.T, expected, actual value.Value, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.NotNil(t, actual, msgAndArgs...) {
		return false
	}
	if !assert.Equal(t, value.KindOf(expected), value.KindOf(actual), msgAndArgs...) {
		return false
	}
	want, got := value.Components(expected), value.Components(actual)
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], delta,
			"component %d: got %v, want %v", i, actual, expected) {
			return false
		}
	}
	return true
}

// AssertScalar verifies that v is a Scalar within delta of expected.
func AssertScalar(t *testing.T, expected float64, v value.Value, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	s, ok := v.(value.Scalar)
	if !ok {
		return assert.Fail(t, "not a scalar", "got %T (%v)", v, v)
	}
	return assert.InDelta(t, expected, float64(s), delta, msgAndArgs...)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, v, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if v < minVal || v > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", v, minVal, maxVal)
	}
	return true
}

// Recorder collects hook invocations for later assertions.
type Recorder struct {
	Finished int
	Repeats  []int
	Stops    []int
}

// OnFinished counts finished hook calls.
func (r *Recorder) OnFinished() { r.Finished++ }

// OnRepeat records the repeat count passed to the hook.
func (r *Recorder) OnRepeat(count int) { r.Repeats = append(r.Repeats, count) }

// OnStopReached records the stop index passed to the hook.
func (r *Recorder) OnStopReached(index int) { r.Stops = append(r.Stops, index) }
