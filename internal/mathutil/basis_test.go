package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBinomial tests the tabulated coefficients and the out-of-table cases.
func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k     int
		expected float64
	}{
		{0, 0, 1},
		{2, 1, 2},
		{3, 1, 3},
		{3, 3, 1},
		{4, 2, 0},
		{3, 4, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Binomial(tt.n, tt.k), 1e-12, "C(%d,%d)", tt.n, tt.k)
	}
}

// TestBernstein_PartitionOfUnity tests that the basis sums to one for every degree.
func TestBernstein_PartitionOfUnity(t *testing.T) {
	for n := 1; n <= maxBernsteinDegree; n++ {
		for x := 0.0; x <= 1.0; x += 0.05 {
			var sum float64
			for _, w := range BernsteinWeights(nil, n, x) {
				sum += w
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "degree %d at t=%v", n, x)
		}
	}
}

// TestBernstein_Endpoints tests that only the first and last weights are active at 0 and 1.
func TestBernstein_Endpoints(t *testing.T) {
	w0 := BernsteinWeights(nil, 3, 0)
	assert.Equal(t, []float64{1, 0, 0, 0}, w0)

	w1 := BernsteinWeights(nil, 3, 1)
	assert.Equal(t, []float64{0, 0, 0, 1}, w1)
}

// TestBernsteinWeights_ReusesBuffer tests that a large enough buffer is reused.
func TestBernsteinWeights_ReusesBuffer(t *testing.T) {
	buf := make([]float64, 8)
	out := BernsteinWeights(buf, 2, 0.5)
	assert.Len(t, out, 3)
	assert.Equal(t, &buf[0], &out[0])
	assert.InDelta(t, 0.25, out[0], 1e-15)
	assert.InDelta(t, 0.5, out[1], 1e-15)
	assert.InDelta(t, 0.25, out[2], 1e-15)
}

// TestHermiteBasis tests the boundary behaviour of the Hermite weights.
func TestHermiteBasis(t *testing.T) {
	h00, h10, h01, h11 := HermiteBasis(0)
	assert.Equal(t, []float64{1, 0, 0, 0}, []float64{h00, h10, h01, h11})

	h00, h10, h01, h11 = HermiteBasis(1)
	assert.Equal(t, []float64{0, 0, 1, 0}, []float64{h00, h10, h01, h11})

	// Endpoint weights always sum to one.
	for u := 0.0; u <= 1.0; u += 0.1 {
		a, _, b, _ := HermiteBasis(u)
		assert.InDelta(t, 1.0, a+b, 1e-12)
	}
}

// TestClamp tests clamping and linear blending helpers.
func TestClamp(t *testing.T) {
	assert.InDelta(t, 0.0, Clamp01(-0.5), 0)
	assert.InDelta(t, 1.0, Clamp01(1.5), 0)
	assert.InDelta(t, 0.3, Clamp01(0.3), 0)
	assert.InDelta(t, 2.0, Clamp(5, -2, 2), 0)

	assert.InDelta(t, 15.0, Lerp(10, 20, 0.5), 1e-12)
	assert.InDelta(t, 25.0, Lerp(10, 20, 1.5), 1e-12)
	assert.InDelta(t, 0.25, CentralDifference(0.5), 1e-15)
	assert.True(t, NearlyEqual(0.5, 0.5+1e-7, 1e-6))
	assert.False(t, NearlyEqual(0.5, 0.5+1e-5, 1e-6))
}

// BenchmarkBernsteinWeights benchmarks the cubic basis evaluation.
func BenchmarkBernsteinWeights(b *testing.B) {
	buf := make([]float64, 4)
	for b.Loop() {
		buf = BernsteinWeights(buf, 3, 0.37)
	}
}
