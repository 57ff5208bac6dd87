package animation

// Timing
const (
	// DefaultDuration is the cycle length in seconds used when Config.Duration is zero.
	DefaultDuration = 1.0

	minDuration = 1e-6 // Floor that keeps dt/duration finite
)

// Progress bookkeeping
const (
	// progressEpsilon absorbs float drift when testing for a boundary, so that
	// ten ticks of 0.1 land exactly on 1.
	progressEpsilon = 1e-9

	// maxBoundaryCrossings bounds the wrap/flip loop of a single Update.
	maxBoundaryCrossings = 1024

	directionForward  = 1
	directionBackward = -1
)

// Progress boundaries
const (
	progressStart = 0.0
	progressEnd   = 1.0
)
