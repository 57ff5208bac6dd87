package easing

// Back easing defaults.
const (
	// defaultBackMagnitude gives roughly 10% overshoot.
	defaultBackMagnitude = 1.70158

	// backInOutScale stretches the magnitude for the in-out variant so the
	// overshoot matches the single-sided variants.
	backInOutScale = 1.525
)

// Elastic easing defaults.
const (
	defaultElasticMagnitude     = 1.0
	defaultElasticPeriod        = 0.3
	defaultElasticInOutPeriod   = 0.45
	elasticExponent             = 10.0
	elasticQuarterPeriodDivisor = 4.0
)

// Bounce easing defaults.
const (
	defaultBounces     = 4.0
	defaultBounceDecay = 2.0
)

// Expo easing exponent: 2^(10(t-1)).
const expoExponent = 10.0

// Shared split point for in-out variants.
const half = 0.5
