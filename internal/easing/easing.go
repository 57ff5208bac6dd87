// Package easing provides the catalog of easing functions that remap
// normalized time before value interpolation.
//
// Every function is pure and accepts t outside [0, 1], extrapolating rather
// than rejecting it. Optional parameters are positional; missing parameters
// take the documented defaults.
package easing

import (
	"math"
	"sort"

	"github.com/fogleman/ease"
)

// Func maps normalized time t to eased time.
type Func func(t float64, params ...float64) float64

// DefaultName is the easing used when none is configured.
const DefaultName = "linear"

// plain adapts a parameterless curve to Func.
func plain(f func(float64) float64) Func {
	return func(t float64, _ ...float64) float64 {
		return f(t)
	}
}

// exact makes t=0 and t=1 pass through unchanged.
func exact(f func(float64) float64) Func {
	return func(t float64, _ ...float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return f(t)
	}
}

var catalog = map[string]Func{
	"linear": plain(ease.Linear),

	"easeInQuad":    plain(ease.InQuad),
	"easeOutQuad":   plain(ease.OutQuad),
	"easeInOutQuad": plain(ease.InOutQuad),

	"easeInCubic":    plain(ease.InCubic),
	"easeOutCubic":   plain(ease.OutCubic),
	"easeInOutCubic": plain(ease.InOutCubic),

	"easeInQuart":    plain(ease.InQuart),
	"easeOutQuart":   plain(ease.OutQuart),
	"easeInOutQuart": plain(ease.InOutQuart),

	"easeInQuint":    plain(ease.InQuint),
	"easeOutQuint":   plain(ease.OutQuint),
	"easeInOutQuint": plain(ease.InOutQuint),

	"easeInSine":    plain(ease.InSine),
	"easeOutSine":   plain(ease.OutSine),
	"easeInOutSine": plain(ease.InOutSine),

	"easeInExpo":    exact(inExpo),
	"easeOutExpo":   exact(outExpo),
	"easeInOutExpo": exact(inOutExpo),

	"easeInCirc":    plain(ease.InCirc),
	"easeOutCirc":   plain(ease.OutCirc),
	"easeInOutCirc": plain(ease.InOutCirc),

	"easeInBack":    InBack,
	"easeOutBack":   OutBack,
	"easeInOutBack": InOutBack,

	"easeInElastic":    InElastic,
	"easeOutElastic":   OutElastic,
	"easeInOutElastic": InOutElastic,

	"easeInBounce":    InBounce,
	"easeOutBounce":   OutBounce,
	"easeInOutBounce": InOutBounce,
}

// Lookup returns the easing registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := catalog[name]
	return f, ok
}

// Get returns the easing registered under name, falling back to linear for
// unknown names.
func Get(name string) Func {
	if f, ok := catalog[name]; ok {
		return f
	}
	return catalog[DefaultName]
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// param returns params[i] or def when absent.
func param(params []float64, i int, def float64) float64 {
	if i < len(params) {
		return params[i]
	}
	return def
}

// Expo curves. The exponentials never reach 0 or 1 on their own, so the
// catalog wraps them with exact().
func inExpo(t float64) float64 {
	return math.Pow(2, expoExponent*(t-1))
}

func outExpo(t float64) float64 {
	return 1 - math.Pow(2, -expoExponent*t)
}

func inOutExpo(t float64) float64 {
	if t < half {
		return half * math.Pow(2, expoExponent*(2*t-1))
	}
	return 1 - half*math.Pow(2, -expoExponent*(2*t-1))
}

// InBack backs up before moving toward the target.
// params: magnitude (default 1.70158).
func InBack(t float64, params ...float64) float64 {
	s := param(params, 0, defaultBackMagnitude)
	return t * t * ((s+1)*t - s)
}

// OutBack overshoots the target before settling.
// params: magnitude (default 1.70158).
func OutBack(t float64, params ...float64) float64 {
	s := param(params, 0, defaultBackMagnitude)
	t--
	return t*t*((s+1)*t+s) + 1
}

// InOutBack backs up at the start and overshoots at the end.
// params: magnitude (default 1.70158).
func InOutBack(t float64, params ...float64) float64 {
	s := param(params, 0, defaultBackMagnitude) * backInOutScale
	t *= 2
	if t < 1 {
		return half * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return half * (t*t*((s+1)*t+s) + 2)
}

// elasticShape resolves amplitude and phase shift from magnitude and period.
// Magnitudes below one are raised to one with a quarter-period shift.
func elasticShape(magnitude, period float64) (amplitude, shift float64) {
	if magnitude < 1 {
		return 1, period / elasticQuarterPeriodDivisor
	}
	return magnitude, period / (2 * math.Pi) * math.Asin(1/magnitude)
}

// InElastic oscillates with growing amplitude into the target.
// params: magnitude (default 1), period (default 0.3).
func InElastic(t float64, params ...float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := param(params, 1, defaultElasticPeriod)
	a, s := elasticShape(param(params, 0, defaultElasticMagnitude), p)
	t--
	return -(a * math.Pow(2, elasticExponent*t) * math.Sin((t-s)*(2*math.Pi)/p))
}

// OutElastic overshoots and oscillates around the target before settling.
// params: magnitude (default 1), period (default 0.3).
func OutElastic(t float64, params ...float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := param(params, 1, defaultElasticPeriod)
	a, s := elasticShape(param(params, 0, defaultElasticMagnitude), p)
	return a*math.Pow(2, -elasticExponent*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

// InOutElastic combines InElastic and OutElastic around t=0.5.
// params: magnitude (default 1), period (default 0.45).
func InOutElastic(t float64, params ...float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := param(params, 1, defaultElasticInOutPeriod)
	a, s := elasticShape(param(params, 0, defaultElasticMagnitude), p)
	t = 2*t - 1
	if t < 0 {
		return -half * a * math.Pow(2, elasticExponent*t) * math.Sin((t-s)*(2*math.Pi)/p)
	}
	return a*math.Pow(2, -elasticExponent*t)*math.Sin((t-s)*(2*math.Pi)/p)*half + 1
}

// BounceOut is the shared bounce primitive:
//
//	1 - |cos(t*π*bounces)| * (1-t)^decay
func BounceOut(t, bounces, decay float64) float64 {
	return 1 - math.Abs(math.Cos(t*math.Pi*bounces))*math.Pow(1-t, decay)
}

// OutBounce bounces against the target.
// params: bounces (default 4), decay (default 2).
func OutBounce(t float64, params ...float64) float64 {
	return BounceOut(t, param(params, 0, defaultBounces), param(params, 1, defaultBounceDecay))
}

// InBounce bounces away from the start.
// params: bounces (default 4), decay (default 2).
func InBounce(t float64, params ...float64) float64 {
	return 1 - BounceOut(1-t, param(params, 0, defaultBounces), param(params, 1, defaultBounceDecay))
}

// InOutBounce runs InBounce on the first half and OutBounce on the second.
// params: bounces (default 4), decay (default 2).
func InOutBounce(t float64, params ...float64) float64 {
	bounces := param(params, 0, defaultBounces)
	decay := param(params, 1, defaultBounceDecay)
	if t < half {
		return (1 - BounceOut(1-2*t, bounces, decay)) * half
	}
	return BounceOut(2*t-1, bounces, decay)*half + half
}
