package animation

import (
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-animated-value/internal/interp"
	"github.com/tphakala/go-animated-value/internal/mathutil"
)

// Animation is a caller-driven animated value.
// It is not safe for concurrent use.
type Animation struct {
	cfg      Config
	pipeline *interp.Pipeline

	elapsed     float64 // time spent in the start delay
	progress    float64
	direction   int
	repeatCount int
	running     bool
	holding     bool
	finished    bool
	current     Value

	// The finished hook is latched to the boundary it fired at and
	// re-armed once progress leaves it.
	latched   bool
	latchedAt float64
}

// New creates an animation from the configuration. The configuration is
// copied; later changes to cfg have no effect.
func New(cfg *Config) (*Animation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	merged := cfg.withDefaults()
	p, err := interp.New(merged.pipelineOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	a := &Animation{
		cfg:      merged,
		pipeline: p,
	}
	a.Reset()

	return a, nil
}

// Start lets Update advance the animation. Progress is left untouched.
func (a *Animation) Start() {
	a.running = true
}

// Stop pauses the animation.
func (a *Animation) Stop() {
	a.running = false
}

// Reset returns the animation to its initial state. Auto mode animations
// start running again.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.progress = progressStart
	a.direction = directionForward
	a.repeatCount = 0
	a.running = false
	a.holding = false
	a.finished = false
	a.current = a.cfg.Initial
	a.latched = false
	a.latchedAt = 0

	if a.cfg.Mode == ModeAuto {
		a.Start()
	}
}

// Update advances the animation by dt seconds and recomputes the current
// value. Every boundary crossed within dt is resolved, so hooks may fire
// several times in one call. Negative or NaN dt is ignored.
func (a *Animation) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		return
	}

	hold := a.cfg.Mode == ModeHold
	if !hold && (!a.running || a.finished) {
		return
	}

	if a.elapsed < a.cfg.Delay {
		a.elapsed += dt
		if a.elapsed < a.cfg.Delay {
			return
		}
		dt = a.elapsed - a.cfg.Delay
	}

	repeat := a.cfg.Repeat
	if hold {
		// Released at the start: rest in the initial state.
		if !a.holding && a.progress <= progressStart {
			a.Reset()
			return
		}
		repeat = RepeatOnce
		a.direction = directionBackward
		if a.holding {
			a.direction = directionForward
		}
		a.running = true
		a.finished = false
	}

	completed := false
	if a.cfg.Mode != ModeManual {
		next := a.progress + dt/a.cfg.Duration*float64(a.direction)
		a.progress, completed = a.crossBoundaries(next, repeat)
	}

	if !a.cfg.Unclamped {
		a.progress = mathutil.Clamp01(a.progress)
	}

	if a.latched && a.progress != a.latchedAt {
		a.latched = false
	}

	a.current = a.pipeline.Evaluate(a.progress, a.current)

	if completed {
		a.complete()
	}
}

// crossBoundaries applies the repeat policy to every boundary next has
// passed. It reports whether the animation completed.
func (a *Animation) crossBoundaries(next float64, repeat Repeat) (float64, bool) {
	for crossings := 0; ; crossings++ {
		next = snapToBoundary(next)

		atEnd := a.direction == directionForward && next >= progressEnd
		atStart := a.direction == directionBackward && next <= progressStart
		if !atEnd && !atStart {
			return next, false
		}

		if crossings == maxBoundaryCrossings {
			return a.fold(next, repeat), false
		}

		boundary := progressStart
		if atEnd {
			boundary = progressEnd
		}

		switch repeat {
		case RepeatLoop:
			a.repeatCount++
			a.fireRepeat()
			if a.limitReached() {
				return boundary, true
			}
			if atEnd {
				next -= progressEnd
			} else {
				next += progressEnd
			}

		case RepeatPingPong:
			a.direction = -a.direction
			a.repeatCount++
			a.fireRepeat()
			if a.limitReached() {
				return boundary, true
			}
			next = 2*boundary - next

		default:
			return boundary, true
		}
	}
}

// fold reduces a progress still outside [0, 1] after maxBoundaryCrossings
// by whole periods. Folded periods are not counted as repeats.
func (a *Animation) fold(next float64, repeat Repeat) float64 {
	if repeat == RepeatLoop {
		return next - math.Floor(next)
	}

	// Ping-pong has a period of two passes.
	edge, over := progressEnd, next-progressEnd
	if a.direction == directionBackward {
		edge, over = progressStart, progressStart-next
	}
	over = math.Mod(over, 2)

	if over <= 1 {
		a.direction = -a.direction
		return edge + float64(a.direction)*over
	}
	return (progressEnd - edge) + float64(a.direction)*(over-1)
}

func snapToBoundary(p float64) float64 {
	switch {
	case mathutil.NearlyEqual(p, progressEnd, progressEpsilon):
		return progressEnd
	case mathutil.NearlyEqual(p, progressStart, progressEpsilon):
		return progressStart
	default:
		return p
	}
}

func (a *Animation) limitReached() bool {
	return a.cfg.Repeats > 0 && a.repeatCount >= a.cfg.Repeats
}

func (a *Animation) fireRepeat() {
	if a.cfg.Hooks.OnRepeat != nil {
		a.cfg.Hooks.OnRepeat(a.repeatCount)
	}
}

func (a *Animation) complete() {
	a.running = false
	a.finished = true

	if a.latched {
		return
	}
	a.latched = true
	a.latchedAt = a.progress
	if a.cfg.Hooks.OnFinished != nil {
		a.cfg.Hooks.OnFinished()
	}
}

// Progress returns the position within the current pass, 0 at Initial and
// 1 at Target.
func (a *Animation) Progress() float64 {
	return a.progress
}

// SetProgress moves the animation to p. The value is recomputed on the
// next Update. p is clamped to [0, 1] unless the animation is unclamped.
func (a *Animation) SetProgress(p float64) {
	if math.IsNaN(p) {
		return
	}
	if !a.cfg.Unclamped {
		p = mathutil.Clamp01(p)
	}
	a.progress = p
}

// Holding reports whether a hold mode animation is being held.
func (a *Animation) Holding() bool {
	return a.holding
}

// SetHolding presses or releases a hold mode animation.
func (a *Animation) SetHolding(holding bool) {
	a.holding = holding
}

// Current returns the most recently computed value.
func (a *Animation) Current() Value {
	return a.current
}

// Running reports whether Update advances the animation.
func (a *Animation) Running() bool {
	return a.running
}

// Finished reports whether the animation has completed.
func (a *Animation) Finished() bool {
	return a.finished
}

// Direction returns +1 while moving toward Target and -1 while moving back.
func (a *Animation) Direction() int {
	return a.direction
}

// RepeatCount returns the number of wraps or flips since the last Reset.
func (a *Animation) RepeatCount() int {
	return a.repeatCount
}

// Kind returns the kind of value the animation produces.
func (a *Animation) Kind() Kind {
	return a.pipeline.Kind()
}

// Config returns a copy of the effective configuration, defaults applied.
func (a *Animation) Config() Config {
	c := a.cfg
	c.Stops = slices.Clone(a.cfg.Stops)
	c.InterpolationParams = slices.Clone(a.cfg.InterpolationParams)
	return c
}
