package animation

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-animated-value/internal/easing"
	"github.com/tphakala/go-animated-value/internal/interp"
	"github.com/tphakala/go-animated-value/internal/spline"
	"github.com/tphakala/go-animated-value/internal/value"
)

// Mode selects what starts an animation and what drives its progress.
type Mode int

const (
	// ModeAuto starts running on construction and after every Reset.
	ModeAuto Mode = iota

	// ModeTrigger stays idle until Start is called.
	ModeTrigger

	// ModeHold runs forward while holding and backward otherwise.
	// The repeat policy is ignored.
	ModeHold

	// ModeManual never advances progress on Update. The caller moves it
	// with SetProgress and Update recomputes the value.
	ModeManual
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeTrigger:
		return "trigger"
	case ModeHold:
		return "hold"
	case ModeManual:
		return "manual"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. The empty string selects ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "trigger":
		return ModeTrigger, nil
	case "hold":
		return ModeHold, nil
	case "manual":
		return ModeManual, nil
	default:
		return ModeAuto, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Repeat is the policy applied when progress reaches a boundary.
type Repeat int

const (
	// RepeatOnce completes at the first boundary.
	RepeatOnce Repeat = iota

	// RepeatLoop wraps progress back to the start.
	RepeatLoop

	// RepeatPingPong reverses direction at each boundary.
	RepeatPingPong
)

// String returns the configuration name of the policy.
func (r Repeat) String() string {
	switch r {
	case RepeatOnce:
		return "once"
	case RepeatLoop:
		return "loop"
	case RepeatPingPong:
		return "pingpong"
	default:
		return fmt.Sprintf("Repeat(%d)", int(r))
	}
}

// ParseRepeat parses a repeat policy name. The empty string selects RepeatOnce.
func ParseRepeat(s string) (Repeat, error) {
	switch s {
	case "", "once":
		return RepeatOnce, nil
	case "loop":
		return RepeatLoop, nil
	case "pingpong", "ping-pong":
		return RepeatPingPong, nil
	default:
		return RepeatOnce, fmt.Errorf("%w: unknown repeat policy %q", ErrInvalidConfig, s)
	}
}

// Hooks are optional callbacks invoked synchronously from Update.
type Hooks struct {
	// OnFinished fires when the animation completes, at most once per
	// boundary it rests on.
	OnFinished func()

	// OnRepeat fires on every loop wrap or ping-pong flip with the new
	// repeat count.
	OnRepeat func(count int)

	// OnStopReached fires with the index of each configured stop the
	// progress lands on.
	OnStopReached func(index int)
}

// Config holds animation configuration.
// The zero value of every field except Initial and Target is usable.
type Config struct {
	// Initial is the value at progress 0.
	Initial Value

	// Target is the value at progress 1. It must have the same kind as Initial.
	Target Value

	// Mode selects what drives progress. Default ModeAuto.
	Mode Mode

	// Repeat is the boundary policy. Default RepeatOnce.
	Repeat Repeat

	// Repeats limits loop wraps or ping-pong flips. 0 repeats forever.
	Repeats int

	// Duration is the length of one pass from 0 to 1 in seconds.
	// 0 selects DefaultDuration.
	Duration float64

	// Delay in seconds before progress starts moving.
	Delay float64

	// Unclamped lets progress leave [0, 1].
	Unclamped bool

	// Round rounds every output component half away from zero.
	Round bool

	// RoundFunc replaces the built-in rounding. It receives the whole
	// value and must return the same kind.
	RoundFunc func(Value) Value

	// EaseAmount in [0, 1] blends each output with the previous one.
	// 0 disables smoothing, 1 freezes the output.
	EaseAmount float64

	// Stops are keyframes sorted ascending by progress, each in [0, 1].
	Stops []Stop

	// Interpolation names the easing used between stops. Empty means
	// linear and unknown names also fall back to linear.
	Interpolation string

	// InterpolationParams are passed to the named easing.
	InterpolationParams []float64

	// Interpolator overrides Interpolation when set.
	Interpolator Interpolator

	// Hooks receive lifecycle events.
	Hooks Hooks
}

// Common errors returned by the animation package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid animation configuration")

	// ErrUnsupportedKind indicates an interpolator cannot handle the value kind.
	ErrUnsupportedKind = interp.ErrUnsupportedKind

	// ErrKindMismatch indicates values of different kinds were combined.
	ErrKindMismatch = value.ErrKindMismatch

	// ErrPointCount indicates a path received the wrong number of points.
	ErrPointCount = spline.ErrPointCount
)

// DefaultConfig returns the configuration defaults. Initial and Target are
// left nil.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeAuto,
		Repeat:        RepeatOnce,
		Duration:      DefaultDuration,
		Interpolation: easing.DefaultName,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Initial == nil || c.Target == nil {
		return fmt.Errorf("%w: initial and target values are required", ErrInvalidConfig)
	}

	if c.Mode < ModeAuto || c.Mode > ModeManual {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(c.Mode))
	}

	if c.Repeat < RepeatOnce || c.Repeat > RepeatPingPong {
		return fmt.Errorf("%w: unknown repeat policy %d", ErrInvalidConfig, int(c.Repeat))
	}

	if c.Repeats < 0 {
		return fmt.Errorf("%w: repeats must not be negative", ErrInvalidConfig)
	}

	if !isFinite(c.Duration) || c.Duration < 0 {
		return fmt.Errorf("%w: duration must be a non-negative number of seconds", ErrInvalidConfig)
	}

	if !isFinite(c.Delay) || c.Delay < 0 {
		return fmt.Errorf("%w: delay must be a non-negative number of seconds", ErrInvalidConfig)
	}

	if _, err := interp.New(c.pipelineOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// withDefaults returns a copy with zero values replaced by defaults. The
// slices are copied so later changes by the caller do not leak in.
func (c *Config) withDefaults() Config {
	out := *c
	out.Stops = slices.Clone(c.Stops)
	out.InterpolationParams = slices.Clone(c.InterpolationParams)

	if out.Duration == 0 {
		out.Duration = DefaultDuration
	}
	out.Duration = math.Max(out.Duration, minDuration)

	return out
}

// roundFunc picks the rounding applied to every output, if any.
func (c *Config) roundFunc() func(Value) Value {
	switch {
	case c.RoundFunc != nil:
		return c.RoundFunc
	case c.Round:
		return value.Round
	default:
		return nil
	}
}

func (c *Config) pipelineOptions() interp.Options {
	return interp.Options{
		Initial:       c.Initial,
		Target:        c.Target,
		Stops:         c.Stops,
		Interpolator:  interp.Resolve(c.Interpolator, c.Interpolation, c.InterpolationParams),
		EaseAmount:    c.EaseAmount,
		Round:         c.roundFunc(),
		OnStopReached: c.Hooks.OnStopReached,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
