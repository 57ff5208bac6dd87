package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-animated-value/internal/mathutil"
	"github.com/tphakala/go-animated-value/internal/value"
)

// ErrInvalidStops indicates an unusable keyframe stop list.
var ErrInvalidStops = errors.New("invalid stops")

// Stop is a keyframe: the value the output passes through at a progress.
type Stop struct {
	Progress float64
	Value    value.Value
}

// stop is a Stop tagged with its index in the caller's list.
type stop struct {
	Stop
	index int
}

// Options configures a Pipeline.
type Options struct {
	// Initial and Target are the values at progress 0 and 1 unless explicit
	// stops sit exactly there.
	Initial value.Value
	Target  value.Value

	// Stops must be sorted ascending by progress, each within [0, 1].
	Stops []Stop

	// Interpolator blends between bracketing stops. Nil means linear.
	Interpolator Interpolator

	// EaseAmount in [0, 1] blends the new value with the previous output.
	EaseAmount float64

	// Round post-processes the smoothed value. Nil disables rounding.
	Round func(value.Value) value.Value

	// OnStopReached receives the index of every stop the progress sits on.
	OnStopReached func(index int)
}

// Pipeline turns progress into output values.
// It is not safe for concurrent use.
type Pipeline struct {
	kind          value.Kind
	stops         []stop
	userStops     int
	interp        Interpolator
	easeAmount    float64
	round         func(value.Value) value.Value
	onStopReached func(int)

	// reached is scratch space for the per-evaluation stop hits.
	reached []int
}

// New validates the options and builds a pipeline. The stop list is copied.
func New(opts Options) (*Pipeline, error) {
	values := []value.Value{opts.Initial, opts.Target}
	for _, s := range opts.Stops {
		values = append(values, s.Value)
	}
	kind, err := value.SameKind(values...)
	if err != nil {
		return nil, err
	}

	if opts.EaseAmount < 0 || opts.EaseAmount > 1 || math.IsNaN(opts.EaseAmount) {
		return nil, fmt.Errorf("ease amount %v outside [0, 1]", opts.EaseAmount)
	}

	for i, s := range opts.Stops {
		if s.Progress < 0 || s.Progress > 1 || math.IsNaN(s.Progress) {
			return nil, fmt.Errorf("%w: stop %d progress %v outside [0, 1]", ErrInvalidStops, i, s.Progress)
		}
		if i > 0 && s.Progress < opts.Stops[i-1].Progress {
			return nil, fmt.Errorf("%w: stop %d progress %v is before stop %d", ErrInvalidStops, i, s.Progress, i-1)
		}
	}

	interp := opts.Interpolator
	if interp == nil {
		interp = Resolve(nil, "", nil)
	}
	if checker, ok := interp.(KindChecker); ok {
		if err := checker.CheckKind(kind); err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		kind:          kind,
		userStops:     len(opts.Stops),
		interp:        interp,
		easeAmount:    opts.EaseAmount,
		round:         opts.Round,
		onStopReached: opts.OnStopReached,
	}
	p.stops = buildStops(opts.Initial, opts.Target, opts.Stops)

	return p, nil
}

// buildStops adds the virtual stops at 0 and 1 unless the caller placed
// stops exactly there.
func buildStops(initial, target value.Value, user []Stop) []stop {
	out := make([]stop, 0, len(user)+2)
	if len(user) == 0 || user[0].Progress != 0 {
		out = append(out, stop{Stop{Progress: 0, Value: initial}, virtualStopIndex})
	}
	for i, s := range user {
		out = append(out, stop{s, i})
	}
	if len(user) == 0 || user[len(user)-1].Progress != 1 {
		out = append(out, stop{Stop{Progress: 1, Value: target}, virtualStopIndex})
	}
	return out
}

// Kind returns the value shape the pipeline produces.
func (p *Pipeline) Kind() value.Kind {
	return p.kind
}

// Evaluate computes the output for progress: stop resolution, then
// smoothing against previous, then rounding. Stop hooks fire before it
// returns.
func (p *Pipeline) Evaluate(progress float64, previous value.Value) value.Value {
	raw := p.Sample(progress)
	p.mustMatchKind(raw, "interpolator")

	out := Smooth(raw, previous, p.easeAmount)
	if p.round != nil {
		out = p.round(out)
		p.mustMatchKind(out, "rounding")
	}
	return out
}

// mustMatchKind panics when a caller-supplied stage returned a value of
// another shape.
func (p *Pipeline) mustMatchKind(v value.Value, stage string) {
	if k := value.KindOf(v); k != p.kind {
		panic(fmt.Errorf("%w: %s produced %s for %s values", value.ErrKindMismatch, stage, k, p.kind))
	}
}

// Sample resolves the bracketing stops for progress and interpolates
// between them. It fires stop hooks but applies no smoothing or rounding.
func (p *Pipeline) Sample(progress float64) value.Value {
	p.reached = p.reached[:0]

	prev, next := -1, -1
	for i, s := range p.stops {
		if mathutil.NearlyEqual(progress, s.Progress, stopEpsilon) {
			p.reach(s.index)
		}
		if s.Progress <= progress {
			prev = i
		}
		if next < 0 && s.Progress >= progress {
			next = i
		}
	}

	// Boundary stops are checked explicitly so an overshooting progress
	// still reports them.
	if p.userStops > 0 {
		first, last := p.stops[0], p.stops[len(p.stops)-1]
		if progress <= 0 && first.Progress == 0 {
			p.reach(first.index)
		}
		if progress >= 1 && last.Progress == 1 {
			p.reach(last.index)
		}
	}

	if p.onStopReached != nil {
		for _, idx := range p.reached {
			p.onStopReached(idx)
		}
	}

	switch {
	case prev < 0:
		return p.stops[0].Value
	case next < 0:
		return p.stops[len(p.stops)-1].Value
	}

	a, b := p.stops[prev], p.stops[next]
	if b.Progress <= a.Progress {
		return a.Value
	}
	local := (progress - a.Progress) / (b.Progress - a.Progress)
	return p.interp.Interpolate(a.Value, b.Value, local)
}

// reach records a user stop hit once per evaluation.
func (p *Pipeline) reach(index int) {
	if index == virtualStopIndex {
		return
	}
	for _, r := range p.reached {
		if r == index {
			return
		}
	}
	p.reached = append(p.reached, index)
}

// Smooth applies exponential smoothing:
//
//	(1 - amount)*computed + amount*previous
//
// amount 0 returns computed unchanged and amount 1 freezes on previous.
func Smooth(computed, previous value.Value, amount float64) value.Value {
	switch {
	case amount <= 0 || previous == nil:
		return computed
	case amount >= 1:
		return previous
	default:
		return value.Lerp(computed, previous, amount)
	}
}
