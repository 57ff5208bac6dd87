// Package animation evaluates a single animated value in pure Go.
//
// An [Animation] is configured once with an initial and a target value, timing,
// a repeat policy and an interpolation strategy. The caller then drives it with
// time increments through [Animation.Update] and reads the output with
// [Animation.Current]. There is no clock, goroutine or frame loop inside the
// package: identical increment sequences always produce identical values.
//
// # Features
//
//   - Four value shapes: [Scalar], [Vec2], [Vec3] and [Color] with optional alpha
//   - Trigger modes: auto start, manual trigger, press-and-hold, externally driven
//   - Repeat policies: once, loop and ping-pong with an optional repeat limit
//   - Named easings (quad through bounce) with tunable parameters
//   - Keyframe stops with a per-stop reached hook
//   - Exponential smoothing and rounding of the output
//   - Bezier and Catmull-Rom paths for vector values
//   - YAML animation files via [LoadConfig]
//
// # Quick Start
//
//	anim, err := animation.New(&animation.Config{
//	    Initial:       animation.Scalar(0),
//	    Target:        animation.Scalar(100),
//	    Duration:      0.5,
//	    Interpolation: "easeOutCubic",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for range frames {
//	    anim.Update(1.0 / 60)
//	    draw(anim.Current())
//	}
//
// # Modes
//
//   - [ModeAuto]: starts running on construction and after every [Animation.Reset].
//   - [ModeTrigger]: idle until [Animation.Start] is called.
//   - [ModeHold]: runs forward while [Animation.SetHolding] is true and back
//     toward the initial value otherwise. Repeat policy is ignored.
//   - [ModeManual]: [Animation.Update] never advances progress; the caller
//     sets it with [Animation.SetProgress] and Update recomputes the value.
//
// # Paths
//
// Vector animations can follow a curve instead of a straight line:
//
//	path, err := animation.BezierPath(3, []animation.Value{
//	    animation.NewVec2(0, 1),
//	    animation.NewVec2(1, 1),
//	}, animation.PathOptions{Relative: animation.RelativeStartEnd})
//
// Paths only accept [Vec2] and [Vec3]; configuring one on a scalar or colour
// animation fails with [ErrUnsupportedKind].
//
// # Thread Safety
//
// An [Animation] is not safe for concurrent use. Hooks run synchronously
// inside [Animation.Update] and must not call Update on the same instance.
// Distinct instances share no state.
package animation
