package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	animation "github.com/tphakala/go-animated-value"
)

// errNotScalar is returned when a WAV is requested for a non-scalar animation.
var errNotScalar = errors.New("wav output needs a scalar animation")

// sample is one recorded tick.
type sample struct {
	time      float64
	progress  float64
	direction int
	repeat    int
	value     animation.Value
}

// driveOptions controls how trace steps an animation.
type driveOptions struct {
	dt      float64 // Time step in seconds
	maxTime float64 // Upper bound on simulated time
	release float64 // Hold mode release time; negative never releases
}

// trace steps the animation with a fixed dt and records the state after
// every tick, starting with the state at time zero.
//
// Trigger and manual animations are started, hold animations are pressed.
// Manual animations are swept from 0 to 1 over their duration. Tracing stops
// when the animation finishes (and is not held) or maxTime is reached.
func trace(a *animation.Animation, opts driveOptions) ([]sample, error) {
	if opts.dt <= 0 || math.IsNaN(opts.dt) {
		return nil, fmt.Errorf("time step must be positive, got %v", opts.dt)
	}
	if opts.maxTime < 0 {
		return nil, fmt.Errorf("max time must not be negative, got %v", opts.maxTime)
	}

	cfg := a.Config()
	switch cfg.Mode {
	case animation.ModeTrigger, animation.ModeManual:
		a.Start()
	case animation.ModeHold:
		a.SetHolding(true)
	}

	steps := int(math.Ceil(opts.maxTime / opts.dt))
	out := make([]sample, 0, steps+1)
	out = append(out, snapshot(a, 0))

	for i := 1; i <= steps; i++ {
		t := float64(i) * opts.dt

		switch cfg.Mode {
		case animation.ModeHold:
			if opts.release >= 0 && t > opts.release {
				a.SetHolding(false)
			}
		case animation.ModeManual:
			a.SetProgress(t / cfg.Duration)
		}

		a.Update(opts.dt)
		out = append(out, snapshot(a, t))

		if a.Finished() && !a.Holding() {
			break
		}
		if cfg.Mode == animation.ModeManual && a.Progress() >= 1 {
			break
		}
	}

	return out, nil
}

func snapshot(a *animation.Animation, t float64) sample {
	return sample{
		time:      t,
		progress:  a.Progress(),
		direction: a.Direction(),
		repeat:    a.RepeatCount(),
		value:     a.Current(),
	}
}

// columns names the value components of kind.
func columns(kind animation.Kind) []string {
	switch kind {
	case animation.KindScalar:
		return []string{"value"}
	case animation.KindVec2:
		return []string{"x", "y"}
	case animation.KindVec3:
		return []string{"x", "y", "z"}
	case animation.KindColor:
		return []string{"r", "g", "b", "a"}
	default:
		return nil
	}
}

// writeCSV writes one row per sample with a header row.
func writeCSV(w io.Writer, kind animation.Kind, samples []sample) error {
	cw := csv.NewWriter(w)

	header := append([]string{"time", "progress", "direction", "repeat"}, columns(kind)...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			formatFloat(s.time),
			formatFloat(s.progress),
			strconv.Itoa(s.direction),
			strconv.Itoa(s.repeat),
		}
		for _, c := range animation.Components(s.value) {
			row = append(row, formatFloat(c))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, floatFormat, floatPrecision, floatBits)
}

// scalars extracts the scalar trajectory.
func scalars(samples []sample) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, s := range samples {
		v, ok := s.value.(animation.Scalar)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", errNotScalar, s.value)
		}
		out[i] = float64(v)
	}
	return out, nil
}

// normalize scales values so the largest magnitude hits fullScale. An
// all-zero signal stays zero.
func normalize(values []float64, fullScale float64) []float64 {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, math.Abs(v))
	}

	out := make([]float64, len(values))
	if peak == 0 {
		return out
	}
	f64.Scale(out, values, fullScale/peak)
	return out
}

// fullScale returns the largest positive sample for a PCM bit depth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitDepth16, bitDepth24:
		return float64(int(1)<<(bitDepth-1) - 1), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d (use %d or %d)", bitDepth, bitDepth16, bitDepth24)
	}
}

// mean returns the average of values, 0 when empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return f64.Sum(values) / float64(len(values))
}

// writeWAV writes the scalar trajectory as a mono PCM WAV normalized to
// its peak.
func writeWAV(path string, samples []sample, sampleRate, bitDepth int) (err error) {
	values, err := scalars(samples)
	if err != nil {
		return err
	}
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	normalized := normalize(values, scale)
	data := make([]int, len(normalized))
	for i, v := range normalized {
		data[i] = int(math.Round(v))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}
