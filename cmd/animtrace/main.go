// Command animtrace steps an animation file with a fixed time step and
// writes the resulting trajectory.
//
// Usage:
//
//	animtrace fade.yaml                         # CSV trace on stdout
//	animtrace -dt 0.001 -o trace.csv bounce.yaml
//	animtrace -wav env.wav -rate 8000 env.yaml  # Scalar trajectory as a mono WAV
//	animtrace -release 0.5 button.yaml          # Hold mode, released after 0.5 s
//
// Trigger and manual animations are started automatically; manual ones are
// swept from 0 to 1 over their duration.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	animation "github.com/tphakala/go-animated-value"
)

const minRequiredArgs = 1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dt := flag.Float64("dt", defaultTimeStep, "Time step in seconds (ignored with -wav)")
	maxTime := flag.Float64("time", defaultMaxTime, "Stop after this many seconds if the animation has not finished")
	output := flag.String("o", "", "CSV output file (default stdout)")
	wavPath := flag.String("wav", "", "Write the trajectory as a mono WAV instead of CSV (scalar animations only)")
	rate := flag.Int("rate", defaultSampleRate, "WAV sample rate in Hz; the time step becomes 1/rate")
	bits := flag.Int("bits", defaultBitDepth, "WAV bit depth: 16 or 24")
	release := flag.Float64("release", defaultRelease, "Hold mode: release after this many seconds (negative never releases)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] animation.yaml\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEasings:\n")
		for _, name := range animation.EasingNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		return fmt.Errorf("insufficient arguments")
	}

	cfg, err := animation.LoadConfig(args[0])
	if err != nil {
		return err
	}
	if *verbose && cfg.Interpolator == nil && cfg.Interpolation != "" && !animation.HasEasing(cfg.Interpolation) {
		log.Printf("Unknown easing %q, using linear", cfg.Interpolation)
	}

	anim, err := animation.New(cfg)
	if err != nil {
		return err
	}

	step := *dt
	if *wavPath != "" {
		if *rate <= 0 {
			return fmt.Errorf("sample rate must be positive, got %d", *rate)
		}
		step = 1 / float64(*rate)
	}

	if *verbose {
		eff := anim.Config()
		log.Printf("Animation: %s", args[0])
		log.Printf("Kind: %s, mode: %s, repeat: %s", anim.Kind(), eff.Mode, eff.Repeat)
		log.Printf("Duration: %gs, delay: %gs, step: %gs", eff.Duration, eff.Delay, step)
	}

	samples, err := trace(anim, driveOptions{dt: step, maxTime: *maxTime, release: *release})
	if err != nil {
		return err
	}

	if *verbose {
		last := samples[len(samples)-1]
		log.Printf("Ticks: %d, end time: %gs, finished: %v, repeats: %d",
			len(samples)-1, last.time, anim.Finished(), last.repeat)
	}

	if *wavPath != "" {
		if err := writeWAV(*wavPath, samples, *rate, *bits); err != nil {
			return err
		}
		if *verbose {
			if values, err := scalars(samples); err == nil {
				log.Printf("Wrote %s: %d samples, mean %g", *wavPath, len(values), mean(values))
			}
		}
		return nil
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return writeCSV(w, anim.Kind(), samples)
}
