package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	bezier, err := BezierPath(2, []Value{NewVec2(0, 1)}, PathOptions{})
	require.NoError(t, err)

	valid := func() Config {
		return Config{Initial: Scalar(0), Target: Scalar(1)}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr []error
	}{
		{"valid", func(*Config) {}, nil},
		{"nil_initial", func(c *Config) { c.Initial = nil }, []error{ErrInvalidConfig}},
		{"nil_target", func(c *Config) { c.Target = nil }, []error{ErrInvalidConfig}},
		{"unknown_mode", func(c *Config) { c.Mode = Mode(9) }, []error{ErrInvalidConfig}},
		{"unknown_repeat", func(c *Config) { c.Repeat = Repeat(-1) }, []error{ErrInvalidConfig}},
		{"negative_repeats", func(c *Config) { c.Repeats = -1 }, []error{ErrInvalidConfig}},
		{"negative_duration", func(c *Config) { c.Duration = -1 }, []error{ErrInvalidConfig}},
		{"nan_duration", func(c *Config) { c.Duration = math.NaN() }, []error{ErrInvalidConfig}},
		{"infinite_delay", func(c *Config) { c.Delay = math.Inf(1) }, []error{ErrInvalidConfig}},
		{"negative_delay", func(c *Config) { c.Delay = -0.1 }, []error{ErrInvalidConfig}},
		{"ease_above_one", func(c *Config) { c.EaseAmount = 1.5 }, []error{ErrInvalidConfig}},
		{"ease_negative", func(c *Config) { c.EaseAmount = -0.5 }, []error{ErrInvalidConfig}},
		{"kind_mismatch", func(c *Config) { c.Target = NewVec2(1, 1) }, []error{ErrInvalidConfig, ErrKindMismatch}},
		{"stop_kind_mismatch", func(c *Config) {
			c.Stops = []Stop{{Progress: 0.5, Value: RGB(1, 1, 1)}}
		}, []error{ErrInvalidConfig, ErrKindMismatch}},
		{"stop_out_of_range", func(c *Config) {
			c.Stops = []Stop{{Progress: 1.5, Value: Scalar(2)}}
		}, []error{ErrInvalidConfig}},
		{"stops_unsorted", func(c *Config) {
			c.Stops = []Stop{{Progress: 0.6, Value: Scalar(2)}, {Progress: 0.4, Value: Scalar(3)}}
		}, []error{ErrInvalidConfig}},
		{"path_on_scalar", func(c *Config) { c.Interpolator = bezier }, []error{ErrInvalidConfig, ErrUnsupportedKind}},
		{"path_on_colour", func(c *Config) {
			c.Initial, c.Target = RGB(0, 0, 0), RGB(1, 1, 1)
			c.Interpolator = bezier
		}, []error{ErrInvalidConfig, ErrUnsupportedKind}},
		{"path_on_vec2", func(c *Config) {
			c.Initial, c.Target = NewVec2(0, 0), NewVec2(1, 1)
			c.Interpolator = bezier
		}, nil},
		{"zero_duration_uses_default", func(c *Config) { c.Duration = 0 }, nil},
		{"unknown_easing_is_linear", func(c *Config) { c.Interpolation = "wobble" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}

			_, err = New(&cfg)
			assert.ErrorIs(t, err, tt.wantErr[0])
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeAuto, cfg.Mode)
	assert.Equal(t, RepeatOnce, cfg.Repeat)
	assert.Equal(t, DefaultDuration, cfg.Duration)
	assert.Equal(t, "linear", cfg.Interpolation)
	assert.False(t, cfg.Unclamped)

	cfg.Initial, cfg.Target = Scalar(0), Scalar(1)
	assert.NoError(t, cfg.Validate())
}

func TestNew_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     float64
	}{
		{"zero", 0, DefaultDuration},
		{"tiny", 1e-12, minDuration},
		{"explicit", 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(&Config{Initial: Scalar(0), Target: Scalar(1), Duration: tt.duration})
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Config().Duration)
		})
	}
}

func TestNew_CopiesConfig(t *testing.T) {
	cfg := Config{
		Initial:             Scalar(0),
		Target:              Scalar(10),
		Mode:                ModeManual,
		Stops:               []Stop{{Progress: 0.5, Value: Scalar(8)}},
		InterpolationParams: []float64{1},
	}
	a, err := New(&cfg)
	require.NoError(t, err)
	a.Start()

	cfg.Stops[0].Value = Scalar(-100)
	cfg.Target = Scalar(1000)
	cfg.InterpolationParams[0] = 5

	a.SetProgress(0.5)
	a.Update(0)
	assert.Equal(t, Scalar(8), a.Current())
	assert.Equal(t, Scalar(10), a.Config().Target)
	assert.Equal(t, []float64{1}, a.Config().InterpolationParams)

	got := a.Config()
	got.Stops[0].Value = Scalar(-1)
	assert.Equal(t, Scalar(8), a.Config().Stops[0].Value)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"trigger", ModeTrigger, false},
		{"hold", ModeHold, false},
		{"manual", ModeManual, false},
		{"sometimes", ModeAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestParseRepeat(t *testing.T) {
	tests := []struct {
		in      string
		want    Repeat
		wantErr bool
	}{
		{"", RepeatOnce, false},
		{"once", RepeatOnce, false},
		{"loop", RepeatLoop, false},
		{"pingpong", RepeatPingPong, false},
		{"ping-pong", RepeatPingPong, false},
		{"forever", RepeatOnce, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRepeat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Repeat(7)", Repeat(7).String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
