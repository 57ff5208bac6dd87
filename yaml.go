package animation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-animated-value/internal/value"
)

// ErrInvalidFile indicates an animation file that cannot be turned into a Config.
var ErrInvalidFile = errors.New("invalid animation file")

// Path types accepted in animation files.
const (
	pathBezier     = "bezier"
	pathCatmullRom = "catmull-rom"
)

// fileConfig mirrors an animation file.
//
//	initial: [0, 0]
//	target: [100, 40]
//	mode: auto
//	repeat: pingpong
//	repeats: 2
//	duration: 1.5
//	interpolation: easeOutBack
//	params: [2.5]
//	stops:
//	  - progress: 0.5
//	    value: [60, 80]
//	path:
//	  type: bezier
//	  order: 2
//	  points: [[0.5, 1]]
//	  relative: start-end
type fileConfig struct {
	Initial       fileValue  `yaml:"initial"`
	Target        fileValue  `yaml:"target"`
	Mode          string     `yaml:"mode"`
	Repeat        string     `yaml:"repeat"`
	Repeats       int        `yaml:"repeats"`
	Duration      float64    `yaml:"duration"`
	Delay         float64    `yaml:"delay"`
	Clamp         *bool      `yaml:"clamp"`
	Round         bool       `yaml:"round"`
	EaseAmount    float64    `yaml:"easeAmount"`
	Interpolation string     `yaml:"interpolation"`
	Params        []float64  `yaml:"params"`
	Stops         []fileStop `yaml:"stops"`
	Path          *filePath  `yaml:"path"`
}

type fileStop struct {
	Progress float64   `yaml:"progress"`
	Value    fileValue `yaml:"value"`
}

type filePath struct {
	Type              string      `yaml:"type"`
	Order             int         `yaml:"order"`
	Tension           *float64    `yaml:"tension"`
	Points            []fileValue `yaml:"points"`
	Relative          string      `yaml:"relative"`
	ExplicitEndpoints bool        `yaml:"explicitEndpoints"`
}

// fileColor is the mapping form of a colour. Components are in [0, 1].
type fileColor struct {
	R float64  `yaml:"r"`
	G float64  `yaml:"g"`
	B float64  `yaml:"b"`
	A *float64 `yaml:"a"`
}

// fileValue decodes any of the value forms:
//
//	3            scalar
//	[3]          scalar
//	[1, 2]       vec2
//	[1, 2, 3]    vec3
//	"#ff8800"    colour
//	{r: 1, g: 0.5, b: 0, a: 0.5}
type fileValue struct {
	Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *fileValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if strings.HasPrefix(node.Value, "#") {
			c, err := Hex(node.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			v.Value = c
			return nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		v.Value = Scalar(f)
		return nil

	case yaml.SequenceNode:
		var xs []float64
		if err := node.Decode(&xs); err != nil {
			return err
		}
		switch len(xs) {
		case 1:
			v.Value = Scalar(xs[0])
		case 2:
			v.Value = NewVec2(xs[0], xs[1])
		case 3:
			v.Value = NewVec3(xs[0], xs[1], xs[2])
		default:
			return fmt.Errorf("line %d: %w: %d components, want 1 to 3", node.Line, value.ErrInvalidValue, len(xs))
		}
		return nil

	case yaml.MappingNode:
		var c fileColor
		if err := node.Decode(&c); err != nil {
			return err
		}
		if c.A != nil {
			v.Value = RGBA(c.R, c.G, c.B, *c.A)
		} else {
			v.Value = RGB(c.R, c.G, c.B)
		}
		return nil

	default:
		return fmt.Errorf("line %d: %w: unsupported yaml node", node.Line, value.ErrInvalidValue)
	}
}

// LoadConfig reads an animation file. Hooks are left empty.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading animation file: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes an animation file held in memory. Unknown keys are
// rejected. The result has been validated.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	cfg, err := fc.config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) config() (*Config, error) {
	mode, err := ParseMode(fc.Mode)
	if err != nil {
		return nil, err
	}
	repeat, err := ParseRepeat(fc.Repeat)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Initial:             fc.Initial.Value,
		Target:              fc.Target.Value,
		Mode:                mode,
		Repeat:              repeat,
		Repeats:             fc.Repeats,
		Duration:            fc.Duration,
		Delay:               fc.Delay,
		Unclamped:           fc.Clamp != nil && !*fc.Clamp,
		Round:               fc.Round,
		EaseAmount:          fc.EaseAmount,
		Interpolation:       fc.Interpolation,
		InterpolationParams: fc.Params,
	}

	for _, s := range fc.Stops {
		cfg.Stops = append(cfg.Stops, Stop{Progress: s.Progress, Value: s.Value.Value})
	}

	if fc.Path != nil {
		path, err := fc.Path.interpolator()
		if err != nil {
			return nil, err
		}
		cfg.Interpolator = path
	}

	return cfg, nil
}

func (fp *filePath) interpolator() (Interpolator, error) {
	relative, err := ParseRelative(fp.Relative)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	opts := PathOptions{
		ExplicitEndpoints: fp.ExplicitEndpoints,
		Relative:          relative,
	}

	points := make([]Value, len(fp.Points))
	for i, p := range fp.Points {
		points[i] = p.Value
	}

	switch fp.Type {
	case pathBezier:
		return BezierPath(fp.Order, points, opts)
	case pathCatmullRom:
		tension := DefaultTension
		if fp.Tension != nil {
			tension = *fp.Tension
		}
		return CatmullRomPath(points, tension, opts)
	default:
		return nil, fmt.Errorf("%w: unknown path type %q", ErrInvalidFile, fp.Type)
	}
}
