package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/warrior/controller"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name       string         `yaml:"name"`
	Transform  TransformSpec  `yaml:"transform"`
	Collider   ColliderSpec   `yaml:"collider"`
	Anchors    AnchorsSpec    `yaml:"anchors"`
	Controller ControllerSpec `yaml:"controller"`
	Animation  AnimationSpec  `yaml:"animation"`
	Color      *YAMLColor     `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ControllerConfig converts the controller section into a validated config.
func (s *PlayerSpec) ControllerConfig() (controller.Config, error) {
	return s.Controller.Config()
}

// ControllerSpec is the tuning block of the character controller. Keys
// missing from the yaml keep the controller defaults.
type ControllerSpec struct {
	WalkingSpeed float64 `yaml:"walking_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	RollSpeed    float64 `yaml:"roll_speed"`
	ComboWindow  float64 `yaml:"combo_window"`
	ProbeLength  float64 `yaml:"probe_length"`
	GravityScale float64 `yaml:"gravity_scale"`
	GroundMask   uint    `yaml:"ground_mask"`
	SpeedMode    string  `yaml:"speed_mode"`
}

func defaultControllerSpec() ControllerSpec {
	cfg := controller.DefaultConfig()
	return ControllerSpec{
		WalkingSpeed: cfg.WalkingSpeed,
		JumpSpeed:    cfg.JumpSpeed,
		RollSpeed:    cfg.RollSpeed,
		ComboWindow:  cfg.ComboWindow,
		ProbeLength:  cfg.ProbeLength,
		GravityScale: cfg.GravityScale,
		GroundMask:   cfg.GroundMask,
		SpeedMode:    cfg.SpeedMode.String(),
	}
}

func (s *ControllerSpec) UnmarshalYAML(value *yaml.Node) error {
	type raw ControllerSpec
	r := raw(defaultControllerSpec())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*s = ControllerSpec(r)
	return nil
}

func (s ControllerSpec) Config() (controller.Config, error) {
	mode, err := controller.ParseSpeedMode(s.SpeedMode)
	if err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: controller: %w", err)
	}
	cfg := controller.Config{
		WalkingSpeed: s.WalkingSpeed,
		JumpSpeed:    s.JumpSpeed,
		RollSpeed:    s.RollSpeed,
		ComboWindow:  s.ComboWindow,
		ProbeLength:  s.ProbeLength,
		GravityScale: s.GravityScale,
		GroundMask:   s.GroundMask,
		SpeedMode:    mode,
	}
	if err := cfg.Validate(); err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: controller: %w", err)
	}
	return cfg, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnchorsSpec places the ground and wall probe origins relative to the body
// centre. The wall anchor is mirrored when the character faces left.
type AnchorsSpec struct {
	GroundX float64 `yaml:"ground_x"`
	GroundY float64 `yaml:"ground_y"`
	WallX   float64 `yaml:"wall_x"`
	WallY   float64 `yaml:"wall_y"`
}

// AnimationSpec lists clip lengths in seconds keyed by clip name.
type AnimationSpec struct {
	Initial string             `yaml:"initial"`
	Clips   map[string]float64 `yaml:"clips"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
