package controller

import (
	"errors"
	"fmt"
)

// SpeedMode selects how the MovementValue parameter is derived from velocity.
type SpeedMode int

const (
	// SpeedAbsX reports |velocity.x|.
	SpeedAbsX SpeedMode = iota
	// SpeedMagnitude reports the full velocity length.
	SpeedMagnitude
)

func (m SpeedMode) String() string {
	switch m {
	case SpeedAbsX:
		return "abs_x"
	case SpeedMagnitude:
		return "magnitude"
	default:
		return fmt.Sprintf("SpeedMode(%d)", int(m))
	}
}

// ParseSpeedMode maps a tuning-file name onto a SpeedMode. Empty selects SpeedAbsX.
func ParseSpeedMode(s string) (SpeedMode, error) {
	switch s {
	case "", "abs_x":
		return SpeedAbsX, nil
	case "magnitude":
		return SpeedMagnitude, nil
	default:
		return SpeedAbsX, fmt.Errorf("controller: unknown speed mode %q", s)
	}
}

// Config holds the per-instance tuning constants. The controller never
// mutates it; external tools replace it wholesale through SetConfig.
type Config struct {
	WalkingSpeed float64
	JumpSpeed    float64
	// RollSpeed is carried for the Roll action of the input set. No
	// controller mechanic reads it.
	RollSpeed   float64
	ComboWindow float64
	ProbeLength float64
	// GravityScale is the multiplier restored when a ledge grab ends.
	GravityScale float64
	GroundMask   uint
	SpeedMode    SpeedMode
}

// DefaultConfig returns the tuning the warrior ships with.
func DefaultConfig() Config {
	return Config{
		WalkingSpeed: 10,
		JumpSpeed:    5,
		RollSpeed:    8,
		ComboWindow:  0.25,
		ProbeLength:  0.2,
		GravityScale: 5,
		GroundMask:   1,
		SpeedMode:    SpeedAbsX,
	}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	if c.WalkingSpeed < 0 {
		errs = append(errs, fmt.Errorf("walking speed %v < 0", c.WalkingSpeed))
	}
	if c.JumpSpeed < 0 {
		errs = append(errs, fmt.Errorf("jump speed %v < 0", c.JumpSpeed))
	}
	if c.RollSpeed < 0 {
		errs = append(errs, fmt.Errorf("roll speed %v < 0", c.RollSpeed))
	}
	if c.ComboWindow <= 0 {
		errs = append(errs, fmt.Errorf("combo window %v must be positive", c.ComboWindow))
	}
	if c.ProbeLength <= 0 {
		errs = append(errs, fmt.Errorf("probe length %v must be positive", c.ProbeLength))
	}
	if c.GravityScale < 0 {
		errs = append(errs, fmt.Errorf("gravity scale %v < 0", c.GravityScale))
	}
	if c.GroundMask == 0 {
		errs = append(errs, errors.New("ground mask is empty"))
	}
	if c.SpeedMode != SpeedAbsX && c.SpeedMode != SpeedMagnitude {
		errs = append(errs, fmt.Errorf("unknown speed mode %d", int(c.SpeedMode)))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
