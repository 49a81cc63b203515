package controller

import (
	"strconv"

	"github.com/jakecoffman/cp"
)

// GrabState is the ledge-grab mode.
type GrabState int

const (
	GrabFree GrabState = iota
	GrabGrabbing
)

func (s GrabState) String() string {
	if s == GrabGrabbing {
		return "grabbing"
	}
	return "free"
}

// LedgeEvent reports the transition taken during one detector update.
type LedgeEvent int

const (
	LedgeNone LedgeEvent = iota
	LedgeEntered
	LedgeReleased
	// LedgeTouched is an entry and a release in the same tick, which happens
	// when vertical input is already held as the wall is reached.
	LedgeTouched
)

func (e LedgeEvent) String() string {
	switch e {
	case LedgeNone:
		return "none"
	case LedgeEntered:
		return "entered"
	case LedgeReleased:
		return "released"
	case LedgeTouched:
		return "touched"
	default:
		return "LedgeEvent(" + strconv.Itoa(int(e)) + ")"
	}
}

var down = cp.Vector{Y: -1}

// LedgeGrabDetector latches onto walls while falling. Entry needs the
// character airborne, a wall in the facing direction and a downward
// velocity; only vertical input lets go.
type LedgeGrabDetector struct {
	probe  Probe
	ground Anchor
	wall   Anchor

	Length       float64
	Mask         uint
	GravityScale float64

	state    GrabState
	grounded bool
	touching bool
}

func NewLedgeGrabDetector(probe Probe, ground, wall Anchor, cfg Config) *LedgeGrabDetector {
	return &LedgeGrabDetector{
		probe:        probe,
		ground:       ground,
		wall:         wall,
		Length:       cfg.ProbeLength,
		Mask:         cfg.GroundMask,
		GravityScale: cfg.GravityScale,
	}
}

// Update re-issues both probes and applies the grab transitions to body.
func (d *LedgeGrabDetector) Update(body Body, facing cp.Vector, moveY float64) LedgeEvent {
	d.grounded = d.probe.Cast(d.ground.Position(), down, d.Length, d.Mask)
	d.touching = d.probe.Cast(d.wall.Position(), facing, d.Length, d.Mask)

	ev := LedgeNone
	if !d.grounded && d.touching && body.Velocity().Y < 0 {
		body.SetGravityScale(0)
		body.SetVelocityVector(cp.Vector{})
		if d.state != GrabGrabbing {
			ev = LedgeEntered
		}
		d.state = GrabGrabbing
	}

	if d.state == GrabGrabbing && moveY != 0 {
		body.SetGravityScale(d.GravityScale)
		d.state = GrabFree
		if ev == LedgeEntered {
			return LedgeTouched
		}
		return LedgeReleased
	}
	return ev
}

func (d *LedgeGrabDetector) State() GrabState {
	return d.state
}

func (d *LedgeGrabDetector) Grabbing() bool {
	return d.state == GrabGrabbing
}

// Grounded is the latest ground probe result.
func (d *LedgeGrabDetector) Grounded() bool {
	return d.grounded
}

// TouchingWall is the latest wall probe result.
func (d *LedgeGrabDetector) TouchingWall() bool {
	return d.touching
}

func (d *LedgeGrabDetector) Reset() {
	d.state = GrabFree
	d.grounded = false
	d.touching = false
}
