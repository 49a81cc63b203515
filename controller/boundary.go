package controller

import "github.com/jakecoffman/cp"

// Body is the rigid-body handle the controller drives. Velocity is in world
// units per second with +Y up.
type Body interface {
	Velocity() cp.Vector
	SetVelocityVector(v cp.Vector)
	GravityScale() float64
	SetGravityScale(scale float64)
}

// Probe answers fixed-length ray casts against the collision world.
type Probe interface {
	Cast(origin, dir cp.Vector, length float64, mask uint) bool
}

// Anchor is a point attached to the character that probes are cast from.
type Anchor interface {
	Position() cp.Vector
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func() cp.Vector

func (f AnchorFunc) Position() cp.Vector { return f() }
