package controller

import "github.com/jakecoffman/cp"

// MovementResolver maps intent onto a target velocity. Velocity is set
// directly each tick with no acceleration curve.
type MovementResolver struct {
	WalkingSpeed float64
	JumpSpeed    float64
}

// Resolve returns the velocity to write for this tick and whether a jump was
// taken. Vertical velocity is left to the physics integrator unless a jump
// fires; jumping requires grounded.
func (m MovementResolver) Resolve(in InputSnapshot, grabbing, grounded bool, vel cp.Vector) (cp.Vector, bool) {
	if !grabbing {
		vel.X = in.MoveAxis.X * m.WalkingSpeed
	}
	if in.JumpEdge && grounded {
		vel.Y = m.JumpSpeed
		return vel, true
	}
	return vel, false
}
