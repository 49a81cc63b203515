package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// It is the rigid-body handle the controller drives.
type PhysicsBody struct {
	Body    *cp.Body
	Shape   *cp.Shape
	Width   float64
	Height  float64
	Gravity *GravityScale
}

func (p *PhysicsBody) Position() cp.Vector {
	return p.Body.Position()
}

func (p *PhysicsBody) Velocity() cp.Vector {
	return p.Body.Velocity()
}

func (p *PhysicsBody) SetVelocityVector(v cp.Vector) {
	p.Body.SetVelocityVector(v)
}

func (p *PhysicsBody) GravityScale() float64 {
	if p.Gravity == nil {
		return 1
	}
	return p.Gravity.Scale
}

func (p *PhysicsBody) SetGravityScale(scale float64) {
	if p.Gravity == nil {
		p.Gravity = &GravityScale{}
	}
	p.Gravity.Scale = scale
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
