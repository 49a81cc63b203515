package system

import (
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

// PhysicsSystem steps the shared space and copies body positions back into
// transforms.
type PhysicsSystem struct {
	Dt float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{Dt: common.FixedDelta}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(ps.Dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
			if body.Body == nil {
				return
			}
			pos := body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
		})
}
