package system

import (
	"log"

	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
)

// InputSource polls a physical device once per tick.
type InputSource func() input.DeviceState

// InputSystem feeds every action set from either its script or the shared
// device.
type InputSystem struct {
	source InputSource
	tick   int
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var dev input.DeviceState
	polled := false

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if in.Actions == nil {
			return
		}
		if in.Script != nil {
			if err := in.Script.Step(observe(w, e, i.tick), in.Actions); err != nil {
				log.Printf("input: %v; falling back to device", err)
				in.Script = nil
			}
			return
		}
		if i.source == nil {
			return
		}
		if !polled {
			dev = i.source()
			polled = true
		}
		in.Actions.Apply(dev)
	})
	i.tick++
}

// Tick is the number of updates run so far.
func (i *InputSystem) Tick() int {
	return i.tick
}

func observe(w *ecs.World, e ecs.Entity, tick int) input.Observation {
	obs := input.Observation{Tick: tick, Time: float64(tick) * common.FixedDelta}
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		obs.Grounded = p.Last.Grounded
		obs.Grabbing = p.Last.Grabbing
		obs.FacingRight = p.Last.FacingRight
		obs.VX, obs.VY = p.Last.Velocity.X, p.Last.Velocity.Y
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		v := pb.Velocity()
		obs.VX, obs.VY = v.X, v.Y
	}
	return obs
}
