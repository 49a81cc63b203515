package system

import (
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/controller"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

// PlayerControllerSystem runs one controller step per player and publishes
// action and ledge transitions as world events.
type PlayerControllerSystem struct {
	Dt float64
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{Dt: common.FixedDelta}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if player.Controller == nil {
			return
		}
		report := player.Controller.FixedUpdate(p.Dt)
		player.Last = report
		player.Ticks++

		if report.Jumped && report.Action != controller.ActionJump {
			w.Events().Push(ecs.Event{Kind: ecs.EventAnimationTrigger, Entity: e, Data: controller.ActionJump})
		}
		if report.Action != controller.ActionNone {
			w.Events().Push(ecs.Event{Kind: ecs.EventAnimationTrigger, Entity: e, Data: report.Action})
		}
		if report.Ledge != controller.LedgeNone {
			w.Events().Push(ecs.Event{Kind: ecs.EventLedge, Entity: e, Data: report.Ledge})
		}
	})
}
