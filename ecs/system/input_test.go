package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
)

func TestInputSystemScriptDrivesPlayer(t *testing.T) {
	w := newTestWorld()
	w.PhysicsWorld().AddSolid(-50, 0, 100, 1, component.CollisionLayer{Category: component.LayerGround})

	driver, err := input.NewScriptDriver("walk_left", []byte("move_x = -1"))
	if err != nil {
		t.Fatal(err)
	}
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 1.6}, nil, driver)

	polls := 0
	in := NewInputSystem(func() input.DeviceState {
		polls++
		return input.DeviceState{Move: cp.Vector{X: 1}}
	})
	s := ecs.NewScheduler(in, NewPlayerControllerSystem(), NewPhysicsSystem())
	run(s, w, 5)

	player := mustGet(t, w, e, component.PlayerComponent.Kind())
	if player.Last.Velocity.X != -10 || player.Last.FacingRight {
		t.Fatalf("script input not applied: %+v", player.Last)
	}
	if polls != 0 {
		t.Fatalf("device polled %d times while a script was driving", polls)
	}
	if in.Tick() != 5 {
		t.Fatalf("tick = %d", in.Tick())
	}
}

func TestInputSystemDevice(t *testing.T) {
	w := newTestWorld()
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 5}, nil, nil)

	polls := 0
	in := NewInputSystem(func() input.DeviceState {
		polls++
		return input.DeviceState{Move: cp.Vector{X: 1}, Attack: polls == 1}
	})
	s := ecs.NewScheduler(in, NewPlayerControllerSystem())
	run(s, w, 3)

	player := mustGet(t, w, e, component.PlayerComponent.Kind())
	if player.Last.Velocity.X != 10 {
		t.Fatalf("vx = %v, want 10", player.Last.Velocity.X)
	}
	if player.Controller.Combo().Hits() != 1 {
		t.Fatalf("hits = %d, want 1", player.Controller.Combo().Hits())
	}
	if polls != 3 {
		t.Fatalf("polls = %d, want one per tick", polls)
	}
}

func TestInputSystemDropsFailingScript(t *testing.T) {
	w := newTestWorld()
	driver, err := input.NewScriptDriver("boom", []byte("f := 1\nf()"))
	if err != nil {
		t.Fatal(err)
	}
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 5}, nil, driver)

	s := ecs.NewScheduler(NewInputSystem(nil))
	run(s, w, 1)

	in := mustGet(t, w, e, component.InputComponent.Kind())
	if in.Script != nil {
		t.Fatalf("failing script still attached")
	}
}
