package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/controller"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/levels"
	"github.com/milk9111/warrior/prefabs"
)

func TestLoadScene(t *testing.T) {
	actions := input.NewActionSet()
	actions.Enable()

	w, player, err := LoadScene(SceneOptions{Level: "arena", Script: "ledge_demo", SpeedMode: "magnitude", Actions: actions})
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	solids := 0
	ecs.ForEach(w, component.SolidComponent.Kind(), func(ecs.Entity, *component.Solid) { solids++ })
	if solids == 0 {
		t.Fatalf("no level geometry")
	}
	if _, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); !ok {
		t.Fatalf("no level bounds")
	}

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || p.Controller == nil || !p.Controller.Active() {
		t.Fatalf("player controller missing or inactive")
	}
	if p.Controller.Config().SpeedMode != controller.SpeedMagnitude {
		t.Fatalf("speed mode override ignored")
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok || in.Script == nil || in.Script.Name() != "ledge_demo" || in.Actions != actions {
		t.Fatalf("input = %+v", in)
	}
	if actions.Len(input.ActionJump) != 1 {
		t.Fatalf("controller not subscribed to the given action set")
	}

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if got := body.Position(); got.X != 3.5 || got.Y != 2.5 {
		t.Fatalf("spawn = %v, want (3.5, 2.5)", got)
	}
	if body.GravityScale() != 5 {
		t.Fatalf("gravity scale = %v after activation", body.GravityScale())
	}
}

func TestLoadSceneErrors(t *testing.T) {
	cases := []struct {
		name string
		opts SceneOptions
	}{
		{"missing_level", SceneOptions{Level: "nowhere"}},
		{"missing_script", SceneOptions{Level: "arena", Script: "nope"}},
		{"bad_speed_mode", SceneOptions{Level: "arena", SpeedMode: "sideways"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := LoadScene(tc.opts); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewPlayerNeedsPhysics(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	if _, err := NewPlayer(w, spec, PlayerOptions{}); err != ErrNoPhysicsWorld {
		t.Fatalf("err = %v, want ErrNoPhysicsWorld", err)
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("entity leaked")
	}
}

func TestWallAnchorMirrorsWithFacing(t *testing.T) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	// wall on the left only
	w.PhysicsWorld().AddSolid(-1, 0, 1, 20, component.CollisionLayer{Category: component.LayerGround})

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatal(err)
	}
	actions := input.NewActionSet()
	actions.Enable()
	spawn := cp.Vector{X: 0.32, Y: 10}
	e, err := NewPlayer(w, spec, PlayerOptions{Spawn: &spawn, Actions: actions})
	if err != nil {
		t.Fatal(err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())

	p.Controller.FixedUpdate(common.FixedDelta)
	w.PhysicsWorld().Step(common.FixedDelta)
	if r := p.Controller.FixedUpdate(common.FixedDelta); r.Grabbing {
		t.Fatalf("grabbed a wall behind the character")
	}

	actions.SetMove(cp.Vector{X: -1})
	actions.SetMove(cp.Vector{})
	w.PhysicsWorld().Step(common.FixedDelta)
	if r := p.Controller.FixedUpdate(common.FixedDelta); !r.Grabbing || r.FacingRight {
		t.Fatalf("facing left next to the wall: %+v", r)
	}
}

func TestSpawnPoint(t *testing.T) {
	lvl := &levels.Level{Width: 4, Height: 4, Layers: [][]int{make([]int, 16)}, Entities: []levels.Entity{{Type: "player", X: 1, Y: 2}}}
	got, ok := SpawnPoint(lvl, 1)
	if !ok || got.X != 1.5*common.TileSize || got.Y != 1.5*common.TileSize {
		t.Fatalf("SpawnPoint = %v %v", got, ok)
	}
	if _, ok := SpawnPoint(&levels.Level{Width: 1, Height: 1}, 1); ok {
		t.Fatalf("spawn found in an empty level")
	}
}
