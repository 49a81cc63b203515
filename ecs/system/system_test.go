package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/ecs/entity"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

type eventRecorder struct {
	events []ecs.Event
}

func (r *eventRecorder) Update(w *ecs.World) {
	r.events = append(r.events, w.Events().Peek()...)
}

func (r *eventRecorder) count(kind ecs.EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func newTestWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return w
}

func spawnPlayer(t *testing.T, w *ecs.World, at cp.Vector, actions *input.ActionSet, script *input.ScriptDriver) ecs.Entity {
	t.Helper()
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	e, err := entity.NewPlayer(w, spec, entity.PlayerOptions{Spawn: &at, Actions: actions, Script: script})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}

func run(s *ecs.Scheduler, w *ecs.World, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Update(w)
	}
}

func enabledSet() *input.ActionSet {
	s := input.NewActionSet()
	s.Enable()
	return s
}
