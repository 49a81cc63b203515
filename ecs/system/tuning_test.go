package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

func TestReloadPlayerTuning(t *testing.T) {
	w := newTestWorld()
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 5}, nil, nil)
	ctrl := mustGet(t, w, e, component.PlayerComponent.Kind()).Controller

	slow := ctrl.Config()
	slow.WalkingSpeed = 3
	slow.GravityScale = 1
	if err := ctrl.SetConfig(slow); err != nil {
		t.Fatal(err)
	}
	gravity := mustGet(t, w, e, component.GravityScaleComponent.Kind())
	if gravity.Scale != 1 {
		t.Fatalf("gravity scale = %v after SetConfig, want 1", gravity.Scale)
	}

	if err := Reload(w, filepath.Join("prefabs", "player.yaml")); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := ctrl.Config().WalkingSpeed; got != 10 {
		t.Fatalf("walking speed = %v after reload, want 10", got)
	}
	if gravity.Scale != 5 {
		t.Fatalf("gravity scale = %v after reload, want 5", gravity.Scale)
	}

	events := w.Events().Peek()
	if len(events) != 1 || events[0].Kind != ecs.EventTuningReloaded || events[0].Entity != e {
		t.Fatalf("events = %+v", events)
	}

	if err := Reload(w, "enemy.yaml"); err != nil {
		t.Fatalf("unrelated file: %v", err)
	}
}

func TestReloadRejectsInvalidTuning(t *testing.T) {
	w := newTestWorld()
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 5}, nil, nil)
	ctrl := mustGet(t, w, e, component.PlayerComponent.Kind()).Controller
	before := ctrl.Config()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, prefabs.DiskDir()), 0o755); err != nil {
		t.Fatal(err)
	}
	bad := []byte("controller:\n  combo_window: -1\n")
	if err := os.WriteFile(filepath.Join(dir, prefabs.DiskDir(), "player.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := Reload(w, "player.yaml"); err == nil {
		t.Fatalf("expected error for invalid tuning")
	}
	if ctrl.Config() != before {
		t.Fatalf("config changed by a rejected reload")
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("reload event pushed for a rejected file")
	}
}

func TestReloadScript(t *testing.T) {
	w := newTestWorld()
	src, err := prefabs.LoadScript("walk_and_combo")
	if err != nil {
		t.Fatal(err)
	}
	driver, err := input.NewScriptDriver("walk_and_combo", src)
	if err != nil {
		t.Fatal(err)
	}
	e := spawnPlayer(t, w, cp.Vector{X: 0, Y: 5}, nil, driver)

	if err := Reload(w, "prefabs/scripts/walk_and_combo.tengo"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	in := mustGet(t, w, e, component.InputComponent.Kind())
	if in.Script == nil || in.Script == driver {
		t.Fatalf("script not replaced")
	}

	if err := Reload(w, "ledge_demo.tengo"); err != nil {
		t.Fatalf("unrelated script: %v", err)
	}
}

func TestTuningSystemWithoutWatcher(t *testing.T) {
	w := newTestWorld()
	NewTuningSystem(nil).Update(w)
}
