package system

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

const playerPrefab = "player.yaml"

// TuningSystem applies prefab and script edits reported by the watcher
// between ticks. A watcher is optional; without one the system is idle.
type TuningSystem struct {
	watcher *prefabs.Watcher
}

func NewTuningSystem(watcher *prefabs.Watcher) *TuningSystem {
	return &TuningSystem{watcher: watcher}
}

func (t *TuningSystem) Update(w *ecs.World) {
	if t.watcher == nil || w == nil {
		return
	}
	for {
		select {
		case path, ok := <-t.watcher.Events:
			if !ok {
				t.watcher = nil
				return
			}
			if err := Reload(w, path); err != nil {
				log.Printf("tuning: %v", err)
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				t.watcher = nil
				return
			}
			log.Printf("tuning: watch: %v", err)
		default:
			return
		}
	}
}

// Reload re-reads a changed prefab or script and pushes it into the live
// entities. A file that fails to load or validate leaves them untouched.
func Reload(w *ecs.World, path string) error {
	base := filepath.Base(path)
	switch {
	case base == playerPrefab:
		return reloadPlayer(w)
	case strings.HasSuffix(base, ".tengo"):
		return reloadScript(w, base)
	}
	return nil
}

func reloadPlayer(w *ecs.World) error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	cfg, err := spec.ControllerConfig()
	if err != nil {
		return err
	}

	var errs []error
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		if err := p.Controller.SetConfig(cfg); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", e, err))
			return
		}
		if anchors, ok := ecs.Get(w, e, component.ProbeAnchorsComponent.Kind()); ok {
			anchors.Ground = cp.Vector{X: spec.Anchors.GroundX, Y: spec.Anchors.GroundY}
			anchors.Wall = cp.Vector{X: spec.Anchors.WallX, Y: spec.Anchors.WallY}
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			if anim.Clips == nil {
				anim.Clips = make(map[component.AnimationClip]float64, len(spec.Animation.Clips))
			}
			for name, length := range spec.Animation.Clips {
				anim.Clips[component.AnimationClip(name)] = length
			}
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventTuningReloaded, Entity: e, Data: cfg})
	})
	if len(errs) > 0 {
		return fmt.Errorf("tuning: %s: %w", playerPrefab, errors.Join(errs...))
	}
	log.Printf("tuning: reloaded %s", playerPrefab)
	return nil
}

func reloadScript(w *ecs.World, base string) error {
	name := strings.TrimSuffix(base, ".tengo")
	var err error
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		if err != nil || in.Script == nil || in.Script.Name() != name {
			return
		}
		var src []byte
		if src, err = prefabs.LoadScript(name); err != nil {
			return
		}
		var driver *input.ScriptDriver
		if driver, err = input.NewScriptDriver(name, src); err != nil {
			return
		}
		in.Script = driver
		log.Printf("tuning: reloaded script %s", name)
	})
	return err
}
