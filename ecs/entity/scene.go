package entity

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/levels"
	"github.com/milk9111/warrior/prefabs"
)

// SceneOptions select the level and how the player is driven.
type SceneOptions struct {
	Level string
	// Script names a tengo script under prefabs/scripts that drives the
	// player instead of the device.
	Script string
	// SpeedMode overrides the prefab's speed_mode when set.
	SpeedMode string
	Actions   *input.ActionSet
	Logger    *log.Logger
}

// LoadScene builds a world holding the level geometry and the player.
func LoadScene(opts SceneOptions) (*ecs.World, ecs.Entity, error) {
	lvl, err := levels.LoadLevel(opts.Level)
	if err != nil {
		return nil, 0, err
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	if err := LoadLevelToWorld(w, lvl); err != nil {
		return nil, 0, fmt.Errorf("scene: %w", err)
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, 0, err
	}
	if opts.SpeedMode != "" {
		spec.Controller.SpeedMode = opts.SpeedMode
	}

	var script *input.ScriptDriver
	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, 0, fmt.Errorf("scene: script %s: %w", opts.Script, err)
		}
		if script, err = input.NewScriptDriver(scriptName(opts.Script), src); err != nil {
			return nil, 0, err
		}
	}

	playerOpts := PlayerOptions{Actions: opts.Actions, Script: script, Logger: opts.Logger}
	if spawn, ok := SpawnPoint(lvl, spec.Collider.Height); ok {
		playerOpts.Spawn = &spawn
	} else {
		playerOpts.Spawn = &cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y}
	}

	player, err := NewPlayer(w, spec, playerOpts)
	if err != nil {
		return nil, 0, err
	}
	return w, player, nil
}

func scriptName(p string) string {
	return strings.TrimSuffix(path.Base(filepath.ToSlash(p)), ".tengo")
}
