package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/controller"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
	"golang.org/x/image/colornames"
)

// PlayerOptions override parts of the player prefab.
type PlayerOptions struct {
	// Spawn replaces the prefab transform when set.
	Spawn *cp.Vector
	// Actions is the action map to subscribe to. A new enabled set is
	// created when nil.
	Actions *input.ActionSet
	// Script drives Actions instead of the keyboard.
	Script *input.ScriptDriver
	Logger *log.Logger
}

// NewPlayer builds the player body, its animator block and an active
// controller subscribed to the action set.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, opts PlayerOptions) (ecs.Entity, error) {
	if spec == nil {
		return 0, errors.New("entity: nil player spec")
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, ErrNoPhysicsWorld
	}
	cfg, err := spec.ControllerConfig()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	pos := cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y}
	if opts.Spawn != nil {
		pos = *opts.Spawn
	}

	e := ecs.CreateEntity(w)
	gravity := &component.GravityScale{Scale: cfg.GravityScale}
	layer := &component.CollisionLayer{Category: component.LayerPlayer, Mask: component.LayerGround}
	body := pw.AddDynamicBody(e, pos.X, pos.Y, spec.Collider.Width, spec.Collider.Height, *layer, gravity)

	anchors := &component.ProbeAnchors{
		Ground: cp.Vector{X: spec.Anchors.GroundX, Y: spec.Anchors.GroundY},
		Wall:   cp.Vector{X: spec.Anchors.WallX, Y: spec.Anchors.WallY},
	}
	params := &component.AnimatorParams{}

	var ctrl *controller.Controller
	ground := controller.AnchorFunc(func() cp.Vector {
		return body.Position().Add(anchors.Ground)
	})
	wall := controller.AnchorFunc(func() cp.Vector {
		off := anchors.Wall
		if ctrl != nil && !ctrl.FacingRight() {
			off.X = -off.X
		}
		return body.Position().Add(off)
	})

	ctrl, err = controller.New(controller.Deps{
		Body:        body,
		Sink:        params,
		Probe:       pw,
		GroundCheck: ground,
		WallCheck:   wall,
		Logger:      opts.Logger,
	}, cfg)
	if err != nil {
		pw.RemoveBody(e)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}

	actions := opts.Actions
	if actions == nil {
		actions = input.NewActionSet()
		actions.Enable()
	}
	if err := ctrl.Activate(actions); err != nil {
		pw.RemoveBody(e)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}

	var tint component.Tint
	tint.Color = colornames.Goldenrod
	if spec.Color != nil {
		tint.Color = spec.Color.Color
	}

	anim := &component.Animation{
		Current: component.AnimationClip(spec.Animation.Initial),
		Clips:   make(map[component.AnimationClip]float64, len(spec.Animation.Clips)),
	}
	if anim.Current == "" {
		anim.Current = component.ClipIdle
	}
	for name, length := range spec.Animation.Clips {
		anim.Clips[component.AnimationClip(name)] = length
	}

	if err := errors.Join(
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body),
		ecs.Add(w, e, component.GravityScaleComponent.Kind(), gravity),
		ecs.Add(w, e, component.CollisionLayerComponent.Kind(), layer),
		ecs.Add(w, e, component.ProbeAnchorsComponent.Kind(), anchors),
		ecs.Add(w, e, component.AnimatorParamsComponent.Kind(), params),
		ecs.Add(w, e, component.AnimationComponent.Kind(), anim),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Actions: actions, Script: opts.Script}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Controller: ctrl}),
		ecs.Add(w, e, component.TintComponent.Kind(), &tint),
	); err != nil {
		ctrl.Deactivate()
		pw.RemoveBody(e)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}

	return e, nil
}

// RemovePlayer unsubscribes the controller and tears down the body.
func RemovePlayer(w *ecs.World, e ecs.Entity) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.Controller != nil {
		p.Controller.Deactivate()
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.RemoveBody(e)
	}
	ecs.DestroyEntity(w, e)
}
