package system

import (
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/controller"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

const (
	defaultClipLength = 0.3
	runThreshold      = 0.01
)

// AnimationSystem picks the clip to play from the animator parameters the
// controller wrote this tick.
type AnimationSystem struct {
	Dt float64
}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{Dt: common.FixedDelta}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimatorParamsComponent.Kind(), component.AnimationComponent.Kind(),
		func(_ ecs.Entity, params *component.AnimatorParams, anim *component.Animation) {
			a.step(params, anim)
			params.EndFrame()
		})
}

func (a *AnimationSystem) step(params *component.AnimatorParams, anim *component.Animation) {
	next := anim.Current
	restart := false
	id := controller.ActionID(params.Int(controller.ParamActionID))

	switch {
	case params.ConsumeTrigger(controller.ParamActionTrigger):
		if clip, ok := actionClip(id); ok {
			next = clip
			anim.Hold = clipLength(anim, clip)
			restart = true
		}
	case id == controller.ActionLedgeGrab && params.Written(controller.ParamActionID):
		next = component.ClipLedgeGrab
		anim.Hold = 0
	case anim.Hold > 0:
		anim.Hold -= a.Dt
		if anim.Hold < 0 {
			anim.Hold = 0
		}
	default:
		next = locomotionClip(params)
	}

	if next != anim.Current || restart {
		anim.Current = next
		anim.Elapsed = 0
		return
	}
	anim.Elapsed += a.Dt
}

func actionClip(id controller.ActionID) (component.AnimationClip, bool) {
	switch id {
	case controller.ActionJump:
		return component.ClipJump, true
	case controller.ActionLightAttack:
		return component.ClipLightAttack, true
	case controller.ActionComboAttack:
		return component.ClipComboAttack, true
	case controller.ActionLedgeGrab:
		return component.ClipLedgeGrab, true
	}
	return "", false
}

func locomotionClip(params *component.AnimatorParams) component.AnimationClip {
	if !params.Bool(controller.ParamGrounded) {
		return component.ClipFall
	}
	if params.Float(controller.ParamMovementValue) > runThreshold {
		return component.ClipRun
	}
	return component.ClipIdle
}

func clipLength(anim *component.Animation, clip component.AnimationClip) float64 {
	if l, ok := anim.Clips[clip]; ok && l > 0 {
		return l
	}
	return defaultClipLength
}
