package controller

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Param identifies an animation parameter. Names are resolved once by the
// sink; writes go through the enum.
type Param int

const (
	ParamMovementValue Param = iota
	ParamActionID
	ParamActionTrigger
	ParamGrounded

	ParamCount
)

var paramNames = [ParamCount]string{
	ParamMovementValue: "MovementValue",
	ParamActionID:      "ActionID",
	ParamActionTrigger: "ActionTrigger",
	ParamGrounded:      "Grounded",
}

func (p Param) String() string {
	if p >= 0 && p < ParamCount {
		return paramNames[p]
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// ParamByName looks up a parameter by its animator name.
func ParamByName(name string) (Param, bool) {
	for i, n := range paramNames {
		if n == name {
			return Param(i), true
		}
	}
	return 0, false
}

// ActionID is the integer written to the ActionID parameter.
type ActionID int

const (
	ActionNone        ActionID = 0
	ActionJump        ActionID = 1
	ActionLightAttack ActionID = 9
	ActionComboAttack ActionID = 10
	ActionLedgeGrab   ActionID = 20
)

func (a ActionID) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionJump:
		return "jump"
	case ActionLightAttack:
		return "light_attack"
	case ActionComboAttack:
		return "combo_attack"
	case ActionLedgeGrab:
		return "ledge_grab"
	default:
		return fmt.Sprintf("ActionID(%d)", int(a))
	}
}

// ParamSink receives animation parameter writes. Trigger is a one-shot
// pulse consumed by the animation side.
type ParamSink interface {
	SetFloat(p Param, v float64)
	SetInt(p Param, v int)
	SetBool(p Param, v bool)
	Trigger(p Param)
}

// AnimationProjector writes resolved state to the sink. It never reads back.
type AnimationProjector struct {
	sink ParamSink
	Mode SpeedMode
}

func NewAnimationProjector(sink ParamSink, mode SpeedMode) *AnimationProjector {
	return &AnimationProjector{sink: sink, Mode: mode}
}

// Action fires the trigger and publishes the action id.
func (a *AnimationProjector) Action(id ActionID) {
	a.sink.Trigger(ParamActionTrigger)
	a.sink.SetInt(ParamActionID, int(id))
}

// Project writes the per-tick parameters.
func (a *AnimationProjector) Project(vel cp.Vector, grounded, grabbing bool) {
	a.sink.SetFloat(ParamMovementValue, a.speed(vel))
	a.sink.SetBool(ParamGrounded, grounded)
	if grabbing {
		a.sink.SetInt(ParamActionID, int(ActionLedgeGrab))
	}
}

func (a *AnimationProjector) speed(vel cp.Vector) float64 {
	if a.Mode == SpeedMagnitude {
		return vel.Length()
	}
	return math.Abs(vel.X)
}
