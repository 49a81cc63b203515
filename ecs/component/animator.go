package component

import "github.com/milk9111/warrior/controller"

// AnimatorParams is the parameter block the controller projects into. Slots
// are indexed by controller.Param, so names are resolved once when the
// animation side asks for them.
type AnimatorParams struct {
	floats   [controller.ParamCount]float64
	ints     [controller.ParamCount]int
	bools    [controller.ParamCount]bool
	triggers [controller.ParamCount]int
	written  [controller.ParamCount]bool
}

func (a *AnimatorParams) SetFloat(p controller.Param, v float64) { a.floats[p] = v; a.written[p] = true }
func (a *AnimatorParams) SetInt(p controller.Param, v int)       { a.ints[p] = v; a.written[p] = true }
func (a *AnimatorParams) SetBool(p controller.Param, v bool)     { a.bools[p] = v; a.written[p] = true }
func (a *AnimatorParams) Trigger(p controller.Param)             { a.triggers[p]++ }

func (a *AnimatorParams) Float(p controller.Param) float64 { return a.floats[p] }
func (a *AnimatorParams) Int(p controller.Param) int       { return a.ints[p] }
func (a *AnimatorParams) Bool(p controller.Param) bool     { return a.bools[p] }

// Written reports whether p was set since the last EndFrame.
func (a *AnimatorParams) Written(p controller.Param) bool { return a.written[p] }

// EndFrame clears the written flags. Values persist.
func (a *AnimatorParams) EndFrame() {
	a.written = [controller.ParamCount]bool{}
}

// ConsumeTrigger reports whether p was pulsed since the last call and
// clears it.
func (a *AnimatorParams) ConsumeTrigger(p controller.Param) bool {
	if a.triggers[p] == 0 {
		return false
	}
	a.triggers[p] = 0
	return true
}

var AnimatorParamsComponent = NewComponent[AnimatorParams]()
