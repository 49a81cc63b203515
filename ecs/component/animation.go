package component

// AnimationClip is the clip selected from the animator parameters.
type AnimationClip string

const (
	ClipIdle        AnimationClip = "idle"
	ClipRun         AnimationClip = "run"
	ClipFall        AnimationClip = "fall"
	ClipJump        AnimationClip = "jump"
	ClipLightAttack AnimationClip = "attack"
	ClipComboAttack AnimationClip = "combo"
	ClipLedgeGrab   AnimationClip = "ledge_grab"
)

// Animation tracks which clip is playing and for how long. A triggered
// action clip holds for Hold seconds before locomotion takes over again.
type Animation struct {
	Current AnimationClip
	Elapsed float64
	Hold    float64
	// Clips maps clip names to their play length in seconds.
	Clips map[AnimationClip]float64
}

var AnimationComponent = NewComponent[Animation]()
