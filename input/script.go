package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// Observation is the character state a script sees each tick.
type Observation struct {
	Tick        int
	Time        float64
	Grounded    bool
	Grabbing    bool
	FacingRight bool
	VX, VY      float64
}

// ScriptDriver plays a tengo script as the input device. The script reads
// tick, time, grounded, grabbing, facing_right, vx and vy, and assigns
// move_x, move_y, jump, attack and roll. Button globals are cleared before
// every run; the move axis holds until reassigned.
type ScriptDriver struct {
	name     string
	compiled *tengo.Compiled
}

var scriptInputs = []string{"tick", "time", "grounded", "grabbing", "facing_right", "vx", "vy"}

func NewScriptDriver(name string, src []byte) (*ScriptDriver, error) {
	script := tengo.NewScript(src)
	for _, k := range scriptInputs {
		_ = script.Add(k, 0)
	}
	_ = script.Add("move_x", 0.0)
	_ = script.Add("move_y", 0.0)
	_ = script.Add("jump", false)
	_ = script.Add("attack", false)
	_ = script.Add("roll", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile %s: %w", name, err)
	}
	return &ScriptDriver{name: name, compiled: compiled}, nil
}

func (d *ScriptDriver) Name() string {
	return d.name
}

// Step runs the script once and feeds its outputs into set.
func (d *ScriptDriver) Step(obs Observation, set *ActionSet) error {
	c := d.compiled
	values := map[string]any{
		"tick":         obs.Tick,
		"time":         obs.Time,
		"grounded":     obs.Grounded,
		"grabbing":     obs.Grabbing,
		"facing_right": obs.FacingRight,
		"vx":           obs.VX,
		"vy":           obs.VY,
		"jump":         false,
		"attack":       false,
		"roll":         false,
	}
	for k, v := range values {
		if err := c.Set(k, v); err != nil {
			return fmt.Errorf("input: %s: set %s: %w", d.name, k, err)
		}
	}
	if err := c.Run(); err != nil {
		return fmt.Errorf("input: %s: tick %d: %w", d.name, obs.Tick, err)
	}

	set.SetMove(cp.Vector{X: c.Get("move_x").Float(), Y: c.Get("move_y").Float()})
	if c.Get("jump").Bool() {
		set.Press(ActionJump)
	}
	if c.Get("attack").Bool() {
		set.Press(ActionAttack)
	}
	if c.Get("roll").Bool() {
		set.Press(ActionRoll)
	}
	return nil
}
