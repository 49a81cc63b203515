package component

import "github.com/milk9111/warrior/input"

// Input holds the action map an entity listens to and, optionally, the
// script that drives it instead of the keyboard.
type Input struct {
	Actions *input.ActionSet
	Script  *input.ScriptDriver
}

var InputComponent = NewComponent[Input]()
