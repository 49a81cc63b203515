package input

import "github.com/jakecoffman/cp"

// DeviceState is one poll of a physical device. Buttons are true only on
// the frame they went down.
type DeviceState struct {
	Move   cp.Vector
	Jump   bool
	Attack bool
	Roll   bool
}

// Apply forwards a device poll into the action set.
func (s *ActionSet) Apply(d DeviceState) {
	s.SetMove(d.Move)
	if d.Jump {
		s.Press(ActionJump)
	}
	if d.Attack {
		s.Press(ActionAttack)
	}
	if d.Roll {
		s.Press(ActionRoll)
	}
}
