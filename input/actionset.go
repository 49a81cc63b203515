package input

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/controller"
)

// Action names one bindable control.
type Action int

const (
	ActionMove Action = iota
	ActionJump
	ActionAttack
	ActionRoll

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionRoll:
		return "Roll"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

type handler struct {
	id   int
	axis func(cp.Vector)
	edge func()
}

// ActionSet is the player action map. Move is level-valued and fires on
// every change (performed and canceled); the rest are press edges. Events
// sent while the set is disabled are dropped.
type ActionSet struct {
	enabled  bool
	move     cp.Vector
	nextID   int
	handlers [actionCount][]handler
}

func NewActionSet() *ActionSet {
	return &ActionSet{}
}

func (s *ActionSet) Enable() {
	s.enabled = true
}

// Disable stops dispatch. A held move axis is canceled back to zero first.
func (s *ActionSet) Disable() {
	if !s.enabled {
		return
	}
	if s.move != (cp.Vector{}) {
		s.SetMove(cp.Vector{})
	}
	s.enabled = false
}

func (s *ActionSet) Enabled() bool {
	return s.enabled
}

// Move returns the current axis value.
func (s *ActionSet) Move() cp.Vector {
	return s.move
}

// SetMove updates the axis and notifies move handlers when it changed.
func (s *ActionSet) SetMove(axis cp.Vector) {
	if !s.enabled || axis == s.move {
		return
	}
	s.move = axis
	for _, h := range s.snapshot(ActionMove) {
		h.axis(axis)
	}
}

// Press fires the edge handlers of a button action.
func (s *ActionSet) Press(a Action) {
	if !s.enabled || a == ActionMove || a < 0 || a >= actionCount {
		return
	}
	for _, h := range s.snapshot(a) {
		h.edge()
	}
}

// snapshot copies the handler list so handlers may release during dispatch.
func (s *ActionSet) snapshot(a Action) []handler {
	return append([]handler(nil), s.handlers[a]...)
}

func (s *ActionSet) BindMove(fn func(axis cp.Vector)) controller.Binding {
	return s.add(ActionMove, handler{axis: fn})
}

func (s *ActionSet) BindJump(fn func()) controller.Binding {
	return s.add(ActionJump, handler{edge: fn})
}

func (s *ActionSet) BindAttack(fn func()) controller.Binding {
	return s.add(ActionAttack, handler{edge: fn})
}

func (s *ActionSet) BindRoll(fn func()) controller.Binding {
	return s.add(ActionRoll, handler{edge: fn})
}

func (s *ActionSet) add(a Action, h handler) *Subscription {
	s.nextID++
	h.id = s.nextID
	s.handlers[a] = append(s.handlers[a], h)
	return &Subscription{set: s, action: a, id: h.id}
}

func (s *ActionSet) remove(a Action, id int) {
	hs := s.handlers[a]
	for i, h := range hs {
		if h.id == id {
			s.handlers[a] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Len reports how many handlers are bound to a.
func (s *ActionSet) Len(a Action) int {
	if a < 0 || a >= actionCount {
		return 0
	}
	return len(s.handlers[a])
}

// Subscription is the scoped handle returned by the Bind methods.
type Subscription struct {
	set      *ActionSet
	action   Action
	id       int
	released bool
}

// Release unbinds the handler. Further calls do nothing.
func (sub *Subscription) Release() {
	if sub == nil || sub.released {
		return
	}
	sub.released = true
	sub.set.remove(sub.action, sub.id)
}

func (sub *Subscription) Action() Action {
	return sub.action
}
