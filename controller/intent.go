package controller

import "github.com/jakecoffman/cp"

// InputSnapshot is the frame-stable intent consumed by one physics tick.
type InputSnapshot struct {
	MoveAxis   cp.Vector
	JumpEdge   bool
	AttackEdge bool
}

// Binding is a live input subscription. Release must be safe to call more
// than once.
type Binding interface {
	Release()
}

// Bindings is the input boundary the controller subscribes to on activation.
type Bindings interface {
	BindMove(fn func(axis cp.Vector)) Binding
	BindJump(fn func()) Binding
	BindAttack(fn func()) Binding
}

// IntentSampler turns input callbacks into a snapshot. Move is level-valued
// and last-write-wins; jump and attack are one-shot until consumed.
type IntentSampler struct {
	snap InputSnapshot
}

// OnMoveChanged stores the axis as given. Analog values above unit length
// pass through unclamped.
func (s *IntentSampler) OnMoveChanged(axis cp.Vector) {
	s.snap.MoveAxis = axis
}

func (s *IntentSampler) OnJumpEdge() {
	s.snap.JumpEdge = true
}

func (s *IntentSampler) OnAttackEdge() {
	s.snap.AttackEdge = true
}

// Peek returns the pending snapshot without consuming edges.
func (s *IntentSampler) Peek() InputSnapshot {
	return s.snap
}

// Consume returns the snapshot and clears the edge flags. The move axis is
// kept since it only changes on the next move callback.
func (s *IntentSampler) Consume() InputSnapshot {
	out := s.snap
	s.snap.JumpEdge = false
	s.snap.AttackEdge = false
	return out
}

func (s *IntentSampler) Reset() {
	s.snap = InputSnapshot{}
}
