package controller

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestIntentSampler(t *testing.T) {
	var s IntentSampler

	s.OnMoveChanged(cp.Vector{X: 0.5})
	s.OnMoveChanged(cp.Vector{X: 2, Y: -1})
	s.OnJumpEdge()
	s.OnJumpEdge()
	s.OnAttackEdge()

	if p := s.Peek(); !p.JumpEdge || !p.AttackEdge {
		t.Fatalf("Peek = %+v, want both edges pending", p)
	}

	got := s.Consume()
	if got.MoveAxis != (cp.Vector{X: 2, Y: -1}) {
		t.Fatalf("MoveAxis = %v, want last write unclamped", got.MoveAxis)
	}
	if !got.JumpEdge || !got.AttackEdge {
		t.Fatalf("first Consume = %+v, want both edges", got)
	}

	got = s.Consume()
	if got.JumpEdge || got.AttackEdge {
		t.Fatalf("edges survived Consume: %+v", got)
	}
	if got.MoveAxis.X != 2 {
		t.Fatalf("move axis cleared by Consume: %v", got.MoveAxis)
	}

	s.OnJumpEdge()
	s.Reset()
	if got := s.Consume(); got != (InputSnapshot{}) {
		t.Fatalf("after Reset = %+v", got)
	}
}
