package input

import (
	"testing"

	"github.com/jakecoffman/cp"
)

const walkThenJump = `
if tick < 2 {
	move_x = 1
} else {
	move_x = 0
}
if tick == 1 && grounded {
	jump = true
}
if tick == 3 {
	attack = true
}
`

func TestScriptDriverStep(t *testing.T) {
	d, err := NewScriptDriver("walk", []byte(walkThenJump))
	if err != nil {
		t.Fatalf("NewScriptDriver: %v", err)
	}

	s := NewActionSet()
	s.Enable()
	jumps, attacks := 0, 0
	var moves []cp.Vector
	s.BindMove(func(v cp.Vector) { moves = append(moves, v) })
	s.BindJump(func() { jumps++ })
	s.BindAttack(func() { attacks++ })

	for tick := 0; tick < 5; tick++ {
		obs := Observation{Tick: tick, Time: float64(tick) / 60, Grounded: true, FacingRight: true}
		if err := d.Step(obs, s); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
	}

	if len(moves) != 2 || moves[0].X != 1 || moves[1].X != 0 {
		t.Fatalf("moves = %v", moves)
	}
	if jumps != 1 || attacks != 1 {
		t.Fatalf("jumps=%d attacks=%d, want 1 each", jumps, attacks)
	}
}

func TestScriptDriverCompileError(t *testing.T) {
	if _, err := NewScriptDriver("broken", []byte("move_x = (")); err == nil {
		t.Fatal("expected compile error")
	}
}
