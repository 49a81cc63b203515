package controller

import "testing"

func TestComboTimerSingleHit(t *testing.T) {
	c := NewComboTimer(0.25)
	if got := c.OnAttackEdge(); got != ActionLightAttack {
		t.Fatalf("first hit = %v, want %v", got, ActionLightAttack)
	}
	if c.Hits() != 1 || c.Remaining() != 0.25 {
		t.Fatalf("after first hit: hits=%d timer=%v", c.Hits(), c.Remaining())
	}
}

func TestComboTimerSecondHitInWindow(t *testing.T) {
	c := NewComboTimer(0.25)
	c.OnAttackEdge()
	c.Tick(0.1)

	combos := 0
	if c.OnAttackEdge() == ActionComboAttack {
		combos++
	}
	if combos != 1 {
		t.Fatalf("expected one combo, got %d", combos)
	}
	if c.Hits() != 0 || c.Remaining() != 0 {
		t.Fatalf("combo must reset: hits=%d timer=%v", c.Hits(), c.Remaining())
	}
}

func TestComboTimerWindowExpires(t *testing.T) {
	c := NewComboTimer(0.25)
	c.OnAttackEdge()
	for i := 0; i < 13; i++ {
		c.Tick(0.02)
	}
	if c.Hits() != 0 {
		t.Fatalf("hits = %d after window expired, want 0", c.Hits())
	}
	if c.Remaining() != 0 {
		t.Fatalf("timer = %v, want 0", c.Remaining())
	}
	if got := c.OnAttackEdge(); got != ActionLightAttack {
		t.Fatalf("attack after expiry = %v, want restart at %v", got, ActionLightAttack)
	}
}

func TestComboTimerTickIdle(t *testing.T) {
	c := NewComboTimer(0.25)
	c.Tick(1)
	if c.Hits() != 0 || c.Remaining() != 0 {
		t.Fatalf("idle tick changed state: hits=%d timer=%v", c.Hits(), c.Remaining())
	}
}

func TestComboTimerAlternates(t *testing.T) {
	c := NewComboTimer(0.25)
	want := []ActionID{ActionLightAttack, ActionComboAttack, ActionLightAttack, ActionComboAttack}
	for i, w := range want {
		if got := c.OnAttackEdge(); got != w {
			t.Fatalf("hit %d = %v, want %v", i, got, w)
		}
		if c.Hits() > 1 {
			t.Fatalf("hit count %d must never hold at 2", c.Hits())
		}
	}
}
