package controller

// ComboTimer implements the two-hit attack window. A second attack inside
// the window finishes the combo and resets immediately; letting the window
// run out drops back to the first hit.
type ComboTimer struct {
	Window float64

	hits  int
	timer float64
}

func NewComboTimer(window float64) *ComboTimer {
	return &ComboTimer{Window: window}
}

// OnAttackEdge registers one attack press and returns the action it plays.
func (c *ComboTimer) OnAttackEdge() ActionID {
	c.hits++
	if c.hits >= 2 {
		c.hits = 0
		c.timer = 0
		return ActionComboAttack
	}
	c.timer = c.Window
	return ActionLightAttack
}

func (c *ComboTimer) Tick(dt float64) {
	if c.timer <= 0 {
		return
	}
	c.timer -= dt
	if c.timer <= 0 {
		c.timer = 0
		c.hits = 0
	}
}

func (c *ComboTimer) Hits() int {
	return c.hits
}

func (c *ComboTimer) Remaining() float64 {
	return c.timer
}

func (c *ComboTimer) Reset() {
	c.hits = 0
	c.timer = 0
}
