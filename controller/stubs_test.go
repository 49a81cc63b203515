package controller

import "github.com/jakecoffman/cp"

type stubBody struct {
	vel   cp.Vector
	scale float64
	sets  int
}

func (b *stubBody) Velocity() cp.Vector           { return b.vel }
func (b *stubBody) SetVelocityVector(v cp.Vector) { b.vel = v; b.sets++ }
func (b *stubBody) GravityScale() float64         { return b.scale }
func (b *stubBody) SetGravityScale(s float64)     { b.scale = s }

// stubProbe answers ground casts (dir.Y < 0) and wall casts separately and
// records the last wall direction.
type stubProbe struct {
	ground bool
	wall   bool

	lastWallDir cp.Vector
	lastLength  float64
	lastMask    uint
	casts       int
}

func (p *stubProbe) Cast(origin, dir cp.Vector, length float64, mask uint) bool {
	p.casts++
	p.lastLength = length
	p.lastMask = mask
	if dir.Y < 0 {
		return p.ground
	}
	p.lastWallDir = dir
	return p.wall
}

type recordingSink struct {
	floats   map[Param]float64
	ints     map[Param]int
	bools    map[Param]bool
	triggers map[Param]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		floats:   map[Param]float64{},
		ints:     map[Param]int{},
		bools:    map[Param]bool{},
		triggers: map[Param]int{},
	}
}

func (s *recordingSink) SetFloat(p Param, v float64) { s.floats[p] = v }
func (s *recordingSink) SetInt(p Param, v int)       { s.ints[p] = v }
func (s *recordingSink) SetBool(p Param, v bool)     { s.bools[p] = v }
func (s *recordingSink) Trigger(p Param)             { s.triggers[p]++ }

type stubBinding struct {
	released *int
	done     bool
}

func (b *stubBinding) Release() {
	if b.done {
		return
	}
	b.done = true
	*b.released++
}

// stubBindings captures handlers so tests can fire input directly.
type stubBindings struct {
	move     []func(cp.Vector)
	jump     []func()
	attack   []func()
	released int
}

func (s *stubBindings) BindMove(fn func(cp.Vector)) Binding {
	s.move = append(s.move, fn)
	return &stubBinding{released: &s.released}
}

func (s *stubBindings) BindJump(fn func()) Binding {
	s.jump = append(s.jump, fn)
	return &stubBinding{released: &s.released}
}

func (s *stubBindings) BindAttack(fn func()) Binding {
	s.attack = append(s.attack, fn)
	return &stubBinding{released: &s.released}
}

func (s *stubBindings) fireMove(x, y float64) {
	for _, fn := range s.move {
		fn(cp.Vector{X: x, Y: y})
	}
}

func (s *stubBindings) fireJump() {
	for _, fn := range s.jump {
		fn()
	}
}

func (s *stubBindings) fireAttack() {
	for _, fn := range s.attack {
		fn()
	}
}

var origin = AnchorFunc(func() cp.Vector { return cp.Vector{} })
