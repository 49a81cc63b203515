package controller

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
)

// Deps are the collaborators a controller is built around. Everything but
// Logger is required.
type Deps struct {
	Body        Body
	Sink        ParamSink
	Probe       Probe
	GroundCheck Anchor
	WallCheck   Anchor
	Logger      *log.Logger
}

func (d Deps) validate() error {
	switch {
	case d.Body == nil:
		return ErrNilBody
	case d.Sink == nil:
		return ErrNilSink
	case d.Probe == nil:
		return ErrNilProbe
	case d.GroundCheck == nil:
		return fmt.Errorf("%w: ground check", ErrNilAnchor)
	case d.WallCheck == nil:
		return fmt.Errorf("%w: wall check", ErrNilAnchor)
	}
	return nil
}

// TickReport summarizes one FixedUpdate.
type TickReport struct {
	Velocity    cp.Vector
	Grounded    bool
	Grabbing    bool
	FacingRight bool
	Ledge       LedgeEvent
	// Action is the last action started this tick, ActionNone if there was
	// none. An attack on a jump tick wins; Jumped still records the jump.
	Action ActionID
	Jumped bool
}

// Controller sequences the movement, combo, ledge-grab and animation pieces
// for one character. Input callbacks and FixedUpdate run on the same
// goroutine; nothing here is safe for concurrent use.
type Controller struct {
	cfg  Config
	body Body
	log  *log.Logger

	intent   IntentSampler
	facing   FacingTracker
	combo    *ComboTimer
	ledge    *LedgeGrabDetector
	movement MovementResolver
	anim     *AnimationProjector

	bindings []Binding
	active   bool
}

// New validates deps and cfg and returns an inactive controller.
func New(deps Deps, cfg Config) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		body:  deps.Body,
		log:   deps.Logger,
		combo: NewComboTimer(cfg.ComboWindow),
		ledge: NewLedgeGrabDetector(deps.Probe, deps.GroundCheck, deps.WallCheck, cfg),
		anim:  NewAnimationProjector(deps.Sink, cfg.SpeedMode),
	}
	c.applyConfig(cfg)
	return c, nil
}

// Activate subscribes to the input boundary. The handles are released by
// Deactivate.
func (c *Controller) Activate(b Bindings) error {
	if b == nil {
		return ErrNilBindings
	}
	if c.active {
		return ErrActive
	}

	c.bindings = append(c.bindings[:0],
		b.BindMove(c.onMove),
		b.BindJump(c.onJump),
		b.BindAttack(c.onAttack),
	)
	c.body.SetGravityScale(c.cfg.GravityScale)
	c.active = true
	c.logf("activated")
	return nil
}

// Deactivate releases every input subscription and resets owned state.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	for _, b := range c.bindings {
		if b != nil {
			b.Release()
		}
	}
	c.bindings = c.bindings[:0]

	if c.ledge.Grabbing() {
		c.body.SetGravityScale(c.cfg.GravityScale)
	}
	c.intent.Reset()
	c.facing.Reset()
	c.combo.Reset()
	c.ledge.Reset()
	c.active = false
	c.logf("deactivated")
}

func (c *Controller) onMove(axis cp.Vector) {
	if !c.active {
		return
	}
	c.intent.OnMoveChanged(axis)
	c.facing.Update(axis.X)
}

func (c *Controller) onJump() {
	if !c.active {
		return
	}
	c.intent.OnJumpEdge()
}

func (c *Controller) onAttack() {
	if !c.active {
		return
	}
	c.intent.OnAttackEdge()
}

// FixedUpdate runs one physics step of controller logic. Inactive
// controllers do nothing.
func (c *Controller) FixedUpdate(dt float64) TickReport {
	if !c.active {
		return TickReport{}
	}

	var report TickReport
	in := c.intent.Consume()

	// Grounded is the previous tick's ground probe.
	vel, jumped := c.movement.Resolve(in, c.ledge.Grabbing(), c.ledge.Grounded(), c.body.Velocity())
	c.body.SetVelocityVector(vel)
	if jumped {
		c.anim.Action(ActionJump)
		report.Action = ActionJump
		report.Jumped = true
	}

	report.Ledge = c.ledge.Update(c.body, c.facing.Direction(), in.MoveAxis.Y)
	switch report.Ledge {
	case LedgeEntered:
		c.logf("ledge grab")
	case LedgeReleased, LedgeTouched:
		c.logf("ledge release (move y=%.2f)", in.MoveAxis.Y)
	}

	c.combo.Tick(dt)
	if in.AttackEdge {
		id := c.combo.OnAttackEdge()
		c.anim.Action(id)
		report.Action = id
	}

	report.Velocity = c.body.Velocity()
	report.Grounded = c.ledge.Grounded()
	report.Grabbing = c.ledge.Grabbing()
	report.FacingRight = c.facing.FacingRight()
	// A grab released in the tick it latched still shows the ledge action.
	c.anim.Project(report.Velocity, report.Grounded, report.Grabbing || report.Ledge == LedgeTouched)
	return report
}

// SetConfig replaces the tuning. It is meant for external tools such as the
// hot-reload watcher; the controller itself never changes its config.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.applyConfig(cfg)
	if c.active && !c.ledge.Grabbing() {
		c.body.SetGravityScale(cfg.GravityScale)
	}
	return nil
}

func (c *Controller) applyConfig(cfg Config) {
	c.cfg = cfg
	c.movement = MovementResolver{WalkingSpeed: cfg.WalkingSpeed, JumpSpeed: cfg.JumpSpeed}
	c.combo.Window = cfg.ComboWindow
	c.ledge.Length = cfg.ProbeLength
	c.ledge.Mask = cfg.GroundMask
	c.ledge.GravityScale = cfg.GravityScale
	c.anim.Mode = cfg.SpeedMode
}

func (c *Controller) Config() Config        { return c.cfg }
func (c *Controller) Active() bool          { return c.active }
func (c *Controller) FacingRight() bool     { return c.facing.FacingRight() }
func (c *Controller) Grabbing() bool        { return c.ledge.Grabbing() }
func (c *Controller) Grounded() bool        { return c.ledge.Grounded() }
func (c *Controller) Combo() *ComboTimer    { return c.combo }
func (c *Controller) Intent() InputSnapshot { return c.intent.Peek() }

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Printf("controller: "+format, args...)
}
