package system

import (
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
)

// TraceSystem writes one line per player per tick: body state, the chosen
// clip and any events raised for that player.
type TraceSystem struct {
	out  io.Writer
	tick int
}

func NewTraceSystem(out io.Writer) *TraceSystem {
	return &TraceSystem{out: out}
}

func (t *TraceSystem) Update(w *ecs.World) {
	if t.out == nil || w == nil {
		return
	}
	events := w.Events().Peek()
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.AnimationComponent.Kind(),
		func(e ecs.Entity, p *component.Player, body *component.PhysicsBody, anim *component.Animation) {
			pos, vel := body.Position(), body.Velocity()
			var b strings.Builder
			fmt.Fprintf(&b, "%5d pos=(%6.2f,%6.2f) vel=(%6.2f,%6.2f) grounded=%-5t grab=%-5t right=%-5t clip=%s",
				t.tick, pos.X, pos.Y, vel.X, vel.Y, p.Last.Grounded, p.Last.Grabbing, p.Last.FacingRight, anim.Current)
			for _, ev := range events {
				if ev.Entity == e {
					fmt.Fprintf(&b, " %s=%v", ev.Kind, ev.Data)
				}
			}
			b.WriteByte('\n')
			_, _ = io.WriteString(t.out, b.String())
		})
	t.tick++
}
