package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/controller"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	hudLineHeight       = 14
)

func drawPhysicsDebug(r *Renderer, w *ecs.World, screen *ebiten.Image) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	drawer := &physicsDebugDrawer{screen: screen, r: r}
	cp.DrawSpace(pw.Space(), drawer)

	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.ProbeAnchorsComponent.Kind(), component.PlayerComponent.Kind(),
		func(_ ecs.Entity, body *component.PhysicsBody, anchors *component.ProbeAnchors, p *component.Player) {
			if p.Controller == nil {
				return
			}
			length := p.Controller.Config().ProbeLength
			pos := body.Position()

			ground := pos.Add(anchors.Ground)
			drawer.drawLine(ground, ground.Add(cp.Vector{Y: -length}), probeColor(p.Last.Grounded))

			wall := anchors.Wall
			dir := 1.0
			if !p.Last.FacingRight {
				wall.X = -wall.X
				dir = -1
			}
			wall = pos.Add(wall)
			drawer.drawLine(wall, wall.Add(cp.Vector{X: dir * length}), probeColor(p.Last.Grabbing))
		})
}

func probeColor(hit bool) cp.FColor {
	if hit {
		return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 1}
	}
	return cp.FColor{R: 1, G: 0.9, B: 0.2, A: 1}
}

func drawHUD(w *ecs.World, screen *ebiten.Image) {
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	params, ok := ecs.Get(w, player, component.AnimatorParamsComponent.Kind())
	if !ok || p.Controller == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("tick %d", p.Ticks),
		fmt.Sprintf("vel (%.2f, %.2f)", p.Last.Velocity.X, p.Last.Velocity.Y),
		fmt.Sprintf("grounded %t  grabbing %t  facing right %t", p.Last.Grounded, p.Last.Grabbing, p.Last.FacingRight),
		fmt.Sprintf("combo hits %d  window %.2f", p.Controller.Combo().Hits(), p.Controller.Combo().Remaining()),
	}
	for i := controller.Param(0); i < controller.ParamCount; i++ {
		switch i {
		case controller.ParamMovementValue:
			lines = append(lines, fmt.Sprintf("%s %.2f", i, params.Float(i)))
		case controller.ParamActionID:
			lines = append(lines, fmt.Sprintf("%s %d (%s)", i, params.Int(i), controller.ActionID(params.Int(i))))
		case controller.ParamGrounded:
			lines = append(lines, fmt.Sprintf("%s %t", i, params.Bool(i)))
		}
	}
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("clip %s %.2fs", anim.Current, anim.Elapsed))
	}

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16+i*hudLineHeight, colornames.White)
	}
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	r      *Renderer
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / common.PixelsPerUnit
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.r.toScreen(a.X, a.Y)
	x2, y2 := d.r.toScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
