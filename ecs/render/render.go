package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"golang.org/x/image/colornames"
)

// Renderer draws level solids and bodies as flat rectangles. The camera
// follows the player horizontally; the level floor sits on the bottom edge
// of the screen.
type Renderer struct {
	Debug bool

	camX float64
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{Debug: debug}
}

// toScreen maps a +Y up world point to screen pixels.
func (r *Renderer) toScreen(x, y float64) (float32, float32) {
	return float32(x*common.PixelsPerUnit - r.camX), float32(common.ScreenHeight - y*common.PixelsPerUnit)
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)
	r.follow(w)

	ecs.ForEach2(w, component.SolidComponent.Kind(), component.TintComponent.Kind(),
		func(_ ecs.Entity, s *component.Solid, tint *component.Tint) {
			x, y := r.toScreen(s.X, s.Y+s.H)
			vector.DrawFilledRect(screen, x, y, float32(s.W*common.PixelsPerUnit), float32(s.H*common.PixelsPerUnit), tint.Color, false)
		})

	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.TintComponent.Kind(), component.PlayerComponent.Kind(),
		func(e ecs.Entity, body *component.PhysicsBody, tint *component.Tint, p *component.Player) {
			pos := body.Position()
			x, y := r.toScreen(pos.X-body.Width/2, pos.Y+body.Height/2)
			bw := float32(body.Width * common.PixelsPerUnit)
			bh := float32(body.Height * common.PixelsPerUnit)

			c := tint.Color
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				c = clipColor(anim.Current, c)
			}
			vector.DrawFilledRect(screen, x, y, bw, bh, c, false)

			// facing marker
			eyeX := x + bw - 6
			if !p.Last.FacingRight {
				eyeX = x + 2
			}
			vector.DrawFilledRect(screen, eyeX, y+4, 4, 4, colornames.Black, false)
		})

	if r.Debug {
		drawPhysicsDebug(r, w, screen)
		drawHUD(w, screen)
	}
}

func (r *Renderer) follow(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	maxX := 0.0
	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind()); ok {
			maxX = bounds.Width*common.PixelsPerUnit - common.ScreenWidth
		}
	}
	r.camX = common.Clamp(tr.X*common.PixelsPerUnit-common.ScreenWidth/2, 0, max(maxX, 0))
}

func clipColor(clip component.AnimationClip, base color.Color) color.Color {
	switch clip {
	case component.ClipLightAttack:
		return colornames.Orange
	case component.ClipComboAttack:
		return colornames.Orangered
	case component.ClipLedgeGrab:
		return colornames.Skyblue
	case component.ClipJump:
		return colornames.Khaki
	}
	return base
}
