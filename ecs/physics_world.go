package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/levels"
)

// PhysicsWorld owns the Chipmunk space and static collision shapes. It also
// answers the controller's ray probes.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*component.PhysicsBody
	solids int
}

// NewPhysicsWorld creates an empty space with +Y up gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -common.Gravity})
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*component.PhysicsBody),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func layerFilter(layer component.CollisionLayer) cp.ShapeFilter {
	category := uint(layer.Category)
	if category == 0 {
		category = uint(component.LayerGround)
	}
	mask := uint(layer.Mask)
	if mask == 0 {
		mask = ^uint(0)
	}
	return cp.ShapeFilter{Categories: category, Mask: mask}
}

// AddSolid adds a static box with its bottom-left corner at (x, y).
func (pw *PhysicsWorld) AddSolid(x, y, w, h float64, layer component.CollisionLayer) *cp.Shape {
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(layerFilter(layer))
	pw.space.AddShape(shape)
	pw.solids++
	return shape
}

// AddLevel builds static shapes for every physics layer of lvl. Runs of
// solid tiles are merged into as few boxes as possible. Row 0 of the level
// is the top row.
func (pw *PhysicsWorld) AddLevel(lvl *levels.Level, layer component.CollisionLayer) []component.Solid {
	if pw == nil || lvl == nil {
		return nil
	}
	var solids []component.Solid
	for i, tiles := range lvl.Layers {
		if len(tiles) != lvl.Width*lvl.Height {
			log.Printf("physics: layer %d has %d tiles, want %d", i, len(tiles), lvl.Width*lvl.Height)
			continue
		}
		if i < len(lvl.LayerMeta) && !lvl.LayerMeta[i].Physics {
			continue
		}
		solids = append(solids, pw.processLayerTiles(lvl, tiles, layer)...)
	}
	return solids
}

func (pw *PhysicsWorld) processLayerTiles(lvl *levels.Level, layer []int, filter component.CollisionLayer) []component.Solid {
	var out []component.Solid
	processed := make([]bool, lvl.Width*lvl.Height)
	solid := func(idx int) bool { return !processed[idx] && layer[idx] != 0 }

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if !solid(idx) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < lvl.Width && solid(y*lvl.Width+x+w) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					if !solid((y+h)*lvl.Width + xi) {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}

			s := component.Solid{
				X: float64(x) * common.TileSize,
				Y: float64(lvl.Height-y-h) * common.TileSize,
				W: float64(w) * common.TileSize,
				H: float64(h) * common.TileSize,
			}
			pw.AddSolid(s.X, s.Y, s.W, s.H, filter)
			out = append(out, s)
		}
	}
	return out
}

// AddDynamicBody creates a non-rotating box body centred at (x, y). World
// gravity is multiplied by gravity.Scale on every step.
func (pw *PhysicsWorld) AddDynamicBody(e Entity, x, y, w, h float64, layer component.CollisionLayer, gravity *component.GravityScale) *component.PhysicsBody {
	if gravity == nil {
		gravity = &component.GravityScale{Scale: 1}
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0)
	shape.SetFilter(layerFilter(layer))

	pb := &component.PhysicsBody{Body: body, Shape: shape, Width: w, Height: h, Gravity: gravity}
	body.SetVelocityUpdateFunc(func(b *cp.Body, g cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, g.Mult(pb.GravityScale()), damping, dt)
	})

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = pb
	return pb
}

// RemoveBody drops the body created for e.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	pb, ok := pw.bodies[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(pb.Shape)
	pw.space.RemoveBody(pb.Body)
	delete(pw.bodies, e)
}

// Cast reports whether a segment from origin along dir for length hits a
// shape whose category is in mask.
func (pw *PhysicsWorld) Cast(origin, dir cp.Vector, length float64, mask uint) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	end := origin.Add(dir.Mult(length))
	filter := cp.ShapeFilter{Categories: ^uint(0), Mask: mask}
	info := pw.space.SegmentQueryFirst(origin, end, 0, filter)
	return info.Shape != nil
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}
