package entity

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/levels"
	"golang.org/x/image/colornames"
)

var ErrNoPhysicsWorld = errors.New("entity: world has no physics world")

// LoadLevelToWorld adds the level bounds and one Solid entity per merged
// block of physics tiles.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	pw := world.PhysicsWorld()
	if pw == nil {
		return ErrNoPhysicsWorld
	}

	boundsEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(lvl.Width) * common.TileSize,
		Height: float64(lvl.Height) * common.TileSize,
	}); err != nil {
		return err
	}

	for _, s := range pw.AddLevel(lvl, component.CollisionLayer{Category: component.LayerGround}) {
		e := ecs.CreateEntity(world)
		solid := s
		if err := errors.Join(
			ecs.Add(world, e, component.SolidComponent.Kind(), &solid),
			ecs.Add(world, e, component.TintComponent.Kind(), &component.Tint{Color: colornames.Slategray}),
		); err != nil {
			return err
		}
	}
	return nil
}

// SpawnPoint converts the level's player tile into a body centre standing
// on the bottom of that tile.
func SpawnPoint(lvl *levels.Level, height float64) (cp.Vector, bool) {
	spawn, err := lvl.Spawn("player")
	if err != nil {
		return cp.Vector{}, false
	}
	return cp.Vector{
		X: (float64(spawn.X) + 0.5) * common.TileSize,
		Y: float64(lvl.Height-spawn.Y-1)*common.TileSize + height/2,
	}, true
}
