package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/warrior/common"
	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/entity"
	"github.com/milk9111/warrior/ecs/render"
	"github.com/milk9111/warrior/ecs/system"
	"github.com/milk9111/warrior/input"
	"github.com/milk9111/warrior/prefabs"
)

const stickDeadzone = 0.2

type GameOptions struct {
	Level     string
	Script    string
	SpeedMode string
	Debug     bool
	Watch     bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	watcher   *prefabs.Watcher
	actions   *input.ActionSet
	player    ecs.Entity
}

func NewGame(opts GameOptions) (*Game, error) {
	actions := input.NewActionSet()
	actions.Enable()

	var logger *log.Logger
	if opts.Debug {
		logger = log.Default()
	}

	world, player, err := entity.LoadScene(entity.SceneOptions{
		Level:     opts.Level,
		Script:    opts.Script,
		SpeedMode: opts.SpeedMode,
		Actions:   actions,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	var watcher *prefabs.Watcher
	if opts.Watch {
		dirs := []string{prefabs.DiskDir(), prefabs.DiskDir() + "/scripts"}
		if watcher, err = prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("watch: %v; hot reload disabled", err)
			watcher = nil
		}
	}

	g := &Game{
		world:    world,
		renderer: render.NewRenderer(opts.Debug),
		watcher:  watcher,
		actions:  actions,
		player:   player,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(readDevice),
		system.NewTuningSystem(watcher),
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(),
		system.NewAnimationSystem(),
	)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.Debug = !g.renderer.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		// F2 pauses input. Disable cancels a held move first.
		if g.actions.Enabled() {
			g.actions.Disable()
		} else {
			g.actions.Enable()
		}
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

// Close unsubscribes the player and stops the file watcher.
func (g *Game) Close() {
	entity.RemovePlayer(g.world, g.player)
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}

func readDevice() input.DeviceState {
	var d input.DeviceState

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		d.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		d.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		d.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		d.Move.Y -= 1
	}
	d.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	d.Attack = inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	d.Roll = inpututil.IsKeyJustPressed(ebiten.KeyK)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		stick := cp.Vector{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			// screen down is positive on the stick
			Y: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if math.Hypot(stick.X, stick.Y) > stickDeadzone {
			d.Move = stick
		}
		d.Jump = d.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		d.Attack = d.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		d.Roll = d.Roll || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return d
}
