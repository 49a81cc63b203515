package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/warrior/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders, probes and the animator HUD")
	levelName := flag.String("level", "arena", "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "hot reload prefabs/*.yaml and prefabs/scripts/*.tengo")
	speedMode := flag.String("speed-mode", "", "MovementValue source: abs_x or magnitude")
	script := flag.String("script", "", "tengo script in prefabs/scripts that drives the player")
	flag.Parse()

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("warrior")
	ebiten.SetTPS(common.TPS)

	opts := GameOptions{
		Level:     *levelName,
		Script:    *script,
		SpeedMode: *speedMode,
		Debug:     *debug,
		Watch:     *watch,
	}
	if err := run(opts, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// run owns the game for its whole lifetime so Close runs on every exit path.
func run(opts GameOptions, loop func(ebiten.Game) error) error {
	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer game.Close()

	return loop(game)
}
