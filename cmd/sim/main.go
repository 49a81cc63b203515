// Command sim runs the character controller without a window. A tengo
// script drives the player and every tick is traced to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/warrior/ecs"
	"github.com/milk9111/warrior/ecs/component"
	"github.com/milk9111/warrior/ecs/entity"
	"github.com/milk9111/warrior/ecs/system"
)

func main() {
	levelName := flag.String("level", "arena", "level name in levels/")
	script := flag.String("script", "ledge_demo", "tengo script in prefabs/scripts")
	ticks := flag.Int("ticks", 240, "number of fixed ticks to simulate")
	speedMode := flag.String("speed-mode", "", "MovementValue source: abs_x or magnitude")
	quiet := flag.Bool("quiet", false, "print only the final summary")
	verbose := flag.Bool("v", false, "log controller transitions to stderr")
	flag.Parse()

	if err := run(*levelName, *script, *speedMode, *ticks, *quiet, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(levelName, script, speedMode string, ticks int, quiet, verbose bool) error {
	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	w, player, err := entity.LoadScene(entity.SceneOptions{
		Level:     levelName,
		Script:    script,
		SpeedMode: speedMode,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer entity.RemovePlayer(w, player)

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}

	s := ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(),
		system.NewAnimationSystem(),
		system.NewTraceSystem(out),
	)
	for i := 0; i < ticks; i++ {
		s.Update(w)
	}

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("sim: player vanished")
	}
	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	pos := body.Position()
	fmt.Printf("after %d ticks: pos=(%.2f,%.2f) grounded=%t grabbing=%t combo hits=%d\n",
		p.Ticks, pos.X, pos.Y, p.Last.Grounded, p.Last.Grabbing, p.Controller.Combo().Hits())
	return nil
}
