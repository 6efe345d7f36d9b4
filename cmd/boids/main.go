package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/render"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, defaults are used when empty")
	debug := flag.Bool("debug", false, "enable debug logs")
	flag.Parse()

	cfg, err := simulation.LoadConfigOrDefault(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	ctx := context.Background()
	system, err := actor.NewActorSystem("BoidsWorld", actor.WithLogger(golog.New(level, os.Stdout)))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := render.GetNewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.Limits), int(cfg.Limits))
	ebiten.SetWindowTitle("Smart boids")
	ebiten.SetTPS(cfg.TicksPerSecond())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
