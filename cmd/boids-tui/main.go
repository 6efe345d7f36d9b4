package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/tui"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, defaults are used when empty")
	logFile := flag.String("log", "", "write logs to this file, the terminal is busy drawing the flock")
	flag.Parse()

	if err := run(*configFile, *logFile); err != nil {
		log.Fatal(err)
	}
}

func run(configFile, logFile string) error {
	cfg, err := simulation.LoadConfigOrDefault(configFile)
	if err != nil {
		return err
	}

	var logger golog.Logger = golog.DiscardLogger
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = golog.New(golog.InfoLevel, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	system, err := actor.NewActorSystem("BoidsTerminal", actor.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := system.Start(ctx); err != nil {
		return err
	}
	defer system.Stop(context.Background())

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term, err := tui.NewTerminal(ctx, cfg, system, screen)
	if err != nil {
		return err
	}
	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
