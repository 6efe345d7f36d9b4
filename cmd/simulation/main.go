// Command simulation runs the flock without any window and optionally records
// every snapshot as size-delimited protobuf messages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

const askTimeout = 10 * time.Second

var errHalted = errors.New("simulation halted")

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, defaults are used when empty")
	ticks := flag.Int("ticks", 1000, "number of ticks to run")
	record := flag.String("record", "", "record snapshots into this file")
	every := flag.Int("every", 1, "record one snapshot every N ticks")
	debug := flag.Bool("debug", false, "enable debug logs")
	flag.Parse()

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	if err := run(logger, *configFile, *ticks, *record, max(1, *every)); err != nil {
		log.Fatal(err)
	}
}

func run(logger golog.Logger, configFile string, ticks int, record string, every int) error {
	cfg, err := simulation.LoadConfigOrDefault(configFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("BoidsHeadless", actor.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := system.Start(ctx); err != nil {
		return err
	}
	defer system.Stop(ctx)

	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(nil, cfg))
	if err != nil {
		return fmt.Errorf("failed to spawn world: %w", err)
	}

	var rec *simulation.Recorder
	if record != "" {
		if rec, err = simulation.CreateRecorder(record); err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Errorf("failed to close recording: %v", err)
			}
		}()
		snap, err := snapshot(ctx, worldPID)
		if err != nil {
			return err
		}
		if err := rec.Write(snap); err != nil {
			return err
		}
	}

	start := time.Now()
	for done := 0; done < ticks; {
		steps := ticks - done
		if rec != nil {
			steps = min(every, steps)
		}
		if err := actor.Tell(ctx, worldPID, &pb.Tick{Steps: uint32(steps)}); err != nil {
			return fmt.Errorf("failed to tick world: %w", err)
		}
		done += steps

		if rec == nil {
			continue
		}
		snap, err := snapshot(ctx, worldPID)
		if err != nil {
			return err
		}
		if err := rec.Write(snap); err != nil {
			return err
		}
		if snap.GetHalted() {
			break
		}
	}

	final, err := snapshot(ctx, worldPID)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Infof("Ran %d ticks of %d boids in %s", final.GetTick(), len(final.GetBoids()), elapsed)
	if rec != nil {
		logger.Infof("Recorded %d frames into %s", rec.Frames(), record)
	}
	if final.GetHalted() {
		return fmt.Errorf("%w at tick %d: %s", errHalted, final.GetTick(), final.GetReason())
	}
	return nil
}

func snapshot(ctx context.Context, worldPID *actor.PID) (*pb.FlockSnapshot, error) {
	reply, err := actor.Ask(ctx, worldPID, &pb.GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snap, ok := reply.(*pb.FlockSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected reply %T to GetSnapshot", reply)
	}
	return snap, nil
}
