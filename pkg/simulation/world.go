package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the flock. Every message is processed one at a time by the
// actor system, so the flock never needs a lock.
type WorldActor struct {
	flock *Flock
	cfg   *Config
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	// --- Benchmark Stats ---
	tickCount   int
	stepTime    time.Duration
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit. snapshotCh may be nil when nobody renders the flock.
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	flock, err := NewFlock(w.cfg)
	if err != nil {
		return err
	}
	w.flock = flock
	ctx.ActorSystem().Logger().Infof("World placed %d boids in a %gx%g square", len(flock.Boids()), w.cfg.Limits, w.cfg.Limits)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started with %d workers", w.cfg.Workers)
		w.pushSnapshot()

	// The Main Simulation Step (Driven by the renderer or the headless runner)
	case *pb.Tick:
		if w.flock.Err() != nil {
			// halted: the last state stays frozen
			return
		}
		steps := max(1, int(msg.GetSteps()))
		start := time.Now()
		for i := 0; i < steps; i++ {
			if err := w.flock.Step(); err != nil {
				ctx.Logger().Errorf("World halted: %v", err)
				break
			}
			w.tickCount++
		}
		w.stepTime += time.Since(start)
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.flock.ToProto())

	case *pb.UpdateSettings:
		if err := w.flock.Tune(SettingsFromProto(w.flock.Settings(), msg)); err != nil {
			ctx.Logger().Warnf("Ignoring settings update: %v", err)
			return
		}
		ctx.Logger().Debugf("Settings updated: %+v", w.flock.Settings())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		var avg time.Duration
		if w.tickCount > 0 {
			avg = w.stepTime / time.Duration(w.tickCount)
		}
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (avg step %s) | Tick: %d | Boids: %d",
			w.tickCount, avg, w.flock.Tick(), len(w.flock.Boids()))
		w.tickCount = 0
		w.stepTime = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.flock.ToProto():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown at tick %d", w.flock.Tick())
	return nil
}
