// Package tui draws the flock in a terminal, one boid per cell.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

var background = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

// arrows by octant, counterclockwise from east
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

type Terminal struct {
	screen     tcell.Screen
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	last       *pb.FlockSnapshot
	cfg        *simulation.Config

	paused bool
	trails bool
	step   bool
}

// NewTerminal spawns the world actor on system. screen must already be initialised.
func NewTerminal(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, screen tcell.Screen) (*Terminal, error) {
	snapshotCh := make(chan *pb.FlockSnapshot, 10)
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return &Terminal{
		screen:     screen,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		last:       &pb.FlockSnapshot{},
		cfg:        cfg,
		trails:     cfg.TrajectoryLength > 0,
	}, nil
}

// Run ticks the world every cfg.Delay and redraws on each snapshot until
// the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.TicksPerSecond()))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if t.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.Draw()

		case snap := <-t.snapshotCh:
			t.last = snap
			t.Draw()

		case <-ticker.C:
			if t.last.GetHalted() {
				continue
			}
			if !t.paused || t.step {
				t.step = false
				if err := actor.Tell(ctx, t.worldPID, &pb.Tick{}); err != nil {
					return fmt.Errorf("failed to tick world: %w", err)
				}
			}
		}
	}
}

// handleKey applies a key press and reports whether the user asked to quit.
func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		t.step = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			t.paused = !t.paused
		case 't':
			t.trails = !t.trails
		case '.':
			t.step = true
		}
	}
	return false
}

// Draw renders the last snapshot, the bottom row being the status line.
func (t *Terminal) Draw() {
	t.screen.SetStyle(background)
	t.screen.Clear()
	w, h := t.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return
	}
	bound := t.last.GetBound()

	if t.trails {
		for _, b := range t.last.GetBoids() {
			trail := b.GetTrajectory()
			c := simulation.UnpackColor(b.GetColor())
			for i, p := range trail {
				x, y := project(simulation.VectorFromProto(p), bound, w, rows)
				style := background.Foreground(fade(c, float64(i+1)/float64(len(trail)+1)))
				t.screen.SetContent(x, y, '·', nil, style)
			}
		}
	}

	for _, b := range t.last.GetBoids() {
		x, y := project(simulation.VectorFromProto(b.GetPosition()), bound, w, rows)
		style := background.Foreground(fade(simulation.UnpackColor(b.GetColor()), 1))
		t.screen.SetContent(x, y, arrow(b.GetHeading()), nil, style)
	}

	state := "running"
	if t.paused {
		state = "paused"
	}
	t.print(0, h-1, fmt.Sprintf(" tick %d | %s | space pause  → step  t trails  q quit ", t.last.GetTick(), state),
		background.Reverse(true))
	if t.last.GetHalted() {
		t.print(0, rows/2, " HALTED: "+t.last.GetReason()+" ", background.Foreground(tcell.ColorRed).Bold(true))
	}
	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// project maps a world position onto a w x h grid of cells.
func project(p geometry.Vector2D, bound float64, w, h int) (int, int) {
	if bound <= 0 {
		return 0, 0
	}
	x := int(p.X / bound * float64(w-1))
	y := int(p.Y / bound * float64(h-1))
	return max(0, min(w-1, x)), max(0, min(h-1, y))
}

// arrow picks the glyph closest to heading.
func arrow(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// fade blends c towards the white background, strength 1 being c itself.
func fade(c color.RGBA, strength float64) tcell.Color {
	mix := func(v uint8) int32 {
		return int32(255 - (255-float64(v))*strength)
	}
	return tcell.NewRGBColor(mix(c.R), mix(c.G), mix(c.B))
}
