package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

// whiteImage is the texture source of every triangle, tinted per vertex
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	cfg        *simulation.Config

	// UI Controls
	panel         *ui.UIPanel
	stepRequested bool

	// Widget references for easy access
	widgetPause            *ui.Checkbox
	widgetTrajectories     *ui.Checkbox
	widgetGrouping         *ui.Slider
	widgetAverageDirection *ui.Slider
	widgetCollision        *ui.Slider
	widgetWalls            *ui.Slider
	widgetSmoothness       *ui.Slider

	// reused between frames
	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the world actor on system and builds the window around it.
func GetNewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	// 1. Create Channels for communication
	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn World Actor, it pushes a snapshot after every tick
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.FlockSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
	}

	// 3. Initialize UI Panel
	g.panel = ui.NewUIPanel("Smart boids (H hides)", 10, 10, 220, min(cfg.Limits-20, 420))

	g.panel.AddSection("Simulation")
	g.widgetPause = g.panel.AddCheckbox("Pause [Space]", false)
	g.panel.AddButton("Step [Right]", func() { g.stepRequested = true })
	g.widgetTrajectories = g.panel.AddCheckbox("Trajectories [T]", cfg.TrajectoryLength > 0)
	g.panel.EndSection()

	g.panel.AddSection("Behavior")
	g.widgetGrouping = g.panel.AddSlider("Grouping", 0, 3, cfg.GroupingParam)
	g.widgetAverageDirection = g.panel.AddSlider("Average direction", 0, 3, cfg.AverageDirectionParam)
	g.widgetCollision = g.panel.AddSlider("Collision", 0, 1, cfg.CollisionParam)
	g.widgetWalls = g.panel.AddSlider("Walls", 0, 1, cfg.WallsParam)
	g.widgetSmoothness = g.panel.AddSlider("Turns smoothness", 0, 0.99, cfg.TurnsSmoothness)
	g.panel.EndSection()

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Keyboard
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.widgetPause.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.widgetTrajectories.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.panel.Visible = !g.panel.Visible
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.stepRequested = true
	}

	// 2. Update UI Panel, forwarding tuned weights to the world
	g.panel.Update()
	if g.settingsChanged() {
		if err := actor.Tell(g.ctx, g.worldPID, &pb.UpdateSettings{
			GroupingParam:         g.widgetGrouping.Value,
			AverageDirectionParam: g.widgetAverageDirection.Value,
			CollisionParam:        g.widgetCollision.Value,
			WallsParam:            g.widgetWalls.Value,
			TurnsSmoothness:       g.widgetSmoothness.Value,
		}); err != nil {
			return fmt.Errorf("failed to update world settings: %w", err)
		}
	}

	// 3. Retrieve Latest State (Non-blocking) EARLY, so we can check Halted before ticking
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// A halted world stays frozen in its last state
	if g.lastState.GetHalted() {
		return nil
	}
	if !g.widgetPause.Value || g.stepRequested {
		g.stepRequested = false
		if err := actor.Tell(g.ctx, g.worldPID, &pb.Tick{}); err != nil {
			return fmt.Errorf("failed to tick world: %w", err)
		}
	}
	return nil
}

func (g *Game) settingsChanged() bool {
	for _, s := range []*ui.Slider{g.widgetGrouping, g.widgetAverageDirection, g.widgetCollision, g.widgetWalls, g.widgetSmoothness} {
		if s.Changed() {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.White)

	// 1. Trajectories under the boids
	if g.widgetTrajectories.Value {
		for _, b := range g.lastState.GetBoids() {
			drawTrajectory(screen, b)
		}
	}

	// 2. All boids in one batch
	g.drawBoids(screen)

	// 3. Draw UI Panel
	g.panel.Draw(screen)

	// 4. Stats
	state := "running"
	if g.widgetPause.Value {
		state = "paused"
	}
	msg := fmt.Sprintf("Tick: %d (%s)\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		g.lastState.GetTick(), state,
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	x := int(g.cfg.Limits) - 150
	vector.FillRect(screen, float32(x-5), 5, 150, 85, color.RGBA{R: 40, G: 40, B: 45, A: 180}, true)
	ebitenutil.DebugPrintAt(screen, msg, x, 10)

	// 5. Halt Overlay
	if g.lastState.GetHalted() {
		ebitenutil.DebugPrintAt(screen, "SIMULATION HALTED\n"+g.lastState.GetReason(),
			int(g.cfg.Limits/2-100), int(g.cfg.Limits/2))
	}
}

func (g *Game) drawBoids(screen *ebiten.Image) {
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, b := range g.lastState.GetBoids() {
		c := simulation.UnpackColor(b.GetColor())
		r, gr, bl, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
		base := uint16(len(g.vertices))
		for _, p := range glyph(simulation.VectorFromProto(b.GetPosition()), b.GetHeading(), g.cfg.DrawingSize) {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gr, ColorB: bl, ColorA: a,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2)

		// DrawTriangles takes at most 65536 vertices per call
		if len(g.vertices) >= 65535-3 {
			screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
			g.vertices = g.vertices[:0]
			g.indices = g.indices[:0]
		}
	}
	if len(g.vertices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}
}

// drawTrajectory draws the recorded path of b, fading out towards the oldest point
func drawTrajectory(screen *ebiten.Image, b *pb.BoidState) {
	trail := b.GetTrajectory()
	if len(trail) < 2 {
		return
	}
	c := simulation.UnpackColor(b.GetColor())
	for i := 1; i < len(trail); i++ {
		c.A = uint8(20 + 140*i/len(trail))
		// premultiplied alpha
		faded := color.RGBA{
			R: uint8(uint16(c.R) * uint16(c.A) / 255),
			G: uint8(uint16(c.G) * uint16(c.A) / 255),
			B: uint8(uint16(c.B) * uint16(c.A) / 255),
			A: c.A,
		}
		vector.StrokeLine(screen,
			float32(trail[i-1].GetX()), float32(trail[i-1].GetY()),
			float32(trail[i].GetX()), float32(trail[i].GetY()),
			1, faded, true)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.Limits), int(g.cfg.Limits) }
