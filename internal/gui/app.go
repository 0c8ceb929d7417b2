package gui

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/driftdev/logodrift/internal/config"
	"github.com/driftdev/logodrift/internal/metrics"
	"github.com/driftdev/logodrift/internal/motion"
	"github.com/driftdev/logodrift/internal/sprite"
)

const (
	windowW  = 1280
	windowH  = 720
	fontSize = 48
	lineGap  = 4
	// Same stall guard as the terminal renderer.
	maxFrameDt = 0.25
)

var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colLogo    = rl.NewColor(180, 180, 180, 255)
	colGlow    = rl.NewColor(255, 255, 160, 255)
	colTrail   = rl.NewColor(50, 50, 50, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

// App is the windowed, pixel-surface variant of the screensaver. It runs
// the same integrator as the terminal renderer against a bounding region
// measured in pixels.
type App struct {
	cfg  *config.Config
	logo sprite.Sprite

	state   motion.State
	bounds  motion.Bounds
	spriteW float64
	spriteH float64

	running  bool
	overlay  bool
	quit     bool
	dragging bool
	dragX    float64
	dragY    float64
	dragT    time.Time

	glow    *gween.Tween
	glowVal float32

	trail []rl.Vector2

	bounces *metrics.Bounces
	corners *metrics.Corners

	rng *rand.Rand
}

// Run opens the window and drives the screensaver until it is closed.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logo, err := sprite.Resolve(cfg.Logo)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := &App{
		cfg:     cfg,
		logo:    logo,
		running: true,
		overlay: cfg.Overlay,
		trail:   make([]rl.Vector2, 0, cfg.Trail),
		bounces: metrics.NewBounces(),
		corners: metrics.NewCorners(),
		rng:     rand.New(rand.NewSource(seed)),
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowW, windowH, "logodrift")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	app.measureSprite()
	app.resize()
	app.center()
	app.state.VX, app.state.VY = motion.FromPolar(app.heading(), cfg.Speed*pixelsPerCell)

	for !rl.WindowShouldClose() && !app.quit {
		app.input()
		app.update()
		app.draw()
	}
	return nil
}

// pixelsPerCell scales the shared cells-per-second config speed into a
// comparable pixel speed.
const pixelsPerCell = 16.0

func (a *App) heading() float64 {
	if a.cfg.Heading < 0 {
		return a.rng.Float64() * 2 * math.Pi
	}
	return a.cfg.Heading * math.Pi / 180
}

func (a *App) measureSprite() {
	lines := a.logo.Lines()
	maxW := int32(0)
	for _, line := range lines {
		if w := rl.MeasureText(line, fontSize); w > maxW {
			maxW = w
		}
	}
	a.spriteW = float64(maxW)
	a.spriteH = float64(len(lines) * (fontSize + lineGap))
}

// resize recomputes the bounding region from the live window size and
// clamps the sprite back in. Called once at startup and again whenever
// raylib reports a resize.
func (a *App) resize() {
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	a.bounds = motion.BoundsFor(w, h, a.spriteW, a.spriteH)
	a.state = a.bounds.Clamp(a.state)
}

func (a *App) center() {
	a.state.X = (a.bounds.Left + a.bounds.Right) / 2
	a.state.Y = (a.bounds.Top + a.bounds.Bottom) / 2
}

func (a *App) reset() {
	a.center()
	a.state.VX, a.state.VY = motion.FromPolar(a.heading(), a.cfg.Speed*pixelsPerCell)
	a.trail = a.trail[:0]
	a.bounces.Reset()
	a.corners.Reset()
	a.glow = nil
	a.glowVal = 0
}

func (a *App) input() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.running = !a.running
	case rl.IsKeyPressed(rl.KeyR):
		a.reset()
	case rl.IsKeyPressed(rl.KeyD):
		a.overlay = !a.overlay
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
	}

	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.hitSprite(mx, my) {
		a.dragging = true
		a.dragX, a.dragY = a.state.X, a.state.Y
		a.dragT = time.Now()
	}
	if a.dragging {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			a.state.X, a.state.Y = mx, my
			a.state = a.bounds.Clamp(a.state)
		} else {
			a.dragging = false
			a.throw()
		}
	}
}

func (a *App) hitSprite(x, y float64) bool {
	return math.Abs(x-a.state.X) <= a.spriteW/2 && math.Abs(y-a.state.Y) <= a.spriteH/2
}

func (a *App) throw() {
	dt := time.Since(a.dragT).Seconds()
	if dt > 1e-3 {
		vx := (a.state.X - a.dragX) / dt
		vy := (a.state.Y - a.dragY) / dt
		if math.Hypot(vx, vy) > pixelsPerCell {
			a.state.VX, a.state.VY = vx, vy
			return
		}
	}
	speed := a.state.Speed()
	if speed == 0 {
		speed = a.cfg.Speed * pixelsPerCell
	}
	a.state.VX, a.state.VY = motion.FromPolar(a.rng.Float64()*2*math.Pi, speed)
}

func (a *App) update() {
	if rl.IsWindowResized() {
		a.resize()
	}

	dt := float64(rl.GetFrameTime())
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	if a.glow != nil {
		val, done := a.glow.Update(float32(dt))
		a.glowVal = val
		if done {
			a.glow = nil
			a.glowVal = 0
		}
	}

	if !a.running || a.dragging {
		return
	}

	prev := rl.NewVector2(float32(a.state.X), float32(a.state.Y))

	var ev motion.Events
	a.state, ev = motion.Step(a.state, a.bounds, dt)

	a.bounces.Observe(a.state, ev, dt)
	a.corners.Observe(a.state, ev, dt)

	if ev.Corner() && a.cfg.Glow.Enabled {
		a.glow = gween.New(1, 0, float32(a.cfg.Glow.Duration), ease.OutQuad)
		a.glowVal = 1
	}

	if a.cfg.Trail > 0 {
		a.trail = append(a.trail, prev)
		if len(a.trail) > a.cfg.Trail {
			a.trail = a.trail[1:]
		}
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	for i, p := range a.trail {
		alpha := float32(i+1) / float32(len(a.trail)+1)
		rl.DrawCircleV(p, 3, rl.Fade(colTrail, alpha))
	}

	a.drawLogo()

	if a.overlay {
		a.drawOverlay()
	}
	if !a.running {
		rl.DrawText("PAUSED", 20, int32(rl.GetScreenHeight())-40, 20, colText)
	}

	rl.EndDrawing()
}

func (a *App) drawLogo() {
	color := lerpColor(colLogo, colGlow, a.glowVal)

	// Corner glow halo behind the text while the tween is alive.
	if a.glowVal > 0 {
		center := rl.NewVector2(float32(a.state.X), float32(a.state.Y))
		radius := float32(a.spriteW/2) * (1.2 + a.glowVal)
		rl.DrawCircleV(center, radius, rl.Fade(colGlow, a.glowVal*0.25))
	}

	lines := a.logo.Lines()
	top := a.state.Y - a.spriteH/2
	for i, line := range lines {
		w := rl.MeasureText(line, fontSize)
		x := int32(a.state.X) - w/2
		y := int32(top) + int32(i*(fontSize+lineGap))
		rl.DrawText(line, x, y, fontSize, color)
	}
}

func (a *App) drawOverlay() {
	lines := []string{
		fmt.Sprintf("pos     %.0f, %.0f", a.state.X, a.state.Y),
		fmt.Sprintf("vel     %.0f, %.0f px/s", a.state.VX, a.state.VY),
		fmt.Sprintf("heading %.0f deg", a.state.Heading()*180/math.Pi),
		fmt.Sprintf("bounds  %.0fx%.0f", a.bounds.Width(), a.bounds.Height()),
		fmt.Sprintf("fps     %d", rl.GetFPS()),
		fmt.Sprintf("bounces %.0f", a.bounces.Value()),
		fmt.Sprintf("corners %.0f", a.corners.Value()),
	}
	for i, line := range lines {
		rl.DrawText(line, 20, int32(20+i*24), 20, colText)
	}
	rl.DrawText("space pause  r reset  d overlay  q quit", 20, int32(20+len(lines)*24+8), 16, colTextDim)
}

func lerpColor(from, to rl.Color, t float32) rl.Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + t*(float32(b)-float32(a)))
	}
	return rl.NewColor(lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B), 255)
}
