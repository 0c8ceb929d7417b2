package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/driftdev/logodrift/internal/config"
	"github.com/driftdev/logodrift/internal/metrics"
	"github.com/driftdev/logodrift/internal/motion"
	"github.com/driftdev/logodrift/internal/sprite"
)

const (
	historyCapacity = 120
	flashDuration   = 0.25
	// Cap the per-frame dt so a stalled terminal cannot hand the
	// integrator hours of elapsed time in one tick.
	maxFrameDt = 0.25
)

type TickMsg time.Time

type cell struct{ x, y int }

type dragSample struct {
	x, y float64
	t    time.Time
}

// Model is the Bubble Tea screensaver. One tick per frame steps the
// integrator; resize and mouse input arrive as messages between ticks,
// so bounds are always recomputed before the next step.
type Model struct {
	cfg   *config.Config
	logo  sprite.Sprite
	theme Theme

	state   motion.State
	bounds  motion.Bounds
	spriteW int
	spriteH int

	width, height int
	ready         bool

	running  bool
	dragging bool
	dragBuf  []dragSample

	glow    *gween.Tween
	glowVal float32
	flash   motion.Events
	flashT  float64

	trail []cell
	xHist []float64

	bounces *metrics.Bounces
	corners *metrics.Corners

	overlay  bool
	lastTick time.Time
	frameDt  float64

	frames    int
	fps       float64
	fpsWindow time.Time

	rng *rand.Rand
}

// NewModel builds the screensaver from a validated config.
func NewModel(cfg *config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	logo, err := sprite.Resolve(cfg.Logo)
	if err != nil {
		return Model{}, err
	}
	w, h := logo.Size()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:     cfg,
		logo:    logo,
		theme:   ThemeByName(cfg.Theme),
		spriteW: w,
		spriteH: h,
		running: true,
		overlay: cfg.Overlay,
		trail:   make([]cell, 0, cfg.Trail),
		xHist:   make([]float64, 0, historyCapacity),
		bounces: metrics.NewBounces(),
		corners: metrics.NewCorners(),
		rng:     rand.New(rand.NewSource(seed)),
	}
	m.state.VX, m.state.VY = motion.FromPolar(m.heading(), cfg.Speed)
	return m, nil
}

// heading returns the configured launch angle in radians, random when
// the config asks for one.
func (m *Model) heading() float64 {
	if m.cfg.Heading < 0 {
		return m.rng.Float64() * 2 * math.Pi
	}
	return m.cfg.Heading * math.Pi / 180
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "d":
			m.overlay = !m.overlay
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		m.mouse(msg)

	case TickMsg:
		m.frame(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// resize recomputes the bounding region from the new terminal size and
// clamps the sprite into it before stepping resumes.
func (m *Model) resize(w, h int) {
	first := !m.ready
	m.width, m.height = w, h
	m.bounds = motion.BoundsFor(float64(w), float64(h), float64(m.spriteW), float64(m.spriteH))
	m.ready = true
	if first {
		m.center()
	}
	m.state = m.bounds.Clamp(m.state)
}

func (m *Model) center() {
	m.state.X = (m.bounds.Left + m.bounds.Right) / 2
	m.state.Y = (m.bounds.Top + m.bounds.Bottom) / 2
}

func (m *Model) reset() {
	m.center()
	m.state.VX, m.state.VY = motion.FromPolar(m.heading(), m.cfg.Speed)
	m.trail = m.trail[:0]
	m.xHist = m.xHist[:0]
	m.bounces.Reset()
	m.corners.Reset()
	m.glow = nil
	m.glowVal = 0
	m.flashT = 0
	m.lastTick = time.Time{}
}

// mouse implements the dragging state: press on the sprite suspends
// stepping, motion follows the pointer, release rethrows with a velocity
// derived from the recent pointer deltas.
func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.ready {
			return
		}
		if !m.hitSprite(msg.X, msg.Y) {
			return
		}
		m.dragging = true
		m.dragBuf = m.dragBuf[:0]
		m.moveTo(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.dragging {
			m.moveTo(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		m.throw()
	}
}

func (m *Model) hitSprite(x, y int) bool {
	sx := int(math.Round(m.state.X)) - m.spriteW/2
	sy := int(math.Round(m.state.Y)) - m.spriteH/2
	return x >= sx && x < sx+m.spriteW && y >= sy && y < sy+m.spriteH
}

func (m *Model) moveTo(x, y int) {
	m.state.X = float64(x)
	m.state.Y = float64(y)
	m.state = m.bounds.Clamp(m.state)

	m.dragBuf = append(m.dragBuf, dragSample{x: m.state.X, y: m.state.Y, t: time.Now()})
	if len(m.dragBuf) > 8 {
		m.dragBuf = m.dragBuf[1:]
	}
}

// throw recomputes velocity from the drag delta. A stationary release
// keeps the pre-drag speed along a fresh heading so the logo never dies.
func (m *Model) throw() {
	speed := m.state.Speed()
	if speed == 0 {
		speed = m.cfg.Speed
	}

	if len(m.dragBuf) >= 2 {
		first := m.dragBuf[0]
		last := m.dragBuf[len(m.dragBuf)-1]
		dt := last.t.Sub(first.t).Seconds()
		if dt > 1e-3 {
			vx := (last.x - first.x) / dt
			vy := (last.y - first.y) / dt
			if math.Hypot(vx, vy) > 1 {
				m.state.VX, m.state.VY = vx, vy
				m.lastTick = time.Time{}
				return
			}
		}
	}

	m.state.VX, m.state.VY = motion.FromPolar(m.rng.Float64()*2*math.Pi, speed)
	m.lastTick = time.Time{}
}

// frame advances the integrator by the real elapsed time, clamped.
func (m *Model) frame(now time.Time) {
	m.measureFPS(now)

	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	m.lastTick = now
	m.frameDt = dt

	if m.flashT > 0 {
		m.flashT -= dt
	}
	if m.glow != nil {
		val, done := m.glow.Update(float32(dt))
		m.glowVal = val
		if done {
			m.glow = nil
			m.glowVal = 0
		}
	}

	if !m.ready || !m.running || m.dragging {
		return
	}

	prev := cell{int(math.Round(m.state.X)), int(math.Round(m.state.Y))}

	var ev motion.Events
	m.state, ev = motion.Step(m.state, m.bounds, dt)

	m.bounces.Observe(m.state, ev, dt)
	m.corners.Observe(m.state, ev, dt)

	if !ev.Empty() {
		m.flash = ev
		m.flashT = flashDuration
	}
	if ev.Corner() && m.cfg.Glow.Enabled {
		m.glow = gween.New(1, 0, float32(m.cfg.Glow.Duration), ease.OutQuad)
		m.glowVal = 1
	}

	if m.cfg.Trail > 0 {
		m.trail = append(m.trail, prev)
		if len(m.trail) > m.cfg.Trail {
			m.trail = m.trail[1:]
		}
	}

	m.xHist = append(m.xHist, m.state.X)
	if len(m.xHist) > historyCapacity {
		m.xHist = m.xHist[1:]
	}
}

func (m *Model) measureFPS(now time.Time) {
	if m.fpsWindow.IsZero() {
		m.fpsWindow = now
	}
	m.frames++
	if elapsed := now.Sub(m.fpsWindow); elapsed >= time.Second {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.fpsWindow = now
	}
}

func (m Model) View() string {
	if !m.ready {
		return "measuring terminal..."
	}

	canvas := make([][]rune, m.height)
	for y := range canvas {
		canvas[y] = make([]rune, m.width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	set := func(x, y int, c rune) {
		if x >= 0 && x < m.width && y >= 0 && y < m.height {
			canvas[y][x] = c
		}
	}

	for _, c := range m.trail {
		set(c.x, c.y, '·')
	}
	m.drawFlash(set)

	sx := int(math.Round(m.state.X)) - m.spriteW/2
	sy := int(math.Round(m.state.Y)) - m.spriteH/2
	lines := m.logo.Lines()
	for dy, line := range lines {
		for dx, c := range []rune(line) {
			if c != ' ' {
				set(sx+dx, sy+dy, c)
			}
		}
	}

	clipped := sx < 0 || sy < 0 || sx+m.spriteW > m.width || sy+m.spriteH > m.height

	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		if !clipped && y >= sy && y < sy+m.spriteH {
			prefix := string(canvas[y][:sx])
			body := string(canvas[y][sx : sx+m.spriteW])
			suffix := string(canvas[y][sx+m.spriteW:])
			rows[y] = m.theme.Trail.Render(prefix) + m.spriteStyle().Render(body) + m.theme.Trail.Render(suffix)
		} else {
			rows[y] = m.theme.Trail.Render(string(canvas[y]))
		}
	}

	if m.overlay {
		m.drawOverlay(rows, canvas)
	}
	if !m.running {
		m.drawStatus(rows, pausedStyle.Render("PAUSED (space to resume)"))
	} else if m.dragging {
		m.drawStatus(rows, pausedStyle.Render("DRAGGING"))
	}

	return strings.Join(rows, "\n")
}

// spriteStyle picks the logo style for the current glow intensity.
func (m Model) spriteStyle() lipgloss.Style {
	switch {
	case m.glowVal > 0.5:
		return m.theme.Glow
	case m.glowVal > 0:
		return m.theme.GlowDim
	default:
		return m.theme.Logo
	}
}

// drawFlash marks the edges hit within the last flash window.
func (m Model) drawFlash(set func(int, int, rune)) {
	if m.flashT <= 0 {
		return
	}
	if m.flash.Has(motion.HitTop) {
		for x := 0; x < m.width; x++ {
			set(x, 0, '▔')
		}
	}
	if m.flash.Has(motion.HitBottom) {
		for x := 0; x < m.width; x++ {
			set(x, m.height-1, '▁')
		}
	}
	if m.flash.Has(motion.HitLeft) {
		for y := 0; y < m.height; y++ {
			set(0, y, '▏')
		}
	}
	if m.flash.Has(motion.HitRight) {
		for y := 0; y < m.height; y++ {
			set(m.width-1, y, '▕')
		}
	}
}

// drawOverlay composites the debug panel over the top-left corner.
func (m Model) drawOverlay(rows []string, canvas [][]rune) {
	var b strings.Builder
	b.WriteString(overlayHeader.Render("LOGODRIFT") + "\n")
	b.WriteString(labelStyle.Render("pos") + valueStyle.Render(fmt.Sprintf("%.1f, %.1f", m.state.X, m.state.Y)) + "\n")
	b.WriteString(labelStyle.Render("vel") + valueStyle.Render(fmt.Sprintf("%.1f, %.1f", m.state.VX, m.state.VY)) + "\n")
	b.WriteString(labelStyle.Render("heading") + valueStyle.Render(fmt.Sprintf("%.0f°", m.state.Heading()*180/math.Pi)) + "\n")
	b.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.1f cells/s", m.state.Speed())) + "\n")
	b.WriteString(labelStyle.Render("bounds") + valueStyle.Render(fmt.Sprintf("%.0fx%.0f", m.bounds.Width(), m.bounds.Height())) + "\n")
	b.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%.1f ms", m.frameDt*1000)) + "\n")
	b.WriteString(labelStyle.Render("fps") + valueStyle.Render(fmt.Sprintf("%.1f / %d", m.fps, m.cfg.FPS)) + "\n")
	b.WriteString(labelStyle.Render("bounces") + valueStyle.Render(fmt.Sprintf("%.0f", m.bounces.Value())) + "\n")
	b.WriteString(labelStyle.Render("corners") + valueStyle.Render(fmt.Sprintf("%.0f", m.corners.Value())) + "\n")
	b.WriteString(labelStyle.Render("theme") + valueStyle.Render(m.theme.Name) + "\n")

	if len(m.xHist) > 1 {
		chart := asciigraph.Plot(m.xHist, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("x position"))
		b.WriteString(graphStyle.Render(chart))
	}

	panel := overlayStyle.Render(b.String())
	for i, line := range strings.Split(panel, "\n") {
		if i >= len(rows) {
			break
		}
		w := lipgloss.Width(line)
		rest := ""
		if w < m.width {
			rest = m.theme.Trail.Render(string(canvas[i][w:]))
		}
		rows[i] = line + rest
	}
}

// drawStatus puts a one-line status into the bottom row.
func (m Model) drawStatus(rows []string, status string) {
	if len(rows) == 0 {
		return
	}
	rows[len(rows)-1] = status
}

// Run starts the screensaver in the alternate screen with mouse
// reporting enabled for dragging.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
