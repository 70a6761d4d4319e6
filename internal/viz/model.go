package viz

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/world"
)

const (
	// unitsPerDot is how many render units one Braille sub-pixel covers.
	unitsPerDot     = 5.0
	panelWidth      = 44
	historyCapacity = 300
	tickRate        = time.Second / 60
)

type TickMsg time.Time

// Model is the interactive session: one world, the live parameters and the
// canvas it is drawn on.
type Model struct {
	world     *world.World
	params    physics.Params
	spawn     config.SpawnConfig
	canvas    *Canvas
	rng       *rand.Rand
	running   bool
	last      time.Time
	lastDt    float64
	elapsed   float64
	paramKeys []string
	selected  int
	envs      []string
	envIdx    int
	materials []string
	matIdx    int
	energy    []float64
	status    string
}

// NewModel sizes the canvas to cfg's bounds and spawns cfg.Bodies balls.
func NewModel(cfg *config.Config) Model {
	w := world.New(cfg.Seed)
	params := cfg.PhysicsParams()

	cols := int(cfg.Width / unitsPerDot / 2)
	rows := int(cfg.Height / unitsPerDot / 4)
	canvas := NewCanvas(max(cols, 1), max(rows, 1))
	params.Bounds = boundsFor(canvas)

	w.SpawnRow(cfg.Bodies, params.Bounds, cfg.Spawn.Y, cfg.Spawn.Radius, cfg.Spawn.Mass)

	keys := make([]string, 0, 4)
	for k := range params.GetParams() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	envs := config.ListEnvironments()
	mats := config.ListMaterials()

	return Model{
		world:     w,
		params:    params,
		spawn:     cfg.Spawn,
		canvas:    canvas,
		rng:       rand.New(rand.NewSource(cfg.Seed + 1)),
		running:   true,
		paramKeys: keys,
		envs:      envs,
		envIdx:    indexOf(envs, cfg.Environment),
		materials: mats,
		matIdx:    indexOf(mats, cfg.Material),
		energy:    make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the world once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.spawnBall()
		case "c":
			m.world.Clear()
			m.energy = m.energy[:0]
		case "p":
			m.running = !m.running
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.status = errText(m.adjustParam(1.05))
		case "down", "j":
			m.status = errText(m.adjustParam(0.95))
		case "m":
			m.cycleMaterial()
		case "e":
			m.cycleEnvironment()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// advance steps the world by the wall-clock time since the previous tick.
// The first tick only records the time.
func (m *Model) advance(now time.Time) {
	if m.last.IsZero() {
		m.last = now
		return
	}
	dt := now.Sub(m.last).Seconds()
	m.last = now
	if !m.running || dt <= 0 {
		return
	}

	m.params.Bounds = boundsFor(m.canvas)
	m.world.Step(m.params, dt)
	m.lastDt = dt
	m.elapsed += dt

	m.energy = append(m.energy, metrics.TotalKineticEnergy(m.world.Bodies()))
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

func (m *Model) spawnBall() {
	r := m.spawn.Radius * physics.UnitScale
	span := m.params.Bounds.Width - 2*r
	if span < 0 {
		span = 0
	}
	x := r + m.rng.Float64()*span
	m.world.Spawn(physics.Vec2{X: x, Y: r}, m.spawn.Radius, m.spawn.Mass)
}

// adjustParam scales the selected parameter. A zero value is nudged off
// zero before scaling up.
func (m *Model) adjustParam(factor float64) error {
	key := m.paramKeys[m.selected]
	val := m.params.GetParams()[key]
	if val == 0 && factor > 1 {
		val = 0.01
	}
	return m.params.SetParam(key, val*factor)
}

func (m *Model) cycleMaterial() {
	m.matIdx = (m.matIdx + 1) % len(m.materials)
	mat := config.Materials[m.materials[m.matIdx]]
	m.spawn.Radius = mat.Radius
	m.spawn.Mass = mat.Mass
	m.params.Friction = mat.Friction
}

func (m *Model) cycleEnvironment() {
	m.envIdx = (m.envIdx + 1) % len(m.envs)
	env := config.Environments[m.envs[m.envIdx]]
	m.params.Gravity = env.Gravity
	m.params.FluidDensity = env.FluidDensity
	m.params.DragCoefficient = env.Drag
}

// resize fits the canvas to the terminal; the world bounds follow on the
// next tick.
func (m *Model) resize(termW, termH int) {
	cols := termW - panelWidth - 4
	rows := termH - 2
	if cols < 10 || rows < 5 {
		return
	}
	m.canvas.Resize(cols, rows)
	m.params.Bounds = boundsFor(m.canvas)
}

func boundsFor(c *Canvas) physics.Bounds {
	return physics.Bounds{
		Width:  float64(c.Width*2) * unitsPerDot,
		Height: float64(c.Height*4) * unitsPerDot,
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, b := range m.world.Bodies() {
		cx := int(math.Round(b.Position.X / unitsPerDot))
		cy := int(math.Round(b.Position.Y / unitsPerDot))
		m.canvas.DrawCircle(cx, cy, b.RadiusRender/unitsPerDot)
	}
}

// View renders the canvas and the side panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(strings.TrimSuffix(m.canvas.String(), "\n"))

	var s strings.Builder
	s.WriteString(headerStyle.Render("BALLPIT") + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("kinetic energy (J)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	energy := 0.0
	if len(m.energy) > 0 {
		energy = m.energy[len(m.energy)-1]
	}
	s.WriteString(labelStyle.Render("Balls") + valueStyle.Render(fmt.Sprintf("%d", m.world.Len())) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.elapsed)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%.1fms", m.lastDt*1000)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f", energy)) + "\n")
	s.WriteString(labelStyle.Render("World") + valueStyle.Render(m.envs[m.envIdx]) + "\n")
	s.WriteString(labelStyle.Render("Material") + valueStyle.Render(m.materials[m.matIdx]) + "\n")
	s.WriteString(labelStyle.Render("Bounds") + valueStyle.Render(fmt.Sprintf("%.0fx%.0f", m.params.Bounds.Width, m.params.Bounds.Height)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	values := m.params.GetParams()
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-10s %8.3f", k, values[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	if m.status != "" {
		s.WriteString("\n" + statusPaused.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Spawn C:Clear P:Pause Q:Quit\nTab:Param ↑↓:Tune M:Material E:World"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Run starts the interactive program.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
