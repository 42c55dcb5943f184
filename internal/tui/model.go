package tui

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateRun
)

type model struct {
	state      state
	cursor     int
	algorithms []string
	presets    []string
	preset     int

	s         *session
	theme     viz.Theme
	lastFrame time.Time
	now       time.Time

	width  int
	height int

	init tea.Cmd
}

func newModel(cfg *config.Config, log *slog.Logger) model {
	m := model{
		state:      stateMenu,
		algorithms: algo.Names(),
		presets:    config.ListPresets(),
		s:          newSession(cfg, log),
		theme:      viz.GetTheme(cfg.Theme),
		width:      80,
		height:     24,
	}
	if a, err := algo.Lookup(cfg.Algorithm); err == nil {
		for i, name := range m.algorithms {
			if name == a.Name {
				m.cursor = i
			}
		}
	}
	for i, p := range m.presets {
		if p == cfg.Preset {
			m.preset = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return m.init }

// tickMsg drives one frame. Ticks from an earlier frame loop carry an old
// generation and are dropped, so leaving and re-entering a run never doubles
// the frame rate.
type tickMsg struct {
	at  time.Time
	gen int
}

func (m model) tick() tea.Cmd {
	gen := m.s.ticks
	return tea.Tick(m.s.cfg.FrameInterval(), func(t time.Time) tea.Msg { return tickMsg{at: t, gen: gen} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateRun || msg.gen != m.s.ticks {
			return m, nil
		}
		now := msg.at
		dt := m.s.cfg.FrameInterval()
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now
		m.now = now
		m.s.frame(dt)
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateRun:
		return m.runKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case "left", "h":
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)
	case "right", "l":
		m.preset = (m.preset + 1) % len(m.presets)
	case "t":
		m.theme = viz.NextTheme(m.theme)
	case "enter", " ":
		cfg := *m.s.cfg
		cfg.Input = nil
		cfg.Preset = m.presets[m.preset]
		input, err := cfg.GetInput()
		if err != nil {
			m.s.report(err, m.now)
			return m, nil
		}
		return m.begin(m.algorithms[m.cursor], input)
	}
	return m, nil
}

// begin starts a run and switches to the run view. On failure the model
// stays where it is and shows the error.
func (m model) begin(name string, input []int) (model, tea.Cmd) {
	if err := m.s.start(name, input); err != nil {
		m.s.report(err, m.now)
		return m, nil
	}
	m.state = stateRun
	m.lastFrame = time.Time{}
	m.s.ticks++
	return m, tea.Batch(tea.ClearScreen, m.tick())
}

func (m model) runKey(msg tea.KeyMsg) (model, tea.Cmd) {
	a := m.s.anim
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.s.anim.ShowArray(nil)
		return m, tea.ClearScreen
	case " ", "p":
		if a.Done() {
			m.s.report(m.s.restart(), m.now)
		} else {
			m.s.report(a.Play(), m.now)
		}
	case "left", "h":
		m.s.report(m.s.step(a.PreviousStep), m.now)
	case "right", "l":
		m.s.report(m.s.step(a.NextStep), m.now)
	case "r":
		m.s.report(m.s.restart(), m.now)
	case "n":
		m.s.report(m.s.shuffle(), m.now)
	case "+", "=":
		m.s.stage.SetSpeed(math.Min(m.s.stage.Speed()*2, 16))
	case "-", "_":
		m.s.stage.SetSpeed(math.Max(m.s.stage.Speed()/2, 0.25))
	case "0":
		m.s.stage.SetSpeed(1)
	case "t":
		m.theme = viz.NextTheme(m.theme)
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateRun:
		return m.viewRun()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(m.theme.Muted)
	accent := lipgloss.NewStyle().Foreground(m.theme.Active)
	white := lipgloss.NewStyle().Foreground(m.theme.Text)

	b.WriteString("\n")
	b.WriteString(dim.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("            " + accent.Render("s o r t v i z") + "\n")
	b.WriteString(dim.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, name := range m.algorithms {
		title := ""
		if a, err := algo.Lookup(name); err == nil {
			title = a.Title
		}
		if i == m.cursor {
			b.WriteString("      " + accent.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + dim.Render(title) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", name)) + dim.Render(title) + "\n")
		}
	}

	preset := m.presets[m.preset]
	b.WriteString("\n      input  " + accent.Render("◂ "+preset+" ▸"))
	if in, ok := config.GetPreset(preset); ok {
		b.WriteString("  " + dim.Render(fmt.Sprint(in)))
	}
	b.WriteString("\n      theme  " + dim.Render(m.theme.Name) + "\n")

	if n := m.s.currentNotice(m.now); n != "" {
		b.WriteString("\n      " + lipgloss.NewStyle().Foreground(m.theme.Notice).Render(n) + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("      ↑↓ algorithm  ←→ input  t theme  enter start  q quit") + "\n")
	return b.String()
}

func (m model) viewRun() string {
	a := m.s.anim
	var b strings.Builder

	status := viz.StatusRunning.Render("● playing")
	switch {
	case a.Done():
		status = viz.StatusRunning.Render("✓ sorted")
	case !a.Busy():
		status = viz.StatusPaused.Render("○ paused")
	}
	title := m.s.algo.Title
	if title == "" {
		title = m.s.algo.Name
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s  %s\n",
		viz.Title.Render(title), status,
		viz.MetricLabel.Render(fmt.Sprintf("speed ×%g", m.s.stage.Speed()))))

	steps := a.Steps()
	progress := 0.0
	if a.QueueLen() > 0 {
		progress = float64(a.Cursor()) / float64(a.QueueLen())
	}
	stepText := fmt.Sprintf("step %d/%d", a.CurrentStep()+1, len(steps))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", viz.ProgressBar(progress, 36), viz.MetricLabel.Render(stepText)))

	board := viz.Board{CellWidth: m.s.cfg.Layout.CellWidth, Theme: m.theme}.Render(m.s.stage)
	source := viz.RenderSource(m.s.algo.Lines(), m.s.line, m.theme, false)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		viz.Panel.Render(board),
		"  ",
		viz.Panel.Render(source),
	))
	b.WriteString("\n")

	stats := a.Stats()
	var line strings.Builder
	line.WriteString("   ")
	for _, name := range []string{"swaps", "shifts", "pointer_moves", "movement"} {
		line.WriteString(viz.MetricLabel.Render(name + " "))
		line.WriteString(viz.MetricValue.Render(fmt.Sprintf("%.0f", stats[name])))
		line.WriteString("  ")
	}
	b.WriteString(line.String() + "\n")
	if series := m.s.perStep.Series(); len(series) > 1 {
		b.WriteString("   " + viz.MetricLabel.Render("entries/step ") + viz.SparklineChart(series, 40) + "\n")
	}

	if n := m.s.currentNotice(m.now); n != "" {
		b.WriteString("   " + lipgloss.NewStyle().Foreground(m.theme.Notice).Render(n) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(viz.KeyHint.Render("   space play  ←→ step  r restart  n new input  ± speed  t theme  q menu") + "\n")
	return b.String()
}

// Options configure the interactive program.
type Options struct {
	Config *config.Config
	// Logger receives engine logs. It must not write to the terminal the
	// program draws on.
	Logger *slog.Logger
	// Play skips the menu and starts Config.Algorithm on Input.
	Play  bool
	Input []int
}

// initialModel builds the first model, already in the run view when
// opts.Play is set. The returned command starts the frame loop.
func initialModel(opts Options) (model, tea.Cmd, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := newModel(cfg, log)
	if !opts.Play {
		return m, nil, nil
	}
	if err := m.s.start(cfg.Algorithm, opts.Input); err != nil {
		return m, nil, err
	}
	m.state = stateRun
	return m, m.tick(), nil
}

func RunInteractive(opts Options) error {
	m, cmd, err := initialModel(opts)
	if err != nil {
		return err
	}
	m.init = cmd
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
