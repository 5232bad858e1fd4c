// Package tui defines the Bubble Tea model for the interactive orrery.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/frames"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
)

// Config carries dependencies into the orrery.
type Config struct {
	Source     ephemeris.Source
	Log        *logger.Logger
	Epoch      time.Time     // initial epoch; zero means now
	Truncation time.Duration // epoch grid for cached sweep lookups
	LogCh      <-chan string // log lines forwarded by the logger sink
}

// planets are the bodies plotted, in heliocentric order.
var planets = []string{
	"Mercury", "Venus", "Earth", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto",
}

// Model is the root Bubble Tea model (Elm architecture).
type Model struct {
	cfg Config

	// Dimensions
	width  int
	height int

	// Simulation clock
	epoch  time.Time
	paused bool

	// Plot state
	bodies   []plotBody
	mode     scaleMode
	selected int

	// Help overlay
	showHelp bool
	helpView viewport.Model

	// Status line state
	lastError error
	lastLog   string

	// Theme
	styles Styles
}

// tickMsg advances the simulation clock.
type tickMsg time.Time

// bodiesMsg carries freshly computed planet positions.
type bodiesMsg []plotBody

// logLineMsg carries a forwarded log line for the footer.
type logLineMsg string

// errMsg carries an error to display in the footer.
type errMsg error

// New constructs a new orrery Model.
func New(cfg Config) *Model {
	epoch := cfg.Epoch
	if epoch.IsZero() {
		epoch = time.Now().UTC()
	}
	hv := viewport.New(0, 0)
	hv.SetContent(HelpText())

	return &Model{
		cfg:      cfg,
		epoch:    epoch,
		styles:   newStyles(),
		helpView: hv,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Init
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), m.loadBodiesCmd()}
	if m.cfg.LogCh != nil {
		cmds = append(cmds, m.listenLogsCmd())
	}
	return tea.Batch(cmds...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.helpView.Width = m.width
		m.helpView.Height = m.height - 2

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case defaultKeymap().Help, defaultKeymap().Quit, "esc":
				m.showHelp = false
				return m, nil
			}
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		return m, m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			m.epoch = m.epoch.Add(24 * time.Hour)
			return m, tea.Batch(m.tickCmd(), m.loadBodiesCmd())
		}
		return m, m.tickCmd()

	case bodiesMsg:
		m.bodies = msg
		m.lastError = nil

	case logLineMsg:
		m.lastLog = strings.TrimSpace(string(msg))
		return m, m.listenLogsCmd()

	case errMsg:
		m.lastError = msg
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	kb := defaultKeymap()

	switch msg.String() {
	case kb.Quit, "ctrl+c":
		return tea.Quit

	case kb.Pause:
		m.paused = !m.paused

	case kb.StepFwd:
		m.epoch = m.epoch.Add(24 * time.Hour)
		return m.loadBodiesCmd()

	case kb.StepBack:
		m.epoch = m.epoch.Add(-24 * time.Hour)
		return m.loadBodiesCmd()

	case kb.BigFwd:
		m.epoch = m.epoch.AddDate(0, 0, 30)
		return m.loadBodiesCmd()

	case kb.BigBack:
		m.epoch = m.epoch.AddDate(0, 0, -30)
		return m.loadBodiesCmd()

	case kb.Today:
		m.epoch = time.Now().UTC()
		return m.loadBodiesCmd()

	case kb.ScaleMode:
		m.mode = (m.mode + 1) % scaleModeCount
		return m.loadBodiesCmd()

	case kb.NavDown, "j":
		if m.selected < len(planets)-1 {
			m.selected++
		}

	case kb.NavUp, "k":
		if m.selected > 0 {
			m.selected--
		}

	case kb.Help:
		m.showHelp = !m.showHelp
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// View
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.styles.Header.Width(m.width).Render(
		fmt.Sprintf("☉ ORRERY  %s TDB  scale: %s", m.epoch.Format("2006-01-02 15:04"), m.mode))

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.helpView.View())
	}

	sidebarWidth := 34
	plotW := m.width - sidebarWidth - 2
	plotH := m.height - 4

	plot := renderPlot(m.bodies, plotW, plotH, m.selected, m.styles)
	sidebar := m.renderSidebar(sidebarWidth, plotH)

	body := lipgloss.JoinHorizontal(lipgloss.Top, plot, sidebar)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderSidebar(w, h int) string {
	rows := []string{m.styles.PanelTitle.Render("HELIOCENTRIC")}
	for i, b := range m.bodies {
		line := fmt.Sprintf("%s %-8s %7.3f AU  %+6.2f°", b.glyph, b.name, b.pt.rAU, b.pt.latDeg)
		if i == m.selected {
			rows = append(rows, m.styles.BodySel.Render("▸ "+line))
		} else {
			rows = append(rows, m.styles.BodyRow.Render(line))
		}
	}
	return m.styles.Sidebar.Width(w).Height(h).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderFooter() string {
	keys := m.styles.FooterKey
	status := fmt.Sprintf("%s quit  %s pause  %s step  %s scale  %s help",
		keys.Render("q"), keys.Render("space"), keys.Render("←→"),
		keys.Render("m"), keys.Render("?"))
	if m.paused {
		status += "  " + m.styles.BodySel.Render("⏸ paused")
	}
	if m.lastError != nil {
		status += "  " + m.styles.StatusErr.Render(m.lastError.Error())
	} else if m.lastLog != "" {
		status += "  " + m.styles.Orbit.Render(m.lastLog)
	}
	return m.styles.Footer.Width(m.width).Render(status)
}

// ─────────────────────────────────────────────────────────────────────────────
// Commands (async data fetchers)
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenLogsCmd waits for the next forwarded log line.
func (m *Model) listenLogsCmd() tea.Cmd {
	ch := m.cfg.LogCh
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return logLineMsg(line)
	}
}

// loadBodiesCmd recomputes every planet's heliocentric ecliptic position at
// the current simulation epoch. The epoch is snapped onto the cache grid:
// at AU plotting scale the truncation is invisible, and sweeping a grid
// lets repeated sessions reuse cached states.
func (m *Model) loadBodiesCmd() tea.Cmd {
	epoch, mode := m.epoch, m.mode
	return func() tea.Msg {
		jd := ephemeris.QuantizeJD(timeutil.JDTDB(epoch), m.cfg.Truncation)
		toEclip := frames.Transform(frames.J2000, frames.EclipJ2000, jd)

		bodies := make([]plotBody, 0, len(planets))
		for _, name := range planets {
			_, st, err := ephemeris.HelioState(m.cfg.Source, name, jd)
			if err != nil {
				return errMsg(err)
			}
			st = frames.Apply(toEclip, st)
			bodies = append(bodies, plotBody{
				name:  name,
				glyph: planetGlyphs[name],
				pt:    projectEcliptic(st, mode),
			})
		}
		return bodiesMsg(bodies)
	}
}
