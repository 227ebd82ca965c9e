// Package tui provides the Bubble Tea front-end: it runs the round controller
// on a background goroutine, feeds it key presses and draws its frames.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/round"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Model is the Bubble Tea model for a running round.
type Model struct {
	bridge   *Bridge
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	grid     field.Grid
	score    int
	gameOver bool
	ended    bool
	quit     bool
}

// NewModel creates a model that forwards input to bridge.
func NewModel(bridge *Bridge, keys KeyMap) Model {
	return Model{
		bridge: bridge,
		keys:   keys,
		help:   help.New(),
		screen: core.NewScreen(ScreenWidth, ScreenHeight),
	}
}

// Init implements tea.Model. The controller drives all updates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		m.grid = msg.Grid

	case ScoreMsg:
		m.score = int(msg)

	case GameOverMsg:
		m.score = msg.Score
		m.gameOver = true

	case RoundEndedMsg:
		m.score = msg.Score
		m.quit = msg.Quit
		m.ended = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the game over banner
	if m.gameOver {
		m.bridge.Acknowledge()
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.bridge.Push(action)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.ended {
		return ""
	}

	m.screen.Clear()
	DrawBoard(m.screen, m.grid, m.score, m.gameOver)

	view := RenderScreen(m.screen) + "\n"
	if m.gameOver {
		return view + "Press any key to continue..."
	}
	return view + m.help.View(m.keys)
}

// Result summarizes a finished round.
type Result struct {
	Score int
	Quit  bool
	Stats round.Stats
}

// Run plays one round in the terminal and blocks until it ends.
func Run(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) (Result, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("starting round", "seed", cfg.Seed, "tick", cfg.TickPeriod, "move_rate", cfg.MoveRate)

	bridge := NewBridge(64)
	p := tea.NewProgram(NewModel(bridge, keys), tea.WithAltScreen())
	bridge.Attach(p.Send)

	ctrl := round.New(cfg, shapes.NewRandSource(cfg.Seed), bridge, bridge, round.SleepClock{}, round.WithLogger(logger))

	stats := make(chan round.Stats, 1)
	go func() {
		state := ctrl.Run()
		stats <- ctrl.Stats()
		p.Send(RoundEndedMsg{Quit: state == round.StateQuit, Score: ctrl.Score()})
	}()

	final, err := p.Run()
	bridge.Close()
	if err != nil {
		return Result{}, err
	}

	res := Result{}
	if m, ok := final.(Model); ok {
		res.Score = m.score
		res.Quit = m.quit
	}
	select {
	case res.Stats = <-stats:
	default:
	}
	return res, nil
}
