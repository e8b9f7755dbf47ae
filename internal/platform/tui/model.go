package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Game is what the terminal frontend drives. *flappy.Game implements it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveScore(gameID string, score int, cause string) (int64, error)
}

// Options configures a Model. Zero values are usable.
type Options struct {
	History       RunRecorder // Optional run history
	Logger        *log.Logger // Defaults to a discarding logger
	ScreenshotDir string      // Defaults to ~/.skyhop/screenshots
}

// helpRows is the space reserved under the playfield for the key help line.
const helpRows = 1

// Model is the Bubble Tea model for one terminal play session.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model for game. The game is reset in Init.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg = playfield(cfg, cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   true,
		inputFrame: core.NewInputFrame(),
	}
}

// playfield sizes cfg to a terminal of w x h, leaving room for the help line.
func playfield(cfg core.RuntimeConfig, w, h int) core.RuntimeConfig {
	cfg.ScreenW = core.Max(w, 1)
	cfg.ScreenH = core.Max(h-helpRows, 1)
	return cfg
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := mouseAction(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches the key's action until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adopts the new terminal size without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config = playfield(m.config, msg.Width, msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.config)
	return m, nil
}

// handleTick runs one frame with the input latched since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	return m, tickCmd(m.config)
}

// handleEvent logs frame events and records finished runs.
func (m Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventGameOver:
		m.logger.Info("game over", "score", e.Score, "best", e.Best, "new_best", e.NewBest, "cause", e.Cause)
		if e.Score > 0 && m.opts.History != nil {
			if _, err := m.opts.History.SaveScore(m.game.ID(), e.Score, e.Cause); err != nil {
				m.logger.Warn("could not record run", "error", err)
			}
		}
	case core.EventPersistFailed:
		m.logger.Warn("best score not saved", "best", e.Best, "error", e.Err)
	case core.EventImpulse:
		// Every flap; too noisy even for debug
	default:
		m.logger.Debug(e.Kind.String(), "score", e.Score, "best", e.Best)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".skyhop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if !m.showHelp {
		return view
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return view + "\n" + helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a local Bubble Tea program for game and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
