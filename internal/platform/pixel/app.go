// Package pixel runs the game in a window (or a browser tab) with Ebitengine.
// One screen pixel is one world unit.
package pixel

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveScore(gameID string, score int, cause string) (int64, error)
}

// Options configures an App. Zero values are usable.
type Options struct {
	Store   flappy.KV   // Best score persistence
	History RunRecorder // Optional run history
	Logger  *log.Logger // Defaults to a discarding logger
	Width   int         // Initial window width, default 400
	Height  int         // Initial window height, default 600
	Seed    int64       // 0 picks a time-based seed
}

// App adapts a flappy.Game to ebiten.Game.
type App struct {
	game    *flappy.Game
	cfg     core.RuntimeConfig
	opts    Options
	logger  *log.Logger
	sprites sprites
	started bool
	quit    bool
}

// NewApp creates the window frontend for the given game configuration.
func NewApp(cfg config.FlappyConfig, opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = 400
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []flappy.Option{flappy.WithUnitsPerCell(1, 1)}
	if opts.Store != nil {
		gameOpts = append(gameOpts, flappy.WithStore(opts.Store))
	}

	return &App{
		game: flappy.New(cfg, gameOpts...),
		cfg: core.RuntimeConfig{
			ScreenW:  opts.Width,
			ScreenH:  opts.Height,
			TickRate: ebiten.DefaultTPS,
			Seed:     opts.Seed,
		},
		opts:    opts,
		logger:  logger,
		sprites: newSprites(cfg.Player),
	}
}

// Update runs one frame. Ebitengine calls it at a fixed 60 TPS.
func (a *App) Update() error {
	if !a.started {
		a.game.Reset(a.cfg)
		a.started = true
	}

	in := a.pollInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := a.game.Step(in)
	for _, e := range res.Events {
		a.handleEvent(e)
	}
	return nil
}

// handleEvent logs frame events and records finished runs.
func (a *App) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventGameOver:
		a.logger.Info("game over", "score", e.Score, "best", e.Best, "new_best", e.NewBest, "cause", e.Cause)
		if e.Score > 0 && a.opts.History != nil {
			if _, err := a.opts.History.SaveScore(a.game.ID(), e.Score, e.Cause); err != nil {
				a.logger.Warn("could not record run", "error", err)
			}
		}
	case core.EventPersistFailed:
		a.logger.Warn("best score not saved", "best", e.Best, "error", e.Err)
	case core.EventImpulse:
	default:
		a.logger.Debug(e.Kind.String(), "score", e.Score, "best", e.Best)
	}
}

// Layout follows the window size so the world always fills it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.cfg.ScreenW || outsideHeight != a.cfg.ScreenH {
		a.cfg.ScreenW = outsideWidth
		a.cfg.ScreenH = outsideHeight
		if a.started {
			a.game.Resize(a.cfg)
		}
	}
	return a.cfg.ScreenW, a.cfg.ScreenH
}

// Draw renders the last frame.
func (a *App) Draw(screen *ebiten.Image) {
	if !a.started {
		return
	}
	drawSnapshot(screen, a.game.Snapshot(), a.sprites)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.FlappyConfig, opts Options) error {
	app := NewApp(cfg, opts)

	ebiten.SetWindowSize(app.cfg.ScreenW, app.cfg.ScreenH)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
