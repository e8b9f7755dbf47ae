// Package flappy implements the side-scrolling flap-through-the-gaps game.
// The player controls a bird that falls under gravity and must pass
// through the gaps of an endless stream of pipes.
package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// GameID is the identifier runs and scores are stored under.
const GameID = "flappy"

// Game owns one play session: the bird, the pipes, the scores and the mode.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	cfg      config.FlappyConfig
	clock    core.Clock
	rng      RandomSource
	store    KV
	unitsW   float64 // world units per screen column
	unitsH   float64 // world units per screen row
	viewport core.Viewport

	mode    core.Mode
	bird    Bird
	pipes   *PipeManager
	scorer  *Scorer
	scroll  float64
	phase   float64 // idle sway phase, radians
	newBest bool
	cause   Collision

	lastFrame  time.Duration
	frameDelta time.Duration
	frames     int
	events     []core.Event
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithClock sets the timestamp source used by Step.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRandom sets the source for gap placement. Without it a source
// seeded from RuntimeConfig.Seed is created on Reset.
func WithRandom(r RandomSource) Option {
	return func(g *Game) { g.rng = r }
}

// WithStore sets where the best score is read from and written to.
func WithStore(kv KV) Option {
	return func(g *Game) { g.store = kv }
}

// WithUnitsPerCell sets how many world units one screen cell covers.
// The window frontend uses 1x1 so screen pixels are world units.
func WithUnitsPerCell(w, h float64) Option {
	return func(g *Game) {
		g.unitsW = w
		g.unitsH = h
	}
}

// New creates a game with the given configuration.
// Reset must be called before the first frame.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		unitsW: cfg.Render.CellWidth,
		unitsH: cfg.Render.CellHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = core.NewMonotonicClock()
	}
	return g
}

// ID returns the identifier scores are stored under.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyhop"
}

// Reset starts a brand-new session sized to the screen in cfg.
// The best score is read from the store here.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.viewport = g.toViewport(cfg)

	rng := g.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.pipes = NewPipeManager(rng, g.cfg.Obstacles, g.cfg.World.GroundHeight)
	g.scorer = NewScorer(g.store, g.cfg.Storage.BestKey)
	g.phase = 0
	g.frames = 0
	g.lastFrame = g.clock.Now()
	g.frameDelta = 0
	g.newSession()
}

// Resize adopts a new screen size without interrupting the run.
// The bird keeps its position; later spawns and collisions use the new size.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.viewport = g.toViewport(cfg)
}

// toViewport converts screen dimensions to world units.
func (g *Game) toViewport(cfg core.RuntimeConfig) core.Viewport {
	return core.Viewport{
		W: float64(cfg.ScreenW) * g.unitsW,
		H: float64(cfg.ScreenH) * g.unitsH,
	}
}

// Step runs one frame stamped with the game's clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Frame(g.clock.Now(), in)
}

// Frame runs one display frame at timestamp now (monotonic).
// Input latched since the previous frame is applied first, then the idle
// sway or the playing update.
func (g *Game) Frame(now time.Duration, in core.InputFrame) core.StepResult {
	g.events = nil
	g.frameDelta = now - g.lastFrame
	g.lastFrame = now
	g.frames++

	g.handleInput(now, in)

	if g.mode == core.ModeIdle {
		g.sway()
	}
	g.update(now)

	return core.StepResult{State: g.State(), Events: g.events}
}

// sway bobs the bird around its starting height before the first jump.
func (g *Game) sway() {
	g.phase += g.cfg.Idle.PhaseStep
	g.bird.Sway(g.viewport.H*g.cfg.Player.YRatio, g.cfg.Idle.Amplitude, g.phase)
}

// update advances the simulation by one frame. It does nothing unless playing.
func (g *Game) update(now time.Duration) {
	if g.mode != core.ModePlaying {
		return
	}

	g.bird.Integrate(g.cfg.Physics)
	g.scroll = math.Mod(g.scroll+g.cfg.Obstacles.Speed*g.cfg.World.ScrollFactor, g.cfg.World.ScrollPeriod)

	g.pipes.MaybeSpawn(now, g.viewport)
	for n := g.pipes.Advance(g.bird.X); n > 0; n-- {
		g.scorer.Point()
		g.emit(core.EventScored)
	}

	if c := g.checkCollisions(); c != CollisionNone {
		g.die(c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:  g.mode,
		Score: g.scorer.Score(),
		Best:  g.scorer.Best(),
	}
}

// Viewport returns the current world size.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}
