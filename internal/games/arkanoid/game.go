// Package arkanoid implements the block-breaker simulation core: motion
// integration, collision response, the round state machine and the mapping
// from player intents to paddle and ball velocity.
//
// The package performs no I/O. Sounds and listener changes are returned as
// core.Effect values and drawing goes through the Renderer interface.
package arkanoid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// GameIDPrefix prefixes the registry ID of every difficulty variant.
const GameIDPrefix = "arkanoid-"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// GameID returns the registry ID for a difficulty.
func GameID(preset config.DifficultyPreset) string {
	return GameIDPrefix + string(preset)
}

// Stats counts what happened during the current round.
type Stats struct {
	Ticks           int
	BlocksDestroyed int
	PaddleBounces   int
}

// Game owns the round state and every entity. Intents arrive through Apply
// between ticks and take effect immediately; Step advances one frame.
type Game struct {
	preset     config.DifficultyPreset
	cfg        config.ArkanoidConfig
	configured bool
	runtime    core.RuntimeConfig
	rng        *SimpleRNG

	configErr error

	state     State
	outcome   Outcome
	paddle    Paddle
	ball      Ball
	blocks    []Block
	listeners core.ListenerSet
	stats     Stats
}

// New creates a game for the given difficulty. Configuration is read from
// disk on the first Reset. If it cannot be loaded the game runs on the
// built-in defaults and ConfigErr reports why.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.ArkanoidConfig) *Game {
	return &Game{
		preset:     cfg.Difficulty,
		cfg:        cfg,
		configured: true,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	name := string(g.preset)
	if name == "" {
		return "Arkanoid"
	}
	return fmt.Sprintf("Arkanoid (%s)", strings.ToUpper(name[:1])+name[1:])
}

// Reset starts a brand new round: configuration is resolved, the RNG is
// reseeded and every entity returns to its initial position.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.LoadArkanoid(configPath)
		if err == nil {
			config.ApplyPreset(&cfg, g.preset)
			err = cfg.Validate()
		}
		if err != nil {
			g.configErr = fmt.Errorf("arkanoid: falling back to default config: %w", err)
			cfg = config.DefaultArkanoidConfig()
			config.ApplyPreset(&cfg, g.preset)
		}
		g.cfg = cfg
		g.configured = true
	}

	g.rng = NewSimpleRNG(runtime.Seed)
	g.rebuild()
	g.state = DefaultState(g.cfg.Blocks.Count)
	g.listeners = core.ListenersPlay
}

// rebuild puts the paddle and ball back at their configured rectangles with
// zero velocity and lays out a fresh block grid.
func (g *Game) rebuild() {
	speed := g.cfg.Speed()

	g.paddle = Paddle{Entity{
		X:      g.cfg.Paddle.X,
		Y:      g.cfg.Paddle.Y,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
		Speed:  speed,
	}}
	g.ball = Ball{Entity{
		X:      g.cfg.Ball.X,
		Y:      g.cfg.Ball.Y,
		Width:  g.cfg.Ball.Width,
		Height: g.cfg.Ball.Height,
		Speed:  speed,
	}}
	g.blocks = GenerateBlocks(g.cfg.Blocks)
	g.outcome = OutcomeNone
	g.stats = Stats{}
}

// Apply feeds one player intent into the state machine and returns the
// effects the platform has to carry out.
func (g *Game) Apply(in core.Intent) []core.Effect {
	next, effects := Transition(g.state, in, g.cfg.Blocks.Count)
	g.state = next
	return g.apply(effects)
}

// Step advances the simulation by one tick: paddle, ball, collisions, then
// the end-of-round check. A finished round no longer changes.
func (g *Game) Step() core.StepResult {
	if g.state.GameFinished {
		return core.StepResult{State: g.State()}
	}

	g.stats.Ticks++
	w := g.world()
	movers := g.movers()

	// The paddle moves first so the ball sees this tick's force-stop flags.
	for _, m := range movers {
		switch m.Advance(g.state, w) {
		case HitLeftWall:
			g.state = g.state.Merge(Patch{ForceStopLeft: ref(true)})
		case HitRightWall:
			g.state = g.state.Merge(Patch{ForceStopRight: ref(true)})
		}
	}

	var report Report
	for _, m := range movers {
		report = report.Merge(m.ResolveCollisions(w))
	}

	var out []core.Effect

	for range report.BlocksHit {
		g.stats.BlocksDestroyed++
		g.state = g.state.Merge(Patch{RemainingBlocks: ref(max(g.state.RemainingBlocks-1, 0))})
		out = append(out, core.PlaySound(core.SoundBump))
	}
	if report.PaddleBounced {
		g.stats.PaddleBounces++
		out = append(out, core.PlaySound(core.SoundBump))
	}

	next, outcome, effects := Settle(g.state, report.Wall == WallBreached)
	if outcome != OutcomeNone {
		g.state = next
		g.outcome = outcome
		out = append(out, g.apply(effects)...)
	}

	return core.StepResult{State: g.State(), Effects: out}
}

// movers lists the entities in the order they move and collide.
func (g *Game) movers() []Movable {
	return []Movable{&g.paddle, &g.ball}
}

// world bundles the entities for a single Movable call.
func (g *Game) world() World {
	return World{
		Field:  g.Field(),
		Paddle: &g.paddle,
		Blocks: g.blocks,
	}
}

// apply performs entity-level effects and returns the platform-level ones.
func (g *Game) apply(effects []Effect) []core.Effect {
	var out []core.Effect

	for _, e := range effects {
		switch e.Kind {
		case EffectLaunchBall:
			limit := int(g.ball.Speed)
			g.ball.DX = float64(g.rng.IntRange(-limit, limit))
			g.ball.DY = g.ball.Speed / 2
		case EffectSteerPaddle:
			g.paddle.DX = e.Sign() * g.paddle.Speed
		case EffectNudgeBall:
			g.ball.DX = e.Sign() * g.ball.Speed
		case EffectRebuild:
			g.rebuild()
		case EffectHaltPaddle:
			g.paddle.DX = 0
		case EffectPlatform:
			switch e.Platform.Kind {
			case core.EffectSubscribe:
				g.listeners = e.Platform.Listeners
			case core.EffectUnsubscribe:
				if g.listeners == e.Platform.Listeners {
					g.listeners = core.ListenersNone
				}
			}
			out = append(out, e.Platform)
		}
	}

	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.BlocksDestroyed,
		GameOver: g.state.GameFinished,
		Won:      g.outcome == OutcomeWin,
		Launched: g.state.BallIsLaunched,
	}
}

// Round returns the full state record.
func (g *Game) Round() State {
	return g.state
}

// Phase returns the current phase of the round.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Outcome returns how the round ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Listeners returns the input listener set the platform should have attached.
func (g *Game) Listeners() core.ListenerSet {
	return g.listeners
}

// Stats returns counters for the current round.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ArkanoidConfig {
	return g.cfg
}

// ConfigErr returns why the configuration on disk was not used, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Field returns the playing field.
func (g *Game) Field() Field {
	return Field{Width: g.cfg.Field.Width, Height: g.cfg.Field.Height}
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Blocks returns a copy of the block grid.
func (g *Game) Blocks() []Block {
	out := make([]Block, len(g.blocks))
	copy(out, g.blocks)
	return out
}

// Render draws the current frame into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	NewScreenRenderer(dst).Draw(g.Scene())
}

// Register one game per difficulty with the registry
func init() {
	for _, preset := range config.Presets {
		registry.Register(GameID(preset), func() registry.Game {
			return New(preset)
		})
	}
}
