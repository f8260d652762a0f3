package breakout

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
	"github.com/vovakirdan/brick3d/internal/registry"
)

// World states
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the layouts, win after the last
	ModeEndless                  // Keep going, difficulty keeps scaling
)

// String returns the mode name used in IDs and storage.
func (m GameMode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// Registry IDs.
const (
	IDCampaign = "brick3d"
	IDEndless  = "brick3d_endless"
)

// Settings are read by Reset when a registry-created World loads its
// configuration.
type Settings struct {
	ConfigPath string
	Preset     config.DifficultyPreset
	StartLevel int // Overrides gameplay.start_level when > 0
	Logger     *log.Logger
	Sinks      Sinks
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Configure sets the settings used by New and NewEndless worlds.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Option customises a World.
type Option func(*World)

// WithSinks sets the scene, audio and particle sinks.
func WithSinks(s Sinks) Option {
	return func(w *World) { w.sinks = s.withDefaults() }
}

// WithStartLevel starts every run at level instead of the configured one.
func WithStartLevel(level int) Option {
	return func(w *World) { w.startLevel = level }
}

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

const effectKindCount = int(EffectShrink) + 1

// World is the running simulation. It owns every entity, implements
// GameContext for them and registry.Game for the platform.
type World struct {
	mode GameMode

	cfg      config.BreakoutConfig
	fixedCfg bool // cfg was supplied by the caller, Reset must not reload it
	runtime  core.RuntimeConfig

	startLevel int // Overrides cfg.Gameplay.StartLevel when > 0

	difficulty *config.DifficultyEngine
	generator  *LevelGenerator
	powerups   *PowerUpManager
	resolver   *CollisionResolver
	rng        *RNG
	mods       config.DifficultyModifiers

	sinks  Sinks
	logger *log.Logger

	paddle  *Paddle
	balls   []*Ball
	bricks  []*Brick
	pickups []*PowerUp
	lasers  []*Laser

	pendingBalls   []*Ball
	pendingPickups []*PowerUp
	pendingLasers  []*Laser

	state       string
	resumeState string // State to return to when unpausing
	score       int
	lives       int
	level       int
	tick        uint64
	elapsed     float64
	serveDelay  float64
	destroyed   int // Bricks destroyed this run
	reverse     EffectSet
	active      [effectKindCount]float64 // HUD mirror of running effects
	changes     []config.DifficultyChange
}

// New creates a campaign World configured from the package Settings.
func New(opts ...Option) *World {
	return newFromSettings(ModeCampaign, opts)
}

// NewEndless creates an endless World configured from the package Settings.
func NewEndless(opts ...Option) *World {
	return newFromSettings(ModeEndless, opts)
}

func newFromSettings(mode GameMode, opts []Option) *World {
	s := currentSettings()
	w := &World{mode: mode}
	w.sinks = s.Sinks.withDefaults()
	w.logger = s.Logger
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWorld creates a World with an explicit configuration. Reset keeps
// using cfg instead of loading one.
func NewWorld(mode GameMode, cfg config.BreakoutConfig, opts ...Option) *World {
	w := &World{
		mode:     mode,
		cfg:      cfg,
		fixedCfg: true,
		sinks:    Sinks{}.withDefaults(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ID returns the registry identifier.
func (w *World) ID() string {
	if w.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (w *World) Title() string {
	if w.mode == ModeEndless {
		return "Brick3D (Endless)"
	}
	return "Brick3D"
}

// Reset starts a new run.
func (w *World) Reset(runtime core.RuntimeConfig) {
	w.runtime = runtime

	if !w.fixedCfg {
		s := currentSettings()
		cfg, err := config.LoadBreakout(s.ConfigPath)
		if err != nil {
			w.logger.Warn("using default config", "err", err)
		}
		if s.Preset != "" {
			config.ApplyBreakoutPreset(&cfg, s.Preset)
		}
		if s.StartLevel > 0 {
			cfg.Gameplay.StartLevel = s.StartLevel
		}
		w.cfg = cfg
	}
	if w.startLevel > 0 {
		w.cfg.Gameplay.StartLevel = w.startLevel
	}

	w.difficulty = config.NewDifficultyEngine(w.cfg.Difficulty)
	w.generator = NewLevelGenerator(w.difficulty, &w.cfg)
	w.powerups = NewPowerUpManager(w.cfg.PowerUps.Weights)
	w.resolver = NewCollisionResolver()
	w.rng = NewRNG(runtime.Seed)

	w.removeAll()
	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.tick = 0
	w.elapsed = 0
	w.serveDelay = 0
	w.destroyed = 0
	w.reverse.Clear()
	w.active = [effectKindCount]float64{}

	start := max(w.cfg.Gameplay.StartLevel, 1)
	w.paddle = NewPaddle(&w.cfg, w.difficulty.Modifiers(start).PaddleWidth)
	w.sinks.Scene.Add(w.paddle)
	w.loadLevel(start)

	w.logger.Info("run started", "mode", w.mode, "level", start, "seed", runtime.Seed)
}

// removeAll takes every entity of a previous run out of the scene.
func (w *World) removeAll() {
	if w.paddle != nil {
		w.sinks.Scene.Remove(w.paddle)
	}
	w.clearBalls()
	w.clearBricks()
	w.clearProjectiles()
}

func (w *World) clearBalls() {
	for _, b := range w.balls {
		w.sinks.Scene.Remove(b)
	}
	w.balls = w.balls[:0]
	w.pendingBalls = w.pendingBalls[:0]
}

func (w *World) clearBricks() {
	for _, b := range w.bricks {
		w.sinks.Scene.Remove(b)
	}
	w.bricks = w.bricks[:0]
}

// clearProjectiles drops pickups and lasers, queued ones included.
func (w *World) clearProjectiles() {
	for _, p := range w.pickups {
		w.sinks.Scene.Remove(p)
	}
	for _, l := range w.lasers {
		w.sinks.Scene.Remove(l)
	}
	w.pickups = w.pickups[:0]
	w.lasers = w.lasers[:0]
	w.pendingPickups = w.pendingPickups[:0]
	w.pendingLasers = w.pendingLasers[:0]
}

// loadLevel builds a level's brick wall and serves a fresh ball. Paddle
// effects carry over between levels.
func (w *World) loadLevel(level int) {
	w.level = level
	w.mods = w.difficulty.Modifiers(level)

	w.clearBricks()
	for _, pl := range w.generator.CreateLevel(level, w.rng) {
		b := NewBrick(pl, &w.cfg, w.mods.BrickHitsMultiplier, w.rng)
		w.bricks = append(w.bricks, b)
		w.sinks.Scene.Add(b)
	}
	w.clearProjectiles()
	w.paddle.SetBaseWidth(w.mods.PaddleWidth)
	w.serveNewBall()

	w.changes = w.difficulty.Changes(level)
	for _, c := range w.changes {
		w.logger.Info(c.Message, "level", level, "field", c.Field)
	}
	w.logger.Debug("level loaded", "level", level, "layout", LayoutName(level), "bricks", len(w.bricks))
}

// serveNewBall replaces all balls with one attached to the paddle.
func (w *World) serveNewBall() {
	w.clearBalls()
	b := NewBall(&w.cfg, w.mods)
	b.AttachToPaddle(w.paddle)
	w.balls = append(w.balls, b)
	w.sinks.Scene.Add(b)
	w.state = StateServe
}

// Step advances the simulation by one tick.
func (w *World) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && w.finished() {
		w.Reset(w.runtime)
		return core.StepResult{State: w.State()}
	}

	if in.Has(core.ActionPause) {
		switch w.state {
		case StatePaused:
			w.state = w.resumeState
		case StatePlaying, StateServe:
			w.resumeState = w.state
			w.state = StatePaused
		}
	}

	if w.state == StatePaused || w.finished() {
		return core.StepResult{State: w.State()}
	}

	dt := w.runtime.DeltaTime()
	w.tick++
	w.elapsed += dt

	w.reverse.Tick(dt)
	w.tickActiveEffects(dt)
	w.applyInput(in)

	if w.state == StateServe {
		if w.serveDelay > 0 {
			w.serveDelay = max(0, w.serveDelay-dt)
		} else if in.Has(core.ActionLaunch) {
			w.launch()
		}
	}

	w.paddle.Update(dt)
	for _, b := range w.balls {
		b.Update(dt, w)
	}
	for _, b := range w.bricks {
		b.Update(dt)
	}
	for _, p := range w.pickups {
		p.Update(dt, w.cfg.Field.Floor, w.cfg.PowerUps.Lifetime)
	}
	for _, l := range w.lasers {
		l.Update(dt, w.cfg.Field.Ceiling)
	}

	w.resolver.Resolve(w, w.lasers, w.pickups)
	w.sweep()
	w.checkOutcome()

	return core.StepResult{State: w.State()}
}

func (w *World) finished() bool {
	return w.state == StateGameOver || w.state == StateWin
}

// applyInput turns left/right into a paddle target shift, mirrored while
// controls are reversed.
func (w *World) applyInput(in core.InputFrame) {
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir == 0 {
		return
	}
	if w.ControlsReversed() {
		dir = -dir
	}
	w.paddle.SetTargetX(w.paddle.TargetX + dir*w.cfg.Paddle.KeyNudge)
}

func (w *World) launch() {
	launched := false
	for _, b := range w.balls {
		if b.Launch(w.rng) {
			launched = true
		}
	}
	if launched {
		w.state = StatePlaying
		w.sinks.Audio.Play(SoundLaunch)
	}
}

func (w *World) tickActiveEffects(dt float64) {
	for i := range w.active {
		if w.active[i] > 0 {
			w.active[i] = max(0, w.active[i]-dt)
		}
	}
}

// sweep removes dead entities and then admits queued spawns. It is the only
// place where the entity lists change during a tick.
func (w *World) sweep() {
	scene := w.sinks.Scene

	var removed int
	w.bricks, removed = sweepEntities(w.bricks, func(b *Brick) bool { return !b.Destroyed }, scene)
	w.destroyed += removed
	w.balls, _ = sweepEntities(w.balls, func(b *Ball) bool { return !b.Lost }, scene)
	w.pickups, _ = sweepEntities(w.pickups, func(p *PowerUp) bool { return p.Alive() }, scene)
	w.lasers, _ = sweepEntities(w.lasers, func(l *Laser) bool { return !l.Dead }, scene)

	w.balls = admit(w.balls, w.pendingBalls, scene)
	w.pickups = admit(w.pickups, w.pendingPickups, scene)
	w.lasers = admit(w.lasers, w.pendingLasers, scene)
	w.pendingBalls = w.pendingBalls[:0]
	w.pendingPickups = w.pendingPickups[:0]
	w.pendingLasers = w.pendingLasers[:0]
}

func sweepEntities[T Entity](items []T, alive func(T) bool, scene Scene) ([]T, int) {
	kept := items[:0]
	removed := 0
	for _, it := range items {
		if alive(it) {
			kept = append(kept, it)
			continue
		}
		scene.Remove(it)
		removed++
	}
	clear(items[len(kept):])
	return kept, removed
}

func admit[T Entity](items, pending []T, scene Scene) []T {
	for _, it := range pending {
		scene.Add(it)
		items = append(items, it)
	}
	return items
}

// checkOutcome runs after the sweep. Lasers can clear a level while a ball
// is still being served, so the level check applies in both states.
func (w *World) checkOutcome() {
	if w.state != StatePlaying && w.state != StateServe {
		return
	}
	if w.BreakableRemaining() == 0 {
		w.levelComplete()
		return
	}
	if w.state == StatePlaying && len(w.balls) == 0 {
		w.loseLife()
	}
}

func (w *World) levelComplete() {
	w.logger.Info("level complete", "level", w.level, "score", w.score)
	w.sinks.Audio.Play(SoundLevelUp)

	next := w.level + 1
	if w.mode == ModeCampaign && next > LevelCount() {
		w.state = StateWin
		w.logger.Info("campaign won", "score", w.score)
		return
	}
	w.loadLevel(next)
}

func (w *World) loseLife() {
	w.lives--
	w.sinks.Audio.Play(SoundLifeLost)
	w.logger.Info("life lost", "lives", w.lives, "level", w.level)

	if w.lives <= 0 {
		w.lives = 0
		w.state = StateGameOver
		w.sinks.Audio.Play(SoundGameOver)
		w.logger.Info("game over", "score", w.score, "level", w.level)
		return
	}

	w.clearProjectiles()
	w.paddle.ClearEffects()
	w.reverse.Clear()
	w.active = [effectKindCount]float64{}
	w.serveNewBall()
	w.serveDelay = w.cfg.Gameplay.ServeDelay
}

// State returns the coarse game state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		Level:    w.level,
		Lives:    w.lives,
		GameOver: w.finished(),
		Won:      w.state == StateWin,
		Paused:   w.state == StatePaused,
	}
}

// Config implements GameContext.
func (w *World) Config() *config.BreakoutConfig { return &w.cfg }

// Rand implements GameContext.
func (w *World) Rand() *RNG { return w.rng }

// Balls implements GameContext.
func (w *World) Balls() []*Ball { return w.balls }

// Bricks implements GameContext.
func (w *World) Bricks() []*Brick { return w.bricks }

// Paddle implements GameContext.
func (w *World) Paddle() *Paddle { return w.paddle }

// AddScore implements GameContext.
func (w *World) AddScore(points int) { w.score += points }

// AddLife implements GameContext.
func (w *World) AddLife() { w.lives++ }

// AddActiveEffect records an effect for the HUD.
func (w *World) AddActiveEffect(kind EffectKind, duration float64) {
	if int(kind) < 0 || int(kind) >= effectKindCount {
		return
	}
	w.active[kind] = duration
}

// ReverseControls mirrors left and right for duration seconds. A running
// reversal has its timer restarted.
func (w *World) ReverseControls(duration float64) {
	w.reverse.Activate(EffectReverse, duration, EffectReset, nil)
	w.AddActiveEffect(EffectReverse, duration)
}

// SpawnBall implements GameContext.
func (w *World) SpawnBall(b *Ball) { w.pendingBalls = append(w.pendingBalls, b) }

// DropPowerUp queues a pickup of a random kind at pos.
func (w *World) DropPowerUp(pos core.Vec3) {
	kind := w.powerups.RandomKind(w.rng)
	w.pendingPickups = append(w.pendingPickups, NewPowerUp(kind, pos, w.cfg.PowerUps))
}

// SpawnLaser implements GameContext.
func (w *World) SpawnLaser(l *Laser) { w.pendingLasers = append(w.pendingLasers, l) }

// PlaySound implements GameContext.
func (w *World) PlaySound(s Sound) { w.sinks.Audio.Play(s) }

// Burst implements GameContext.
func (w *World) Burst(pos core.Vec3, kind BrickKind) { w.sinks.Particles.Burst(pos, kind) }

// Mode returns the game mode.
func (w *World) Mode() GameMode { return w.mode }

// Phase returns the state name (serve, playing, paused, gameover, win).
func (w *World) Phase() string { return w.state }

// Level returns the current level number.
func (w *World) Level() int { return w.level }

// Tick returns the number of simulated ticks.
func (w *World) Tick() uint64 { return w.tick }

// Elapsed returns simulated seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// ServeDelay returns the seconds until launch is accepted.
func (w *World) ServeDelay() float64 { return w.serveDelay }

// BricksDestroyed returns the number of bricks destroyed this run.
func (w *World) BricksDestroyed() int { return w.destroyed }

// Pickups returns the live power-ups.
func (w *World) Pickups() []*PowerUp { return w.pickups }

// Lasers returns the live lasers.
func (w *World) Lasers() []*Laser { return w.lasers }

// Changes returns the difficulty changes announced for the current level.
func (w *World) Changes() []config.DifficultyChange { return w.changes }

// ControlsReversed reports whether left and right are mirrored.
func (w *World) ControlsReversed() bool { return w.reverse.Active(EffectReverse) }

// BreakableRemaining counts live bricks that must be cleared.
func (w *World) BreakableRemaining() int {
	n := 0
	for _, b := range w.bricks {
		if !b.Destroyed && b.Breakable() {
			n++
		}
	}
	return n
}

// ActiveEffect is a HUD entry.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining float64
}

// ActiveEffects lists running effects in kind order.
func (w *World) ActiveEffects() []ActiveEffect {
	var out []ActiveEffect
	for i, rem := range w.active {
		if rem > 0 {
			out = append(out, ActiveEffect{Kind: EffectKind(i), Remaining: rem})
		}
	}
	return out
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}
