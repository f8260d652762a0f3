package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick3d/internal/core"
)

// Entity is anything the simulation hands to a Scene.
type Entity interface {
	EntityType() string
	Position() core.Vec3
}

// Scene receives entity lifecycle notifications. Add and Remove are called
// at most once per entity, during the end-of-tick sweep.
type Scene interface {
	Add(e Entity)
	Remove(e Entity)
}

// Sound names a one-shot audio cue.
type Sound string

const (
	SoundLaunch     Sound = "launch"
	SoundPaddle     Sound = "paddle"
	SoundWall       Sound = "wall"
	SoundBrickHit   Sound = "brick_hit"
	SoundBrickBreak Sound = "brick_break"
	SoundExplosion  Sound = "explosion"
	SoundWarp       Sound = "warp"
	SoundPowerUp    Sound = "powerup"
	SoundLaser      Sound = "laser"
	SoundLifeLost   Sound = "life_lost"
	SoundLevelUp    Sound = "level_up"
	SoundGameOver   Sound = "game_over"
)

// Audio plays sound cues. Implementations must not block the tick.
type Audio interface {
	Play(s Sound)
}

// Particles spawns a visual burst where a brick was destroyed.
type Particles interface {
	Burst(pos core.Vec3, kind BrickKind)
}

// Sinks bundles the presentation collaborators of a World. Nil fields are
// replaced by no-op implementations.
type Sinks struct {
	Scene     Scene
	Audio     Audio
	Particles Particles
}

func (s Sinks) withDefaults() Sinks {
	if s.Scene == nil {
		s.Scene = nopScene{}
	}
	if s.Audio == nil {
		s.Audio = nopAudio{}
	}
	if s.Particles == nil {
		s.Particles = nopParticles{}
	}
	return s
}

type nopScene struct{}

func (nopScene) Add(Entity)    {}
func (nopScene) Remove(Entity) {}

type nopAudio struct{}

func (nopAudio) Play(Sound) {}

type nopParticles struct{}

func (nopParticles) Burst(core.Vec3, BrickKind) {}

// LogScene traces scene, audio and particle traffic to a logger at debug
// level. It implements Scene, Audio and Particles.
type LogScene struct {
	Logger *log.Logger
}

// NewLogScene creates a tracing sink. A nil logger uses the default logger.
func NewLogScene(logger *log.Logger) *LogScene {
	if logger == nil {
		logger = log.Default()
	}
	return &LogScene{Logger: logger.WithPrefix("scene")}
}

// Add logs an entity entering the scene.
func (s *LogScene) Add(e Entity) {
	p := e.Position()
	s.Logger.Debug("add", "type", e.EntityType(), "x", p.X, "y", p.Y)
}

// Remove logs an entity leaving the scene.
func (s *LogScene) Remove(e Entity) {
	p := e.Position()
	s.Logger.Debug("remove", "type", e.EntityType(), "x", p.X, "y", p.Y)
}

// Play logs a sound cue.
func (s *LogScene) Play(snd Sound) {
	s.Logger.Debug("sound", "cue", string(snd))
}

// Burst logs a particle burst.
func (s *LogScene) Burst(pos core.Vec3, kind BrickKind) {
	s.Logger.Debug("burst", "brick", kind.String(), "x", pos.X, "y", pos.Y)
}
