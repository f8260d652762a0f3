package breakout

import (
	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// GameContext is the view of the running game handed to entities and the
// collision resolver. Spawns are queued and become visible after the
// end-of-tick sweep; list accessors return the live entities only.
type GameContext interface {
	Config() *config.BreakoutConfig
	Rand() *RNG

	Balls() []*Ball
	Bricks() []*Brick
	Paddle() *Paddle

	AddScore(points int)
	AddLife()
	AddActiveEffect(kind EffectKind, duration float64)
	ReverseControls(duration float64)

	SpawnBall(b *Ball)
	DropPowerUp(pos core.Vec3)
	SpawnLaser(l *Laser)

	PlaySound(s Sound)
	Burst(pos core.Vec3, kind BrickKind)
}
