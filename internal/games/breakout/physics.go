package breakout

import (
	"github.com/vovakirdan/brick3d/internal/core"
)

// CollisionResolver runs the per-tick contact pass after all entities have
// moved. It mutates entities through their own methods and reports score
// through the context; it never adds or removes entities directly.
type CollisionResolver struct{}

// NewCollisionResolver creates a resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{}
}

// Resolve handles ball, laser and pickup contacts for one tick, then fires
// the paddle laser if it is ready.
func (r *CollisionResolver) Resolve(ctx GameContext, lasers []*Laser, pickups []*PowerUp) {
	paddle := ctx.Paddle()

	for _, ball := range ctx.Balls() {
		if !ball.Free() {
			continue
		}
		if r.ballPaddle(ball, paddle) {
			ctx.PlaySound(SoundPaddle)
			continue
		}
		r.ballBricks(ctx, ball)
	}

	for _, l := range lasers {
		r.laserBricks(ctx, l)
	}

	paddleBox := paddle.Box()
	for _, p := range pickups {
		if p.Alive() && paddleBox.Intersects(p.Box()) {
			p.Collect(ctx)
		}
	}

	if paddle.HasLaser() && paddle.LaserCooldown() <= 0 {
		paddle.FireLaser(ctx)
	}
}

// ballPaddle bounces a descending ball off the paddle.
func (r *CollisionResolver) ballPaddle(ball *Ball, paddle *Paddle) bool {
	if ball.Vel.Y >= 0 {
		return false
	}
	if !paddle.Box().IntersectsSphere(ball.Pos, ball.Radius) {
		return false
	}
	ball.OnPaddleHit(paddle)
	return true
}

// ballBricks handles at most one brick contact per ball per tick.
func (r *CollisionResolver) ballBricks(ctx GameContext, ball *Ball) {
	ballBox := ball.Box()
	for _, brick := range ctx.Bricks() {
		if brick.Destroyed {
			continue
		}
		box := brick.Box()
		if !box.Intersects(ballBox) {
			continue
		}

		n := box.NearestFaceNormal(box.ClosestPoint(ball.Pos))
		pushOut(ball, box, n)
		ball.OnBrickHit(n, ctx.Rand())
		if brick.Hit(ctx) {
			ctx.AddScore(brick.Points())
		}
		return
	}
}

// laserBricks damages the first live brick the beam overlaps and spends
// the beam.
func (r *CollisionResolver) laserBricks(ctx GameContext, l *Laser) {
	if l.Dead {
		return
	}
	beam := l.Box()
	for _, brick := range ctx.Bricks() {
		if brick.Destroyed || !brick.Box().Intersects(beam) {
			continue
		}
		if brick.Hit(ctx) {
			ctx.AddScore(brick.Points())
		}
		l.Dead = true
		return
	}
}

// pushOut places the ball just outside the face with normal n.
func pushOut(ball *Ball, box core.Box, n core.Vec3) {
	lo, hi := box.Min(), box.Max()
	r := ball.Radius
	switch {
	case n.X < 0:
		ball.Pos.X = lo.X - r
	case n.X > 0:
		ball.Pos.X = hi.X + r
	case n.Y < 0:
		ball.Pos.Y = lo.Y - r
	case n.Y > 0:
		ball.Pos.Y = hi.Y + r
	case n.Z < 0:
		ball.Pos.Z = lo.Z - r
	case n.Z > 0:
		ball.Pos.Z = hi.Z + r
	}
}
