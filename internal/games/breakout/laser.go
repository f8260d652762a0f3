package breakout

import "github.com/vovakirdan/brick3d/internal/core"

// Laser beam dimensions.
const (
	laserWidth  = 0.15
	laserLength = 0.6
)

// Laser is a projectile fired upward from the paddle.
type Laser struct {
	Pos   core.Vec3
	Speed float64
	Dead  bool
}

// NewLaser creates a laser whose lower end sits at origin.
func NewLaser(origin core.Vec3, speed float64) *Laser {
	return &Laser{
		Pos:   origin.Add(core.V3(0, laserLength/2, 0)),
		Speed: speed,
	}
}

// EntityType implements Entity.
func (l *Laser) EntityType() string { return "laser" }

// Position implements Entity.
func (l *Laser) Position() core.Vec3 { return l.Pos }

// Box returns the beam's bounding box.
func (l *Laser) Box() core.Box {
	return core.NewBox(l.Pos, laserWidth, laserLength, laserWidth)
}

// Update moves the laser up and kills it past the ceiling.
func (l *Laser) Update(dt, ceiling float64) {
	if l.Dead {
		return
	}
	l.Pos.Y += l.Speed * dt
	if l.Pos.Y-laserLength/2 > ceiling {
		l.Dead = true
	}
}
