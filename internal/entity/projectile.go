package entity

import "github.com/go-gl/mathgl/mgl32"

// ProjectileState is where a projectile is in its life.
type ProjectileState int

const (
	Flying ProjectileState = iota
	Expired
	Impacted
)

func (s ProjectileState) String() string {
	switch s {
	case Flying:
		return "flying"
	case Expired:
		return "expired"
	case Impacted:
		return "impacted"
	}
	return "unknown"
}

// Projectile moves in a straight line until its lifetime runs out or it hits
// a target.
type Projectile struct {
	// Direction is the displacement per second, subtracted from the
	// translation. Speed is already folded in.
	Direction         mgl32.Vec3
	Speed             float32
	RemainingLifetime float32
	State             ProjectileState
}

// NewProjectile aims a projectile along forward.
func NewProjectile(forward mgl32.Vec3, speed, lifetime float32) *Projectile {
	return &Projectile{
		Direction:         forward.Mul(-speed),
		Speed:             speed,
		RemainingLifetime: lifetime,
	}
}

// Age consumes dt of lifetime and reports whether the projectile expired.
func (p *Projectile) Age(dt float32) bool {
	if p.State != Flying {
		return p.State == Expired
	}
	p.RemainingLifetime -= dt
	if p.RemainingLifetime <= 0 {
		p.State = Expired
		return true
	}
	return false
}

// Impact marks the projectile as having hit a target.
func (p *Projectile) Impact() { p.State = Impacted }

// Advance moves e by dt seconds of travel.
func (p *Projectile) Advance(e *Entity, dt float32) {
	e.Translation = e.Translation.Sub(p.Direction.Mul(dt))
}
