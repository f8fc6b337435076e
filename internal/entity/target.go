package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultWanderSpeed = 0.7
	DefaultAmplitude   = 1.5
)

// Target drifts on a looping path and faces the way it is heading.
type Target struct {
	WanderPhase float32
	WanderSpeed float32
	Amplitude   float32
}

// NewTarget returns a target with the default wander tuning.
func NewTarget() *Target {
	return &Target{
		WanderSpeed: DefaultWanderSpeed,
		Amplitude:   DefaultAmplitude,
	}
}

// Wander advances the phase by dt and moves e one step along the path.
// The step itself is not scaled by dt.
func (t *Target) Wander(e *Entity, dt float32) {
	t.WanderPhase += dt * t.WanderSpeed
	s, c := math.Sincos(float64(t.WanderPhase))
	dx := float32(c) * t.Amplitude
	dy := float32(s) / 3

	switch {
	case dx > 0 && e.Rotation.Y() != math.Pi:
		e.Rotation[1] = math.Pi
	case dx < 0 && e.Rotation.Y() != 0:
		e.Rotation[1] = 0
	}

	e.Translation = e.Translation.Add(mgl32.Vec3{dx, dy, 0})
}
