package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 2000.0
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	Distance float32
	Hit      bool
}

// RaycastSphere intersects the ray start + t*direction with a sphere and
// returns the nearest hit with minDist <= t <= maxDist. direction must be
// normalized. A ray starting inside the sphere hits its far side.
func RaycastSphere(start, direction mgl32.Vec3, minDist, maxDist float32, center mgl32.Vec3, radius float32) RaycastResult {
	oc := start.Sub(center)
	b := float64(oc.Dot(direction))
	c := float64(oc.Dot(oc)) - float64(radius)*float64(radius)
	disc := b*b - c
	if disc < 0 {
		return RaycastResult{}
	}

	sq := math.Sqrt(disc)
	for _, t := range [2]float64{-b - sq, -b + sq} {
		if t >= float64(minDist) && t <= float64(maxDist) {
			return RaycastResult{Distance: float32(t), Hit: true}
		}
	}
	return RaycastResult{}
}
