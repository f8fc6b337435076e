// Package physics has the sphere tests collision is built on.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl32.Vec3) float32 {
	dx := float64(a.X() - b.X())
	dy := float64(a.Y() - b.Y())
	dz := float64(a.Z() - b.Z())
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// SpheresOverlap reports whether two spheres touch or intersect. Touching
// exactly at the surface counts.
func SpheresOverlap(a mgl32.Vec3, ra float32, b mgl32.Vec3, rb float32) bool {
	return Distance(a, b) <= ra+rb
}
