package geometry

import "github.com/go-gl/mathgl/mgl32"

// Duck parts, usable with SetPartColor.
const (
	DuckEyes Part = iota
	DuckBeak
	DuckHead
	DuckBody
)

// DuckHitRadius is the collision radius of a duck target.
const DuckHitRadius = 6

// DefaultDuckColors are the eye, beak, head and body colors.
var DefaultDuckColors = [4]RGB{
	{20, 20, 20},
	{255, 127, 0},
	{180, 180, 180},
	{255, 255, 255},
}

// duckTriangles is a flat side-on duck silhouette, nine floats per triangle,
// grouped by part in duckPartSizes order.
var duckTriangles = []float32{
	// eyes
	2.5, 2.2, 0.05, 2.75, 2.1, 0.05, 3, 2.25, 0.05,
	2.5, 2.2, 0.05, 2.79, 2.34, 0.05, 3, 2.25, 0.05,
	2.5, 2.2, -0.05, 2.75, 2.1, -0.05, 3, 2.25, -0.05,
	2.5, 2.2, -0.05, 2.79, 2.34, -0.05, 3, 2.25, -0.05,
	// beak
	0.9, 1.3, 0, 1, 1, 0, 1.3, 1.5, 0,
	1, 1, 0, 1.3, 1.5, 0, 1.75, 1.05, 0,
	1.3, 1.5, 0, 1.75, 1.05, 0, 1.9, 1.85, 0,
	1.75, 1.05, 0, 1.9, 1.85, 0, 2.1, 2.1, 0,
	1.75, 1.05, 0, 2.1, 2.1, 0, 2.37, 1.16, 0,
	// head
	2.1, 2.1, 0, 2.37, 1.16, 0, 2.6, 2.6, 0,
	2.37, 1.16, 0, 2.6, 2.6, 0, 3, 1.05, 0,
	2.6, 2.6, 0, 3, 1.05, 0, 3, 2.7, 0,
	3, 1.05, 0, 3, 2.7, 0, 4.2, 1.05, 0,
	3, 2.7, 0, 4.2, 1.05, 0, 3.9, 2.4, 0,
	4.2, 1.05, 0, 3.9, 2.4, 0, 5.6, 1.1, 0,
	3.9, 2.4, 0, 5.6, 1.1, 0, 4.4, 2.15, 0,
	5.6, 1.1, 0, 4.4, 2.15, 0, 4.7, 2.05, 0,
	5.6, 1.1, 0, 4.7, 2.05, 0, 5.0, 2.1, 0,
	5.6, 1.1, 0, 5.0, 2.1, 0, 6.0, 2.25, 0,
	// body
	5.6, 1.1, 0, 6.0, 2.25, 0, 5.5, -1.15, 0,
	6.0, 2.25, 0, 5.5, -1.15, 0, 5.28, -3, 0,
	6.0, 2.25, 0, 5.28, -3, 0, 7, -3, 0,
	5.28, -3, 0, 7, -3, 0, 5.05, -4.27, 0,
	7, -3, 0, 5.05, -4.27, 0, 4.7, -5.25, 0,
	7, -3, 0, 4.7, -5.25, 0, 5, -5.27, 0,
	7, -3, 0, 5, -5.27, 0, 5.25, -5.22, 0,
	7, -3, 0, 5.25, -5.22, 0, 5.8, -5, 0,
	7, -3, 0, 5.8, -5, 0, 6.25, -4.85, 0,
	7, -3, 0, 6.25, -4.85, 0, 7, -4, 0,
	7, -3, 0, 7, -4, 0, 7.5, -3, 0,
	7, -3, 0, 7.5, -3, 0, 8, -2, 0,
	7, -3, 0, 8, -2, 0, 8.25, -1, 0,
	7, -3, 0, 6, 2.25, 0, 7, 2.3, 0,
	7, -3, 0, 7, 2.3, 0, 8.25, -1, 0,
	7, 2.3, 0, 8.25, -1, 0, 8, 2.25, 0,
	8.25, -1, 0, 8, 2.25, 0, 8.53, -0.5, 0,
	8, 2.25, 0, 8.53, -0.5, 0, 9.2, 1.95, 0,
	8.53, -0.5, 0, 9.2, 1.95, 0, 9.1, -0.54, 0,
	9.2, 1.95, 0, 9.1, -0.54, 0, 9.9, -0.46, 0,
	9.2, 1.95, 0, 9.9, -0.46, 0, 10.5, 1.4, 0,
	9.9, -0.46, 0, 10.5, 1.4, 0, 10.8, 0, 0,
	10.5, 1.4, 0, 10.8, 0, 0, 11.3, 0.9, 0,
	10.8, 0, 0, 11.3, 0.9, 0, 11.37, 0.07, 0,
	11.3, 0.9, 0, 11.37, 0.07, 0, 11.6, 0.7, 0,
	11.37, 0.07, 0, 11.6, 0.7, 0, 12, 0.04, 0,
	11.6, 0.7, 0, 12, 0.04, 0, 12, 0.6, 0,
	12, 0.04, 0, 12, 0.6, 0, 12.6, 0.5, 0,
	12, 0.04, 0, 12.6, 0.5, 0, 12.46, 0.04, 0,
	12.6, 0.5, 0, 12.46, 0.04, 0, 12.75, 0.16, 0,
	12.6, 0.5, 0, 12.75, 0.16, 0, 13.0, 0.4, 0,
	12.75, 0.16, 0, 13.0, 0.4, 0, 13.3, 0.25, 0,
}

// duckPartSizes is the number of consecutive triangles in each part.
var duckPartSizes = [4]int{4, 5, 10, 32}

// NewDuck builds the duck target mesh.
func NewDuck() *Mesh {
	var b builder
	t := 0
	for p, n := range duckPartSizes {
		for i := 0; i < n; i++ {
			b.triangle(Part(p), duckTriangles[t*9:t*9+9]...)
			t++
		}
	}

	colors := DefaultDuckColors
	m := b.build(colors[:])
	m.CenterOffset = mgl32.Vec3{-7.2, -0.75, 0}
	m.HitRadius = DuckHitRadius
	return m
}
