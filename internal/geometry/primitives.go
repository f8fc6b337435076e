package geometry

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultTriangleColor is the flat gray a new triangle is drawn with.
var DefaultTriangleColor = RGB{50, 50, 50}

// NewTriangle builds a single triangle with its apex at the origin and its
// base spanning -size..+size on X at y = -size.
func NewTriangle(size float32) *Mesh {
	var b builder
	b.triangle(0,
		0, 0, 0,
		-size, -size, 0,
		size, -size, 0,
	)
	m := b.build([]RGB{DefaultTriangleColor})
	m.CenterOffset = mgl32.Vec3{0, 50, 0}
	return m
}

// Cuboid faces, usable with SetPartColor.
const (
	FaceFront Part = iota
	FaceBack
	FaceRight
	FaceLeft
	FaceBottom
	FaceTop
)

// CuboidHitScale inflates the half edge so the collision sphere reaches
// further towards the corners.
const CuboidHitScale = 1.18

// DefaultCuboidColors are the per-face colors in Face order.
var DefaultCuboidColors = [6]RGB{
	{190, 30, 30},
	{20, 190, 20},
	{0, 50, 190},
	{180, 20, 180},
	{200, 200, 0},
	{0, 180, 180},
}

// NewCuboid builds an axis-aligned cube spanning (0,0,0)..(edge,edge,edge),
// re-centered through its CenterOffset.
func NewCuboid(edge float32) *Mesh {
	e := edge
	var b builder

	b.triangle(FaceFront, 0, 0, 0, 0, e, 0, e, 0, 0)
	b.triangle(FaceFront, 0, e, 0, e, 0, 0, e, e, 0)

	b.triangle(FaceBack, 0, 0, e, 0, e, e, e, 0, e)
	b.triangle(FaceBack, 0, e, e, e, 0, e, e, e, e)

	b.triangle(FaceRight, e, 0, 0, e, e, 0, e, 0, e)
	b.triangle(FaceRight, e, e, 0, e, 0, e, e, e, e)

	b.triangle(FaceLeft, 0, 0, 0, 0, e, 0, 0, 0, e)
	b.triangle(FaceLeft, 0, e, 0, 0, 0, e, 0, e, e)

	b.triangle(FaceBottom, e, 0, 0, 0, 0, 0, e, 0, e)
	b.triangle(FaceBottom, 0, 0, 0, e, 0, e, 0, 0, e)

	b.triangle(FaceTop, e, e, 0, 0, e, 0, e, e, e)
	b.triangle(FaceTop, 0, e, 0, e, e, e, 0, e, e)

	colors := DefaultCuboidColors
	m := b.build(colors[:])
	half := edge / 2
	m.CenterOffset = mgl32.Vec3{-half, -half, -half}
	m.HitRadius = CuboidHitScale * half
	return m
}

// Cylinder parts, usable with SetPartColor.
const (
	CylinderBottom Part = iota
	CylinderTop
	CylinderSide
)

// MinCylinderSides is the smallest number of radial segments a cylinder
// is built with.
const MinCylinderSides = 3

// DefaultCylinderColors are the bottom, top and side colors.
var DefaultCylinderColors = [3]RGB{
	{200, 200, 200},
	{100, 100, 100},
	{70, 70, 70},
}

// ClampSides returns sides raised to MinCylinderSides. The error is non-nil
// when clamping happened.
func ClampSides(sides int) (int, error) {
	if sides < MinCylinderSides {
		return MinCylinderSides, fmt.Errorf("cylinder sides %d, using %d: %w", sides, MinCylinderSides, ErrInvalidShapeParameter)
	}
	return sides, nil
}

// NewCylinder builds a prism of sides radial segments around the Y axis,
// from a bottom disk at y = 0 to a top disk at y = height. Each segment
// emits a bottom fan triangle, a top fan triangle and two side triangles.
func NewCylinder(sides int, radius, height float32) *Mesh {
	sides, err := ClampSides(sides)
	if err != nil {
		log.Printf("geometry: %v", err)
	}

	step := 2 * math.Pi / float64(sides)
	var b builder
	prevX, prevZ := radius, float32(0)
	for i := 1; i <= sides; i++ {
		s, c := math.Sincos(step * float64(i))
		x, z := float32(c)*radius, float32(s)*radius

		b.triangle(CylinderBottom,
			0, 0, 0,
			prevX, 0, prevZ,
			x, 0, z)
		b.triangle(CylinderTop,
			0, height, 0,
			prevX, height, prevZ,
			x, height, z)
		b.triangle(CylinderSide,
			prevX, 0, prevZ,
			prevX, height, prevZ,
			x, 0, z)
		b.triangle(CylinderSide,
			prevX, height, prevZ,
			x, 0, z,
			x, height, z)

		prevX, prevZ = x, z
	}

	colors := DefaultCylinderColors
	m := b.build(colors[:])
	m.HitRadius = radius
	return m
}
