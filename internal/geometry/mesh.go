// Package geometry builds the procedural meshes entities are drawn with.
//
// Every mesh is a flat triangle list: Vertices holds three float32 per
// vertex and Colors one RGB triple per vertex, in the same order. Colors is
// never edited directly; it is derived from per-part colors, so recoloring a
// part always regenerates the whole buffer.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidShapeParameter reports a shape parameter that had to be clamped.
var ErrInvalidShapeParameter = errors.New("geometry: invalid shape parameter")

// ErrUnknownPart is returned when recoloring a part the mesh does not have.
var ErrUnknownPart = errors.New("geometry: unknown part")

// RGB is an 8-bit color.
type RGB [3]uint8

// ClampRGB builds a color from integer components, saturating at 0 and 255.
func ClampRGB(r, g, b int) RGB {
	return RGB{clampByte(r), clampByte(g), clampByte(b)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Part indexes a color group within a mesh.
type Part int

// Mesh is local-space geometry plus the collision data derived from it.
type Mesh struct {
	Vertices []float32
	Colors   []uint8

	// CenterOffset is applied to vertices before scale, rotation and
	// translation so that the entity's origin sits at the geometric center.
	CenterOffset mgl32.Vec3
	// HitRadius is the collision sphere radius in local units. It does not
	// follow the entity's scale.
	HitRadius float32

	partColors   []RGB
	trianglePart []Part
	revision     uint64
}

// builder accumulates triangles and their part assignment.
type builder struct {
	vertices []float32
	parts    []Part
}

func (b *builder) triangle(p Part, v ...float32) {
	if len(v) != 9 {
		panic(fmt.Sprintf("geometry: triangle needs 9 components, got %d", len(v)))
	}
	b.vertices = append(b.vertices, v...)
	b.parts = append(b.parts, p)
}

func (b *builder) build(colors []RGB) *Mesh {
	m := &Mesh{
		Vertices:     b.vertices,
		HitRadius:    1,
		partColors:   colors,
		trianglePart: b.parts,
	}
	m.refresh()
	return m
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Vertices) / 9 }

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / 3 }

// PartColor returns the stored color of part p.
func (m *Mesh) PartColor(p Part) (RGB, error) {
	if p < 0 || int(p) >= len(m.partColors) {
		return RGB{}, fmt.Errorf("part %d of %d: %w", p, len(m.partColors), ErrUnknownPart)
	}
	return m.partColors[p], nil
}

// SetPartColor recolors one part and regenerates the color buffer.
func (m *Mesh) SetPartColor(p Part, c RGB) error {
	if p < 0 || int(p) >= len(m.partColors) {
		return fmt.Errorf("part %d of %d: %w", p, len(m.partColors), ErrUnknownPart)
	}
	m.partColors[p] = c
	m.refresh()
	return nil
}

// SetColor recolors every part.
func (m *Mesh) SetColor(c RGB) {
	for i := range m.partColors {
		m.partColors[i] = c
	}
	m.refresh()
}

// Revision changes every time the color buffer is regenerated, so GPU
// copies can tell when to re-upload.
func (m *Mesh) Revision() uint64 { return m.revision }

// refresh rebuilds Colors from the part colors in triangle order.
func (m *Mesh) refresh() {
	m.revision++
	if cap(m.Colors) >= len(m.Vertices) {
		m.Colors = m.Colors[:len(m.Vertices)]
	} else {
		m.Colors = make([]uint8, len(m.Vertices))
	}
	for t, p := range m.trianglePart {
		c := m.partColors[p]
		base := t * 9
		for v := 0; v < 3; v++ {
			copy(m.Colors[base+v*3:base+v*3+3], c[:])
		}
	}
}
