// Package entity holds the transformable scene objects and their optional
// projectile and target behaviors.
package entity

import (
	"duckhunt/internal/geometry"
	"duckhunt/internal/m4"

	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies an entity for its whole life. IDs are never reused. The
// zero ID marks an entity that has not been spawned yet.
type ID uint64

// Entity is a mesh placed in the scene. Behaviors are attached by setting
// Projectile or Target; an entity with neither is static scenery.
type Entity struct {
	ID          ID
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3 // radians, applied X then Y then Z
	Scale       mgl32.Vec3
	Mesh        *geometry.Mesh

	Projectile *Projectile
	Target     *Target
}

// New wraps mesh in an entity at the origin with unit scale.
func New(mesh *geometry.Mesh) *Entity {
	return &Entity{
		Scale: mgl32.Vec3{1, 1, 1},
		Mesh:  mesh,
	}
}

// WorldMatrix maps local vertices to world space: the center offset is
// applied first, then scale, rotation about X, Y and Z, and translation.
func (e *Entity) WorldMatrix() mgl32.Mat4 {
	m := m4.Identity()
	if e.Mesh != nil {
		m = m4.Translate(m, e.Mesh.CenterOffset)
	}
	m = m4.Scale(m, e.Scale)
	m = m4.XRotate(m, e.Rotation.X())
	m = m4.YRotate(m, e.Rotation.Y())
	m = m4.ZRotate(m, e.Rotation.Z())
	return m4.Translate(m, e.Translation)
}

// VertexBuffer returns the local-space triangle list.
func (e *Entity) VertexBuffer() []float32 {
	if e.Mesh == nil {
		return nil
	}
	return e.Mesh.Vertices
}

// ColorBuffer returns one RGB triple per vertex.
func (e *Entity) ColorBuffer() []uint8 {
	if e.Mesh == nil {
		return nil
	}
	return e.Mesh.Colors
}

// HitRadius is the collision sphere radius. Scale does not affect it.
func (e *Entity) HitRadius() float32 {
	if e.Mesh == nil {
		return 0
	}
	return e.Mesh.HitRadius
}

// IsTarget reports whether e carries target behavior.
func (e *Entity) IsTarget() bool { return e.Target != nil }

// IsProjectile reports whether e carries projectile behavior.
func (e *Entity) IsProjectile() bool { return e.Projectile != nil }
