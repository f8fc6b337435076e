package entity

import (
	"math"
	"testing"

	"duckhunt/internal/geometry"
	"duckhunt/internal/m4"

	"github.com/go-gl/mathgl/mgl32"
)

func closeTo(a, b []float32, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func TestNewDefaults(t *testing.T) {
	e := New(geometry.NewCuboid(1))
	if e.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", e.Scale)
	}
	if e.IsTarget() || e.IsProjectile() {
		t.Errorf("Expected plain entity, got target=%v projectile=%v", e.IsTarget(), e.IsProjectile())
	}
	if len(e.VertexBuffer()) != 108 || len(e.ColorBuffer()) != 108 {
		t.Errorf("Expected 108-element buffers, got %d and %d", len(e.VertexBuffer()), len(e.ColorBuffer()))
	}
}

func TestCuboidCenterMapsToTranslation(t *testing.T) {
	const edge = 4
	e := New(geometry.NewCuboid(edge))
	e.Translation = mgl32.Vec3{10, -3, 7}

	center := mgl32.Vec3{edge / 2, edge / 2, edge / 2}
	got := m4.TransformPoint(e.WorldMatrix(), center)
	if !closeTo(got[:], e.Translation[:], 1e-4) {
		t.Errorf("Expected center at %v, got %v", e.Translation, got)
	}

	// Rotation and scale pivot around the center, so it stays put.
	e.Rotation = mgl32.Vec3{0.4, 1.1, -0.3}
	e.Scale = mgl32.Vec3{2, 3, 0.5}
	got = m4.TransformPoint(e.WorldMatrix(), center)
	if !closeTo(got[:], e.Translation[:], 1e-4) {
		t.Errorf("Expected center at %v after rotation, got %v", e.Translation, got)
	}
}

func TestWorldMatrixOrder(t *testing.T) {
	e := New(geometry.NewDuck())
	e.Translation = mgl32.Vec3{5, 20, -40}
	e.Rotation = mgl32.Vec3{0.3, -0.8, 1.2}
	e.Scale = mgl32.Vec3{1, 1.3, 2}

	c := e.Mesh.CenterOffset
	want := mgl32.Translate3D(e.Translation[0], e.Translation[1], e.Translation[2]).
		Mul4(mgl32.HomogRotate3DZ(e.Rotation[2])).
		Mul4(mgl32.HomogRotate3DY(e.Rotation[1])).
		Mul4(mgl32.HomogRotate3DX(e.Rotation[0])).
		Mul4(mgl32.Scale3D(e.Scale[0], e.Scale[1], e.Scale[2])).
		Mul4(mgl32.Translate3D(c[0], c[1], c[2]))

	got := e.WorldMatrix()
	if !closeTo(got[:], want[:], 1e-3) {
		t.Errorf("WorldMatrix:\n%s expected\n%s", m4.Sprint(got), m4.Sprint(want))
	}
}

func TestWorldMatrixScaleBeforeTranslate(t *testing.T) {
	e := New(geometry.NewTriangle(1))
	e.Mesh.CenterOffset = mgl32.Vec3{}
	e.Translation = mgl32.Vec3{100, 0, 0}
	e.Scale = mgl32.Vec3{2, 2, 2}

	got := m4.TransformPoint(e.WorldMatrix(), mgl32.Vec3{1, 0, 0})
	if want := (mgl32.Vec3{102, 0, 0}); !closeTo(got[:], want[:], 1e-4) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestHitRadiusIgnoresScale(t *testing.T) {
	e := New(geometry.NewCylinder(8, 0.5, 2))
	e.Scale = mgl32.Vec3{10, 10, 10}
	if e.HitRadius() != 0.5 {
		t.Errorf("Expected hit radius 0.5, got %f", e.HitRadius())
	}
	if (&Entity{}).HitRadius() != 0 {
		t.Errorf("Expected zero radius without a mesh")
	}
}

func TestProjectileAge(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{0, 0, -1}, 700, 1)
	if p.Age(0.5) {
		t.Fatalf("Expected projectile alive after 0.5s, state %v", p.State)
	}
	if !p.Age(1.5) {
		t.Fatalf("Expected projectile expired, remaining %f", p.RemainingLifetime)
	}
	if p.State != Expired {
		t.Errorf("Expected state %v, got %v", Expired, p.State)
	}
}

func TestProjectileExpiresAtZero(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{0, 0, -1}, 1, 0.5)
	if !p.Age(0.5) {
		t.Errorf("Expected expiry when lifetime reaches exactly zero")
	}
}

func TestProjectileAdvance(t *testing.T) {
	e := New(geometry.NewCylinder(6, 0.2, 1))
	e.Projectile = NewProjectile(mgl32.Vec3{0, 0, -1}, 700, 4)

	if e.Projectile.Direction != (mgl32.Vec3{0, 0, 700}) {
		t.Fatalf("Expected direction (0,0,700), got %v", e.Projectile.Direction)
	}
	e.Projectile.Advance(e, 0.1)
	if want := (mgl32.Vec3{0, 0, -70}); !closeTo(e.Translation[:], want[:], 1e-3) {
		t.Errorf("Expected bullet to travel forward to %v, got %v", want, e.Translation)
	}
}

func TestProjectileStateString(t *testing.T) {
	for s, want := range map[ProjectileState]string{Flying: "flying", Expired: "expired", Impacted: "impacted", 7: "unknown"} {
		if s.String() != want {
			t.Errorf("Expected %q, got %q", want, s.String())
		}
	}
}

func TestTargetWander(t *testing.T) {
	e := New(geometry.NewDuck())
	e.Target = NewTarget()

	// cos(0.07) > 0: heading +X, faces yaw π.
	e.Target.Wander(e, 0.1)
	if e.Rotation.Y() != math.Pi {
		t.Errorf("Expected yaw π, got %f", e.Rotation.Y())
	}
	wantX := float32(math.Cos(0.07)) * DefaultAmplitude
	wantY := float32(math.Sin(0.07)) / 3
	if !closeTo(e.Translation[:2], []float32{wantX, wantY}, 1e-5) {
		t.Errorf("Expected (%f,%f), got %v", wantX, wantY, e.Translation)
	}

	// Phase past π/2: cos < 0, heading -X, faces yaw 0.
	e.Target.WanderPhase = 2
	e.Target.Wander(e, 0)
	if e.Rotation.Y() != 0 {
		t.Errorf("Expected yaw 0, got %f", e.Rotation.Y())
	}
	if e.Translation.Z() != 0 {
		t.Errorf("Expected no Z motion, got %f", e.Translation.Z())
	}
}
