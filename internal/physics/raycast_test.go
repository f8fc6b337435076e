package physics_test

import (
	"testing"

	"duckhunt/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycastSphere(t *testing.T) {
	center := mgl32.Vec3{0, 0, -50}

	// Test 1: straight at the sphere
	result := physics.RaycastSphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, physics.MinReachDistance, 100, center, 6)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.Distance < 43.99 || result.Distance > 44.01 {
		t.Errorf("Expected distance 44, got %f", result.Distance)
	}

	// Test 2: sphere beyond max distance
	if r := physics.RaycastSphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 0, 40, center, 6); r.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %f", r.Distance)
	}

	// Test 3: wrong direction
	if r := physics.RaycastSphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 0, 100, center, 6); r.Hit {
		t.Errorf("Expected miss looking away, got hit at %f", r.Distance)
	}

	// Test 4: passing beside it
	if r := physics.RaycastSphere(mgl32.Vec3{7, 0, 0}, mgl32.Vec3{0, 0, -1}, 0, 100, center, 6); r.Hit {
		t.Errorf("Expected miss beside the sphere, got hit at %f", r.Distance)
	}

	// Test 5: from inside
	r := physics.RaycastSphere(center, mgl32.Vec3{1, 0, 0}, 0, 100, center, 6)
	if !r.Hit || r.Distance < 5.99 || r.Distance > 6.01 {
		t.Errorf("Expected far-side hit at 6, got %+v", r)
	}
}

func TestSpheresOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   mgl32.Vec3
		ra, rb float32
		want   bool
	}{
		{"touching", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0}, 2, 3, true},
		{"apart", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0.01}, 2, 3, false},
		{"same center", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 0, 0, true},
		{"inside", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 6, 0.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := physics.SpheresOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("Expected %v, got %v (distance %f)", tt.want, got, physics.Distance(tt.a, tt.b))
			}
		})
	}
}

func BenchmarkSpheresOverlap(b *testing.B) {
	a, c := mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = physics.SpheresOverlap(a, 1, c, 2)
	}
}
