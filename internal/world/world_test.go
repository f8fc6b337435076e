package world

import (
	"math/rand"
	"testing"

	"duckhunt/internal/entity"
	"duckhunt/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// sphere spawns a static entity with the given hit radius.
func sphere(w *World, pos mgl32.Vec3, radius float32) *entity.Entity {
	mesh := geometry.NewTriangle(1)
	mesh.HitRadius = radius
	return w.SpawnProp(mesh, pos)
}

// stillBullet spawns a projectile that does not move.
func stillBullet(w *World, pos mgl32.Vec3, lifetime float32) *entity.Entity {
	e := entity.New(geometry.NewCylinder(6, 0.2, 1))
	e.Translation = pos
	e.Projectile = &entity.Projectile{RemainingLifetime: lifetime}
	return w.Spawn(e)
}

// stillDuck spawns a target that stays in place.
func stillDuck(w *World, pos mgl32.Vec3) *entity.Entity {
	d := w.SpawnDuck(pos)
	d.Target.Amplitude = 0
	d.Target.WanderSpeed = 0
	return d
}

func TestSpawnAssignsFreshIDs(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 1)
	b := sphere(w, mgl32.Vec3{}, 1)
	w.Remove(b)
	c := sphere(w, mgl32.Vec3{}, 1)

	if a.ID == b.ID || c.ID == b.ID || c.ID == a.ID {
		t.Errorf("Expected distinct IDs, got %d %d %d", a.ID, b.ID, c.ID)
	}
	if len(w.Entities()) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(w.Entities()))
	}
}

func TestSpawnTwiceKeepsOneEntry(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 1)
	id := a.ID
	w.Spawn(a)
	if len(w.Entities()) != 1 || a.ID != id {
		t.Errorf("Expected one entity with ID %d, got %d entities, ID %d", id, len(w.Entities()), a.ID)
	}
}

func TestSpawnRemovedEntityStaysRetired(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 1)
	id := a.ID
	w.Remove(a)

	w.Spawn(a)
	if w.Contains(a) || len(w.Entities()) != 0 {
		t.Errorf("Expected removed entity to stay out of the world, got %d entities", len(w.Entities()))
	}
	if a.ID != id {
		t.Errorf("Expected ID %d to be kept, got %d", id, a.ID)
	}

	b := sphere(w, mgl32.Vec3{}, 1)
	if b.ID == id {
		t.Errorf("Expected a fresh ID, got the retired %d", b.ID)
	}
}

func TestSpawnRemovedDuringTickStaysRetired(t *testing.T) {
	w := New()
	duck := stillDuck(w, mgl32.Vec3{})
	stillBullet(w, mgl32.Vec3{}, 1)
	w.Tick(0.01)
	if w.Contains(duck) {
		t.Fatalf("Expected the duck to be shot")
	}

	w.Spawn(duck)
	if w.Contains(duck) || len(w.Targets()) != 0 {
		t.Errorf("Expected a shot duck to stay retired")
	}
}

func TestCheckCollisionBoundary(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{0, 0, 0}, 2)
	b := sphere(w, mgl32.Vec3{3, 4, 0}, 3)

	if got := w.CheckCollision(a); got != b {
		t.Errorf("Expected touching spheres to collide, got %v", got)
	}

	b.Translation = mgl32.Vec3{3, 4, 0.01}
	if got := w.CheckCollision(a); got != nil {
		t.Errorf("Expected no collision just past the boundary, got entity %d", got.ID)
	}
}

func TestCheckCollisionSkipsSelf(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 5)
	if got := w.CheckCollision(a); got != nil {
		t.Errorf("Expected no self collision, got entity %d", got.ID)
	}
}

func TestCheckCollisionFirstMatch(t *testing.T) {
	w := New()
	self := sphere(w, mgl32.Vec3{}, 1)
	first := sphere(w, mgl32.Vec3{1, 0, 0}, 1)
	sphere(w, mgl32.Vec3{0.5, 0, 0}, 1)

	if got := w.CheckCollision(self); got != first {
		t.Errorf("Expected first registered overlap (ID %d), got %v", first.ID, got)
	}
}

func TestCheckCollisionIgnoresScaleAndOffset(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 1)
	b := w.SpawnProp(geometry.NewCuboid(2), mgl32.Vec3{3, 0, 0})
	b.Scale = mgl32.Vec3{100, 100, 100}

	// 1 + 1.18 < 3 regardless of scale.
	if got := w.CheckCollision(a); got != nil {
		t.Errorf("Expected scale to leave the hit radius alone, got entity %d", got.ID)
	}
}

func TestProjectileExpiry(t *testing.T) {
	w := New()
	duck := stillDuck(w, mgl32.Vec3{})
	bullet := stillBullet(w, mgl32.Vec3{}, 1.0)

	w.Tick(1.5)

	if bullet.Projectile.State != entity.Expired {
		t.Errorf("Expected expired, got %v", bullet.Projectile.State)
	}
	if w.Contains(bullet) {
		t.Errorf("Expected bullet unregistered")
	}
	// Expiry skips the collision check even though it overlaps the duck.
	if !w.Contains(duck) || w.Score() != 0 {
		t.Errorf("Expected duck alive and score 0, got alive=%v score=%d", w.Contains(duck), w.Score())
	}
	if len(w.Projectiles()) != 0 {
		t.Errorf("Expected no projectiles, got %d", len(w.Projectiles()))
	}
}

func TestProjectileImpact(t *testing.T) {
	w := New()
	duck := stillDuck(w, mgl32.Vec3{0, 0, -3})
	bullet := stillBullet(w, mgl32.Vec3{}, 4)

	w.Tick(0.1)

	if bullet.Projectile.State != entity.Impacted {
		t.Errorf("Expected impacted, got %v", bullet.Projectile.State)
	}
	if w.Contains(duck) || w.Contains(bullet) {
		t.Errorf("Expected both removed, duck=%v bullet=%v", w.Contains(duck), w.Contains(bullet))
	}
	if w.Score() != 1 {
		t.Errorf("Expected score 1, got %d", w.Score())
	}
	if len(w.Targets()) != 0 {
		t.Errorf("Expected no targets, got %d", len(w.Targets()))
	}
}

func TestEndToEndHit(t *testing.T) {
	w := New()
	duck := w.SpawnDuck(mgl32.Vec3{})
	stillBullet(w, mgl32.Vec3{}, 4)

	w.Tick(0.1)

	if w.Score() != 1 {
		t.Errorf("Expected score 1, got %d", w.Score())
	}
	if w.Contains(duck) {
		t.Errorf("Expected duck destroyed")
	}
}

func TestTwoBulletsOneDuck(t *testing.T) {
	w := New()
	duck := stillDuck(w, mgl32.Vec3{})
	first := stillBullet(w, mgl32.Vec3{}, 4)
	second := stillBullet(w, mgl32.Vec3{}, 4)

	w.Tick(0.1)

	if w.Score() != 1 {
		t.Errorf("Expected score 1, got %d", w.Score())
	}
	if w.Contains(duck) || w.Contains(first) {
		t.Errorf("Expected duck and first bullet removed")
	}
	if !w.Contains(second) || second.Projectile.State != entity.Flying {
		t.Errorf("Expected second bullet still flying, got %v", second.Projectile.State)
	}
}

func TestProjectileMissesNonTarget(t *testing.T) {
	w := New()
	prop := sphere(w, mgl32.Vec3{}, 5)
	e := entity.New(geometry.NewCylinder(6, 0.2, 1))
	e.Projectile = entity.NewProjectile(mgl32.Vec3{1, 0, 0}, 10, 4)
	w.Spawn(e)

	w.Tick(0.5)

	if !w.Contains(prop) || !w.Contains(e) {
		t.Fatalf("Expected both entities alive")
	}
	if want := (mgl32.Vec3{5, 0, 0}); e.Translation != want {
		t.Errorf("Expected bullet to move to %v, got %v", want, e.Translation)
	}
}

func TestRemoveTwiceIsHarmless(t *testing.T) {
	w := New()
	a := sphere(w, mgl32.Vec3{}, 1)
	w.Remove(a)
	w.Remove(a)
	if w.Contains(a) || len(w.Entities()) != 0 {
		t.Errorf("Expected empty world")
	}
}

func TestTickDeterministic(t *testing.T) {
	run := func() []mgl32.Vec3 {
		w := New()
		w.SpawnDucks(rand.New(rand.NewSource(7)), 5, mgl32.Vec3{}, 100)
		for i := 0; i < 30; i++ {
			w.Tick(1.0 / 60)
		}
		var out []mgl32.Vec3
		for _, e := range w.Entities() {
			out = append(out, e.Translation)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != 5 || len(a) != len(b) {
		t.Fatalf("Expected 5 ducks in both runs, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("duck %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRaycastNearestTarget(t *testing.T) {
	w := New()
	far := stillDuck(w, mgl32.Vec3{0, 0, -100})
	near := stillDuck(w, mgl32.Vec3{0, 0, -40})
	sphere(w, mgl32.Vec3{0, 0, -10}, 5)

	r := w.Raycast(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 500)
	if !r.Hit || r.Entity != near {
		t.Fatalf("Expected the near duck, got %+v", r)
	}

	w.Remove(near)
	if r := w.Raycast(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 500); r.Entity != far {
		t.Errorf("Expected the far duck once the near one is gone, got %+v", r)
	}
	if r := w.Raycast(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 500); r.Hit {
		t.Errorf("Expected miss looking up, got %+v", r)
	}
}

func BenchmarkTick(b *testing.B) {
	w := New()
	w.SpawnDucks(rand.New(rand.NewSource(1)), 50, mgl32.Vec3{}, 300)
	for i := 0; i < 50; i++ {
		stillBullet(w, mgl32.Vec3{0, 1000, 0}, 1e9)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Tick(1.0 / 60)
	}
}
