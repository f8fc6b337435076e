// Package world is the scene: the registered entities, the per-tick
// behavior update and the score.
package world

import (
	"errors"
	"log"
	"math"
	"math/rand"

	"duckhunt/internal/entity"
	"duckhunt/internal/geometry"
	"duckhunt/internal/physics"
	"duckhunt/internal/profiling"
	"duckhunt/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrRetired reports a spawn of an entity that was already removed. A
// removed entity is never brought back.
var ErrRetired = errors.New("world: entity was removed")

// DuckScaleY stretches the duck silhouette vertically.
const DuckScaleY = 1.3

// World owns the registry and applies removals between scans. It is not
// safe for concurrent use; the game drives it from the main loop.
type World struct {
	reg    *registry.Registry
	nextID entity.ID
	score  int

	ticking bool
	pending []*entity.Entity
	doomed  map[*entity.Entity]struct{}
}

func New() *World {
	return &World{
		reg:    registry.New(),
		doomed: make(map[*entity.Entity]struct{}),
	}
}

// Spawn assigns e a fresh ID and registers it. Spawning an entity that is
// already registered, or one that was spawned before and since removed,
// logs and changes nothing.
func (w *World) Spawn(e *entity.Entity) *entity.Entity {
	if w.reg.Contains(e) {
		log.Printf("world: spawn: entity %d: %v", e.ID, registry.ErrAlreadyRegistered)
		return e
	}
	if e.ID != 0 {
		log.Printf("world: spawn: entity %d: %v", e.ID, ErrRetired)
		return e
	}
	w.nextID++
	e.ID = w.nextID
	if err := w.reg.Add(e); err != nil {
		log.Printf("world: spawn: %v", err)
	}
	return e
}

// SpawnProp registers a static mesh at pos.
func (w *World) SpawnProp(mesh *geometry.Mesh, pos mgl32.Vec3) *entity.Entity {
	e := entity.New(mesh)
	e.Translation = pos
	return w.Spawn(e)
}

// SpawnDuck registers a wandering duck target at pos.
func (w *World) SpawnDuck(pos mgl32.Vec3) *entity.Entity {
	e := entity.New(geometry.NewDuck())
	e.Translation = pos
	e.Scale[1] = DuckScaleY
	e.Target = entity.NewTarget()
	return w.Spawn(e)
}

// SpawnDucks scatters n ducks on a ring around center, between a third of
// radius and radius away horizontally and 20 to 100 units above it.
func (w *World) SpawnDucks(rng *rand.Rand, n int, center mgl32.Vec3, radius float32) []*entity.Entity {
	ducks := make([]*entity.Entity, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := float64(radius) * (1.0/3 + rng.Float64()*2/3)
		s, c := math.Sincos(angle)
		pos := center.Add(mgl32.Vec3{
			float32(c * dist),
			20 + rng.Float32()*80,
			float32(s * dist),
		})
		d := w.SpawnDuck(pos)
		d.Target.WanderPhase = rng.Float32() * 2 * math.Pi
		ducks = append(ducks, d)
	}
	return ducks
}

// Remove destroys e. During a tick the removal is queued and applied once
// every scan has finished; queued entities are already invisible to
// CheckCollision. Outside a tick it applies immediately.
func (w *World) Remove(e *entity.Entity) {
	if !w.ticking {
		w.unregister(e)
		return
	}
	if _, ok := w.doomed[e]; ok {
		return
	}
	w.doomed[e] = struct{}{}
	w.pending = append(w.pending, e)
}

func (w *World) unregister(e *entity.Entity) {
	// ErrNotRegistered is the only failure: a double destroy. Harmless.
	if err := w.reg.Remove(e); err != nil {
		log.Printf("world: remove: %v", err)
	}
}

// PendingRemoval reports whether e is queued for removal this tick.
func (w *World) PendingRemoval(e *entity.Entity) bool {
	_, ok := w.doomed[e]
	return ok
}

func (w *World) flush() {
	for _, e := range w.pending {
		w.unregister(e)
		delete(w.doomed, e)
	}
	w.pending = w.pending[:0]
}

// CheckCollision returns the first registered entity whose hit sphere
// overlaps self's, or nil. Self and entities queued for removal are
// skipped. Spheres sit on the translations, so the center offset plays no
// part.
func (w *World) CheckCollision(self *entity.Entity) *entity.Entity {
	for _, other := range w.reg.Entities() {
		if other == self || w.PendingRemoval(other) {
			continue
		}
		if physics.SpheresOverlap(self.Translation, self.HitRadius(), other.Translation, other.HitRadius()) {
			return other
		}
	}
	return nil
}

// Tick advances the scene by dt seconds: targets wander, then projectiles
// age, collide and move, then queued removals are applied.
func (w *World) Tick(dt float32) {
	defer profiling.Track("world.Tick")()
	w.ticking = true

	for _, e := range w.reg.Targets() {
		if !w.PendingRemoval(e) {
			e.Target.Wander(e, dt)
		}
	}
	for _, e := range w.reg.Projectiles() {
		if !w.PendingRemoval(e) {
			w.stepProjectile(e, dt)
		}
	}

	w.ticking = false
	w.flush()
}

func (w *World) stepProjectile(e *entity.Entity, dt float32) {
	p := e.Projectile
	if p.Age(dt) {
		w.Remove(e)
		return
	}

	if hit := w.CheckCollision(e); hit != nil && hit.IsTarget() {
		p.Impact()
		w.Remove(hit)
		w.Remove(e)
		w.score++
		return
	}

	p.Advance(e, dt)
}

// Score is the number of targets destroyed by projectiles.
func (w *World) Score() int { return w.score }

// Entities returns every registered entity in spawn order. The slice is
// owned by the world; do not modify or keep it across a Tick.
func (w *World) Entities() []*entity.Entity { return w.reg.Entities() }

// Targets returns the registered targets, same rules as Entities.
func (w *World) Targets() []*entity.Entity { return w.reg.Targets() }

// Projectiles returns the registered projectiles, same rules as Entities.
func (w *World) Projectiles() []*entity.Entity { return w.reg.Projectiles() }

// Contains reports whether e is registered.
func (w *World) Contains(e *entity.Entity) bool { return w.reg.Contains(e) }

// RaycastResult is the nearest target along a ray.
type RaycastResult struct {
	Entity   *entity.Entity
	Distance float32
	Hit      bool
}

// Raycast finds the nearest target whose hit sphere the ray crosses within
// maxDist. direction must be normalized.
func (w *World) Raycast(start, direction mgl32.Vec3, maxDist float32) RaycastResult {
	defer profiling.Track("world.Raycast")()
	var best RaycastResult
	for _, e := range w.reg.Targets() {
		if w.PendingRemoval(e) {
			continue
		}
		r := physics.RaycastSphere(start, direction, physics.MinReachDistance, maxDist, e.Translation, e.HitRadius())
		if r.Hit && (!best.Hit || r.Distance < best.Distance) {
			best = RaycastResult{Entity: e, Distance: r.Distance, Hit: true}
		}
	}
	return best
}
