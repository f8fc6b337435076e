// Package registry tracks the live entities of a scene.
package registry

import (
	"errors"
	"fmt"

	"duckhunt/internal/entity"
)

var (
	ErrAlreadyRegistered = errors.New("registry: entity already registered")
	ErrNotRegistered     = errors.New("registry: entity not registered")
)

// Registry keeps every live entity in insertion order, plus the targets and
// projectiles among them in their own lists. Sub-list membership follows
// the entity's behavior components at Add time.
type Registry struct {
	all         []*entity.Entity
	targets     []*entity.Entity
	projectiles []*entity.Entity
	members     map[*entity.Entity]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		members: make(map[*entity.Entity]struct{}),
	}
}

// Add registers e. Registering the same entity twice is an error and leaves
// the registry unchanged. Membership is by identity; the ID plays no part.
func (r *Registry) Add(e *entity.Entity) error {
	if _, ok := r.members[e]; ok {
		return fmt.Errorf("entity %d: %w", e.ID, ErrAlreadyRegistered)
	}
	r.members[e] = struct{}{}
	r.all = append(r.all, e)
	if e.IsTarget() {
		r.targets = append(r.targets, e)
	}
	if e.IsProjectile() {
		r.projectiles = append(r.projectiles, e)
	}
	return nil
}

// Remove unregisters e from every list. Removing an entity that is not
// registered changes nothing and returns ErrNotRegistered.
func (r *Registry) Remove(e *entity.Entity) error {
	if _, ok := r.members[e]; !ok {
		return fmt.Errorf("entity %d: %w", e.ID, ErrNotRegistered)
	}
	delete(r.members, e)
	r.all = without(r.all, e)
	r.targets = without(r.targets, e)
	r.projectiles = without(r.projectiles, e)
	return nil
}

// without drops e from list in place, keeping order.
func without(list []*entity.Entity, e *entity.Entity) []*entity.Entity {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

// Contains reports whether e is registered.
func (r *Registry) Contains(e *entity.Entity) bool {
	_, ok := r.members[e]
	return ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int { return len(r.all) }

// Entities returns the registered entities in insertion order. The slice is
// a live view and must not be modified or held across Add/Remove.
func (r *Registry) Entities() []*entity.Entity { return r.all }

// Targets returns the registered targets, same rules as Entities.
func (r *Registry) Targets() []*entity.Entity { return r.targets }

// Projectiles returns the registered projectiles, same rules as Entities.
func (r *Registry) Projectiles() []*entity.Entity { return r.projectiles }
