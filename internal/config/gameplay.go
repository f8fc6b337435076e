package config

import "sync"

// GameplaySettings holds spawn and weapon tuning
type GameplaySettings struct {
	mu             sync.RWMutex
	duckCount      int
	spawnRadius    float32
	bulletSpeed    float32
	bulletLifetime float32 // seconds
}

var globalGameplaySettings = &GameplaySettings{
	duckCount:      10,
	spawnRadius:    300,
	bulletSpeed:    700,
	bulletLifetime: 4,
}

// GetDuckCount returns how many ducks a round starts with
func GetDuckCount() int {
	globalGameplaySettings.mu.RLock()
	defer globalGameplaySettings.mu.RUnlock()
	return globalGameplaySettings.duckCount
}

// SetDuckCount sets the duck count, clamped to [1, 200]
func SetDuckCount(n int) {
	globalGameplaySettings.mu.Lock()
	defer globalGameplaySettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 200 {
		n = 200
	}

	globalGameplaySettings.duckCount = n
}

// GetSpawnRadius returns the horizontal distance ducks spawn within
func GetSpawnRadius() float32 {
	globalGameplaySettings.mu.RLock()
	defer globalGameplaySettings.mu.RUnlock()
	return globalGameplaySettings.spawnRadius
}

// SetSpawnRadius sets the spawn radius, at least 10
func SetSpawnRadius(r float32) {
	globalGameplaySettings.mu.Lock()
	defer globalGameplaySettings.mu.Unlock()

	if r < 10 {
		r = 10
	}

	globalGameplaySettings.spawnRadius = r
}

// GetBulletSpeed returns bullet speed in units per second
func GetBulletSpeed() float32 {
	globalGameplaySettings.mu.RLock()
	defer globalGameplaySettings.mu.RUnlock()
	return globalGameplaySettings.bulletSpeed
}

// SetBulletSpeed sets bullet speed, clamped to [1, 5000]
func SetBulletSpeed(s float32) {
	globalGameplaySettings.mu.Lock()
	defer globalGameplaySettings.mu.Unlock()

	if s < 1 {
		s = 1
	}
	if s > 5000 {
		s = 5000
	}

	globalGameplaySettings.bulletSpeed = s
}

// GetBulletLifetime returns how long a bullet flies before expiring
func GetBulletLifetime() float32 {
	globalGameplaySettings.mu.RLock()
	defer globalGameplaySettings.mu.RUnlock()
	return globalGameplaySettings.bulletLifetime
}

// SetBulletLifetime sets bullet lifetime in seconds, clamped to [0.1, 60]
func SetBulletLifetime(s float32) {
	globalGameplaySettings.mu.Lock()
	defer globalGameplaySettings.mu.Unlock()

	if s < 0.1 {
		s = 0.1
	}
	if s > 60 {
		s = 60
	}

	globalGameplaySettings.bulletLifetime = s
}
