package config

import "sync"

// RenderSettings holds window and view configuration
type RenderSettings struct {
	mu               sync.RWMutex
	fpsLimit         int // 0 means unlimited
	mouseSensitivity float32
	showProfiling    bool
	nearPlane        float32
	farPlane         float32
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:         144,
	mouseSensitivity: 1.0,
	showProfiling:    false,
	nearPlane:        1,
	farPlane:         2000,
}

// GetFPSLimit returns the frame cap, 0 for unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values below 30 other than 0 are raised to 30.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 30 {
		limit = 30
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetMouseSensitivity returns the multiplier applied to the camera rotate speed
func GetMouseSensitivity() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.mouseSensitivity
}

// SetMouseSensitivity sets the look multiplier, clamped to [0.1, 10]
func SetMouseSensitivity(s float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if s < 0.1 {
		s = 0.1
	}
	if s > 10 {
		s = 10
	}

	globalRenderSettings.mouseSensitivity = s
}

// GetShowProfiling returns whether per-frame timings are logged
func GetShowProfiling() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showProfiling
}

// SetShowProfiling toggles per-frame timing logs
func SetShowProfiling(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showProfiling = enabled
}

// GetClipPlanes returns the near and far planes of the projection
func GetClipPlanes() (near, far float32) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.nearPlane, globalRenderSettings.farPlane
}

// SetClipPlanes sets the projection depth range. near is kept positive and
// far is kept beyond near.
func SetClipPlanes(near, far float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if near < 0.01 {
		near = 0.01
	}
	if far <= near {
		far = near + 1
	}

	globalRenderSettings.nearPlane = near
	globalRenderSettings.farPlane = far
}
