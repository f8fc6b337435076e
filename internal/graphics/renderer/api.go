package renderer

import (
	"duckhunt/internal/graphics"
	"duckhunt/internal/player"
	"duckhunt/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Projection *graphics.Projection
	World      *world.World
	Camera     *player.Camera
	Aim        world.RaycastResult
	DT         float64
	View       mgl32.Mat4
	Proj       mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
