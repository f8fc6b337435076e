package renderer

import (
	"fmt"

	"duckhunt/internal/graphics"
	"duckhunt/internal/player"
	"duckhunt/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sky color
const (
	clearR = 0.53
	clearG = 0.81
	clearB = 0.92
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
}

// NewRenderer configures GL state and initializes rs in order
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	// Duck silhouettes are single-sided, so nothing is culled.
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(graphics.WinWidth, graphics.WinHeight),
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// Release what was already set up.
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return r, nil
}

// Render draws one frame
func (r *Renderer) Render(w *world.World, cam *player.Camera, aim world.RaycastResult, dt float64) {
	gl.ClearColor(clearR, clearG, clearB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view, proj := r.projection.Matrices(cam)
	ctx := RenderContext{
		Projection: r.projection,
		World:      w,
		Camera:     cam,
		Aim:        aim,
		DT:         dt,
		View:       view,
		Proj:       proj,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport updates the projection's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.projection.SetViewport(width, height)
}
