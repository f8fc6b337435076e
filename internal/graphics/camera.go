package graphics

import (
	"duckhunt/internal/config"
	"duckhunt/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 900
	WinHeight = 600
)

// Projection holds the viewport-dependent half of the camera transform
type Projection struct {
	AspectRatio float32
	Width       int
	Height      int
}

func NewProjection(width, height int) *Projection {
	p := &Projection{}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio. A minimized window reports a zero
// size; the previous ratio is kept then.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Width, p.Height = width, height
	p.AspectRatio = float32(width) / float32(height)
}

// Matrices returns the view and projection matrices for cam.
func (p *Projection) Matrices(cam *player.Camera) (view, proj mgl32.Mat4) {
	near, far := config.GetClipPlanes()
	return cam.ViewMatrix(), cam.ProjectionMatrix(p.AspectRatio, near, far)
}
