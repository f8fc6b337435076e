package game

import (
	"log"
	"time"

	standardInput "duckhunt/internal/input"
	"duckhunt/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// maxFrameDT caps the step fed to the world after a stall.
const maxFrameDT = 0.1

type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager) (*App, error) {
	session, err := NewSession(window)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	a.setupCallbacks()
	return a, nil
}

func (a *App) setupCallbacks() {
	a.inputManager.SetCallbacks(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})
	a.window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		a.session.Renderer.UpdateViewport(width, height)
	})
	a.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && !a.session.Paused {
			a.session.SetPaused(true, a.inputManager)
		}
	})
	a.window.SetRefreshCallback(func(w *glfw.Window) {
		a.session.RefreshRender()
	})
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.session.Cleanup()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick
	if dt > maxFrameDT {
		dt = maxFrameDT
	}

	glfw.PollEvents()

	func() {
		defer profiling.Track("session.Update")()
		a.session.Update(dt, a.inputManager)
	}()
	func() {
		defer profiling.Track("session.Render")()
		a.session.Render(dt)
	}()

	a.window.SwapBuffers()

	if d := time.Since(startTick); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopNCurrentFrame(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused)
}
