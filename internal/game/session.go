package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"duckhunt/internal/config"
	"duckhunt/internal/geometry"
	"duckhunt/internal/graphics/renderables/crosshair"
	"duckhunt/internal/graphics/renderables/scene"
	"duckhunt/internal/graphics/renderer"
	standardInput "duckhunt/internal/input"
	"duckhunt/internal/physics"
	"duckhunt/internal/player"
	"duckhunt/internal/profiling"
	"duckhunt/internal/weapon"
	"duckhunt/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Scenery layout
const (
	eyeHeight   = 10
	postCount   = 8
	postEdge    = 10
	postRing    = 150
	markerSize  = 20
	markerRange = 400
)

type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	World    *world.World
	Camera   *player.Camera
	Weapon   *weapon.Weapon

	Paused bool

	rng       *rand.Rand
	aim       world.RaycastResult
	lastScore int
	round     int

	Frames           int
	LastFPSCheckTime time.Time
}

func NewSession(window *glfw.Window) (*Session, error) {
	r, err := renderer.NewRenderer(
		scene.NewScene(),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return nil, err
	}

	w := world.New()
	cam := player.NewCamera(mgl32.Vec3{0, eyeHeight, 0})

	s := &Session{
		Window:           window,
		Renderer:         r,
		World:            w,
		Camera:           cam,
		Weapon:           weapon.New(w),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		LastFPSCheckTime: time.Now(),
	}
	s.buildScenery()
	s.startRound()

	width, height := window.GetSize()
	r.UpdateViewport(width, height)
	s.Weapon.Follow(cam)

	return s, nil
}

// buildScenery places static landmarks so movement is visible.
func (s *Session) buildScenery() {
	for i := 0; i < postCount; i++ {
		angle := float64(i) * 2 * math.Pi / postCount
		sn, cs := math.Sincos(angle)
		post := geometry.NewCuboid(postEdge)
		s.World.SpawnProp(post, mgl32.Vec3{float32(cs * postRing), postEdge / 2, float32(sn * postRing)})
	}

	marker := geometry.NewTriangle(markerSize)
	marker.SetColor(geometry.ClampRGB(230, 200, 40))
	s.World.SpawnProp(marker, mgl32.Vec3{0, 0, markerRange})
}

func (s *Session) startRound() {
	s.round++
	ducks := s.World.SpawnDucks(s.rng, config.GetDuckCount(), s.Camera.Translation, config.GetSpawnRadius())
	log.Printf("round %d: %d ducks", s.round, len(ducks))
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Renderer = nil
	s.World = nil
}

// Update applies input, advances the scene and refreshes the aim.
func (s *Session) Update(dt float64, im *standardInput.InputManager) {
	if im.JustPressed(standardInput.ActionPause) {
		s.SetPaused(!s.Paused, im)
	}
	if im.JustPressed(standardInput.ActionToggleProfiling) {
		config.SetShowProfiling(!config.GetShowProfiling())
	}
	if s.Paused {
		return
	}

	fdt := float32(dt)
	func() {
		defer profiling.Track("player.Update")()
		cam := s.Camera
		cam.SetRunning(im.IsActive(standardInput.ActionRun))
		cam.SetCrouched(im.IsActive(standardInput.ActionCrouch))
		cam.SetZoomed(im.IsActive(standardInput.ActionZoom))

		dx, dy := im.CursorDelta()
		cam.Look(float32(dx), float32(dy), config.GetMouseSensitivity())
		cam.Move(
			im.Axis(standardInput.ActionMoveForward, standardInput.ActionMoveBackward),
			im.Axis(standardInput.ActionMoveRight, standardInput.ActionMoveLeft),
			fdt,
		)
		cam.Update(fdt)
	}()

	if im.JustPressed(standardInput.ActionFire) {
		s.Weapon.Fire(s.World, s.Camera)
	}

	s.World.Tick(fdt)
	s.Weapon.Follow(s.Camera)

	s.aim = s.World.Raycast(s.Camera.Translation, s.Camera.Forward(), physics.MaxReachDistance)
	s.Weapon.SetOnTarget(s.aim.Hit)

	if score := s.World.Score(); score != s.lastScore {
		s.lastScore = score
		log.Printf("score: %d, %d ducks left", score, len(s.World.Targets()))
	}
	if len(s.World.Targets()) == 0 {
		s.startRound()
	}
}

func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.World, s.Camera, s.aim, dt)

	s.Frames++
	if time.Since(s.LastFPSCheckTime) >= time.Second {
		s.Window.SetTitle(fmt.Sprintf("duckhunt | score %d | %d fps", s.lastScore, s.Frames))
		if config.GetShowProfiling() {
			log.Printf("profile: %s", profiling.TopN(5))
		}
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}
}

func (s *Session) SetPaused(paused bool, im *standardInput.InputManager) {
	s.Paused = paused
	if s.Paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	im.ResetCursor()
}

func (s *Session) RefreshRender() {
	s.Render(0)
	s.Window.SwapBuffers()
}
