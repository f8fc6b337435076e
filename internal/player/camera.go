// Package player is the first-person camera and the movement commands
// that drive it.
package player

import (
	"math"

	"duckhunt/internal/m4"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	WalkSpeed         = 80
	RunSpeed          = 140
	NormalRotateSpeed = 0.0025
	ZoomRotateSpeed   = 0.0015
	CrouchAmount      = 8
	CrouchSpeed       = 60
	NormalFOV         = 67
	ZoomFOV           = 50

	// MaxPitch keeps the camera just short of straight up or down.
	MaxPitch = math.Pi/2 - 0.01
)

// Camera is a free-flying viewpoint. It is not part of the scene and never
// collides.
type Camera struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3 // pitch, yaw, roll in radians

	MoveSpeed    float32
	WalkSpeed    float32
	RunSpeed     float32
	RotateSpeed  float32
	CrouchAmount float32
	CrouchSpeed  float32
	FieldOfView  float32 // degrees
	ZoomFOV      float32
	NormalFOV    float32

	Running  bool
	Crouched bool
	Zoomed   bool

	crouchDepth float32 // how far the camera is currently lowered
}

// NewCamera returns a camera at pos facing +Z.
func NewCamera(pos mgl32.Vec3) *Camera {
	return &Camera{
		Translation:  pos,
		Rotation:     mgl32.Vec3{0, math.Pi, 0},
		MoveSpeed:    WalkSpeed,
		WalkSpeed:    WalkSpeed,
		RunSpeed:     RunSpeed,
		RotateSpeed:  NormalRotateSpeed,
		CrouchAmount: CrouchAmount,
		CrouchSpeed:  CrouchSpeed,
		FieldOfView:  NormalFOV,
		ZoomFOV:      ZoomFOV,
		NormalFOV:    NormalFOV,
	}
}

// WorldMatrix places the camera: rotate about X, Y, Z, then translate.
func (c *Camera) WorldMatrix() mgl32.Mat4 {
	m := m4.XRotation(c.Rotation.X())
	m = m4.YRotate(m, c.Rotation.Y())
	m = m4.ZRotate(m, c.Rotation.Z())
	return m4.Translate(m, c.Translation)
}

// ViewMatrix is the inverse of WorldMatrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return m4.Inverse(c.WorldMatrix())
}

// ProjectionMatrix is a perspective projection at the current field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return m4.Perspective(c.FieldOfView, aspect, near, far)
}

// Forward is the unit vector the camera looks along. Roll is ignored.
func (c *Camera) Forward() mgl32.Vec3 {
	sx, cx := math.Sincos(float64(c.Rotation.X()))
	sy, cy := math.Sincos(float64(c.Rotation.Y()))
	return mgl32.Vec3{float32(-cx * sy), float32(sx), float32(-cx * cy)}
}

// right is the horizontal unit vector to the camera's right.
func (c *Camera) right() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Rotation.Y()))
	return mgl32.Vec3{float32(cy), 0, float32(-sy)}
}

// Move walks the camera on the horizontal plane. forward and strafe are
// axis values in [-1, 1]; positive strafe goes right.
func (c *Camera) Move(forward, strafe, dt float32) {
	if forward == 0 && strafe == 0 {
		return
	}
	sy, cy := math.Sincos(float64(c.Rotation.Y()))
	ahead := mgl32.Vec3{float32(-sy), 0, float32(-cy)}

	step := ahead.Mul(forward).Add(c.right().Mul(strafe))
	if l := step.Len(); l > 1 {
		step = step.Mul(1 / l)
	}
	c.Translation = c.Translation.Add(step.Mul(c.MoveSpeed * dt))
}

// Look turns the camera by a cursor delta in pixels. Moving the cursor
// right turns right and moving it up looks up. Pitch is clamped.
func (c *Camera) Look(dx, dy, sensitivity float32) {
	speed := c.RotateSpeed * sensitivity
	c.Rotation[1] -= dx * speed
	c.Rotation[0] = mgl32.Clamp(c.Rotation[0]-dy*speed, -MaxPitch, MaxPitch)

	// Keep yaw bounded so long sessions do not lose precision.
	if c.Rotation[1] > 2*math.Pi {
		c.Rotation[1] -= 2 * math.Pi
	} else if c.Rotation[1] < -2*math.Pi {
		c.Rotation[1] += 2 * math.Pi
	}
}

// SetRunning switches between walk and run speed.
func (c *Camera) SetRunning(running bool) {
	c.Running = running
	if running {
		c.MoveSpeed = c.RunSpeed
	} else {
		c.MoveSpeed = c.WalkSpeed
	}
}

// SetZoomed narrows the field of view and slows turning while aiming.
func (c *Camera) SetZoomed(zoomed bool) {
	c.Zoomed = zoomed
	if zoomed {
		c.FieldOfView = c.ZoomFOV
		c.RotateSpeed = ZoomRotateSpeed
	} else {
		c.FieldOfView = c.NormalFOV
		c.RotateSpeed = NormalRotateSpeed
	}
}

// SetCrouched starts lowering or raising the camera. Update moves it.
func (c *Camera) SetCrouched(crouched bool) { c.Crouched = crouched }

// Update eases the crouch toward its target at CrouchSpeed.
func (c *Camera) Update(dt float32) {
	target := float32(0)
	if c.Crouched {
		target = c.CrouchAmount
	}
	if c.crouchDepth == target {
		return
	}

	step := c.CrouchSpeed * dt
	delta := target - c.crouchDepth
	if delta > step {
		delta = step
	} else if delta < -step {
		delta = -step
	}
	c.crouchDepth += delta
	c.Translation[1] -= delta
}
