// Package weapon is the rifle model that rides in front of the camera and
// the bullets it fires.
package weapon

import (
	"math"

	"duckhunt/internal/config"
	"duckhunt/internal/entity"
	"duckhunt/internal/geometry"
	"duckhunt/internal/player"
	"duckhunt/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Bullet shape and color.
const (
	BulletSides  = 8
	BulletRadius = 0.15
	BulletLength = 1.5
)

var (
	BulletColor    = geometry.RGB{181, 134, 70}
	BarrelColor    = geometry.RGB{54, 50, 47}
	BarrelTopColor = geometry.RGB{42, 38, 37}
	StockColor     = geometry.RGB{82, 52, 39}
	UpperColor     = geometry.RGB{62, 42, 39}
	SightColor     = geometry.RGB{30, 28, 24}
	SightOnTarget  = geometry.RGB{200, 30, 30}
)

// mount is where a part sits relative to the camera: dist units out along
// a ray pitched pitch radians below the view direction.
type mount struct {
	dist  float32
	pitch float32
}

var (
	barrelMount = mount{10, mgl32.DegToRad(-5)}
	stockMount  = mount{2.3, mgl32.DegToRad(-30)}
	sightMount  = mount{10, mgl32.DegToRad(-3.2)}
)

// Weapon groups the parts. The parts are ordinary scene entities; the
// weapon itself is not registered.
type Weapon struct {
	Barrel     *entity.Entity
	Stock      *entity.Entity
	UpperStock *entity.Entity
	Sight      *entity.Entity

	onTarget bool
}

// New builds the weapon and spawns its parts into w.
func New(w *world.World) *Weapon {
	barrel := geometry.NewCylinder(20, 0.25, 8)
	barrel.SetColor(BarrelColor)
	_ = barrel.SetPartColor(geometry.CylinderTop, BarrelTopColor)

	stock := geometry.NewCuboid(0.3)
	stock.SetColor(StockColor)
	upper := geometry.NewCuboid(0.3)
	upper.SetColor(UpperColor)
	sight := geometry.NewCuboid(0.15)
	sight.SetColor(SightColor)

	wp := &Weapon{
		Barrel:     w.SpawnProp(barrel, mgl32.Vec3{}),
		Stock:      w.SpawnProp(stock, mgl32.Vec3{}),
		UpperStock: w.SpawnProp(upper, mgl32.Vec3{}),
		Sight:      w.SpawnProp(sight, mgl32.Vec3{}),
	}
	wp.Barrel.Rotation[0] = math.Pi / 2
	wp.Barrel.Scale = mgl32.Vec3{0.8, 1, 0.9}
	wp.Stock.Scale[1] = 2
	wp.UpperStock.Scale = mgl32.Vec3{0.8, 2.4, 0.6}
	wp.Sight.Scale[1] = 1.3
	return wp
}

// Parts returns the part entities.
func (wp *Weapon) Parts() []*entity.Entity {
	return []*entity.Entity{wp.Barrel, wp.Stock, wp.UpperStock, wp.Sight}
}

// Follow moves every part to its mount in front of cam and turns it with
// the camera. The barrel lies along the view direction.
func (wp *Weapon) Follow(cam *player.Camera) {
	wp.Barrel.Translation = mountPoint(cam, barrelMount)
	wp.Stock.Translation = mountPoint(cam, stockMount)
	wp.UpperStock.Translation = mountPoint(cam, stockMount)
	wp.Sight.Translation = mountPoint(cam, sightMount)

	wp.Barrel.Rotation = cam.Rotation.Add(mgl32.Vec3{math.Pi / 2, 0, 0})
	wp.Stock.Rotation = cam.Rotation
	wp.UpperStock.Rotation = cam.Rotation
	wp.Sight.Rotation = cam.Rotation
}

func mountPoint(cam *player.Camera, m mount) mgl32.Vec3 {
	sp, cp := math.Sincos(float64(cam.Rotation.X() + m.pitch))
	sy, cy := math.Sincos(float64(cam.Rotation.Y()))
	d := float64(m.dist)
	return cam.Translation.Add(mgl32.Vec3{
		float32(-d * cp * sy),
		float32(d * sp),
		float32(-d * cp * cy),
	})
}

// Fire spawns a bullet at the camera heading where the camera looks.
func (wp *Weapon) Fire(w *world.World, cam *player.Camera) *entity.Entity {
	mesh := geometry.NewCylinder(BulletSides, BulletRadius, BulletLength)
	mesh.SetColor(BulletColor)

	b := entity.New(mesh)
	b.Translation = cam.Translation
	b.Rotation = cam.Rotation.Add(mgl32.Vec3{math.Pi / 2, 0, 0})
	b.Projectile = entity.NewProjectile(cam.Forward(), config.GetBulletSpeed(), config.GetBulletLifetime())
	return w.Spawn(b)
}

// SetOnTarget tints the sight while a target is under the crosshair.
func (wp *Weapon) SetOnTarget(on bool) {
	if on == wp.onTarget {
		return
	}
	wp.onTarget = on
	if on {
		wp.Sight.Mesh.SetColor(SightOnTarget)
	} else {
		wp.Sight.Mesh.SetColor(SightColor)
	}
}
