package config

import "flag"

// BindFlags registers every tunable setting on fs with the current value as
// default. The returned func copies the parsed values into the settings and
// must be called after fs.Parse.
func BindFlags(fs *flag.FlagSet) func() {
	near, far := GetClipPlanes()

	ducks := fs.Int("ducks", GetDuckCount(), "ducks per round")
	spawnRadius := fs.Float64("spawn-radius", float64(GetSpawnRadius()), "farthest horizontal distance a duck spawns at")
	bulletSpeed := fs.Float64("bullet-speed", float64(GetBulletSpeed()), "bullet speed in units per second")
	bulletLife := fs.Float64("bullet-life", float64(GetBulletLifetime()), "seconds before a bullet expires")
	fps := fs.Int("fps", GetFPSLimit(), "frame rate cap, 0 for unlimited")
	sensitivity := fs.Float64("sensitivity", float64(GetMouseSensitivity()), "mouse look multiplier")
	nearPlane := fs.Float64("near", float64(near), "near clip plane")
	farPlane := fs.Float64("far", float64(far), "far clip plane")
	profile := fs.Bool("profile", GetShowProfiling(), "log the slowest tasks every second")

	return func() {
		SetDuckCount(*ducks)
		SetSpawnRadius(float32(*spawnRadius))
		SetBulletSpeed(float32(*bulletSpeed))
		SetBulletLifetime(float32(*bulletLife))
		SetFPSLimit(*fps)
		SetMouseSensitivity(float32(*sensitivity))
		SetClipPlanes(float32(*nearPlane), float32(*farPlane))
		SetShowProfiling(*profile)
	}
}
