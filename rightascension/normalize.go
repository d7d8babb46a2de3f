package rightascension

import "math"

// NormalizeDegrees maps an angle to the equivalent value in [0, 360).
// The angle-to-time conversions never call this themselves; callers
// wanting defined behavior for arbitrary angles normalize first.
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}
