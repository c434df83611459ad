package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refract bends a unit direction crossing an interface. normal is the unit
// normal pointing the way the ray travels (into the medium being entered) and
// ratio is n_from/n_to, so sinOut = ratio*sinIn. It reports false on total
// internal reflection.
func Refract(direction, normal core.Vec3, ratio float64) (core.Vec3, bool) {
	normalComponent := direction.Dot(normal)
	perp := direction.Subtract(normal.Multiply(normalComponent))

	sinIn := perp.Length()
	sinOut := ratio * sinIn

	if sinOut >= 1 {
		return direction, false
	}
	if sinOut < core.Epsilon {
		// Negligible tangential component: pass straight through.
		return direction, true
	}

	cosOut := math.Sqrt(1 - sinOut*sinOut)
	tanOut := sinOut / cosOut

	return perp.Normalize().Multiply(tanOut).Add(normal).Normalize(), true
}
