package geometry

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a shape that rays can hit. The set of implementations is
// closed: *Sphere and *Checkerboard.
type Primitive interface {
	// Intersect returns the distance along the unit ray to the nearest hit,
	// or +Inf. Results may also be NaN or non-positive for rays that cannot
	// hit; callers only accept Epsilon < t < nearest.
	Intersect(ray core.Ray) float64

	// NormalAt returns the unit shading normal at a point on the surface.
	NormalAt(point core.Vec3, time float64, random *rand.Rand) core.Vec3

	// SurfaceAt returns the material at a point on the surface.
	SurfaceAt(point core.Vec3) *material.Surface

	// Transmit follows a ray that enters the primitive at point through its
	// interior. It reports false for primitives light cannot pass through.
	Transmit(point, direction core.Vec3, time float64) (Transmission, bool)

	primitive()
}

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	T         float64           // Distance along the ray
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Shading normal, possibly fuzzed
	Surface   *material.Surface // Material at the point
	Primitive Primitive         // Primitive that was hit
}

// Transmission is the result of passing a ray through a primitive.
type Transmission struct {
	Point     core.Vec3 // Where the ray leaves the primitive
	Direction core.Vec3 // Unit direction after leaving
	Distance  float64   // Length of the path travelled inside

	// InternalReflections counts total internal reflections along the way,
	// including a reflection at the entry point.
	InternalReflections int
}
