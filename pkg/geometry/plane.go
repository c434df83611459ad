package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Checkerboard is a one-sided infinite plane {p : p·Normal = Distance}
// tiled with unit squares of two alternating surfaces. Only rays starting on
// the side the normal points to can hit it.
type Checkerboard struct {
	Normal   core.Vec3 // Unit normal
	Distance float64   // Signed distance of the plane from the origin
	P1       *material.Surface
	P2       *material.Surface
}

// NewCheckerboard creates a new checkerboard plane
func NewCheckerboard(normal core.Vec3, distance float64, p1, p2 *material.Surface) *Checkerboard {
	return &Checkerboard{
		Normal:   normal.Normalize(),
		Distance: distance,
		P1:       p1,
		P2:       p2,
	}
}

// Intersect returns the distance to the plane. Rays from behind the plane
// get +Inf; rays parallel to it get an infinite or NaN distance.
func (c *Checkerboard) Intersect(ray core.Ray) float64 {
	fromNorm := ray.Origin.Dot(c.Normal) - c.Distance
	if fromNorm < 0 {
		return math.Inf(1)
	}

	return -fromNorm / ray.Direction.Dot(c.Normal)
}

// NormalAt returns the plane normal
func (c *Checkerboard) NormalAt(point core.Vec3, time float64, random *rand.Rand) core.Vec3 {
	return c.Normal
}

// SurfaceAt picks P1 where the rounded world x and z coordinates sum to an
// odd number and P2 where they sum to an even number.
func (c *Checkerboard) SurfaceAt(point core.Vec3) *material.Surface {
	parity := (int64(math.RoundToEven(point.X)) + int64(math.RoundToEven(point.Z))) % 2
	if parity != 0 {
		return c.P1
	}
	return c.P2
}

// Transmit always reports false: the checkerboard is opaque.
func (c *Checkerboard) Transmit(point, direction core.Vec3, time float64) (Transmission, bool) {
	return Transmission{}, false
}

func (c *Checkerboard) primitive() {}
