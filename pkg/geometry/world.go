package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// World is the ordered primitive set searched for nearest hits. Spheres are
// always scanned before checkerboards, and the first primitive found at the
// nearest distance wins, so a sphere beats a plane at exactly equal range.
type World struct {
	primitives    []Primitive
	spheres       []*Sphere
	checkerboards []*Checkerboard
	bvh           *SphereBVH
}

// NewWorld creates a world from spheres and checkerboards
func NewWorld(spheres []*Sphere, checkerboards []*Checkerboard) *World {
	primitives := make([]Primitive, 0, len(spheres)+len(checkerboards))
	for _, s := range spheres {
		primitives = append(primitives, s)
	}
	for _, c := range checkerboards {
		primitives = append(primitives, c)
	}
	return &World{primitives: primitives, spheres: spheres, checkerboards: checkerboards}
}

// NewIndexedWorld is NewWorld with the spheres indexed by a SphereBVH when
// there are enough of them to benefit. Rays sampled outside [0, shutter]
// fall back to a linear scan.
func NewIndexedWorld(spheres []*Sphere, checkerboards []*Checkerboard, shutter float64) *World {
	w := NewWorld(spheres, checkerboards)
	if len(spheres) > leafSize {
		w.bvh = NewSphereBVH(spheres, shutter)
	}
	return w
}

// Primitives returns the primitives in scan order
func (w *World) Primitives() []Primitive {
	return w.primitives
}

// Nearest returns the closest primitive further than core.Epsilon along the
// ray and its distance, or nil and +Inf when nothing is hit.
func (w *World) Nearest(ray core.Ray) (Primitive, float64) {
	if w.bvh != nil && w.bvh.Covers(ray.Time) {
		return w.indexedNearest(ray)
	}

	var nearest Primitive
	nearestDist := math.Inf(1)

	for _, p := range w.primitives {
		// NaN and non-positive distances fail both comparisons.
		if t := p.Intersect(ray); core.Epsilon < t && t < nearestDist {
			nearest = p
			nearestDist = t
		}
	}

	return nearest, nearestDist
}

func (w *World) indexedNearest(ray core.Ray) (Primitive, float64) {
	var nearest Primitive
	i, nearestDist := w.bvh.Nearest(ray)
	if i >= 0 {
		nearest = w.spheres[i]
	}

	for _, c := range w.checkerboards {
		if t := c.Intersect(ray); core.Epsilon < t && t < nearestDist {
			nearest = c
			nearestDist = t
		}
	}

	return nearest, nearestDist
}

// Hit finds the nearest intersection and fills in its shading data. random
// drives normal perturbation on fuzzy spheres.
func (w *World) Hit(ray core.Ray, random *rand.Rand) (*HitRecord, bool) {
	primitive, t := w.Nearest(ray)
	if primitive == nil {
		return nil, false
	}

	point := ray.At(t)
	return &HitRecord{
		T:         t,
		Point:     point,
		Normal:    primitive.NormalAt(point, ray.Time, random),
		Surface:   primitive.SurfaceAt(point),
		Primitive: primitive,
	}, true
}
