package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSphereShellScene surrounds the camera with count randomly coloured
// spheres packed into the shell between radii inner and outer. A point light
// sits at the camera.
func NewSphereShellScene(inner, outer float64, count int, seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	spheres := make([]*geometry.Sphere, 0, count)
	for len(spheres) < count {
		center, radius := placeInShell(random, inner, outer, spheres)
		diffuse := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
		surface := material.NewSurface(diffuse, grey(0.5), grey(0.5))
		spheres = append(spheres, geometry.NewSphere(center, radius, surface))
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.NumSamples = 16
	samplingConfig.Seed = seed

	return &Scene{
		Name:           "spheres",
		Width:          1280,
		Height:         1024,
		Spheres:        spheres,
		Lights:         []*lights.Light{lights.NewPointLight(core.Vec3{}, core.White)},
		SamplingConfig: samplingConfig,
	}
}

// placeInShell picks random points in the shell until one has room for a
// sphere that stays inside the shell and clear of every placed sphere.
func placeInShell(random *rand.Rand, inner, outer float64, placed []*geometry.Sphere) (core.Vec3, float64) {
	for {
		dist := (outer-inner)*random.Float64() + inner
		theta := 2 * math.Pi * random.Float64()
		phi := 2*math.Pi*random.Float64() - math.Pi

		center := core.NewVec3(
			dist*math.Cos(theta)*math.Cos(phi),
			dist*math.Sin(theta)*math.Cos(phi),
			dist*math.Sin(phi),
		)
		radius := math.Min(outer-dist, dist-inner)

		for _, other := range placed {
			gap := center.Subtract(other.Center).Length() - other.Radius
			radius = math.Min(radius, gap)
			if radius <= 0 {
				break
			}
		}

		if radius > 0 {
			return center, radius
		}
	}
}
