package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSoftShadowScene creates a grey sphere resting on the floor, lit by a
// small rainbow area light and a large dim fill light.
func NewSoftShadowScene() *Scene {
	center := core.NewVec3(0, 0, 5)
	ball := geometry.NewSphere(center, center.Y-floorHeight, material.NewShinySurface(grey(0.7), 0.5))

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.NumSamples = 1000

	return &Scene{
		Name:          "soft",
		Width:         512,
		Height:        512,
		Spheres:       []*geometry.Sphere{ball},
		Checkerboards: []*geometry.Checkerboard{matteFloor()},
		Lights: []*lights.Light{
			// A black light colour picks a hue per sample from the light's position.
			lights.NewAreaLight(core.NewVec3(10, 7.5, 0.5), core.Black, core.NewVec3(0, 0, 5), core.NewVec3(0, 5, 0)),
			lights.NewAreaLight(core.NewVec3(-15, 10, -10), grey(0.15), core.NewVec3(0, 0, 30), core.NewVec3(30, 0, 0)),
		},
		SamplingConfig: samplingConfig,
	}
}
