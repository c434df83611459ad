package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const rainbowRowLength = 5

// rainbowRow places five shiny spheres on the floor in a diagonal line
// receding to the right, coloured evenly around the colour wheel.
func rainbowRow() []*geometry.Sphere {
	pos := core.NewVec3(-2.5, -0.5, 3)
	radius := pos.Y - floorHeight

	spheres := make([]*geometry.Sphere, rainbowRowLength)
	for i := range spheres {
		color := core.ColourPhase(float64(i) / rainbowRowLength)
		spheres[i] = geometry.NewSphere(pos, radius, material.NewShinySurface(color, 0.5))
		pos = pos.Add(core.NewVec3(2.5, 0, 2))
	}
	return spheres
}

func rainbowRowScene(name string, width int) *Scene {
	return &Scene{
		Name:          name,
		Width:         width,
		Height:        512,
		Spheres:       rainbowRow(),
		Checkerboards: []*geometry.Checkerboard{matteFloor()},
		Lights: []*lights.Light{
			lights.NewPointLight(core.NewVec3(10, 10, 3), core.White),
		},
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// NewDepthOfFieldScene creates the rainbow row seen through a wide lens
// focused on the middle sphere.
func NewDepthOfFieldScene() *Scene {
	s := rainbowRowScene("dof", 512)
	s.SamplingConfig.NumSamples = 100
	s.SamplingConfig.BlurSize = 3
	s.SamplingConfig.FocalDepth = 5
	return s
}

// NewMotionBlurScene creates the rainbow row with every sphere moving one
// unit away from the camera while the shutter is open.
func NewMotionBlurScene() *Scene {
	s := rainbowRowScene("moblur", 1024)
	for _, sphere := range s.Spheres {
		sphere.WithVelocity(core.NewVec3(0, 0, 1))
	}
	s.SamplingConfig.NumSamples = 1000
	s.SamplingConfig.FocalDepth = 5
	s.SamplingConfig.Shutter = 1
	return s
}
