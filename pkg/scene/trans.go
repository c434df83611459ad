package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// tintedGlass takes on color after travelling five units through it. The
// diffuse part is kept faint so the transmitted light dominates.
func tintedGlass(color core.Vec3, shine, index float64) *material.Surface {
	return material.NewGlassSurface(color.Multiply(0.2), shine, color, 5, index)
}

// NewTransparencyScene creates a row of five tinted glass spheres whose
// refractive index rises from left to right, ending at 1.5.
func NewTransparencyScene() *Scene {
	pos := core.NewVec3(-6, 0, 8)
	spheres := make([]*geometry.Sphere, 5)
	for i := range spheres {
		color := core.ColourPhase(float64(i) / 5)
		index := 1 / (1 - 0.333*math.Pow(0.5, float64(4-i)))
		spheres[i] = geometry.NewSphere(pos, 1.3, tintedGlass(color, 0.1, index))
		pos = pos.Add(core.NewVec3(3, 0, 0))
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.NumSamples = 1000

	return &Scene{
		Name:    "trans",
		Width:   1024,
		Height:  384,
		Spheres: spheres,
		Checkerboards: []*geometry.Checkerboard{
			newFloor(tintedGlass(grey(0.9), 0, 1), tintedGlass(grey(0.1), 0, 1)),
		},
		Lights: []*lights.Light{
			lights.NewAreaLight(core.NewVec3(20, 12.5, 2.5), core.White, core.NewVec3(0, 0, 5), core.NewVec3(0, 5, 0)),
		},
		SamplingConfig: samplingConfig,
	}
}
