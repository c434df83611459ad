package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// FuzzVariant is one setting of the fuzzy reflection demo
type FuzzVariant struct {
	ID    string
	Size  float64
	Style geometry.FuzzStyle
}

// FuzzVariants are rendered side by side, from a sharp mirror to strongly
// blurred reflections, then blur restricted to each axis.
var FuzzVariants = []FuzzVariant{
	{"fuzzy-sharp", 0, geometry.FuzzNone},
	{"fuzzy-fine", 0.05, geometry.FuzzBoth},
	{"fuzzy-coarse", 0.15, geometry.FuzzBoth},
	{"fuzzy-horizontal", 0.15, geometry.FuzzHorizontal},
	{"fuzzy-vertical", 0.15, geometry.FuzzVertical},
}

// FuzzySheetAcross is the number of variants per row of the contact sheet
const FuzzySheetAcross = 3

// NewFuzzyScene creates the soft shadow sphere, lit by a single white point
// light, with a perturbed surface normal.
func NewFuzzyScene(size float64, style geometry.FuzzStyle) *Scene {
	center := core.NewVec3(0, 0, 5)
	ball := geometry.NewSphere(center, center.Y-floorHeight, material.NewShinySurface(grey(0.7), 0.5)).
		WithFuzz(size, style)

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.NumSamples = 1000

	return &Scene{
		Name:           fmt.Sprintf("fuzzy %.2f %s", size, style),
		Width:          256,
		Height:         256,
		Spheres:        []*geometry.Sphere{ball},
		Checkerboards:  []*geometry.Checkerboard{matteFloor()},
		Lights:         []*lights.Light{lights.NewPointLight(core.NewVec3(10, 7.5, 0.5), core.White)},
		SamplingConfig: samplingConfig,
	}
}

// NewFuzzySheet creates one scene per entry of FuzzVariants
func NewFuzzySheet() []*Scene {
	scenes := make([]*Scene, len(FuzzVariants))
	for i, v := range FuzzVariants {
		scenes[i] = NewFuzzyScene(v.Size, v.Style)
	}
	return scenes
}
