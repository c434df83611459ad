package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. The camera is fixed
// at the origin looking down +z with a 90 degree horizontal field of view.
type Scene struct {
	Name           string
	Width          int // Default image width
	Height         int // Default image height
	Spheres        []*geometry.Sphere
	Checkerboards  []*geometry.Checkerboard
	Lights         []*lights.Light
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the per-pixel sampling parameters. Its zero value
// is not a usable default: start from DefaultSamplingConfig, since a MaxDepth
// of 0 turns off every reflection and transmission.
type SamplingConfig struct {
	NumSamples    int     // Rays averaged per pixel
	AntialiasSize float64 // Std-dev of the pixel jitter, in pixels
	BlurSize      float64 // Std-dev of the lens jitter; 0 is a pinhole camera
	FocalDepth    float64 // z of the plane kept sharp by the lens
	Shutter       float64 // Sample times are drawn from [0, Shutter); 0 freezes motion
	MaxDepth      int     // Maximum reflection/transmission bounces; 0 traces camera and shadow rays only
	Seed          int64   // Base seed of the per-pixel random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		NumSamples:    100,
		AntialiasSize: 0.5,
		MaxDepth:      50,
		Seed:          42,
	}
}

// World returns the primitive set for the scene's spheres and checkerboards
func (s *Scene) World() *geometry.World {
	return geometry.NewIndexedWorld(s.Spheres, s.Checkerboards, s.SamplingConfig.Shutter)
}

// Validate checks the scene for values the tracer cannot give a meaning to.
func (s *Scene) Validate() error {
	sc := s.SamplingConfig
	if sc.NumSamples < 1 {
		return fmt.Errorf("%w: got %d", ErrNoSamples, sc.NumSamples)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"antialias size", sc.AntialiasSize},
		{"blur size", sc.BlurSize},
		{"shutter", sc.Shutter},
	} {
		if p.value < 0 || !finite(p.value) {
			return fmt.Errorf("%w: %s %v", ErrInvalidSampling, p.name, p.value)
		}
	}
	if !finite(sc.FocalDepth) {
		return fmt.Errorf("%w: focal depth %v", ErrInvalidSampling, sc.FocalDepth)
	}
	if sc.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidSampling, sc.MaxDepth)
	}

	for i, sphere := range s.Spheres {
		if sphere == nil || sphere.Surface == nil {
			return fmt.Errorf("%w %d: missing surface", ErrInvalidSphere, i)
		}
		if !(sphere.Radius > 0) || !finiteVec(sphere.Center) || !finiteVec(sphere.Velocity) {
			return fmt.Errorf("%w %d: centre %v radius %v", ErrInvalidSphere, i, sphere.Center, sphere.Radius)
		}
		if sphere.Surface.IsTransparent() && !(sphere.Surface.RefractiveIndex > 0) {
			return fmt.Errorf("%w %d: refractive index %v", ErrInvalidSphere, i, sphere.Surface.RefractiveIndex)
		}
	}

	for i, board := range s.Checkerboards {
		if board == nil || board.P1 == nil || board.P2 == nil {
			return fmt.Errorf("%w %d: missing surface", ErrInvalidPlane, i)
		}
		if math.Abs(board.Normal.Length()-1) > 1e-9 || !finite(board.Distance) {
			return fmt.Errorf("%w %d: normal %v distance %v", ErrInvalidPlane, i, board.Normal, board.Distance)
		}
	}

	for i, light := range s.Lights {
		if light == nil || !finiteVec(light.Position) {
			return fmt.Errorf("%w %d", ErrInvalidLight, i)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v core.Vec3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Every demo stands on the same checkerboard floor two units below the
// camera, tiled in light and dark grey.
const floorHeight = -2.0

func newFloor(light, dark *material.Surface) *geometry.Checkerboard {
	return geometry.NewCheckerboard(core.NewVec3(0, 1, 0), floorHeight, light, dark)
}

func grey(v float64) core.Vec3 {
	return core.NewVec3(v, v, v)
}

func matteFloor() *geometry.Checkerboard {
	return newFloor(material.NewShinySurface(grey(0.9), 0), material.NewShinySurface(grey(0.1), 0))
}
