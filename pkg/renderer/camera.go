package renderer

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates rays from the origin looking down +z. The image plane is
// width/2 units away, so the horizontal field of view is 90 degrees and one
// unit on the image plane is one pixel.
type Camera struct {
	width         int
	height        int
	focalDepth    float64
	blurSize      float64
	antialiasSize float64
	shutter       float64
}

// NewCamera creates a camera for an image of the given size
func NewCamera(width, height int, config scene.SamplingConfig) *Camera {
	return &Camera{
		width:         width,
		height:        height,
		focalDepth:    config.FocalDepth,
		blurSize:      config.BlurSize,
		antialiasSize: config.AntialiasSize,
		shutter:       config.Shutter,
	}
}

// GetRay draws one sample ray for pixel (x, y). With an open shutter the
// sample time is drawn first, then the lens offset, then the pixel jitter.
func (c *Camera) GetRay(x, y int, random *rand.Rand) core.Ray {
	var time float64
	if c.shutter > 0 {
		time = random.Float64() * c.shutter
	}

	lensNoise := core.GaussianXY(random, c.blurSize)
	aaNoise := core.GaussianXY(random, c.antialiasSize)

	ray := c.RayThrough(x, y, lensNoise, aaNoise)
	ray.Time = time
	return ray
}

// RayThrough builds the ray for pixel (x, y) from explicit lens and pixel
// offsets in the image plane. Moving the origin against the lens offset
// keeps points at z = focalDepth on the unjittered pixel ray.
func (c *Camera) RayThrough(x, y int, lensNoise, aaNoise core.Vec3) core.Ray {
	direction := core.NewVec3(float64(x-c.width/2), float64(c.height/2-y), float64(c.width/2))

	direction = direction.Add(lensNoise)
	origin := core.NewVec3(
		-c.focalDepth*lensNoise.X/direction.Z,
		-c.focalDepth*lensNoise.Y/direction.Z,
		0,
	)

	direction = direction.Add(aaNoise)
	return core.NewRay(origin, direction.Normalize())
}
