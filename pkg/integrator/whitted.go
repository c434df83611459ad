package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// WhittedIntegrator implements recursive ray tracing: Phong direct lighting
// with shadow rays, mirror reflection and refraction through spheres.
//
// Colours are premultiplied: each ray carries the product of the
// coefficients along its bounce history, so a branch can be skipped as soon
// as the light it could contribute falls below Config.CutoffEnergy.
type WhittedIntegrator struct {
	world  *geometry.World
	lights []*lights.Light
	config Config
}

// NewWhittedIntegrator creates a new Whitted-style integrator
func NewWhittedIntegrator(world *geometry.World, sceneLights []*lights.Light, config Config) *WhittedIntegrator {
	return &WhittedIntegrator{
		world:  world,
		lights: sceneLights,
		config: config,
	}
}

// RayColor traces a camera ray with a white premultiplied colour
func (wi *WhittedIntegrator) RayColor(ray core.Ray, random *rand.Rand, stats *TraceStats) core.Vec3 {
	stats.CameraRays++
	return wi.trace(ray, core.White, 0, random, stats)
}

// trace returns the premultiplied colour seen along ray
func (wi *WhittedIntegrator) trace(ray core.Ray, premul core.Vec3, depth int, random *rand.Rand, stats *TraceStats) core.Vec3 {
	hit, isHit := wi.world.Hit(ray, random)
	if !isHit {
		return core.Black
	}

	reflected := ray.Direction.Reflect(hit.Normal)

	color := wi.directLighting(hit, reflected, ray.Time, random, stats).MultiplyVec(premul)

	reflectPremul := premul.MultiplyVec(hit.Surface.Reflective)
	if reflectPremul.Sum() > wi.config.CutoffEnergy && wi.canRecurse(depth, stats) {
		stats.ReflectionRays++
		bounce := core.NewRayAt(hit.Point, reflected, ray.Time)
		color = color.Add(wi.trace(bounce, reflectPremul, depth+1, random, stats))
	}

	if hit.Surface.IsTransparent() {
		color = color.Add(wi.transmitted(hit, ray, premul, depth, random, stats))
	}

	return color
}

// directLighting sums the diffuse and specular response to every light that
// is above the surface horizon and not shadowed.
func (wi *WhittedIntegrator) directLighting(hit *geometry.HitRecord, reflected core.Vec3, time float64, random *rand.Rand, stats *TraceStats) core.Vec3 {
	var color core.Vec3
	surface := hit.Surface

	for _, light := range wi.lights {
		sample := light.Sample(random)

		toLight := sample.Position.Subtract(hit.Point).Normalize()
		diffuse := hit.Normal.Dot(toLight)
		if diffuse <= 0 {
			continue
		}

		if wi.occluded(sample.Position, hit.Point, toLight, time, stats) {
			continue
		}

		color = color.Add(sample.Color.MultiplyVec(surface.Diffuse).Multiply(diffuse))

		if specular := reflected.Dot(toLight); specular >= 0 {
			specular = math.Pow(specular, wi.config.SpecularExponent)
			color = color.Add(sample.Color.MultiplyVec(surface.Specular).Multiply(specular))
		}
	}

	return color
}

// occluded casts a shadow ray from the light toward point and reports whether
// anything, including the primitive containing point, lies strictly between.
func (wi *WhittedIntegrator) occluded(lightPos, point, toLight core.Vec3, time float64, stats *TraceStats) bool {
	stats.ShadowRays++

	shadowRay := core.NewRayAt(lightPos, toLight.Negate(), time)
	_, dist := wi.world.Nearest(shadowRay)

	return dist*dist+core.Epsilon < point.Subtract(lightPos).LengthSquared()
}

// transmitted follows light refracted through the hit primitive, attenuated
// by the surface's transparency over the distance travelled inside.
func (wi *WhittedIntegrator) transmitted(hit *geometry.HitRecord, ray core.Ray, premul core.Vec3, depth int, random *rand.Rand, stats *TraceStats) core.Vec3 {
	tr, ok := hit.Primitive.Transmit(hit.Point, ray.Direction, ray.Time)
	if !ok {
		return core.Black
	}
	stats.InternalReflections += int64(tr.InternalReflections)

	transPremul := premul.MultiplyVec(hit.Surface.Transmittance(tr.Distance))
	if transPremul.Sum() <= wi.config.CutoffEnergy || !wi.canRecurse(depth, stats) {
		return core.Black
	}

	stats.TransmissionRays++
	through := core.NewRayAt(tr.Point, tr.Direction, ray.Time)
	return wi.trace(through, transPremul, depth+1, random, stats)
}

// canRecurse enforces MaxDepth, which guarantees termination even when
// reflective or transparent coefficients keep the energy above the cutoff.
func (wi *WhittedIntegrator) canRecurse(depth int, stats *TraceStats) bool {
	if depth >= wi.config.MaxDepth {
		stats.DepthCutoffs++
		return false
	}
	return true
}
