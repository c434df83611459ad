package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MaxInternalBounces bounds the number of total internal reflections a ray
// may undergo inside a sphere before its transmitted light is dropped.
const MaxInternalBounces = 16

// FuzzStyle selects which axes of the random normal perturbation are kept
type FuzzStyle int

const (
	FuzzNone       FuzzStyle = iota
	FuzzHorizontal           // perturb in the XZ plane only
	FuzzVertical             // perturb along Y only
	FuzzBoth                 // perturb in all directions
)

func (f FuzzStyle) String() string {
	switch f {
	case FuzzNone:
		return "none"
	case FuzzHorizontal:
		return "horizontal"
	case FuzzVertical:
		return "vertical"
	case FuzzBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Sphere is a sphere with a single surface. A non-zero Velocity moves the
// centre by Velocity*t at shutter time t.
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Surface   *material.Surface
	FuzzSize  float64
	FuzzStyle FuzzStyle
	Velocity  core.Vec3
}

// NewSphere creates a new static, smooth sphere
func NewSphere(center core.Vec3, radius float64, surface *material.Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: surface,
	}
}

// WithFuzz sets the normal perturbation used for blurred reflections
func (s *Sphere) WithFuzz(size float64, style FuzzStyle) *Sphere {
	s.FuzzSize = size
	s.FuzzStyle = style
	return s
}

// WithVelocity sets the displacement of the centre per unit of shutter time
func (s *Sphere) WithVelocity(velocity core.Vec3) *Sphere {
	s.Velocity = velocity
	return s
}

// CenterAt returns the centre of the sphere at shutter time t
func (s *Sphere) CenterAt(t float64) core.Vec3 {
	if t == 0 || s.Velocity.IsZero() {
		return s.Center
	}
	return s.Center.Add(s.Velocity.Multiply(t))
}

// Intersect returns the distance to the near side of the sphere. Rays that
// miss, graze, or start inside the sphere get +Inf.
func (s *Sphere) Intersect(ray core.Ray) float64 {
	v := s.CenterAt(ray.Time).Subtract(ray.Origin)
	b := ray.Direction.Dot(v)
	discriminant := b*b - v.Dot(v) + s.Radius*s.Radius

	if discriminant > 0 {
		if t := b - math.Sqrt(discriminant); t > 0 {
			return t
		}
	}
	return math.Inf(1)
}

// NormalAt returns the outward normal, perturbed by the sphere's fuzz
func (s *Sphere) NormalAt(point core.Vec3, time float64, random *rand.Rand) core.Vec3 {
	n := point.Subtract(s.CenterAt(time)).Normalize()

	if s.FuzzSize <= 0 || s.FuzzStyle == FuzzNone {
		return n
	}

	r := core.RandomInUnitBall(random)
	switch s.FuzzStyle {
	case FuzzHorizontal:
		r.Y = 0
	case FuzzVertical:
		r.X, r.Z = 0, 0
	}

	return n.Add(r.Multiply(s.FuzzSize)).Normalize()
}

// SurfaceAt returns the sphere's surface
func (s *Sphere) SurfaceAt(point core.Vec3) *material.Surface {
	return s.Surface
}

// Transmit refracts a ray into the sphere at point, carries it across the
// interior and refracts it out again. Total internal reflection at the entry
// sends the ray off along the mirror direction with nothing travelled; at the
// exit the ray reflects back inside and crosses another chord.
func (s *Sphere) Transmit(point, direction core.Vec3, time float64) (Transmission, bool) {
	index := s.Surface.RefractiveIndex
	center := s.CenterAt(time)

	inward := center.Subtract(point).Normalize()
	dir, ok := Refract(direction, inward, 1/index)
	if !ok {
		return Transmission{
			Point:               point,
			Direction:           direction.Reflect(inward),
			InternalReflections: 1,
		}, true
	}

	return crossInterior(center, point, dir, index)
}

// crossInterior carries a ray travelling inside a sphere from point on its
// surface to the exit, reflecting internally while refraction out is
// impossible. A ray refracted in from outside leaves at its entry angle, so
// it meets internal reflection here only through rounding near grazing
// incidence; rays trapped past MaxInternalBounces are dropped.
func crossInterior(center, point, dir core.Vec3, index float64) (Transmission, bool) {
	result := Transmission{}
	p := point
	for {
		chord := 2 * center.Subtract(p).Dot(dir)
		p = p.Add(dir.Multiply(chord))
		result.Distance += chord

		outward := p.Subtract(center).Normalize()
		exit, ok := Refract(dir, outward, index)
		if ok {
			result.Point = p
			result.Direction = exit
			return result, true
		}

		result.InternalReflections++
		if result.InternalReflections > MaxInternalBounces {
			return Transmission{}, false
		}
		dir = dir.Reflect(outward)
	}
}

func (s *Sphere) primitive() {}

// Bounds returns a box containing the sphere at every time in [0, shutter]
func (s *Sphere) Bounds(shutter float64) core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	start := core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
	end := s.CenterAt(shutter)
	return start.Union(core.NewAABB(end.Subtract(r), end.Add(r))).Expand(core.Epsilon)
}
