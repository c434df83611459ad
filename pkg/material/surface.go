package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Surface describes how a primitive responds to light. Every coefficient is a
// per-channel multiplier and is not clamped to [0, 1].
type Surface struct {
	Diffuse    core.Vec3 // Lambertian response to each light
	Specular   core.Vec3 // Phong highlight response to each light
	Reflective core.Vec3 // Fraction of the incoming colour sent along the mirror direction

	// Transparency is the per-unit-distance transmittance; light crossing a
	// sphere of chord length d keeps Transparency^d of its colour.
	Transparency core.Vec3

	// RefractiveIndex is the physical index of the interior relative to the
	// surrounding medium. Only consulted when the surface is transparent.
	RefractiveIndex float64
}

// NewSurface creates an opaque surface with independent diffuse, specular
// and reflective colours.
func NewSurface(diffuse, specular, reflective core.Vec3) *Surface {
	return &Surface{
		Diffuse:         diffuse,
		Specular:        specular,
		Reflective:      reflective,
		RefractiveIndex: 1.0,
	}
}

// NewShinySurface creates an opaque surface whose specular and reflective
// coefficients are both the grey level shine.
func NewShinySurface(diffuse core.Vec3, shine float64) *Surface {
	grey := core.NewVec3(shine, shine, shine)
	return NewSurface(diffuse, grey, grey)
}

// NewGlassSurface creates a transparent surface. Transparency is given as the
// colour the light takes on after travelling the distance depth through it.
func NewGlassSurface(diffuse core.Vec3, shine float64, tint core.Vec3, depth, index float64) *Surface {
	return &Surface{
		Diffuse:         diffuse,
		Specular:        core.NewVec3(shine, shine, shine),
		Transparency:    tint.Pow(1.0 / depth),
		RefractiveIndex: index,
	}
}

// IsTransparent reports whether any light can pass through the surface.
func (s *Surface) IsTransparent() bool {
	return !s.Transparency.IsZero()
}

// Transmittance returns the fraction of each channel that survives a path of
// the given length through the surface's interior.
func (s *Surface) Transmittance(distance float64) core.Vec3 {
	return s.Transparency.Pow(distance)
}
