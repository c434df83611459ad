package lights

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Light is a point or parallelogram area light. The sampled position is
// Position + Area1*u + Area2*v for uniform u, v; with zero area vectors it is
// a point light.
type Light struct {
	Position core.Vec3
	Color    core.Vec3 // all-zero selects a colour-wheel hue per sample
	Area1    core.Vec3
	Area2    core.Vec3
}

// Sample is one jittered instance of a light.
type Sample struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a light with no area
func NewPointLight(position, color core.Vec3) *Light {
	return &Light{Position: position, Color: color}
}

// NewAreaLight creates a light spread over the parallelogram spanned by
// area1 and area2 from position.
func NewAreaLight(position, color, area1, area2 core.Vec3) *Light {
	return &Light{Position: position, Color: color, Area1: area1, Area2: area2}
}

// IsRainbow reports whether the light picks a hue per sample
func (l *Light) IsRainbow() bool {
	return l.Color.IsZero()
}

// Sample draws a position from the light's area. Two uniforms are always
// consumed so that point and area lights advance the random stream equally.
func (l *Light) Sample(random *rand.Rand) Sample {
	v := random.Float64()
	u := random.Float64()

	position := l.Position.
		Add(l.Area1.Multiply(u)).
		Add(l.Area2.Multiply(v))

	color := l.Color
	if l.IsRainbow() {
		color = core.ColourPhase(u)
	}

	return Sample{Position: position, Color: color}
}
