package integrator

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the colour arriving along a camera ray. Counters for
	// the rays it spawns are added to stats, which must not be shared
	// between goroutines.
	RayColor(ray core.Ray, random *rand.Rand, stats *TraceStats) core.Vec3
}

// Config holds the recursion limits of the shading model
type Config struct {
	MaxDepth         int     // Maximum number of reflection/transmission bounces
	CutoffEnergy     float64 // Premultiplied channel sum below which bounces are skipped
	SpecularExponent float64 // Phong exponent of the specular highlight
}

// DefaultConfig returns the standard limits
func DefaultConfig() Config {
	return Config{
		MaxDepth:         50,
		CutoffEnergy:     0.1,
		SpecularExponent: 10,
	}
}
