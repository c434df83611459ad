package core

import "math"

// The colour wheel is spanned by two unit vectors perpendicular to (1, 1, 1)
// and to each other, so every phase has the same channel sum.
var (
	wheelU = Vec3{math.Sqrt(1.0 / 2.0), -math.Sqrt(1.0 / 2.0), 0}
	wheelV = Vec3{math.Sqrt(1.0 / 6.0), math.Sqrt(1.0 / 6.0), -2 * math.Sqrt(1.0/6.0)}
)

// ColourPhase returns the colour x of the way around the colour wheel, x in [0, 1].
func ColourPhase(x float64) Vec3 {
	phase := x * 2 * math.Pi
	c := wheelU.Multiply(math.Cos(phase)).Add(wheelV.Multiply(math.Sin(phase)))
	return c.Add(White).Multiply(0.5)
}
