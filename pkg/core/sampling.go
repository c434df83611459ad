package core

import (
	"math"
	"math/rand"
)

// RandomInUnitBall returns a point uniformly distributed in the unit ball
// using rejection sampling over [-1,1]^3.
func RandomInUnitBall(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// GaussianXY returns normally distributed noise in the XY plane with the given
// standard deviation, using the Box-Muller transform. Two uniforms are always
// consumed, even for a zero size, so the random sequence does not depend on
// the scene's blur settings.
func GaussianXY(random *rand.Rand, size float64) Vec3 {
	// Uniforms in (0, 1] keep the logarithm finite.
	u1 := 1 - random.Float64()
	u2 := 1 - random.Float64()

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	return Vec3{
		X: size * r * math.Cos(theta),
		Y: size * r * math.Sin(theta),
	}
}

// PixelSeed derives a deterministic seed for the pixel (x, y) from the render
// seed, so each pixel owns an independent random stream regardless of which
// worker renders it or in what order.
func PixelSeed(seed int64, x, y int) int64 {
	h := uint64(seed)
	h = splitMix64(h ^ uint64(uint32(x)))
	h = splitMix64(h ^ uint64(uint32(y))<<32)
	return int64(h &^ (1 << 63))
}

func splitMix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
