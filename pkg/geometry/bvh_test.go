package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func randomSpheres(random *rand.Rand, count int, moving bool) []*Sphere {
	spheres := make([]*Sphere, count)
	for i := range spheres {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20+5)
		spheres[i] = NewSphere(center, 0.2+random.Float64(), testSurface())
		if moving && i%3 == 0 {
			spheres[i].WithVelocity(core.NewVec3(random.Float64()-0.5, 0, random.Float64()))
		}
	}
	return spheres
}

func TestSphereBVH_MatchesLinearScan(t *testing.T) {
	tests := []struct {
		name    string
		moving  bool
		shutter float64
	}{
		{"static spheres", false, 0},
		{"moving spheres", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := rand.New(rand.NewSource(7))
			spheres := randomSpheres(random, 200, tt.moving)
			board := testCheckerboard()

			linear := NewWorld(spheres, []*Checkerboard{board})
			indexed := NewIndexedWorld(spheres, []*Checkerboard{board}, tt.shutter)
			if indexed.bvh == nil {
				t.Fatal("Expected the indexed world to build a hierarchy")
			}

			for i := 0; i < 2000; i++ {
				dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, 1).Normalize()
				ray := core.NewRayAt(core.Vec3{}, dir, random.Float64()*tt.shutter)

				wantP, wantT := linear.Nearest(ray)
				gotP, gotT := indexed.Nearest(ray)
				if gotP != wantP || (gotT != wantT && !(math.IsInf(gotT, 1) && math.IsInf(wantT, 1))) {
					t.Fatalf("ray %d: indexed hit %v at %f, linear hit %v at %f", i, gotP, gotT, wantP, wantT)
				}
			}
		})
	}
}

func TestSphereBVH_LeafSize(t *testing.T) {
	random := rand.New(rand.NewSource(3))

	small := NewSphereBVH(randomSpheres(random, leafSize, false), 0)
	if d := small.root.depth(); d != 0 {
		t.Errorf("Expected a single leaf for %d spheres, got depth %d", leafSize, d)
	}

	large := NewSphereBVH(randomSpheres(random, leafSize+1, false), 0)
	if d := large.root.depth(); d == 0 {
		t.Errorf("Expected a split for %d spheres", leafSize+1)
	}

	if NewIndexedWorld(randomSpheres(random, leafSize, false), nil, 0).bvh != nil {
		t.Error("Expected small worlds to scan linearly")
	}
}

func TestSphereBVH_Empty(t *testing.T) {
	b := NewSphereBVH(nil, 0)
	i, dist := b.Nearest(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if i != -1 || !math.IsInf(dist, 1) {
		t.Errorf("Expected no hit, got %d at %f", i, dist)
	}
}

func TestSphereBVH_TiesPreferLowerIndex(t *testing.T) {
	// Spheres 0 and 15 coincide at x=0 and straddle the median split, with
	// seven spheres either side of them.
	spheres := make([]*Sphere, 2*leafSize)
	for i := range spheres {
		x := 0.0
		switch {
		case i >= 1 && i <= 7:
			x = -3 * float64(i)
		case i >= 8 && i <= 14:
			x = 3 * float64(i-7)
		}
		spheres[i] = NewSphere(core.NewVec3(x, 0, 10), 1, testSurface())
	}

	b := NewSphereBVH(spheres, 0)
	i, dist := b.Nearest(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if i != 0 || math.Abs(dist-9) > 1e-9 {
		t.Errorf("Expected sphere 0 at distance 9, got %d at %f", i, dist)
	}
}

func TestSphereBVH_Covers(t *testing.T) {
	random := rand.New(rand.NewSource(5))

	static := NewSphereBVH(randomSpheres(random, 20, false), 0)
	if !static.Covers(3) {
		t.Error("Expected a static hierarchy to cover any time")
	}

	moving := NewSphereBVH(randomSpheres(random, 20, true), 0.5)
	if !moving.Covers(0.25) || moving.Covers(0.75) || moving.Covers(-0.1) {
		t.Error("Expected a moving hierarchy to cover only its shutter interval")
	}
}

func TestSphere_Bounds(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 1, testSurface()).WithVelocity(core.NewVec3(0, 0, 2))
	box := s.Bounds(1)

	if box.Min.Z > 2 || box.Max.Z < 6 || box.Min.X > 0 || box.Max.X < 2 {
		t.Errorf("Expected the box to cover the sweep from z=3 to z=5, got %+v", box)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := core.NewAABB(core.NewVec3(-1, -1, 4), core.NewVec3(1, 1, 6))

	tests := []struct {
		name     string
		ray      core.Ray
		tMax     float64
		expected bool
	}{
		{"straight through", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), math.Inf(1), true},
		{"pointing away", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), math.Inf(1), false},
		{"parallel outside slab", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 1)), math.Inf(1), false},
		{"beyond tMax", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 3, false},
		{"diagonal miss", core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 1).Normalize()), math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, core.Epsilon, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
