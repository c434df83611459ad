package geometry

import (
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Nodes holding this many spheres or fewer are scanned linearly
const leafSize = 8

type bvhNode struct {
	box         core.AABB
	left, right *bvhNode
	items       []int // sphere indices, leaves only
}

// SphereBVH is a bounding volume hierarchy over a list of spheres. Each box
// covers its sphere's sweep over the shutter interval [0, shutter], so rays
// sampled at any time in that interval can use it.
type SphereBVH struct {
	root    *bvhNode
	spheres []*Sphere
	shutter float64
	static  bool
}

// NewSphereBVH builds a hierarchy by median splits along the longest axis
func NewSphereBVH(spheres []*Sphere, shutter float64) *SphereBVH {
	b := &SphereBVH{spheres: spheres, shutter: shutter, static: true}
	for _, s := range spheres {
		if !s.Velocity.IsZero() {
			b.static = false
		}
	}
	if len(spheres) == 0 {
		return b
	}

	items := make([]int, len(spheres))
	for i := range items {
		items[i] = i
	}
	b.root = b.build(items)
	return b
}

func (b *SphereBVH) build(items []int) *bvhNode {
	box := b.spheres[items[0]].Bounds(b.shutter)
	for _, i := range items[1:] {
		box = box.Union(b.spheres[i].Bounds(b.shutter))
	}

	if len(items) <= leafSize {
		return &bvhNode{box: box, items: items}
	}

	axis := box.LongestAxis()
	sort.SliceStable(items, func(i, j int) bool {
		return b.spheres[items[i]].Bounds(b.shutter).Center().Axis(axis) <
			b.spheres[items[j]].Bounds(b.shutter).Center().Axis(axis)
	})

	mid := len(items) / 2
	return &bvhNode{
		box:   box,
		left:  b.build(items[:mid]),
		right: b.build(items[mid:]),
	}
}

// Covers reports whether the boxes bound the spheres at the given time
func (b *SphereBVH) Covers(time float64) bool {
	return b.static || (time >= 0 && time <= b.shutter)
}

// Nearest returns the index of the closest sphere further than core.Epsilon
// along the ray and its distance, or -1 and +Inf. Of spheres at exactly the
// same distance the lowest index wins, matching a linear scan.
func (b *SphereBVH) Nearest(ray core.Ray) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	if b.root != nil {
		b.search(b.root, ray, &best, &bestDist)
	}
	return best, bestDist
}

func (b *SphereBVH) search(node *bvhNode, ray core.Ray, best *int, bestDist *float64) {
	if !node.box.Hit(ray, core.Epsilon, *bestDist) {
		return
	}

	if node.left == nil {
		for _, i := range node.items {
			t := b.spheres[i].Intersect(ray)
			if core.Epsilon < t && (t < *bestDist || (t == *bestDist && i < *best)) {
				*best, *bestDist = i, t
			}
		}
		return
	}

	b.search(node.left, ray, best, bestDist)
	b.search(node.right, ray, best, bestDist)
}

// depth returns the number of levels below node, for tests
func (n *bvhNode) depth() int {
	if n == nil || n.left == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
