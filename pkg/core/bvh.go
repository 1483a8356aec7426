package core

import (
	"math"
	"sort"
)

// Traversal stack capacity. Overflow means the tree is pathologically
// unbalanced, which is an invariant violation rather than bad input.
const bvhStackSize = 64

const noPrimitive = -1

// bvhPrimitive is the per-primitive working record used only during build
type bvhPrimitive struct {
	bounds   AABB
	centroid [3]float64
	index    int
}

// bvhNode is a binary tree node. A node is a leaf if and only if both
// children are nil and primID is non-negative.
type bvhNode struct {
	left   *bvhNode
	right  *bvhNode
	bounds AABB
	primID int
}

func (n *bvhNode) isLeaf() bool {
	return n.left == nil && n.right == nil && n.primID != noPrimitive
}

// BVH accelerates nearest-hit ray queries over a PrimitiveSet with a
// binary bounding volume hierarchy. Build once, then treat as read-only;
// concurrent Intersect calls are safe.
type BVH struct {
	root *bvhNode
	set  PrimitiveSet
}

// NewBVH creates an empty, unbuilt accelerator
func NewBVH() *BVH {
	return &BVH{}
}

// Build constructs the tree over the given primitive set. Degenerate
// geometry (zero-size boxes) is valid; an empty set leaves the root unset
// and every query reports no hit.
func (b *BVH) Build(set PrimitiveSet) error {
	count := set.PrimitiveCount()
	if count == 0 {
		b.root = nil
		b.set = set
		return nil
	}

	prims := make([]*bvhPrimitive, count)
	for i := 0; i < count; i++ {
		bounds := set.PrimitiveBounds(i)
		prims[i] = &bvhPrimitive{
			bounds: bounds,
			centroid: [3]float64{
				(bounds.Max.X + bounds.Min.X) / 2,
				(bounds.Max.Y + bounds.Min.Y) / 2,
				(bounds.Max.Z + bounds.Min.Z) / 2,
			},
			index: i,
		}
	}

	b.root = buildBVH(prims, 0)
	b.set = set
	return nil
}

// Bounds returns the bounding box of the whole tree
func (b *BVH) Bounds() AABB {
	if b.root == nil {
		return AABB{}
	}
	return b.root.bounds
}

// buildBVH recursively partitions prims, cycling the split axis X->Y->Z
// per level regardless of spatial extent
func buildBVH(prims []*bvhPrimitive, axis int) *bvhNode {
	node := &bvhNode{primID: noPrimitive}

	if len(prims) == 1 {
		node.primID = prims[0].index
		node.bounds = prims[0].bounds
		return node
	}

	sort.SliceStable(prims, func(i, j int) bool {
		return prims[i].centroid[axis] < prims[j].centroid[axis]
	})
	median := findMedian(prims, axis)
	nextAxis := (axis + 1) % 3

	node.left = buildBVH(prims[:median], nextAxis)
	node.right = buildBVH(prims[median:], nextAxis)
	node.bounds = node.left.bounds.Union(node.right.bounds)

	return node
}

// findMedian picks the split index whose centroid is closest to the
// midpoint between the first and last centroid values of the sorted range,
// using a one-sided binary search. Ties break toward the lower index.
func findMedian(prims []*bvhPrimitive, axis int) int {
	low := 0
	high := len(prims) - 1
	mid := -1
	key := (prims[low].centroid[axis] + prims[high].centroid[axis]) / 2

	for low != mid {
		mid = (low + high) / 2
		if key < prims[mid].centroid[axis] {
			high = mid
		} else if prims[mid].centroid[axis] < key {
			low = mid
		} else {
			break
		}
	}

	return mid + 1
}

// Intersect finds the nearest primitive hit within the ray's active range.
// Traversal is iterative with a bounded node stack; descent order is
// depth-first and does not guarantee nearest-box-first visitation.
func (b *BVH) Intersect(ray Ray, time float64) (Intersection, bool) {
	if b.root == nil {
		return Intersection{}, false
	}

	const (
		hitNone  = 0
		hitLeft  = 1
		hitRight = 2
		hitBoth  = 3
	)

	var stack [bvhStackSize]*bvhNode
	depth := 0

	closest := Intersection{THit: math.MaxFloat64}
	hit := false

	node := b.root
	for {
		if node.isLeaf() {
			if isect, ok := b.primRayIntersect(node.primID, time, ray); ok && isect.THit < closest.THit {
				closest = isect
				hit = true
			}

			if depth == 0 {
				break
			}
			depth--
			node = stack[depth]
			continue
		}

		whichHit := hitNone
		if node.left.bounds.Hit(ray, ray.TMin, ray.TMax) {
			whichHit |= hitLeft
		}
		if node.right.bounds.Hit(ray, ray.TMin, ray.TMax) {
			whichHit |= hitRight
		}

		switch whichHit {
		case hitNone:
			if depth == 0 {
				return closest, hit
			}
			depth--
			node = stack[depth]
		case hitLeft:
			node = node.left
		case hitRight:
			node = node.right
		case hitBoth:
			if depth >= bvhStackSize {
				panic("bvh: traversal stack overflow")
			}
			stack[depth] = node.right
			depth++
			node = node.left
		}
	}

	return closest, hit
}

// primRayIntersect runs the primitive's own intersection test and rejects
// hits whose t falls outside the ray's range, guarding against primitive
// routines that report an out-of-range root
func (b *BVH) primRayIntersect(primID int, time float64, ray Ray) (Intersection, bool) {
	isect, ok := b.set.RayIntersect(primID, time, ray)
	if !ok {
		return Intersection{}, false
	}
	if isect.THit < ray.TMin || ray.TMax < isect.THit {
		return Intersection{}, false
	}
	return isect, true
}
