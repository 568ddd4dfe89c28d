package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrEmptyBVH is returned when a BVH is built from no objects
var ErrEmptyBVH = errors.New("cannot build a BVH from zero objects")

var logger = log.New("bvh")

// noObject marks an internal node in the arena
const noObject = -1

// bvhNode is either a leaf (object >= 0) or an internal node with two children
type bvhNode struct {
	box         core.AABB
	object      int
	left, right int
}

// bvhItem is a build-time record with the object's box and centroid precomputed
type bvhItem struct {
	object   int
	box      core.AABB
	centroid core.Vec3
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat arena with the root at index 0. A BVH is immutable
// after construction and safe for concurrent Hit calls.
type BVH struct {
	objects []Hittable
	nodes   []bvhNode
}

// BVHStats describes the shape of a built tree
type BVHStats struct {
	Objects  int
	Nodes    int
	Leaves   int
	MaxDepth int
}

// NewBVH constructs a BVH over objects. Each object ends up in exactly one leaf.
func NewBVH(objects []Hittable) (*BVH, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("new bvh: %w", ErrEmptyBVH)
	}

	bvh := &BVH{
		objects: make([]Hittable, len(objects)),
		nodes:   make([]bvhNode, 0, 2*len(objects)-1),
	}
	copy(bvh.objects, objects)

	items := make([]bvhItem, len(objects))
	for i, object := range bvh.objects {
		box := object.BoundingBox()
		items[i] = bvhItem{object: i, box: box, centroid: box.Center()}
	}

	bvh.build(items)

	if log.IsEnabled(log.Debug) {
		stats := bvh.Stats()
		logger.Debugf("built BVH over %d objects (%d nodes, %d leaves, max depth %d)",
			stats.Objects, stats.Nodes, stats.Leaves, stats.MaxDepth)
	}

	return bvh, nil
}

// build appends the subtree for items to the arena and returns its root index.
// items is reordered in place.
func (bvh *BVH) build(items []bvhItem) int {
	if len(items) == 1 {
		return bvh.addNode(bvhNode{box: items[0].box, object: items[0].object})
	}

	box := core.EmptyAABB()
	for _, item := range items {
		box = box.Union(item.box)
	}

	index := bvh.addNode(bvhNode{box: box, object: noObject})

	if len(items) > 2 {
		axis := box.LongestAxis()
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].centroid.Axis(axis) < items[j].centroid.Axis(axis)
		})
	}

	// Left half takes the extra item when the count is odd
	mid := (len(items) + 1) / 2
	left := bvh.build(items[:mid])
	right := bvh.build(items[mid:])

	bvh.nodes[index].left = left
	bvh.nodes[index].right = right
	return index
}

func (bvh *BVH) addNode(node bvhNode) int {
	bvh.nodes = append(bvh.nodes, node)
	return len(bvh.nodes) - 1
}

// Hit returns the nearest hit among all objects in the tree
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return bvh.hitNode(0, ray, tMin, tMax)
}

// hitNode visits the left child first and lets the right child only look
// for hits closer than the left's
func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.object != noObject {
		return bvh.objects[node.object].Hit(ray, tMin, tMax)
	}

	leftHit, hitLeft := bvh.hitNode(node.left, ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := bvh.hitNode(node.right, ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.nodes[0].box
}

// Stats walks the tree and reports its size and depth. The root has depth 0.
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Objects: len(bvh.objects)}
	bvh.collectStats(0, 0, &stats)
	return stats
}

func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node := bvh.nodes[index]
	if node.object != noObject {
		stats.Leaves++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
