package kdtree

import (
	"fmt"
	"math"
	"sort"
)

const (
	axisLat = 0
	axisLon = 1
)

// KDTree implements a 2D k-d tree over municipal tree records for fast
// nearest neighbor search. It is built once and read-only afterwards, so
// any number of queries may run concurrently without locking.
type KDTree struct {
	root *kdNode
	size int
}

type kdNode struct {
	tree      MunicipalTree
	left      *kdNode
	right     *kdNode
	splitAxis int // axisLat or axisLon
}

// New builds a k-d tree from a slice of municipal trees. The input slice is
// copied, never reordered. All coordinates must be finite.
func New(trees []MunicipalTree) (*KDTree, error) {
	if len(trees) == 0 {
		return nil, ErrEmptyInput
	}
	for _, t := range trees {
		if !finite(t.Lat) || !finite(t.Lon) {
			return nil, fmt.Errorf("%w: tree %d at (%v, %v)", ErrInvalidCoordinate, t.ID, t.Lat, t.Lon)
		}
	}

	// Make a copy to avoid modifying the original
	treesCopy := make([]MunicipalTree, len(trees))
	copy(treesCopy, trees)

	return &KDTree{
		root: buildKDTree(treesCopy, 0),
		size: len(treesCopy),
	}, nil
}

// buildKDTree recursively builds the k-d tree: split on latitude at even
// depths and longitude at odd depths, take the median as the node, and
// recurse on the two halves. The sort is stable so trees sharing a
// coordinate keep their input order, which makes construction reproducible.
func buildKDTree(trees []MunicipalTree, depth int) *kdNode {
	if len(trees) == 0 {
		return nil
	}

	axis := depth % 2

	if len(trees) == 1 {
		return &kdNode{
			tree:      trees[0],
			splitAxis: axis,
		}
	}

	sort.SliceStable(trees, func(i, j int) bool {
		return trees[i].coord(axis) < trees[j].coord(axis)
	})

	median := len(trees) / 2

	return &kdNode{
		tree:      trees[median],
		splitAxis: axis,
		left:      buildKDTree(trees[:median], depth+1),
		right:     buildKDTree(trees[median+1:], depth+1),
	}
}

// Size returns the number of indexed trees.
func (kt *KDTree) Size() int {
	if kt == nil {
		return 0
	}
	return kt.size
}

// Nearest returns the indexed tree closest to (lat, lon) and its Euclidean
// distance. When several trees are equally close, the first one encountered
// in traversal order wins.
func (kt *KDTree) Nearest(lat, lon float64) (MunicipalTree, float64, error) {
	if kt == nil || kt.root == nil {
		return MunicipalTree{}, 0, ErrEmptyTree
	}
	if !finite(lat) || !finite(lon) {
		return MunicipalTree{}, 0, fmt.Errorf("%w: query (%v, %v)", ErrInvalidCoordinate, lat, lon)
	}

	var bestNode *kdNode
	bestDistSq := math.Inf(1)

	findNearest(kt.root, lat, lon, &bestNode, &bestDistSq)

	return bestNode.tree, math.Sqrt(bestDistSq), nil
}

// findNearest recursively searches for the nearest tree, descending into
// the near side of the splitting plane first and visiting the far side only
// when the plane itself is closer than the current global best.
func findNearest(node *kdNode, lat, lon float64, bestNode **kdNode, bestDistSq *float64) {
	if node == nil {
		return
	}

	// Check if current node is closer
	distSq := node.tree.distanceSquared(lat, lon)
	if distSq < *bestDistSq {
		*bestDistSq = distSq
		*bestNode = node
	}

	// Determine which side to search first
	var diff float64
	if node.splitAxis == axisLat {
		diff = lat - node.tree.Lat
	} else {
		diff = lon - node.tree.Lon
	}

	nearChild, farChild := node.right, node.left
	if diff < 0 {
		nearChild, farChild = node.left, node.right
	}

	findNearest(nearChild, lat, lon, bestNode, bestDistSq)

	// Only search the far side if the splitting plane is closer than the
	// current best candidate. The single-axis distance to the plane is a
	// lower bound on the distance to anything beyond it.
	if diff*diff < *bestDistSq {
		findNearest(farChild, lat, lon, bestNode, bestDistSq)
	}
}

// Lookup reports whether a tree with the given coordinates is in the index.
// Coordinates are compared after rounding to five decimal places, matching
// the precision of the inventory data. Only one side of each splitting
// plane is descended, so a tree whose rounded coordinate straddles a plane
// on the other side is not found; Lookup is a fast membership probe, not an
// exhaustive search.
func (kt *KDTree) Lookup(lat, lon float64) bool {
	if kt == nil {
		return false
	}
	node := kt.root
	for node != nil {
		if round5(lat) == round5(node.tree.Lat) && round5(lon) == round5(node.tree.Lon) {
			return true
		}
		var q, pivot float64
		if node.splitAxis == axisLat {
			q, pivot = lat, node.tree.Lat
		} else {
			q, pivot = lon, node.tree.Lon
		}
		if q < pivot {
			node = node.left
		} else {
			node = node.right
		}
	}
	return false
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
