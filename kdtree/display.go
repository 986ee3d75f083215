package kdtree

import (
	"fmt"
	"strings"
)

// Display returns a textual rendering of the tree structure, one node per
// line, children indented below their parent. Meant for debugging small
// trees, not for the full inventory.
func (kt *KDTree) Display() string {
	if kt == nil || kt.root == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	displayNode(&b, kt.root, "", 0)
	return b.String()
}

func displayNode(b *strings.Builder, node *kdNode, side string, depth int) {
	if node == nil {
		return
	}
	axis := "lat"
	if node.splitAxis == axisLon {
		axis = "lon"
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s%s %.3f,%.3f %s\n", indent, side, axis, node.tree.Lat, node.tree.Lon, node.tree.Species)
	displayNode(b, node.left, "L ", depth+1)
	displayNode(b, node.right, "R ", depth+1)
}
