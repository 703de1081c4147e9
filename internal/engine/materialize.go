package engine

import "github.com/inamate/fractal/internal/document"

// GroupSource resolves a color key to its group. *document.Store implements it.
type GroupSource interface {
	Group(color string) (document.ColorGroup, bool)
}

// RenderNode is one region instance in the expanded render tree.
type RenderNode struct {
	Region document.Region `json:"region"`
	// Rotation is the owning color group's rotation; every instance of a
	// color at every depth shares it.
	Rotation float64 `json:"rotation"`
	Depth    int     `json:"depth"`
	// Dangling marks a region whose color has no group; it renders as a leaf.
	Dangling bool          `json:"dangling,omitempty"`
	Children []*RenderNode `json:"children,omitempty"`
}

// Materialize expands the stored regions into the recursive render tree.
// Only root regions (IsChild false) start a tree; each instance is then
// filled with its color group's template children, down to maxDepth levels
// counting the root as level 1. Color groups may reference themselves, so
// the remaining-depth counter is the only thing that ends the walk.
// groups is only read.
func Materialize(regions []document.Region, groups GroupSource, maxDepth int) []*RenderNode {
	maxDepth = document.ClampDepth(maxDepth)

	nodes := make([]*RenderNode, 0, len(regions))
	for _, r := range regions {
		if r.IsChild {
			continue
		}
		nodes = append(nodes, materializeNode(r, groups, 1, maxDepth-1))
	}
	return nodes
}

// materializeNode builds the node for r; remaining is how many more levels
// may be expanded below it.
func materializeNode(r document.Region, groups GroupSource, depth, remaining int) *RenderNode {
	node := &RenderNode{Region: r, Depth: depth}

	group, ok := groups.Group(r.Color)
	if !ok {
		node.Dangling = true
		logger().Debug("dangling color reference", "region", r.ID, "color", r.Color)
		return node
	}
	node.Rotation = group.Rotation

	if remaining <= 0 || len(group.Children) == 0 {
		return node
	}

	node.Children = make([]*RenderNode, 0, len(group.Children))
	for _, child := range group.Children {
		node.Children = append(node.Children, materializeNode(child, groups, depth+1, remaining-1))
	}
	return node
}

// CountNodes returns the number of nodes in the forest.
func CountNodes(nodes []*RenderNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + CountNodes(node.Children)
	}
	return n
}

// TreeDepth returns the number of levels in the deepest tree of the forest.
func TreeDepth(nodes []*RenderNode) int {
	deepest := 0
	for _, node := range nodes {
		deepest = max(deepest, 1+TreeDepth(node.Children))
	}
	return deepest
}
