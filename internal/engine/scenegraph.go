package engine

import "github.com/inamate/fractal/internal/geometry"

// SceneGraph is the materialized render tree laid out on the canvas.
// Each node carries the world transform and bounds a view needs to draw and
// hit-test it.
type SceneGraph struct {
	Canvas    geometry.Rect
	Roots     []*SceneNode
	NodeCount int
}

// SceneNode is a region instance resolved to canvas space.
type SceneNode struct {
	RegionID int
	Color    string
	Depth    int
	Rotation float64

	// Size of the node's own box in canvas units, before rotation.
	Width  float64
	Height float64

	// WorldTransform maps the node's local box (0,0)-(Width,Height) to the canvas.
	WorldTransform geometry.Matrix2D

	// Bounds is the axis-aligned bounding box of the rotated box in canvas space.
	Bounds geometry.Rect

	Parent   *SceneNode
	Children []*SceneNode
}

// Layout resolves a render tree onto canvas. A region's fractions are taken
// of its parent's unrotated box; the region then rotates about its own center
// and carries its children with it.
func Layout(tree []*RenderNode, canvas geometry.Rect) *SceneGraph {
	sg := &SceneGraph{Canvas: canvas}
	origin := geometry.Translate(canvas.X, canvas.Y)

	for _, n := range tree {
		sg.Roots = append(sg.Roots, layoutNode(n, nil, origin, canvas.Width, canvas.Height, sg))
	}
	return sg
}

func layoutNode(n *RenderNode, parent *SceneNode, parentWorld geometry.Matrix2D, pw, ph float64, sg *SceneGraph) *SceneNode {
	box := geometry.Denormalize(n.Region.Bounds(), geometry.Rect{Width: pw, Height: ph})

	local := geometry.FromTransform(box.X, box.Y, 1, 1, n.Rotation, box.Width/2, box.Height/2)
	world := parentWorld.Multiply(local)

	node := &SceneNode{
		RegionID:       n.Region.ID,
		Color:          n.Region.Color,
		Depth:          n.Depth,
		Rotation:       n.Rotation,
		Width:          box.Width,
		Height:         box.Height,
		WorldTransform: world,
		Bounds:         world.TransformRect(geometry.Rect{Width: box.Width, Height: box.Height}),
		Parent:         parent,
	}
	sg.NodeCount++

	for _, child := range n.Children {
		node.Children = append(node.Children, layoutNode(child, node, world, box.Width, box.Height, sg))
	}
	return node
}

// Contains reports whether the canvas point lies inside the node's rotated box.
func (n *SceneNode) Contains(x, y float64) bool {
	if n.Width <= 0 || n.Height <= 0 {
		return false
	}
	lx, ly := n.WorldTransform.Invert().TransformPoint(x, y)
	return geometry.Rect{Width: n.Width, Height: n.Height}.Contains(lx, ly)
}
