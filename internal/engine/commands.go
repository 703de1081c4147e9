package engine

import (
	"encoding/json"

	"github.com/inamate/fractal/internal/geometry"
)

// DrawCommand is a single drawing operation for a view to execute: stroke a
// Width x Height box at the origin after applying Transform.
type DrawCommand struct {
	Op        string    `json:"op"`        // Operation: "rect"
	RegionID  int       `json:"regionId"`  // For hit correlation
	Color     string    `json:"color"`     // Border color
	Depth     int       `json:"depth"`     // Recursion level, 1 for root regions
	Transform []float64 `json:"transform"` // [a, b, c, d, e, f] affine matrix
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Rotation  float64   `json:"rotation"` // Color group rotation in degrees
}

// CompileDrawCommands generates a draw command buffer from a scene graph.
// Commands are in painter's order (back to front).
func CompileDrawCommands(sg *SceneGraph) []DrawCommand {
	if sg == nil {
		return nil
	}

	commands := make([]DrawCommand, 0, sg.NodeCount)
	for _, root := range sg.Roots {
		compileNode(root, &commands)
	}
	return commands
}

func compileNode(node *SceneNode, commands *[]DrawCommand) {
	*commands = append(*commands, DrawCommand{
		Op:        "rect",
		RegionID:  node.RegionID,
		Color:     node.Color,
		Depth:     node.Depth,
		Transform: node.WorldTransform.ToSlice(),
		Width:     node.Width,
		Height:    node.Height,
		Rotation:  node.Rotation,
	})

	for _, child := range node.Children {
		compileNode(child, commands)
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// HitTarget describes the region instance under the pointer.
type HitTarget struct {
	RegionID int           `json:"regionId"`
	Color    string        `json:"color"`
	Depth    int           `json:"depth"`
	Bounds   geometry.Rect `json:"bounds"`
}

// HitTest returns the front-most node containing the point, or nil.
func HitTest(sg *SceneGraph, x, y float64) *HitTarget {
	if sg == nil {
		return nil
	}

	for i := len(sg.Roots) - 1; i >= 0; i-- {
		if hit := hitTestNode(sg.Roots[i], x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// hitTestNode tests children first (they're on top in painter's order).
func hitTestNode(node *SceneNode, x, y float64) *HitTarget {
	if !node.Bounds.Contains(x, y) && len(node.Children) == 0 {
		return nil
	}

	for i := len(node.Children) - 1; i >= 0; i-- {
		if hit := hitTestNode(node.Children[i], x, y); hit != nil {
			return hit
		}
	}

	if node.Contains(x, y) {
		return &HitTarget{
			RegionID: node.RegionID,
			Color:    node.Color,
			Depth:    node.Depth,
			Bounds:   node.Bounds,
		}
	}
	return nil
}
