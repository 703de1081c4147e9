package main

import (
	"math"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
	"github.com/inamate/fractal/internal/geometry"
)

// A terminal cell is twice as tall as it is wide, so one cell spans
// 1 x cellAspect canvas units.
const cellAspect = 2.0

type cell struct{ x, y int }

// canvasSize returns the canvas dimensions for a cols x rows terminal with
// one row reserved for the status line.
func canvasSize(cols, rows int) (float64, float64) {
	return float64(max(cols, 1)), float64(max(rows-1, 1)) * cellAspect
}

// cellToCanvas returns the canvas point at the center of a cell.
func cellToCanvas(x, y int) geometry.Vector2D {
	return geometry.Vector2D{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * cellAspect}
}

// traceOutlines walks every node's rotated border in painter's order and
// returns the color that ends up in each cell.
func traceOutlines(sg *engine.SceneGraph, cols, rows int) map[cell]string {
	out := make(map[cell]string)
	if sg == nil {
		return out
	}

	var walk func(n *engine.SceneNode)
	walk = func(n *engine.SceneNode) {
		corners := n.WorldTransform.Corners(geometry.Rect{Width: n.Width, Height: n.Height})
		for i := range corners {
			traceSegment(out, corners[i], corners[(i+1)%4], n.Color, cols, rows)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range sg.Roots {
		walk(root)
	}
	return out
}

func traceSegment(out map[cell]string, a, b geometry.Vector2D, color string, cols, rows int) {
	dx, dy := b.X-a.X, (b.Y-a.Y)/cellAspect
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))*2)) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(a.X + (b.X-a.X)*t))
		y := int(math.Floor((a.Y + (b.Y-a.Y)*t) / cellAspect))
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}
		out[cell{x, y}] = color
	}
}

func nextMode(m document.Mode) document.Mode {
	if m == document.ModeRotate {
		return document.ModeDefault
	}
	return document.ModeRotate
}
