// Package raster draws a laid-out painting into a bitmap with gogpu/gg.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
	"github.com/inamate/fractal/internal/geometry"
)

const (
	DefaultBackground = "#ffffff"
	DefaultLineWidth  = 2.0
)

var ErrInvalidSize = errors.New("invalid image size")

// Options control how a scene is drawn.
type Options struct {
	Width      int
	Height     int
	Background string
	// LineWidth is the border width of root regions. Deeper instances get
	// thinner borders, never below half a pixel.
	LineWidth float64
}

func (o Options) withDefaults() (Options, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	bg, err := document.NormalizeColor(o.Background)
	if err != nil {
		return o, fmt.Errorf("background: %w", err)
	}
	o.Background = bg
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	return o, nil
}

// Draw strokes every node of sg onto a new context. The caller must Close it.
// sg should be laid out on a canvas the size of the image.
func Draw(sg *engine.SceneGraph, opts Options) (*gg.Context, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(opts.Background))

	if sg != nil {
		for _, root := range sg.Roots {
			if err := drawNode(dc, root, opts.LineWidth); err != nil {
				dc.Close()
				return nil, err
			}
		}
	}
	return dc, nil
}

// drawNode strokes node's rotated box, then its children on top.
func drawNode(dc *gg.Context, node *engine.SceneNode, lineWidth float64) error {
	if node.Width > 0 && node.Height > 0 {
		c := node.WorldTransform.Corners(geometry.Rect{Width: node.Width, Height: node.Height})

		dc.SetHexColor(node.Color)
		dc.SetLineWidth(max(lineWidth/float64(node.Depth), 0.5))
		dc.MoveTo(c[0].X, c[0].Y)
		for _, p := range c[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke region %d: %w", node.RegionID, err)
		}
	}

	for _, child := range node.Children {
		if err := drawNode(dc, child, lineWidth); err != nil {
			return err
		}
	}
	return nil
}

// Image draws sg and returns the resulting bitmap.
func Image(sg *engine.SceneGraph, opts Options) (image.Image, error) {
	dc, err := Draw(sg, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return dc.Image(), nil
}

// EncodePNG draws sg and writes it to w as PNG.
func EncodePNG(w io.Writer, sg *engine.SceneGraph, opts Options) error {
	dc, err := Draw(sg, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return dc.EncodePNG(w)
}

// Painting materializes and lays out a snapshot at the given image size.
func Painting(snap document.Snapshot, maxDepth, width, height int) *engine.SceneGraph {
	store := document.NewStoreFrom(snap.ColorGroups)
	tree := engine.Materialize(snap.Regions, store, maxDepth)
	return engine.Layout(tree, geometry.Rect{Width: float64(width), Height: float64(height)})
}
