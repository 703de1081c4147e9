package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/inamate/fractal/internal/document"
)

func redSquare() document.Snapshot {
	return document.Snapshot{
		Regions: []document.Region{
			{ID: 0, X: 0.1, Y: 0.1, Width: 0.8, Height: 0.8, Color: "#ff0000"},
		},
		ColorGroups: []document.ColorGroup{{Color: "#ff0000"}},
	}
}

func TestImageStrokesBorders(t *testing.T) {
	sg := Painting(redSquare(), 3, 100, 100)
	img, err := Image(sg, Options{Width: 100, Height: 100, LineWidth: 4})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	r, g, b, _ := img.At(10, 50).RGBA()
	if r < 0xc000 || g > 0x4000 || b > 0x4000 {
		t.Errorf("Expected red border at (10,50), got %x %x %x", r, g, b)
	}
	r, g, b, _ = img.At(50, 50).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("Expected white background at (50,50), got %x %x %x", r, g, b)
	}
}

func TestEncodePNG(t *testing.T) {
	snap, err := document.LoadSample("carpet")
	if err != nil {
		t.Fatalf("LoadSample: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, Painting(snap, 4, 64, 48), Options{Width: 64, Height: 48}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
}

func TestOptionsRejected(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero width", Options{Height: 10}, ErrInvalidSize},
		{"negative height", Options{Width: 10, Height: -1}, ErrInvalidSize},
		{"bad background", Options{Width: 10, Height: 10, Background: "teal"}, document.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Image(nil, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEmptyScene(t *testing.T) {
	img, err := Image(nil, Options{Width: 8, Height: 8, Background: "#000"})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if r, g, b, a := img.At(4, 4).RGBA(); r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Expected opaque black, got %x %x %x %x", r, g, b, a)
	}
}
