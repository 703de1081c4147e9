package main

import (
	"testing"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/engine"
)

func TestCanvasMapping(t *testing.T) {
	w, h := canvasSize(80, 25)
	if w != 80 || h != 48 {
		t.Errorf("canvasSize = %vx%v, want 80x48", w, h)
	}

	p := cellToCanvas(3, 4)
	if p.X != 3.5 || p.Y != 9 {
		t.Errorf("cellToCanvas = %+v", p)
	}
}

func TestTraceOutlines(t *testing.T) {
	e := engine.NewEngine()
	w, h := canvasSize(40, 21)
	e.SetCanvasSize(w, h)

	if err := e.SetColor("#ff0000"); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if err := e.PointerDownAt(cellToCanvas(5, 5), engine.Modifiers{}); err != nil {
		t.Fatalf("PointerDownAt: %v", err)
	}
	if err := e.PointerMove(cellToCanvas(15, 10), engine.Modifiers{}); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if err := e.PointerUp(); err != nil {
		t.Fatalf("PointerUp: %v", err)
	}

	cells := traceOutlines(e.Scene(), 40, 20)
	tests := []struct {
		name string
		c    cell
		want string
	}{
		{"top left corner", cell{5, 5}, "#ff0000"},
		{"top edge", cell{10, 5}, "#ff0000"},
		{"right edge", cell{15, 8}, "#ff0000"},
		{"interior", cell{10, 8}, ""},
		{"outside", cell{30, 15}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cells[tt.c]; got != tt.want {
				t.Errorf("cell %v = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestTraceOutlinesClipped(t *testing.T) {
	e := engine.NewEngine()
	e.SetCanvasSize(canvasSize(10, 6))
	if err := e.LoadSample("spiral"); err != nil {
		t.Fatalf("LoadSample: %v", err)
	}

	for c := range traceOutlines(e.Scene(), 10, 5) {
		if c.x < 0 || c.y < 0 || c.x >= 10 || c.y >= 5 {
			t.Errorf("cell %v outside the screen", c)
		}
	}
	if len(traceOutlines(nil, 10, 5)) != 0 {
		t.Error("Expected nothing traced for a nil scene")
	}
}

func TestNextMode(t *testing.T) {
	if nextMode(document.ModeDefault) != document.ModeRotate || nextMode(document.ModeRotate) != document.ModeDefault {
		t.Error("Expected tab to toggle between default and rotate")
	}
}
