package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestComputeRectUnconstrained(t *testing.T) {
	frame := Rect{X: 100, Y: 50, Width: 400, Height: 200}

	tests := []struct {
		name    string
		origin  Vector2D
		current Vector2D
		want    Rect
	}{
		{"zero drag", Vector2D{300, 150}, Vector2D{300, 150}, Rect{0.5, 0.5, 0, 0}},
		{"down right", Vector2D{100, 50}, Vector2D{300, 150}, Rect{0, 0, 0.5, 0.5}},
		{"up left", Vector2D{300, 150}, Vector2D{100, 50}, Rect{0, 0, 0.5, 0.5}},
		{"down left", Vector2D{300, 50}, Vector2D{200, 250}, Rect{0.25, 0, 0.25, 1}},
		{"exits frame", Vector2D{150, 100}, Vector2D{50, 0}, Rect{-0.125, -0.25, 0.25, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRect(tt.origin, tt.current, frame, Constraints{})
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) ||
				!approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("ComputeRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRectNonNegativeSize(t *testing.T) {
	frame := Rect{X: 10, Y: 20, Width: 640, Height: 480}
	origin := Vector2D{320, 240}
	constraints := []Constraints{
		{},
		{LockAspectToSquare: true},
		{LockAspectToFrame: true},
		{LockAspectToSquare: true, LockAspectToFrame: true},
	}

	for _, c := range constraints {
		for dx := -300.0; dx <= 300; dx += 37 {
			for dy := -200.0; dy <= 200; dy += 29 {
				r := ComputeRect(origin, Vector2D{origin.X + dx, origin.Y + dy}, frame, c)
				if r.Width < 0 || r.Height < 0 {
					t.Fatalf("constraints %+v, delta (%v,%v): negative size %+v", c, dx, dy, r)
				}
			}
		}
	}
}

func TestComputeRectSquareLock(t *testing.T) {
	frame := Rect{X: 0, Y: 0, Width: 800, Height: 400}
	origin := Vector2D{400, 200}

	tests := []struct {
		name    string
		current Vector2D
	}{
		{"x leads", Vector2D{600, 260}},
		{"y leads", Vector2D{420, 380}},
		{"up left", Vector2D{100, 50}},
		{"up right", Vector2D{700, 10}},
		{"down left", Vector2D{350, 390}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeRect(origin, tt.current, frame, Constraints{LockAspectToSquare: true})
			if !approx(r.Width, r.Height) {
				t.Errorf("Expected width == height, got %+v", r)
			}
		})
	}
}

func TestComputeRectFrameLock(t *testing.T) {
	tests := []struct {
		name    string
		frame   Rect
		origin  Vector2D
		current Vector2D
		want    Rect // in frame units
	}{
		{"x leads wide frame", Rect{Width: 400, Height: 200}, Vector2D{0, 0}, Vector2D{100, 50}, Rect{0, 0, 50, 50}},
		{"y leads wide frame", Rect{Width: 800, Height: 400}, Vector2D{400, 200}, Vector2D{420, 380}, Rect{400, 200, 20, 20}},
		{"up left tall frame", Rect{X: 10, Y: 10, Width: 200, Height: 600}, Vector2D{110, 310}, Vector2D{30, 290}, Rect{90, 290, 20, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeRect(tt.origin, tt.current, tt.frame, Constraints{LockAspectToFrame: true})
			got := Denormalize(r, tt.frame)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) ||
				!approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("drawn box = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRectSquareLockTakesFrameShape(t *testing.T) {
	frame := Rect{Width: 400, Height: 200}
	r := ComputeRect(Vector2D{0, 0}, Vector2D{100, 50}, frame, Constraints{LockAspectToSquare: true})
	got := Denormalize(r, frame)
	if !approx(got.Width/got.Height, frame.Aspect()) {
		t.Errorf("drawn aspect = %v, want %v", got.Width/got.Height, frame.Aspect())
	}
}

func TestComputeRectLockAnchorsAtOrigin(t *testing.T) {
	frame := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	origin := Vector2D{50, 50}

	tests := []struct {
		name    string
		current Vector2D
		want    Rect
	}{
		// x delta 30 collapses onto y delta 10
		{"down right", Vector2D{80, 60}, Rect{0.5, 0.5, 0.1, 0.1}},
		{"up left", Vector2D{20, 40}, Rect{0.4, 0.4, 0.1, 0.1}},
		{"up right", Vector2D{80, 40}, Rect{0.5, 0.4, 0.1, 0.1}},
		{"down left", Vector2D{20, 60}, Rect{0.4, 0.5, 0.1, 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRect(origin, tt.current, frame, Constraints{LockAspectToSquare: true})
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) ||
				!approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("ComputeRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRectDegenerateFrame(t *testing.T) {
	r := ComputeRect(Vector2D{0, 0}, Vector2D{3, 4}, Rect{}, Constraints{})
	if math.IsNaN(r.X) || math.IsInf(r.Width, 0) {
		t.Fatalf("Expected finite rect for empty frame, got %+v", r)
	}
}

func TestComputeRotation(t *testing.T) {
	pivot := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name    string
		pointer Vector2D
		want    float64
	}{
		{"east", Vector2D{100, 50}, 0},
		{"south", Vector2D{50, 100}, 90},
		{"west", Vector2D{0, 50}, 180},
		{"north", Vector2D{50, 0}, -90},
		{"south east", Vector2D{100, 100}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRotation(tt.pointer, pivot); !approx(got, tt.want) {
				t.Errorf("ComputeRotation(%+v) = %v, want %v", tt.pointer, got, tt.want)
			}
		})
	}
}

func TestDenormalize(t *testing.T) {
	frame := Rect{X: 10, Y: 20, Width: 200, Height: 100}
	got := Denormalize(Rect{0.5, 0.25, 0.25, 0.5}, frame)
	want := Rect{110, 45, 50, 50}
	if got != want {
		t.Errorf("Denormalize() = %+v, want %+v", got, want)
	}
}
