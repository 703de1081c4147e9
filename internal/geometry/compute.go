package geometry

import "math"

// Constraints are the modifier-driven locks applied while sizing a region.
type Constraints struct {
	// LockAspectToSquare forces width == height in the normalized result, so
	// the drawn box takes the reference frame's shape.
	LockAspectToSquare bool
	// LockAspectToFrame divides the frame's aspect ratio out of the normalized
	// result, so the drawn box is square.
	LockAspectToFrame bool
}

// Active reports whether any lock is held.
func (c Constraints) Active() bool {
	return c.LockAspectToSquare || c.LockAspectToFrame
}

// ComputeRect maps a drag from origin to current into a rectangle normalized
// to frame, so (0,0,1,1) covers the whole frame.
//
// When a lock is active the axis with the larger raw delta gives up its
// length, and the rectangle stays anchored at the gesture origin whichever
// quadrant the pointer moved into. The result is not clamped: a drag that
// leaves the frame yields coordinates outside [0,1].
func ComputeRect(origin, current Vector2D, frame Rect, c Constraints) Rect {
	fw, fh := frame.Width, frame.Height
	if fw <= 0 {
		fw = 1
	}
	if fh <= 0 {
		fh = 1
	}

	dx := current.X - origin.X
	dy := current.Y - origin.Y

	r := Rect{
		X:      (min(origin.X, current.X) - frame.X) / fw,
		Y:      (min(origin.Y, current.Y) - frame.Y) / fh,
		Width:  math.Abs(dx) / fw,
		Height: math.Abs(dy) / fh,
	}
	if !c.Active() {
		return r
	}

	xLeads := math.Abs(dx) > math.Abs(dy)
	if c.LockAspectToSquare {
		if xLeads {
			r.Width = r.Height
		} else {
			r.Height = r.Width
		}
	}
	if c.LockAspectToFrame {
		aspect := fw / fh
		if xLeads {
			r.Width = r.Height / aspect
		} else {
			r.Height = r.Width * aspect
		}
	}

	// Re-anchor at the origin corner; the locked size no longer reaches current.
	ox := (origin.X - frame.X) / fw
	oy := (origin.Y - frame.Y) / fh
	r.X, r.Y = ox, oy
	if dx < 0 {
		r.X = ox - r.Width
	}
	if dy < 0 {
		r.Y = oy - r.Height
	}

	return r
}

// ComputeRotation returns the absolute bearing in degrees of pointer as seen
// from the center of pivot. Callers diff successive bearings to rotate.
func ComputeRotation(pointer Vector2D, pivot Rect) float64 {
	cx, cy := pivot.Center()
	return math.Atan2(pointer.Y-cy, pointer.X-cx) * 180 / math.Pi
}

// Denormalize maps a rect expressed as fractions of frame back into frame units.
func Denormalize(r, frame Rect) Rect {
	return Rect{
		X:      frame.X + r.X*frame.Width,
		Y:      frame.Y + r.Y*frame.Height,
		Width:  r.Width * frame.Width,
		Height: r.Height * frame.Height,
	}
}
