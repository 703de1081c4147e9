package geometry

import "math"

// Matrix2D represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
//
// Where:
// - a, d = scale
// - b, c = skew/rotation
// - e, f = translation
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix (angle in radians).
func Rotate(radians float64) Matrix2D {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees returns a rotation matrix (angle in degrees).
func RotateDegrees(degrees float64) Matrix2D {
	return Rotate(degrees * math.Pi / 180.0)
}

// Multiply multiplies this matrix by another: result = m * other
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Corners returns the four transformed corners of r, clockwise from its origin.
func (m Matrix2D) Corners(r Rect) [4]Vector2D {
	var out [4]Vector2D
	out[0].X, out[0].Y = m.TransformPoint(r.X, r.Y)
	out[1].X, out[1].Y = m.TransformPoint(r.X+r.Width, r.Y)
	out[2].X, out[2].Y = m.TransformPoint(r.X+r.Width, r.Y+r.Height)
	out[3].X, out[3].Y = m.TransformPoint(r.X, r.Y+r.Height)
	return out
}

// TransformRect transforms a rectangle and returns its axis-aligned bounding box.
func (m Matrix2D) TransformRect(r Rect) Rect {
	c := m.Corners(r)

	minX := min(c[0].X, min(c[1].X, min(c[2].X, c[3].X)))
	minY := min(c[0].Y, min(c[1].Y, min(c[2].Y, c[3].Y)))
	maxX := max(c[0].X, max(c[1].X, max(c[2].X, c[3].X)))
	maxY := max(c[0].Y, max(c[1].Y, max(c[2].Y, c[3].Y)))

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the matrix, or Identity if not invertible.
func (m Matrix2D) Invert() Matrix2D {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// FromTransform places a box at (x, y), scaled and rotated about the anchor
// point (ax, ay) given relative to the box origin:
// Translate(x+ax, y+ay) * Rotate(r) * Scale(sx, sy) * Translate(-ax, -ay)
func FromTransform(x, y, sx, sy, rDegrees, ax, ay float64) Matrix2D {
	return Translate(x+ax, y+ay).
		Multiply(RotateDegrees(rDegrees)).
		Multiply(Scale(sx, sy)).
		Multiply(Translate(-ax, -ay))
}

// ToSlice returns the matrix as a float64 slice for JSON serialization.
func (m Matrix2D) ToSlice() []float64 {
	return []float64{m[0], m[1], m[2], m[3], m[4], m[5]}
}
