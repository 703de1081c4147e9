package document

import "github.com/inamate/fractal/internal/geometry"

// Mode selects what a pointer gesture does.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeRotate  Mode = "rotate"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeDefault || m == ModeRotate
}

const (
	DefaultColor        = "#4a20cb"
	DefaultMaxRecursion = 5
	// HighRecursionDepth is the depth past which rendering cost grows noticeably.
	HighRecursionDepth = 6
)

// Region is one painted rectangle. Position and size are fractions of the
// parent's bounding box, or of the canvas for root regions.
type Region struct {
	ID      int     `json:"id" yaml:"id"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Color   string  `json:"color" yaml:"color"`
	IsChild bool    `json:"isChild" yaml:"isChild"`
}

// Bounds returns the region's normalized rectangle.
func (r Region) Bounds() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// SetBounds overwrites the region's normalized rectangle.
func (r *Region) SetBounds(b geometry.Rect) {
	r.X, r.Y, r.Width, r.Height = b.X, b.Y, b.Width, b.Height
}

// ColorGroup is the recursive template shared by every region of one color.
// Rotation belongs to the color, so rotating one instance rotates them all.
type ColorGroup struct {
	Color    string   `json:"color" yaml:"color"`
	Rotation float64  `json:"rotation" yaml:"rotation"`
	Warp     string   `json:"warp" yaml:"warp"`
	Children []Region `json:"children" yaml:"children"`
}

// Snapshot is one committed state: every region plus every color group.
type Snapshot struct {
	Regions     []Region     `json:"regions" yaml:"regions"`
	ColorGroups []ColorGroup `json:"colorGroups" yaml:"colorGroups"`
}

// EmptySnapshot returns the baseline state with no regions and no groups.
func EmptySnapshot() Snapshot {
	return Snapshot{Regions: []Region{}, ColorGroups: []ColorGroup{}}
}

// Options are the user-facing editor settings.
type Options struct {
	CurrentColor      string `json:"currentColor"`
	MaxRecursionDepth int    `json:"maxRecursionDepth"`
	Mode              Mode   `json:"mode"`
}

// DefaultOptions returns the settings a fresh editor starts with.
func DefaultOptions() Options {
	return Options{
		CurrentColor:      DefaultColor,
		MaxRecursionDepth: DefaultMaxRecursion,
		Mode:              ModeDefault,
	}
}

// ClampDepth bounds a configured recursion depth to at least 1.
func ClampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	return depth
}
