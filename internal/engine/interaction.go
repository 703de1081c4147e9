package engine

import (
	"errors"
	"fmt"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/geometry"
)

var (
	ErrGestureOpen = errors.New("gesture already open")
	ErrNoGesture   = errors.New("no gesture open")
	ErrNoTarget    = errors.New("no region under pointer")
	ErrUnknownMode = errors.New("unknown mode")
)

// State is the interaction state machine's state.
type State int

const (
	StateIdle State = iota
	StateCreatingRegion
	StateRotatingGroup
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreatingRegion:
		return "creating"
	case StateRotatingGroup:
		return "rotating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Modifiers are the modifier keys held during a pointer event.
type Modifiers struct {
	Ctrl  bool `json:"ctrl"`
	Shift bool `json:"shift"`
}

// Constraints maps modifiers to sizing locks: ctrl squares, shift follows the frame.
func (m Modifiers) Constraints() geometry.Constraints {
	return geometry.Constraints{
		LockAspectToSquare: m.Ctrl,
		LockAspectToFrame:  m.Shift,
	}
}

// gesture is the open pointer-down -> pointer-up interaction.
type gesture struct {
	state  State
	origin geometry.Vector2D

	// Creation: reference frame, index of the new region, and the color
	// group it was stamped into ("" for root regions).
	frame       geometry.Rect
	regionIndex int
	parentColor string

	// Rotation: target color, pivot box and last absolute bearing.
	color   string
	pivot   geometry.Rect
	bearing float64
}

// PointerDown opens a gesture. target is the region instance under the
// pointer, or nil for bare canvas. What the gesture does depends on the mode.
//
// A pointer-down while a gesture is already open is rejected, and the open
// gesture is abandoned back to the last committed state.
func (e *Engine) PointerDown(target *HitTarget, pos geometry.Vector2D, mods Modifiers) error {
	if e.gesture != nil {
		logger().Debug("gesture protocol violation", "event", "pointerDown", "state", e.gesture.state)
		e.Abandon()
		return ErrGestureOpen
	}

	switch e.opts.Mode {
	case document.ModeRotate:
		return e.beginRotate(target, pos)
	default:
		e.beginCreate(target, pos, mods)
		return nil
	}
}

// PointerDownAt hit-tests pos against the current scene and opens a gesture
// on whatever is there.
func (e *Engine) PointerDownAt(pos geometry.Vector2D, mods Modifiers) error {
	return e.PointerDown(e.HitTest(pos.X, pos.Y), pos, mods)
}

func (e *Engine) beginCreate(target *HitTarget, pos geometry.Vector2D, mods Modifiers) {
	frame := e.canvas
	parentColor := ""
	if target != nil {
		frame = target.Bounds
		parentColor = target.Color
	}

	region := document.Region{
		ID:      e.nextID,
		Color:   e.opts.CurrentColor,
		IsChild: target != nil,
	}
	region.SetBounds(geometry.ComputeRect(pos, pos, frame, mods.Constraints()))
	e.nextID++

	e.regions = append(e.regions, region)
	if region.IsChild {
		e.groups.EnsureGroup(parentColor)
		if err := e.groups.AppendChild(parentColor, region); err != nil {
			logger().Warn("stamp child region", "region", region.ID, "error", err)
		}
	}
	e.groups.EnsureGroup(region.Color)

	e.gesture = &gesture{
		state:       StateCreatingRegion,
		origin:      pos,
		frame:       frame,
		regionIndex: len(e.regions) - 1,
		parentColor: parentColor,
	}
	e.dirty = true
}

func (e *Engine) beginRotate(target *HitTarget, pos geometry.Vector2D) error {
	if target == nil {
		logger().Debug("rotate without target", "x", pos.X, "y", pos.Y)
		return ErrNoTarget
	}
	if _, ok := e.groups.Group(target.Color); !ok {
		return fmt.Errorf("rotate: %w: %s", document.ErrGroupNotFound, target.Color)
	}

	e.gesture = &gesture{
		state:   StateRotatingGroup,
		origin:  pos,
		color:   target.Color,
		pivot:   target.Bounds,
		bearing: geometry.ComputeRotation(pos, target.Bounds),
	}
	return nil
}

// PointerMove advances the open gesture: a new region is resized, a rotating
// color group turns by the change in bearing since the previous event.
func (e *Engine) PointerMove(pos geometry.Vector2D, mods Modifiers) error {
	g := e.gesture
	if g == nil {
		logger().Debug("gesture protocol violation", "event", "pointerMove", "state", StateIdle)
		return ErrNoGesture
	}

	switch g.state {
	case StateCreatingRegion:
		r := &e.regions[g.regionIndex]
		r.SetBounds(geometry.ComputeRect(g.origin, pos, g.frame, mods.Constraints()))
		if r.IsChild {
			if err := e.groups.ReplaceChild(g.parentColor, *r); err != nil {
				logger().Warn("update child region", "region", r.ID, "error", err)
			}
		}

	case StateRotatingGroup:
		bearing := geometry.ComputeRotation(pos, g.pivot)
		e.groups.ApplyRotationDelta(g.color, bearing-g.bearing)
		g.bearing = bearing
	}

	e.dirty = true
	return nil
}

// PointerUp closes the open gesture and commits the result to history.
func (e *Engine) PointerUp() error {
	if e.gesture == nil {
		logger().Debug("gesture protocol violation", "event", "pointerUp", "state", StateIdle)
		return ErrNoGesture
	}

	e.gesture = nil
	e.history.Commit(e.regions, e.groups.Groups())
	return nil
}

// Abandon drops the open gesture without committing it and restores the last
// committed state. It is a no-op when no gesture is open.
func (e *Engine) Abandon() {
	if e.gesture == nil {
		return
	}
	e.gesture = nil
	e.restore(e.history.Current())
}

// State returns the interaction state.
func (e *Engine) State() State {
	if e.gesture == nil {
		return StateIdle
	}
	return e.gesture.state
}
