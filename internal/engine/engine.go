package engine

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/fractal/internal/document"
	"github.com/inamate/fractal/internal/geometry"
)

const (
	DefaultCanvasWidth  = 1280
	DefaultCanvasHeight = 720
)

// Engine owns the painting: the region list, the color group store, the
// undo/redo history and the open gesture. It processes commands from a view
// and answers queries. An Engine is not safe for concurrent use.
type Engine struct {
	opts   document.Options
	canvas geometry.Rect

	// Live state, mutated in place during gestures
	regions []document.Region
	groups  *document.Store
	nextID  int

	history *History
	gesture *gesture

	// Derived presentation state
	scene *SceneGraph
	dirty bool
}

// NewEngine creates an engine with default options and an empty canvas.
func NewEngine() *Engine {
	return &Engine{
		opts:    document.DefaultOptions(),
		canvas:  geometry.Rect{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		regions: []document.Region{},
		groups:  document.NewStore(),
		history: NewHistory(),
		dirty:   true,
	}
}

// --- Commands (view → engine) ---

// SetOptions replaces every option at once. Nothing changes unless every
// option is valid.
func (e *Engine) SetOptions(opts document.Options) error {
	if !opts.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
	if e.gesture != nil && opts.Mode != e.opts.Mode {
		return ErrGestureOpen
	}
	color, err := document.NormalizeColor(opts.CurrentColor)
	if err != nil {
		return err
	}

	e.opts.Mode = opts.Mode
	e.opts.CurrentColor = color
	e.SetMaxDepth(opts.MaxRecursionDepth)
	return nil
}

// SetMode switches between creating and rotating. Mode changes are refused
// while a gesture is open.
func (e *Engine) SetMode(mode document.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if e.gesture != nil && mode != e.opts.Mode {
		logger().Debug("mode change during gesture", "mode", mode, "state", e.gesture.state)
		return ErrGestureOpen
	}
	e.opts.Mode = mode
	return nil
}

// SetColor sets the paint color for new regions.
func (e *Engine) SetColor(hex string) error {
	color, err := document.NormalizeColor(hex)
	if err != nil {
		return err
	}
	e.opts.CurrentColor = color
	return nil
}

// RandomizeColor picks a random paint color and returns it.
func (e *Engine) RandomizeColor() string {
	e.opts.CurrentColor = document.RandomColor()
	return e.opts.CurrentColor
}

// SetMaxDepth sets the recursion limit, clamped to at least 1, and returns
// the value applied.
func (e *Engine) SetMaxDepth(depth int) int {
	depth = document.ClampDepth(depth)
	if depth > document.HighRecursionDepth {
		logger().Warn("high recursion depth", "depth", depth)
	}
	if depth != e.opts.MaxRecursionDepth {
		e.opts.MaxRecursionDepth = depth
		e.dirty = true
	}
	return depth
}

// SetCanvasSize sets the size of the root reference frame in view units.
func (e *Engine) SetCanvasSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.canvas = geometry.Rect{Width: width, Height: height}
	e.dirty = true
}

// Undo restores the previous committed state. It reports false when there is
// nothing to undo or a gesture is open.
func (e *Engine) Undo() bool {
	if e.gesture != nil {
		logger().Debug("undo during gesture", "state", e.gesture.state)
		return false
	}
	snap, ok := e.history.Undo()
	if ok {
		e.restore(snap)
	}
	return ok
}

// Redo reapplies the most recently undone state. It reports false when there
// is nothing to redo or a gesture is open.
func (e *Engine) Redo() bool {
	if e.gesture != nil {
		logger().Debug("redo during gesture", "state", e.gesture.state)
		return false
	}
	snap, ok := e.history.Redo()
	if ok {
		e.restore(snap)
	}
	return ok
}

// Reset clears every region and color group. A non-empty reset is committed
// so it can be undone.
func (e *Engine) Reset() error {
	if e.gesture != nil {
		return ErrGestureOpen
	}
	if len(e.regions) == 0 && e.groups.Len() == 0 {
		return nil
	}

	e.regions = []document.Region{}
	e.groups.Reset()
	e.history.Commit(e.regions, e.groups.Groups())
	e.dirty = true
	return nil
}

// Load replaces the painting with snap and commits it.
func (e *Engine) Load(snap document.Snapshot) error {
	if e.gesture != nil {
		return ErrGestureOpen
	}
	canonical, err := snap.Canonical()
	if err != nil {
		return err
	}
	e.restore(canonical)
	e.history.Commit(e.regions, e.groups.Groups())
	return nil
}

// LoadDocument replaces the painting with a JSON snapshot.
func (e *Engine) LoadDocument(jsonData string) error {
	var snap document.Snapshot
	if err := json.Unmarshal([]byte(jsonData), &snap); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return e.Load(snap)
}

// LoadSample replaces the painting with a built-in sample.
func (e *Engine) LoadSample(name string) error {
	snap, err := document.LoadSample(name)
	if err != nil {
		return err
	}
	return e.Load(snap)
}

// restore makes snap the live state. Region ids keep increasing across
// restores so a new region never reuses an id still present in snap.
func (e *Engine) restore(snap document.Snapshot) {
	e.regions = snap.Clone().Regions
	e.groups.Restore(snap.ColorGroups)
	for _, r := range e.regions {
		if r.ID >= e.nextID {
			e.nextID = r.ID + 1
		}
	}
	e.dirty = true
}

// --- Queries (view ← engine) ---

// Options returns the current options.
func (e *Engine) Options() document.Options {
	return e.opts
}

// Canvas returns the root reference frame.
func (e *Engine) Canvas() geometry.Rect {
	return e.canvas
}

// Regions returns a copy of the live region list.
func (e *Engine) Regions() []document.Region {
	out := make([]document.Region, len(e.regions))
	copy(out, e.regions)
	return out
}

// Group returns a copy of the color group for color.
func (e *Engine) Group(color string) (document.ColorGroup, bool) {
	g, ok := e.groups.Group(color)
	if !ok {
		return g, false
	}
	return document.Snapshot{ColorGroups: []document.ColorGroup{g}}.Clone().ColorGroups[0], true
}

// Colors returns the color group keys in creation order.
func (e *Engine) Colors() []string {
	return e.groups.Keys()
}

// Snapshot returns a deep copy of the live state.
func (e *Engine) Snapshot() document.Snapshot {
	return document.Snapshot{Regions: e.regions, ColorGroups: e.groups.Groups()}.Clone()
}

// GetDocument returns the live state as JSON.
func (e *Engine) GetDocument() string {
	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Tree returns a freshly materialized render tree owned by the caller.
func (e *Engine) Tree() []*RenderNode {
	return Materialize(e.regions, e.groups, e.opts.MaxRecursionDepth)
}

// Scene returns the render tree laid out on the canvas.
func (e *Engine) Scene() *SceneGraph {
	e.rebuild()
	return e.scene
}

// DrawCommands compiles the scene in painter's order.
func (e *Engine) DrawCommands() []DrawCommand {
	return CompileDrawCommands(e.Scene())
}

// Render returns the draw commands as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(e.DrawCommands())
	return result
}

// HitTest returns the front-most region instance at the canvas point, or nil.
func (e *Engine) HitTest(x, y float64) *HitTarget {
	return HitTest(e.Scene(), x, y)
}

// Stats are diagnostic counts for overlays and undo/redo affordances.
type Stats struct {
	Regions       int           `json:"regions"`
	Colors        int           `json:"colors"`
	RenderedNodes int           `json:"renderedNodes"`
	UndoDepth     int           `json:"undoDepth"`
	RedoDepth     int           `json:"redoDepth"`
	State         string        `json:"state"`
	Mode          document.Mode `json:"mode"`
}

// Stats returns the current diagnostic counts.
func (e *Engine) Stats() Stats {
	return Stats{
		Regions:       len(e.regions),
		Colors:        e.groups.Len(),
		RenderedNodes: e.Scene().NodeCount,
		UndoDepth:     e.history.UndoDepth(),
		RedoDepth:     e.history.RedoDepth(),
		State:         e.State().String(),
		Mode:          e.opts.Mode,
	}
}

// Frame is everything a view needs to redraw after a command.
type Frame struct {
	Commands []DrawCommand    `json:"commands"`
	Stats    Stats            `json:"stats"`
	Options  document.Options `json:"options"`
	Colors   []string         `json:"colors"`
}

// Frame returns the current frame.
func (e *Engine) Frame() Frame {
	commands := e.DrawCommands()
	if commands == nil {
		commands = []DrawCommand{}
	}
	return Frame{
		Commands: commands,
		Stats:    e.Stats(),
		Options:  e.opts,
		Colors:   e.Colors(),
	}
}

// rebuild re-materializes and re-lays-out the scene if anything changed.
func (e *Engine) rebuild() {
	if !e.dirty && e.scene != nil {
		return
	}
	e.scene = Layout(Materialize(e.regions, e.groups, e.opts.MaxRecursionDepth), e.canvas)
	e.dirty = false
}
