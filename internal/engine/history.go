package engine

import "github.com/inamate/fractal/internal/document"

// History is the undo/redo engine over full-state snapshots. The displayed
// state is always the top of the undo stack, or the empty state when the
// undo stack is empty.
type History struct {
	undo []document.Snapshot
	redo []document.Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		undo: []document.Snapshot{},
		redo: []document.Snapshot{},
	}
}

// Commit records a deep copy of the given state and discards the redo branch.
func (h *History) Commit(regions []document.Region, groups []document.ColorGroup) {
	snap := document.Snapshot{Regions: regions, ColorGroups: groups}.Clone()
	h.undo = append(h.undo, snap)
	h.redo = h.redo[:0]
}

// Undo moves the latest snapshot onto the redo stack and returns the state
// that is now current. It reports false when there is nothing to undo.
func (h *History) Undo() (document.Snapshot, bool) {
	if len(h.undo) == 0 {
		return h.Current(), false
	}

	last := len(h.undo) - 1
	snap := h.undo[last]
	h.undo = h.undo[:last]
	h.redo = append(h.redo, snap)

	return h.Current(), true
}

// Redo moves the most recently undone snapshot back onto the undo stack and
// returns it. It reports false when there is nothing to redo.
func (h *History) Redo() (document.Snapshot, bool) {
	if len(h.redo) == 0 {
		return h.Current(), false
	}

	last := len(h.redo) - 1
	snap := h.redo[last]
	h.redo = h.redo[:last]
	h.undo = append(h.undo, snap)

	return h.Current(), true
}

// Current returns a deep copy of the current state.
func (h *History) Current() document.Snapshot {
	if len(h.undo) == 0 {
		return document.EmptySnapshot()
	}
	return h.undo[len(h.undo)-1].Clone()
}

// UndoDepth returns the number of snapshots that can be undone.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of snapshots that can be redone.
func (h *History) RedoDepth() int {
	return len(h.redo)
}
