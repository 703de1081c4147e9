package engine

import (
	"reflect"
	"testing"

	"github.com/inamate/fractal/internal/document"
)

func snapshotOf(ids ...int) ([]document.Region, []document.ColorGroup) {
	regions := make([]document.Region, 0, len(ids))
	for _, id := range ids {
		regions = append(regions, document.Region{ID: id, Width: 0.1, Height: 0.1, Color: "#ff0000"})
	}
	return regions, []document.ColorGroup{{Color: "#ff0000", Children: []document.Region{}}}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()

	if _, ok := h.Undo(); ok {
		t.Error("Expected Undo on empty history to report false")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Expected Redo on empty history to report false")
	}
	if !reflect.DeepEqual(h.Current(), document.EmptySnapshot()) {
		t.Errorf("Expected empty current state, got %+v", h.Current())
	}
}

func TestHistoryUndoRestoresPrevious(t *testing.T) {
	h := NewHistory()
	h.Commit(snapshotOf(0))
	first := h.Current()
	h.Commit(snapshotOf(0, 1))

	got, ok := h.Undo()
	if !ok {
		t.Fatal("Expected Undo to succeed")
	}
	if !reflect.DeepEqual(got, first) {
		t.Errorf("Undo = %+v, want %+v", got, first)
	}

	got, ok = h.Undo()
	if !ok {
		t.Fatal("Expected second Undo to succeed")
	}
	if !reflect.DeepEqual(got, document.EmptySnapshot()) {
		t.Errorf("Expected empty state after undoing everything, got %+v", got)
	}
}

func TestHistoryRedoInvertsUndo(t *testing.T) {
	h := NewHistory()
	h.Commit(snapshotOf(0))
	h.Commit(snapshotOf(0, 1))
	latest := h.Current()

	h.Undo()
	got, ok := h.Redo()
	if !ok {
		t.Fatal("Expected Redo to succeed")
	}
	if !reflect.DeepEqual(got, latest) {
		t.Errorf("Redo = %+v, want %+v", got, latest)
	}
	if h.UndoDepth() != 2 || h.RedoDepth() != 0 {
		t.Errorf("Expected depths 2/0, got %d/%d", h.UndoDepth(), h.RedoDepth())
	}
}

func TestHistoryCommitClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Commit(snapshotOf(0))
	h.Commit(snapshotOf(0, 1))
	h.Undo()
	if h.RedoDepth() != 1 {
		t.Fatalf("Expected 1 redo entry, got %d", h.RedoDepth())
	}

	h.Commit(snapshotOf(0, 2))
	if h.RedoDepth() != 0 {
		t.Errorf("Expected commit to discard redo, got %d entries", h.RedoDepth())
	}
	if _, ok := h.Redo(); ok {
		t.Error("Expected Redo to report false after a commit")
	}
}

func TestHistoryCommitCopies(t *testing.T) {
	h := NewHistory()
	regions, groups := snapshotOf(0)
	h.Commit(regions, groups)

	regions[0].Width = 0.9
	groups[0].Rotation = 45

	cur := h.Current()
	if cur.Regions[0].Width != 0.1 || cur.ColorGroups[0].Rotation != 0 {
		t.Errorf("Expected committed snapshot isolated from caller, got %+v", cur)
	}

	cur.Regions[0].Width = 0.7
	if h.Current().Regions[0].Width != 0.1 {
		t.Error("Expected Current to return a copy")
	}
}
