package document

import (
	"errors"
	"reflect"
	"testing"
)

func sampleSnapshot() Snapshot {
	child := Region{ID: 1, X: 0.1, Y: 0.1, Width: 0.5, Height: 0.5, Color: "#00ff00", IsChild: true}
	return Snapshot{
		Regions: []Region{
			{ID: 0, Width: 0.5, Height: 0.5, Color: "#ff0000"},
			child,
		},
		ColorGroups: []ColorGroup{
			{Color: "#ff0000", Rotation: 15, Children: []Region{child}},
			{Color: "#00ff00", Children: []Region{}},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleSnapshot()
	clone := orig.Clone()

	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("Expected clone equal to original\norig:  %+v\nclone: %+v", orig, clone)
	}

	clone.Regions[0].Width = 1
	clone.ColorGroups[0].Children[0].X = 0.9
	clone.ColorGroups[0].Rotation = 0

	if orig.Regions[0].Width != 0.5 {
		t.Error("Expected original region untouched")
	}
	if orig.ColorGroups[0].Children[0].X != 0.1 {
		t.Error("Expected original group child untouched")
	}
	if orig.ColorGroups[0].Rotation != 15 {
		t.Error("Expected original rotation untouched")
	}
}

func TestCopyByHandIsDeep(t *testing.T) {
	orig := sampleSnapshot()
	got := orig.copyByHand().normalized()

	if !reflect.DeepEqual(got, orig.Clone()) {
		t.Fatalf("Expected hand copy equal to Clone\ngot:  %+v\nwant: %+v", got, orig.Clone())
	}

	got.Regions[1].Y = 0.7
	got.ColorGroups[0].Children[0].Width = 0.9

	if orig.Regions[1].Y != 0.1 {
		t.Error("Expected original region untouched")
	}
	if orig.ColorGroups[0].Children[0].Width != 0.5 {
		t.Error("Expected original group child untouched")
	}
}

func TestCloneNormalizesNilSlices(t *testing.T) {
	got := Snapshot{ColorGroups: []ColorGroup{{Color: "#ff0000"}}}.Clone()
	if got.Regions == nil || got.ColorGroups[0].Children == nil {
		t.Errorf("Expected non-nil slices, got %+v", got)
	}
	if !reflect.DeepEqual(Snapshot{}.Clone(), EmptySnapshot()) {
		t.Error("Expected zero snapshot clone to equal EmptySnapshot()")
	}
}

func TestCanonical(t *testing.T) {
	valid := sampleSnapshot()
	valid.Regions[0].Color = "#F00"
	valid.ColorGroups[0].Color = "#FF0000"

	got, err := valid.Canonical()
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if got.Regions[0].Color != "#ff0000" || got.ColorGroups[0].Color != "#ff0000" {
		t.Errorf("Expected normalized colors, got %+v", got)
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"duplicate id", func(s *Snapshot) { s.Regions[1].ID = 0 }},
		{"negative id", func(s *Snapshot) { s.Regions[0].ID = -1 }},
		{"negative size", func(s *Snapshot) { s.Regions[0].Width = -0.1 }},
		{"bad color", func(s *Snapshot) { s.Regions[0].Color = "red" }},
		{"duplicate group", func(s *Snapshot) { s.ColorGroups[1].Color = "#FF0000" }},
		{"orphan child", func(s *Snapshot) { s.ColorGroups[0].Children = nil }},
		{"unknown template child", func(s *Snapshot) {
			s.ColorGroups[1].Children = []Region{{ID: 7, Color: "#ff0000", IsChild: true}}
		}},
		{"child listed twice", func(s *Snapshot) {
			s.ColorGroups[1].Children = []Region{s.Regions[1]}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSnapshot()
			tt.mutate(&s)
			if _, err := s.Canonical(); !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}
