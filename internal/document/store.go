package document

import (
	"errors"
	"fmt"
)

var ErrGroupNotFound = errors.New("color group not found")

// Store is the authoritative color -> ColorGroup table. Regions refer to their
// group by color key; all group mutation goes through the store. Groups keep
// their creation order.
type Store struct {
	groups []ColorGroup
	index  map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		groups: []ColorGroup{},
		index:  make(map[string]int),
	}
}

// NewStoreFrom creates a store holding deep copies of groups.
func NewStoreFrom(groups []ColorGroup) *Store {
	s := NewStore()
	s.Restore(groups)
	return s
}

// EnsureGroup inserts an empty, unrotated group for color unless one already
// exists. It reports whether a group was created.
func (s *Store) EnsureGroup(color string) bool {
	if _, ok := s.index[color]; ok {
		return false
	}
	s.index[color] = len(s.groups)
	s.groups = append(s.groups, ColorGroup{
		Color:    color,
		Rotation: 0,
		Warp:     "",
		Children: []Region{},
	})
	return true
}

// AppendChild adds r to the template children of the parent color's group.
func (s *Store) AppendChild(parent string, r Region) error {
	i, ok := s.index[parent]
	if !ok {
		return fmt.Errorf("append child %d: %w: %s", r.ID, ErrGroupNotFound, parent)
	}
	s.groups[i].Children = append(s.groups[i].Children, r)
	return nil
}

// ReplaceChild overwrites the child with r's id in the parent color's group.
func (s *Store) ReplaceChild(parent string, r Region) error {
	i, ok := s.index[parent]
	if !ok {
		return fmt.Errorf("replace child %d: %w: %s", r.ID, ErrGroupNotFound, parent)
	}
	children := s.groups[i].Children
	for j := len(children) - 1; j >= 0; j-- {
		if children[j].ID == r.ID {
			children[j] = r
			return nil
		}
	}
	return fmt.Errorf("replace child %d: not in group %s", r.ID, parent)
}

// ApplyRotationDelta adds delta degrees to the group's rotation. Unknown
// colors are ignored; the return value reports whether a group changed.
func (s *Store) ApplyRotationDelta(color string, delta float64) bool {
	i, ok := s.index[color]
	if !ok {
		return false
	}
	s.groups[i].Rotation += delta
	return true
}

// Reset removes every group.
func (s *Store) Reset() {
	s.groups = []ColorGroup{}
	s.index = make(map[string]int)
}

// Group looks up a group by color. The returned value shares its Children
// slice with the store and must be treated as read-only.
func (s *Store) Group(color string) (ColorGroup, bool) {
	i, ok := s.index[color]
	if !ok {
		return ColorGroup{}, false
	}
	return s.groups[i], true
}

// Len returns the number of groups.
func (s *Store) Len() int {
	return len(s.groups)
}

// Keys returns the group colors in creation order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.groups))
	for i, g := range s.groups {
		keys[i] = g.Color
	}
	return keys
}

// Groups returns a deep copy of every group in creation order.
func (s *Store) Groups() []ColorGroup {
	return Snapshot{ColorGroups: s.groups}.Clone().ColorGroups
}

// Restore replaces the store's contents with deep copies of groups.
// A later group with an already-seen color is dropped.
func (s *Store) Restore(groups []ColorGroup) {
	s.Reset()
	for _, g := range (Snapshot{ColorGroups: groups}).Clone().ColorGroups {
		if _, dup := s.index[g.Color]; dup {
			continue
		}
		s.index[g.Color] = len(s.groups)
		s.groups = append(s.groups, g)
	}
}
