package document

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"
)

var ErrInvalidDocument = errors.New("invalid document")

// Clone returns a fully independent deep copy of s. Mutating the clone never
// affects s.
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("deep copy snapshot", "error", err)
		out = s.copyByHand()
	}
	return out.normalized()
}

// copyByHand is the fallback used when the reflective copy fails.
func (s Snapshot) copyByHand() Snapshot {
	out := Snapshot{
		Regions:     append([]Region(nil), s.Regions...),
		ColorGroups: make([]ColorGroup, len(s.ColorGroups)),
	}
	for i, g := range s.ColorGroups {
		g.Children = append([]Region(nil), g.Children...)
		out.ColorGroups[i] = g
	}
	return out
}

// normalized replaces nil slices with empty ones so equal states compare equal.
func (s Snapshot) normalized() Snapshot {
	if s.Regions == nil {
		s.Regions = []Region{}
	}
	if s.ColorGroups == nil {
		s.ColorGroups = []ColorGroup{}
	}
	for i := range s.ColorGroups {
		if s.ColorGroups[i].Children == nil {
			s.ColorGroups[i].Children = []Region{}
		}
	}
	return s
}

// Canonical validates s and returns a deep copy with every color key
// normalized to lowercase #rrggbb.
func (s Snapshot) Canonical() (Snapshot, error) {
	out := s.Clone()

	ids := make(map[int]bool, len(out.Regions))
	for i := range out.Regions {
		r := &out.Regions[i]
		if err := canonicalRegion(r); err != nil {
			return Snapshot{}, err
		}
		if ids[r.ID] {
			return Snapshot{}, fmt.Errorf("%w: duplicate region id %d", ErrInvalidDocument, r.ID)
		}
		ids[r.ID] = r.IsChild
	}

	keys := make(map[string]bool, len(out.ColorGroups))
	templated := make(map[int]int)
	for i := range out.ColorGroups {
		g := &out.ColorGroups[i]
		key, err := NormalizeColor(g.Color)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: group: %w", ErrInvalidDocument, err)
		}
		if keys[key] {
			return Snapshot{}, fmt.Errorf("%w: duplicate color group %s", ErrInvalidDocument, key)
		}
		keys[key] = true
		g.Color = key

		for j := range g.Children {
			c := &g.Children[j]
			if err := canonicalRegion(c); err != nil {
				return Snapshot{}, err
			}
			isChild, ok := ids[c.ID]
			if !ok || !isChild || !c.IsChild {
				return Snapshot{}, fmt.Errorf("%w: group %s lists region %d which is not a child region", ErrInvalidDocument, key, c.ID)
			}
			templated[c.ID]++
		}
	}

	for _, r := range out.Regions {
		if r.IsChild && templated[r.ID] != 1 {
			return Snapshot{}, fmt.Errorf("%w: child region %d appears in %d color groups", ErrInvalidDocument, r.ID, templated[r.ID])
		}
	}

	return out, nil
}

func canonicalRegion(r *Region) error {
	if r.ID < 0 {
		return fmt.Errorf("%w: negative region id %d", ErrInvalidDocument, r.ID)
	}
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: region %d has negative size", ErrInvalidDocument, r.ID)
	}
	key, err := NormalizeColor(r.Color)
	if err != nil {
		return fmt.Errorf("%w: region %d: %w", ErrInvalidDocument, r.ID, err)
	}
	r.Color = key
	return nil
}
