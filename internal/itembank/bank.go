// Package itembank holds the calibrated question pool the placement engine
// draws from: an in-memory bank, a JSON file loader with schema
// validation, and answer checking against an item's canonical answer.
package itembank

import (
	"fmt"
	"sort"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
)

// Filter narrows a bank query. Zero-value fields match everything.
type Filter struct {
	Skill irt.Skill
	Level cefr.Level
}

// Bank is the item-lookup collaborator the placement controller depends
// on. Implementations must return items with valid calibration parameters.
type Bank interface {
	// Items returns all items matching the filter, in stable (ID) order.
	Items(f Filter) []*irt.Item

	// Item returns the item with the given ID, or ok=false.
	Item(id string) (*irt.Item, bool)
}

// InMemoryBank is a Bank backed by a slice of items.
type InMemoryBank struct {
	items []*irt.Item
	byID  map[string]*irt.Item
}

// NewInMemoryBank builds a bank from items, rejecting duplicates and
// invalid calibrations.
func NewInMemoryBank(items []*irt.Item) (*InMemoryBank, error) {
	b := &InMemoryBank{
		items: make([]*irt.Item, 0, len(items)),
		byID:  make(map[string]*irt.Item, len(items)),
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item with empty ID")
		}
		if _, dup := b.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item ID %q", it.ID)
		}
		if !it.Skill.Valid() {
			return nil, fmt.Errorf("item %s: unknown skill %q", it.ID, it.Skill)
		}
		if !it.ValidCalibration() {
			return nil, fmt.Errorf("item %s: invalid calibration (a=%g, c=%g)",
				it.ID, it.Discrimination, it.Guessing)
		}
		b.items = append(b.items, it)
		b.byID[it.ID] = it
	}
	sort.Slice(b.items, func(i, j int) bool { return b.items[i].ID < b.items[j].ID })
	return b, nil
}

// Items implements Bank.
func (b *InMemoryBank) Items(f Filter) []*irt.Item {
	var out []*irt.Item
	for _, it := range b.items {
		if f.Skill != "" && it.Skill != f.Skill {
			continue
		}
		if f.Level != "" && it.TargetLevel != f.Level {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Item implements Bank.
func (b *InMemoryBank) Item(id string) (*irt.Item, bool) {
	it, ok := b.byID[id]
	return it, ok
}

// Len returns the number of items in the bank.
func (b *InMemoryBank) Len() int {
	return len(b.items)
}
