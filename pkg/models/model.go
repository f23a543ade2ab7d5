package models

import (
	"errors"
	"fmt"
)

// ErrMissingLoc is returned when an item or sitemap entry is added without a
// location. Loc is the one field validated eagerly; everything else is checked
// at render time.
var ErrMissingLoc = errors.New("item requires a non-empty loc")

// Model is the in-memory store behind one sitemap instance: two independent
// ordered sequences, page items and child-sitemap index entries. Both preserve
// insertion order and perform no deduplication. A Model belongs to exactly one
// sitemap instance and is not safe for concurrent mutation; hosting
// applications give each render request its own instance.
type Model struct {
	items   []Item
	entries []Entry
	rev     int64 // Bumped on every mutation; cache collaborators key renders off it
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{}
}

// AddItem appends one or more items in order. The only eager check is the
// required Loc; priority/freq validation is deferred to render time where
// strict mode decides between failing and omitting the field.
func (m *Model) AddItem(items ...Item) error {
	for i, item := range items {
		if item.Loc == "" {
			return fmt.Errorf("%w (batch index %d)", ErrMissingLoc, i)
		}
	}
	m.items = append(m.items, items...)
	m.rev++
	return nil
}

// AddEntry appends one child-sitemap reference to the index list.
func (m *Model) AddEntry(loc string, lastmod string) error {
	if loc == "" {
		return ErrMissingLoc
	}
	m.entries = append(m.entries, Entry{Loc: loc, LastMod: lastmod})
	m.rev++
	return nil
}

// ResetEntries replaces the entire index list. With no arguments it empties
// the list, switching XML rendering back to a urlset document.
func (m *Model) ResetEntries(entries ...Entry) {
	m.entries = append([]Entry(nil), entries...)
	m.rev++
}

// Items returns the live ordered item sequence. Renderers treat it as
// read-only; no defensive copy is made.
func (m *Model) Items() []Item {
	return m.items
}

// Entries returns the live ordered index-entry sequence. Read-only for
// renderers, same as Items.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Revision returns a counter that increases with every mutation. External
// cache collaborators use it to build render keys; it has no rendering
// semantics.
func (m *Model) Revision() int64 {
	return m.rev
}
