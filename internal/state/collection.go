// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package state implements the unidirectional state container for the console.

Each remote entity family (users, posts, reports) owns one [Collection]: a
page-scoped list, an optional selected detail item, a pagination block, a
loading flag, and a last-error string. Every async operation follows the same
three-phase lifecycle:

  - Begin: loading on, error cleared.
  - SetPage / Replace / Remove: result merged, loading off.
  - Fail: error string stored, loading off, the collection left untouched —
    nothing is ever applied optimistically, so there is nothing to roll back.

One generic state machine serves every entity family instead of per-entity
copies.

# Atomicity

Mutations run under a mutex and views read via [Collection.Snapshot], which
copies the list out. A reader observes either the pre-state or the fully
updated post-state, never an intermediate.

# Known race

Concurrent duplicate fetches on the same collection are not guarded: two
overlapping page fetches settle on whichever response lands last, regardless
of request order. Callers that need ordering must serialize their fetches.
*/
package state

import (
	"sync"

	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// Collection is the generic remote-paginated-collection slice.
//
// T is the entity type; the key function extracts its identifier.
type Collection[T any] struct {
	mu  sync.Mutex
	key func(T) string

	items    []T
	selected *T
	meta     pagination.Meta
	loading  bool
	lastErr  string
}

// Snapshot is an immutable view of a [Collection] at one instant.
type Snapshot[T any] struct {
	Items      []T
	Selected   *T
	Pagination pagination.Meta
	Loading    bool
	Err        string
}

// NewCollection creates an empty collection keyed by the given extractor.
func NewCollection[T any](key func(T) string) *Collection[T] {
	return &Collection[T]{key: key}
}

// # Lifecycle Transitions

// Begin marks a fetch as in-flight: loading on, previous error cleared.
func (c *Collection[T]) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.lastErr = ""
}

// Fail records a failed operation. The entity list, selection, and
// pagination block are left exactly as they were.
func (c *Collection[T]) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.lastErr = message
}

// SetPage replaces the whole page-scoped list and pagination block.
//
// The pagination metadata is taken verbatim from the server response —
// totalPages is trusted, not recomputed.
func (c *Collection[T]) SetPage(items []T, meta pagination.Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.meta = meta
	c.loading = false
	c.lastErr = ""
}

// # Single-Entity Merges

// Replace swaps the element with the same identifier in place, preserving
// list order. When the selected detail item carries that identifier it is
// updated too. Returns whether a list entry matched.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	replaced := false
	for i := range c.items {
		if c.key(c.items[i]) == id {
			c.items[i] = item
			replaced = true
			break
		}
	}

	if c.selected != nil && c.key(*c.selected) == id {
		copied := item
		c.selected = &copied
	}

	c.loading = false
	return replaced
}

// Remove filters the element with the given identifier out of the list.
//
// Removing an unknown identifier is a no-op on the list but still clears the
// loading flag. When the removed identifier is the selected detail item, the
// selection is cleared so nothing can reference a deleted entity.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := false
	kept := c.items[:0]
	for _, item := range c.items {
		if c.key(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept

	if c.selected != nil && c.key(*c.selected) == id {
		c.selected = nil
	}

	c.loading = false
	return removed
}

// # Selection

// Select stores the detail entity currently being viewed.
func (c *Collection[T]) Select(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := item
	c.selected = &copied
}

// ClearSelected drops the detail entity.
func (c *Collection[T]) ClearSelected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// # Reading

// Snapshot returns a copy of the current state. The returned slice is
// detached from the collection; mutating it does not affect the store.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	var selected *T
	if c.selected != nil {
		copied := *c.selected
		selected = &copied
	}

	return Snapshot[T]{
		Items:      items,
		Selected:   selected,
		Pagination: c.meta,
		Loading:    c.loading,
		Err:        c.lastErr,
	}
}
