// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package state

import "sync"

// Sublist holds a detail-scoped secondary list: the posts of the selected
// user, or the comments of the selected post. It is replaced wholesale on
// fetch and cleared together with the parent selection.
type Sublist[T any] struct {
	mu    sync.Mutex
	key   func(T) string
	items []T
}

// NewSublist creates an empty sublist keyed by the given extractor.
func NewSublist[T any](key func(T) string) *Sublist[T] {
	return &Sublist[T]{key: key}
}

// Set replaces the whole list.
func (l *Sublist[T]) Set(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
}

// Replace swaps the element with the same identifier in place, preserving
// order. Returns whether an entry matched.
func (l *Sublist[T]) Replace(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.key(item)
	for i := range l.items {
		if l.key(l.items[i]) == id {
			l.items[i] = item
			return true
		}
	}
	return false
}

// Clear empties the list.
func (l *Sublist[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// Items returns a detached copy of the list.
func (l *Sublist[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}
