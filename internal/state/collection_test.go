// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo-dev/playdeck/internal/state"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

type entity struct {
	ID   string
	Name string
}

func key(e entity) string { return e.ID }

func newCollection(items ...entity) *state.Collection[entity] {
	c := state.NewCollection(key)
	c.SetPage(items, pagination.Meta{Page: 1, Limit: 10, Total: len(items), TotalPages: 1})
	return c
}

/*
TestCollection_Lifecycle walks the Begin/SetPage/Fail phases of a fetch.
*/
func TestCollection_Lifecycle(t *testing.T) {
	c := state.NewCollection(key)

	c.Begin()
	snapshot := c.Snapshot()
	assert.True(t, snapshot.Loading)
	assert.Empty(t, snapshot.Err)

	c.SetPage([]entity{{ID: "1"}, {ID: "2"}}, pagination.Meta{Page: 1, Limit: 10, Total: 2, TotalPages: 1})
	snapshot = c.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Len(t, snapshot.Items, 2)
	assert.Equal(t, 1, snapshot.Pagination.TotalPages)
}

/*
TestCollection_Fail_KeepsData ensures a failed fetch leaves the previous page
visible and only flips the error string.
*/
func TestCollection_Fail_KeepsData(t *testing.T) {
	c := newCollection(entity{ID: "1", Name: "first"})

	c.Begin()
	c.Fail("Could not reach the platform API")

	snapshot := c.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Equal(t, "Could not reach the platform API", snapshot.Err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "first", snapshot.Items[0].Name)
}

/*
TestCollection_Begin_ClearsError checks that starting a new fetch resets the
previous failure.
*/
func TestCollection_Begin_ClearsError(t *testing.T) {
	c := state.NewCollection(key)
	c.Fail("boom")

	c.Begin()
	assert.Empty(t, c.Snapshot().Err)
}

/*
TestCollection_SetPage_TrustsMeta verifies the pagination block is reflected
verbatim, even when inconsistent with the item count.
*/
func TestCollection_SetPage_TrustsMeta(t *testing.T) {
	c := state.NewCollection(key)

	// Server says 7 pages; the collection must not recompute.
	c.SetPage([]entity{{ID: "1"}}, pagination.Meta{Page: 2, Limit: 10, Total: 61, TotalPages: 7})

	meta := c.Snapshot().Pagination
	assert.Equal(t, 7, meta.TotalPages)
	assert.Equal(t, 61, meta.Total)
}

/*
TestCollection_Replace swaps exactly one element in place, preserving order.
*/
func TestCollection_Replace(t *testing.T) {
	c := newCollection(
		entity{ID: "1", Name: "a"},
		entity{ID: "2", Name: "b"},
		entity{ID: "3", Name: "c"},
	)

	replaced := c.Replace(entity{ID: "2", Name: "B"})
	assert.True(t, replaced)

	snapshot := c.Snapshot()
	require.Len(t, snapshot.Items, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{snapshot.Items[0].ID, snapshot.Items[1].ID, snapshot.Items[2].ID})
	assert.Equal(t, "B", snapshot.Items[1].Name)
	assert.Equal(t, "a", snapshot.Items[0].Name)
}

/*
TestCollection_Replace_UpdatesSelected keeps the detail entity in sync when it
is the one being replaced.
*/
func TestCollection_Replace_UpdatesSelected(t *testing.T) {
	c := newCollection(entity{ID: "1", Name: "a"})
	c.Select(entity{ID: "1", Name: "a"})

	c.Replace(entity{ID: "1", Name: "A"})

	selected := c.Snapshot().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "A", selected.Name)
}

/*
TestCollection_Replace_Unknown is a no-op on the list but still ends loading.
*/
func TestCollection_Replace_Unknown(t *testing.T) {
	c := newCollection(entity{ID: "1"})
	c.Begin()

	replaced := c.Replace(entity{ID: "999"})

	assert.False(t, replaced)
	snapshot := c.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Len(t, snapshot.Items, 1)
}

/*
TestCollection_Remove deletes exactly the matching element.
*/
func TestCollection_Remove(t *testing.T) {
	c := newCollection(entity{ID: "1"}, entity{ID: "2"}, entity{ID: "3"})

	removed := c.Remove("2")
	assert.True(t, removed)

	snapshot := c.Snapshot()
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "1", snapshot.Items[0].ID)
	assert.Equal(t, "3", snapshot.Items[1].ID)
}

/*
TestCollection_Remove_Unknown verifies the idempotent no-op contract: nothing
is deleted, but the loading flag still clears.
*/
func TestCollection_Remove_Unknown(t *testing.T) {
	c := newCollection(entity{ID: "1"})
	c.Begin()

	removed := c.Remove("999")

	assert.False(t, removed)
	snapshot := c.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Len(t, snapshot.Items, 1)
}

/*
TestCollection_Remove_ClearsSelected drops the detail entity when it is the
one being removed, and keeps it otherwise.
*/
func TestCollection_Remove_ClearsSelected(t *testing.T) {
	c := newCollection(entity{ID: "1"}, entity{ID: "2"})
	c.Select(entity{ID: "1"})

	c.Remove("2")
	require.NotNil(t, c.Snapshot().Selected)

	c.Remove("1")
	assert.Nil(t, c.Snapshot().Selected)
}

/*
TestCollection_Snapshot_Detached ensures mutating a snapshot's slice does not
leak back into the collection.
*/
func TestCollection_Snapshot_Detached(t *testing.T) {
	c := newCollection(entity{ID: "1", Name: "a"})

	snapshot := c.Snapshot()
	snapshot.Items[0].Name = "mutated"

	assert.Equal(t, "a", c.Snapshot().Items[0].Name)
}

/*
TestSublist covers the wholesale-set, in-place-replace, and clear behavior of
the detail-scoped secondary list.
*/
func TestSublist(t *testing.T) {
	l := state.NewSublist(key)

	l.Set([]entity{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})
	assert.Len(t, l.Items(), 2)

	replaced := l.Replace(entity{ID: "2", Name: "B"})
	assert.True(t, replaced)
	items := l.Items()
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "B", items[1].Name)

	assert.False(t, l.Replace(entity{ID: "999"}))

	l.Clear()
	assert.Empty(t, l.Items())
}
