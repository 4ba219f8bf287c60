// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo-dev/playdeck/internal/notify"
)

/*
TestNotifier_Push appends notifications in insertion order with unique IDs.
*/
func TestNotifier_Push(t *testing.T) {
	n := notify.New(nil)

	first := n.Push("first", notify.SeveritySuccess, 0)
	second := n.Push("second", notify.SeverityError, 0)

	assert.NotEqual(t, first, second)

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
	assert.Equal(t, "second", active[1].Message)
}

/*
TestNotifier_Sink verifies the sink observes every push synchronously.
*/
func TestNotifier_Sink(t *testing.T) {
	var seen []notify.Notification
	n := notify.New(func(item notify.Notification) { seen = append(seen, item) })

	n.Success("done")
	n.Error("failed")

	require.Len(t, seen, 2)
	assert.Equal(t, notify.SeveritySuccess, seen[0].Severity)
	assert.Equal(t, "failed", seen[1].Message)
}

/*
TestNotifier_Expiry checks that a notification with a positive duration is
removed automatically.
*/
func TestNotifier_Expiry(t *testing.T) {
	n := notify.New(nil)

	n.Push("ephemeral", notify.SeverityInfo, 10*time.Millisecond)
	require.Len(t, n.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(n.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

/*
TestNotifier_Dismiss removes the item and cancels its expiry timer; dismissing
twice is a silent no-op.
*/
func TestNotifier_Dismiss(t *testing.T) {
	n := notify.New(nil)

	id := n.Push("toast", notify.SeverityInfo, time.Hour)
	n.Dismiss(id)
	assert.Empty(t, n.Active())

	// Second dismissal of the same identifier must not panic or error.
	n.Dismiss(id)
	n.Dismiss("never-existed")
	assert.Empty(t, n.Active())
}

/*
TestNotifier_StickyWithoutDuration keeps zero-duration notifications until
explicitly dismissed.
*/
func TestNotifier_StickyWithoutDuration(t *testing.T) {
	n := notify.New(nil)

	id := n.Push("sticky", notify.SeverityWarning, 0)

	time.Sleep(20 * time.Millisecond)
	require.Len(t, n.Active(), 1)

	n.Dismiss(id)
	assert.Empty(t, n.Active())
}
