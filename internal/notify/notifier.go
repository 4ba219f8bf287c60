// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package notify implements the transient notification queue.

Notifications (toasts) are ephemeral, severity-tagged messages produced by
mutating operations. Each notification with a
positive duration schedules exactly one removal timer at insertion time; the
timer handle is kept so that explicit dismissal cancels it instead of leaving
a dangling callback firing against an already-removed item.
*/
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhvo-dev/playdeck/internal/platform/constants"
)

// Severity tags a notification for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a single ephemeral message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration // 0 means sticky until dismissed
	CreatedAt time.Time
}

// Notifier is the append-only, identifier-keyed notification queue.
//
// An optional sink receives every pushed notification synchronously; the CLI
// uses it to print toasts as they happen.
type Notifier struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	sink   func(Notification)
}

// New creates a Notifier. sink may be nil.
func New(sink func(Notification)) *Notifier {
	return &Notifier{
		timers: make(map[string]*time.Timer),
		sink:   sink,
	}
}

// Push appends a notification and schedules its removal timer when duration
// is positive. It returns the generated identifier.
func (n *Notifier) Push(message string, severity Severity, duration time.Duration) string {
	id := newID()
	item := Notification{
		ID:        id,
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.items = append(n.items, item)
	if duration > 0 {
		n.timers[id] = time.AfterFunc(duration, func() { n.Dismiss(id) })
	}
	sink := n.sink
	n.mu.Unlock()

	if sink != nil {
		sink(item)
	}
	return id
}

// Dismiss removes a notification by identifier and cancels its expiry timer.
// Dismissing an already-removed identifier is a no-op, not an error.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}

	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}

// Active returns a detached copy of the notifications currently present,
// in insertion order.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	items := make([]Notification, len(n.items))
	copy(items, n.items)
	return items
}

// # Convenience Constructors

// Success pushes a success toast with the default duration.
func (n *Notifier) Success(message string) string {
	return n.Push(message, SeveritySuccess, constants.DefaultToastDuration)
}

// Error pushes an error toast with the default duration.
func (n *Notifier) Error(message string) string {
	return n.Push(message, SeverityError, constants.DefaultToastDuration)
}

// Info pushes an info toast with the default duration.
func (n *Notifier) Info(message string) string {
	return n.Push(message, SeverityInfo, constants.DefaultToastDuration)
}

// newID generates a notification identifier (UUID v7, falling back to v4).
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
