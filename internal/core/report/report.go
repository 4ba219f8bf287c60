// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

// Package report manages abuse reports in the admin console: the paginated,
// status-filterable report list and the status transition intent.
package report

import (
	"time"

	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/user"
)

// Status is the review state of a report.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusDismissed Status = "dismissed"
)

// Statuses lists every valid status value, for validation and CLI help.
var Statuses = []string{string(StatusPending), string(StatusReviewed), string(StatusDismissed)}

// Report is an abuse report snapshot as delivered by the platform API.
//
// Exactly one of Post or Comment is expected to be present — the reported
// target — but the wire format does not enforce it, and neither does the
// console.
type Report struct {
	ID        string        `json:"_id"`
	Reporter  user.User     `json:"reporter"`
	Post      *post.Post    `json:"post,omitempty"`
	Comment   *post.Comment `json:"comment,omitempty"`
	Reason    string        `json:"reason"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Key extracts the identifier for collection bookkeeping.
func Key(r Report) string { return r.ID }
