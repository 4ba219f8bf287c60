// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

// Package post manages platform content in the admin console: the paginated
// post list, the selected post with its comments, author-scoped post lists,
// and the visibility/deletion moderation intents.
package post

import (
	"time"

	"github.com/minhvo-dev/playdeck/internal/core/user"
)

// Type categorizes a post.
type Type string

const (
	TypeGeneral     Type = "General"
	TypeQuestion    Type = "Question"
	TypeAchievement Type = "Achievement"
)

// Post is a content snapshot as delivered by the platform API.
//
// The author is an embedded [user.User] snapshot taken at fetch time, not a
// live reference; Likes holds raw member identifiers.
type Post struct {
	ID        string    `json:"_id"`
	User      user.User `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Type      Type      `json:"type"`
	Image     string    `json:"image,omitempty"`
	Likes     []string  `json:"likes"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment is a reply snapshot attached to a post.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"post"`
	User      user.User `json:"user"`
	Text      string    `json:"text"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key extracts the post identifier for collection bookkeeping.
func Key(p Post) string { return p.ID }

// CommentKey extracts the comment identifier.
func CommentKey(c Comment) string { return c.ID }
