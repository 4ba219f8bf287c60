// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

// Package user manages the member directory of the admin console: the
// paginated user list, the selected profile, and user removal.
package user

import "time"

// User is a member snapshot as delivered by the platform API.
//
// Field names mirror the wire format; `_id` is the canonical identifier used
// by every list operation.
type User struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	XP            int       `json:"xp"`
	XPMax         int       `json:"xpMax"`
	Challenges    int       `json:"challenges"`
	LinkedIn      string    `json:"linkedin,omitempty"`
	GitHub        string    `json:"github,omitempty"`
	Twitter       string    `json:"twitter,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Key extracts the identifier for collection bookkeeping.
func Key(u User) string { return u.ID }
