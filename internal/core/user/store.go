// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package user

import (
	"context"

	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// Store abstracts the remote user endpoints so the service can be tested
// against the in-process mock API or a hand-rolled fake.
type Store interface {
	// List fetches one page of users.
	List(ctx context.Context, page, limit int) (*pagination.Page[User], error)

	// Get fetches a single user by identifier.
	Get(ctx context.Context, id string) (*User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id string) error
}
