// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package post

import (
	"context"

	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// Store abstracts the remote post and comment endpoints.
type Store interface {
	// List fetches one page of posts.
	List(ctx context.Context, page, limit int) (*pagination.Page[Post], error)

	// Get fetches a single post by identifier.
	Get(ctx context.Context, id string) (*Post, error)

	// Comments fetches the comments of a post.
	Comments(ctx context.Context, postID string) ([]Comment, error)

	// ListByAuthor fetches all posts authored by a user.
	ListByAuthor(ctx context.Context, userID string) ([]Post, error)

	// SetVisibility toggles the hidden flag of a post and returns the
	// updated snapshot.
	SetVisibility(ctx context.Context, id string, hidden bool) (*Post, error)

	// Delete removes a post.
	Delete(ctx context.Context, id string) error

	// SetCommentVisibility toggles the hidden flag of a comment.
	SetCommentVisibility(ctx context.Context, id string, hidden bool) (*Comment, error)
}
