// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package post

import (
	"context"
	"fmt"

	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// visibilityRequest is the PATCH body for visibility toggles.
type visibilityRequest struct {
	Hidden bool `json:"hidden"`
}

// apiStore implements [Store] over the platform admin API.
type apiStore struct {
	client *httpclient.Client
}

// NewAPIStore creates the REST-backed [Store].
func NewAPIStore(client *httpclient.Client) Store {
	return &apiStore{client: client}
}

// List calls GET /posts?page=&limit=.
func (store *apiStore) List(ctx context.Context, page, limit int) (*pagination.Page[Post], error) {
	result := &pagination.Page[Post]{}
	path := fmt.Sprintf("/posts?page=%d&limit=%d", page, limit)
	if err := store.client.Get(ctx, path, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get calls GET /posts/{id}.
func (store *apiStore) Get(ctx context.Context, id string) (*Post, error) {
	result := &Post{}
	if err := store.client.Get(ctx, "/posts/"+id, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Comments calls GET /posts/{id}/comments.
func (store *apiStore) Comments(ctx context.Context, postID string) ([]Comment, error) {
	result := []Comment{}
	if err := store.client.Get(ctx, "/posts/"+postID+"/comments", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByAuthor calls GET /users/{id}/posts.
func (store *apiStore) ListByAuthor(ctx context.Context, userID string) ([]Post, error) {
	result := []Post{}
	if err := store.client.Get(ctx, "/users/"+userID+"/posts", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetVisibility calls PATCH /posts/{id}/visibility.
func (store *apiStore) SetVisibility(ctx context.Context, id string, hidden bool) (*Post, error) {
	result := &Post{}
	if err := store.client.Patch(ctx, "/posts/"+id+"/visibility", visibilityRequest{Hidden: hidden}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete calls DELETE /posts/{id}.
func (store *apiStore) Delete(ctx context.Context, id string) error {
	return store.client.Delete(ctx, "/posts/"+id)
}

// SetCommentVisibility calls PATCH /comments/{id}/visibility.
func (store *apiStore) SetCommentVisibility(ctx context.Context, id string, hidden bool) (*Comment, error) {
	result := &Comment{}
	if err := store.client.Patch(ctx, "/comments/"+id+"/visibility", visibilityRequest{Hidden: hidden}, result); err != nil {
		return nil, err
	}
	return result, nil
}
