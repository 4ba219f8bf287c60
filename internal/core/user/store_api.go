// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package user

import (
	"context"
	"fmt"

	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// apiStore implements [Store] over the platform admin API.
type apiStore struct {
	client *httpclient.Client
}

// NewAPIStore creates the REST-backed [Store].
func NewAPIStore(client *httpclient.Client) Store {
	return &apiStore{client: client}
}

// List calls GET /users?page=&limit=.
func (store *apiStore) List(ctx context.Context, page, limit int) (*pagination.Page[User], error) {
	result := &pagination.Page[User]{}
	path := fmt.Sprintf("/users?page=%d&limit=%d", page, limit)
	if err := store.client.Get(ctx, path, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get calls GET /users/{id}.
func (store *apiStore) Get(ctx context.Context, id string) (*User, error) {
	result := &User{}
	if err := store.client.Get(ctx, "/users/"+id, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete calls DELETE /users/{id}.
func (store *apiStore) Delete(ctx context.Context, id string) error {
	return store.client.Delete(ctx, "/users/"+id)
}
