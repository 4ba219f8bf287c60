// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package dashboard

import (
	"context"

	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
)

// Store abstracts the remote stats endpoint.
type Store interface {
	// Stats fetches the aggregate counters.
	Stats(ctx context.Context) (*Stats, error)
}

// apiStore implements [Store] over the platform admin API.
type apiStore struct {
	client *httpclient.Client
}

// NewAPIStore creates the REST-backed [Store].
func NewAPIStore(client *httpclient.Client) Store {
	return &apiStore{client: client}
}

// Stats calls GET /dashboard/stats.
func (store *apiStore) Stats(ctx context.Context) (*Stats, error) {
	result := &Stats{}
	if err := store.client.Get(ctx, "/dashboard/stats", result); err != nil {
		return nil, err
	}
	return result, nil
}
