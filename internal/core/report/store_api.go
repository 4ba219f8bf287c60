// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package report

import (
	"context"
	"net/url"
	"strconv"

	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// statusRequest is the PATCH body for status transitions.
type statusRequest struct {
	Status Status `json:"status"`
}

// apiStore implements [Store] over the platform admin API.
type apiStore struct {
	client *httpclient.Client
}

// NewAPIStore creates the REST-backed [Store].
func NewAPIStore(client *httpclient.Client) Store {
	return &apiStore{client: client}
}

// List calls GET /reports?page=&limit=[&status=].
func (store *apiStore) List(ctx context.Context, page, limit int, status Status) (*pagination.Page[Report], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if status != "" {
		params.Set("status", string(status))
	}

	result := &pagination.Page[Report]{}
	if err := store.client.Get(ctx, "/reports?"+params.Encode(), result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetStatus calls PATCH /reports/{id}/status.
func (store *apiStore) SetStatus(ctx context.Context, id string, status Status) (*Report, error) {
	result := &Report{}
	if err := store.client.Patch(ctx, "/reports/"+id+"/status", statusRequest{Status: status}, result); err != nil {
		return nil, err
	}
	return result, nil
}
