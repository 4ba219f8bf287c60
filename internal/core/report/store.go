// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package report

import (
	"context"

	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// Store abstracts the remote report endpoints.
type Store interface {
	// List fetches one page of reports, optionally filtered by status.
	// An empty status means no filter.
	List(ctx context.Context, page, limit int, status Status) (*pagination.Page[Report], error)

	// SetStatus transitions a report's status and returns the updated
	// snapshot.
	SetStatus(ctx context.Context, id string, status Status) (*Report, error)
}
