// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
)

// Snapshot is an immutable view of the dashboard slice.
type Snapshot struct {
	Stats   *Stats
	Loading bool
	Err     string
}

// Service owns the dashboard slice. It is the one slice that is not a
// paginated collection: a single nullable stats block with the standard
// loading/error lifecycle.
type Service struct {
	store  Store
	logger *slog.Logger

	mu      sync.Mutex
	stats   *Stats
	loading bool
	lastErr string
}

// NewService constructs the dashboard slice service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// FetchStats loads the aggregate counters.
func (service *Service) FetchStats(ctx context.Context) error {
	service.mu.Lock()
	service.loading = true
	service.lastErr = ""
	service.mu.Unlock()

	result, err := service.store.Stats(ctx)

	service.mu.Lock()
	defer service.mu.Unlock()
	service.loading = false

	if err != nil {
		service.lastErr = apperr.Display(err)
		return err
	}

	service.stats = result
	return nil
}

// State returns the current dashboard snapshot.
func (service *Service) State() Snapshot {
	service.mu.Lock()
	defer service.mu.Unlock()

	var stats *Stats
	if service.stats != nil {
		copied := *service.stats
		stats = &copied
	}

	return Snapshot{
		Stats:   stats,
		Loading: service.loading,
		Err:     service.lastErr,
	}
}
