// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhvo-dev/playdeck/internal/platform/respond"
)

// DashboardHandler implements the aggregate counters endpoint.
type DashboardHandler struct {
	store *Store
}

// NewDashboardHandler constructs a [DashboardHandler].
func NewDashboardHandler(store *Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Routes returns a [chi.Router] with the dashboard endpoints.
func (handler *DashboardHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", handler.getStats)

	return router
}

// getStats returns the platform-wide counters as a bare JSON body.
func (handler *DashboardHandler) getStats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.Stats())
}
