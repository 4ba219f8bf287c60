// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhvo-dev/playdeck/internal/core/report"
	requestutil "github.com/minhvo-dev/playdeck/internal/platform/request"
	"github.com/minhvo-dev/playdeck/internal/platform/respond"
	"github.com/minhvo-dev/playdeck/internal/platform/validate"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// ReportHandler implements the abuse report review endpoints.
type ReportHandler struct {
	store *Store
}

// NewReportHandler constructs a [ReportHandler].
func NewReportHandler(store *Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// Routes returns a [chi.Router] with the report endpoints.
func (handler *ReportHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReports)
	router.Patch("/{id}/status", handler.setReportStatus)

	return router
}

// statusRequest is the PATCH /reports/{id}/status body.
type statusRequest struct {
	Status string `json:"status"`
}

// listReports returns one page of reports as the flat list envelope. An
// optional ?status= query narrows the page to a single review state.
func (handler *ReportHandler) listReports(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	status := request.URL.Query().Get("status")
	if status != "" {
		validator := &validate.Validator{}
		if err := validator.OneOf("status", status, report.Statuses...).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	respond.OK(writer, handler.store.Reports(params, report.Status(status)))
}

/*
SetReportStatus transitions a report between review states.

PATCH /admin/reports/{id}/status

Request:
  - Body: statusRequest (Status: pending | reviewed | dismissed)

Response:
  - 200: Report: The updated report
  - 400: ErrInvalidJSON: Unknown status value
  - 404: ErrNotFound: Unknown report identifier
*/
func (handler *ReportHandler) setReportStatus(writer http.ResponseWriter, request *http.Request) {
	var input statusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("status", input.Status).
		OneOf("status", input.Status, report.Statuses...)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.store.SetReportStatus(requestutil.ID(request, "id"), report.Status(input.Status))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
