// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package report

import (
	"context"
	"log/slog"

	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/platform/validate"
	"github.com/minhvo-dev/playdeck/internal/state"
)

// Service owns the report slice.
type Service struct {
	store    Store
	reports  *state.Collection[Report]
	notifier *notify.Notifier
	logger   *slog.Logger
}

// NewService constructs the report slice service.
func NewService(store Store, notifier *notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		reports:  state.NewCollection(Key),
		notifier: notifier,
		logger:   logger,
	}
}

// FetchPage loads one page of reports into the slice, optionally filtered
// by status. The filter value is validated before a request is issued.
func (service *Service) FetchPage(ctx context.Context, page, limit int, status Status) error {
	if status != "" {
		validator := &validate.Validator{}
		if err := validator.OneOf("status", string(status), Statuses...).Err(); err != nil {
			service.reports.Fail(apperr.Display(err))
			return err
		}
	}

	service.reports.Begin()

	result, err := service.store.List(ctx, page, limit, status)
	if err != nil {
		service.reports.Fail(apperr.Display(err))
		return err
	}

	service.reports.SetPage(result.Data, result.Meta())
	return nil
}

// SetStatus transitions a report's status. The updated snapshot replaces
// only the matching list entry, in place.
func (service *Service) SetStatus(ctx context.Context, id string, status Status) error {
	validator := &validate.Validator{}
	if err := validator.Required("id", id).OneOf("status", string(status), Statuses...).Err(); err != nil {
		return err
	}

	updated, err := service.store.SetStatus(ctx, id, status)
	if err != nil {
		service.notifier.Error("Failed to update report status")
		service.reports.Fail(apperr.Display(err))
		return err
	}

	service.reports.Replace(*updated)
	service.notifier.Success("Report status updated successfully")
	return nil
}

// State returns the current report slice snapshot.
func (service *Service) State() state.Snapshot[Report] {
	return service.reports.Snapshot()
}
