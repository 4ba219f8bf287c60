// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package user

import (
	"context"
	"log/slog"

	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/state"
)

// Service owns the user slice: it dispatches intents against the remote API
// and folds the outcomes into its [state.Collection].
type Service struct {
	store    Store
	users    *state.Collection[User]
	notifier *notify.Notifier
	logger   *slog.Logger
}

// NewService constructs the user slice service.
func NewService(store Store, notifier *notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		users:    state.NewCollection(Key),
		notifier: notifier,
		logger:   logger,
	}
}

// FetchPage loads one page of users into the slice.
//
// The pagination block is reflected verbatim from the response; on failure
// the previous page stays visible and only the error string changes.
func (service *Service) FetchPage(ctx context.Context, page, limit int) error {
	service.users.Begin()

	result, err := service.store.List(ctx, page, limit)
	if err != nil {
		service.users.Fail(apperr.Display(err))
		return err
	}

	service.users.SetPage(result.Data, result.Meta())
	return nil
}

// FetchProfile loads a single user as the selected detail entity.
//
// An empty identifier means there is nothing to load: the selection is
// cleared and no request is issued.
func (service *Service) FetchProfile(ctx context.Context, id string) error {
	if id == "" {
		service.users.ClearSelected()
		return nil
	}

	result, err := service.store.Get(ctx, id)
	if err != nil {
		service.users.Fail(apperr.Display(err))
		return err
	}

	service.users.Select(*result)
	return nil
}

// ClearProfile drops the selected user.
func (service *Service) ClearProfile() {
	service.users.ClearSelected()
}

// Delete removes a user remotely, then filters it out of the slice.
//
// The list is only touched after the API confirms the deletion; failures
// surface as an error toast and leave the slice unchanged.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.store.Delete(ctx, id); err != nil {
		service.notifier.Error("Failed to delete user")
		service.users.Fail(apperr.Display(err))
		return err
	}

	service.users.Remove(id)
	service.notifier.Success("User deleted successfully")
	return nil
}

// State returns the current user slice snapshot.
func (service *Service) State() state.Snapshot[User] {
	return service.users.Snapshot()
}
