// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/platform/credential"
	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
	"github.com/minhvo-dev/playdeck/internal/platform/validate"
)

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the POST /auth/login response.
type loginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

// verifyResponse is the GET /auth/verify response.
type verifyResponse struct {
	Admin Admin `json:"admin"`
}

// Service drives the session state machine against the platform API.
type Service struct {
	client   *httpclient.Client
	creds    *credential.Store
	notifier *notify.Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	status  Status
	admin   *Admin
	lastErr string
}

// NewService constructs the session service and registers itself as the
// client's unauthorized hook.
func NewService(client *httpclient.Client, creds *credential.Store, notifier *notify.Notifier, logger *slog.Logger) *Service {
	service := &Service{
		client:   client,
		creds:    creds,
		notifier: notifier,
		logger:   logger,
		status:   StatusAnonymous,
	}
	client.SetUnauthorizedHook(service.handleUnauthorized)
	return service
}

// # Lifecycle Transitions

// Login exchanges credentials for a session token.
//
// On success the credential is persisted before the transition to
// authenticated; on failure nothing is stored and the error is surfaced.
func (service *Service) Login(ctx context.Context, email, password string) error {
	validator := &validate.Validator{}
	if err := validator.
		Required("email", email).
		Email("email", email).
		Required("password", password).
		Err(); err != nil {
		return err
	}

	service.transition(StatusAuthenticating, nil, "")

	response := &loginResponse{}
	err := service.client.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, response)
	if err != nil {
		service.transition(StatusAnonymous, nil, apperr.Display(err))
		service.notifier.Error("Login failed. Please check your credentials.")
		return err
	}

	if err := service.creds.Save(response.Token); err != nil {
		service.transition(StatusAnonymous, nil, apperr.Display(err))
		return err
	}

	service.transition(StatusAuthenticated, &response.Admin, "")
	service.notifier.Success("Successfully logged in!")

	service.logger.Info("session_established", slog.String("admin_id", response.Admin.ID))
	return nil
}

// Verify validates a persisted credential at startup.
//
// A missing credential stays anonymous without touching the network. A
// token whose expiry claim has already passed is discarded immediately —
// the remote verification would be guaranteed to fail. Otherwise the token
// is sent to /auth/verify; failure discards the stale credential.
func (service *Service) Verify(ctx context.Context) error {
	token, ok := service.creds.Token()
	if !ok {
		service.transition(StatusAnonymous, nil, "")
		return apperr.Unauthorized("No stored credential")
	}

	if expiry, known := sec.TokenExpiry(token); known && time.Now().After(expiry) {
		_ = service.creds.Clear()
		service.transition(StatusAnonymous, nil, "")
		service.notifier.Error("Session expired. Please login again.")
		return apperr.Unauthorized("Stored credential has expired")
	}

	service.transition(StatusAuthenticating, nil, "")

	response := &verifyResponse{}
	if err := service.client.Get(ctx, "/auth/verify", response); err != nil {
		// On 401 the client has already dropped the credential; for any
		// other failure the stale token is discarded here.
		_ = service.creds.Clear()
		service.transition(StatusAnonymous, nil, apperr.Display(err))
		return err
	}

	service.transition(StatusAuthenticated, &response.Admin, "")
	return nil
}

// Logout discards the credential synchronously and returns to anonymous.
func (service *Service) Logout() {
	_ = service.creds.Clear()
	service.transition(StatusAnonymous, nil, "")
	service.logger.Info("session_terminated")
}

// # 401 Interception

// handleUnauthorized is fired by the HTTP client after any 401 response has
// cleared the stored credential. Only an authenticated session is torn
// down; login and verify flows own their failure handling, and repeated
// concurrent 401s find the session already anonymous and do nothing — the
// teardown happens exactly once.
func (service *Service) handleUnauthorized() {
	service.mu.Lock()
	if service.status != StatusAuthenticated {
		service.mu.Unlock()
		return
	}
	service.status = StatusAnonymous
	service.admin = nil
	service.lastErr = "Session expired. Please login again."
	service.mu.Unlock()

	service.notifier.Error("Session expired. Please login again.")
	service.logger.Warn("session_invalidated_by_401")
}

// # Reading

// Snapshot returns the current session state.
func (service *Service) Snapshot() Snapshot {
	service.mu.Lock()
	defer service.mu.Unlock()

	var admin *Admin
	if service.admin != nil {
		copied := *service.admin
		admin = &copied
	}

	return Snapshot{
		Status: service.status,
		Admin:  admin,
		Err:    service.lastErr,
	}
}

func (service *Service) transition(status Status, admin *Admin, errMessage string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.status = status
	service.admin = admin
	service.lastErr = errMessage
}
