// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package session_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo-dev/playdeck/internal/core/session"
	"github.com/minhvo-dev/playdeck/internal/mockapi"
	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/platform/config"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/credential"
	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// harness is the full client-side composition against a seeded mock API.
type harness struct {
	service  *session.Service
	client   *httpclient.Client
	creds    *credential.Store
	notifier *notify.Notifier
	tokens   *sec.TokenService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store, err := mockapi.NewSeededStore()
	require.NoError(t, err)

	tokens := sec.NewTokenService("test-secret", constants.AuthIssuer)
	server := mockapi.NewServer(context.Background(), &config.Config{MockPort: "0"}, testLogger(), store, tokens)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	creds := credential.NewStore(filepath.Join(t.TempDir(), "token"))
	notifier := notify.New(nil)
	client := httpclient.New(ts.URL+"/admin", 5*time.Second, creds, testLogger())

	return &harness{
		service:  session.NewService(client, creds, notifier, testLogger()),
		client:   client,
		creds:    creds,
		notifier: notifier,
		tokens:   tokens,
	}
}

/*
TestService_Login authenticates, persists the credential, and transitions to
authenticated.
*/
func TestService_Login(t *testing.T) {
	h := newHarness(t)

	err := h.service.Login(context.Background(), mockapi.DemoAdminEmail, mockapi.DemoAdminPassword)
	require.NoError(t, err)

	snapshot := h.service.Snapshot()
	assert.Equal(t, session.StatusAuthenticated, snapshot.Status)
	require.NotNil(t, snapshot.Admin)
	assert.Equal(t, mockapi.DemoAdminEmail, snapshot.Admin.Email)

	token, ok := h.creds.Token()
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

/*
TestService_Login_BadCredentials stays anonymous and stores nothing.
*/
func TestService_Login_BadCredentials(t *testing.T) {
	h := newHarness(t)

	err := h.service.Login(context.Background(), mockapi.DemoAdminEmail, "wrong-password")
	require.Error(t, err)

	snapshot := h.service.Snapshot()
	assert.Equal(t, session.StatusAnonymous, snapshot.Status)
	assert.Nil(t, snapshot.Admin)
	assert.NotEmpty(t, snapshot.Err)

	_, ok := h.creds.Token()
	assert.False(t, ok)
}

/*
TestService_Login_Validation rejects malformed input locally, without a
request or a state transition.
*/
func TestService_Login_Validation(t *testing.T) {
	h := newHarness(t)

	err := h.service.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	err = h.service.Login(context.Background(), mockapi.DemoAdminEmail, "")
	require.Error(t, err)

	assert.Equal(t, session.StatusAnonymous, h.service.Snapshot().Status)
}

/*
TestService_Verify validates a persisted credential at startup.
*/
func TestService_Verify(t *testing.T) {
	h := newHarness(t)

	token, err := h.tokens.GenerateAccessToken("admin-1", mockapi.DemoAdminEmail, "Demo Administrator", time.Hour)
	require.NoError(t, err)
	require.NoError(t, h.creds.Save(token))

	require.NoError(t, h.service.Verify(context.Background()))

	snapshot := h.service.Snapshot()
	assert.Equal(t, session.StatusAuthenticated, snapshot.Status)
	require.NotNil(t, snapshot.Admin)
	assert.Equal(t, "admin-1", snapshot.Admin.ID)
}

/*
TestService_Verify_NoCredential stays anonymous without touching the network.
*/
func TestService_Verify_NoCredential(t *testing.T) {
	h := newHarness(t)

	err := h.service.Verify(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
	assert.Equal(t, session.StatusAnonymous, h.service.Snapshot().Status)
}

/*
TestService_Verify_ExpiredToken discards a locally expired credential before
any request. The error says "expired", not "network", proving the doomed
round-trip was skipped.
*/
func TestService_Verify_ExpiredToken(t *testing.T) {
	h := newHarness(t)

	expired, err := h.tokens.GenerateAccessToken("admin-1", mockapi.DemoAdminEmail, "Demo Administrator", -time.Minute)
	require.NoError(t, err)
	require.NoError(t, h.creds.Save(expired))

	err = h.service.Verify(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")

	_, ok := h.creds.Token()
	assert.False(t, ok, "expired credential must be discarded")
	assert.Equal(t, session.StatusAnonymous, h.service.Snapshot().Status)
}

/*
TestService_Verify_RejectedToken drops a credential the server refuses.
*/
func TestService_Verify_RejectedToken(t *testing.T) {
	h := newHarness(t)

	// Unexpired but signed with the wrong secret: the local expiry peek
	// passes, the server rejects.
	forged := sec.NewTokenService("other-secret", constants.AuthIssuer)
	token, err := forged.GenerateAccessToken("admin-1", mockapi.DemoAdminEmail, "X", time.Hour)
	require.NoError(t, err)
	require.NoError(t, h.creds.Save(token))

	err = h.service.Verify(context.Background())
	require.Error(t, err)

	_, ok := h.creds.Token()
	assert.False(t, ok)
	assert.Equal(t, session.StatusAnonymous, h.service.Snapshot().Status)
}

/*
TestService_Logout clears the credential synchronously and returns to
anonymous.
*/
func TestService_Logout(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.service.Login(context.Background(), mockapi.DemoAdminEmail, mockapi.DemoAdminPassword))

	h.service.Logout()

	assert.Equal(t, session.StatusAnonymous, h.service.Snapshot().Status)
	_, ok := h.creds.Token()
	assert.False(t, ok)
}

/*
TestService_UnauthorizedTeardown_Once verifies the mid-session 401 path: the
first rejected call tears the session down and notifies once; subsequent
401s find the session already anonymous and stay silent.
*/
func TestService_UnauthorizedTeardown_Once(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.service.Login(context.Background(), mockapi.DemoAdminEmail, mockapi.DemoAdminPassword))

	// Simulate server-side invalidation: the stored credential is garbage now.
	require.NoError(t, h.creds.Save("garbage-token"))

	err := h.client.Get(context.Background(), "/users", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))

	snapshot := h.service.Snapshot()
	assert.Equal(t, session.StatusAnonymous, snapshot.Status)
	assert.NotEmpty(t, snapshot.Err)

	errorToasts := func() int {
		count := 0
		for _, item := range h.notifier.Active() {
			if item.Severity == notify.SeverityError {
				count++
			}
		}
		return count
	}
	assert.Equal(t, 1, errorToasts())

	// A second 401 (now simply unauthenticated) must not toast again.
	err = h.client.Get(context.Background(), "/users", nil)
	require.Error(t, err)
	assert.Equal(t, 1, errorToasts())
}
