// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package user_test

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

	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/internal/mockapi"
	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/config"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/credential"
	"github.com/minhvo-dev/playdeck/internal/platform/httpclient"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newService wires a user service against a seeded mock API with a valid
// stored credential, mirroring the production composition in cmd/playdeck.
func newService(t *testing.T) (*user.Service, *notify.Notifier) {
	t.Helper()

	store, err := mockapi.NewSeededStore()
	require.NoError(t, err)

	tokens := sec.NewTokenService("test-secret", constants.AuthIssuer)
	server := mockapi.NewServer(context.Background(), &config.Config{MockPort: "0"}, testLogger(), store, tokens)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	creds := credential.NewStore(filepath.Join(t.TempDir(), "token"))
	token, err := tokens.GenerateAccessToken("admin-1", mockapi.DemoAdminEmail, "Demo Administrator", time.Hour)
	require.NoError(t, err)
	require.NoError(t, creds.Save(token))

	client := httpclient.New(ts.URL+"/admin", 5*time.Second, creds, testLogger())
	notifier := notify.New(nil)

	return user.NewService(user.NewAPIStore(client), notifier, testLogger()), notifier
}

/*
TestService_FetchPage loads the first page into the slice with its
pagination block reflected verbatim.
*/
func TestService_FetchPage(t *testing.T) {
	service, _ := newService(t)

	require.NoError(t, service.FetchPage(context.Background(), 1, 10))

	snapshot := service.State()
	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.Err)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "John Doe", snapshot.Items[0].Name)
	assert.Equal(t, 2, snapshot.Pagination.Total)
	assert.Equal(t, 1, snapshot.Pagination.TotalPages)
}

/*
TestService_FetchProfile selects the detail entity; an empty identifier
clears the selection without a request.
*/
func TestService_FetchProfile(t *testing.T) {
	service, _ := newService(t)

	require.NoError(t, service.FetchProfile(context.Background(), "2"))
	selected := service.State().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "Jane Smith", selected.Name)

	require.NoError(t, service.FetchProfile(context.Background(), ""))
	assert.Nil(t, service.State().Selected)
}

/*
TestService_FetchProfile_NotFound surfaces the API error in slice state.
*/
func TestService_FetchProfile_NotFound(t *testing.T) {
	service, _ := newService(t)

	err := service.FetchProfile(context.Background(), "999")
	require.Error(t, err)
	assert.Equal(t, "User not found", service.State().Err)
}

/*
TestService_Delete removes the user remotely first, then filters the slice
and pushes a success toast.
*/
func TestService_Delete(t *testing.T) {
	service, notifier := newService(t)
	require.NoError(t, service.FetchPage(context.Background(), 1, 10))

	require.NoError(t, service.Delete(context.Background(), "1"))

	snapshot := service.State()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "2", snapshot.Items[0].ID)

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
}

/*
TestService_Delete_Failure leaves the slice unchanged and pushes an error
toast when the API rejects the deletion.
*/
func TestService_Delete_Failure(t *testing.T) {
	service, notifier := newService(t)
	require.NoError(t, service.FetchPage(context.Background(), 1, 10))

	err := service.Delete(context.Background(), "999")
	require.Error(t, err)

	assert.Len(t, service.State().Items, 2)

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.SeverityError, active[0].Severity)
}

/*
TestService_Delete_ClearsSelected drops the detail selection when it is the
deleted user.
*/
func TestService_Delete_ClearsSelected(t *testing.T) {
	service, _ := newService(t)
	require.NoError(t, service.FetchPage(context.Background(), 1, 10))
	require.NoError(t, service.FetchProfile(context.Background(), "1"))

	require.NoError(t, service.Delete(context.Background(), "1"))
	assert.Nil(t, service.State().Selected)
}
