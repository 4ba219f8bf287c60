// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/report"
	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/internal/mockapi"
	"github.com/minhvo-dev/playdeck/internal/platform/config"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// harness bundles a seeded mock API with a pre-issued admin token.
type harness struct {
	url   string
	token string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store, err := mockapi.NewSeededStore()
	require.NoError(t, err)

	tokens := sec.NewTokenService("test-secret", constants.AuthIssuer)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	server := mockapi.NewServer(context.Background(), &config.Config{MockPort: "0"}, log, store, tokens)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	token, err := tokens.GenerateAccessToken("admin-1", mockapi.DemoAdminEmail, "Demo Administrator", constants.AccessTokenTTL)
	require.NoError(t, err)

	return &harness{url: ts.URL, token: token}
}

// do issues an authenticated request and decodes the JSON response into out.
func (h *harness) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(method, h.url+path, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		request.Header.Set("Authorization", "Bearer "+h.token)
	}

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	if out != nil {
		payload, err := io.ReadAll(response.Body)
		require.NoError(t, err)
		if len(payload) > 0 {
			require.NoError(t, json.Unmarshal(payload, out))
		}
	}
	return response.StatusCode
}

/*
TestHealth is reachable without authentication.
*/
func TestHealth(t *testing.T) {
	h := newHarness(t)
	h.token = ""

	var body map[string]string
	status := h.do(t, http.MethodGet, "/health", nil, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

/*
TestLogin exchanges the demo credentials for a token and admin identity.
*/
func TestLogin(t *testing.T) {
	h := newHarness(t)
	h.token = ""

	var body struct {
		Admin struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"admin"`
		Token string `json:"token"`
	}
	status := h.do(t, http.MethodPost, "/admin/auth/login",
		map[string]string{"email": mockapi.DemoAdminEmail, "password": mockapi.DemoAdminPassword}, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, mockapi.DemoAdminEmail, body.Admin.Email)
}

/*
TestLogin_WrongPassword rejects bad credentials with the error envelope.
*/
func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t)
	h.token = ""

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	status := h.do(t, http.MethodPost, "/admin/auth/login",
		map[string]string{"email": mockapi.DemoAdminEmail, "password": "nope"}, &body)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.NotEmpty(t, body.Error)
}

/*
TestVerify confirms a valid token and rejects an absent one.
*/
func TestVerify(t *testing.T) {
	h := newHarness(t)

	var body struct {
		Admin struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	status := h.do(t, http.MethodGet, "/admin/auth/verify", nil, &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, mockapi.DemoAdminEmail, body.Admin.Email)

	h.token = ""
	status = h.do(t, http.MethodGet, "/admin/auth/verify", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

/*
TestProtectedRoutes_RequireAuth blocks anonymous access to every domain group.
*/
func TestProtectedRoutes_RequireAuth(t *testing.T) {
	h := newHarness(t)
	h.token = ""

	for _, path := range []string{
		"/admin/dashboard/stats",
		"/admin/users",
		"/admin/posts",
		"/admin/reports",
	} {
		status := h.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}

/*
TestListUsers returns the seeded members in the flat list envelope.
*/
func TestListUsers(t *testing.T) {
	h := newHarness(t)

	var page pagination.Page[user.User]
	status := h.do(t, http.MethodGet, "/admin/users?page=1&limit=10", nil, &page)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "John Doe", page.Data[0].Name)

	// Past the last page: empty data, same totals.
	status = h.do(t, http.MethodGet, "/admin/users?page=2&limit=10", nil, &page)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, page.Data)
	assert.Equal(t, 2, page.Total)
}

/*
TestGetUser_NotFound maps unknown identifiers to 404 NOT_FOUND.
*/
func TestGetUser_NotFound(t *testing.T) {
	h := newHarness(t)

	var body struct {
		Code string `json:"code"`
	}
	status := h.do(t, http.MethodGet, "/admin/users/999", nil, &body)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestListPosts_NewestFirst orders the feed by creation time, descending.
*/
func TestListPosts_NewestFirst(t *testing.T) {
	h := newHarness(t)

	var page pagination.Page[post.Post]
	status := h.do(t, http.MethodGet, "/admin/posts", nil, &page)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "2", page.Data[0].ID)
	assert.Equal(t, "1", page.Data[1].ID)
}

/*
TestPostVisibility toggles the hidden flag and returns the updated post.
*/
func TestPostVisibility(t *testing.T) {
	h := newHarness(t)

	var updated post.Post
	status := h.do(t, http.MethodPatch, "/admin/posts/1/visibility",
		map[string]bool{"hidden": true}, &updated)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, updated.Hidden)
	assert.Equal(t, "1", updated.ID)
}

/*
TestDeletePost removes the post together with its comment thread.
*/
func TestDeletePost(t *testing.T) {
	h := newHarness(t)

	status := h.do(t, http.MethodDelete, "/admin/posts/1", nil, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status = h.do(t, http.MethodGet, "/admin/posts/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = h.do(t, http.MethodGet, "/admin/posts/1/comments", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

/*
TestUserPosts lists the posts authored by one member.
*/
func TestUserPosts(t *testing.T) {
	h := newHarness(t)

	var posts []post.Post
	status := h.do(t, http.MethodGet, "/admin/users/1/posts", nil, &posts)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].User.ID)
}

/*
TestCommentVisibility toggles a comment's hidden flag by comment identifier.
*/
func TestCommentVisibility(t *testing.T) {
	h := newHarness(t)

	var updated post.Comment
	status := h.do(t, http.MethodPatch, "/admin/comments/1/visibility",
		map[string]bool{"hidden": true}, &updated)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, updated.Hidden)
}

/*
TestListReports_StatusFilter narrows the page to one review state and rejects
unknown states.
*/
func TestListReports_StatusFilter(t *testing.T) {
	h := newHarness(t)

	var page pagination.Page[report.Report]
	status := h.do(t, http.MethodGet, "/admin/reports", nil, &page)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, page.Total)

	status = h.do(t, http.MethodGet, "/admin/reports?status=pending", nil, &page)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, page.Data, 1)
	assert.Equal(t, report.StatusPending, page.Data[0].Status)

	status = h.do(t, http.MethodGet, "/admin/reports?status=archived", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

/*
TestReportStatusTransition moves a report between review states and validates
the requested state.
*/
func TestReportStatusTransition(t *testing.T) {
	h := newHarness(t)

	var updated report.Report
	status := h.do(t, http.MethodPatch, "/admin/reports/1/status",
		map[string]string{"status": "reviewed"}, &updated)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, report.StatusReviewed, updated.Status)

	var body struct {
		Code string `json:"code"`
	}
	status = h.do(t, http.MethodPatch, "/admin/reports/1/status",
		map[string]string{"status": "archived"}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

/*
TestDeleteUser removes a member and decrements the stats counter.
*/
func TestDeleteUser(t *testing.T) {
	h := newHarness(t)

	var before struct {
		TotalUsers int `json:"totalUsers"`
	}
	h.do(t, http.MethodGet, "/admin/dashboard/stats", nil, &before)

	status := h.do(t, http.MethodDelete, "/admin/users/2", nil, nil)
	assert.Equal(t, http.StatusNoContent, status)

	var after struct {
		TotalUsers int `json:"totalUsers"`
	}
	h.do(t, http.MethodGet, "/admin/dashboard/stats", nil, &after)
	assert.Equal(t, before.TotalUsers-1, after.TotalUsers)

	status = h.do(t, http.MethodDelete, "/admin/users/2", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

/*
TestDashboardStats returns the seeded aggregate counters.
*/
func TestDashboardStats(t *testing.T) {
	h := newHarness(t)

	var stats struct {
		TotalUsers        int `json:"totalUsers"`
		TotalPosts        int `json:"totalPosts"`
		TotalReports      int `json:"totalReports"`
		NewUsersThisMonth int `json:"newUsersThisMonth"`
		NewPostsThisMonth int `json:"newPostsThisMonth"`
	}
	status := h.do(t, http.MethodGet, "/admin/dashboard/stats", nil, &stats)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 12847, stats.TotalUsers)
	assert.Equal(t, 3294, stats.TotalPosts)
	assert.Equal(t, 23, stats.TotalReports)
}
