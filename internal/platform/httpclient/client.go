// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package httpclient is the single outbound adapter for the platform admin API.

Every request the console makes goes through [Client.do]:

  - The bearer credential is attached when the [TokenSource] holds one.
  - A fixed per-call timeout applies; there are no retries and no backoff —
    one failed call is one rejected operation.
  - Any 401 response clears the stored credential and fires the registered
    unauthorized hook before the call is rejected.
  - Other failures propagate to the caller: API error envelopes are decoded
    into [apperr.AppError] values, transport errors are wrapped as
    NETWORK_ERROR.
*/
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
)

// maxBodyBytes caps how much of a response body is read when decoding.
const maxBodyBytes = 4 * 1024 * 1024 // 4 MiB

// TokenSource supplies and invalidates the persisted bearer credential.
//
// [credential.Store] is the production implementation.
type TokenSource interface {
	// Token returns the credential and whether one is present.
	Token() (string, bool)
	// Clear removes the credential. Must be idempotent.
	Clear() error
}

// Client performs JSON request/response round-trips against one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

// New constructs a Client with a fixed per-call timeout.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// SetUnauthorizedHook registers the callback fired after a 401 response has
// cleared the credential. The session layer uses it to force the console
// back to the login state; it is responsible for being safe under multiple
// concurrent invocations.
func (client *Client) SetUnauthorizedHook(hook func()) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.onUnauthorized = hook
}

// # Request Methods

// Get issues a GET request and decodes the response body into out.
func (client *Client) Get(ctx context.Context, path string, out any) error {
	return client.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (client *Client) Post(ctx context.Context, path string, body, out any) error {
	return client.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (client *Client) Patch(ctx context.Context, path string, body, out any) error {
	return client.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request. Response bodies are discarded.
func (client *Client) Delete(ctx context.Context, path string) error {
	return client.do(ctx, http.MethodDelete, path, nil, nil)
}

// # Round-Trip Core

func (client *Client) do(ctx context.Context, method, path string, body, out any) error {

	// 1. Encode the request body, if any
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("httpclient: marshaling request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("httpclient: creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	// 2. Attach the bearer credential when one is stored
	if token, ok := client.tokens.Token(); ok {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	// 3. Execute. Transport failures (refused, DNS, timeout) never reach
	// the status-code path and are surfaced as NETWORK_ERROR.
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Debug("request_transport_failure",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return apperr.Network(err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return apperr.Network(err)
	}

	// 4. Global 401 interception: drop the credential, then notify the
	// session layer. Clear is idempotent, so concurrent 401s cannot
	// double-remove, and the hook owns its own once-semantics.
	if response.StatusCode == http.StatusUnauthorized {
		_ = client.tokens.Clear()
		client.fireUnauthorized()
		return apperr.Unauthorized("Session expired. Please login again.")
	}

	// 5. Non-2xx: reconstruct the API's error envelope
	if response.StatusCode < 200 || response.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.Unmarshal(payload, &envelope)
		return apperr.FromResponse(response.StatusCode, envelope.Code, envelope.Error)
	}

	// 6. Decode the success payload when the caller expects one
	if out != nil && len(payload) > 0 && response.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("httpclient: decoding response (HTTP %d): %w", response.StatusCode, err)
		}
	}

	return nil
}

func (client *Client) fireUnauthorized() {
	client.mu.Lock()
	hook := client.onUnauthorized
	client.mu.Unlock()

	if hook != nil {
		hook()
	}
}
