// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package credential persists the administrator's bearer token between runs.

The token is an opaque string owned by the remote API. It lives in a single
file at a fixed, injectable location. The store is an explicit dependency,
constructed in main and passed to the client and session, so tests can point
each run at a throwaway file.
*/
package credential

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store reads and writes the persisted bearer credential.
//
// # Concurrency
//
// All methods are safe for concurrent use. Clear is idempotent: clearing an
// already-absent credential is a no-op, which is what makes concurrent 401
// handling race-free at this layer.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the persisted credential and whether one is present.
func (store *Store) Token() (string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	raw, err := os.ReadFile(store.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	return token, true
}

// Save persists the credential, creating parent directories as needed.
// The file is written with owner-only permissions.
func (store *Store) Save(token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("credential: cannot create config dir: %w", err)
	}

	if err := os.WriteFile(store.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("credential: cannot write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted credential. Clearing a missing credential is
// a no-op, never an error.
func (store *Store) Clear() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	err := os.Remove(store.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("credential: cannot remove token file: %w", err)
	}
	return nil
}
