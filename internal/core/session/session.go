// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package session implements the administrator session lifecycle.

The session is a small state machine:

	anonymous --login--> authenticating --success--> authenticated
	authenticating --failure--> anonymous
	authenticated --logout / verify failure / 401--> anonymous

There is exactly one session per process. The bearer credential is persisted
through [credential.Store] only on success; logout discards it synchronously,
before anything else happens. The HTTP client's unauthorized hook routes
into [Service.handleUnauthorized], which tears the session down exactly once
even when several in-flight calls fail with 401 concurrently.
*/
package session

// Status is the session lifecycle state.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
)

// Admin is the authenticated administrator's identity as returned by the
// platform API. The bearer credential is held separately, in the
// credential store.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Snapshot is an immutable view of the session slice.
type Snapshot struct {
	Status Status
	Admin  *Admin
	Err    string
}
