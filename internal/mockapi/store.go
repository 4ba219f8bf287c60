// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

/*
Package mockapi is a self-contained, in-process imitation of the platform
admin API.

It serves the exact endpoint surface and wire shapes the console consumes,
backed by seeded in-memory data instead of the production platform. It
exists for demos (`playdeck mock`) and as the httptest fixture for the
client-stack tests: everything the console can do, it can do against this
package with no external services.
*/
package mockapi

import (
	"sort"
	"sync"
	"time"

	"github.com/minhvo-dev/playdeck/internal/core/dashboard"
	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/report"
	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// adminAccount is the single administrator the mock API knows about.
type adminAccount struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// Store holds the seeded entities behind a mutex. All accessors return
// copies; mutations never hand out interior pointers.
type Store struct {
	mu       sync.Mutex
	admin    adminAccount
	users    []user.User
	posts    []post.Post
	comments []post.Comment
	reports  []report.Report
	stats    dashboard.Stats
}

// # Users

// Users returns one page of users.
func (store *Store) Users(params pagination.Params) pagination.Page[user.User] {
	store.mu.Lock()
	defer store.mu.Unlock()
	return paginate(store.users, params)
}

// User returns a single user by identifier.
func (store *Store) User(id string) (*user.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, u := range store.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

// PostsByUser returns every post authored by the given user.
func (store *Store) PostsByUser(userID string) []post.Post {
	store.mu.Lock()
	defer store.mu.Unlock()

	results := []post.Post{}
	for _, p := range store.posts {
		if p.User.ID == userID {
			results = append(results, p)
		}
	}
	return results
}

// DeleteUser removes a user.
func (store *Store) DeleteUser(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i, u := range store.users {
		if u.ID == id {
			store.users = append(store.users[:i], store.users[i+1:]...)
			store.stats.TotalUsers--
			return nil
		}
	}
	return apperr.NotFound("User")
}

// # Posts & Comments

// Posts returns one page of posts, newest first.
func (store *Store) Posts(params pagination.Params) pagination.Page[post.Post] {
	store.mu.Lock()
	defer store.mu.Unlock()

	ordered := make([]post.Post, len(store.posts))
	copy(ordered, store.posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	return paginate(ordered, params)
}

// Post returns a single post by identifier.
func (store *Store) Post(id string) (*post.Post, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, p := range store.posts {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

// CommentsByPost returns every comment attached to the given post.
func (store *Store) CommentsByPost(postID string) []post.Comment {
	store.mu.Lock()
	defer store.mu.Unlock()

	results := []post.Comment{}
	for _, c := range store.comments {
		if c.PostID == postID {
			results = append(results, c)
		}
	}
	return results
}

// SetPostHidden toggles a post's hidden flag and returns the updated copy.
func (store *Store) SetPostHidden(id string, hidden bool) (*post.Post, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.posts {
		if store.posts[i].ID == id {
			store.posts[i].Hidden = hidden
			store.posts[i].UpdatedAt = time.Now().UTC()
			copied := store.posts[i]
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

// DeletePost removes a post together with its comments.
func (store *Store) DeletePost(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i, p := range store.posts {
		if p.ID == id {
			store.posts = append(store.posts[:i], store.posts[i+1:]...)
			store.stats.TotalPosts--

			kept := store.comments[:0]
			for _, c := range store.comments {
				if c.PostID != id {
					kept = append(kept, c)
				}
			}
			store.comments = kept
			return nil
		}
	}
	return apperr.NotFound("Post")
}

// SetCommentHidden toggles a comment's hidden flag and returns the updated copy.
func (store *Store) SetCommentHidden(id string, hidden bool) (*post.Comment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.comments {
		if store.comments[i].ID == id {
			store.comments[i].Hidden = hidden
			store.comments[i].UpdatedAt = time.Now().UTC()
			copied := store.comments[i]
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Comment")
}

// # Reports

// Reports returns one page of reports, optionally filtered by status.
func (store *Store) Reports(params pagination.Params, status report.Status) pagination.Page[report.Report] {
	store.mu.Lock()
	defer store.mu.Unlock()

	filtered := []report.Report{}
	for _, r := range store.reports {
		if status == "" || r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return paginate(filtered, params)
}

// SetReportStatus transitions a report's status and returns the updated copy.
func (store *Store) SetReportStatus(id string, status report.Status) (*report.Report, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.reports {
		if store.reports[i].ID == id {
			store.reports[i].Status = status
			store.reports[i].UpdatedAt = time.Now().UTC()
			copied := store.reports[i]
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Report")
}

// # Dashboard

// Stats returns the aggregate counters.
func (store *Store) Stats() dashboard.Stats {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.stats
}

// Admin returns the seeded administrator account.
func (store *Store) Admin() adminAccount {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.admin
}

// paginate slices one page out of items and wraps it in the list envelope.
func paginate[T any](items []T, params pagination.Params) pagination.Page[T] {
	total := len(items)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return pagination.NewPage(pageItems, params.Page, params.Limit, total)
}
