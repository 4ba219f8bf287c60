// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"fmt"
	"time"

	"github.com/minhvo-dev/playdeck/internal/core/dashboard"
	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/report"
	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
)

// Demo administrator credentials accepted by the seeded store.
const (
	DemoAdminEmail    = "admin@playdeck.io"
	DemoAdminPassword = "admin123"
	demoAdminName     = "Demo Administrator"
)

// NewSeededStore builds a [Store] pre-populated with demo data: one
// administrator, two members, two posts with a short comment thread, and a
// pair of reports in different review states.
func NewSeededStore() (*Store, error) {
	passwordHash, err := sec.HashPassword(DemoAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("mockapi: seed admin account: %w", err)
	}

	users := []user.User{
		{
			ID:            "1",
			Name:          "John Doe",
			Username:      "johndoe",
			Email:         "john@example.com",
			Bio:           "Full-stack developer passionate about distributed systems",
			Avatar:        "https://images.playdeck.io/avatars/johndoe.jpg",
			XP:            2500,
			XPMax:         3000,
			Challenges:    45,
			LinkedIn:      "https://linkedin.com/in/johndoe",
			GitHub:        "https://github.com/johndoe",
			EmailVerified: true,
			CreatedAt:     date("2024-01-15T10:30:00Z"),
			UpdatedAt:     date("2024-12-15T14:20:00Z"),
		},
		{
			ID:            "2",
			Name:          "Jane Smith",
			Username:      "janesmith",
			Email:         "jane@example.com",
			Bio:           "UI/UX Designer and Frontend Developer",
			Avatar:        "https://images.playdeck.io/avatars/janesmith.jpg",
			XP:            1800,
			XPMax:         2000,
			Challenges:    32,
			Twitter:       "https://twitter.com/janesmith",
			EmailVerified: true,
			CreatedAt:     date("2024-02-20T09:15:00Z"),
			UpdatedAt:     date("2024-12-14T16:45:00Z"),
		},
	}

	posts := []post.Post{
		{
			ID:        "1",
			User:      users[0],
			Title:     "Best practices for structuring large codebases",
			Text:      "Here are some essential practices every developer should follow when a project outgrows a single package...",
			Type:      post.TypeGeneral,
			Image:     "https://images.playdeck.io/posts/structure.jpg",
			Likes:     []string{"user1", "user2", "user3"},
			Hidden:    false,
			CreatedAt: date("2024-12-10T14:30:00Z"),
			UpdatedAt: date("2024-12-10T14:30:00Z"),
		},
		{
			ID:        "2",
			User:      users[1],
			Title:     "How to handle async operations cleanly?",
			Text:      "I am struggling with managing asynchronous operations in my app. What are the best approaches?",
			Type:      post.TypeQuestion,
			Likes:     []string{"user1", "user4"},
			Hidden:    false,
			CreatedAt: date("2024-12-12T09:45:00Z"),
			UpdatedAt: date("2024-12-12T09:45:00Z"),
		},
	}

	comments := []post.Comment{
		{
			ID:        "1",
			PostID:    "1",
			User:      users[1],
			Text:      "Great article! These tips are really helpful for keeping things maintainable.",
			Hidden:    false,
			CreatedAt: date("2024-12-10T15:30:00Z"),
			UpdatedAt: date("2024-12-10T15:30:00Z"),
		},
		{
			ID:        "2",
			PostID:    "1",
			User:      users[0],
			Text:      "Thanks for the feedback! I hope this helps other developers too.",
			Hidden:    false,
			CreatedAt: date("2024-12-10T16:00:00Z"),
			UpdatedAt: date("2024-12-10T16:00:00Z"),
		},
	}

	// Reported targets are detached snapshots, like the production API's
	// denormalized report documents.
	reportedPost := posts[0]
	reportedComment := comments[0]

	reports := []report.Report{
		{
			ID:        "1",
			Reporter:  users[1],
			Post:      &reportedPost,
			Reason:    "Spam content",
			Status:    report.StatusPending,
			Message:   "This post contains spam links and promotional content",
			CreatedAt: date("2024-12-13T11:20:00Z"),
			UpdatedAt: date("2024-12-13T11:20:00Z"),
		},
		{
			ID:        "2",
			Reporter:  users[0],
			Comment:   &reportedComment,
			Reason:    "Inappropriate language",
			Status:    report.StatusReviewed,
			Message:   "Comment contains offensive language",
			CreatedAt: date("2024-12-12T16:45:00Z"),
			UpdatedAt: date("2024-12-13T10:30:00Z"),
		},
	}

	return &Store{
		admin: adminAccount{
			ID:           "admin-1",
			Email:        DemoAdminEmail,
			Name:         demoAdminName,
			PasswordHash: passwordHash,
		},
		users:    users,
		posts:    posts,
		comments: comments,
		reports:  reports,
		stats: dashboard.Stats{
			TotalUsers:        12847,
			TotalPosts:        3294,
			TotalReports:      23,
			NewUsersThisMonth: 1247,
			NewPostsThisMonth: 456,
		},
	}, nil
}

func date(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}
