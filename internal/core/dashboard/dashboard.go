// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

// Package dashboard manages the aggregate counters shown on the console's
// landing view.
package dashboard

// Stats holds the platform-wide aggregate counters.
type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalPosts        int `json:"totalPosts"`
	TotalReports      int `json:"totalReports"`
	NewUsersThisMonth int `json:"newUsersThisMonth"`
	NewPostsThisMonth int `json:"newPostsThisMonth"`
}
