// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCommand prints the platform-wide aggregate counters.
func (application *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform-wide aggregate counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.dashboard.FetchStats(cmd.Context()); err != nil {
				return err
			}

			snapshot := application.dashboard.State()
			if snapshot.Stats == nil {
				return fmt.Errorf("no stats loaded")
			}

			stats := snapshot.Stats
			table(cmd.OutOrStdout(), func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "Total users\t%d\n", stats.TotalUsers)
				fmt.Fprintf(w, "Total posts\t%d\n", stats.TotalPosts)
				fmt.Fprintf(w, "Open reports\t%d\n", stats.TotalReports)
				fmt.Fprintf(w, "New users this month\t%d\n", stats.NewUsersThisMonth)
				fmt.Fprintf(w, "New posts this month\t%d\n", stats.NewPostsThisMonth)
			})
			return nil
		},
	}
}
