// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhvo-dev/playdeck/internal/core/report"
)

// reportsCommand groups the abuse report review subcommands.
func (application *app) reportsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "reports",
		Short: "Review and resolve abuse reports",
	}

	command.AddCommand(
		application.reportsListCommand(),
		application.reportsStatusCommand(),
	)
	return command
}

func (application *app) reportsListCommand() *cobra.Command {
	var page, limit int
	var status string

	command := &cobra.Command{
		Use:   "list",
		Short: "List abuse reports, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := application.reports.FetchPage(cmd.Context(), page, limit, report.Status(status))
			if err != nil {
				return err
			}

			snapshot := application.reports.State()
			printReportRows(cmd.OutOrStdout(), snapshot.Items)
			printMeta(cmd.OutOrStdout(), snapshot.Pagination)
			return nil
		},
	}

	command.Flags().IntVar(&page, "page", 1, "Page number (1-indexed)")
	command.Flags().IntVar(&limit, "limit", application.cfg.PageLimit, "Items per page")
	command.Flags().StringVar(&status, "status", "",
		"Filter by review state ("+strings.Join(report.Statuses, ", ")+")")
	return command
}

func (application *app) reportsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <" + strings.Join(report.Statuses, "|") + ">",
		Short: "Transition a report between review states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.reports.SetStatus(cmd.Context(), args[0], report.Status(args[1]))
		},
	}
}
