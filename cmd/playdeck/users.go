// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usersCommand groups the member directory subcommands.
func (application *app) usersCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "users",
		Short: "Inspect and moderate platform members",
	}

	command.AddCommand(
		application.usersListCommand(),
		application.usersShowCommand(),
		application.usersPostsCommand(),
		application.usersDeleteCommand(),
	)
	return command
}

func (application *app) usersListCommand() *cobra.Command {
	var page, limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "List members, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.users.FetchPage(cmd.Context(), page, limit); err != nil {
				return err
			}

			snapshot := application.users.State()
			printUserRows(cmd.OutOrStdout(), snapshot.Items)
			printMeta(cmd.OutOrStdout(), snapshot.Pagination)
			return nil
		},
	}

	command.Flags().IntVar(&page, "page", 1, "Page number (1-indexed)")
	command.Flags().IntVar(&limit, "limit", application.cfg.PageLimit, "Items per page")
	return command
}

func (application *app) usersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one member's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.users.FetchProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			snapshot := application.users.State()
			if snapshot.Selected == nil {
				return fmt.Errorf("user %q not loaded", args[0])
			}
			printUserDetail(cmd.OutOrStdout(), *snapshot.Selected)
			return nil
		},
	}
}

func (application *app) usersPostsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "posts <id>",
		Short: "List every post authored by a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.posts.FetchByAuthor(cmd.Context(), args[0]); err != nil {
				return err
			}
			printPostRows(cmd.OutOrStdout(), application.posts.AuthorPosts())
			return nil
		},
	}
}

func (application *app) usersDeleteCommand() *cobra.Command {
	var yes bool

	command := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete user %q without --yes", args[0])
			}
			return application.users.Delete(cmd.Context(), args[0])
		},
	}

	command.Flags().BoolVar(&yes, "yes", false, "Confirm the irreversible deletion")
	return command
}
