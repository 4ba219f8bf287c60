// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// postsCommand groups the content moderation subcommands.
func (application *app) postsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "posts",
		Short: "Inspect and moderate platform posts",
	}

	command.AddCommand(
		application.postsListCommand(),
		application.postsShowCommand(),
		application.postsHideCommand(true),
		application.postsHideCommand(false),
		application.postsDeleteCommand(),
	)
	return command
}

func (application *app) postsListCommand() *cobra.Command {
	var page, limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.posts.FetchPage(cmd.Context(), page, limit); err != nil {
				return err
			}

			snapshot := application.posts.State()
			printPostRows(cmd.OutOrStdout(), snapshot.Items)
			printMeta(cmd.OutOrStdout(), snapshot.Pagination)
			return nil
		},
	}

	command.Flags().IntVar(&page, "page", 1, "Page number (1-indexed)")
	command.Flags().IntVar(&limit, "limit", application.cfg.PageLimit, "Items per page")
	return command
}

func (application *app) postsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one post with its comment thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.posts.FetchDetail(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := application.posts.FetchComments(cmd.Context(), args[0]); err != nil {
				return err
			}

			snapshot := application.posts.State()
			if snapshot.Selected == nil {
				return fmt.Errorf("post %q not loaded", args[0])
			}
			printPostDetail(cmd.OutOrStdout(), *snapshot.Selected)

			comments := application.posts.CommentsState()
			if len(comments) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nComments (%d):\n", len(comments))
				printCommentRows(cmd.OutOrStdout(), comments)
			}
			return nil
		},
	}
}

// postsHideCommand builds both the hide and unhide variants.
func (application *app) postsHideCommand(hidden bool) *cobra.Command {
	use, short := "hide <id>", "Hide a post from the platform feed"
	if !hidden {
		use, short = "unhide <id>", "Restore a hidden post to the platform feed"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.posts.SetVisibility(cmd.Context(), args[0], hidden)
		},
	}
}

func (application *app) postsDeleteCommand() *cobra.Command {
	var yes bool

	command := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently remove a post and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete post %q without --yes", args[0])
			}
			return application.posts.Delete(cmd.Context(), args[0])
		},
	}

	command.Flags().BoolVar(&yes, "yes", false, "Confirm the irreversible deletion")
	return command
}

// commentsCommand groups comment moderation, addressed by comment identifier.
func (application *app) commentsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "comments",
		Short: "Moderate individual comments",
	}

	command.AddCommand(
		application.commentsHideCommand(true),
		application.commentsHideCommand(false),
	)
	return command
}

func (application *app) commentsHideCommand(hidden bool) *cobra.Command {
	use, short := "hide <id>", "Hide a comment from its thread"
	if !hidden {
		use, short = "unhide <id>", "Restore a hidden comment to its thread"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.posts.SetCommentVisibility(cmd.Context(), args[0], hidden)
		},
	}
}
