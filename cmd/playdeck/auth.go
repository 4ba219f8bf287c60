// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// loginCommand exchanges an email/password pair for a persisted session token.
func (application *app) loginCommand() *cobra.Command {
	var email, password string

	command := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the platform admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			snapshot := application.session.Snapshot()
			if snapshot.Admin != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", snapshot.Admin.Name, snapshot.Admin.Email)
			}
			return nil
		},
	}

	command.Flags().StringVar(&email, "email", "", "Administrator email")
	command.Flags().StringVar(&password, "password", "", "Administrator password")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")

	return command
}

// logoutCommand discards the persisted session token.
func (application *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			application.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

// verifyCommand validates the stored credential against the remote API.
func (application *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check whether the stored session credential is still valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.session.Verify(cmd.Context()); err != nil {
				return err
			}

			snapshot := application.session.Snapshot()
			if snapshot.Admin != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Session valid: %s <%s>\n", snapshot.Admin.Name, snapshot.Admin.Email)
			}
			return nil
		},
	}
}
