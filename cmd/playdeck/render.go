// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/minhvo-dev/playdeck/internal/core/post"
	"github.com/minhvo-dev/playdeck/internal/core/report"
	"github.com/minhvo-dev/playdeck/internal/core/user"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// table runs fn against a tabwriter and flushes it.
func table(out io.Writer, fn func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fn(w)
	_ = w.Flush()
}

// printMeta appends the pagination footer under a list table.
func printMeta(out io.Writer, meta pagination.Meta) {
	fmt.Fprintf(out, "\nPage %d/%d — %d total (limit %d)\n",
		meta.Page, meta.TotalPages, meta.Total, meta.Limit)
}

// truncate shortens a string for single-line table cells.
func truncate(value string, max int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if len(value) <= max {
		return value
	}
	return value[:max-1] + "…"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatHidden(hidden bool) string {
	if hidden {
		return "hidden"
	}
	return "visible"
}

// # Entity Renderers

func printUserRows(out io.Writer, users []user.User) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tEMAIL\tXP\tCHALLENGES\tJOINED")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%d\t%s\n",
				u.ID, u.Name, u.Username, u.Email, u.XP, u.XPMax, u.Challenges, formatDate(u.CreatedAt))
		}
	})
}

func printUserDetail(out io.Writer, u user.User) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "ID\t%s\n", u.ID)
		fmt.Fprintf(w, "Name\t%s\n", u.Name)
		fmt.Fprintf(w, "Username\t%s\n", u.Username)
		fmt.Fprintf(w, "Email\t%s (verified: %t)\n", u.Email, u.EmailVerified)
		if u.Bio != "" {
			fmt.Fprintf(w, "Bio\t%s\n", u.Bio)
		}
		fmt.Fprintf(w, "XP\t%d/%d\n", u.XP, u.XPMax)
		fmt.Fprintf(w, "Challenges\t%d\n", u.Challenges)
		if u.LinkedIn != "" {
			fmt.Fprintf(w, "LinkedIn\t%s\n", u.LinkedIn)
		}
		if u.GitHub != "" {
			fmt.Fprintf(w, "GitHub\t%s\n", u.GitHub)
		}
		if u.Twitter != "" {
			fmt.Fprintf(w, "Twitter\t%s\n", u.Twitter)
		}
		fmt.Fprintf(w, "Joined\t%s\n", formatDate(u.CreatedAt))
	})
}

func printPostRows(out io.Writer, posts []post.Post) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tTYPE\tLIKES\tVISIBILITY\tCREATED")
		for _, p := range posts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				p.ID, truncate(p.Title, 40), p.User.Username, p.Type, len(p.Likes),
				formatHidden(p.Hidden), formatDate(p.CreatedAt))
		}
	})
}

func printPostDetail(out io.Writer, p post.Post) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "ID\t%s\n", p.ID)
		fmt.Fprintf(w, "Title\t%s\n", p.Title)
		fmt.Fprintf(w, "Author\t%s (%s)\n", p.User.Name, p.User.Username)
		fmt.Fprintf(w, "Type\t%s\n", p.Type)
		fmt.Fprintf(w, "Likes\t%d\n", len(p.Likes))
		fmt.Fprintf(w, "Visibility\t%s\n", formatHidden(p.Hidden))
		fmt.Fprintf(w, "Created\t%s\n", formatDate(p.CreatedAt))
	})
	fmt.Fprintf(out, "\n%s\n", p.Text)
}

func printCommentRows(out io.Writer, comments []post.Comment) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tAUTHOR\tTEXT\tVISIBILITY\tCREATED")
		for _, c := range comments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.User.Username, truncate(c.Text, 50), formatHidden(c.Hidden), formatDate(c.CreatedAt))
		}
	})
}

func printReportRows(out io.Writer, reports []report.Report) {
	table(out, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tREPORTER\tTARGET\tREASON\tSTATUS\tFILED")
		for _, r := range reports {
			target := "-"
			if r.Post != nil {
				target = "post " + r.Post.ID
			} else if r.Comment != nil {
				target = "comment " + r.Comment.ID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Reporter.Username, target, truncate(r.Reason, 30), r.Status, formatDate(r.CreatedAt))
		}
	})
}
