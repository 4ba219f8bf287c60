// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package post

import (
	"context"
	"log/slog"

	"github.com/minhvo-dev/playdeck/internal/notify"
	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/state"
)

// Service owns the post slice plus its two detail-scoped sublists: the
// comments of the selected post and the posts of a browsed author.
//
// Author-scoped posts live here (not in the user slice) because everything
// typed [Post] belongs to this package; the user package never imports post.
type Service struct {
	store       Store
	posts       *state.Collection[Post]
	comments    *state.Sublist[Comment]
	authorPosts *state.Sublist[Post]
	notifier    *notify.Notifier
	logger      *slog.Logger
}

// NewService constructs the post slice service.
func NewService(store Store, notifier *notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		store:       store,
		posts:       state.NewCollection(Key),
		comments:    state.NewSublist(CommentKey),
		authorPosts: state.NewSublist(Key),
		notifier:    notifier,
		logger:      logger,
	}
}

// # List & Detail Fetches

// FetchPage loads one page of posts into the slice.
func (service *Service) FetchPage(ctx context.Context, page, limit int) error {
	service.posts.Begin()

	result, err := service.store.List(ctx, page, limit)
	if err != nil {
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.posts.SetPage(result.Data, result.Meta())
	return nil
}

// FetchDetail loads a single post as the selected detail entity.
//
// An empty identifier means there is nothing to load.
func (service *Service) FetchDetail(ctx context.Context, id string) error {
	if id == "" {
		service.ClearDetail()
		return nil
	}

	result, err := service.store.Get(ctx, id)
	if err != nil {
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.posts.Select(*result)
	return nil
}

// FetchComments loads the comments of the given post into the detail sublist.
func (service *Service) FetchComments(ctx context.Context, postID string) error {
	result, err := service.store.Comments(ctx, postID)
	if err != nil {
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.comments.Set(result)
	return nil
}

// FetchByAuthor loads all posts of one user into the author sublist.
func (service *Service) FetchByAuthor(ctx context.Context, userID string) error {
	if userID == "" {
		service.authorPosts.Clear()
		return nil
	}

	result, err := service.store.ListByAuthor(ctx, userID)
	if err != nil {
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.authorPosts.Set(result)
	return nil
}

// ClearDetail drops the selected post together with its comments.
func (service *Service) ClearDetail() {
	service.posts.ClearSelected()
	service.comments.Clear()
}

// # Moderation Intents

// SetVisibility toggles the hidden flag of a post. The updated snapshot
// replaces the matching list entry in place — order and every other entry
// are untouched — and the selected detail post when it is the same one.
func (service *Service) SetVisibility(ctx context.Context, id string, hidden bool) error {
	updated, err := service.store.SetVisibility(ctx, id, hidden)
	if err != nil {
		service.notifier.Error("Failed to update post visibility")
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.posts.Replace(*updated)
	service.notifier.Success("Post visibility updated successfully")
	return nil
}

// Delete removes a post remotely, then filters it out of the slice. When the
// deleted post was the selected detail, the selection and its comments are
// cleared so nothing references the removed entity.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.store.Delete(ctx, id); err != nil {
		service.notifier.Error("Failed to delete post")
		service.posts.Fail(apperr.Display(err))
		return err
	}

	selected := service.posts.Snapshot().Selected
	service.posts.Remove(id)
	if selected != nil && selected.ID == id {
		service.comments.Clear()
	}

	service.notifier.Success("Post deleted successfully")
	return nil
}

// SetCommentVisibility toggles the hidden flag of a comment and swaps the
// updated snapshot into the comment sublist in place.
func (service *Service) SetCommentVisibility(ctx context.Context, id string, hidden bool) error {
	updated, err := service.store.SetCommentVisibility(ctx, id, hidden)
	if err != nil {
		service.notifier.Error("Failed to update comment visibility")
		service.posts.Fail(apperr.Display(err))
		return err
	}

	service.comments.Replace(*updated)
	service.notifier.Success("Comment visibility updated successfully")
	return nil
}

// # Reading

// State returns the current post slice snapshot.
func (service *Service) State() state.Snapshot[Post] {
	return service.posts.Snapshot()
}

// CommentsState returns the comments of the selected post.
func (service *Service) CommentsState() []Comment {
	return service.comments.Items()
}

// AuthorPosts returns the posts of the browsed author.
func (service *Service) AuthorPosts() []Post {
	return service.authorPosts.Items()
}
