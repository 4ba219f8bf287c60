// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/minhvo-dev/playdeck/internal/platform/request"
	"github.com/minhvo-dev/playdeck/internal/platform/respond"
	"github.com/minhvo-dev/playdeck/internal/platform/validate"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// PostHandler implements the content moderation endpoints for posts and
// their comments.
type PostHandler struct {
	store *Store
}

// NewPostHandler constructs a [PostHandler].
func NewPostHandler(store *Store) *PostHandler {
	return &PostHandler{store: store}
}

// Routes returns a [chi.Router] with the post endpoints.
func (handler *PostHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.getPost)
	router.Get("/{id}/comments", handler.listComments)
	router.Patch("/{id}/visibility", handler.setPostVisibility)
	router.Delete("/{id}", handler.deletePost)

	return router
}

// CommentRoutes returns a [chi.Router] with the comment endpoints. Comments
// are addressed by their own identifier, outside the /posts subtree.
func (handler *PostHandler) CommentRoutes() chi.Router {
	router := chi.NewRouter()

	router.Patch("/{id}/visibility", handler.setCommentVisibility)

	return router
}

// visibilityRequest is the PATCH body shared by post and comment moderation.
type visibilityRequest struct {
	Hidden bool `json:"hidden"`
}

// listPosts returns one page of posts, newest first, as the flat list envelope.
func (handler *PostHandler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	respond.OK(writer, handler.store.Posts(params))
}

// getPost returns a single post with its embedded author snapshot.
func (handler *PostHandler) getPost(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.store.Post(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

// listComments returns the post's comment thread, unpaginated.
func (handler *PostHandler) listComments(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")
	if _, err := handler.store.Post(postID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.store.CommentsByPost(postID))
}

/*
SetPostVisibility toggles the hidden flag of a post.

PATCH /admin/posts/{id}/visibility

Request:
  - Body: visibilityRequest (Hidden)

Response:
  - 200: Post: The updated post
  - 404: ErrNotFound: Unknown post identifier
*/
func (handler *PostHandler) setPostVisibility(writer http.ResponseWriter, request *http.Request) {
	var input visibilityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.store.SetPostHidden(requestutil.ID(request, "id"), input.Hidden)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

// deletePost removes a post and its comment thread permanently.
func (handler *PostHandler) deletePost(writer http.ResponseWriter, request *http.Request) {
	if err := handler.store.DeletePost(requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
SetCommentVisibility toggles the hidden flag of a comment.

PATCH /admin/comments/{id}/visibility

Request:
  - Body: visibilityRequest (Hidden)

Response:
  - 200: Comment: The updated comment
  - 404: ErrNotFound: Unknown comment identifier
*/
func (handler *PostHandler) setCommentVisibility(writer http.ResponseWriter, request *http.Request) {
	var input visibilityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.store.SetCommentHidden(requestutil.ID(request, "id"), input.Hidden)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
