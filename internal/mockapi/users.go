// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/minhvo-dev/playdeck/internal/platform/request"
	"github.com/minhvo-dev/playdeck/internal/platform/respond"
	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

// UserHandler implements the member directory endpoints.
type UserHandler struct {
	store *Store
}

// NewUserHandler constructs a [UserHandler].
func NewUserHandler(store *Store) *UserHandler {
	return &UserHandler{store: store}
}

// Routes returns a [chi.Router] with the user endpoints.
func (handler *UserHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Get("/{id}", handler.getUser)
	router.Get("/{id}/posts", handler.listUserPosts)
	router.Delete("/{id}", handler.deleteUser)

	return router
}

// listUsers returns one page of members as the flat list envelope.
func (handler *UserHandler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	respond.OK(writer, handler.store.Users(params))
}

// getUser returns a single member profile.
func (handler *UserHandler) getUser(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.store.User(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

// listUserPosts returns every post authored by the member, unpaginated.
func (handler *UserHandler) listUserPosts(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")
	if _, err := handler.store.User(userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.store.PostsByUser(userID))
}

// deleteUser removes a member permanently.
func (handler *UserHandler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	if err := handler.store.DeleteUser(requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
