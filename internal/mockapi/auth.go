// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhvo-dev/playdeck/internal/platform/apperr"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/middleware"
	requestutil "github.com/minhvo-dev/playdeck/internal/platform/request"
	"github.com/minhvo-dev/playdeck/internal/platform/respond"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
	"github.com/minhvo-dev/playdeck/internal/platform/validate"
)

// # Definitions & Constructors

// AuthHandler implements the administrator authentication endpoints.
type AuthHandler struct {
	store  *Store
	tokens *sec.TokenService
}

// NewAuthHandler constructs an [AuthHandler].
func NewAuthHandler(store *Store, tokens *sec.TokenService) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Routes returns a [chi.Router] with the authentication endpoints.
func (handler *AuthHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/verify", handler.verify)
	})

	return router
}

// # Request & Response Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Admin adminPayload `json:"admin"`
	Token string       `json:"token"`
}

type verifyResponse struct {
	Admin adminPayload `json:"admin"`
}

/*
Login authenticates an administrator and issues a session token.

POST /admin/auth/login

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: loginResponse: Admin identity and bearer token
  - 401: ErrUnauthorized: Unknown email or wrong password
*/
func (handler *AuthHandler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	admin := handler.store.Admin()
	if input.Email != admin.Email || !sec.CheckPasswordHash(input.Password, admin.PasswordHash) {
		respond.Error(writer, request, apperr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := handler.tokens.GenerateAccessToken(admin.ID, admin.Email, admin.Name, constants.AccessTokenTTL)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, loginResponse{
		Admin: adminPayload{ID: admin.ID, Email: admin.Email, Name: admin.Name},
		Token: token,
	})
}

/*
Verify confirms that the presented bearer token is still valid.

GET /admin/auth/verify

Response:
  - 200: verifyResponse: Admin identity extracted from the token
  - 401: ErrUnauthorized: Missing, invalid, or expired token
*/
func (handler *AuthHandler) verify(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredAdmin(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, verifyResponse{
		Admin: adminPayload{ID: claims.AdminID, Email: claims.Email, Name: claims.Name},
	})
}
