package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/services"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *services.AuthService
	tokens    *services.TokenService
}

func newUserHandler(auth *services.AuthService, tokens *services.TokenService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
		tokens:    tokens,
	}
}

// register creates a new account and returns a session token
// @Summary Register user
// @Description Creates a new user account and issues a session token
// @Tags Users
// @Accept json
// @Produce json
// @Success 201 {object} authResponse "Token and created user"
// @Failure 422 {object} ErrorResponse "Password mismatch or duplicate username"
// @Router /user/register [post]
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.auth.Register(req.UserName, req.Password, req.Password2)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Issue(user.ID, user.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, authResponse{Token: token, User: user})
	}
}

// login verifies credentials and returns a session token
// @Summary Log in
// @Description Verifies username/password and issues a session token
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} authResponse "Token and user"
// @Failure 401 {object} ErrorResponse "Bad credentials"
// @Router /user/login [post]
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSONBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.auth.Login(req.UserName, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Issue(user.ID, user.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, authResponse{Token: token, User: user})
	}
}
