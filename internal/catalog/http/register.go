package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

// RegisterHandler serves POST /v1/register.
type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ServeHTTP godoc
//
//	@Summary		Register a new user
//	@Description	Creates a local identity and mirrors the registration to the external notes service.
//	@Description	Usernames are case-sensitive: "Alice" and "alice" are distinct identities.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"username and password"
//	@Success		201		{object}	registerResponse	"id, username, role"
//	@Failure		400		{object}	APIError			"error, error_description"
//	@Failure		409		{object}	APIError			"error, error_description"
//	@Failure		500		{object}	APIError			"error, error_description"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		var depErr *service.DependencyError
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			ErrUsernameTaken.WriteError(w)
		case errors.As(err, &depErr):
			// The local identity is already committed at this point; the
			// remote mirror failed and the caller gets the upstream text.
			log.Error("remote registration failed", "username", req.Username, "err", err)
			NewDependencyError(err).WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
}
