package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

// TokenHandler serves POST /v1/token.
// Accepts application/x-www-form-urlencoded credentials.
type TokenHandler struct {
	TokenService *service.TokenService
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	NotesToken  string `json:"notes_token"`
}

// ServeHTTP godoc
//
//	@Summary		Password login
//	@Description	Verifies credentials, obtains a delegated token from the external notes service,
//	@Description	and issues a bearer access token. Unknown usernames and wrong passwords return the
//	@Description	same error.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string			true	"Username"
//	@Param			password	formData	string			true	"Password"
//	@Success		200			{object}	tokenResponse	"access_token, token_type, notes_token"
//	@Failure		400			{object}	APIError		"error, error_description"
//	@Failure		401			{object}	APIError		"error, error_description"
//	@Failure		500			{object}	APIError		"error, error_description"
//	@Header			200			{string}	Cache-Control	"no-store"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		ErrInvalidContentType.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	username := strings.TrimSpace(r.Form.Get("username"))
	password := r.Form.Get("password")
	if username == "" || password == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.TokenService.PasswordLogin(ctx, username, password)
	if err != nil {
		var depErr *service.DependencyError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			ErrInvalidCredentials.WriteError(w)
		case errors.As(err, &depErr):
			log.Error("remote login failed", "username", username, "err", err)
			NewDependencyError(err).WriteError(w)
		default:
			log.Error("login failed", "err", err)
			ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "bearer",
		NotesToken:  pair.NotesToken,
	})
}
