package http

import (
	"errors"
	"net/http"

	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

// NotesHandler serves GET /v1/notes by proxying the external notes service
// with the caller's stored delegated token.
type NotesHandler struct {
	NotesService *service.NotesService
}

type notesUnavailableResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// ServeHTTP godoc
//
//	@Summary		Fetch the caller's notes
//	@Description	Proxies the external notes service using the delegated token stored at login.
//	@Description	A user who has never logged in has no delegated token and gets an
//	@Description	"unavailable" result without any remote call.
//	@Tags			Notes
//	@Produce		json
//	@Success		200	{object}	notesUnavailableResponse	"upstream payload, or available/message when unlinked"
//	@Failure		401	{object}	APIError		"error, error_description"
//	@Failure		500	{object}	APIError		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notes [get].
func (h *NotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteBearerError(w, "missing identity")
		return
	}

	res, err := h.NotesService.Fetch(ctx, u)
	if err != nil {
		var depErr *service.DependencyError
		if errors.As(err, &depErr) {
			slogx.FromContext(ctx).Error("notes fetch failed", "username", u.Username, "err", err)
			NewDependencyError(err).WriteError(w)
			return
		}
		ErrServerError.WriteError(w)
		return
	}

	if !res.Available {
		httpx.WriteJSON(w, http.StatusOK, notesUnavailableResponse{
			Available: false,
			Message:   "no notes available; log in to link the notes service",
		})
		return
	}

	// Upstream payload passes through untouched.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Payload)
}
