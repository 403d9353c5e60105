package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

// PerfumesHandler serves the catalog record endpoints: notes lookup for any
// authenticated user, and add/append/delete for admins.
type PerfumesHandler struct {
	PerfumeService *service.PerfumeService
}

type addPerfumeRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Notes string `json:"notes"`
}

type appendNotesRequest struct {
	Notes string `json:"notes"`
}

type noteMatchResponse struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type notesSearchResponse struct {
	Matches []noteMatchResponse `json:"matches"`
}

// HandleSearchNotes godoc
//
//	@Summary		Look up notes by name fragment
//	@Description	Returns the name and notes of every perfume whose name contains the given
//	@Description	fragment (case-insensitive), newest first.
//	@Tags			Catalog
//	@Produce		json
//	@Param			name	path		string				true	"Name fragment"
//	@Success		200		{object}	notesSearchResponse	"matches"
//	@Failure		401		{object}	APIError			"error, error_description"
//	@Failure		404		{object}	APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/perfumes/{name}/notes [get].
func (h *PerfumesHandler) HandleSearchNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fragment := r.PathValue("name")

	matches, err := h.PerfumeService.NotesByName(ctx, fragment)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("notes lookup failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	out := make([]noteMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, noteMatchResponse{Name: m.Name, Notes: m.Notes})
	}
	httpx.WriteJSON(w, http.StatusOK, notesSearchResponse{Matches: out})
}

// HandleAdd godoc
//
//	@Summary		Add a perfume
//	@Description	Prepends a perfume to the catalog. Names are not unique; a new record with an
//	@Description	existing name shadows the older one in lookups.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addPerfumeRequest	true	"name, brand, notes"
//	@Success		201		{object}	perfumeResponse		"name, brand, notes"
//	@Failure		400		{object}	APIError			"error, error_description"
//	@Failure		401		{object}	APIError			"error, error_description"
//	@Failure		403		{object}	APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/perfumes [post].
func (h *PerfumesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addPerfumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	p := domain.Perfume{Name: req.Name, Brand: req.Brand, Notes: req.Notes}
	if err := h.PerfumeService.Add(ctx, p); err != nil {
		slogx.FromContext(ctx).Error("add perfume failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPerfumeResponse(p))
}

// HandleAppendNotes godoc
//
//	@Summary		Append to a perfume's notes
//	@Description	Appends to the notes of the first perfume whose name matches
//	@Description	(case-insensitive): "current, addition", or the addition alone when the
//	@Description	current notes are empty.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string				true	"Perfume name"
//	@Param			request	body		appendNotesRequest	true	"notes to append"
//	@Success		200		{object}	perfumeResponse		"updated record"
//	@Failure		400		{object}	APIError			"error, error_description"
//	@Failure		401		{object}	APIError			"error, error_description"
//	@Failure		403		{object}	APIError			"error, error_description"
//	@Failure		404		{object}	APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/perfumes/{name}/notes [patch].
func (h *PerfumesHandler) HandleAppendNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	var req appendNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Notes) == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	p, err := h.PerfumeService.AppendNotes(ctx, name, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("append notes failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPerfumeResponse(p))
}

// HandleDelete godoc
//
//	@Summary		Delete a perfume
//	@Description	Removes the first perfume whose name matches (case-insensitive).
//	@Tags			Catalog
//	@Param			name	path	string	true	"Perfume name"
//	@Success		204		"deleted"
//	@Failure		401		{object}	APIError	"error, error_description"
//	@Failure		403		{object}	APIError	"error, error_description"
//	@Failure		404		{object}	APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/perfumes/{name} [delete].
func (h *PerfumesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	if err := h.PerfumeService.Delete(ctx, name); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("delete perfume failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
