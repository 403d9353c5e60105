package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

// RecommendHandler serves POST /v1/recommendations.
type RecommendHandler struct {
	PerfumeService *service.PerfumeService
}

type recommendRequest struct {
	Preferences []string `json:"preferences"`
	Dislikes    []string `json:"dislikes"`
}

type perfumeResponse struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Notes string `json:"notes"`
}

type recommendResponse struct {
	Recommendations []perfumeResponse `json:"recommendations"`
}

func toPerfumeResponse(p domain.Perfume) perfumeResponse {
	return perfumeResponse{Name: p.Name, Brand: p.Brand, Notes: p.Notes}
}

// ServeHTTP godoc
//
//	@Summary		Recommend perfumes
//	@Description	Returns perfumes whose notes contain every preference term and none of the
//	@Description	dislike terms (case-insensitive substring match), newest first.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recommendRequest	true	"preference and dislike terms"
//	@Success		200		{object}	recommendResponse	"recommendations"
//	@Failure		401		{object}	APIError			"error, error_description"
//	@Failure		404		{object}	APIError			"error, error_description"
//	@Failure		422		{object}	APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/recommendations [post].
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	matches, err := h.PerfumeService.Recommend(ctx, req.Preferences, req.Dislikes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPreferences):
			ErrNoPreferences.WriteError(w)
		case errors.Is(err, service.ErrNotFound):
			ErrNotFound.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("recommendation failed", "err", err)
			ErrServerError.WriteError(w)
		}
		return
	}

	out := make([]perfumeResponse, 0, len(matches))
	for _, p := range matches {
		out = append(out, toPerfumeResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, recommendResponse{Recommendations: out})
}
