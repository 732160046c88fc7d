package update_category_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig/models"
)

const (
	msgInvalidBody  = "invalid request body"
	msgSlugMismatch = "slug in body does not match URL"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/categories/{slug}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req models.UpdateCategoryConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{slug}/config - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.CategorySlug == "" {
		req.CategorySlug = slug
	} else if req.CategorySlug != slug {
		h.logger.Warn("PUT /categories/{slug}/config - Slug mismatch: url=%s, body=%s", slug, req.CategorySlug)
		handlers.RespondBadRequest(w, msgSlugMismatch)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, categoryconfig.ErrInvalidInput):
			h.logger.Warn("PUT /categories/{slug}/config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /categories/{slug}/config - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /categories/{slug}/config - Saved: slug=%s, config_id=%d", slug, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
