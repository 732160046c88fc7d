package get_category_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
)

const (
	msgMissingSlug = "category slug is required"
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

// Handle GET /api/v1/categories/{slug}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /categories/{slug}/config - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.Get(r.Context(), slug)
	if err != nil {
		h.logger.Error("GET /categories/{slug}/config - Failed: slug=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories/{slug}/config - Retrieved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/categories/configs
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /categories/configs - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories/configs - Retrieved %d configs", len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
