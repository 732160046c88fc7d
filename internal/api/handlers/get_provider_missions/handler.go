package get_provider_missions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidQuery      = "invalid query parameters"
	msgMissingUserID     = "missing user ID"
	msgForbidden         = "access denied"
)

type Handler struct {
	service MissionService
	logger  Logger
}

func NewHandler(service MissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/missions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/missions - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/missions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Providers only see their own mission list.
	if userID != providerID {
		h.logger.Warn("GET /providers/{id}/missions - Access denied: provider_id=%d, user_id=%d", providerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req, err := parseQuery(providerID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /providers/{id}/missions - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetProviderMissions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, missions.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/missions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/missions - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/missions - Retrieved %d missions: provider_id=%d", len(result.Missions), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
