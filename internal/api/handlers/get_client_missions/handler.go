package get_client_missions

import (
	"errors"
	"net/http"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

const (
	msgMissingUserID = "missing user ID"
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

// Handle GET /api/v1/missions
// Lists the authenticated client's own missions.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /missions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetClientMissionsRequest{ClientID: clientID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	result, err := h.service.GetClientMissions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, missions.ErrInvalidInput):
			h.logger.Warn("GET /missions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /missions - Failed: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /missions - Retrieved %d missions: client_id=%d", len(result.Missions), clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
