package get_mission

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
	msgInvalidMissionID = "invalid mission ID"
	msgMissingUserID    = "missing user ID"
	msgNotFound         = "mission not found"
	msgForbidden        = "access denied"
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

// Handle GET /api/v1/missions/{missionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	missionID, err := strconv.ParseInt(vars["missionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /missions/{id} - Invalid mission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMissionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /missions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	mission, err := h.service.GetByID(r.Context(), missionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, missions.ErrMissionNotFound):
			h.logger.Warn("GET /missions/{id} - Mission not found: mission_id=%d", missionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, missions.ErrAccessDenied):
			h.logger.Warn("GET /missions/{id} - Access denied: mission_id=%d, user_id=%d", missionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /missions/{id} - Failed: mission_id=%d, error=%v", missionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /missions/{id} - Mission retrieved: mission_id=%d, user_id=%d", missionID, userID)
	handlers.RespondJSON(w, http.StatusOK, mission)
}
