package update_mission_status

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

const (
	msgInvalidMissionID   = "invalid mission ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAction      = "unknown action"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "mission not found"
	msgForbidden          = "access denied"
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

// Handle POST /api/v1/missions/{missionId}/{action}
// where action is one of refuse, confirm, start, complete.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	action := vars["action"]

	missionID, err := strconv.ParseInt(vars["missionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /missions/{id}/%s - Invalid mission ID: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidMissionID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /missions/{id}/%s - Missing user ID", action)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// The body is optional for every action.
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /missions/{id}/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch action {
	case "refuse":
		err = h.service.Refuse(r.Context(), missionID, &models.RefuseMissionRequest{
			ProviderID: providerID,
			Reason:     req.Reason,
		})
	case "confirm":
		err = h.service.Confirm(r.Context(), missionID, providerID)
	case "start":
		err = h.service.Start(r.Context(), missionID, providerID)
	case "complete":
		err = h.service.Complete(r.Context(), missionID, &models.CompleteMissionRequest{
			ProviderID: providerID,
			Notes:      req.Notes,
		})
	default:
		h.logger.Warn("POST /missions/{id}/%s - Unknown action", action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, missions.ErrMissionNotFound):
			h.logger.Warn("POST /missions/{id}/%s - Mission not found: mission_id=%d", action, missionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, missions.ErrAccessDenied):
			h.logger.Warn("POST /missions/{id}/%s - Access denied: mission_id=%d, user_id=%d", action, missionID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, missions.ErrInvalidTransition):
			h.logger.Warn("POST /missions/{id}/%s - Invalid transition: mission_id=%d", action, missionID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, missions.ErrInvalidInput):
			h.logger.Warn("POST /missions/{id}/%s - Invalid input: %v", action, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /missions/{id}/%s - Failed: mission_id=%d, error=%v", action, missionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /missions/{id}/%s - Mission updated: mission_id=%d", action, missionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
